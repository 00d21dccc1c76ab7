package system

import (
	"go-turret-shooter/internal/config"
	"go-turret-shooter/internal/entity"
	"go-turret-shooter/internal/event"
)

// CollisionSystem проверяет попадания снарядов в мишень
type CollisionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	rng             entity.Spawner
}

func NewCollisionSystem(world *entity.World, eventDispatcher *event.Dispatcher, rng entity.Spawner) *CollisionSystem {
	return &CollisionSystem{world: world, eventDispatcher: eventDispatcher, rng: rng}
}

// Update удаляет попавшие снаряды. Каждое попадание даёт HitReward очков,
// переносит мишень и сбрасывает счётчик промахов. После SpeedUpScore очков
// каждое попадание ускоряет мишень в SpeedUpFactor раз.
// Следующие снаряды кадра проверяются уже против новой позиции мишени.
func (s *CollisionSystem) Update() int {
	w := s.world
	all := w.Projectiles
	kept := all[:0]
	hits := 0
	for _, p := range all {
		if !w.Target.Contains(p.Position) {
			kept = append(kept, p)
			continue
		}

		hits++
		w.Score += config.HitReward
		s.eventDispatcher.Emit(event.ScoreChanged, w.Score)
		w.RelocateTarget(s.rng)
		w.ConsecutiveMisses = 0
		if w.Score > config.SpeedUpScore {
			w.Target.DX *= config.SpeedUpFactor
		}
		s.eventDispatcher.Emit(event.TargetHit, w.Score)
	}
	clear(all[len(kept):])
	w.Projectiles = kept
	return hits
}
