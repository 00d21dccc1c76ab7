// internal/system/projectile.go
package system

import (
	"go-turret-shooter/internal/component"
	"go-turret-shooter/internal/config"
	"go-turret-shooter/internal/entity"
	"go-turret-shooter/internal/event"
)

// ProjectileGameContext — то, что ProjectileSystem требует от игры.
// Это помогает избежать циклических зависимостей.
type ProjectileGameContext interface {
	EndGame()
}

// ProjectileSystem двигает снаряды вверх и списывает промахи
type ProjectileSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	game            ProjectileGameContext
}

func NewProjectileSystem(world *entity.World, eventDispatcher *event.Dispatcher, game ProjectileGameContext) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		game:            game,
	}
}

// Update сдвигает каждый снаряд ровно один раз. Снаряды, ушедшие за верхнюю
// границу, удаляются как промах. Если промахов подряд стало
// MaxConsecutiveMisses, игра завершается, оставшиеся снаряды кадра не
// трогаются, и Update возвращает false.
func (s *ProjectileSystem) Update() bool {
	all := s.world.Projectiles
	kept := all[:0]
	for i, p := range all {
		p.Y -= config.ProjectileSpeed
		if !p.Gone() {
			kept = append(kept, p)
			continue
		}

		s.world.ConsecutiveMisses++
		s.world.Score -= config.MissPenalty
		s.eventDispatcher.Emit(event.ProjectileMissed, s.world.ConsecutiveMisses)
		s.eventDispatcher.Emit(event.ScoreChanged, s.world.Score)

		if s.world.ConsecutiveMisses >= config.MaxConsecutiveMisses {
			kept = append(kept, all[i+1:]...)
			s.commit(all, kept)
			s.game.EndGame()
			return false
		}
	}
	s.commit(all, kept)
	return true
}

// commit сохраняет отфильтрованный список и обнуляет хвост старого массива
func (s *ProjectileSystem) commit(all, kept []*component.Projectile) {
	clear(all[len(kept):])
	s.world.Projectiles = kept
}
