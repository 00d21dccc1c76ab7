// internal/entity/ecs.go
package entity

import (
	"go-turret-shooter/internal/component"
	"go-turret-shooter/internal/config"
)

// Spawner выдаёт случайные числа для размещения мишени.
type Spawner interface {
	Float64() float64
}

// World хранит всё изменяемое состояние одной игровой сессии.
type World struct {
	Width, Height     float64
	Turret            *component.Turret
	Target            *component.Target
	Projectiles       []*component.Projectile
	Score             int
	ConsecutiveMisses int
}

func NewWorld(width, height float64) *World {
	return &World{
		Width:  width,
		Height: height,
		Turret: &component.Turret{
			Position: component.Position{
				X: width/2 - config.TurretOffsetX,
				Y: height - config.TurretOffsetY,
			},
			Width:  config.TurretWidth,
			Height: config.TurretHeight,
			Step:   config.TurretStep,
		},
		Target: &component.Target{
			Position: component.Position{X: config.TargetStartX, Y: config.TargetStartY},
			Radius:   config.TargetRadius,
			DX:       config.TargetStartDX,
		},
		Projectiles: make([]*component.Projectile, 0, 8),
	}
}

// Reset возвращает сессию к начальному состоянию перед новой игрой.
// Пушка остаётся на месте, набранная скорость мишени сохраняется.
func (w *World) Reset(rng Spawner) {
	w.Score = 0
	w.ConsecutiveMisses = 0
	w.Projectiles = w.Projectiles[:0]
	w.RelocateTarget(rng)
}

// RelocateTarget переносит мишень в случайную точку верхней половины поля:
// x в [r, w-r], y в [r, h/2-r].
func (w *World) RelocateTarget(rng Spawner) {
	r := w.Target.Radius
	w.Target.X = rng.Float64()*(w.Width-r*2) + r
	w.Target.Y = rng.Float64()*(w.Height/2-r*2) + r
}

// Fire добавляет снаряд над пушкой.
func (w *World) Fire() *component.Projectile {
	p := &component.Projectile{
		Position: w.Turret.Muzzle(config.ProjectileWidth),
		Width:    config.ProjectileWidth,
		Height:   config.ProjectileHeight,
	}
	w.Projectiles = append(w.Projectiles, p)
	return p
}
