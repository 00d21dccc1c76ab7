package system

import (
	"math"

	"go-turret-shooter/internal/entity"
)

// TargetSystem двигает мишень и отражает её от боковых стен
type TargetSystem struct {
	world *entity.World
}

func NewTargetSystem(world *entity.World) *TargetSystem {
	return &TargetSystem{world: world}
}

// Update сдвигает мишень на DX. Если край мишени вышел за стену, скорость
// направляется обратно в поле. Позиция не ограничивается.
func (s *TargetSystem) Update() {
	t := s.world.Target
	t.X += t.DX
	switch {
	case t.X < t.Radius:
		t.DX = math.Abs(t.DX)
	case t.X > s.world.Width-t.Radius:
		t.DX = -math.Abs(t.DX)
	}
}
