package component

import "math"

// Target — мишень. Position хранит центр круга.
type Target struct {
	Position
	Radius float64
	DX     float64 // горизонтальная скорость, пикселей за кадр
}

// Bounds возвращает описанный квадрат для отрисовки.
func (t *Target) Bounds() Rect {
	return Rect{X: t.X - t.Radius, Y: t.Y - t.Radius, W: t.Radius * 2, H: t.Radius * 2}
}

// Contains проверяет, лежит ли точка строго внутри круга.
func (t *Target) Contains(p Position) bool {
	return math.Hypot(p.X-t.X, p.Y-t.Y) < t.Radius
}

// Speed возвращает модуль скорости.
func (t *Target) Speed() float64 {
	return math.Abs(t.DX)
}
