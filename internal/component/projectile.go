// internal/component/projectile.go
package component

// Projectile представляет летящий снаряд.
type Projectile struct {
	Position
	Width  float64
	Height float64
}

// Bounds возвращает прямоугольник отрисовки снаряда.
func (p *Projectile) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Gone сообщает, что снаряд ушёл за верхнюю границу.
func (p *Projectile) Gone() bool {
	return p.Y < 0
}
