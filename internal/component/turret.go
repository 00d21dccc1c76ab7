package component

import "go-turret-shooter/internal/utils"

// Turret — пушка игрока. Двигается только по горизонтали.
type Turret struct {
	Position
	Width  float64
	Height float64
	Step   float64 // сдвиг за одно нажатие
}

// Bounds возвращает прямоугольник отрисовки пушки.
func (t *Turret) Bounds() Rect {
	return Rect{X: t.X, Y: t.Y, W: t.Width, H: t.Height}
}

// MoveLeft сдвигает пушку влево, не выходя за левую границу.
func (t *Turret) MoveLeft() {
	t.X -= t.Step
	if t.X < 0 {
		t.X = 0
	}
}

// MoveRight сдвигает пушку вправо, не выходя за правую границу поля шириной fieldWidth.
func (t *Turret) MoveRight(fieldWidth float64) {
	t.X = utils.Clamp(t.X+t.Step, 0, fieldWidth-t.Width)
}

// Muzzle возвращает точку вылета снаряда шириной w: по центру верхней кромки.
func (t *Turret) Muzzle(w float64) Position {
	return Position{X: t.X + t.Width/2 - w/2, Y: t.Y}
}
