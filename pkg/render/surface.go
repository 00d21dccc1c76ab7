// Package render describes the drawing surface the game paints on and its
// backends: a replayable command list, an ebiten image and a tcell screen.
package render

import "image/color"

// Sprite identifies one of the game's images.
type Sprite int

const (
	SpriteTurret Sprite = iota
	SpriteProjectile
	SpriteTarget
)

func (s Sprite) String() string {
	switch s {
	case SpriteTurret:
		return "turret"
	case SpriteProjectile:
		return "projectile"
	case SpriteTarget:
		return "target"
	}
	return "unknown"
}

// Rect is an axis-aligned rectangle; origin top-left, y grows downward.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Surface is everything the game needs from a 2D canvas.
// FillText places the baseline of the text at y, like a canvas fillText.
type Surface interface {
	Clear()
	DrawImage(sprite Sprite, r Rect)
	FillRect(r Rect, c color.Color)
	FillText(s string, x, y, size float64, c color.Color)
}
