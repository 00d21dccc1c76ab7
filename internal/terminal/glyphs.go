package terminal

import (
	"go-turret-shooter/internal/config"
	"go-turret-shooter/pkg/render"
	"go-turret-shooter/pkg/render/term"
)

// Glyphs — вид спрайтов в терминале.
func Glyphs() map[render.Sprite]term.Glyph {
	return map[render.Sprite]term.Glyph{
		render.SpriteTurret:     {Rune: '█', Color: config.TurretColor},
		render.SpriteProjectile: {Rune: '│', Color: config.ProjectileColor},
		render.SpriteTarget:     {Rune: '●', Color: config.TargetColor},
	}
}
