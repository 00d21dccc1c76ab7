// internal/system/render.go
package system

import (
	"go-turret-shooter/internal/component"
	"go-turret-shooter/internal/config"
	"go-turret-shooter/internal/entity"
	"go-turret-shooter/pkg/render"
)

// RenderSystem рисует сущности. Только читает мир.
type RenderSystem struct {
	world *entity.World
}

func NewRenderSystem(world *entity.World) *RenderSystem {
	return &RenderSystem{world: world}
}

func toRect(r component.Rect) render.Rect {
	return render.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func (s *RenderSystem) Draw(surface render.Surface) {
	surface.DrawImage(render.SpriteTurret, toRect(s.world.Turret.Bounds()))
	for _, p := range s.world.Projectiles {
		surface.DrawImage(render.SpriteProjectile, toRect(p.Bounds()))
	}
	surface.DrawImage(render.SpriteTarget, toRect(s.world.Target.Bounds()))
}

// DrawStartPrompt — приглашение начать игру
func (s *RenderSystem) DrawStartPrompt(surface render.Surface) {
	surface.FillText(config.StartPromptText,
		s.world.Width/2-config.StartPromptOffset, s.world.Height/2+30,
		config.StartPromptSize, config.PromptColor)
}

// DrawGameOver закрашивает поле и пишет "Game Over"
func (s *RenderSystem) DrawGameOver(surface render.Surface) {
	surface.FillRect(render.Rect{W: s.world.Width, H: s.world.Height}, config.GameOverColor)
	surface.FillText(config.GameOverText,
		s.world.Width/2-config.GameOverOffset, s.world.Height/2,
		config.GameOverSize, config.GameOverTextColor)
}
