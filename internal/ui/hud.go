// internal/ui/hud.go
package ui

import (
	"go-turret-shooter/internal/config"
	"go-turret-shooter/pkg/render"
)

// HUD — надписи счёта и рекорда плюс кнопка старта.
type HUD struct {
	Score       *Label
	Best        *Label
	StartButton *Button
}

func NewHUD() *HUD {
	return &HUD{
		Score: NewLabel(config.HUDScoreX, config.HUDScoreY,
			"Score: ", config.HUDTextSize, config.HUDTextColor),
		Best: NewLabel(config.HUDScoreX, config.HUDScoreY+config.HUDLineHeight,
			"Best: ", config.HUDTextSize, config.HUDTextColor),
		StartButton: NewStartButton(),
	}
}

// Draw рисует HUD поверх игрового поля. hoverX, hoverY — позиция курсора.
func (h *HUD) Draw(surface render.Surface, hoverX, hoverY float64) {
	h.StartButton.Draw(surface, h.StartButton.IsClicked(hoverX, hoverY))
	h.Score.Draw(surface)
	h.Best.Draw(surface)
}
