// internal/ui/button.go
package ui

import (
	"image/color"

	"go-turret-shooter/internal/config"
	"go-turret-shooter/pkg/render"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect      render.Rect
	Text      string
	TextColor color.RGBA
	BgColor   color.RGBA
	FontSize  float64
}

// NewButton создает новую кнопку.
func NewButton(rect render.Rect, text string) *Button {
	return &Button{
		Rect:      rect,
		Text:      text,
		TextColor: config.ButtonTextColor,
		BgColor:   config.ButtonColor,
		FontSize:  config.HUDTextSize,
	}
}

// NewStartButton — кнопка "Start Game" в левом верхнем углу.
func NewStartButton() *Button {
	return NewButton(render.Rect{
		X: config.StartButtonX,
		Y: config.StartButtonY,
		W: config.StartButtonWidth,
		H: config.StartButtonHeight,
	}, config.StartButtonLabel)
}

// IsClicked проверяет, попал ли клик в кнопку.
func (b *Button) IsClicked(x, y float64) bool {
	return b.Rect.Contains(x, y)
}

// Draw отрисовывает кнопку. Под курсором фон темнее.
func (b *Button) Draw(surface render.Surface, hovered bool) {
	bg := b.BgColor
	if hovered {
		bg = render.DarkenColor(bg)
	}
	surface.FillRect(b.Rect, bg)

	// Ширину текста без шрифта не узнать, поэтому отступ фиксированный,
	// а базовая линия по центру плюс треть кегля
	textX := b.Rect.X + 8
	textY := b.Rect.Y + b.Rect.H/2 + b.FontSize/3
	surface.FillText(b.Text, textX, textY, b.FontSize, b.TextColor)
}
