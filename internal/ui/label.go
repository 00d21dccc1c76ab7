// internal/ui/label.go
package ui

import (
	"image/color"

	"go-turret-shooter/pkg/render"
)

// Label — строка текста с префиксом. Реализует score.Display.
type Label struct {
	X, Y     float64
	Prefix   string
	FontSize float64
	Color    color.RGBA
	text     string
}

func NewLabel(x, y float64, prefix string, fontSize float64, c color.RGBA) *Label {
	return &Label{X: x, Y: y, Prefix: prefix, FontSize: fontSize, Color: c}
}

// SetText заменяет значение после префикса.
func (l *Label) SetText(text string) {
	l.text = text
}

// Text возвращает полную строку надписи.
func (l *Label) Text() string {
	return l.Prefix + l.text
}

func (l *Label) Draw(surface render.Surface) {
	surface.FillText(l.Text(), l.X, l.Y, l.FontSize, l.Color)
}
