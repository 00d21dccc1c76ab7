// Package term draws render surfaces onto a tcell screen.
package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"go-turret-shooter/pkg/render"
)

// Glyph is how a sprite looks in a terminal cell.
type Glyph struct {
	Rune  rune
	Color color.Color
}

// Surface maps the logical playing field onto the cells of a tcell
// screen. Cells are scaled independently on each axis, so the field always
// fills the whole terminal.
type Surface struct {
	screen        tcell.Screen
	width, height float64
	background    tcell.Style
	glyphs        map[render.Sprite]Glyph
}

func NewSurface(screen tcell.Screen, width, height float64, background color.Color, glyphs map[render.Sprite]Glyph) *Surface {
	return &Surface{
		screen:     screen,
		width:      width,
		height:     height,
		background: tcell.StyleDefault.Background(tcellColor(background)),
		glyphs:     glyphs,
	}
}

func tcellColor(c color.Color) tcell.Color {
	rgba := render.ToRGBA(c)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

// Cell converts a logical coordinate to a terminal cell.
func (s *Surface) Cell(x, y float64) (int, int) {
	cols, rows := s.screen.Size()
	return int(x * float64(cols) / s.width), int(y * float64(rows) / s.height)
}

// Logical converts a terminal cell back to the logical coordinate of its
// center.
func (s *Surface) Logical(col, row int) (float64, float64) {
	cols, rows := s.screen.Size()
	if cols == 0 || rows == 0 {
		return -1, -1
	}
	return (float64(col) + 0.5) * s.width / float64(cols), (float64(row) + 0.5) * s.height / float64(rows)
}

// span returns the cell range covered by r, at least one cell wide and tall,
// clipped to the screen.
func (s *Surface) span(r render.Rect) (x0, y0, x1, y1 int) {
	cols, rows := s.screen.Size()
	x0, y0 = s.Cell(r.X, r.Y)
	x1, y1 = s.Cell(r.X+r.W, r.Y+r.H)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, cols), min(y1, rows)
	return
}

func (s *Surface) Clear() {
	s.screen.Fill(' ', s.background)
}

func (s *Surface) DrawImage(sprite render.Sprite, r render.Rect) {
	g, ok := s.glyphs[sprite]
	if !ok {
		g = Glyph{Rune: '?', Color: color.White}
	}
	style := s.background.Foreground(tcellColor(g.Color))
	x0, y0, x1, y1 := s.span(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, g.Rune, nil, style)
		}
	}
}

func (s *Surface) FillRect(r render.Rect, c color.Color) {
	style := tcell.StyleDefault.Background(tcellColor(c))
	x0, y0, x1, y1 := s.span(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// FillText writes the text on the row holding the middle of the glyphs.
// The cell background is kept so text over a filled rect stays readable.
func (s *Surface) FillText(str string, x, y, size float64, c color.Color) {
	cols, rows := s.screen.Size()
	cx, cy := s.Cell(x, y-size/2)
	if cy < 0 || cy >= rows {
		return
	}
	fg := tcellColor(c)
	for i, ch := range []rune(str) {
		col := cx + i
		if col < 0 {
			continue
		}
		if col >= cols {
			break
		}
		_, _, style, _ := s.screen.GetContent(col, cy)
		s.screen.SetContent(col, cy, ch, nil, style.Foreground(fg))
	}
}
