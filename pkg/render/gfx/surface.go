// Package gfx draws render surfaces onto ebiten images.
package gfx

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"go-turret-shooter/pkg/render"
)

// SpriteSet resolves a sprite to an ebiten image.
type SpriteSet interface {
	Image(sprite render.Sprite) *ebiten.Image
}

// FontCache keeps one face per requested pixel size.
type FontCache struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

func NewFontCache() (*FontCache, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &FontCache{font: tt, faces: make(map[float64]font.Face)}, nil
}

// Face returns a face of the given size, falling back to the fixed 7x13
// bitmap face if the outline font cannot be rasterized.
func (c *FontCache) Face(size float64) font.Face {
	if f, ok := c.faces[size]; ok {
		return f
	}
	face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("render: font size %.0f unavailable, using bitmap face: %v", size, err)
		c.faces[size] = basicfont.Face7x13
		return basicfont.Face7x13
	}
	c.faces[size] = face
	return face
}

// Surface draws directly onto an ebiten image. The destination is
// swapped every frame with SetTarget.
type Surface struct {
	dst        *ebiten.Image
	sprites    SpriteSet
	fonts      *FontCache
	background color.Color
}

func NewSurface(sprites SpriteSet, fonts *FontCache, background color.Color) *Surface {
	return &Surface{sprites: sprites, fonts: fonts, background: background}
}

func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) Clear() {
	if s.dst == nil {
		return
	}
	s.dst.Fill(s.background)
}

func (s *Surface) DrawImage(sprite render.Sprite, r render.Rect) {
	if s.dst == nil {
		return
	}
	img := s.sprites.Image(sprite)
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
}

func (s *Surface) FillRect(r render.Rect, c color.Color) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s *Surface) FillText(str string, x, y, size float64, c color.Color) {
	if s.dst == nil {
		return
	}
	text.Draw(s.dst, str, s.fonts.Face(size), int(x), int(y), c)
}
