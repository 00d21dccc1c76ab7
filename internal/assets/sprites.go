// Package assets draws the sprites procedurally, so the game ships without
// image files.
package assets

import (
	"go-turret-shooter/internal/config"
	"go-turret-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpriteManager рисует спрайты процедурно и кэширует их.
// Картинки создаются лениво, при первом обращении из Draw.
type SpriteManager struct {
	images map[render.Sprite]*ebiten.Image
}

// NewSpriteManager создает новый экземпляр SpriteManager.
func NewSpriteManager() *SpriteManager {
	return &SpriteManager{images: make(map[render.Sprite]*ebiten.Image)}
}

// Image возвращает картинку спрайта. Размер картинки совпадает с размером
// сущности в config, при отрисовке она масштабируется под прямоугольник.
func (m *SpriteManager) Image(sprite render.Sprite) *ebiten.Image {
	if img, ok := m.images[sprite]; ok {
		return img
	}
	var img *ebiten.Image
	switch sprite {
	case render.SpriteTurret:
		img = drawTurret()
	case render.SpriteProjectile:
		img = drawProjectile()
	case render.SpriteTarget:
		img = drawTarget()
	default:
		return nil
	}
	m.images[sprite] = img
	return img
}

func drawTurret() *ebiten.Image {
	w, h := float32(config.TurretWidth), float32(config.TurretHeight)
	img := ebiten.NewImage(config.TurretWidth, config.TurretHeight)
	// Лафет
	vector.DrawFilledRect(img, 0, h*0.55, w, h*0.45, config.TurretColor, true)
	vector.DrawFilledCircle(img, w/2, h*0.55, w*0.3, config.TurretColor, true)
	// Ствол
	vector.DrawFilledRect(img, w*0.4, 0, w*0.2, h*0.6, config.BarrelColor, true)
	return img
}

func drawProjectile() *ebiten.Image {
	img := ebiten.NewImage(config.ProjectileWidth, config.ProjectileHeight)
	img.Fill(config.ProjectileColor)
	return img
}

func drawTarget() *ebiten.Image {
	d := int(config.TargetRadius * 2)
	r := float32(config.TargetRadius)
	img := ebiten.NewImage(d, d)
	vector.DrawFilledCircle(img, r, r, r, config.TargetColor, true)
	// Глаза монстра
	vector.DrawFilledCircle(img, r*0.6, r*0.8, r*0.22, config.TargetEyeColor, true)
	vector.DrawFilledCircle(img, r*1.4, r*0.8, r*0.22, config.TargetEyeColor, true)
	vector.DrawFilledCircle(img, r*0.6, r*0.85, r*0.1, config.BarrelColor, true)
	vector.DrawFilledCircle(img, r*1.4, r*0.85, r*0.1, config.BarrelColor, true)
	return img
}
