package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-turret-shooter/internal/input"
)

var keyMap = []struct {
	ebiten ebiten.Key
	key    input.Key
}{
	{ebiten.KeyArrowLeft, input.KeyLeft},
	{ebiten.KeyArrowRight, input.KeyRight},
	{ebiten.KeySpace, input.KeySpace},
	{ebiten.KeyEnter, input.KeyEnter},
	{ebiten.KeyNumpadEnter, input.KeyEnter},
}

// pressedKeys — клавиши, нажатые на этом тике (фронт, без автоповтора).
func pressedKeys() []input.Key {
	var keys []input.Key
	for _, m := range keyMap {
		if inpututil.IsKeyJustPressed(m.ebiten) {
			keys = append(keys, m.key)
		}
	}
	return keys
}
