// Package ebitenaudio plays the game's sound effects through ebiten's audio
// context.
package ebitenaudio

import (
	"log"

	"go-turret-shooter/internal/audio"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// Player хранит заранее синтезированные PCM-буферы для каждого звука.
type Player struct {
	ctx     *ebaudio.Context
	clips   map[audio.Sound][]byte
	playing []*ebaudio.Player
}

// NewPlayer создает плеер на общем аудиоконтексте ebiten.
func NewPlayer() *Player {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(sampleRate)
	}
	clips := make(map[audio.Sound][]byte, len(audio.Notes))
	for s, notes := range audio.Notes {
		clips[s] = audio.PCM16Stereo(notes, ctx.SampleRate(), audio.Volume)
	}
	return &Player{ctx: ctx, clips: clips}
}

// Play запускает звук и не ждёт его окончания.
func (p *Player) Play(sound audio.Sound) {
	clip, ok := p.clips[sound]
	if !ok {
		log.Printf("audio: no clip for %s", sound)
		return
	}
	// Держим ссылки на играющие плееры, пока они не закончат
	alive := p.playing[:0]
	for _, pl := range p.playing {
		if pl.IsPlaying() {
			alive = append(alive, pl)
		} else {
			pl.Close()
		}
	}
	pl := p.ctx.NewPlayerFromBytes(clip)
	pl.Play()
	p.playing = append(alive, pl)
}
