// Package beepaudio plays the game's sound effects through the beep speaker,
// for frontends that do not run an ebiten audio context.
package beepaudio

import (
	"fmt"
	"log"
	"time"

	"go-turret-shooter/internal/audio"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player — эффекты, собранные из синусоид beep.
type Player struct {
	notes map[audio.Sound][]audio.Note
}

// NewPlayer инициализирует динамик. Ошибка означает, что звука не будет;
// вызывающий код обычно переходит на audio.Nop.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Player{notes: audio.Notes}, nil
}

// Close освобождает аудиоустройство.
func (p *Player) Close() {
	speaker.Close()
}

func (p *Player) Play(sound audio.Sound) {
	s, err := Streamer(p.notes[sound])
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	if s == nil {
		return
	}
	speaker.Play(s)
}

// Streamer строит поток из нот с общей громкостью audio.Volume.
func Streamer(notes []audio.Note) (beep.Streamer, error) {
	if len(notes) == 0 {
		return nil, nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sampleRate, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("sine %.0fHz: %w", n.Freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.Duration), sine))
	}
	return &effects.Gain{Streamer: beep.Seq(parts...), Gain: audio.Volume - 1}, nil
}
