// Package audio defines the fire-and-forget sound effects of the game.
package audio

import (
	"time"

	"go-turret-shooter/internal/event"
)

// Sound — звуковой эффект
type Sound int

const (
	SoundFire Sound = iota
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundFire:
		return "fire"
	case SoundGameOver:
		return "gameover"
	}
	return "unknown"
}

// Player проигрывает звук и сразу возвращает управление.
type Player interface {
	Play(sound Sound)
}

// Nop — плеер без звука (TURRET_MUTE или нет аудиоустройства).
type Nop struct{}

func (Nop) Play(Sound) {}

// Note — отрезок синусоидального тона.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Notes описывает звуки вместо mp3/wav файлов.
var Notes = map[Sound][]Note{
	SoundFire: {
		{Freq: 880, Duration: 60 * time.Millisecond},
	},
	SoundGameOver: {
		{Freq: 440, Duration: 250 * time.Millisecond},
		{Freq: 330, Duration: 250 * time.Millisecond},
		{Freq: 220, Duration: 450 * time.Millisecond},
	},
}

// Volume — общая громкость эффектов, 0..1
const Volume = 0.3

// Listener проигрывает звуки по игровым событиям.
type Listener struct {
	player Player
}

func NewListener(p Player) *Listener {
	return &Listener{player: p}
}

func (l *Listener) OnEvent(e event.Event) {
	switch e.Type {
	case event.ProjectileFired:
		l.player.Play(SoundFire)
	case event.GameOver:
		l.player.Play(SoundGameOver)
	}
}

// Subscribe подписывает слушателя на выстрелы и конец игры.
func (l *Listener) Subscribe(d *event.Dispatcher) {
	d.Subscribe(l, event.ProjectileFired, event.GameOver)
}
