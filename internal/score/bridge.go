// Package score mirrors the current and best score to the display and keeps
// the best score in a durable key-value store.
package score

import (
	"strconv"
	"strings"

	"go-turret-shooter/internal/event"
)

// KeyValueStore — долговременное хранилище строк.
type KeyValueStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Display — текстовый приёмник (надпись со счётом).
type Display interface {
	SetText(text string)
}

// Bridge связывает счёт игры с хранилищем и двумя надписями.
type Bridge struct {
	store   KeyValueStore
	key     string
	current Display
	best    Display
	bestVal int
}

func NewBridge(store KeyValueStore, key string, current, best Display) *Bridge {
	return &Bridge{store: store, key: key, current: current, best: best}
}

// Load читает рекорд из хранилища. Отсутствующее или нечисловое значение — 0.
func (b *Bridge) Load() int {
	b.bestVal = 0
	if raw, ok := b.store.Get(b.key); ok {
		if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			b.bestVal = v
		}
	}
	b.best.SetText(strconv.Itoa(b.bestVal))
	return b.bestVal
}

// Best возвращает текущий рекорд.
func (b *Bridge) Best() int {
	return b.bestVal
}

// MaybeCommit сохраняет score, если он больше рекорда.
func (b *Bridge) MaybeCommit(score int) bool {
	if score <= b.bestVal {
		return false
	}
	b.bestVal = score
	b.store.Set(b.key, strconv.Itoa(score))
	b.best.SetText(strconv.Itoa(score))
	return true
}

// Reflect показывает текущий счёт.
func (b *Bridge) Reflect(score int) {
	b.current.SetText(strconv.Itoa(score))
}

// Refresh повторно выводит оба значения, например после сброса игры.
func (b *Bridge) Refresh(score int) {
	b.Reflect(score)
	b.best.SetText(strconv.Itoa(b.bestVal))
}

// OnEvent реализует event.Listener: ScoreChanged и GameStarted несут текущий
// счёт, GameOver — итоговый.
func (b *Bridge) OnEvent(e event.Event) {
	score, ok := e.Data.(int)
	if !ok {
		return
	}
	switch e.Type {
	case event.ScoreChanged:
		b.Reflect(score)
	case event.GameStarted:
		b.Refresh(score)
	case event.GameOver:
		b.MaybeCommit(score)
	}
}

// Subscribe подписывает мост на нужные события.
func (b *Bridge) Subscribe(d *event.Dispatcher) {
	d.Subscribe(b, event.ScoreChanged, event.GameStarted, event.GameOver)
}
