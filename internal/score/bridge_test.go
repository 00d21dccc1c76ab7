package score

import (
	"testing"

	"go-turret-shooter/internal/event"
	"go-turret-shooter/internal/storage"
)

type label struct {
	text    string
	updates int
}

func (l *label) SetText(s string) {
	l.text = s
	l.updates++
}

func newBridge(t *testing.T, stored string) (*Bridge, *storage.MemoryStore, *label, *label) {
	t.Helper()
	store := storage.NewMemoryStore()
	if stored != "" {
		store.Set("highScore", stored)
		store.Writes = 0
	}
	cur, best := &label{}, &label{}
	return NewBridge(store, "highScore", cur, best), store, cur, best
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   int
	}{
		{"missing", "", 0},
		{"numeric", "35", 35},
		{"padded", " 12\n", 12},
		{"garbage", "abc", 0},
		{"negative", "-4", -4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, _, _, best := newBridge(t, tc.stored)
			if got := b.Load(); got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
			if best.updates != 1 {
				t.Errorf("expected best display refreshed once, got %d", best.updates)
			}
		})
	}
}

func TestMaybeCommitOnlyIncreases(t *testing.T) {
	b, store, _, best := newBridge(t, "20")
	b.Load()

	if b.MaybeCommit(15) {
		t.Errorf("lower score must not be committed")
	}
	if b.MaybeCommit(20) {
		t.Errorf("equal score must not be committed")
	}
	if store.Writes != 0 {
		t.Errorf("expected no writes, got %d", store.Writes)
	}

	if !b.MaybeCommit(25) {
		t.Fatalf("higher score must be committed")
	}
	if v, _ := store.Get("highScore"); v != "25" {
		t.Errorf("expected stored 25, got %q", v)
	}
	if best.text != "25" {
		t.Errorf("expected best display 25, got %q", best.text)
	}

	b.MaybeCommit(-10)
	if v, _ := store.Get("highScore"); v != "25" {
		t.Errorf("best score decreased to %q", v)
	}
}

func TestEventsDriveDisplays(t *testing.T) {
	b, store, cur, best := newBridge(t, "")
	b.Load()
	d := event.NewDispatcher()
	b.Subscribe(d)

	d.Dispatch(event.Event{Type: event.ScoreChanged, Data: -2})
	if cur.text != "-2" {
		t.Errorf("expected current -2, got %q", cur.text)
	}

	d.Dispatch(event.Event{Type: event.GameOver, Data: 7})
	if v, _ := store.Get("highScore"); v != "7" {
		t.Errorf("expected best 7 persisted, got %q", v)
	}

	d.Dispatch(event.Event{Type: event.GameStarted, Data: 0})
	if cur.text != "0" || best.text != "7" {
		t.Errorf("expected displays 0/7 after restart, got %q/%q", cur.text, best.text)
	}
}
