package app

import (
	"bytes"
	"log"
	"math"
	"os"
	"strings"
	"testing"

	"go-turret-shooter/internal/audio"
	"go-turret-shooter/internal/component"
	"go-turret-shooter/internal/config"
	"go-turret-shooter/internal/input"
	"go-turret-shooter/internal/score"
	"go-turret-shooter/internal/state"
	"go-turret-shooter/internal/storage"
	"go-turret-shooter/pkg/render"
)

type countingPlayer struct {
	played map[audio.Sound]int
}

func (p *countingPlayer) Play(s audio.Sound) { p.played[s]++ }

type textSink struct{ text string }

func (s *textSink) SetText(text string) { s.text = text }

type harness struct {
	game    *Game
	surface *render.CommandList
	queue   *FrameQueue
	sounds  *countingPlayer
	store   *storage.MemoryStore
	current *textSink
	best    *textSink
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		surface: render.NewCommandList(),
		queue:   NewFrameQueue(),
		sounds:  &countingPlayer{played: make(map[audio.Sound]int)},
		store:   storage.NewMemoryStore(),
		current: &textSink{},
		best:    &textSink{},
	}
	bridge := score.NewBridge(h.store, config.BestScoreKey, h.current, h.best)
	bridge.Load()
	h.game = NewGame(Deps{
		Width:     config.ScreenWidth,
		Height:    config.ScreenHeight,
		Surface:   h.surface,
		Scheduler: h.queue,
		Audio:     h.sounds,
		Bridge:    bridge,
		Seed:      1,
	})
	return h
}

func (h *harness) frames(n int) {
	for i := 0; i < n; i++ {
		h.queue.Tick()
	}
}

// park уводит мишень к левому краю и останавливает её, чтобы снаряды из
// центра пушки гарантированно промахивались.
func (h *harness) park() {
	h.game.World.Target.X = config.TargetRadius + 10
	h.game.World.Target.Y = config.TargetRadius + 10
	h.game.World.Target.DX = 0
}

// framesToLeave — сколько кадров летит снаряд от пушки до выхода за верх.
func framesToLeave() int {
	return int((config.ScreenHeight-config.TurretOffsetY)/config.ProjectileSpeed) + 1
}

func hasText(l *render.CommandList, s string) bool {
	for _, text := range l.Texts() {
		if text == s {
			return true
		}
	}
	return false
}

func TestNewGameShowsStartPrompt(t *testing.T) {
	h := newHarness(t)

	if h.game.Phase() != state.NotStarted {
		t.Errorf("expected NotStarted, got %s", h.game.Phase())
	}
	if !hasText(h.surface, config.StartPromptText) {
		t.Errorf("expected start prompt on the surface, got %v", h.surface.Texts())
	}
	if h.queue.Pending() != 0 {
		t.Errorf("expected no frames scheduled before start")
	}
}

func TestFrameOutsideOngoingIsNoop(t *testing.T) {
	h := newHarness(t)
	before := len(h.surface.Commands())

	h.game.Frame()

	if got := len(h.surface.Commands()); got != before {
		t.Errorf("expected no drawing before start, got %d commands (was %d)", got, before)
	}
}

func TestEnterStartsOnlyFromNotStarted(t *testing.T) {
	h := newHarness(t)

	h.game.HandleKey(input.KeyEnter)
	if h.game.Phase() != state.Ongoing {
		t.Fatalf("expected Ongoing after Enter, got %s", h.game.Phase())
	}
	if h.current.text != "0" || h.best.text != "0" {
		t.Errorf("expected displays 0/0, got %q/%q", h.current.text, h.best.text)
	}

	h.game.HandleKey(input.KeyEnter)
	h.game.HandleStartButton()
	if h.queue.Pending() != 1 {
		t.Errorf("expected a single scheduled frame, got %d", h.queue.Pending())
	}
}

func TestSingleMiss(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	h.park()

	h.game.HandleKey(input.KeySpace)
	h.frames(framesToLeave())

	w := h.game.World
	if w.Score != -2 || w.ConsecutiveMisses != 1 {
		t.Errorf("expected score -2 misses 1, got score %d misses %d", w.Score, w.ConsecutiveMisses)
	}
	if h.game.Phase() != state.Ongoing {
		t.Errorf("expected game to continue, got %s", h.game.Phase())
	}
	if h.current.text != "-2" {
		t.Errorf("expected current score display -2, got %q", h.current.text)
	}
	if h.sounds.played[audio.SoundFire] != 1 {
		t.Errorf("expected one fire sound, got %d", h.sounds.played[audio.SoundFire])
	}
}

func TestThreeMissesEndGameOnce(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	h.park()

	for i := 0; i < 3; i++ {
		h.game.HandleKey(input.KeySpace)
	}
	h.frames(framesToLeave())

	if h.game.Phase() != state.Ended {
		t.Fatalf("expected Ended, got %s", h.game.Phase())
	}
	if h.game.World.Score != -6 {
		t.Errorf("expected score -6, got %d", h.game.World.Score)
	}
	if !hasText(h.surface, config.GameOverText) {
		t.Errorf("expected game over overlay, got %v", h.surface.Texts())
	}

	// Дальше мир заморожен до рестарта
	w := h.game.World
	turretX, targetX := w.Turret.X, w.Target.X
	h.frames(10)
	h.game.HandleKey(input.KeyLeft)
	h.game.HandleKey(input.KeyRight)
	h.game.HandleKey(input.KeySpace)
	h.game.HandleKey(input.KeyEnter)
	h.game.EndGame()

	if h.queue.Pending() != 0 {
		t.Errorf("expected loop to be stopped, got %d pending", h.queue.Pending())
	}
	if w.Turret.X != turretX || w.Target.X != targetX || len(w.Projectiles) != 0 {
		t.Errorf("expected no entity mutation after game over")
	}
	if h.game.Phase() != state.Ended {
		t.Errorf("expected Enter to be ignored while Ended, got %s", h.game.Phase())
	}
	if n := h.sounds.played[audio.SoundGameOver]; n != 1 {
		t.Errorf("expected game over sound exactly once, got %d", n)
	}
	if h.store.Writes != 0 {
		t.Errorf("expected negative score not to be persisted, got %d writes", h.store.Writes)
	}
}

func TestRestartFromStartButton(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	h.park()
	for i := 0; i < 3; i++ {
		h.game.HandleKey(input.KeySpace)
	}
	h.frames(framesToLeave())

	h.game.HandleStartButton()

	w := h.game.World
	if h.game.Phase() != state.Ongoing {
		t.Fatalf("expected Ongoing after restart, got %s", h.game.Phase())
	}
	if w.Score != 0 || w.ConsecutiveMisses != 0 || len(w.Projectiles) != 0 {
		t.Errorf("expected a clean world, got score %d misses %d projectiles %d",
			w.Score, w.ConsecutiveMisses, len(w.Projectiles))
	}
	if h.current.text != "0" {
		t.Errorf("expected current display reset to 0, got %q", h.current.text)
	}
	r := w.Target.Radius
	if w.Target.X < r || w.Target.X > w.Width-r || w.Target.Y < r || w.Target.Y > w.Height/2-r {
		t.Errorf("expected target inside the spawn area, got (%v, %v)", w.Target.X, w.Target.Y)
	}
	if h.queue.Pending() != 1 {
		t.Errorf("expected loop to be running again, got %d pending", h.queue.Pending())
	}
}

func TestHitResetsMisses(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	w := h.game.World
	w.ConsecutiveMisses = 2
	w.Target.DX = 0
	w.Target.X = w.Turret.X + w.Turret.Width/2
	w.Target.Y = w.Height / 2

	h.game.HandleKey(input.KeySpace)
	h.frames(framesToLeave())

	if w.Score != config.HitReward {
		t.Errorf("expected score %d, got %d", config.HitReward, w.Score)
	}
	if w.ConsecutiveMisses != 0 {
		t.Errorf("expected misses reset to 0, got %d", w.ConsecutiveMisses)
	}
	if len(w.Projectiles) != 0 {
		t.Errorf("expected projectile to be consumed, got %d", len(w.Projectiles))
	}
	r := w.Target.Radius
	if w.Target.X < r || w.Target.X > w.Width-r || w.Target.Y < r || w.Target.Y > w.Height/2-r {
		t.Errorf("expected relocated target inside the spawn area, got (%v, %v)", w.Target.X, w.Target.Y)
	}
}

func TestSpeedUpAfterFifty(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	w := h.game.World
	w.Score = 50
	w.Target.X, w.Target.Y, w.Target.DX = 400, 200, 1
	w.Projectiles = append(w.Projectiles, &component.Projectile{
		Position: component.Position{X: 400, Y: 200 + config.ProjectileSpeed},
		Width:    config.ProjectileWidth,
		Height:   config.ProjectileHeight,
	})

	h.frames(1)

	if w.Score != 55 {
		t.Fatalf("expected score 55, got %d", w.Score)
	}
	if math.Abs(w.Target.DX-1.1) > 1e-9 {
		t.Errorf("expected dx 1.1, got %v", w.Target.DX)
	}
}

func TestBestScoreNeverDecreases(t *testing.T) {
	h := newHarness(t)
	w := h.game.World

	playTo := func(score int) {
		h.game.HandleStartButton()
		if h.game.Phase() != state.Ongoing {
			t.Fatalf("expected game to start, got %s", h.game.Phase())
		}
		h.park()
		w.Score = score + 3*config.MissPenalty
		for i := 0; i < 3; i++ {
			h.game.HandleKey(input.KeySpace)
		}
		h.frames(framesToLeave())
		if h.game.Phase() != state.Ended {
			t.Fatalf("expected Ended, got %s", h.game.Phase())
		}
	}

	playTo(12)
	if v, _ := h.store.Get(config.BestScoreKey); v != "12" {
		t.Errorf("expected stored best 12, got %q", v)
	}
	playTo(4)
	if v, _ := h.store.Get(config.BestScoreKey); v != "12" {
		t.Errorf("expected stored best to stay 12, got %q", v)
	}
	if h.best.text != "12" {
		t.Errorf("expected best display 12, got %q", h.best.text)
	}
	if h.store.Writes != 1 {
		t.Errorf("expected one store write, got %d", h.store.Writes)
	}
}

func TestInputRules(t *testing.T) {
	h := newHarness(t)
	w := h.game.World

	h.game.HandleKey(input.KeySpace)
	if len(w.Projectiles) != 0 {
		t.Errorf("expected Space to be ignored before start")
	}

	x := w.Turret.X
	h.game.HandleKey(input.KeyRight)
	if w.Turret.X != x+config.TurretStep {
		t.Errorf("expected arrows to work before start, got x=%v", w.Turret.X)
	}

	w.Turret.X = 0
	h.game.HandleKey(input.KeyLeft)
	if w.Turret.X != 0 {
		t.Errorf("expected turret to stay at 0, got %v", w.Turret.X)
	}

	w.Turret.X = w.Width - w.Turret.Width
	h.game.HandleKey(input.KeyRight)
	if w.Turret.X != w.Width-w.Turret.Width {
		t.Errorf("expected turret clamped at the right edge, got %v", w.Turret.X)
	}

	h.game.HandleKey(input.KeyUnknown)
	if h.game.Phase() != state.NotStarted {
		t.Errorf("expected unknown key to be ignored")
	}
}

func TestRestartKeepsTargetSpeed(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	w := h.game.World
	w.Target.DX = 3.3
	h.game.EndGame()

	h.game.HandleStartButton()

	if h.game.Phase() != state.Ongoing {
		t.Fatalf("expected Ongoing after restart, got %s", h.game.Phase())
	}
	if w.Target.DX != 3.3 {
		t.Errorf("expected target speed 3.3 to carry over, got %v", w.Target.DX)
	}
	if w.Target.Speed() != 3.3 {
		t.Errorf("expected speed 3.3, got %v", w.Target.Speed())
	}
}

func TestLogsHitsAndMisses(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	h := newHarness(t)
	h.game.Start()
	w := h.game.World

	// Промах
	h.park()
	h.game.HandleKey(input.KeySpace)
	h.frames(framesToLeave())

	// Попадание
	w.Target.X, w.Target.Y, w.Target.DX = 400, 200, 0
	w.Projectiles = append(w.Projectiles, &component.Projectile{
		Position: component.Position{X: 400, Y: 200 + config.ProjectileSpeed},
		Width:    config.ProjectileWidth,
		Height:   config.ProjectileHeight,
	})
	h.frames(1)

	out := buf.String()
	for _, want := range []string{"game started", "miss 1/3", "hit: score 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log to contain %q, got:\n%s", want, out)
		}
	}
}
