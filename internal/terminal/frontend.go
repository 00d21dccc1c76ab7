// Package terminal runs the game inside a text terminal through tcell.
package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-turret-shooter/internal/app"
	"go-turret-shooter/internal/config"
	"go-turret-shooter/internal/ui"
	"go-turret-shooter/pkg/render"
	"go-turret-shooter/pkg/render/term"
)

// FrameInterval — период тикера, как у ebiten по умолчанию.
const FrameInterval = time.Second / config.TicksPerSec

// Frontend связывает tcell-экран с игрой: события в игру, кадры на экран.
type Frontend struct {
	screen  tcell.Screen
	game    *app.Game
	queue   *app.FrameQueue
	world   *render.CommandList
	hud     *ui.HUD
	surface *term.Surface

	mouseX, mouseY float64
	mouseDown      bool
}

func New(screen tcell.Screen, game *app.Game, queue *app.FrameQueue, world *render.CommandList, hud *ui.HUD) *Frontend {
	return &Frontend{
		screen:  screen,
		game:    game,
		queue:   queue,
		world:   world,
		hud:     hud,
		surface: term.NewSurface(screen, config.ScreenWidth, config.ScreenHeight, config.BackgroundColor, Glyphs()),
		mouseX:  -1,
		mouseY:  -1,
	}
}

// HandleEvent применяет событие tcell. Возвращает false, если пора выходить.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		if isStart(ev) {
			f.game.HandleStartButton()
			return true
		}
		f.game.HandleKey(KeyFromTcell(ev))

	case *tcell.EventMouse:
		col, row := ev.Position()
		f.mouseX, f.mouseY = f.surface.Logical(col, row)
		pressed := ev.Buttons()&tcell.Button1 != 0
		// Клик — только фронт нажатия, перетаскивание не считается
		if pressed && !f.mouseDown && f.hud.StartButton.IsClicked(f.mouseX, f.mouseY) {
			f.game.HandleStartButton()
		}
		f.mouseDown = pressed

	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

// Tick — один кадр дисплея: шаг игры и перерисовка.
func (f *Frontend) Tick() {
	f.queue.Tick()
	f.Draw()
}

// Draw выводит последний записанный кадр мира и HUD поверх него.
func (f *Frontend) Draw() {
	f.world.ReplayTo(f.surface)
	f.hud.Draw(f.surface, f.mouseX, f.mouseY)
	f.screen.Show()
}

// Run крутит цикл событий до выхода пользователя или отмены ctx.
// Экран должен быть инициализирован, закрывает его вызывающий.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return // экран закрыт
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !f.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			f.Tick()
		}
	}
}
