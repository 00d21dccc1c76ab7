// cmd/term/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"go-turret-shooter/internal/app"
	"go-turret-shooter/internal/audio"
	"go-turret-shooter/internal/audio/beepaudio"
	"go-turret-shooter/internal/config"
	"go-turret-shooter/internal/score"
	"go-turret-shooter/internal/storage"
	"go-turret-shooter/internal/terminal"
	"go-turret-shooter/internal/ui"
	"go-turret-shooter/pkg/render"
)

// Меньше этого поля уже не разобрать
const minCols, minRows = 40, 12

const logPath = "turret.log"

func run(ctx context.Context, settings config.Settings) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal")
	}
	if cols, rows, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (cols < minCols || rows < minRows) {
		log.Printf("terminal is %dx%d, at least %dx%d recommended", cols, rows, minCols, minRows)
	}

	var player audio.Player = audio.Nop{}
	if !settings.Mute {
		bp, err := beepaudio.NewPlayer()
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer bp.Close()
			player = bp
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Пока экран tcell открыт, лог в терминал ломает картинку
	if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer func() {
			log.SetOutput(os.Stderr)
			f.Close()
		}()
	}
	screen.EnableMouse()
	screen.HideCursor()

	hud := ui.NewHUD()
	bridge := score.NewBridge(storage.Open(settings.StorePath), config.BestScoreKey, hud.Score, hud.Best)
	bridge.Load()

	world := render.NewCommandList()
	queue := app.NewFrameQueue()
	game := app.NewGame(app.Deps{
		Width:     config.ScreenWidth,
		Height:    config.ScreenHeight,
		Surface:   world,
		Scheduler: queue,
		Audio:     player,
		Bridge:    bridge,
		Seed:      settings.Seed,
	})

	return terminal.New(screen, game, queue, world, hud).Run(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config.Load()); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
