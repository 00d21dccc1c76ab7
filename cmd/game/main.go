// cmd/game/main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-turret-shooter/internal/app"
	"go-turret-shooter/internal/assets"
	"go-turret-shooter/internal/audio"
	"go-turret-shooter/internal/audio/ebitenaudio"
	"go-turret-shooter/internal/config"
	"go-turret-shooter/internal/score"
	"go-turret-shooter/internal/storage"
	"go-turret-shooter/internal/ui"
	"go-turret-shooter/pkg/render"
	"go-turret-shooter/pkg/render/gfx"
)

type AppGame struct {
	game    *app.Game
	queue   *app.FrameQueue
	world   *render.CommandList
	hud     *ui.HUD
	surface *gfx.Surface
}

func (a *AppGame) Update() error {
	for _, k := range pressedKeys() {
		a.game.HandleKey(k)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if a.hud.StartButton.IsClicked(float64(x), float64(y)) {
			a.game.HandleStartButton()
		}
	}
	a.queue.Tick()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.surface.SetTarget(screen)
	a.world.ReplayTo(a.surface)
	x, y := ebiten.CursorPosition()
	a.hud.Draw(a.surface, float64(x), float64(y))
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func newAppGame(settings config.Settings) (*AppGame, error) {
	fonts, err := gfx.NewFontCache()
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	var player audio.Player = audio.Nop{}
	if !settings.Mute {
		player = ebitenaudio.NewPlayer()
	}

	hud := ui.NewHUD()
	bridge := score.NewBridge(storage.Open(settings.StorePath), config.BestScoreKey, hud.Score, hud.Best)
	best := bridge.Load()
	log.Printf("best score %d (%s)", best, settings.StorePath)

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

	return &AppGame{
		game:    game,
		queue:   queue,
		world:   world,
		hud:     hud,
		surface: gfx.NewSurface(assets.NewSpriteManager(), fonts, config.BackgroundColor),
	}, nil
}

func main() {
	settings := config.Load()
	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	a, err := newAppGame(settings)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Turret Shooter")
	ebiten.SetTPS(config.TicksPerSec)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
