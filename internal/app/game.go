// internal/app/game.go
package app

import (
	"log"

	"go-turret-shooter/internal/audio"
	"go-turret-shooter/internal/config"
	"go-turret-shooter/internal/entity"
	"go-turret-shooter/internal/event"
	"go-turret-shooter/internal/score"
	"go-turret-shooter/internal/state"
	"go-turret-shooter/internal/system"
	"go-turret-shooter/internal/utils"
	"go-turret-shooter/pkg/render"
)

// Deps — внешние зависимости игры.
type Deps struct {
	Width, Height float64 // 0 — размер экрана из config
	Surface       render.Surface
	Scheduler     Scheduler
	Audio         audio.Player  // nil — без звука
	Bridge        *score.Bridge // nil — счёт нигде не показывается
	Seed          int64         // 0 — от времени
}

// Game holds the main game state and logic.
type Game struct {
	World            *entity.World
	StateMachine     *state.StateMachine
	Loop             *Loop
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	Bridge           *score.Bridge
	ProjectileSystem *system.ProjectileSystem
	TargetSystem     *system.TargetSystem
	CollisionSystem  *system.CollisionSystem
	RenderSystem     *system.RenderSystem

	surface render.Surface
}

// NewGame собирает сессию и переводит её в NotStarted.
func NewGame(d Deps) *Game {
	if d.Surface == nil || d.Scheduler == nil {
		panic("app: surface and scheduler are required")
	}
	if d.Width == 0 || d.Height == 0 {
		d.Width, d.Height = config.ScreenWidth, config.ScreenHeight
	}
	if d.Audio == nil {
		d.Audio = audio.Nop{}
	}

	world := entity.NewWorld(d.Width, d.Height)
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(d.Seed)

	g := &Game{
		World:           world,
		StateMachine:    state.NewStateMachine(),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Bridge:          d.Bridge,
		TargetSystem:    system.NewTargetSystem(world),
		CollisionSystem: system.NewCollisionSystem(world, eventDispatcher, rng),
		RenderSystem:    system.NewRenderSystem(world),
		surface:         d.Surface,
	}
	g.ProjectileSystem = system.NewProjectileSystem(world, eventDispatcher, g)
	g.Loop = NewLoop(d.Scheduler, g.Frame)

	g.StateMachine.Register(state.NewPhaseState(state.NotStarted, g.enterNotStarted, nil))
	g.StateMachine.Register(state.NewPhaseState(state.Ongoing, g.enterOngoing, g.Loop.Stop))
	g.StateMachine.Register(state.NewPhaseState(state.Ended, g.enterEnded, nil))

	// Мост подписывается первым: к моменту логирования рекорд уже обновлён
	if g.Bridge != nil {
		g.Bridge.Subscribe(eventDispatcher)
	}
	audio.NewListener(d.Audio).Subscribe(eventDispatcher)
	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(listener, event.GameStarted, event.GameOver, event.TargetHit, event.ProjectileMissed)

	g.StateMachine.Init(state.NotStarted)
	return g
}

// Phase — текущая фаза игры.
func (g *Game) Phase() state.Phase {
	return g.StateMachine.Current()
}

// Start начинает новую игру из NotStarted или Ended.
func (g *Game) Start() bool {
	return g.StateMachine.Transition(state.Ongoing)
}

// EndGame завершает идущую игру.
func (g *Game) EndGame() {
	g.StateMachine.Transition(state.Ended)
}

// Frame — один кадр: отрисовка, снаряды, мишень, попадания.
// Вне Ongoing ничего не делает.
func (g *Game) Frame() {
	if !g.StateMachine.Is(state.Ongoing) {
		return
	}
	g.surface.Clear()
	g.RenderSystem.Draw(g.surface)

	if !g.ProjectileSystem.Update() {
		return
	}
	g.TargetSystem.Update()
	g.CollisionSystem.Update()
}

func (g *Game) enterNotStarted() {
	g.surface.Clear()
	g.RenderSystem.DrawStartPrompt(g.surface)
}

func (g *Game) enterOngoing() {
	g.World.Reset(g.Rng)
	g.EventDispatcher.Emit(event.GameStarted, g.World.Score)
	g.Loop.Begin()
}

func (g *Game) enterEnded() {
	g.RenderSystem.DrawGameOver(g.surface)
	g.EventDispatcher.Emit(event.GameOver, g.World.Score)
}

// GameEventListener пишет в лог ход игры.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameStarted:
		log.Printf("game started (seed %d, target speed %.2f)", l.game.Rng.Seed(), l.game.World.Target.Speed())
	case event.TargetHit:
		log.Printf("hit: score %d, target speed %.2f", l.game.World.Score, l.game.World.Target.Speed())
	case event.ProjectileMissed:
		log.Printf("miss %v/%d", e.Data, config.MaxConsecutiveMisses)
	case event.GameOver:
		if l.game.Bridge != nil {
			log.Printf("game over: score %d, best %d", l.game.World.Score, l.game.Bridge.Best())
		} else {
			log.Printf("game over: score %d", l.game.World.Score)
		}
	}
}
