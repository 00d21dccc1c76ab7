// internal/app/input.go
package app

import (
	"go-turret-shooter/internal/event"
	"go-turret-shooter/internal/input"
	"go-turret-shooter/internal/state"
)

// HandleKey применяет нажатие клавиши. Неизвестные клавиши игнорируются.
func (g *Game) HandleKey(k input.Key) {
	switch k {
	case input.KeyLeft:
		if g.StateMachine.Is(state.Ended) {
			return
		}
		g.World.Turret.MoveLeft()
	case input.KeyRight:
		if g.StateMachine.Is(state.Ended) {
			return
		}
		g.World.Turret.MoveRight(g.World.Width)
	case input.KeySpace:
		if !g.StateMachine.Is(state.Ongoing) {
			return
		}
		p := g.World.Fire()
		g.EventDispatcher.Emit(event.ProjectileFired, p)
	case input.KeyEnter:
		if g.StateMachine.Is(state.NotStarted) {
			g.Start()
		}
	}
}

// HandleStartButton — клик по кнопке старта. Работает из NotStarted и Ended.
func (g *Game) HandleStartButton() {
	if g.StateMachine.Is(state.Ongoing) {
		return
	}
	g.Start()
}
