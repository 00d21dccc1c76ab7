// internal/state/state.go
package state

import "fmt"

// Phase — фаза жизненного цикла игры
type Phase int

const (
	NotStarted Phase = iota
	Ongoing
	Ended
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "NotStarted"
	case Ongoing:
		return "Ongoing"
	case Ended:
		return "Ended"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// State — интерфейс для всех состояний
type State interface {
	Phase() Phase
	Enter()
	Exit()
}

// transitions — разрешённые переходы. Ended не терминальна: из неё можно
// начать новую игру.
var transitions = map[Phase][]Phase{
	NotStarted: {Ongoing},
	Ongoing:    {Ended},
	Ended:      {Ongoing},
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	states  map[Phase]State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{states: make(map[Phase]State)}
}

// Register добавляет состояние. Повторная регистрация фазы заменяет прежнее.
func (sm *StateMachine) Register(s State) {
	sm.states[s.Phase()] = s
}

// CanTransition проверяет, допустим ли переход from -> to
func (sm *StateMachine) CanTransition(from, to Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// SetState устанавливает новое состояние без проверки переходов.
// Используется для начального состояния.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Init входит в зарегистрированную фазу p без проверки переходов.
func (sm *StateMachine) Init(p Phase) bool {
	s, ok := sm.states[p]
	if !ok {
		return false
	}
	sm.SetState(s)
	return true
}

// Transition переводит машину в зарегистрированную фазу to.
// Недопустимый переход игнорируется, возвращается false.
func (sm *StateMachine) Transition(to Phase) bool {
	if sm.current == nil {
		return false
	}
	next, ok := sm.states[to]
	if !ok || !sm.CanTransition(sm.current.Phase(), to) {
		return false
	}
	sm.SetState(next)
	return true
}

// Current возвращает текущую фазу. Пока состояние не задано — NotStarted.
func (sm *StateMachine) Current() Phase {
	if sm.current == nil {
		return NotStarted
	}
	return sm.current.Phase()
}

// Is — сокращение для sm.Current() == p
func (sm *StateMachine) Is(p Phase) bool {
	return sm.Current() == p
}
