package state

// PhaseState — состояние с колбэками входа и выхода.
type PhaseState struct {
	phase   Phase
	OnEnter func()
	OnExit  func()
}

func NewPhaseState(phase Phase, onEnter, onExit func()) *PhaseState {
	return &PhaseState{phase: phase, OnEnter: onEnter, OnExit: onExit}
}

func (s *PhaseState) Phase() Phase { return s.phase }

func (s *PhaseState) Enter() {
	if s.OnEnter != nil {
		s.OnEnter()
	}
}

func (s *PhaseState) Exit() {
	if s.OnExit != nil {
		s.OnExit()
	}
}
