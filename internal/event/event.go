// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — игровое событие. Data зависит от типа, см. types.go.
type Event struct {
	Type EventType
	Data any
}

// Listener — подписчик на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher — синхронная шина событий одной игры. Подписчики вызываются
// в порядке подписки, в той же горутине, что и Dispatch.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]Listener)}
}

// Subscribe подписывает listener сразу на несколько типов событий.
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Dispatch отправляет событие подписчикам его типа.
func (d *Dispatcher) Dispatch(event Event) {
	for _, l := range d.listeners[event.Type] {
		l.OnEvent(event)
	}
}

// Emit — сокращение для Dispatch(Event{Type: t, Data: data}).
func (d *Dispatcher) Emit(t EventType, data any) {
	d.Dispatch(Event{Type: t, Data: data})
}
