// internal/app/loop.go
package app

// Scheduler вызывает колбэк один раз, на следующем кадре дисплея.
type Scheduler interface {
	RequestFrame(cb func())
}

// Loop — покадровый цикл игры. Каждый кадр заново запрашивает следующий,
// пока флаг active взведён. Поколение отсекает колбэки, запрошенные до
// последнего Begin.
type Loop struct {
	scheduler  Scheduler
	frame      func()
	active     bool
	generation uint64
}

func NewLoop(scheduler Scheduler, frame func()) *Loop {
	return &Loop{scheduler: scheduler, frame: frame}
}

// Begin запускает цикл: первый кадр будет на следующем тике дисплея.
func (l *Loop) Begin() {
	l.generation++
	l.active = true
	l.schedule(l.generation)
}

// Stop останавливает цикл. Уже запрошенный кадр выполнится вхолостую.
func (l *Loop) Stop() {
	l.active = false
}

func (l *Loop) Active() bool {
	return l.active
}

func (l *Loop) schedule(gen uint64) {
	l.scheduler.RequestFrame(func() { l.step(gen) })
}

func (l *Loop) step(gen uint64) {
	if !l.active || gen != l.generation {
		return
	}
	l.frame()
	if l.active && gen == l.generation {
		l.schedule(gen)
	}
}

// FrameQueue — Scheduler для внешнего цикла (ebiten Update, тикер терминала).
// Колбэки, запрошенные во время Tick, выполнятся на следующем Tick.
type FrameQueue struct {
	pending []func()
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) RequestFrame(cb func()) {
	q.pending = append(q.pending, cb)
}

// Tick выполняет накопленные колбэки и возвращает их число.
func (q *FrameQueue) Tick() int {
	cbs := q.pending
	q.pending = nil
	for _, cb := range cbs {
		cb()
	}
	return len(cbs)
}

// Pending — сколько колбэков ждут следующего Tick.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
