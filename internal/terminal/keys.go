// internal/terminal/keys.go
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"go-turret-shooter/internal/input"
)

// KeyFromTcell переводит клавишу tcell в игровую.
func KeyFromTcell(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyEnter:
		return input.KeyEnter
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return input.KeySpace
		}
	}
	return input.KeyUnknown
}

// isQuit — Esc или Ctrl-C.
func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

// isStart — клавиша s заменяет клик по кнопке старта.
func isStart(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 's' || ev.Rune() == 'S')
}
