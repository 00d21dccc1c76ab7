// Package input lists the discrete events the game reacts to. Frontends
// translate their native key codes into these.
package input

// Key — распознаваемая игрой клавиша
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	}
	return "Unknown"
}
