package render

import "image/color"

type opKind int

const (
	opClear opKind = iota
	opImage
	opRect
	opText
)

// Command is one recorded drawing call.
type Command struct {
	kind   opKind
	Sprite Sprite
	Rect   Rect
	Color  color.Color
	Text   string
	X, Y   float64
	Size   float64
}

// CommandList records drawing calls so a frame computed in the game tick can
// be replayed onto the real screen later, as many times as needed.
// Clear drops everything recorded so far.
type CommandList struct {
	cmds []Command
}

func NewCommandList() *CommandList {
	return &CommandList{cmds: make([]Command, 0, 16)}
}

func (l *CommandList) Clear() {
	l.cmds = l.cmds[:0]
	l.cmds = append(l.cmds, Command{kind: opClear})
}

func (l *CommandList) DrawImage(sprite Sprite, r Rect) {
	l.cmds = append(l.cmds, Command{kind: opImage, Sprite: sprite, Rect: r})
}

func (l *CommandList) FillRect(r Rect, c color.Color) {
	l.cmds = append(l.cmds, Command{kind: opRect, Rect: r, Color: c})
}

func (l *CommandList) FillText(s string, x, y, size float64, c color.Color) {
	l.cmds = append(l.cmds, Command{kind: opText, Text: s, X: x, Y: y, Size: size, Color: c})
}

// Commands returns the recorded calls. The slice is reused by Clear.
func (l *CommandList) Commands() []Command {
	return l.cmds
}

// Texts returns the strings drawn with FillText, in order.
func (l *CommandList) Texts() []string {
	var out []string
	for _, c := range l.cmds {
		if c.kind == opText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Sprites returns how many times each sprite was drawn.
func (l *CommandList) Sprites() map[Sprite]int {
	out := make(map[Sprite]int)
	for _, c := range l.cmds {
		if c.kind == opImage {
			out[c.Sprite]++
		}
	}
	return out
}

// ReplayTo draws the recorded calls onto dst.
func (l *CommandList) ReplayTo(dst Surface) {
	for _, c := range l.cmds {
		switch c.kind {
		case opClear:
			dst.Clear()
		case opImage:
			dst.DrawImage(c.Sprite, c.Rect)
		case opRect:
			dst.FillRect(c.Rect, c.Color)
		case opText:
			dst.FillText(c.Text, c.X, c.Y, c.Size, c.Color)
		}
	}
}
