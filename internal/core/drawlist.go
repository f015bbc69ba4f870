package core

// Align controls horizontal text anchoring relative to the x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextStyle describes how a text command is drawn.
type TextStyle struct {
	Size  float64 // Font size in viewport units
	Align Align
	Color Color
}

// CommandKind identifies a recorded draw command.
type CommandKind int

const (
	CmdClear CommandKind = iota
	CmdFillRect
	CmdText
)

// Command is a single recorded draw call.
type Command struct {
	Kind  CommandKind
	Rect  Rect      // CmdFillRect
	Color Color     // CmdFillRect
	Text  string    // CmdText
	X, Y  float64   // CmdText anchor (Y is the baseline)
	Style TextStyle // CmdText
}

// DrawList is a renderer that records draw calls for later replay.
// Clear drops everything recorded so far, so the list always holds
// exactly one frame.
type DrawList struct {
	cmds []Command
}

// NewDrawList creates an empty draw list.
func NewDrawList() *DrawList {
	return &DrawList{cmds: make([]Command, 0, 32)}
}

// Clear starts a new frame.
func (d *DrawList) Clear() {
	d.cmds = d.cmds[:0]
	d.cmds = append(d.cmds, Command{Kind: CmdClear})
}

// FillRect records a filled rectangle.
func (d *DrawList) FillRect(r Rect, c Color) {
	d.cmds = append(d.cmds, Command{Kind: CmdFillRect, Rect: r, Color: c})
}

// DrawText records a text draw.
func (d *DrawList) DrawText(text string, x, y float64, style TextStyle) {
	d.cmds = append(d.cmds, Command{Kind: CmdText, Text: text, X: x, Y: y, Style: style})
}

// Commands returns the commands of the current frame.
// The returned slice is only valid until the next Clear.
func (d *DrawList) Commands() []Command {
	return d.cmds
}

// Texts returns the strings of all text commands in the current frame.
func (d *DrawList) Texts() []string {
	var out []string
	for _, c := range d.cmds {
		if c.Kind == CmdText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Rects returns the rectangles of all fill commands in the current frame.
func (d *DrawList) Rects() []Rect {
	var out []Rect
	for _, c := range d.cmds {
		if c.Kind == CmdFillRect {
			out = append(out, c.Rect)
		}
	}
	return out
}
