package console

import "strings"

// Line is one emitted output line.
type Line struct {
	Text  string
	Color string
}

// Markup returns the line with its color as a leading tag.
func (l Line) Markup() string {
	return "<color=" + l.Color + ">" + l.Text
}

// History is the visible output log. It implements command.Sink.
type History struct {
	lines  []Line
	onEmit []func(Line)
}

// EmitLine appends a line below the previous one. Blank text is dropped.
func (h *History) EmitLine(text, color string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	line := Line{Text: text, Color: color}
	h.lines = append(h.lines, line)
	for _, fn := range h.onEmit {
		fn(line)
	}
}

// OnEmit registers fn to run after every appended line. Views use it to
// scroll to the newest line.
func (h *History) OnEmit(fn func(Line)) {
	h.onEmit = append(h.onEmit, fn)
}

// Lines returns a copy of the log, oldest first.
func (h *History) Lines() []Line {
	out := make([]Line, len(h.lines))
	copy(out, h.lines)
	return out
}

// Len returns the number of lines held.
func (h *History) Len() int { return len(h.lines) }

// Clear drops every line and returns how many were removed.
func (h *History) Clear() int {
	n := len(h.lines)
	for i := range h.lines {
		h.lines[i] = Line{}
	}
	h.lines = nil
	return n
}
