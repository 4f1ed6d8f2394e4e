package command

// Colors used for console output. Lines may also carry inline
// <color=#RRGGBB> tags, which the core passes through untouched.
const (
	ColorNormal  = "#FFFFFF"
	ColorError   = "#DD0000"
	ColorWarning = "#DDDD00"
	ColorSuccess = "#00DD00"
	ColorNotice  = "#00AA00"
)

// Sink receives console output, one line per call.
type Sink interface {
	EmitLine(text, color string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(text, color string)

// EmitLine calls f(text, color).
func (f SinkFunc) EmitLine(text, color string) { f(text, color) }
