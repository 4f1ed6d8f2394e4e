package console

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/keshon/cosmos/internal/command"
)

// LogHook captures logrus entries as console lines. Entries may come from any
// goroutine; they are queued until the frame loop drains them into the
// console. Entries tagged with Component are ignored.
type LogHook struct {
	mu      sync.Mutex
	pending []Line
}

// NewLogHook returns an empty hook.
func NewLogHook() *LogHook {
	return &LogHook{}
}

func (h *LogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *LogHook) Fire(e *logrus.Entry) error {
	if strings.TrimSpace(e.Message) == "" || e.Data[ComponentField] == Component {
		return nil
	}
	line := FormatLogEntry(e.Level, e.Message)
	h.mu.Lock()
	h.pending = append(h.pending, line)
	h.mu.Unlock()
	return nil
}

// Drain emits every queued line to out and returns how many were sent.
func (h *LogHook) Drain(out command.Sink) int {
	h.mu.Lock()
	lines := h.pending
	h.pending = nil
	h.mu.Unlock()

	for _, l := range lines {
		out.EmitLine(l.Text, l.Color)
	}
	return len(lines)
}

// FormatLogEntry maps a log level to a prefixed, colored console line.
func FormatLogEntry(level logrus.Level, msg string) Line {
	switch level {
	case logrus.WarnLevel:
		return Line{Text: "[WARN] " + msg, Color: command.ColorWarning}
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return Line{Text: "[ERROR] " + msg, Color: command.ColorError}
	default:
		return Line{Text: "[LOG] " + msg, Color: command.ColorNormal}
	}
}
