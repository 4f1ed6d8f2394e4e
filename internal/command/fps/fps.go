package fps

import (
	"fmt"

	"github.com/keshon/cosmos/internal/command"
)

// Source reports the current frames per second.
type Source interface {
	FPS() int
}

// Tier is the color band of an FPS reading.
type Tier int

const (
	TierLow Tier = iota + 1
	TierMid
	TierHigh
)

// Classify returns TierLow below 30, TierHigh above 60 and TierMid otherwise.
func Classify(fps int) Tier {
	switch {
	case fps > 60:
		return TierHigh
	case fps >= 30:
		return TierMid
	default:
		return TierLow
	}
}

func (t Tier) Color() string {
	switch t {
	case TierHigh:
		return command.ColorSuccess
	case TierMid:
		return command.ColorWarning
	default:
		return command.ColorError
	}
}

type Command struct {
	Frames Source
	Out    command.Sink
}

func (c *Command) Alias() string { return "fps" }
func (c *Command) Brief() string { return "Shows the current FPS." }

func (c *Command) Run(args []string) {
	c.Out.EmitLine(Line(c.Frames.FPS()), command.ColorNormal)
}

// Line formats an FPS reading with its tier color.
func Line(fps int) string {
	return fmt.Sprintf("FPS: <color=%s>%d<color=#FFFFFF>", Classify(fps).Color(), fps)
}
