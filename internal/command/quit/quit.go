package quit

import "github.com/keshon/cosmos/internal/command"

const (
	FailedLine  = "Quitting Failed..."
	TauntLine   = "I'll never let you go! (~0o0)~ Uuuuuu~"
	failedColor = "#DD0000"
	tauntColor  = "#AA0000"
)

// Quitter asks the host to terminate. The request may complete later, or
// not at all.
type Quitter interface {
	Quit()
}

// QuitterFunc adapts a function to the Quitter interface.
type QuitterFunc func()

func (f QuitterFunc) Quit() { f() }

type Command struct {
	Host Quitter
	Out  command.Sink
}

func (c *Command) Alias() string { return "quit" }
func (c *Command) Brief() string { return "Quits the game." }

// Run requests termination and then reports failure. The host only exits
// after the current frame, so both lines are printed even when quitting
// succeeds.
func (c *Command) Run(args []string) {
	c.Host.Quit()
	c.Out.EmitLine(FailedLine, failedColor)
	c.Out.EmitLine(TauntLine, tauntColor)
}
