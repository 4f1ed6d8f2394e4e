package hello

import "github.com/keshon/cosmos/internal/command"

// Command answers with a greeting. It is registered as "test" and is handy
// for checking that input reaches the console.
type Command struct {
	Out command.Sink
}

func (c *Command) Alias() string { return "test" }
func (c *Command) Brief() string { return `Sends a "Hello World!" to the console.` }

func (c *Command) Run(args []string) {
	c.Out.EmitLine("Hello World!", command.ColorNormal)
}
