package help

import (
	"fmt"

	"github.com/keshon/cosmos/internal/command"
)

const (
	rule   = "---------------------------------"
	banner = "=> <color=#00DD00>Thank you for using<color=#FFFFFF> CosmosConsole<color=#00DD00>!<color=#FFFFFF> <="

	// NoHelpLine is emitted for a matching command without a description.
	NoHelpLine = "<color=#AA8800>There is no help defined for this command.<color=#FFFFFF>"
)

// Catalog is the read side of a command registry.
type Catalog interface {
	All() []command.Command
	Lookup(alias string) []command.Command
}

type Command struct {
	Commands Catalog
	Out      command.Sink
}

func (c *Command) Alias() string { return "help" }
func (c *Command) Brief() string { return "Shows the help list" }

// Run lists every described command, or the help of every command matching
// args[0].
func (c *Command) Run(args []string) {
	if len(args) > 0 {
		c.runCommandHelp(args[0])
		return
	}
	c.runListAllCommands()
}

func (c *Command) runCommandHelp(alias string) {
	for _, cmd := range c.Commands.Lookup(alias) {
		if !cmd.HasHelp() {
			c.Out.EmitLine(NoHelpLine, command.ColorNormal)
			continue
		}
		c.Out.EmitLine(Line(cmd), command.ColorNormal)
	}
}

func (c *Command) runListAllCommands() {
	c.Out.EmitLine(rule, command.ColorNormal)
	c.Out.EmitLine(banner, command.ColorNormal)
	for _, cmd := range c.Commands.All() {
		if !cmd.HasHelp() {
			continue
		}
		c.Out.EmitLine(Line(cmd), command.ColorNormal)
	}
	c.Out.EmitLine(rule, command.ColorNormal)
}

// Line formats the help entry of a single command.
func Line(cmd command.Command) string {
	return fmt.Sprintf("<color=#00DD00>%s<color=#FFFFFF> = <color=#DDDD00>%s<color=#FFFFFF>", cmd.Alias, cmd.Description)
}
