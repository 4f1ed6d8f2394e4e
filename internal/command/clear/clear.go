package clear

// Clearer drops the visible output history.
type Clearer interface {
	Clear() int
}

// Command wipes the output log. Registered commands are not affected.
type Command struct {
	Output Clearer
}

func (c *Command) Alias() string { return "clear" }
func (c *Command) Brief() string { return "Clears the console." }

func (c *Command) Run(args []string) {
	c.Output.Clear()
}
