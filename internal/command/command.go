package command

// Handler is the function a command runs. It receives every token that
// followed the alias on the input line, verbatim.
type Handler func(args []string)

// Command represents a console command
type Command struct {
	Alias       string
	Description string
	Handler     Handler
}

// HasHelp reports whether the command carries a description.
func (c Command) HasHelp() bool { return c.Description != "" }

// Runner is a command implemented as a type. Built-in commands implement it
// and are registered through RegisterRunner.
type Runner interface {
	Alias() string
	Brief() string
	Run(args []string)
}
