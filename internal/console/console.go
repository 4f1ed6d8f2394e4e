// Package console ties the command registry, the dispatcher and the output
// log together behind the API the rest of an application talks to.
//
// A Console is not safe for concurrent use. Drive it from one goroutine, the
// frame loop, and feed lines from elsewhere through a LogHook.
package console

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/keshon/cosmos/internal/command"
	clearcmd "github.com/keshon/cosmos/internal/command/clear"
	"github.com/keshon/cosmos/internal/command/fps"
	"github.com/keshon/cosmos/internal/command/hello"
	"github.com/keshon/cosmos/internal/command/help"
	"github.com/keshon/cosmos/internal/command/quit"
)

const (
	initializingLine = "Initialize CosmosConsole..."
	initializedLine  = "Initialized!"
)

// ComponentField and Component tag the console's own log entries. LogHook
// skips entries carrying them, so the console never logs into itself.
const (
	ComponentField = "component"
	Component      = "console"
)

type Console struct {
	registry    *command.Registry
	dispatcher  *command.Dispatcher
	history     *History
	state       State
	middlewares []command.Middleware
	log         logrus.FieldLogger
}

type Option func(*options)

type options struct {
	policy command.DuplicatePolicy
	log    logrus.FieldLogger
}

// WithDuplicatePolicy selects how repeated aliases behave.
func WithDuplicatePolicy(p command.DuplicatePolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.log = l }
}

// New returns a closed console with an empty registry.
func New(opts ...Option) *Console {
	o := options{policy: command.AllowDuplicates}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.log = l
	}

	log := o.log.WithField(ComponentField, Component)

	c := &Console{
		history: &History{},
		state:   Closed,
		log:     log,
	}
	c.registry = command.NewRegistry(
		command.WithDuplicatePolicy(o.policy),
		command.WithLogger(log),
	)
	c.dispatcher = command.NewDispatcher(c.registry, c.history)
	return c
}

// Use adds middlewares applied to every command registered afterwards.
func (c *Console) Use(mws ...command.Middleware) {
	c.middlewares = append(c.middlewares, mws...)
}

// Register adds a command. See command.Registry.Register.
func (c *Console) Register(alias, description string, h command.Handler) {
	cmd := command.ApplyMiddlewares(
		command.Command{Alias: alias, Description: description, Handler: h},
		c.middlewares...,
	)
	c.registry.Register(cmd.Alias, cmd.Description, cmd.Handler)
}

// RegisterRunner adds a command implemented as a type.
func (c *Console) RegisterRunner(r command.Runner) {
	c.Register(r.Alias(), r.Brief(), r.Run)
}

// Unregister removes every command with alias.
func (c *Console) Unregister(alias string) {
	c.registry.Unregister(alias)
}

// Commands lists the registered commands in order.
func (c *Console) Commands() []command.Command {
	return c.registry.All()
}

// Logger returns the console's diagnostic logger. Entries written through it
// are tagged with Component and stay out of the console's own output.
func (c *Console) Logger() logrus.FieldLogger { return c.log }

// Registry exposes the underlying registry.
func (c *Console) Registry() *command.Registry { return c.registry }

// Initialize registers the built-in commands, announcing progress when
// announce is set.
func (c *Console) Initialize(host quit.Quitter, frames fps.Source, announce bool) {
	if announce {
		c.EmitLine(initializingLine, command.ColorNotice)
	}

	c.RegisterRunner(&help.Command{Commands: c.registry, Out: c})
	c.RegisterRunner(&hello.Command{Out: c})
	c.RegisterRunner(&quit.Command{Host: host, Out: c})
	c.RegisterRunner(&fps.Command{Frames: frames, Out: c})
	c.RegisterRunner(&clearcmd.Command{Output: c})

	if announce {
		c.EmitLine(initializedLine, command.ColorNotice)
	}
	c.log.WithField("commands", c.registry.Len()).Info("console initialized")
}

// Submit handles one line typed by the user.
func (c *Console) Submit(line string) int {
	return c.dispatcher.HandleInputLine(line)
}

// Dispatch runs the commands registered under alias.
func (c *Console) Dispatch(alias string, args []string) int {
	return c.dispatcher.Dispatch(alias, args)
}

// EmitLine appends a line to the output log.
func (c *Console) EmitLine(text, color string) {
	c.history.EmitLine(text, color)
}

// Println appends a line in the normal color.
func (c *Console) Println(text string) {
	c.history.EmitLine(text, command.ColorNormal)
}

// Clear empties the output log and returns how many lines were removed.
func (c *Console) Clear() int {
	n := c.history.Clear()
	c.log.WithField("lines", n).Debug("console cleared")
	return n
}

// History returns the output log.
func (c *Console) History() *History { return c.history }

func (c *Console) Open()  { c.state = Open }
func (c *Console) Close() { c.state = Closed }

// Toggle flips between Open and Closed.
func (c *Console) Toggle() {
	if c.state == Open {
		c.Close()
		return
	}
	c.Open()
}

func (c *Console) IsOpen() bool { return c.state == Open }
func (c *Console) State() State { return c.state }
