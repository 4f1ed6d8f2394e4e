package command

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Dispatcher resolves input lines against a Registry and runs the matching
// handlers on the calling goroutine.
type Dispatcher struct {
	registry *Registry
	out      Sink
	log      logrus.FieldLogger
}

// NewDispatcher creates a dispatcher that reports unknown aliases to out.
func NewDispatcher(r *Registry, out Sink) *Dispatcher {
	return &Dispatcher{registry: r, out: out, log: r.log}
}

// Tokenize splits a raw line on single spaces. The first token is the alias,
// the rest are the arguments. Consecutive spaces yield empty arguments.
func Tokenize(raw string) (alias string, args []string) {
	tokens := strings.Split(raw, " ")
	return tokens[0], tokens[1:]
}

// HandleInputLine tokenizes raw and dispatches it.
func (d *Dispatcher) HandleInputLine(raw string) int {
	alias, args := Tokenize(raw)
	return d.Dispatch(alias, args)
}

// Dispatch runs every command registered under alias with args and returns
// how many ran. Handler panics are not recovered here.
func (d *Dispatcher) Dispatch(alias string, args []string) int {
	matches := d.registry.Lookup(alias)
	d.log.WithFields(logrus.Fields{
		"alias":   alias,
		"args":    args,
		"matches": len(matches),
	}).Debug("dispatch")

	if len(matches) == 0 {
		d.out.EmitLine(UnknownAliasMessage(alias), ColorError)
		return 0
	}
	for _, c := range matches {
		c.Handler(args)
	}
	return len(matches)
}

// UnknownAliasMessage is the line emitted when no command matches alias.
func UnknownAliasMessage(alias string) string {
	return fmt.Sprintf("There is no Command with the alias \"%s\".", alias)
}
