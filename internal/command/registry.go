package command

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// DuplicatePolicy decides what happens when an alias is registered twice.
type DuplicatePolicy int

const (
	// AllowDuplicates keeps every registration; dispatch runs all matches.
	AllowDuplicates DuplicatePolicy = iota
	// RejectDuplicates ignores a registration whose alias is already taken;
	// dispatch runs the first match only.
	RejectDuplicates
)

func (p DuplicatePolicy) String() string {
	switch p {
	case AllowDuplicates:
		return "allow"
	case RejectDuplicates:
		return "reject"
	default:
		return "unknown"
	}
}

// Registry is an ordered collection of commands. Insertion order is kept and
// drives both help listing and the order in which duplicate aliases run.
type Registry struct {
	mu       sync.RWMutex
	commands []Command
	policy   DuplicatePolicy
	log      logrus.FieldLogger
}

// Option configures a Registry.
type Option func(*Registry)

// WithDuplicatePolicy sets how repeated aliases are handled.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(r *Registry) { r.policy = p }
}

// WithLogger sets the logger used for registry diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{log: discardLogger()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register appends a command. An empty description means the command has no
// help. A nil handler is silently ignored, as is a repeated alias under
// RejectDuplicates.
func (r *Registry) Register(alias, description string, h Handler) {
	if h == nil {
		r.log.WithField("alias", alias).Debug("ignoring command without handler")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.policy == RejectDuplicates && r.indexLocked(alias) >= 0 {
		r.log.WithField("alias", alias).Debug("ignoring duplicate alias")
		return
	}
	r.commands = append(r.commands, Command{Alias: alias, Description: description, Handler: h})
}

// RegisterRunner registers a command implemented as a type.
func (r *Registry) RegisterRunner(c Runner) {
	r.Register(c.Alias(), c.Brief(), c.Run)
}

// Unregister removes every command with the given alias. Unknown aliases are
// ignored.
func (r *Registry) Unregister(alias string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.commands[:0]
	for _, c := range r.commands {
		if c.Alias != alias {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(r.commands); i++ {
		r.commands[i] = Command{}
	}
	r.commands = kept
}

// Lookup returns the commands matching alias in registration order. The
// result is a copy, so handlers may change the registry while it is used.
func (r *Registry) Lookup(alias string) []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []Command
	for _, c := range r.commands {
		if c.Alias != alias {
			continue
		}
		matches = append(matches, c)
		if r.policy == RejectDuplicates {
			break
		}
	}
	return matches
}

// All returns every registered command in registration order.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Command, len(r.commands))
	copy(list, r.commands)
	return list
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// Policy returns the duplicate alias policy.
func (r *Registry) Policy() DuplicatePolicy { return r.policy }

func (r *Registry) indexLocked(alias string) int {
	for i, c := range r.commands {
		if c.Alias == alias {
			return i
		}
	}
	return -1
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
