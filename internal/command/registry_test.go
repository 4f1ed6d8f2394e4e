package command_test

import (
	"reflect"
	"testing"

	"github.com/keshon/cosmos/internal/command"
)

func noop([]string) {}

func aliases(cmds []command.Command) []string {
	out := make([]string, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, c.Alias)
	}
	return out
}

func TestRegistry_RegisterKeepsOrder(t *testing.T) {
	r := command.NewRegistry()
	r.Register("help", "Shows the help list", noop)
	r.Register("move", "", noop)
	r.Register("fps", "Shows the current FPS.", noop)

	got := aliases(r.All())
	want := []string{"help", "move", "fps"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if r.All()[1].HasHelp() {
		t.Errorf("command without description should have no help")
	}
}

func TestRegistry_NilHandlerIsIgnored(t *testing.T) {
	r := command.NewRegistry()
	r.Register("broken", "never registered", nil)

	if r.Len() != 0 {
		t.Fatalf("expected empty registry, got %v", aliases(r.All()))
	}
}

func TestRegistry_DuplicateAliasesAreKept(t *testing.T) {
	r := command.NewRegistry()
	r.Register("dup", "first", noop)
	r.Register("dup", "second", noop)

	matches := r.Lookup("dup")
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Description != "first" || matches[1].Description != "second" {
		t.Errorf("matches out of order: %+v", matches)
	}
}

func TestRegistry_RejectDuplicates(t *testing.T) {
	r := command.NewRegistry(command.WithDuplicatePolicy(command.RejectDuplicates))
	r.Register("dup", "first", noop)
	r.Register("dup", "second", noop)

	if r.Len() != 1 {
		t.Fatalf("expected 1 command, got %d", r.Len())
	}
	if got := r.Lookup("dup")[0].Description; got != "first" {
		t.Errorf("expected first registration to win, got %q", got)
	}
	if r.Policy().String() != "reject" {
		t.Errorf("unexpected policy %v", r.Policy())
	}
}

func TestRegistry_UnregisterRemovesAllMatches(t *testing.T) {
	r := command.NewRegistry()
	r.Register("a", "", noop)
	r.Register("b", "", noop)
	r.Register("a", "", noop)
	r.Register("c", "", noop)

	r.Unregister("a")

	got := aliases(r.All())
	want := []string{"b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRegistry_UnregisterUnknownIsNoop(t *testing.T) {
	r := command.NewRegistry()
	r.Register("help", "", noop)

	r.Unregister("missing")

	if r.Len() != 1 {
		t.Fatalf("expected registry untouched, got %d commands", r.Len())
	}
}

func TestRegistry_AllReturnsCopy(t *testing.T) {
	r := command.NewRegistry()
	r.Register("help", "Shows the help list", noop)

	list := r.All()
	list[0].Alias = "changed"

	if r.All()[0].Alias != "help" {
		t.Fatalf("registry was modified through All()")
	}
}

type runner struct{ calls int }

func (r *runner) Alias() string     { return "run" }
func (r *runner) Brief() string     { return "runs" }
func (r *runner) Run(args []string) { r.calls++ }

func TestRegistry_RegisterRunner(t *testing.T) {
	r := command.NewRegistry()
	impl := &runner{}
	r.RegisterRunner(impl)

	matches := r.Lookup("run")
	if len(matches) != 1 || matches[0].Description != "runs" {
		t.Fatalf("unexpected registration %+v", matches)
	}
	matches[0].Handler(nil)
	if impl.calls != 1 {
		t.Errorf("expected runner to be called once, got %d", impl.calls)
	}
}
