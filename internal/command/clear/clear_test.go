package clear_test

import (
	"testing"

	clearcmd "github.com/keshon/cosmos/internal/command/clear"
)

type counter struct{ cleared int }

func (c *counter) Clear() int {
	c.cleared++
	return 0
}

func TestClear_Run(t *testing.T) {
	out := &counter{}
	cmd := &clearcmd.Command{Output: out}
	cmd.Run([]string{"ignored"})

	if out.cleared != 1 {
		t.Fatalf("expected one clear, got %d", out.cleared)
	}
	if cmd.Alias() != "clear" {
		t.Errorf("unexpected alias %q", cmd.Alias())
	}
}
