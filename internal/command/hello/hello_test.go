package hello_test

import (
	"testing"

	"github.com/keshon/cosmos/internal/command"
	"github.com/keshon/cosmos/internal/command/hello"
)

func TestHello_Run(t *testing.T) {
	var got []string
	out := command.SinkFunc(func(text, color string) { got = append(got, text+"|"+color) })

	cmd := &hello.Command{Out: out}
	cmd.Run(nil)

	if len(got) != 1 || got[0] != "Hello World!|"+command.ColorNormal {
		t.Fatalf("unexpected output %q", got)
	}
	if cmd.Alias() != "test" {
		t.Errorf("unexpected alias %q", cmd.Alias())
	}
}
