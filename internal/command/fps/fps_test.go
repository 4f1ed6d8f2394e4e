package fps_test

import (
	"testing"

	"github.com/keshon/cosmos/internal/command"
	"github.com/keshon/cosmos/internal/command/fps"
)

type fixed int

func (f fixed) FPS() int { return int(f) }

type recorder struct{ lines []string }

func (r *recorder) EmitLine(text, color string) { r.lines = append(r.lines, text) }

func TestClassify(t *testing.T) {
	tests := []struct {
		fps  int
		tier fps.Tier
	}{
		{0, fps.TierLow},
		{29, fps.TierLow},
		{30, fps.TierMid},
		{45, fps.TierMid},
		{60, fps.TierMid},
		{61, fps.TierHigh},
		{144, fps.TierHigh},
	}
	for _, tt := range tests {
		if got := fps.Classify(tt.fps); got != tt.tier {
			t.Errorf("Classify(%d) = %v, want %v", tt.fps, got, tt.tier)
		}
	}
}

func TestTierColors(t *testing.T) {
	if fps.TierLow.Color() != command.ColorError ||
		fps.TierMid.Color() != command.ColorWarning ||
		fps.TierHigh.Color() != command.ColorSuccess {
		t.Fatalf("unexpected tier colors")
	}
}

func TestCommand_Run(t *testing.T) {
	out := &recorder{}
	cmd := &fps.Command{Frames: fixed(61), Out: out}
	cmd.Run(nil)

	if len(out.lines) != 1 {
		t.Fatalf("expected one line, got %q", out.lines)
	}
	if want := "FPS: <color=#00DD00>61<color=#FFFFFF>"; out.lines[0] != want {
		t.Errorf("expected %q, got %q", want, out.lines[0])
	}
}
