package frames

import (
	"math"
	"time"
)

// WindowSize is the number of frame times averaged by a Sampler.
const WindowSize = 50

// Sampler records frame delta times and derives frames per second from the
// most recent WindowSize of them. It is written by the frame loop and read by
// commands on the same goroutine.
type Sampler struct {
	window  *Window[time.Duration]
	capture bool
}

// NewSampler returns a sampler. When capture is false, Add does nothing.
func NewSampler(capture bool) *Sampler {
	return &Sampler{window: NewWindow[time.Duration](WindowSize), capture: capture}
}

// Add records the duration of one frame.
func (s *Sampler) Add(delta time.Duration) {
	if !s.capture {
		return
	}
	s.window.Push(delta)
}

// Len returns the number of samples held.
func (s *Sampler) Len() int { return s.window.Len() }

// Capturing reports whether the sampler records frames.
func (s *Sampler) Capturing() bool { return s.capture }

// FPS returns the frame rate over the held samples, rounded half to even, or
// 0 when there is nothing to average.
func (s *Sampler) FPS() int {
	total := s.window.Sum()
	if total <= 0 {
		return 0
	}
	return int(math.RoundToEven(float64(s.window.Len()) / total.Seconds()))
}
