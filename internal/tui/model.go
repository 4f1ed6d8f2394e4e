// Package tui hosts the console in a terminal. It plays the part of the game
// loop: it ticks frames, feeds the FPS sampler, forwards captured log lines
// and turns key presses into console input.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keshon/cosmos/internal/command"
	"github.com/keshon/cosmos/internal/console"
	"github.com/keshon/cosmos/internal/frames"
	"github.com/keshon/cosmos/internal/markup"
)

const (
	prompt     = "> "
	closedHint = "\033[90mF12 opens the console, Ctrl+C exits\033[0m"
	rule       = "\033[90m─\033[0m"
)

type frameMsg time.Time

// Options tunes the host.
type Options struct {
	FrameRate int
}

// Model is the bubbletea model of the console host. It also serves as the
// Quitter of the quit command.
type Model struct {
	console  *console.Console
	sampler  *frames.Sampler
	logs     *console.LogHook
	interval time.Duration

	input     []rune
	scroll    int
	width     int
	height    int
	lastFrame time.Time
	quitting  bool
}

// New returns a host for c. logs may be nil.
func New(c *console.Console, sampler *frames.Sampler, logs *console.LogHook, opts Options) *Model {
	rate := opts.FrameRate
	if rate <= 0 {
		rate = 60
	}
	m := &Model{
		console:  c,
		sampler:  sampler,
		logs:     logs,
		interval: time.Second / time.Duration(rate),
		width:    80,
		height:   24,
	}
	c.History().OnEmit(func(console.Line) { m.scroll = 0 })
	return m
}

// Quit asks the program to exit once the current update has finished.
func (m *Model) Quit() { m.quitting = true }

// Quitting reports whether an exit has been requested.
func (m *Model) Quitting() bool { return m.quitting }

// Input returns the current contents of the input field.
func (m *Model) Input() string { return string(m.input) }

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case frameMsg:
		m.frame(time.Time(msg))
		cmd = m.tick()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		m.handleKey(msg)
	}
	if m.quitting {
		return m, tea.Quit
	}
	return m, cmd
}

func (m *Model) frame(now time.Time) {
	if !m.lastFrame.IsZero() {
		m.sampler.Add(now.Sub(m.lastFrame))
	}
	m.lastFrame = now
	if m.logs != nil {
		m.logs.Drain(m.console)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	if msg.Type == tea.KeyF12 {
		m.console.Open()
		return
	}
	if !m.console.State().Interactable() {
		return
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.console.Close()
	case tea.KeyEnter:
		m.submit()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, msg.Runes...)
	case tea.KeyUp:
		m.scrollBy(1)
	case tea.KeyDown:
		m.scrollBy(-1)
	case tea.KeyPgUp:
		m.scrollBy(m.logRows())
	case tea.KeyPgDown:
		m.scrollBy(-m.logRows())
	}
}

// submit dispatches the input field. An empty field does nothing.
func (m *Model) submit() {
	if len(m.input) == 0 {
		return
	}
	line := string(m.input)
	m.input = m.input[:0]
	m.console.Submit(line)
}

func (m *Model) scrollBy(n int) {
	m.scroll += n
	if limit := m.console.History().Len() - m.logRows(); m.scroll > limit {
		m.scroll = limit
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m *Model) logRows() int {
	if rows := m.height - 2; rows > 0 {
		return rows
	}
	return 1
}

func (m *Model) View() string {
	if m.console.State().Alpha() == 0 {
		return closedHint
	}

	lines := m.console.History().Lines()
	end := len(lines) - min(m.scroll, len(lines))
	start := end - m.logRows()
	if start < 0 {
		start = 0
	}

	var b strings.Builder
	for i := 0; i < m.logRows()-(end-start); i++ {
		b.WriteString("\n")
	}
	for _, l := range lines[start:end] {
		b.WriteString(markup.ANSI(l.Text, l.Color))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(rule, m.width))
	b.WriteString("\n")
	b.WriteString(markup.ANSI(prompt+string(m.input)+"_", command.ColorNormal))
	return b.String()
}
