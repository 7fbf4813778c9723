// Package tui is the Bubble Tea host for the padl engine. It normalizes
// key presses into engine events, subscribes to the event loop's state
// stream, and paints each snapshot. The engine itself never sees the
// terminal.
package tui

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/padlkit/padl/internal/config"
	"github.com/padlkit/padl/internal/engine"
	"github.com/padlkit/padl/internal/storage"
)

// stateMsg carries one engine snapshot into the Bubble Tea update loop.
type stateMsg engine.State

// Model runs one padl session.
type Model struct {
	cfg   config.PadlConfig
	prefs *storage.Store // nil when the prefs database is unavailable

	eng    *engine.Engine
	loop   *engine.Loop
	cancel context.CancelFunc

	state engine.State

	// Live control-panel values, pushed to the engine as events whenever
	// they change and persisted via prefs.
	slider   float64
	breakout bool
	music    bool

	keys   KeyMap
	help   help.Model
	screen *Screen
	width  int
	height int

	// halted is set once the loop has been stopped after a win; event
	// delivery stays off until restart builds a fresh fold.
	halted   bool
	quitting bool
}

// Options configures a new session.
type Options struct {
	Width  int
	Height int
	Seed   int64 // 0 means time-based
}

// NewModel creates a session model for the given configuration.
func NewModel(cfg config.PadlConfig, prefs *storage.Store, opts Options) Model {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := Model{
		cfg:      cfg,
		prefs:    prefs,
		slider:   cfg.Control.Slider,
		breakout: cfg.Control.Breakout,
		music:    cfg.Control.Music,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		screen:   NewScreen(opts.Width, opts.Height),
		width:    opts.Width,
		height:   opts.Height,
	}

	// Saved control-panel settings win over config defaults.
	if prefs != nil {
		if p, ok, err := prefs.Load(); err == nil && ok {
			m.slider = p.Slider
			m.breakout = p.Breakout
			m.music = p.Music
		}
	}

	m.eng = engine.New(cfg.Engine(), rand.New(rand.NewSource(seed)))
	m.state = m.eng.Initial()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.loop = engine.NewLoop(m.eng, tickInterval(cfg), cfg.Timing.TickStep)
	m.loop.Run(ctx)
	return m
}

func tickInterval(cfg config.PadlConfig) time.Duration {
	rate := cfg.Timing.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// Init pushes the live control values into the fresh fold and subscribes
// to the state stream.
func (m Model) Init() tea.Cmd {
	m.pushPanel()
	return waitState(m.loop.States())
}

// pushPanel re-samples the control panel into the engine, so the fold
// always reflects the live slider and toggle rather than a stale snapshot.
func (m Model) pushPanel() {
	m.loop.Push(engine.SetDifficulty{Value: m.slider})
	m.loop.Push(engine.ToggleBreakout{Enabled: m.breakout})
}

// waitState blocks on the next snapshot. A closed stream ends the
// subscription without a message.
func waitState(ch <-chan engine.State) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-ch
		if !ok {
			return nil
		}
		return stateMsg(st)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case stateMsg:
		m.state = engine.State(msg)
		if m.state.Winner != engine.NoWinner && !m.halted {
			// Game over: halt further event delivery. The restart key
			// re-establishes a fresh fold.
			m.loop.Stop()
			m.halted = true
			return m, nil
		}
		return m, waitState(m.loop.States())
	}

	return m, nil
}

// handleKey normalizes key presses into engine events and control-panel
// changes.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.loop.Stop()
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.loop.Push(engine.Slide{Direction: -m.cfg.Paddle.SlideStep})

	case key.Matches(msg, m.keys.Down):
		m.loop.Push(engine.Slide{Direction: m.cfg.Paddle.SlideStep})

	case key.Matches(msg, m.keys.Restart):
		return m.restart()

	case key.Matches(msg, m.keys.Breakout):
		m.breakout = !m.breakout
		m.loop.Push(engine.ToggleBreakout{Enabled: m.breakout})
		m.savePanel()

	case key.Matches(msg, m.keys.HarderAI):
		m.slider = clampSlider(m.slider + m.cfg.Control.SliderStep)
		m.loop.Push(engine.SetDifficulty{Value: m.slider})
		m.savePanel()

	case key.Matches(msg, m.keys.EasierAI):
		m.slider = clampSlider(m.slider - m.cfg.Control.SliderStep)
		m.loop.Push(engine.SetDifficulty{Value: m.slider})
		m.savePanel()

	case key.Matches(msg, m.keys.Music):
		m.music = !m.music
		m.savePanel()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// restart re-establishes the scheduler and fold. After a win the old loop
// is already stopped, so a fresh one is built; mid-game, a Restart event
// through the running loop does the reset.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if !m.halted {
		m.loop.Push(engine.Restart{})
		m.pushPanel()
		return m, nil
	}

	m.cancel()
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.loop = engine.NewLoop(m.eng, tickInterval(m.cfg), m.cfg.Timing.TickStep)
	m.loop.Run(ctx)
	m.pushPanel()
	m.halted = false
	m.state = m.eng.Initial()
	return m, waitState(m.loop.States())
}

// savePanel persists the control panel, best effort.
func (m Model) savePanel() {
	if m.prefs == nil {
		return
	}
	//nolint:errcheck // losing a preference write never interrupts play
	m.prefs.Save(storage.Prefs{Slider: m.slider, Breakout: m.breakout, Music: m.music})
}

func clampSlider(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 20 {
		return 20
	}
	return v
}

// View renders the current snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderSession(&m)
}

// Run starts a local terminal session with the given model.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	m.loop.Stop()
	m.cancel()
	return err
}
