package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/games/breakout"
	"github.com/vovakirdan/bricks/internal/logging"
	"github.com/vovakirdan/bricks/internal/storage"
)

// helpRows is the height reserved for the help bar below the field.
const helpRows = 1

// Options configures a game Model.
type Options struct {
	Config  config.GameConfig
	Store   *storage.Store // Optional; scores are not saved when nil
	Player  string
	Logger  *log.Logger // Optional; defaults to a discard logger
	Runtime core.RuntimeConfig
}

// Model is the Bubble Tea model for one game of bricks.
type Model struct {
	session *breakout.Session
	canvas  *breakout.Canvas
	sched   *TeaScheduler
	screen  *core.Screen
	lift    *indicatorLift
	runtime core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	store   *storage.Store
	logger  *log.Logger
	player  string
	layout  string

	lastState  breakout.State
	scoreSaved bool // Whether the score of the current game has been saved
	quitting   bool
}

// NewModel creates a model with a fresh session waiting for launch.
func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	rt := opts.Runtime
	if rt.ScreenW == 0 || rt.ScreenH == 0 {
		rt = core.DefaultConfig()
	}

	cfg := opts.Config
	canvas := breakout.NewCanvas(cfg.Field.Width, cfg.Field.Height)
	sched := NewTeaScheduler()
	session, err := breakout.NewSession(cfg, sched,
		breakout.WithDisplay(canvas),
		breakout.WithLogger(logger),
	)
	if err != nil {
		return Model{}, fmt.Errorf("cannot start game: %w", err)
	}

	layout := cfg.Bricks.Layout
	if len(cfg.Bricks.Pattern) > 0 {
		layout = "custom"
	}

	m := Model{
		session:   session,
		canvas:    canvas,
		sched:     sched,
		lift:      &indicatorLift{},
		keys:      DefaultKeyMap(),
		help:      help.New(),
		store:     opts.Store,
		logger:    logger,
		player:    opts.Player,
		layout:    layout,
		lastState: session.State(),
	}
	m.screen = core.NewScreen(rt.ScreenW, rt.ScreenH)
	m.resize(rt)
	return m, nil
}

// Init implements tea.Model. Nothing ticks until the ball is launched.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keys.MapKey(msg)
		if action == core.ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.session.Handle(action)

	case tea.WindowSizeMsg:
		m.resize(core.RuntimeConfig{ScreenW: msg.Width, ScreenH: msg.Height})

	case TimerMsg:
		m.sched.Fire(msg.ID)

	case FrameMsg:
		cmd = m.stepIndicator()
	}

	timers := m.observe()
	return m, tea.Batch(timers, cmd)
}

// observe reacts to state changes made by the last message and returns the
// timer commands the session queued.
func (m *Model) observe() tea.Cmd {
	var frame tea.Cmd

	state := m.session.State()
	if state != m.lastState {
		switch {
		case state == breakout.StateRoundLost:
			m.lift.Start(m.session.Config().Timing.LifeLostDelay * 3 / 5)
			frame = frameCmd()
		case state.Terminal():
			m.lift.Stop()
			m.canvas.SetIndicatorLift(0)
			m.saveScore(state)
		case m.lastState.Terminal():
			m.scoreSaved = false
		}
		m.lastState = state
	}

	return tea.Batch(m.sched.Drain(), frame)
}

// stepIndicator advances the life-lost animation by one frame.
func (m *Model) stepIndicator() tea.Cmd {
	if m.canvas.Text(breakout.LabelIndicator) == "" {
		m.lift.Stop()
		m.canvas.SetIndicatorLift(0)
		return nil
	}
	rows, running := m.lift.Step(frameInterval)
	m.canvas.SetIndicatorLift(rows)
	if running {
		return frameCmd()
	}
	return nil
}

// saveScore stores the result of a finished game once.
func (m *Model) saveScore(state breakout.State) {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	outcome := storage.OutcomeGameOver
	if state == breakout.StateWon {
		outcome = storage.OutcomeWon
	}
	entry, err := m.store.SaveScore(storage.ScoreEntry{
		Player:  m.player,
		Layout:  m.layout,
		Outcome: outcome,
		Score:   m.session.Score(),
		Ticks:   m.session.Ticks(),
	})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Info("score saved", "run", entry.RunID, "score", entry.Score, "outcome", entry.Outcome)
}

// resize fits the screen buffer to the terminal, keeping a row for help
// when there is room for it.
func (m *Model) resize(rt core.RuntimeConfig) {
	m.runtime = rt
	m.help.Width = rt.ScreenW
	h := rt.ScreenH
	if m.showHelp() {
		h -= helpRows
	}
	m.screen.Resize(rt.ScreenW, h)
}

func (m Model) showHelp() bool {
	return !m.runtime.TooSmall(breakout.MinScreenW, breakout.MinScreenH+helpRows)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.showHelp() {
		helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		out += "\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return out
}

// Session returns the game session driven by the model.
func (m Model) Session() *breakout.Session {
	return m.session
}

// Run starts the Bubble Tea program for one local player.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
