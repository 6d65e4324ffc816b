package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkoval/ghostbird/internal/core"
	"github.com/mkoval/ghostbird/internal/session"
	"github.com/mkoval/ghostbird/internal/storage"
)

// Model is the Bubble Tea model driving one play session.
type Model struct {
	sess       *session.Session
	screen     *core.Screen
	store      *storage.Store
	inputFrame core.InputFrame
	highScore  int
	quitting   bool
	runSaved   bool // Whether the current run's summary has been saved
}

// NewModel creates a Bubble Tea model for the given session.
func NewModel(sess *session.Session, store *storage.Store, cfg core.RuntimeConfig) Model {
	m := Model{
		sess:       sess,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		inputFrame: core.NewInputFrame(),
	}
	if store != nil {
		//nolint:errcheck // A missing high score only hides the HUD entry
		m.highScore, _ = store.HighScore(sess.CourseName())
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps keys to session actions.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case " ", "up", "w":
		m.inputFrame.Set(core.ActionJump)
	case "p", "esc":
		m.inputFrame.Set(core.ActionPause)
	case "r":
		// Restart works mid-run too; the unfinished run is discarded.
		m.inputFrame.Set(core.ActionRestart)
	}

	return m, nil
}

// handleTick advances the session by one input frame and tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.sess.Advance(m.inputFrame)
	m.inputFrame.Clear()

	f := m.sess.Frame()
	if !f.Ended {
		m.runSaved = false
	} else if !m.runSaved {
		m.saveRun(f)
		m.runSaved = true
	}

	return m, tickCmd()
}

// saveRun persists the finished run's summary, best effort.
func (m *Model) saveRun(f session.Frame) {
	if m.store == nil {
		return
	}
	samples, duration, ok := m.sess.LastRun()
	if !ok {
		return
	}
	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveRun(storage.RunEntry{
		Course:    m.sess.CourseName(),
		Score:     f.Score,
		LivesLeft: f.Lives,
		Duration:  duration,
		Samples:   samples,
	})
	if f.Score > m.highScore {
		m.highScore = f.Score
	}
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Render(m.sess.Frame(), m.sess.CourseName(), m.highScore, m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given session.
func Run(sess *session.Session, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(sess, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
