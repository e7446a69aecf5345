package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/platform/headless"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// maxFrame caps the time fed to the clock in one frame so a stalled
// terminal does not replay a burst of ticks.
const maxFrame = 250 * time.Millisecond

// GameOptions configure a game view.
type GameOptions struct {
	Runtime   core.RuntimeConfig
	Store     *storage.Store // nil disables score persistence
	SessionID string
	Logger    *log.Logger
}

// GameModel is the Bubble Tea model that plays one game. Key presses are
// latched into the runner's input buffer and applied on the next tick.
type GameModel struct {
	game     registry.Game
	runner   *headless.Runner
	screen   *core.Screen
	keys     GameKeyMap
	help     help.Model
	interval time.Duration
	last     time.Time
	quitting bool
	back     bool
}

// NewGameModel creates a game view. The persisted best score, when
// available, is carried into the game's runtime config.
func NewGameModel(game registry.Game, opts GameOptions) GameModel {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ro := headless.Options{
		Runtime:   cfg,
		SessionID: opts.SessionID,
		Logger:    opts.Logger,
		MaxFrame:  maxFrame,
	}
	if opts.Store != nil {
		if best, err := opts.Store.BestScore(game.ID()); err == nil {
			ro.Runtime.Best = best
		}
		ro.Scores = opts.Store
	}

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	return GameModel{
		game:     game,
		runner:   headless.New(game, ro),
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		keys:     DefaultGameKeyMap(),
		help:     h,
		interval: time.Second / time.Duration(cfg.TickRateOrDefault()),
	}
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	return frameCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game scales to the screen, so a resize never resets it.
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case tea.BlurMsg:
		m.runner.Suspend()
		return m, nil

	case tea.FocusMsg:
		m.runner.Continue()
		// Time spent unfocused is not simulated.
		m.last = time.Time{}
		return m, nil

	case TickMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			m.runner.Advance(now.Sub(m.last))
		}
		m.last = now
		return m, frameCmd(m.interval)
	}

	return m, nil
}

// handleKey latches game actions and handles the view's own keys.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		m.runner.Close()
		return m, tea.Quit
	case core.ActionBack:
		// Leaving is only allowed while nothing is in motion.
		if m.runner.Snapshot().Phase != core.PhaseRunning {
			m.back = true
			m.runner.Close()
			return m, tea.Quit
		}
		m.runner.Press(core.ActionPause)
	case core.ActionNone:
	default:
		m.runner.Press(a)
	}
	return m, nil
}

// saveScreenshot writes the current screen as text and the snapshot as
// YAML under ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}

	base := filepath.Join(dir, fmt.Sprintf("%s_%s", m.game.ID(), time.Now().Format("20060102_150405")))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600)
	if data, err := yaml.Marshal(m.runner.Snapshot()); err == nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		os.WriteFile(base+".yaml", data, 0o600)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.back {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// IsQuitting reports whether the user asked to leave the arcade.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.back
}

// Snapshot returns the latest game snapshot.
func (m GameModel) Snapshot() core.Snapshot {
	return m.runner.Snapshot()
}

// Run plays game in the terminal until the user quits or goes back.
// It reports whether the user asked to return to the menu.
func Run(game registry.Game, opts GameOptions) (backToMenu bool, err error) {
	p := tea.NewProgram(NewGameModel(game, opts), tea.WithAltScreen(), tea.WithReportFocus())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(GameModel)
	return ok && m.BackToMenu(), nil
}
