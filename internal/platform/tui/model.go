package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rad-runner/internal/config"
	"github.com/vovakirdan/rad-runner/internal/core"
	"github.com/vovakirdan/rad-runner/internal/runner"
)

// helpRows is the number of terminal rows reserved below the playfield.
const helpRows = 1

// configReloadedMsg carries a config picked up by the file watcher.
type configReloadedMsg struct {
	cfg config.RunnerConfig
}

// configErrorMsg carries a watcher load failure.
type configErrorMsg struct {
	err error
}

// Options configures a Model.
type Options struct {
	Runtime core.RuntimeConfig
	Runner  config.RunnerConfig
	Bell    bool            // ring the terminal bell on collisions
	Watcher *config.Watcher // nil disables hot reload
	Logger  *log.Logger     // nil discards
}

// Model is the Bubble Tea model hosting one runner session.
type Model struct {
	game     *runner.Game
	clock    *runner.FrameClock
	renderer *ScreenRenderer
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	watcher  *config.Watcher
	logger   *log.Logger
	bell     *Bell
	ringing  bool
	quitting bool
}

// NewModel creates a Bubble Tea model for a new session.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var (
		bell  *Bell
		sound runner.Sound
	)
	if opts.Bell {
		bell = NewBell()
		sound = bell
	}

	renderer := NewScreenRenderer(cfg.ScreenW, cfg.ScreenH-helpRows)
	clock := runner.NewFrameClock()
	game := runner.New(opts.Runner, runner.Env{
		Renderer: renderer,
		Sound:    sound,
		Clock:    clock,
		Viewport: renderer,
		Logger:   logger,
		Seed:     cfg.Seed,
	})

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:     game,
		clock:    clock,
		renderer: renderer,
		keys:     DefaultKeyMap(),
		help:     h,
		config:   cfg,
		watcher:  opts.Watcher,
		logger:   logger,
		bell:     bell,
	}
}

// Init draws the instructions screen and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.ShowInstructions()
	return tea.Batch(tickCmd(m.config.TickRate), waitForConfig(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.ringing = false

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.handleAction(MapMouse(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case configReloadedMsg:
		m.game.Reconfigure(msg.cfg)
		if !m.game.State().Started {
			m.game.ShowInstructions()
		}
		m.logger.Info("config reloaded")
		return m, waitForConfig(m.watcher)

	case configErrorMsg:
		m.logger.Warn("config reload failed, keeping current config", "error", msg.err)
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleAction applies a mapped input action.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
	case core.ActionPrimary:
		m.game.Primary()
	}
	return m, nil
}

// handleResize resizes the playfield. The run continues; the new size is
// picked up by the next tick.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.renderer.Resize(msg.Width, msg.Height-helpRows)
	m.help.Width = msg.Width

	if !m.game.State().Started {
		m.game.ShowInstructions()
	}
	return m, nil
}

// handleTick runs the frame the game asked for, if any, and waits for the next one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.clock.Advance()
	m.ringing = m.bell.Take()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a text file.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".rad", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("rad_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.renderer.Screen().String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	view := RenderScreen(m.renderer.Screen()) + "\n" + helpStyle.Render(m.help.View(m.keys))
	if m.ringing {
		// BEL has no width; the renderer passes it through with the first line.
		view = bel + view
	}
	return view
}

// Game returns the hosted game.
func (m Model) Game() *runner.Game {
	return m.game
}

// waitForConfig returns a command that blocks until the watcher delivers
// a config or an error. It returns nil when hot reload is disabled.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Configs:
			if !ok {
				return nil
			}
			return configReloadedMsg{cfg: cfg}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrorMsg{err: err}
		}
	}
}

// Run starts the Bubble Tea program with a model built from opts.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
