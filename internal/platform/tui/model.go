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

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/game"
	"github.com/vovakirdan/flap/internal/input"
)

// footerRows is the number of terminal rows reserved below the playfield.
const footerRows = 1

// Options configures a game session.
type Options struct {
	Config   config.Config
	Runtime  core.RuntimeConfig
	Sprites  game.SpriteSource
	Roster   game.Roster
	Selected int         // Initially selected character index
	Logger   *log.Logger // Optional; logs are discarded when nil
}

// Model is the Bubble Tea model that drives one flap session.
// The simulation runs on the tick message only; input messages are queued
// and drained at the start of the next tick.
type Model struct {
	state    *game.State
	renderer *game.Renderer
	router   *input.Router
	mapper   *InputMapper
	screen   *core.Screen
	help     help.Model
	keys     KeyMap
	logger   *log.Logger
	cfg      config.Config
	runtime  core.RuntimeConfig

	queue    []core.Event
	paused   error // Set while the terminal is too small to host the field
	quitting bool
	now      func() time.Time
}

// NewModel creates a model for a terminal of Runtime.ScreenW x ScreenH cells.
// Sizes that cannot host the playfield are rejected.
func NewModel(opts Options) (Model, error) {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(rt.ScreenW, playRows(rt.ScreenH))
	w, h := worldSize(opts.Config.Render, screen.Width(), screen.Height())
	state, err := game.New(opts.Config, opts.Roster, w, h, rt.Seed)
	if err != nil {
		return Model{}, fmt.Errorf("tui: terminal %dx%d: %w", rt.ScreenW, rt.ScreenH, err)
	}
	state.SetSelected(opts.Selected)

	keys := DefaultKeyMap()
	hm := help.New()
	hm.Width = rt.ScreenW

	return Model{
		state:    state,
		renderer: game.NewRenderer(opts.Sprites, opts.Config.Render),
		router:   input.NewRouter(opts.Config.Input),
		mapper:   NewInputMapper(keys, opts.Config.Render),
		screen:   screen,
		help:     hm,
		keys:     keys,
		logger:   logger,
		cfg:      opts.Config,
		runtime:  rt,
		now:      time.Now,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session started",
		"character", m.state.SelectedCharacter().ID,
		"seed", m.runtime.Seed,
		"tick_rate", m.runtime.TickRate)
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// Presses on the footer are not taps; releases and drags always pass
		// so a gesture that leaves the field still ends.
		field := core.NewRect(0, 0, m.screen.Width(), m.screen.Height())
		if msg.Action == tea.MouseActionPress && !field.Contains(msg.X, msg.Y) {
			return m, nil
		}
		if ev, ok := m.mapper.MapMouse(msg, m.now()); ok {
			m.queue = append(m.queue, ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev, intent := m.mapper.MapKey(msg, m.now())
	switch intent {
	case intentQuit:
		m.quitting = true
		return m, tea.Quit
	case intentScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	m.queue = append(m.queue, ev)
	return m, nil
}

// handleResize applies a new terminal size. A terminal too small for the
// playfield pauses the simulation until it grows again.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.help.Width = msg.Width

	rows := playRows(msg.Height)
	w, h := worldSize(m.cfg.Render, msg.Width, rows)
	if err := m.state.Resize(w, h); err != nil {
		if m.paused == nil {
			m.logger.Warn("terminal too small, pausing", "cols", msg.Width, "rows", msg.Height, "err", err)
		}
		m.paused = err
		return m, nil
	}

	if m.paused != nil {
		m.logger.Info("terminal large enough again, resuming", "cols", msg.Width, "rows", msg.Height)
	}
	m.paused = nil
	m.screen.Resize(msg.Width, rows)
	return m, nil
}

// handleTick drains queued input, then advances the simulation one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused != nil {
		m.queue = m.queue[:0]
		return m, tickCmd(m.runtime.TickRate)
	}

	for _, ev := range m.queue {
		m.apply(m.router.Route(m.state.Phase(), ev))
	}
	m.queue = m.queue[:0]

	res := m.state.Tick()
	if res.Landed {
		m.logger.Debug("phase change", "to", res.Phase, "frame", res.Frame)
	}

	return m, tickCmd(m.runtime.TickRate)
}

// apply executes one command and logs phase changes.
func (m Model) apply(cmd core.Command) {
	if cmd == core.CommandNone {
		return
	}
	from := m.state.Phase()
	if !m.state.Apply(cmd) {
		return
	}

	to := m.state.Phase()
	if to == from {
		return
	}
	m.logger.Debug("phase change", "command", cmd, "from", from, "to", to, "frame", m.state.Frame())
	if to == core.PhasePreGame {
		m.router.Reset()
	}
	if to == core.PhaseRunning {
		ch := m.state.SelectedCharacter()
		m.logger.Info("game started", "character", ch.ID, "unlocked", ch.Unlocked)
	}
}

// saveScreenshot writes the current screen to ~/.flap/screenshots.
func (m *Model) saveScreenshot() {
	m.renderer.Render(m.state.Snapshot(), m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return
	}
	dir := filepath.Join(home, ".flap", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return
	}

	filename := fmt.Sprintf("flap_%s.txt", m.now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.paused != nil {
		return renderNotice(m.runtime.ScreenW, m.runtime.ScreenH,
			"Terminal too small for the playfield",
			fmt.Sprintf("%d x %d cells", m.runtime.ScreenW, m.runtime.ScreenH),
			"Enlarge the window to continue, q to quit")
	}

	m.renderer.Render(m.state.Snapshot(), m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Selected returns the character selected when the session ended.
func (m Model) Selected() game.Character {
	return m.state.SelectedCharacter()
}

// Run starts the Bubble Tea program and blocks until the player quits.
// It returns the final model so callers can persist the selection.
func Run(opts Options) (Model, error) {
	model, err := NewModel(opts)
	if err != nil {
		return Model{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Press, drag and release drive taps and swipes
	)

	final, err := p.Run()
	if err != nil {
		return model, fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, nil
}

// playRows returns the rows available to the playfield.
func playRows(termRows int) int {
	return core.Max(0, termRows-footerRows)
}

// worldSize converts a cell area to world units.
func worldSize(r config.Render, cols, rows int) (float64, float64) {
	return float64(cols) * r.CellWidth, float64(rows) * r.CellHeight
}
