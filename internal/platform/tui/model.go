// Package tui provides the Bubble Tea integration for the 2048 shell.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// helpHeight is the number of lines below the board used by the help bar.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options holds the collaborators of a game session.
type Options struct {
	Store  *storage.Store // May be nil; scores are then not recorded
	Logger *log.Logger    // Defaults to log.Default()
	Player string         // Recorded with scores; empty means local
}

// resizer is implemented by games that can adapt to a new screen size
// without starting a new board.
type resizer interface {
	Resize(w, h int)
}

// snapshotter is implemented by games that expose the engine snapshot.
type snapshotter interface {
	Snapshot() engine.Snapshot
}

// Model is the Bubble Tea model for playing one variant.
// It is driven by key presses only: each move key steps the game once.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score has been saved for the current game over
	seeded     bool // Seed came from the caller; restarts continue the sequence
}

// NewModel creates a model for the given game and starts a new board.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	// Use time-based seed if not specified
	seeded := cfg.Seed != 0
	if !seeded {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		opts:      opts,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
		seeded:    seeded,
	}

	if err := game.Reset(m.gameConfig()); err != nil {
		return m, fmt.Errorf("tui: cannot start %s: %w", game.ID(), err)
	}
	m.gameState = game.State()
	return m, nil
}

// boardHeight returns the screen rows left for the game after the help bar.
func boardHeight(h int) int {
	return max(0, h-helpHeight)
}

// gameConfig returns the runtime config as seen by the game.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = boardHeight(cfg.ScreenH)
	return cfg
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit

	case action == core.ActionRestart:
		m.restart()

	case action.IsMove():
		result := m.game.Step(core.FrameOf(action))
		m.gameState = result.State
		if m.gameState.GameOver {
			m.finishGame()
		}
	}

	return m, nil
}

// restart starts a new board. A caller-provided seed advances by one per
// restart so a seeded session replays identically; otherwise the clock is used.
func (m *Model) restart() {
	if !m.gameState.GameOver && m.gameState.Moves > 0 {
		m.opts.Logger.Debug("board abandoned", "variant", m.game.ID(), "score", m.gameState.Score)
	}

	if m.seeded {
		m.config.Seed++
	} else {
		m.config.Seed = time.Now().UnixNano()
	}
	if err := m.game.Reset(m.gameConfig()); err != nil {
		m.opts.Logger.Error("cannot restart", "variant", m.game.ID(), "error", err)
		return
	}
	m.gameState = m.game.State()
	m.scoreSaved = false
}

// finishGame records the final score once per game over.
func (m *Model) finishGame() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	st := m.gameState
	m.opts.Logger.Debug("game finished",
		"variant", m.game.ID(),
		"player", m.opts.Player,
		"score", st.Score,
		"max_tile", st.MaxTile,
		"moves", st.Moves,
	)

	if m.opts.Store == nil || st.Score == 0 {
		return
	}
	_, err := m.opts.Store.SaveScore(storage.ScoreEntry{
		VariantID: m.game.ID(),
		Player:    m.opts.Player,
		Score:     st.Score,
		MaxTile:   st.MaxTile,
		Moves:     st.Moves,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save score", "error", err)
	}
}

// handleResize processes window resize events. The board is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, boardHeight(msg.Height))
	}

	return m, nil
}

// screenshot returns the plain-text screen, followed by the text board when
// the game exposes one.
func (m Model) screenshot() string {
	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(m.screen.String())
	if s, ok := m.game.(snapshotter); ok {
		b.WriteString("\n\n")
		b.WriteString(s.Snapshot().String())
	}
	b.WriteString("\n")
	return b.String()
}

// saveScreenshot saves the current screen to ~/.t2048/screenshots.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".t2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screenshot()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.opts.Logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// State returns the last known game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for the game.
// Returns true if the user asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model, err := NewModel(game, cfg, opts)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
