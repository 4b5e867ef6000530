// Package tui provides the Bubble Tea integration for the connect-four
// platform: the match screen, key mapping, history view, and SSH
// serving.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/game"
	"github.com/vovakirdan/tui-connect4/internal/player"
	"github.com/vovakirdan/tui-connect4/internal/registry"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

// thinkMsg triggers an automated provider's move after a short pause.
type thinkMsg struct{}

// MatchOptions bundles what a match screen needs beyond the game
// itself.
type MatchOptions struct {
	Black      registry.Provider
	White      registry.Provider
	Theme      config.ThemeConfig
	ThinkDelay time.Duration
	Runtime    core.RuntimeConfig
	Store      *storage.Store // May be nil; saving is best-effort
}

// MatchModel is the Bubble Tea model for one match of connect four.
// It is the external orchestrator of the rules engine: it asks the
// engine for legal moves, collects a move from the side on turn
// (keyboard or provider), submits it, and re-prompts when the engine
// rejects it.
type MatchModel struct {
	g        *game.Game
	opts     MatchOptions
	screen   *core.Screen
	keys     *KeyMapper
	cursor   int
	status   string
	moves    int
	started  time.Time
	saved    bool
	quitting bool
	done     bool // Back requested, leave the match screen
}

// NewMatchModel creates a match model with an empty board.
func NewMatchModel(opts MatchOptions) MatchModel {
	if opts.ThinkDelay <= 0 {
		opts.ThinkDelay = 400 * time.Millisecond
	}
	return MatchModel{
		g:       game.New(),
		opts:    opts,
		screen:  core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:    NewKeyMapper(),
		cursor:  game.Cols / 2,
		started: time.Now(),
	}
}

// provider returns the move provider for an owner.
func (m *MatchModel) provider(o game.Owner) registry.Provider {
	if o == game.Black {
		return m.opts.Black
	}
	return m.opts.White
}

// humanTurn reports whether the side on turn takes moves from the
// keyboard.
func (m *MatchModel) humanTurn() bool {
	return player.IsHuman(m.provider(m.g.Player()))
}

// thinkCmd schedules an automated move after the think delay.
func (m *MatchModel) thinkCmd() tea.Cmd {
	return tea.Tick(m.opts.ThinkDelay, func(time.Time) tea.Msg {
		return thinkMsg{}
	})
}

// Init starts the first automated turn if the opener is not human.
func (m MatchModel) Init() tea.Cmd {
	if !m.humanTurn() {
		return m.thinkCmd()
	}
	return nil
}

// Update handles messages and updates the model state.
func (m MatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case thinkMsg:
		return m.handleThink()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m MatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.g.Over() {
			m.done = true
			return m, tea.Quit
		}
		return m, nil

	case core.ActionRestart:
		if m.g.Over() {
			return m.restart()
		}
		return m, nil

	case core.ActionLeft:
		if m.humanTurn() && !m.g.Over() {
			m.cursor = core.Clamp(m.cursor-1, 0, game.Cols-1)
		}
		return m, nil

	case core.ActionRight:
		if m.humanTurn() && !m.g.Over() {
			m.cursor = core.Clamp(m.cursor+1, 0, game.Cols-1)
		}
		return m, nil

	case core.ActionDrop:
		if m.humanTurn() && !m.g.Over() {
			return m.dropAt(m.cursor)
		}
		return m, nil
	}

	if col, ok := m.keys.ColumnKey(msg); ok && m.humanTurn() && !m.g.Over() {
		m.cursor = col
		return m.dropAt(col)
	}

	return m, nil
}

// dropAt submits a human move in the given column. A rejected move
// (full column) keeps the turn with the player; the screen simply
// re-prompts.
func (m MatchModel) dropAt(col int) (tea.Model, tea.Cmd) {
	move, ok := game.NewMove(m.g.Player(), col)
	if !ok {
		return m, nil
	}
	if !m.g.Play(move) {
		m.status = fmt.Sprintf("column %d is full, pick another", col+1)
		return m, nil
	}

	m.status = ""
	m.moves++
	return m.afterMove()
}

// handleThink lets the automated provider on turn move.
func (m MatchModel) handleThink() (tea.Model, tea.Cmd) {
	if m.g.Over() || m.humanTurn() {
		return m, nil
	}

	move, ok := m.provider(m.g.Player()).ChooseMove(m.g)
	if !ok || !m.g.Play(move) {
		// No legal move can exist only on a finished board.
		return m, nil
	}

	m.moves++
	return m.afterMove()
}

// afterMove records a finished match and schedules the next automated
// turn.
func (m MatchModel) afterMove() (tea.Model, tea.Cmd) {
	if m.g.Over() {
		m.saveResult()
		return m, nil
	}
	if !m.humanTurn() {
		return m, m.thinkCmd()
	}
	return m, nil
}

// restart begins a fresh match on the same screen.
func (m MatchModel) restart() (tea.Model, tea.Cmd) {
	m.g = game.New()
	m.cursor = game.Cols / 2
	m.status = ""
	m.moves = 0
	m.started = time.Now()
	m.saved = false
	if !m.humanTurn() {
		return m, m.thinkCmd()
	}
	return m, nil
}

// saveResult writes the match record once per finished match.
// A failed save never interrupts play.
func (m *MatchModel) saveResult() {
	if m.saved || m.opts.Store == nil {
		return
	}
	m.saved = true

	rec := storage.MatchRecord{
		Black:    m.opts.Black.Name(),
		White:    m.opts.White.Name(),
		Winner:   storage.ResultDraw,
		Moves:    m.moves,
		Duration: int(time.Since(m.started).Seconds()),
	}
	if owner, won := m.g.Winner(); won {
		if owner == game.Black {
			rec.Winner = storage.ResultBlackWin
		} else {
			rec.Winner = storage.ResultWhiteWin
		}
	}
	//nolint:errcheck // Best-effort save, the match screen continues regardless
	m.opts.Store.SaveMatch(rec)
}

// View renders the current match state.
func (m MatchModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	m.screen.Clear()

	boardX := core.Max((m.screen.Width()-boardWidth)/2, 0)
	boardY := 2

	if m.humanTurn() && !m.g.Over() {
		drawCursor(m.screen, m.opts.Theme, boardX, boardY-1, m.cursor)
	}
	drawBoard(m.screen, m.g.Board(), m.opts.Theme, boardX, boardY)

	hudY := boardY + boardHeight + 1
	m.screen.DrawTextCentered(hudY, m.turnLine())
	if m.status != "" {
		line := m.status
		x := (m.screen.Width() - len([]rune(line))) / 2
		m.screen.DrawTextColored(x, hudY+1, line, core.ColorRed)
	}
	m.screen.DrawTextCentered(m.screen.Height()-1, m.helpLine())

	return RenderScreen(m.screen)
}

// turnLine describes whose move it is, or the result.
func (m MatchModel) turnLine() string {
	if owner, won := m.g.Winner(); won {
		return fmt.Sprintf("%c %s (%s) wins in %d moves!",
			owner.Glyph(), owner, m.provider(owner).Name(), m.moves)
	}
	if m.g.Over() {
		return "Draw - the board is full"
	}
	current := m.g.Player()
	return fmt.Sprintf("%c %s (%s) to move",
		current.Glyph(), current, m.provider(current).Name())
}

// helpLine lists the active key bindings.
func (m MatchModel) helpLine() string {
	if m.g.Over() {
		return "r restart · b back · q quit"
	}
	if m.humanTurn() {
		return "←/→ move · enter drop · 1-7 drop in column · q quit"
	}
	return "q quit"
}

// Run starts a match in the local terminal and blocks until it is
// closed.
func Run(opts MatchOptions) error {
	p := tea.NewProgram(
		NewMatchModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
