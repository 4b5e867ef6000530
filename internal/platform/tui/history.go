package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-connect4/internal/storage"
)

// maxHistoryRows limits how many matches the history screen loads.
const maxHistoryRows = 100

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the match history screen.
type HistoryModel struct {
	store    *storage.Store
	stats    storage.Stats
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history model backed by the store.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		help:   help.New(),
		keys:   DefaultHistoryKeyMap(),
		width:  width,
		height: height,
	}

	columns := []table.Column{
		{Title: "When", Width: 16},
		{Title: "Black", Width: 10},
		{Title: "White", Width: 10},
		{Title: "Winner", Width: 8},
		{Title: "Moves", Width: 6},
		{Title: "Time", Width: 6},
	}

	var rows []table.Row
	if store != nil {
		if records, err := store.RecentMatches(maxHistoryRows); err == nil {
			for _, rec := range records {
				rows = append(rows, table.Row{
					rec.CreatedAt.Format("2006-01-02 15:04"),
					rec.Black,
					rec.White,
					string(rec.Winner),
					fmt.Sprintf("%d", rec.Moves),
					fmt.Sprintf("%ds", rec.Duration),
				})
			}
		}
		if stats, err := store.MatchStats(); err == nil {
			m.stats = stats
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(minInt(len(rows)+1, height-6)),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	m.table = t
	return m
}

// minInt returns the smaller of two integers.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Init is a no-op; all data is loaded at construction.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	title := lipgloss.NewStyle().Bold(true).Render("Match History")
	sb.WriteString(title + "\n\n")
	sb.WriteString(m.table.View() + "\n\n")
	sb.WriteString(fmt.Sprintf("%d matches · black %d · white %d · draws %d · avg %.1f moves\n",
		m.stats.Matches, m.stats.BlackWins, m.stats.WhiteWins, m.stats.Draws, m.stats.AvgMoves))
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// RunHistory shows the history screen and blocks until it is closed.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(NewHistoryModel(store, width, height))
	_, err := p.Run()
	return err
}
