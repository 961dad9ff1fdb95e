package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crossing/internal/registry"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

const (
	maxScores    = 100 // rows loaded per variant
	narrowWidth  = 50  // below this the time column is dropped
	headerHeight = 7   // title, variants, stats, reasons, table border
)

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	sbIdleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	sbDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sbBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// skinShortName drops the common prefix from skin sprite names.
func skinShortName(skin string) string {
	return strings.TrimPrefix(skin, "char-")
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Variant key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Variant, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Variant}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Variant: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "switch variant"),
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

// ScoreboardModel shows the session leaderboard of one variant at a time.
type ScoreboardModel struct {
	variants  []registry.GameInfo
	current   int
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first registered variant.
// A nil store shows an empty board.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

// newTable builds the score table for the current width.
func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Skin", Width: 10},
		{Title: "Ended", Width: 13},
		{Title: "Time", Width: 8},
	}
	if m.width < narrowWidth {
		columns = columns[:4]
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-headerHeight-3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// variantID returns the ID of the variant on display, or "" when none is registered.
func (m ScoreboardModel) variantID() string {
	if len(m.variants) == 0 {
		return ""
	}
	return m.variants[m.current].ID
}

// reload fetches scores and stats for the current variant.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats = nil, nil
	if id := m.variantID(); id != "" && m.store != nil {
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.setRows()
}

func (m *ScoreboardModel) setRows() {
	cols := len(m.table.Columns())
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			skinShortName(s.Skin),
			s.Reason,
			s.CreatedAt.Local().Format("15:04:05"),
		}
		rows[i] = row[:cols]
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// SelectGame switches to the given variant, if it is registered.
func (m *ScoreboardModel) SelectGame(gameID string) {
	for i, v := range m.variants {
		if v.ID == gameID {
			m.current = i
			m.reload()
			return
		}
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Variant):
			if len(m.variants) > 1 {
				m.current = (m.current + 1) % len(m.variants)
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.setRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	center := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center)
	lines := []string{
		sbTitleStyle.Render("SESSION SCORES"),
		m.variantTabs(),
		m.statsLine(),
		sbDimStyle.Render(m.reasonsLine()),
		"",
	}

	body := sbDimStyle.Italic(true).Padding(1, 2).Render("No scores recorded yet.\nScores last until the program exits.")
	if len(m.scores) > 0 {
		body = m.table.View()
	}
	lines = append(lines, sbBoxStyle.Render(body), "", m.help.View(m.keys))

	for i, l := range lines {
		lines[i] = center.Render(l)
	}
	return strings.Join(lines, "\n")
}

// variantTabs renders the variant names with the current one highlighted.
func (m ScoreboardModel) variantTabs() string {
	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			tabs[i] = sbActiveStyle.Render(v.Title)
		} else {
			tabs[i] = sbIdleStyle.Render(v.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// statsLine summarizes the current variant.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "no games finished this session"
	}
	line := fmt.Sprintf("games %d  best %d  average %.0f", m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore)
	if !m.stats.LastPlayed.IsZero() {
		line += "  last " + m.stats.LastPlayed.Local().Format("15:04")
	}
	return line
}

// reasonsLine counts how the listed games ended.
func (m ScoreboardModel) reasonsLine() string {
	counts := make(map[string]int)
	for _, s := range m.scores {
		if s.Reason != "" {
			counts[s.Reason]++
		}
	}
	reasons := make([]string, 0, len(counts))
	for r := range counts {
		reasons = append(reasons, r)
	}
	sort.Strings(reasons)

	parts := make([]string, len(reasons))
	for i, r := range reasons {
		parts[i] = fmt.Sprintf("%s %d", r, counts[r])
	}
	return strings.Join(parts, "  ")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
