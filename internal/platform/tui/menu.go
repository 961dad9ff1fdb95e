package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

// difficulties are the presets offered by the menu, in display order.
var difficulties = []string{"normal", "easy", "hard"}

// MenuItem represents a selectable variant in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	difficulty     int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{
			GameID:      g.ID,
			Title:       g.Title,
			Description: g.Description,
		})
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.difficulty = core.Wrap(m.difficulty-1, len(difficulties))

	case MenuActionRight:
		m.difficulty = core.Wrap(m.difficulty+1, len(difficulties))

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle.Render("C R O S S I N G"), 15, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a variant", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = activeStyle.Render("> " + item.Title)
		}
		b.WriteString(centerStyled(line, len(item.Title)+2, m.width))
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		desc := m.items[m.cursor].Description
		b.WriteString(centerStyled(dimStyle.Render(desc), len(desc), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	diff := fmt.Sprintf("Difficulty: < %s >", m.Difficulty())
	b.WriteString(centerText(diff, m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Variant  |  Left/Right: Difficulty  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerStyled(dimStyle.Render(controls), len(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the chosen difficulty preset name.
func (m MenuModel) Difficulty() string {
	return difficulties[m.difficulty]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	return centerStyled(text, len([]rune(text)), width)
}

// centerStyled centers text whose visible length is textLen.
// Styled strings carry escape codes, so their byte length is not their width.
func centerStyled(text string, textLen, width int) string {
	if textLen >= width {
		return text
	}
	return strings.Repeat(" ", (width-textLen)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Difficulty      string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result converts the final menu state to a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{
		Config:     m.Config(),
		Difficulty: m.Difficulty(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
