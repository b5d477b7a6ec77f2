package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Farewell is printed when the player leaves the program.
const Farewell = "ByeBye, thank you for playing!"

// MenuChoice identifies a main menu entry.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceVsComputer
	ChoiceVsPlayer
	ChoiceInstructions
	ChoiceHallOfFame
	ChoiceQuit
)

// MenuItem represents a selectable entry in the main menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

var menuItems = []MenuItem{
	{Choice: ChoiceVsComputer, Title: "Start Game against Computer"},
	{Choice: ChoiceVsPlayer, Title: "Start Game against another Player"},
	{Choice: ChoiceInstructions, Title: "Game Instructions"},
	{Choice: ChoiceHallOfFame, Title: "Hall of Fame"},
	{Choice: ChoiceQuit, Title: "Quit"},
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	message   string
	quitting  bool
	selected  *MenuItem // set when the user picks an entry
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		items:     menuItems,
		width:     width,
		height:    height,
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Digits pick an entry directly, like the numbered prompt.
	if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		n := int(s[0] - '0')
		if n < 1 || n > len(m.items) {
			m.message = fmt.Sprintf("Invalid choice. Please enter a number between 1 and %d.", len(m.items))
			return m, nil
		}
		m.cursor = n - 1
		return m.choose()
	}

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

	case MenuActionSelect:
		return m.choose()
	}

	m.message = ""
	return m, nil
}

func (m MenuModel) choose() (tea.Model, tea.Cmd) {
	selected := m.items[m.cursor]
	m.message = ""
	if selected.Choice == ChoiceQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.selected = &selected
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("C O N N E C T   F O U R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Welcome to Connect Four", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%d. %-34s", cursor, i+1, item.Title)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(centerText(errorStyle.Render(m.message), m.width))
		b.WriteString("\n")
	}
	controls := "Up/Down: Navigate  |  Enter or 1-5: Select  |  Q: Quit"
	b.WriteString(centerText(mutedStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Reset clears the selection so the menu can be shown again.
func (m MenuModel) Reset() MenuModel {
	m.selected = nil
	m.message = ""
	return m
}
