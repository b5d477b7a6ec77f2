package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/connect4/internal/games/connect4"
	"github.com/vovakirdan/connect4/internal/players"
)

// NamesModel asks for the player names before a game. Against the
// computer only one name is needed.
type NamesModel struct {
	opts     Options
	mode     connect4.Mode
	inputs   []textinput.Model
	focus    int
	err      string
	notice   string
	greeting []string
	greeted  bool // names accepted, waiting for enter to start
	width    int
	height   int
	ready    bool
	back     bool
	quitting bool
}

// NewNamesModel creates the name entry screen for a mode.
func NewNamesModel(opts Options, mode connect4.Mode, width, height int) NamesModel {
	opts = opts.withDefaults()

	prompts := []string{"Enter your name: "}
	defaults := []string{opts.Config.Players.DefaultP1}
	if mode == connect4.ModeVsHuman {
		prompts = []string{"Player 1: ", "Player 2: "}
		defaults = []string{opts.Config.Players.DefaultP1, opts.Config.Players.DefaultP2}
	}

	inputs := make([]textinput.Model, len(prompts))
	for i, prompt := range prompts {
		ti := textinput.New()
		ti.Prompt = prompt
		ti.Placeholder = "your name"
		ti.CharLimit = players.MaxNameLen + 10 // room for spaces trimmed on submit
		ti.Width = players.MaxNameLen + 2
		ti.SetValue(defaults[i])
		inputs[i] = ti
	}
	inputs[0].Focus()

	return NamesModel{
		opts:   opts,
		mode:   mode,
		inputs: inputs,
		width:  width,
		height: height,
	}
}

// Init starts the cursor blinking.
func (m NamesModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the name entry screen.
func (m NamesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			m.back = true
			return m, nil
		}

		if m.greeted {
			if msg.String() == "enter" {
				m.ready = true
			}
			return m, nil
		}

		switch msg.String() {
		case "tab", "down":
			return m, m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)
		case "enter":
			if m.focus < len(m.inputs)-1 {
				return m, m.setFocus(m.focus + 1)
			}
			m.submit()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	if m.greeted {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *NamesModel) setFocus(i int) tea.Cmd {
	i = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// submit validates the names and greets the players.
func (m *NamesModel) submit() {
	names := m.Names()

	var err error
	if len(names) == 2 {
		err = players.ValidatePair(names[0], names[1])
	} else {
		err = players.ValidateName(names[0])
	}
	if err != nil {
		m.err = nameError(err)
		if errors.Is(err, players.ErrSameName) {
			m.setFocus(1)
		}
		return
	}

	m.err = ""
	m.greeting = nil
	for _, name := range names {
		m.greeting = append(m.greeting, players.Greeting(name, m.lookup(name))...)
	}
	m.greeted = true
}

// lookup loads or registers a player. Store failures leave the game playable.
func (m *NamesModel) lookup(name string) *players.Player {
	if m.opts.Board == nil {
		return nil
	}
	p, err := m.opts.Board.FindOrCreatePlayer(name)
	if err != nil {
		m.opts.Logger.Warn("could not load player", "name", name, "error", err)
		m.notice = "Leaderboard unavailable: records will not be loaded."
		return nil
	}
	if p.IsNew() {
		m.opts.Logger.Info("new player added", "name", name)
	}
	return p
}

func nameError(err error) string {
	msg := err.Error()
	switch {
	case errors.Is(err, players.ErrSameName):
		return "Please choose two different names."
	case errors.Is(err, players.ErrReservedName):
		return "That name belongs to the computer. Please choose another."
	case errors.Is(err, players.ErrInvalidName):
		return "Invalid name. Please enter " + players.NameRules + "."
	}
	return msg
}

// View renders the name entry screen.
func (m NamesModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	title := "Start Game against Computer"
	if m.mode == connect4.ModeVsHuman {
		title = "Start Game against another Player"
	}

	lines := []string{titleStyle.Render(title), ""}
	for _, in := range m.inputs {
		lines = append(lines, in.View())
	}
	lines = append(lines, "", mutedStyle.Render(players.NameRules))

	if m.err != "" {
		lines = append(lines, "", errorStyle.Render(m.err))
	}
	if m.greeted {
		lines = append(lines, "")
		for _, g := range m.greeting {
			lines = append(lines, greetStyle.Render(g))
		}
		if m.notice != "" {
			lines = append(lines, "", noticeStyle.Render(m.notice))
		}
		lines = append(lines, "", noticeStyle.Render("Press Enter to start the game!"))
	} else {
		lines = append(lines, "", mutedStyle.Render("enter: next/confirm  •  tab: switch  •  esc: back"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, strings.TrimRight(content, "\n"))
}

// Names returns the normalized names entered so far.
func (m NamesModel) Names() []string {
	names := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		names[i] = players.NormalizeName(in.Value())
	}
	return names
}

// Setup returns the game setup for the accepted names.
func (m NamesModel) Setup() GameSetup {
	names := m.Names()
	setup := GameSetup{Mode: m.mode, P1: names[0]}
	if len(names) > 1 {
		setup.P2 = names[1]
	}
	return setup
}

// IsReady returns true once the names were accepted and the game may start.
func (m NamesModel) IsReady() bool {
	return m.ready
}

// IsGoingBack returns true if user wants to go back to menu.
func (m NamesModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m NamesModel) IsQuitting() bool {
	return m.quitting
}
