package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/connect4/internal/games/connect4"
)

type screen int

const (
	screenMenu screen = iota
	screenNames
	screenGame
	screenInstructions
	screenHallOfFame
)

// AppModel manages the full session flow: menu, name entry, game and the
// info screens, returning to the menu after each. It is the top-level
// model for both local and SSH sessions.
type AppModel struct {
	opts     Options
	user     string
	screen   screen
	single   bool // leave the program instead of returning to the menu
	menu     MenuModel
	names    NamesModel
	game     GameModel
	info     InstructionsModel
	hof      ScoreboardModel
	quitting bool
}

// NewAppModel creates a session that starts at the main menu.
func NewAppModel(opts Options, user string) AppModel {
	opts = opts.withDefaults()
	return AppModel{
		opts: opts,
		user: user,
		menu: NewMenuModel(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}
}

// newGameApp creates a session that plays the given setup and exits
// when the players leave the game.
func newGameApp(opts Options, setup GameSetup) AppModel {
	m := NewAppModel(opts, "")
	m.single = true
	m.screen = screenGame
	m.game = NewGameModel(m.opts, setup)
	return m
}

// newHallOfFameApp creates a session that only shows the hall of fame.
func newHallOfFameApp(opts Options) AppModel {
	m := NewAppModel(opts, "")
	m.single = true
	m.screen = screenHallOfFame
	m.hof = NewScoreboardModel(m.opts, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
	return m
}

// Init initializes the session.
func (m AppModel) Init() tea.Cmd {
	switch m.screen {
	case screenGame:
		return m.game.Init()
	case screenNames:
		return m.names.Init()
	}
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenNames:
		return m.updateNames(msg)
	case screenGame:
		return m.updateGame(msg)
	case screenInstructions:
		return m.updateInstructions(msg)
	case screenHallOfFame:
		return m.updateHallOfFame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}
	m.menu = m.menu.Reset()

	w, h := m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH
	switch selected.Choice {
	case ChoiceVsComputer, ChoiceVsPlayer:
		mode := connect4.ModeVsComputer
		if selected.Choice == ChoiceVsPlayer {
			mode = connect4.ModeVsHuman
		}
		m.names = NewNamesModel(m.opts, mode, w, h)
		m.screen = screenNames
		return m, m.names.Init()

	case ChoiceInstructions:
		m.info = NewInstructionsModel(m.opts, w, h)
		m.screen = screenInstructions

	case ChoiceHallOfFame:
		m.hof = NewScoreboardModel(m.opts, w, h)
		m.screen = screenHallOfFame
	}

	return m, nil
}

// updateNames handles updates on the name entry screen.
func (m AppModel) updateNames(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.names.Update(msg)
	if names, ok := newModel.(NamesModel); ok {
		m.names = names
	}

	switch {
	case m.names.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.names.IsGoingBack():
		return m.backToMenu()
	case m.names.IsReady():
		setup := m.names.Setup()
		m.opts.Logger.Info("game started", "mode", setup.Mode, "player1", setup.P1, "player2", setup.P2, "user", m.user)
		m.game = NewGameModel(m.opts, setup)
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

func (m AppModel) updateInstructions(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.info.Update(msg)
	if info, ok := newModel.(InstructionsModel); ok {
		m.info = info
	}

	if m.info.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.info.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m AppModel) updateHallOfFame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.hof.Update(msg)
	if hof, ok := newModel.(ScoreboardModel); ok {
		m.hof = hof
	}

	if m.hof.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.hof.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

// backToMenu returns to the main menu, or ends a single-screen session.
func (m AppModel) backToMenu() (tea.Model, tea.Cmd) {
	if m.single {
		return m, tea.Quit
	}
	m.screen = screenMenu
	m.menu = NewMenuModel(m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
	return m, m.menu.Init()
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenNames:
		return m.names.View()
	case screenGame:
		return m.game.View()
	case screenInstructions:
		return m.info.View()
	case screenHallOfFame:
		return m.hof.View()
	}
	return m.menu.View()
}

// IsQuitting returns true if the user left through the menu or ctrl+c.
func (m AppModel) IsQuitting() bool {
	return m.quitting
}

func runProgram(model AppModel) (AppModel, error) {
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return model, err
	}

	m, ok := finalModel.(AppModel)
	if !ok {
		return model, nil
	}
	return m, nil
}

// Run runs the full menu-driven session in the local terminal.
func Run(opts Options) error {
	_, err := runProgram(NewAppModel(opts, ""))
	return err
}

// RunGame plays games between the given players until they leave.
func RunGame(opts Options, setup GameSetup) error {
	_, err := runProgram(newGameApp(opts, setup))
	return err
}

// RunHallOfFame shows the hall of fame until the user leaves it.
func RunHallOfFame(opts Options) error {
	_, err := runProgram(newHallOfFameApp(opts))
	return err
}
