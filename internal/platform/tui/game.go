package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/games/connect4"
	"github.com/vovakirdan/connect4/internal/storage"
)

// GameSetup names who plays.
type GameSetup struct {
	Mode connect4.Mode
	P1   string
	P2   string // ignored against the computer
}

type gamePhase int

const (
	phasePlaying gamePhase = iota
	phaseConfirmQuit
	phaseFinished
)

// GameModel is the Bubble Tea model for one or more games between the same
// players, from the first drop to the play-again prompt.
type GameModel struct {
	opts      Options
	setup     GameSetup
	session   *connect4.Session
	game      int // games started by this model, used to drop stale ticks
	phase     gamePhase
	cursor    int
	message   string // feedback on the last key
	notice    string // leaderboard trouble, shown until the next game
	started   time.Time
	recorded  bool
	screen    *core.Screen
	keyMapper *KeyMapper
	keys      GameKeyMap
	help      help.Model
	width     int
	height    int
	back      bool
	quitting  bool
}

// NewGameModel creates a game screen and starts the first game.
func NewGameModel(opts Options, setup GameSetup) GameModel {
	opts = opts.withDefaults()
	if setup.Mode == connect4.ModeVsComputer {
		setup.P2 = storage.ComputerName
	}

	m := GameModel{
		opts:      opts,
		setup:     setup,
		keyMapper: NewKeyMapper(),
		keys:      DefaultGameKeyMap(),
		help:      help.New(),
		width:     opts.Runtime.ScreenW,
		height:    opts.Runtime.ScreenH,
	}
	m.newGame()
	return m
}

// newGame resets the board for another round between the same players.
func (m *GameModel) newGame() {
	m.game++
	m.session = connect4.NewSession(m.setup.Mode, m.opts.newSelector(m.setup.Mode, m.game))
	m.phase = phasePlaying
	m.cursor = m.session.Board().Cols() / 2
	m.message = ""
	m.notice = ""
	m.started = time.Now()
	m.recorded = false

	w, h := boardSize(m.session.Board())
	m.screen = core.NewScreen(w, h)
}

// Init initializes the game model.
func (m GameModel) Init() tea.Cmd {
	return m.scheduleComputer()
}

// Update handles messages for the game screen.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case computerMoveMsg:
		return m.handleComputerMove(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		if !m.session.State().IsTerminal() {
			//nolint:errcheck // game is still running
			m.session.Quit()
		}
		m.quitting = true
		return m, tea.Quit
	}

	in := m.keyMapper.MapKey(msg)

	switch m.phase {
	case phaseConfirmQuit:
		switch {
		case in.Has(core.ActionYes):
			//nolint:errcheck // only reachable while the game is running
			m.session.Quit()
			m.opts.Logger.Debug("game abandoned", "player1", m.setup.P1, "moves", m.session.Moves())
			m.back = true
			return m, nil
		case in.Has(core.ActionNo), in.Has(core.ActionBack):
			m.phase = phasePlaying
			m.message = ""
			return m, m.scheduleComputer()
		default:
			m.message = "Invalid input. Please enter 'y' or 'n'."
		}
		return m, nil

	case phaseFinished:
		switch {
		case in.Has(core.ActionYes):
			m.newGame()
			return m, m.scheduleComputer()
		case in.Has(core.ActionNo), in.Has(core.ActionBack), in.Has(core.ActionQuit):
			m.back = true
		default:
			m.message = "Invalid input. Please enter 'y' or 'n'."
		}
		return m, nil
	}

	if in.Has(core.ActionQuit) || in.Has(core.ActionBack) {
		m.phase = phaseConfirmQuit
		m.message = ""
		return m, nil
	}

	if m.session.IsComputerTurn() {
		return m, nil
	}

	cols := m.session.Board().Cols()
	switch {
	case in.Has(core.ActionLeft):
		m.cursor = core.Wrap(m.cursor-1, cols)
	case in.Has(core.ActionRight):
		m.cursor = core.Wrap(m.cursor+1, cols)
	case in.Has(core.ActionDrop):
		col := m.cursor
		if in.HasColumn() {
			col = in.Column
		}
		return m.play(col)
	case !in.Empty():
	default:
		m.message = fmt.Sprintf("Choose a column (1-%d) or press 'q' to quit.", cols)
	}
	return m, nil
}

// play applies a human move. Rejected moves keep the turn.
func (m GameModel) play(col int) (tea.Model, tea.Cmd) {
	cols := m.session.Board().Cols()

	res, err := m.session.Play(col)
	switch {
	case errors.Is(err, connect4.ErrColumnFull):
		m.message = "Column is full. Please choose a different column."
		return m, nil
	case errors.Is(err, connect4.ErrColumnOutOfRange):
		m.message = fmt.Sprintf("Column number out of range. Please choose a number between 1 and %d.", cols)
		return m, nil
	case err != nil:
		m.message = err.Error()
		return m, nil
	}

	m.cursor = col
	m.message = ""
	return m.afterMove(res)
}

// handleComputerMove plays the computer's turn once its delay has passed.
func (m GameModel) handleComputerMove(msg computerMoveMsg) (tea.Model, tea.Cmd) {
	if msg.Game != m.game || m.phase != phasePlaying || !m.session.IsComputerTurn() {
		return m, nil
	}

	res, err := m.session.PlayComputer()
	if err != nil {
		m.opts.Logger.Error("computer could not move", "error", err)
		m.message = "The computer could not move."
		return m, nil
	}
	return m.afterMove(res)
}

func (m GameModel) afterMove(res connect4.MoveResult) (tea.Model, tea.Cmd) {
	if res.State.IsTerminal() {
		m.finish()
		return m, nil
	}
	return m, m.scheduleComputer()
}

// scheduleComputer starts the think delay when the computer is to move.
func (m GameModel) scheduleComputer() tea.Cmd {
	if m.phase != phasePlaying || !m.session.IsComputerTurn() {
		return nil
	}
	return thinkCmd(m.opts.Runtime.ThinkDelay, m.game)
}

// finish records a won or tied game exactly once. Leaderboard failures
// are logged and shown but never stop the play-again prompt.
func (m *GameModel) finish() {
	m.phase = phaseFinished
	if m.recorded {
		return
	}
	m.recorded = true

	out := m.session.Outcome()
	m.opts.Logger.Info("game finished",
		"mode", m.setup.Mode,
		"outcome", out.Kind,
		"winner", m.nameOf(out.Winner),
		"moves", m.session.Moves(),
	)

	if m.opts.Board == nil {
		return
	}

	results := m.session.Results(m.setup.P1, m.setup.P2)
	if err := connect4.RecordResults(m.opts.Board, results); err != nil {
		m.opts.Logger.Warn("could not record outcome", "error", err)
		m.notice = "Leaderboard unavailable: this result was not saved."
	}

	if rec, ok := storage.NewGameRecord(m.session, m.setup.P1, m.setup.P2, m.started); ok {
		if _, err := m.opts.Board.SaveGame(rec); err != nil {
			m.opts.Logger.Warn("could not save game history", "game_id", rec.GameID, "error", err)
			m.notice = "Leaderboard unavailable: this result was not saved."
		}
	}
}

// nameOf returns the display name for a piece.
func (m GameModel) nameOf(p connect4.Piece) string {
	switch p {
	case connect4.PlayerPiece:
		return m.setup.P1
	case connect4.OpponentPiece, connect4.ComputerPiece:
		return m.setup.P2
	default:
		return ""
	}
}

// statusLine describes whose turn it is or how the game ended.
func (m GameModel) statusLine() string {
	switch m.session.State() {
	case connect4.Won:
		winner := m.session.Outcome().Winner
		if winner == connect4.ComputerPiece {
			return "The computer wins! Better luck next time."
		}
		return fmt.Sprintf("Congratulations, %s! You won!", m.nameOf(winner))
	case connect4.Tied:
		return "It's a tie!"
	case connect4.Quit:
		return "Quitting the game."
	}

	if m.session.IsComputerTurn() {
		return "The computer is thinking..."
	}
	piece := m.session.CurrentPiece()
	return fmt.Sprintf("%s, choose a column (%c).", m.nameOf(piece), m.opts.Theme.Look(piece).Glyph)
}

// View renders the game screen.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	view := boardView{
		Board:  m.session.Board(),
		Cursor: core.NoColumn,
		Line:   m.session.WinningLine(),
	}
	if m.phase == phasePlaying && !m.session.IsComputerTurn() {
		view.Cursor = m.cursor
		view.Marker = m.session.CurrentPiece()
	}
	if last, ok := m.session.LastMove(); ok {
		view.Last = &last
	}
	DrawBoard(m.screen, 0, 0, view, m.opts.Theme)

	p1 := m.opts.Theme.Look(connect4.PlayerPiece)
	p2 := m.opts.Theme.Look(m.setup.Mode.SecondPiece())
	players := fmt.Sprintf("%c %s   vs   %c %s", p1.Glyph, m.setup.P1, p2.Glyph, m.setup.P2)

	lines := []string{
		titleStyle.Render("C O N N E C T   F O U R"),
		mutedStyle.Render(players),
		"",
		RenderScreen(m.screen),
		"",
		m.statusLine(),
	}

	switch m.phase {
	case phaseConfirmQuit:
		lines = append(lines, noticeStyle.Render("Are you sure you want to quit? (y/n)"))
	case phaseFinished:
		lines = append(lines, "Do you want to play again? (y/n)")
	default:
		lines = append(lines, "")
	}

	if m.message != "" {
		lines = append(lines, errorStyle.Render(m.message))
	}
	if m.notice != "" {
		lines = append(lines, noticeStyle.Render(m.notice))
	}
	lines = append(lines, "", mutedStyle.Render(m.help.View(m.keys)))

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, strings.TrimRight(content, "\n"))
}

// BackToMenu returns true once the player left the game screen.
func (m GameModel) BackToMenu() bool {
	return m.back
}

// IsQuitting returns true if the user asked to exit the program.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Session returns the current game.
func (m GameModel) Session() *connect4.Session {
	return m.session
}
