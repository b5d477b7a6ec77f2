package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/connect4/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message into an input frame for the game screen.
// Digits 1-7 pick a column directly.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.InputFrame {
	frame := core.NewInputFrame()

	switch k := msg.String(); k {
	case "ctrl+c", "q":
		frame.Set(core.ActionQuit)
	case "left", "h", "a":
		frame.Set(core.ActionLeft)
	case "right", "l", "d":
		frame.Set(core.ActionRight)
	case "up", "k":
		frame.Set(core.ActionUp)
	case "down", "j":
		frame.Set(core.ActionDown)
	case "enter", " ":
		frame.Set(core.ActionDrop)
		frame.Set(core.ActionConfirm)
	case "y", "Y":
		frame.Set(core.ActionYes)
	case "n", "N":
		frame.Set(core.ActionNo)
	case "esc", "b":
		frame.Set(core.ActionBack)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		frame.SetColumn(int(k[0] - '1'))
	}

	return frame
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

// GameKeyMap lists the game screen bindings for the help bar.
type GameKeyMap struct {
	Move  key.Binding
	Drop  key.Binding
	Pick  key.Binding
	Quit  key.Binding
	Yes   key.Binding
	No    key.Binding
	Abort key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Drop, k.Pick, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Drop, k.Pick},
		{k.Yes, k.No, k.Quit, k.Abort},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Move: key.NewBinding(
			key.WithKeys("left", "right", "h", "l"),
			key.WithHelp("←/→", "choose column"),
		),
		Drop: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "drop"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "drop in column"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit game"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "no"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}
