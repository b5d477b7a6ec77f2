package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/connect4/internal/games/connect4"
	"github.com/vovakirdan/connect4/internal/players"
	"github.com/vovakirdan/connect4/internal/storage"
)

var errStoreDown = errors.New("store down")

// fakeBoard is an in-memory Leaderboard.
type fakeBoard struct {
	outcomes []connect4.PlayerResult
	games    []storage.GameRecord
	created  []string
	known    map[string]*players.Player
	hof      []players.Player
	err      error
}

func (f *fakeBoard) RecordOutcome(name string, won bool) error {
	if f.err != nil {
		return f.err
	}
	f.outcomes = append(f.outcomes, connect4.PlayerResult{Name: name, Won: won})
	return nil
}

func (f *fakeBoard) FindOrCreatePlayer(name string) (*players.Player, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.known[name]; ok {
		return p, nil
	}
	f.created = append(f.created, name)
	return players.New(name), nil
}

func (f *fakeBoard) HallOfFame(limit int) ([]players.Player, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.hof) {
		return f.hof[:limit], nil
	}
	return f.hof, nil
}

func (f *fakeBoard) SaveGame(rec storage.GameRecord) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.games = append(f.games, rec)
	return int64(len(f.games)), nil
}

// keyPress builds the key message Bubble Tea sends for a key name.
func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press sends keys to a model in order and returns the last command.
func press[M tea.Model](m M, keys ...string) (M, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyPress(k))
		m = next.(M)
	}
	return m, cmd
}
