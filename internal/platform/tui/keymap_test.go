package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/merge2048/internal/games/t2048"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapDirection(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected t2048.Direction
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, t2048.DirUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, t2048.DirDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, t2048.DirLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, t2048.DirRight},
		{"w", runeKey("w"), t2048.DirUp},
		{"a", runeKey("a"), t2048.DirLeft},
		{"s", runeKey("s"), t2048.DirDown},
		{"d", runeKey("d"), t2048.DirRight},
		{"k", runeKey("k"), t2048.DirUp},
		{"h", runeKey("h"), t2048.DirLeft},
		{"j", runeKey("j"), t2048.DirDown},
		{"l", runeKey("l"), t2048.DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir, ok := km.Direction(tc.msg)
			if !ok {
				t.Fatalf("Direction(%q) not recognized", tc.msg.String())
			}
			if dir != tc.expected {
				t.Errorf("Direction(%q) = %v, expected %v", tc.msg.String(), dir, tc.expected)
			}
		})
	}
}

func TestKeyMapNonMoveKeys(t *testing.T) {
	km := DefaultKeyMap()

	for _, k := range []string{"r", "q", "t", "?", "x"} {
		if _, ok := km.Direction(runeKey(k)); ok {
			t.Errorf("%q should not map to a direction", k)
		}
	}
}

func TestKeyMapHelpListsMoves(t *testing.T) {
	km := DefaultKeyMap()

	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp() should not be empty")
	}
	full := km.FullHelp()
	if len(full) != 2 || len(full[0]) != 4 {
		t.Errorf("FullHelp() should list the four moves first, got %v", full)
	}
}
