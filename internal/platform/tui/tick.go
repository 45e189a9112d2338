// Package tui provides the Bubble Tea host for the merge engine.
// It handles the terminal UI loop, key mapping, and score bookkeeping.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameStep caps the elapsed time fed to the engine in one tick so a
// stalled terminal does not skip whole animations.
const maxFrameStep = 0.25

// TickMsg is sent to trigger an animation step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
