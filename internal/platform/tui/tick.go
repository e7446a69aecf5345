// Package tui is the terminal presentation of the arcade: Bubble Tea models
// for the menu, the game view and the scoreboard, plus the SSH server that
// hosts them for remote play.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent on every frame of the game view.
type TickMsg time.Time

// frameCmd schedules the next frame after interval.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
