// Package tui provides the Bubble Tea scoring screen, the mode picker and
// SSH hosting of both.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status line stays on screen.
const statusTTL = 3 * time.Second

// ClearStatusMsg is sent when a status line expires.
type ClearStatusMsg struct {
	Seq int
}

// clearStatusCmd returns a command that expires status number seq.
func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
