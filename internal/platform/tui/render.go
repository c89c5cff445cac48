package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-darts/internal/core"
	"github.com/vovakirdan/tui-darts/internal/games/zeroone"
	"github.com/vovakirdan/tui-darts/internal/match"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))
	winnerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// progressLine describes where the game stands, e.g. "Round 3/20".
func progressLine(s core.State) string {
	h := s.Header()
	parts := []string{}
	if h.MaxRounds > 0 {
		parts = append(parts, fmt.Sprintf("Round %d/%d", h.CurrentRound, h.MaxRounds))
	} else {
		parts = append(parts, fmt.Sprintf("Round %d", h.CurrentRound))
	}

	if z, ok := s.(*zeroone.State); ok && !z.Config.Match.IsSingleLeg() {
		parts = append(parts, legLine(z.Match, z.Config.Match))
	}
	return strings.Join(parts, "  ·  ")
}

func legLine(ms match.State, ls match.LegSettings) string {
	if ls.Format == match.FormatSets && ls.Sets != nil {
		line := fmt.Sprintf("Set %d (%s)  Leg %d (%s)", ms.CurrentSet, ls.Win, ms.LegsPlayed+1, ls.Sets.Legs)
		if ms.TiebreakerRequired || ms.SetTiebreakerRequired {
			line += "  tiebreak"
		}
		return line
	}
	line := fmt.Sprintf("Leg %d (%s)", ms.CurrentLeg, ls.Win)
	if ms.TiebreakerRequired {
		line += "  tiebreak"
	}
	return line
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
