package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-darts/internal/core"
	"github.com/vovakirdan/tui-darts/internal/games/cricket"
	"github.com/vovakirdan/tui-darts/internal/games/targetbull"
	"github.com/vovakirdan/tui-darts/internal/games/zeroone"
	"github.com/vovakirdan/tui-darts/internal/stats"
)

// Scoreboard layout constants
const (
	nameWidth   = 14
	markWidth   = 4
	numberWidth = 8
)

// newBoardTable builds a read-only table whose highlighted row is the
// player to throw.
func newBoardTable(columns []table.Column, rows []table.Row, current int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(true),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	if current < 0 || current >= len(rows) {
		s.Selected = lipgloss.NewStyle()
	}
	t.SetStyles(s)

	if current >= 0 && current < len(rows) {
		t.SetCursor(current)
	}
	return t
}

// RenderScoreboard renders the live standings of any mode.
func RenderScoreboard(s core.State) string {
	switch st := s.(type) {
	case *cricket.State:
		return renderCricket(st)
	case *zeroone.State:
		return renderZeroOne(st)
	case *targetbull.State:
		return renderTargetBull(st)
	default:
		return ""
	}
}

// markSymbol draws cricket marks the way a chalkboard does.
func markSymbol(marks int) string {
	switch {
	case marks <= 0:
		return ""
	case marks == 1:
		return "/"
	case marks == 2:
		return "X"
	default:
		return "(X)"
	}
}

func renderCricket(s *cricket.State) string {
	columns := []table.Column{{Title: "Player", Width: nameWidth}}
	for _, t := range cricket.Targets {
		title := strconv.Itoa(t)
		if t == 25 {
			title = "B"
		}
		columns = append(columns, table.Column{Title: title, Width: markWidth})
	}
	columns = append(columns,
		table.Column{Title: "Pts", Width: numberWidth},
		table.Column{Title: "MPR", Width: 6},
		table.Column{Title: "Pos", Width: 4},
	)

	rank := make([]int, len(s.Players))
	for pos, idx := range cricket.Standings(s) {
		rank[idx] = pos + 1
	}

	rows := make([]table.Row, len(s.Players))
	for i, p := range s.Players {
		row := table.Row{p.Player.Name}
		for _, t := range cricket.Targets {
			row = append(row, markSymbol(p.Marks[t].Marks))
		}
		row = append(row, strconv.Itoa(p.TotalPoints), fmt.Sprintf("%.2f", p.MPR()), strconv.Itoa(rank[i]))
		rows[i] = row
	}
	return newBoardTable(columns, rows, s.CurrentPlayerIndex).View()
}

func renderZeroOne(s *zeroone.State) string {
	columns := []table.Column{
		{Title: "Player", Width: nameWidth},
		{Title: "Left", Width: numberWidth},
		{Title: "Avg", Width: numberWidth},
		{Title: "Busts", Width: 6},
		{Title: "Legs", Width: 5},
	}
	sets := s.Match.SetWins != nil
	if sets {
		columns = append(columns, table.Column{Title: "Sets", Width: 5})
	}

	rows := make([]table.Row, len(s.Players))
	for i, p := range s.Players {
		row := table.Row{
			p.Player.Name,
			strconv.Itoa(p.RemainingScore),
			fmt.Sprintf("%.1f", p.Average()),
			strconv.Itoa(p.Busts),
			strconv.Itoa(s.Match.LegWins[i]),
		}
		if sets {
			row = append(row, strconv.Itoa(s.Match.SetWins[i]))
		}
		rows[i] = row
	}
	return newBoardTable(columns, rows, s.CurrentPlayerIndex).View()
}

func renderTargetBull(s *targetbull.State) string {
	columns := []table.Column{
		{Title: "Player", Width: nameWidth},
		{Title: "Score", Width: numberWidth},
		{Title: "25", Width: markWidth},
		{Title: "50", Width: markWidth},
		{Title: "Acc", Width: 7},
		{Title: "PPD", Width: 6},
	}

	rows := make([]table.Row, len(s.Players))
	for i, p := range s.Players {
		rows[i] = table.Row{
			p.Player.Name,
			strconv.Itoa(p.TotalScore),
			strconv.Itoa(p.Hits25 + p.HitsBull),
			strconv.Itoa(p.HitsDoubleBull),
			fmt.Sprintf("%.0f%%", p.Accuracy()),
			fmt.Sprintf("%.1f", p.PPD()),
		}
	}
	return newBoardTable(columns, rows, s.CurrentPlayerIndex).View()
}

// RenderSummary renders end-of-game statistics as a table.
func RenderSummary(mode core.Mode, sums []stats.PlayerSummary) string {
	columns := []table.Column{
		{Title: "Player", Width: nameWidth},
		{Title: "Darts", Width: 6},
		{Title: "PPD", Width: 6},
		{Title: "PPR", Width: 7},
	}
	switch mode {
	case core.ModeCricket:
		columns = append(columns, table.Column{Title: "MPR", Width: 5})
	case core.ModeTargetBull:
		columns = append(columns, table.Column{Title: "Acc", Width: 5}, table.Column{Title: "Hat", Width: 4})
	case core.ModeZeroOne:
		columns = append(columns, table.Column{Title: "Busts", Width: 6}, table.Column{Title: "Out", Width: 4})
	}
	columns = append(columns,
		table.Column{Title: "Turn", Width: 12},
		table.Column{Title: "Best", Width: 5},
	)

	rows := make([]table.Row, len(sums))
	for i, s := range sums {
		row := table.Row{
			s.Name,
			strconv.Itoa(s.Darts),
			fmt.Sprintf("%.2f", s.PPD),
			fmt.Sprintf("%.1f", s.PPR),
		}
		switch mode {
		case core.ModeCricket:
			row = append(row, fmt.Sprintf("%.2f", s.MPR))
		case core.ModeTargetBull:
			row = append(row, fmt.Sprintf("%.0f%%", s.Accuracy), strconv.Itoa(s.HatTricks))
		case core.ModeZeroOne:
			row = append(row, strconv.Itoa(s.Busts), strconv.Itoa(s.HighCheckout))
		}
		row = append(row,
			fmt.Sprintf("%.1f±%.1f", s.TurnMean, s.TurnStdDev),
			fmt.Sprintf("%.0f", s.BestTurn),
		)
		rows[i] = row
	}
	return newBoardTable(columns, rows, -1).View()
}

// turnLine shows the darts of the current visit with empty slots.
func turnLine(hits []string) string {
	slots := make([]string, core.MaxDartsPerTurn)
	for i := range slots {
		slots[i] = "-"
		if i < len(hits) {
			slots[i] = hits[i]
		}
	}
	return strings.Join(slots, "  ")
}
