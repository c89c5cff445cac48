// Package stats derives per-player statistics from a session's event
// stream: points per dart and round, marks per round, bull accuracy,
// turn score spread, hat tricks and checkouts.
package stats

import (
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/tui-darts/internal/core"
	"github.com/vovakirdan/tui-darts/internal/engine"
	"github.com/vovakirdan/tui-darts/internal/games/cricket"
	"github.com/vovakirdan/tui-darts/internal/games/targetbull"
	"github.com/vovakirdan/tui-darts/internal/games/zeroone"
)

// PlayerSummary holds the statistics of one player.
type PlayerSummary struct {
	Name   string
	Darts  int
	Turns  int
	Points int // Points scored (01), cricket points or bull total
	Marks  int // Cricket only

	PPD      float64
	PPR      float64
	MPR      float64 // Cricket only
	Accuracy float64 // Target Bull only, percent
	Busts    int     // 01 only

	TurnMean   float64 // Mean turn value: points, or marks in cricket
	TurnStdDev float64
	BestTurn   float64

	HatTricks    int // Turns with three bull hits
	HighCheckout int // 01 only
}

type frameKind int

const (
	frameHit frameKind = iota
	frameTurn
)

// frame is one accepted session change. Frames mirror undo history one to
// one, so Undone pops exactly one.
type frame struct {
	kind   frameKind
	player int
	value  float64
	bull   bool
	bust   bool
	state  core.State
}

// Tracker folds engine events into statistics. Pass Handle as (part of)
// the session handler. It is safe for concurrent use.
type Tracker struct {
	mu     sync.Mutex
	base   core.State
	frames []frame
}

// NewTracker starts tracking from the initial state of a session.
func NewTracker(initial core.State) *Tracker {
	return &Tracker{base: initial}
}

// Handle records an engine event.
func (t *Tracker) Handle(e engine.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch ev := e.(type) {
	case engine.HitApplied:
		prev := t.last()
		t.frames = append(t.frames, frame{
			kind:   frameHit,
			player: ev.PlayerIndex,
			value:  metric(ev.State, ev.PlayerIndex) - metric(prev, ev.PlayerIndex),
			bull:   ev.Event.Hit.IsBull(),
			bust:   lastDartBust(ev.State),
			state:  ev.State,
		})
	case engine.TurnCompleted:
		t.frames = append(t.frames, frame{kind: frameTurn, player: ev.PlayerIndex, state: ev.State})
	case engine.Undone:
		if n := len(t.frames); n > 0 {
			t.frames[n-1] = frame{}
			t.frames = t.frames[:n-1]
		}
	}
}

func (t *Tracker) last() core.State {
	if n := len(t.frames); n > 0 {
		return t.frames[n-1].state
	}
	return t.base
}

// turn is an open or closed visit of one player.
type turn struct {
	player int
	value  float64
	bulls  int
	darts  int
	bust   bool
	zeroed bool // Player reached zero during this turn
}

// turns replays the frames into per-player turn lists. An open turn at
// the end counts once it has a dart.
func (t *Tracker) turns(n int) [][]turn {
	out := make([][]turn, n)
	var cur *turn
	closeTurn := func() {
		if cur != nil && cur.player < n {
			out[cur.player] = append(out[cur.player], *cur)
		}
		cur = nil
	}
	for _, f := range t.frames {
		switch f.kind {
		case frameHit:
			if cur == nil || cur.player != f.player {
				closeTurn()
				cur = &turn{player: f.player}
			}
			cur.value += f.value
			cur.darts++
			if f.bull {
				cur.bulls++
			}
			cur.bust = cur.bust || f.bust
			if z, ok := f.state.(*zeroone.State); ok && z.Players[f.player].RemainingScore == 0 {
				cur.zeroed = true
			}
		case frameTurn:
			if cur == nil {
				cur = &turn{player: f.player}
			}
			closeTurn()
		}
	}
	if cur != nil && cur.darts > 0 {
		closeTurn()
	}
	return out
}

// TurnScores returns the value of every turn a player has thrown.
func (t *Tracker) TurnScores(player int) []float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.last()
	if player < 0 || player >= s.PlayerCount() {
		return nil
	}
	return values(t.turns(s.PlayerCount())[player])
}

// Summaries returns one summary per player, in player order.
func (t *Tracker) Summaries() []PlayerSummary {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.last()
	turns := t.turns(s.PlayerCount())
	out := make([]PlayerSummary, s.PlayerCount())
	for i := range out {
		sum := modeSummary(s, i)
		sum.Name = s.PlayerAt(i).Name
		sum.Turns = len(turns[i])

		scores := values(turns[i])
		if len(scores) > 0 {
			sum.TurnMean, sum.TurnStdDev = stat.PopMeanStdDev(scores, nil)
			sum.BestTurn = floats.Max(scores)
		}
		if _, ok := s.(*zeroone.State); ok {
			// 01 player states restart every leg; count the whole match.
			sum.Darts, sum.Points, sum.Busts = 0, 0, 0
			for _, tr := range turns[i] {
				sum.Darts += tr.darts
				sum.Points += int(tr.value)
				if tr.bust {
					sum.Busts++
				}
			}
			sum.PPD = ratio(sum.Points, sum.Darts)
			sum.PPR = ratio(sum.Points, sum.Turns)
		}
		for _, tr := range turns[i] {
			if tr.bulls >= 3 {
				sum.HatTricks++
			}
			if tr.zeroed && int(tr.value) > sum.HighCheckout {
				sum.HighCheckout = int(tr.value)
			}
		}
		out[i] = sum
	}
	return out
}

func lastDartBust(s core.State) bool {
	z, ok := s.(*zeroone.State)
	return ok && z.LastDartBust
}

func values(turns []turn) []float64 {
	v := make([]float64, len(turns))
	for i, tr := range turns {
		v[i] = tr.value
	}
	return v
}

// metric is the running total a turn value is measured by.
func metric(s core.State, player int) float64 {
	if s == nil || player < 0 || player >= s.PlayerCount() {
		return 0
	}
	switch st := s.(type) {
	case *cricket.State:
		return float64(st.Players[player].TotalMarks)
	case *zeroone.State:
		return float64(st.Players[player].TotalPointsScored)
	case *targetbull.State:
		return float64(st.Players[player].TotalScore)
	default:
		return 0
	}
}

// modeSummary fills the fields that come straight from the game state.
func modeSummary(s core.State, i int) PlayerSummary {
	switch st := s.(type) {
	case *cricket.State:
		p := st.Players[i]
		return PlayerSummary{
			Darts:  p.DartsThrownTotal,
			Points: p.TotalPoints,
			Marks:  p.TotalMarks,
			MPR:    p.MPR(),
			PPD:    ratio(p.TotalPoints, p.DartsThrownTotal),
			PPR:    ratio(p.TotalPoints, p.RoundsPlayed),
		}
	case *targetbull.State:
		p := st.Players[i]
		return PlayerSummary{
			Darts:    p.DartsThrownTotal,
			Points:   p.TotalScore,
			PPD:      p.PPD(),
			PPR:      p.PPR(),
			Accuracy: p.Accuracy(),
		}
	default:
		return PlayerSummary{}
	}
}

func ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}
