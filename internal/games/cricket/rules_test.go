package cricket

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-darts/internal/core"
	"github.com/vovakirdan/tui-darts/internal/segment"
)

func hit(t *testing.T, code string) segment.Hit {
	t.Helper()
	h, err := segment.Parse(code)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", code, err)
	}
	return h
}

func newGame(t *testing.T, variant Variant, names ...string) *State {
	t.Helper()
	s, err := NewState(core.NewPlayers(names...), Config{Variant: variant})
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}
	return s
}

// throw applies codes for the current player with generated ids.
func throw(t *testing.T, s *State, codes ...string) *State {
	t.Helper()
	for _, c := range codes {
		id := fmt.Sprintf("%s-r%d-p%d-d%d", c, s.CurrentRound, s.CurrentPlayerIndex, s.DartsThrownThisTurn)
		s = ApplyHit(s, hit(t, c), id)
	}
	return s
}

// closeAll closes every target for the current player over several turns.
func closeAll(t *testing.T, s *State, player int) *State {
	t.Helper()
	codes := []string{"T15", "T16", "T17", "T18", "T19", "T20", "DB", "SB"}
	for _, c := range codes {
		for s.CurrentPlayerIndex != player || s.DartsThrownThisTurn >= core.MaxDartsPerTurn {
			s = CompleteTurn(s)
		}
		s = ApplyHit(s, hit(t, c), "close-"+c+"-"+s.Players[player].Player.Name)
	}
	return s
}

func TestNewStateRequiresTwoPlayers(t *testing.T) {
	_, err := NewState(core.NewPlayers("Solo"), Config{Variant: Standard})
	if !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	_, err = NewState(core.NewPlayers("A", "B"), Config{Variant: "golf"})
	if !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("expected configuration error for variant, got %v", err)
	}
}

func TestStandardOverflowScores(t *testing.T) {
	s := newGame(t, Standard, "A", "B")

	s = throw(t, s, "T20")
	if got := s.Players[0].Marks[20].Marks; got != 3 {
		t.Fatalf("expected 20 closed, got %d marks", got)
	}
	if s.Players[0].TotalPoints != 0 {
		t.Fatalf("closing hit should not score, got %d", s.Players[0].TotalPoints)
	}

	s = throw(t, s, "S20")
	a := s.Players[0]
	if a.Marks[20].Points != 20 || a.TotalPoints != 20 {
		t.Errorf("expected 20 points on 20, got %d / total %d", a.Marks[20].Points, a.TotalPoints)
	}
	if a.Marks[20].Marks != 3 {
		t.Errorf("marks must stay capped at 3, got %d", a.Marks[20].Marks)
	}
	if a.TotalMarks != 3 {
		t.Errorf("only registered marks count, got %d", a.TotalMarks)
	}
}

func TestPartialOverflow(t *testing.T) {
	s := newGame(t, Standard, "A", "B")
	s = throw(t, s, "D19", "T19")
	a := s.Players[0]
	if a.Marks[19].Marks != 3 || a.TotalMarks != 3 {
		t.Errorf("expected 3 marks, got %d (total %d)", a.Marks[19].Marks, a.TotalMarks)
	}
	if a.TotalPoints != 2*19 {
		t.Errorf("expected 38 overflow points, got %d", a.TotalPoints)
	}
}

func TestStandardNoScoreWhenAllClosed(t *testing.T) {
	s := newGame(t, Standard, "A", "B")
	s = throw(t, s, "T20")
	s = CompleteTurn(s)
	s = throw(t, s, "T20")
	s = CompleteTurn(s)

	s = throw(t, s, "T20")
	if s.Players[0].TotalPoints != 0 {
		t.Errorf("no points once every player closed 20, got %d", s.Players[0].TotalPoints)
	}
}

func TestCutThroatPenalizesOpponents(t *testing.T) {
	s := newGame(t, CutThroat, "A", "B", "C")

	// C closes 18 first.
	s = CompleteTurn(s)
	s = CompleteTurn(s)
	s = throw(t, s, "T18")
	s = CompleteTurn(s)

	// A closes 18 and overflows with a single.
	s = throw(t, s, "T18", "S18")
	if s.Players[0].TotalPoints != 0 {
		t.Errorf("hitter must not score in cut-throat, got %d", s.Players[0].TotalPoints)
	}
	if s.Players[1].TotalPoints != 18 {
		t.Errorf("open opponent should take 18, got %d", s.Players[1].TotalPoints)
	}
	if s.Players[2].TotalPoints != 0 {
		t.Errorf("closed opponent should take nothing, got %d", s.Players[2].TotalPoints)
	}
}

func TestBullOverflowWorth25(t *testing.T) {
	s := newGame(t, Standard, "A", "B")
	s = throw(t, s, "DB", "SB", "DB")
	a := s.Players[0]
	if a.Marks[segment.SectionBull].Marks != 3 {
		t.Fatalf("expected bull closed, got %d", a.Marks[segment.SectionBull].Marks)
	}
	if a.TotalPoints != 50 {
		t.Errorf("expected 2 overflow marks on bull = 50, got %d", a.TotalPoints)
	}
}

func TestNonTargetCountsDart(t *testing.T) {
	s := newGame(t, Standard, "A", "B")
	s = throw(t, s, "T5", "M")
	if s.DartsThrownThisTurn != 2 || s.Players[0].DartsThrownTotal != 2 {
		t.Errorf("non-target darts should count, got %d/%d", s.DartsThrownThisTurn, s.Players[0].DartsThrownTotal)
	}
	if s.Players[0].TotalMarks != 0 {
		t.Error("non-target darts must not mark")
	}
}

func TestApplyHitIdempotent(t *testing.T) {
	s := newGame(t, Standard, "A", "B")
	h := hit(t, "T20")

	once := ApplyHit(s, h, "dart-1")
	twice := ApplyHit(once, h, "dart-1")
	if twice != once {
		t.Error("repeated id should return the same state")
	}
	if !reflect.DeepEqual(twice, once) {
		t.Error("repeated id must not change state")
	}
	if s.DartsThrownThisTurn != 0 {
		t.Error("ApplyHit mutated its input")
	}
}

func TestApplyHitIdempotentEmptyID(t *testing.T) {
	s := newGame(t, Standard, "A", "B")
	h := hit(t, "T20")

	once := ApplyHit(s, h, "")
	if once == s || once.DartsThrownThisTurn != 1 {
		t.Fatal("first hit with an empty id should apply")
	}
	if twice := ApplyHit(once, h, ""); twice != once {
		t.Errorf("repeated empty id should be a no-op, got darts=%d", twice.DartsThrownThisTurn)
	}
	if next := ApplyHit(once, h, "dart-2"); next == once {
		t.Error("a different id after an empty one should apply")
	}
}

func TestDartCountBound(t *testing.T) {
	s := newGame(t, Standard, "A", "B")
	for i := 0; i < 6; i++ {
		s = ApplyHit(s, hit(t, "S20"), string(rune('a'+i)))
		if s.DartsThrownThisTurn > core.MaxDartsPerTurn {
			t.Fatalf("darts this turn exceeded 3: %d", s.DartsThrownThisTurn)
		}
	}
	if s.Players[0].Marks[20].Marks != 3 || s.Players[0].TotalPoints != 0 {
		t.Errorf("only three darts should register, got %+v", s.Players[0].Marks[20])
	}
}

func TestResetSentinelIgnored(t *testing.T) {
	s := newGame(t, Standard, "A", "B")
	if got := ApplyHit(s, segment.Reset(), "r1"); got != s {
		t.Error("reset sentinel must not be scored")
	}
}

func TestCompleteTurnAdvances(t *testing.T) {
	s := newGame(t, Standard, "A", "B")
	s = throw(t, s, "S20")
	s = CompleteTurn(s)
	if s.CurrentPlayerIndex != 1 || s.DartsThrownThisTurn != 0 {
		t.Errorf("expected player 1 with 0 darts, got %d/%d", s.CurrentPlayerIndex, s.DartsThrownThisTurn)
	}
	if s.Players[0].RoundsPlayed != 1 {
		t.Errorf("outgoing player should have 1 round, got %d", s.Players[0].RoundsPlayed)
	}
	s = CompleteTurn(s)
	if s.CurrentPlayerIndex != 0 || s.CurrentRound != 2 {
		t.Errorf("wrap should start round 2, got player %d round %d", s.CurrentPlayerIndex, s.CurrentRound)
	}
}

func TestWinRequiresBestScore(t *testing.T) {
	s := newGame(t, Standard, "A", "B")

	// B scores 60 on 20 while A has it open.
	s = CompleteTurn(s)
	s = throw(t, s, "T20", "T20")
	s = CompleteTurn(s)

	s = closeAll(t, s, 0)
	if s.Finished {
		t.Fatal("A closed everything but trails on points; game must continue")
	}

	// A scores on 19 which B still has open: 57 points, still behind.
	for s.CurrentPlayerIndex != 0 || s.DartsThrownThisTurn > 0 {
		s = CompleteTurn(s)
	}
	s = throw(t, s, "T19")
	if s.Finished {
		t.Fatal("57 < 60, A must not win yet")
	}
	s = throw(t, s, "S19")
	if !s.Finished || s.WinnerIndex != 0 {
		t.Errorf("A leads 76-60 with all closed and should win, got finished=%v winner=%d", s.Finished, s.WinnerIndex)
	}

	after := ApplyHit(s, hit(t, "S20"), "late")
	if after != s {
		t.Error("finished game must absorb hits")
	}
}

func TestCutThroatWinNeedsLowest(t *testing.T) {
	s := newGame(t, CutThroat, "A", "B")
	s = closeAll(t, s, 0)
	if !s.Finished || s.WinnerIndex != 0 {
		t.Errorf("A closed all with 0 points and should win cut-throat, got winner %d", s.WinnerIndex)
	}
}

func TestRoundLimit(t *testing.T) {
	s, err := NewState(core.NewPlayers("A", "B"), Config{Variant: Standard, MaxRounds: 1})
	if err != nil {
		t.Fatal(err)
	}
	s = CompleteTurn(s)
	s = throw(t, s, "T20", "S20")
	s = CompleteTurn(s)
	if !s.Finished || s.WinnerIndex != 1 {
		t.Errorf("round limit should finish with B ahead, got finished=%v winner=%d", s.Finished, s.WinnerIndex)
	}
	if got := CompleteTurn(s); got != s {
		t.Error("finished game must ignore turn completion")
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := newGame(t, Standard, "A", "B")
	c := s.Clone()
	c.Players[0].Marks[20] = Mark{Marks: 3}
	if s.Players[0].Marks[20].Marks != 0 {
		t.Error("clone shares mark maps with the original")
	}
}

func TestStandingsAndMPR(t *testing.T) {
	s := newGame(t, Standard, "A", "B")
	s = throw(t, s, "T20", "S20", "M")
	s = CompleteTurn(s)
	order := Standings(s)
	if order[0] != 0 {
		t.Errorf("A should lead, got order %v", order)
	}
	if mpr := s.Players[0].MPR(); mpr != 3 {
		t.Errorf("3 marks in 3 darts is MPR 3, got %v", mpr)
	}
}
