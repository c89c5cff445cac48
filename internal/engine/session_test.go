package engine

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-darts/internal/board"
	"github.com/vovakirdan/tui-darts/internal/core"
	"github.com/vovakirdan/tui-darts/internal/games/cricket"
	"github.com/vovakirdan/tui-darts/internal/games/targetbull"
	"github.com/vovakirdan/tui-darts/internal/games/zeroone"
	"github.com/vovakirdan/tui-darts/internal/match"
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

type recorder struct {
	events []Event
}

func (r *recorder) handle(e Event) { r.events = append(r.events, e) }

func count[T Event](r *recorder) int {
	n := 0
	for _, e := range r.events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

func newCricketSession(t *testing.T, opts ...Option) (*Session, *recorder) {
	t.Helper()
	st, err := cricket.NewState(core.NewPlayers("A", "B"), cricket.Config{Variant: cricket.Standard})
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}
	rec := &recorder{}
	s, err := NewSession(st, append([]Option{WithHandler(rec.handle)}, opts...)...)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s, rec
}

func newZeroOneSession(t *testing.T, cfg zeroone.Config) (*Session, *recorder) {
	t.Helper()
	st, err := zeroone.NewState(core.NewPlayers("A", "B"), cfg)
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}
	rec := &recorder{}
	s, err := NewSession(st, WithHandler(rec.handle))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s, rec
}

func TestNewSessionNilState(t *testing.T) {
	if _, err := NewSession(nil); !errors.Is(err, ErrNoState) {
		t.Errorf("expected ErrNoState, got %v", err)
	}
}

func TestDispatchReturnsSameStateOnNoop(t *testing.T) {
	st, _ := targetbull.NewState(core.NewPlayers("A", "B"), targetbull.Config{BullMode: targetbull.Split})
	var s core.State = st
	next := ApplyHit(s, hit(t, "SB"), "1")
	if next == s {
		t.Fatal("bull should be applied")
	}
	if again := ApplyHit(next, hit(t, "SB"), "1"); again != next {
		t.Error("repeat of the last id must return the same state")
	}
	if c := CloneState(next); c == next || c.Mode() != core.ModeTargetBull {
		t.Error("CloneState should return a new state of the same mode")
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	s, rec := newCricketSession(t)
	ev := board.Event{ID: "e1", Hit: hit(t, "T20")}

	if res := s.Apply(ev); !res.OK() {
		t.Fatalf("first delivery rejected: %v", res.Status)
	}
	if res := s.Apply(ev); res.Status != StatusDuplicate {
		t.Errorf("second delivery status = %v, want duplicate", res.Status)
	}
	st := s.State().(*cricket.State)
	if st.Players[0].Marks[20].Marks != 3 || st.DartsThrownThisTurn != 1 {
		t.Errorf("hit applied twice: %+v", st.Players[0].Marks[20])
	}
	if count[HitApplied](rec) != 1 || count[HitRejected](rec) != 1 {
		t.Errorf("unexpected events %v", rec.events)
	}
}

func TestRedeliveryAfterAnotherHit(t *testing.T) {
	s, _ := newCricketSession(t)
	first := board.Event{ID: "a", Hit: hit(t, "S20")}
	s.Apply(first)
	s.Apply(board.Event{ID: "b", Hit: hit(t, "S19")})

	// The state only remembers "b"; the window still catches "a".
	if res := s.Apply(first); res.Status != StatusDuplicate {
		t.Errorf("status = %v, want duplicate", res.Status)
	}
	if n := s.State().Header().DartsThrownThisTurn; n != 2 {
		t.Errorf("darts = %d, want 2", n)
	}
}

func TestDedupWindowForgetsOldIDs(t *testing.T) {
	s, _ := newCricketSession(t, WithDedupWindow(1))
	s.Apply(board.Event{ID: "a", Hit: hit(t, "S20")})
	s.Apply(board.Event{ID: "b", Hit: hit(t, "S19")})
	if res := s.Apply(board.Event{ID: "a", Hit: hit(t, "S18")}); !res.OK() {
		t.Errorf("id outside the window should be accepted, got %v", res.Status)
	}
}

func TestMissingIDsGetFreshOnes(t *testing.T) {
	s, rec := newCricketSession(t)
	for i := 0; i < 3; i++ {
		if res := s.ApplyHit(hit(t, "M"), ""); !res.OK() {
			t.Fatalf("dart %d rejected: %v", i+1, res.Status)
		}
	}
	if res := s.ApplyHit(hit(t, "M"), ""); res.Status != StatusTurnFull {
		t.Errorf("fourth dart status = %v, want turn full", res.Status)
	}

	ids := map[string]bool{}
	for _, e := range rec.events {
		if ha, ok := e.(HitApplied); ok {
			if ha.Event.ID == "" || ids[ha.Event.ID] {
				t.Errorf("applied hit has id %q, want a new non-empty id", ha.Event.ID)
			}
			ids[ha.Event.ID] = true
		}
	}
	if len(ids) != 3 {
		t.Errorf("expected 3 applied hits, got %d", len(ids))
	}
}

func TestResetCompletesTurn(t *testing.T) {
	s, rec := newCricketSession(t)
	s.Apply(board.Event{ID: "1", Hit: hit(t, "T20")})
	s.Apply(board.Event{ID: "2", Hit: hit(t, "M")})

	reset := board.Event{ID: "r1", Hit: segment.Reset()}
	if res := s.Apply(reset); !res.OK() {
		t.Fatalf("reset rejected: %v", res.Status)
	}
	if got := s.State().Header().CurrentPlayerIndex; got != 1 {
		t.Errorf("expected player B, got %d", got)
	}
	if len(s.TurnHits()) != 0 {
		t.Error("turn hits should be cleared")
	}
	if res := s.Apply(reset); res.Status != StatusDuplicate {
		t.Errorf("redelivered reset must not skip a player, got %v", res.Status)
	}

	var done *TurnCompleted
	for _, e := range rec.events {
		if tc, ok := e.(TurnCompleted); ok {
			done = &tc
		}
	}
	if done == nil || done.PlayerIndex != 0 || len(done.Hits) != 2 || done.Hits[0].ID != "T20" {
		t.Errorf("TurnCompleted = %+v", done)
	}
}

func TestUndoRoundTrip(t *testing.T) {
	s, rec := newCricketSession(t)
	before := s.State()

	s.ApplyHit(hit(t, "T20"), "x")
	s.ApplyHit(hit(t, "S19"), "y")
	if !s.HasHistory() {
		t.Fatal("expected history")
	}

	if !s.Undo() || !s.Undo() {
		t.Fatal("two undos should succeed")
	}
	if s.Undo() {
		t.Error("nothing left to undo")
	}

	got := s.State().(*cricket.State)
	want := before.(*cricket.State)
	if got.DartsThrownThisTurn != want.DartsThrownThisTurn || got.Players[0].TotalMarks != 0 || got.LastProcessedHitID != "" {
		t.Errorf("state not restored: %+v", got.Turn)
	}
	if len(s.TurnHits()) != 0 {
		t.Error("turn hits not restored")
	}
	if count[Undone](rec) != 2 {
		t.Errorf("expected 2 Undone events, got %d", count[Undone](rec))
	}
}

func TestUndoAcrossTurnBoundary(t *testing.T) {
	s, _ := newCricketSession(t)
	s.ApplyHit(hit(t, "T20"), "x")
	s.NextPlayer()
	s.Undo()

	if got := s.State().Header().CurrentPlayerIndex; got != 0 {
		t.Errorf("undo should return the throw to A, got %d", got)
	}
	if hits := s.TurnHits(); len(hits) != 1 || hits[0].ID != "T20" {
		t.Errorf("turn hits = %v", hits)
	}
}

func TestHistoryLimit(t *testing.T) {
	s, _ := newCricketSession(t, WithHistoryLimit(2))
	s.ApplyHit(hit(t, "M"), "1")
	s.ApplyHit(hit(t, "M"), "2")
	s.ApplyHit(hit(t, "M"), "3")
	undone := 0
	for s.Undo() {
		undone++
	}
	if undone != 2 {
		t.Errorf("expected 2 undo steps, got %d", undone)
	}
	if got := s.State().Header().DartsThrownThisTurn; got != 1 {
		t.Errorf("oldest snapshot should have one dart, got %d", got)
	}
}

func TestUndoDepth(t *testing.T) {
	s, _ := newCricketSession(t, WithHistoryLimit(2))
	if n, limit := s.UndoDepth(); n != 0 || limit != 2 {
		t.Fatalf("UndoDepth() = %d/%d, want 0/2", n, limit)
	}
	for i, id := range []string{"1", "2", "3"} {
		s.ApplyHit(hit(t, "S20"), id)
		want := min(i+1, 2)
		if n, _ := s.UndoDepth(); n != want {
			t.Errorf("after %d hits UndoDepth() = %d, want %d", i+1, n, want)
		}
	}
}

func TestLegAndGameEvents(t *testing.T) {
	cfg := zeroone.Config{
		StartScore: 301,
		Match: match.LegSettings{
			Format:       match.FormatLegs,
			Win:          match.Condition{Type: match.FirstTo, Count: 2},
			StartingRule: match.Alternate,
		},
	}
	s, _ := newZeroOneSession(t, cfg)

	// Leg one: A checks out from 40.
	st := s.State().(*zeroone.State).Clone()
	st.Players[0].RemainingScore = 40
	s, rec := sessionOn(t, st)

	if res := s.ApplyHit(hit(t, "D20"), "l1"); !res.OK() {
		t.Fatalf("checkout rejected: %v", res.Status)
	}
	if count[LegFinished](rec) != 1 || count[GameFinished](rec) != 0 {
		t.Fatalf("expected one LegFinished and no GameFinished, got %v", rec.events)
	}
	if res := s.ApplyHit(hit(t, "S1"), "between"); res.Status != StatusNotInPlay {
		t.Errorf("hit between legs status = %v", res.Status)
	}
	if res := s.NextPlayer(); !res.OK() {
		t.Fatalf("starting leg two failed: %v", res.Status)
	}

	st = s.State().(*zeroone.State).Clone()
	if st.Match.CurrentLeg != 2 || st.CurrentPlayerIndex != 1 {
		t.Fatalf("leg two should start with B, got leg %d player %d", st.Match.CurrentLeg, st.CurrentPlayerIndex)
	}
	st.CurrentPlayerIndex = 0
	st.Players[0].RemainingScore = 50
	s, rec = sessionOn(t, st)
	s.ApplyHit(hit(t, "DB"), "l2")

	if count[LegFinished](rec) != 1 || count[GameFinished](rec) != 1 {
		t.Fatalf("expected LegFinished and GameFinished, got %v", rec.events)
	}
	for _, e := range rec.events {
		if gf, ok := e.(GameFinished); ok && gf.Winner.Name != "A" {
			t.Errorf("winner = %q, want A", gf.Winner.Name)
		}
		if lf, ok := e.(LegFinished); ok && lf.Leg != 2 {
			t.Errorf("leg = %d, want 2", lf.Leg)
		}
	}
	if res := s.NextPlayer(); res.Status != StatusNotInPlay {
		t.Errorf("NextPlayer after the match = %v", res.Status)
	}
}

func TestFinishCarriesCheckoutDarts(t *testing.T) {
	s, rec := newZeroOneSession(t, zeroone.Config{StartScore: 301})
	play := func(id string, codes ...string) {
		t.Helper()
		for i, c := range codes {
			if res := s.ApplyHit(hit(t, c), fmt.Sprintf("%s-%d", id, i)); !res.OK() {
				t.Fatalf("%s dart %d (%s) rejected: %v", id, i+1, c, res.Status)
			}
		}
	}

	play("a1", "T20", "T20", "T20") // A on 121
	s.NextPlayer()
	play("b1", "M")
	s.NextPlayer()
	play("a2", "T20", "T19", "D2") // 121 - 60 - 57 - 4

	if count[GameFinished](rec) != 1 {
		t.Fatalf("expected GameFinished, got %v", rec.events)
	}
	want := []string{"T20", "T19", "D2"}
	for _, e := range rec.events {
		var hits []segment.Hit
		switch ev := e.(type) {
		case GameFinished:
			hits = ev.Hits
		case LegFinished:
			hits = ev.Hits
		default:
			continue
		}
		got := make([]string, len(hits))
		for i, h := range hits {
			got[i] = h.ID
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%T hits = %v, want %v", e, got, want)
		}
	}
}

func sessionOn(t *testing.T, st core.State) (*Session, *recorder) {
	t.Helper()
	rec := &recorder{}
	s, err := NewSession(st, WithHandler(rec.handle))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s, rec
}

func TestUndoReopensFinishedGame(t *testing.T) {
	st, _ := targetbull.NewState(core.NewPlayers("A", "B"), targetbull.Config{BullMode: targetbull.Split, TargetScore: 50})
	s, rec := sessionOn(t, st)
	s.ApplyHit(hit(t, "DB"), "win")
	if !s.State().Header().Finished {
		t.Fatal("bull reaches the target")
	}
	s.Undo()
	s.ApplyHit(hit(t, "DB"), "win-again")
	if count[GameFinished](rec) != 2 {
		t.Errorf("game finished should be reported again after undo, got %d", count[GameFinished](rec))
	}
}

func TestRunConsumesScript(t *testing.T) {
	script, err := board.ParseScript([]byte(`
throws:
  - T20
  - {hit: T20, id: dup}
  - {hit: T20, id: dup}
  - R
  - S19
`))
	if err != nil {
		t.Fatalf("ParseScript failed: %v", err)
	}
	s, rec := newCricketSession(t)
	if err := s.Run(context.Background(), script); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	st := s.State().(*cricket.State)
	if st.Players[0].Marks[20].Marks != 3 || st.Players[0].TotalPoints != 60 {
		t.Errorf("A: marks=%d points=%d", st.Players[0].Marks[20].Marks, st.Players[0].TotalPoints)
	}
	if st.CurrentPlayerIndex != 1 || st.Players[1].Marks[19].Marks != 1 {
		t.Errorf("B should have thrown S19")
	}
	if count[HitRejected](rec) != 1 {
		t.Errorf("the duplicate should be rejected once, got %d", count[HitRejected](rec))
	}
}

func TestRunStopsOnContext(t *testing.T) {
	s, _ := newCricketSession(t)
	m := board.NewManual(1)
	defer m.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := s.Run(ctx, m); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run error = %v, want deadline exceeded", err)
	}
}

func TestRunWithManualSource(t *testing.T) {
	s, _ := newCricketSession(t)
	m := board.NewManual(8)
	ev, _ := m.Push(hit(t, "T19"))
	m.Redeliver(ev)
	m.Push(segment.Reset())
	m.Close()

	if err := s.Run(context.Background(), m); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	st := s.State().(*cricket.State)
	if st.Players[0].Marks[19].Marks != 3 || st.CurrentPlayerIndex != 1 {
		t.Errorf("unexpected state: marks=%d player=%d", st.Players[0].Marks[19].Marks, st.CurrentPlayerIndex)
	}
}
