package engine

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-darts/internal/board"
	"github.com/vovakirdan/tui-darts/internal/core"
	"github.com/vovakirdan/tui-darts/internal/games/zeroone"
	"github.com/vovakirdan/tui-darts/internal/history"
	"github.com/vovakirdan/tui-darts/internal/segment"
)

// Status is the outcome of feeding one event to a Session.
type Status int

const (
	StatusAccepted  Status = iota
	StatusDuplicate        // Correlation id already processed
	StatusTurnFull         // Three darts already thrown this turn
	StatusNotInPlay        // Game over, or a leg is waiting to be closed
)

func (s Status) String() string {
	switch s {
	case StatusAccepted:
		return "accepted"
	case StatusDuplicate:
		return "duplicate"
	case StatusTurnFull:
		return "turn full"
	case StatusNotInPlay:
		return "not in play"
	default:
		return "unknown"
	}
}

// Result describes how a Session handled an event.
type Result struct {
	Status Status
	State  core.State
}

// OK reports whether the event changed the game.
func (r Result) OK() bool { return r.Status == StatusAccepted }

// ErrNoState is returned by NewSession without an initial state.
var ErrNoState = errors.New("engine: nil initial state")

// Option configures a Session.
type Option func(*Session)

// WithHandler sets the function that receives notifications. It is called
// synchronously and must not call back into the Session.
func WithHandler(h func(Event)) Option {
	return func(s *Session) { s.handler = h }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHistoryLimit sets how many undo steps are kept.
func WithHistoryLimit(n int) Option {
	return func(s *Session) { s.historyLimit = n }
}

// WithDedupWindow sets how many recent correlation ids are remembered.
func WithDedupWindow(n int) Option {
	return func(s *Session) { s.dedupSize = n }
}

// Session owns the live state of one game. It is safe for concurrent use;
// notifications are delivered while the session lock is held.
type Session struct {
	mu       sync.Mutex
	state    core.State
	turnHits []segment.Hit
	ledger   *history.Ledger
	seen     *window
	handler  func(Event)
	logger   *log.Logger

	historyLimit int
	dedupSize    int
	finished     bool
}

// NewSession starts a session on the given state.
func NewSession(initial core.State, opts ...Option) (*Session, error) {
	if initial == nil {
		return nil, ErrNoState
	}
	s := &Session{
		state:  initial,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ledger = history.New(s.historyLimit)
	s.seen = newWindow(s.dedupSize)
	s.finished = initial.Header().Finished
	return s, nil
}

// State returns the current snapshot.
func (s *Session) State() core.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// TurnHits returns the hits accepted in the current turn.
func (s *Session) TurnHits() []segment.Hit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]segment.Hit(nil), s.turnHits...)
}

// HasHistory reports whether Undo can restore anything.
func (s *Session) HasHistory() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.HasHistory()
}

// UndoDepth returns how many undo steps are stored and how many can be.
func (s *Session) UndoDepth() (n, limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Len(), s.ledger.Limit()
}

// Apply feeds one board event to the game. The reset sentinel completes
// the current turn. An event without a correlation id cannot be told
// apart from its re-delivery, so it gets a fresh id and is always new.
func (s *Session) Apply(ev board.Event) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}

	if s.seen.contains(ev.ID) {
		return s.reject(ev, StatusDuplicate)
	}
	if ev.Hit.IsReset() {
		res := s.completeTurn()
		if res.OK() {
			s.seen.add(ev.ID)
		} else {
			s.emit(HitRejected{Event: ev, Status: res.Status})
		}
		return res
	}
	return s.applyHit(ev)
}

// ApplyHit applies a hit with the given correlation id.
func (s *Session) ApplyHit(hit segment.Hit, hitID string) Result {
	return s.Apply(board.Event{ID: hitID, Hit: hit})
}

// NextPlayer completes the current turn.
func (s *Session) NextPlayer() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completeTurn()
}

// Undo restores the most recent snapshot. It reports false when there is
// nothing to undo.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.ledger.Undo(func(e history.Entry) {
		s.state = e.State
		s.turnHits = e.TurnHits
	})
	if !ok {
		return false
	}
	s.finished = s.state.Header().Finished
	s.logger.Debug("undo", "round", s.state.Header().CurrentRound, "player", s.state.Header().CurrentPlayerIndex)
	s.emit(Undone{State: s.state})
	return true
}

// Run applies events from src in order until the stream ends or ctx is
// done.
func (s *Session) Run(ctx context.Context, src board.Source) error {
	events := src.Events()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			s.Apply(ev)
		}
	}
}

func (s *Session) applyHit(ev board.Event) Result {
	cur := s.state
	next := ApplyHit(cur, ev.Hit, ev.ID)
	if next == cur {
		return s.reject(ev, s.rejectStatus(ev.ID))
	}

	s.ledger.Record(cur, s.turnHits)
	s.state = next
	s.turnHits = append(append([]segment.Hit(nil), s.turnHits...), ev.Hit)
	s.seen.add(ev.ID)

	player := cur.Header().CurrentPlayerIndex
	s.logger.Debug("hit", "id", ev.ID, "segment", ev.Hit.ID, "player", player)
	s.emit(HitApplied{Event: ev, PlayerIndex: player, State: next})
	s.afterChange(cur, next, s.turnHits)
	return Result{Status: StatusAccepted, State: next}
}

func (s *Session) completeTurn() Result {
	cur := s.state
	next := CompleteTurn(cur)
	if next == cur {
		return Result{Status: StatusNotInPlay, State: cur}
	}

	s.ledger.Record(cur, s.turnHits)
	hits := s.turnHits
	s.state = next
	s.turnHits = nil

	player := cur.Header().CurrentPlayerIndex
	s.logger.Debug("turn complete", "player", player, "darts", len(hits))
	s.emit(TurnCompleted{PlayerIndex: player, Hits: hits, State: next})
	s.afterChange(cur, next, hits)
	return Result{Status: StatusAccepted, State: next}
}

// afterChange reports leg and game results that appeared between cur and
// next. hits are the darts of the turn that caused the change.
func (s *Session) afterChange(cur, next core.State, hits []segment.Hit) {
	if leg, winner, ok := legEnded(cur, next); ok {
		s.logger.Info("leg finished", "leg", leg, "winner", next.PlayerAt(winner).Name)
		s.emit(LegFinished{Leg: leg, WinnerIndex: winner, Hits: copyHits(hits), State: next})
	}

	h := next.Header()
	if h.Finished && !s.finished {
		s.finished = true
		winner, _ := core.Winner(next)
		s.logger.Info("game finished", "mode", next.Mode(), "winner", winner.Name, "round", h.CurrentRound)
		s.emit(GameFinished{WinnerIndex: h.WinnerIndex, Winner: winner, Hits: copyHits(hits), State: next})
	}
}

func copyHits(hits []segment.Hit) []segment.Hit {
	return append([]segment.Hit(nil), hits...)
}

func (s *Session) rejectStatus(id string) Status {
	h := s.state.Header()
	if z, ok := s.state.(*zeroone.State); ok && z.AwaitingNextLeg {
		return StatusNotInPlay
	}
	switch {
	case !h.InPlay():
		return StatusNotInPlay
	case h.DartsThrownThisTurn >= core.MaxDartsPerTurn:
		return StatusTurnFull
	case h.IsRepeat(id):
		return StatusDuplicate
	default:
		return StatusNotInPlay
	}
}

func (s *Session) reject(ev board.Event, status Status) Result {
	s.logger.Debug("hit rejected", "id", ev.ID, "segment", ev.Hit.ID, "reason", status)
	s.emit(HitRejected{Event: ev, Status: status})
	return Result{Status: status, State: s.state}
}

func (s *Session) emit(e Event) {
	if s.handler != nil {
		s.handler(e)
	}
}
