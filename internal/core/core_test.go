package core

import (
	"errors"
	"testing"
)

func TestNewPlayers(t *testing.T) {
	players := NewPlayers("Alice", " ", "Carol")
	if len(players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(players))
	}
	if players[1].Name != "Player 2" {
		t.Errorf("blank name should default, got %q", players[1].Name)
	}
	if players[2].ID != "p3" {
		t.Errorf("expected id p3, got %q", players[2].ID)
	}
}

func TestValidatePlayers(t *testing.T) {
	err := ValidatePlayers(NewPlayers("Solo"))
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("single player should be a configuration error, got %v", err)
	}

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "players" {
		t.Errorf("expected ConfigurationError on players, got %v", err)
	}

	dup := []Player{{ID: "a", Name: "A"}, {ID: "a", Name: "B"}}
	if err := ValidatePlayers(dup); err == nil {
		t.Error("duplicate ids should be rejected")
	}

	if err := ValidatePlayers(NewPlayers("A", "B")); err != nil {
		t.Errorf("two players should be valid: %v", err)
	}
}

func TestTurnAccepts(t *testing.T) {
	turn := NewTurn(0, 0)
	if !turn.Accepts("h1") {
		t.Fatal("fresh turn should accept a hit")
	}

	if !turn.Accepts("") {
		t.Error("fresh turn should accept an empty id")
	}

	turn.MarkProcessed("h1")
	if turn.Accepts("h1") {
		t.Error("repeated id should be rejected")
	}
	if !turn.Accepts("") {
		t.Error("empty id differs from h1")
	}

	turn.MarkProcessed("")
	if turn.Accepts("") {
		t.Error("repeated empty id should be rejected")
	}
	if !turn.Accepts("h1") {
		t.Error("h1 is no longer the last id")
	}

	turn.DartsThrownThisTurn = MaxDartsPerTurn
	if turn.Accepts("h2") {
		t.Error("full turn should reject hits")
	}

	var zero Turn
	if zero.Accepts("h1") {
		t.Error("unstarted game should reject hits")
	}
}

func TestTurnAdvanceWrapsToStarter(t *testing.T) {
	turn := NewTurn(2, 1)
	turn.DartsThrownThisTurn = 3

	if turn.Advance(3) {
		t.Error("1 -> 2 should not start a new round")
	}
	if turn.DartsThrownThisTurn != 0 {
		t.Error("advance should reset darts")
	}
	if turn.Advance(3) {
		t.Error("2 -> 0 should not start a new round when starter is 1")
	}
	if !turn.Advance(3) {
		t.Error("0 -> 1 should start a new round")
	}
	if turn.CurrentRound != 2 {
		t.Errorf("expected round 2, got %d", turn.CurrentRound)
	}
	if turn.RoundLimitReached() {
		t.Error("round 2 of 2 is not past the limit")
	}
	turn.CurrentRound = 3
	if !turn.RoundLimitReached() {
		t.Error("round 3 of 2 is past the limit")
	}
}
