// Package core holds the data shared by every scoring mode: players, the
// per-turn bookkeeping header and the sealed State variant the engines
// implement.
package core

import (
	"fmt"
	"strings"
)

// PlayerID is the identity key for all per-player data.
type PlayerID string

// Player is created at setup and never changes afterwards.
type Player struct {
	ID   PlayerID
	Name string
}

// MinPlayers is the smallest field a game can be set up with.
const MinPlayers = 2

// NewPlayers builds players with stable IDs p1..pN from display names.
// Blank names fall back to "Player N".
func NewPlayers(names ...string) []Player {
	players := make([]Player, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		players[i] = Player{
			ID:   PlayerID(fmt.Sprintf("p%d", i+1)),
			Name: name,
		}
	}
	return players
}

// ValidatePlayers checks the roster a game is created from.
func ValidatePlayers(players []Player) error {
	if len(players) < MinPlayers {
		return &ConfigurationError{
			Field:  "players",
			Reason: fmt.Sprintf("need at least %d players, got %d", MinPlayers, len(players)),
		}
	}
	seen := make(map[PlayerID]bool, len(players))
	for _, p := range players {
		if p.ID == "" {
			return &ConfigurationError{Field: "players", Reason: "player with empty id"}
		}
		if seen[p.ID] {
			return &ConfigurationError{Field: "players", Reason: fmt.Sprintf("duplicate player id %q", p.ID)}
		}
		seen[p.ID] = true
	}
	return nil
}
