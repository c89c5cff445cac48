package board

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-darts/internal/segment"
)

// Throw is one scripted dart. In YAML it is either a bare segment code
// ("T20") or a mapping with an explicit correlation id.
type Throw struct {
	Hit string `yaml:"hit"`
	ID  string `yaml:"id,omitempty"`
}

// UnmarshalYAML accepts both the scalar and the mapping form.
func (t *Throw) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		t.Hit = n.Value
		return nil
	}
	type plain Throw
	return n.Decode((*plain)(t))
}

// Script is a recorded sequence of throws. A reset code ("R") ends the
// current player's turn.
//
//	players: [Ann, Bob]
//	throws:
//	  - T20
//	  - {hit: S20, id: board-17}
//	  - R
type Script struct {
	Players []string `yaml:"players"`
	Throws  []Throw  `yaml:"throws"`
}

// ParseScript decodes a script and checks that every code is a segment.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("board: parse script: %w", err)
	}
	for i, t := range s.Throws {
		if _, err := segment.Parse(t.Hit); err != nil {
			return nil, fmt.Errorf("board: throw %d: %w", i+1, err)
		}
	}
	return &s, nil
}

// LoadScript reads a script from path.
func LoadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("board: open script: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("board: read script: %w", err)
	}
	return ParseScript(data)
}

// Events implements Source. Throws without an id get a positional one so
// a replay is deterministic. The returned channel is already filled and
// closed.
func (s *Script) Events() <-chan Event {
	ch := make(chan Event, len(s.Throws))
	at := time.Unix(0, 0).UTC()
	for i, t := range s.Throws {
		hit, err := segment.Parse(t.Hit)
		if err != nil {
			continue
		}
		id := t.ID
		if id == "" {
			id = fmt.Sprintf("script-%d", i+1)
		}
		ch <- Event{ID: id, Hit: hit, At: at.Add(time.Duration(i) * time.Second)}
	}
	close(ch)
	return ch
}
