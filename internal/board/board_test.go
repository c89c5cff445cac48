package board

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-darts/internal/segment"
)

func TestManualPushAndRedeliver(t *testing.T) {
	m := NewManual(4)
	hit, _ := segment.Parse("T20")

	ev, ok := m.Push(hit)
	if !ok || ev.ID == "" {
		t.Fatalf("Push failed: ok=%v id=%q", ok, ev.ID)
	}
	if !m.Redeliver(ev) {
		t.Fatal("Redeliver failed")
	}
	m.Close()

	var got []Event
	for e := range m.Events() {
		got = append(got, e)
	}
	if len(got) != 2 || got[0].ID != got[1].ID || got[1].Hit.ID != "T20" {
		t.Errorf("expected the same event twice, got %+v", got)
	}
}

func TestManualUniqueIDs(t *testing.T) {
	m := NewManual(0)
	a := m.NewEvent(segment.Miss())
	b := m.NewEvent(segment.Miss())
	if a.ID == b.ID {
		t.Error("each hit needs its own correlation id")
	}
}

func TestManualClosed(t *testing.T) {
	m := NewManual(1)
	m.Close()
	m.Close()
	if _, ok := m.Push(segment.Miss()); ok {
		t.Error("push after close must fail")
	}
}

const sample = `
players: [Ann, Bob]
throws:
  - T20
  - {hit: s19, id: board-2}
  - M
  - R
  - bull
`

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(sample))
	if err != nil {
		t.Fatalf("ParseScript failed: %v", err)
	}
	if strings.Join(s.Players, ",") != "Ann,Bob" {
		t.Errorf("players = %v", s.Players)
	}

	var events []Event
	for e := range s.Events() {
		events = append(events, e)
	}
	if len(events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(events))
	}

	tests := []struct {
		id  string
		hit string
	}{
		{"script-1", "T20"},
		{"board-2", "S19"},
		{"script-3", segment.MissID},
		{"script-4", segment.ResetID},
		{"script-5", "DB"},
	}
	for i, tt := range tests {
		if events[i].ID != tt.id || events[i].Hit.ID != tt.hit {
			t.Errorf("event %d = %s/%s, want %s/%s", i, events[i].ID, events[i].Hit.ID, tt.id, tt.hit)
		}
	}
	if !events[1].At.After(events[0].At) {
		t.Error("timestamps should increase")
	}
}

func TestParseScriptRejectsUnknownCode(t *testing.T) {
	if _, err := ParseScript([]byte("throws: [T20, Q7]")); err == nil {
		t.Error("expected an error for Q7")
	}
}

func TestLoadScriptMissingFile(t *testing.T) {
	if _, err := LoadScript(t.TempDir() + "/nope.yaml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
