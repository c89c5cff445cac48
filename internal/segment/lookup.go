package segment

import (
	"fmt"
	"strconv"
	"strings"
)

// table maps every segment identity to its canonical hit.
var table = buildTable()

func buildTable() map[string]Hit {
	t := make(map[string]Hit, 64)
	for _, h := range All() {
		t[h.ID] = h
	}
	t[MissID] = Miss()
	t[ResetID] = Reset()
	return t
}

// All returns every scoring segment: singles, doubles and trebles of 1-20
// followed by outer bull and bull.
func All() []Hit {
	hits := make([]Hit, 0, 62)
	for _, ring := range []Ring{RingSingle, RingDouble, RingTriple} {
		for section := 1; section <= 20; section++ {
			h, _ := New(ring, section)
			hits = append(hits, h)
		}
	}
	sb, _ := New(RingSingle, SectionBull)
	db, _ := New(RingDouble, SectionBull)
	return append(hits, sb, db)
}

// Lookup returns the canonical hit for a segment identity such as "T20" or "SB".
func Lookup(id string) (Hit, bool) {
	h, ok := table[id]
	return h, ok
}

// Parse reads a board-style code into a hit.
// Accepted forms: "T20", "d16", "s5", "20" (single), "25"/"SB"/"OB" (outer bull),
// "50"/"DB"/"BULL" (bull), "M"/"MISS"/"0" and "RESET".
func Parse(code string) (Hit, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if c == "" {
		return Hit{}, fmt.Errorf("segment: empty code")
	}
	if h, ok := Lookup(c); ok {
		return h, nil
	}

	switch c {
	case "M", "MISS", "0", "X":
		return Miss(), nil
	case "R", "RESET":
		return Reset(), nil
	case "25", "SB", "OB", "S25":
		return New(RingSingle, SectionBull)
	case "50", "DB", "BULL", "D25":
		return New(RingDouble, SectionBull)
	}

	ring := RingSingle
	switch c[0] {
	case 'S':
		c = c[1:]
	case 'D':
		ring = RingDouble
		c = c[1:]
	case 'T':
		ring = RingTriple
		c = c[1:]
	}

	section, err := strconv.Atoi(c)
	if err != nil {
		return Hit{}, fmt.Errorf("segment: cannot parse %q", code)
	}
	return New(ring, section)
}
