// Package segment describes where a dart landed on the board.
// A Hit is pure data: the board source creates one per physical event and
// the scoring engines only ever read it.
package segment

import (
	"fmt"
	"strconv"
	"strings"
)

// Ring identifies the scoring ring of a segment.
type Ring int

const (
	RingOther Ring = iota // Miss, reset button or anything off the scoring area
	RingSingle
	RingDouble
	RingTriple
)

// String returns a human-readable name for the ring.
func (r Ring) String() string {
	switch r {
	case RingSingle:
		return "Single"
	case RingDouble:
		return "Double"
	case RingTriple:
		return "Triple"
	default:
		return "Other"
	}
}

// Multiplier returns how many times the section value a ring counts.
// RingOther never scores.
func (r Ring) Multiplier() int {
	switch r {
	case RingSingle:
		return 1
	case RingDouble:
		return 2
	case RingTriple:
		return 3
	default:
		return 0
	}
}

// Section values with special meaning.
const (
	SectionOther = 0  // Miss or reset
	SectionBull  = 25 // Outer bull (single) and bull (double)
)

// Sentinel identities.
const (
	MissID  = "MISS"
	ResetID = "RESET"
)

// Hit is a single dart landing as reported by the board.
type Hit struct {
	ID      string // Segment identity, e.g. "T20", "SB", "MISS"
	Ring    Ring
	Section int // 1..20, 25 for bull, 0 for other
	Value   int // Points this segment is worth on its own
	Short   string
	Long    string
}

// IsReset reports whether this is the board's reset/next-player button.
func (h Hit) IsReset() bool {
	return h.ID == ResetID
}

// IsMiss reports whether the dart landed outside the scoring area.
func (h Hit) IsMiss() bool {
	return h.ID == MissID
}

// IsBull reports whether the hit is on the outer bull or bull.
func (h Hit) IsBull() bool {
	return h.Section == SectionBull && (h.Ring == RingSingle || h.Ring == RingDouble)
}

// Scores reports whether the hit landed on a scoring segment.
func (h Hit) Scores() bool {
	return h.Ring != RingOther && h.Value > 0
}

// New builds the canonical hit for a ring and section.
func New(ring Ring, section int) (Hit, error) {
	switch {
	case ring == RingOther:
		return Miss(), nil
	case section == SectionBull:
		switch ring {
		case RingSingle:
			return Hit{ID: "SB", Ring: RingSingle, Section: SectionBull, Value: 25, Short: "25", Long: "Outer Bull"}, nil
		case RingDouble:
			return Hit{ID: "DB", Ring: RingDouble, Section: SectionBull, Value: 50, Short: "BULL", Long: "Bull"}, nil
		default:
			return Hit{}, fmt.Errorf("segment: bull has no %s ring", strings.ToLower(ring.String()))
		}
	case section < 1 || section > 20:
		return Hit{}, fmt.Errorf("segment: invalid section %d", section)
	}

	prefix := ringPrefix(ring)
	return Hit{
		ID:      prefix + strconv.Itoa(section),
		Ring:    ring,
		Section: section,
		Value:   section * ring.Multiplier(),
		Short:   shortLabel(ring, section),
		Long:    ring.String() + " " + strconv.Itoa(section),
	}, nil
}

// Miss returns the hit reported for a dart outside the scoring area.
func Miss() Hit {
	return Hit{ID: MissID, Ring: RingOther, Section: SectionOther, Short: "-", Long: "Miss"}
}

// Reset returns the sentinel hit for the board's reset button.
func Reset() Hit {
	return Hit{ID: ResetID, Ring: RingOther, Section: SectionOther, Short: "RST", Long: "Reset"}
}

func ringPrefix(r Ring) string {
	switch r {
	case RingDouble:
		return "D"
	case RingTriple:
		return "T"
	default:
		return "S"
	}
}

func shortLabel(r Ring, section int) string {
	if r == RingSingle {
		return strconv.Itoa(section)
	}
	return ringPrefix(r) + strconv.Itoa(section)
}
