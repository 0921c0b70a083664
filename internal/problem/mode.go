// Package problem generates arithmetic, counting and sequence problems for a
// mode and level. Generation is pure given a random source.
package problem

import (
	"fmt"
	"strings"
)

// Mode is the closed set of problem kinds.
type Mode int

const (
	Addition Mode = iota
	Subtraction
	Mixed // resolves to Addition or Subtraction per problem
	Counting
	Comparing
	Grouping
	Sharing
	Ascending
	Descending
	EvenFilter
	OddFilter
)

var modeNames = map[Mode]string{
	Addition:    "addition",
	Subtraction: "subtraction",
	Mixed:       "mixed",
	Counting:    "counting",
	Comparing:   "comparing",
	Grouping:    "grouping",
	Sharing:     "sharing",
	Ascending:   "ascending",
	Descending:  "descending",
	EvenFilter:  "even",
	OddFilter:   "odd",
}

// AllModes lists every mode in declaration order.
func AllModes() []Mode {
	return []Mode{
		Addition, Subtraction, Mixed, Counting, Comparing, Grouping,
		Sharing, Ascending, Descending, EvenFilter, OddFilter,
	}
}

// String returns the mode's CLI name.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode converts a CLI name into a Mode.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("problem: unknown mode %q", s)
}

// IsSequence reports whether the mode is a bubble-popping sequence round.
func (m Mode) IsSequence() bool {
	switch m {
	case Ascending, Descending, EvenFilter, OddFilter:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether answers in this mode are integers.
func (m Mode) IsNumeric() bool {
	switch m {
	case Addition, Subtraction, Mixed, Counting, Sharing:
		return true
	default:
		return false
	}
}

// Label returns a short human title.
func (m Mode) Label() string {
	switch m {
	case Addition:
		return "Addition"
	case Subtraction:
		return "Subtraction"
	case Mixed:
		return "Mixed"
	case Counting:
		return "Count the Animals"
	case Comparing:
		return "More or Fewer"
	case Grouping:
		return "Odd or Even"
	case Sharing:
		return "Fair Sharing"
	case Ascending:
		return "Smallest to Largest"
	case Descending:
		return "Largest to Smallest"
	case EvenFilter:
		return "Even Numbers"
	case OddFilter:
		return "Odd Numbers"
	default:
		return m.String()
	}
}
