package life

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRule reports a rule string that is not in B/S notation.
var ErrInvalidRule = errors.New("life: invalid rule")

// Rule is an outer-totalistic Life-like rule keyed on the number of live
// neighbours (0-8). Any nonzero state counts as live.
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

var (
	// Conway is the classic B3/S23 rule.
	Conway = MustParseRule("B3/S23")
	// HighLife adds birth on six neighbours.
	HighLife = MustParseRule("B36/S23")
	// Seeds has births on two neighbours and no survivors.
	Seeds = MustParseRule("B2/S")
)

// ParseRule reads a rule in B/S notation such as "B3/S23". The two halves
// may appear in either order and letters are case-insensitive.
func ParseRule(s string) (Rule, error) {
	var r Rule
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("parse %q: %w", s, ErrInvalidRule)
	}
	var seenB, seenS bool
	for _, part := range parts {
		if part == "" {
			return Rule{}, fmt.Errorf("parse %q: %w", s, ErrInvalidRule)
		}
		var dst *[9]bool
		switch part[0] {
		case 'B', 'b':
			if seenB {
				return Rule{}, fmt.Errorf("parse %q: duplicate birth half: %w", s, ErrInvalidRule)
			}
			seenB = true
			dst = &r.Birth
		case 'S', 's':
			if seenS {
				return Rule{}, fmt.Errorf("parse %q: duplicate survival half: %w", s, ErrInvalidRule)
			}
			seenS = true
			dst = &r.Survive
		default:
			return Rule{}, fmt.Errorf("parse %q: %w", s, ErrInvalidRule)
		}
		for _, c := range part[1:] {
			if c < '0' || c > '8' {
				return Rule{}, fmt.Errorf("parse %q: neighbour count %q: %w", s, c, ErrInvalidRule)
			}
			dst[c-'0'] = true
		}
	}
	return r, nil
}

// MustParseRule is ParseRule that panics on error. It is meant for presets.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

// String returns the canonical B/S form of the rule.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n, ok := range r.Birth {
		if ok {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n, ok := range r.Survive {
		if ok {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

// Next computes the state following v given its eight neighbours.
// Survivors and births become Alive; every other cell becomes Dead.
func (r Rule) Next(v int, neighbours [8]int) int {
	live := 0
	for _, n := range neighbours {
		if n != Dead {
			live++
		}
	}
	if v != Dead {
		if r.Survive[live] {
			return Alive
		}
		return Dead
	}
	if r.Birth[live] {
		return Alive
	}
	return Dead
}
