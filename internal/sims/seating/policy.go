package seating

import (
	"fmt"
	"strings"
)

// Policy selects how neighbors are detected.
type Policy uint8

const (
	// Adjacent looks exactly one step in each of the eight directions.
	Adjacent Policy = iota
	// LineOfSight walks each direction over floor until it meets a seat.
	LineOfSight
)

// ParsePolicy accepts "adjacent"/"adj" and "line-of-sight"/"los".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "adjacent", "adj":
		return Adjacent, nil
	case "line-of-sight", "lineofsight", "los":
		return LineOfSight, nil
	}
	return Adjacent, fmt.Errorf("unknown policy %q", s)
}

// Threshold is the occupied-neighbor count at which an occupant leaves.
func (p Policy) Threshold() int {
	if p == LineOfSight {
		return 5
	}
	return 4
}

func (p Policy) String() string {
	if p == LineOfSight {
		return "line-of-sight"
	}
	return "adjacent"
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
