package tile

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for catalog construction and parsing.
var (
	// ErrEmptyCatalog indicates a catalog with no patterns.
	ErrEmptyCatalog = errors.New("tile: catalog has no patterns")

	// ErrBadWeight indicates a pattern weight below 1.
	ErrBadWeight = errors.New("tile: pattern weight must be positive")

	// ErrUnknownLabel indicates a label outside Ground/Sea/City.
	ErrUnknownLabel = errors.New("tile: unknown label")

	// ErrUnknownSide indicates a side outside AB/BC/CA.
	ErrUnknownSide = errors.New("tile: unknown side")

	// ErrUnknownCatalog indicates a name that is neither built in nor a file.
	ErrUnknownCatalog = errors.New("tile: unknown catalog")
)

// Label tags a triangle corner with a biome.
type Label uint8

// Label values (stable ordering; part of the catalog file format by name only).
const (
	Ground Label = iota
	Sea
	City

	numLabels = 3
)

// Labels returns every label in declaration order.
func Labels() []Label {
	return []Label{Ground, Sea, City}
}

// String returns the lower-case label name used in catalog files.
func (l Label) String() string {
	switch l {
	case Ground:
		return "ground"
	case Sea:
		return "sea"
	case City:
		return "city"
	default:
		return fmt.Sprintf("label(%d)", uint8(l))
	}
}

// Valid reports whether l is one of the declared labels.
func (l Label) Valid() bool {
	return l < numLabels
}

// ParseLabel resolves a case-insensitive label name.
func ParseLabel(s string) (Label, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ground":
		return Ground, nil
	case "sea":
		return Sea, nil
	case "city":
		return City, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, s)
}

// MarshalYAML renders the label by name.
func (l Label) MarshalYAML() (interface{}, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLabel, uint8(l))
	}
	return l.String(), nil
}

// UnmarshalYAML parses a label by name.
func (l *Label) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := ParseLabel(s)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Side names one edge of a triangle. Values index [3]-arrays directly.
type Side uint8

// Side values in canonical order.
const (
	AB Side = iota
	BC
	CA

	// NumSides is the fixed number of sides (and neighbours) per cell.
	NumSides = 3
)

// Sides returns AB, BC, CA.
func Sides() [NumSides]Side {
	return [NumSides]Side{AB, BC, CA}
}

// String returns "AB", "BC" or "CA".
func (s Side) String() string {
	switch s {
	case AB:
		return "AB"
	case BC:
		return "BC"
	case CA:
		return "CA"
	default:
		return fmt.Sprintf("side(%d)", uint8(s))
	}
}

// Valid reports whether s is AB, BC or CA.
func (s Side) Valid() bool {
	return s < NumSides
}

// Opposite returns the side of the neighbouring triangle that carries the
// same edge: AB↔BC (legs shared inside an apex fan) and CA↔CA (bases shared
// between two fans).
func (s Side) Opposite() Side {
	switch s {
	case AB:
		return BC
	case BC:
		return AB
	default:
		return CA
	}
}
