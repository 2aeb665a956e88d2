package tile

import (
	"fmt"
	"math"
)

// Pattern is an immutable candidate assignment for one triangular cell:
// the labels of corners A, B, C and a relative frequency.
type Pattern struct {
	Name   string `yaml:"name,omitempty"`
	A      Label  `yaml:"a"`
	B      Label  `yaml:"b"`
	C      Label  `yaml:"c"`
	Weight int    `yaml:"weight"`
}

// IsCompatible reports whether p may sit next to other, given the side of p
// that touches other. Pure; evaluated for every entry pair during propagation.
func (p Pattern) IsCompatible(other Pattern, side Side) bool {
	switch side {
	case AB:
		return p.A == other.C && p.B == other.B
	case BC:
		return p.B == other.B && p.C == other.A
	case CA:
		return p.C == other.A && p.A == other.C
	default:
		return false
	}
}

// WeightLogWeight returns w·log2(w), the per-pattern entropy term.
func (p Pattern) WeightLogWeight() float64 {
	w := float64(p.Weight)
	return w * math.Log2(w)
}

// Labels returns the corner labels in A, B, C order.
func (p Pattern) Labels() [3]Label {
	return [3]Label{p.A, p.B, p.C}
}

// String renders "name[A B C]×w".
func (p Pattern) String() string {
	return fmt.Sprintf("%s[%s %s %s]x%d", p.Name, p.A, p.B, p.C, p.Weight)
}

func (p Pattern) validate() error {
	if p.Weight < 1 {
		return fmt.Errorf("%w: %q has weight %d", ErrBadWeight, p.Name, p.Weight)
	}
	for _, l := range p.Labels() {
		if !l.Valid() {
			return fmt.Errorf("%w: %q uses %d", ErrUnknownLabel, p.Name, uint8(l))
		}
	}
	return nil
}
