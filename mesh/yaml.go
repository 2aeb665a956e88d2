package mesh

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseTopology decodes a YAML topology and validates it:
//
//	name: triangle-pair
//	cells:
//	  - [1, 1, 1]   # AB, BC, CA neighbours of cell 0
//	  - ...
func ParseTopology(data []byte) (*Topology, error) {
	var t Topology
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("mesh: decode topology: %w", err)
	}
	if err := Validate(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadTopology reads and validates a YAML topology file.
func LoadTopology(path string) (*Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: read %s: %w", path, err)
	}
	return ParseTopology(data)
}

// MarshalTopology encodes t in the format ParseTopology reads.
func MarshalTopology(t *Topology) ([]byte, error) {
	return yaml.Marshal(t)
}

// Names lists the built-in topology names ByName understands, with the
// bipyramid shown for its smallest size.
func Names() []string {
	return []string{NamePentakis, fmt.Sprintf("%s-%d", NameBipyramid, MinBipyramid)}
}

// ByName resolves a built-in name ("pentakis", "bipyramid-N") or, failing
// that, a path to a YAML topology file.
func ByName(name string) (*Topology, error) {
	switch {
	case name == "" || name == NamePentakis:
		return Pentakis(), nil
	case strings.HasPrefix(name, NameBipyramid+"-"):
		n, err := strconv.Atoi(strings.TrimPrefix(name, NameBipyramid+"-"))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, name)
		}
		return Bipyramid(n)
	}

	if _, err := os.Stat(name); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, name)
	}
	return LoadTopology(name)
}
