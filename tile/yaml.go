package tile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of a catalog.
type catalogFile struct {
	Patterns []Pattern `yaml:"patterns"`
}

// ParseCatalog decodes a YAML catalog document and validates it.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("tile: decode catalog: %w", err)
	}
	return NewCatalog(f.Patterns)
}

// LoadCatalog reads and parses the catalog file at path.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tile: read catalog %s: %w", path, err)
	}
	c, err := ParseCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// MarshalCatalog renders c in the catalog file format.
func MarshalCatalog(c *Catalog) ([]byte, error) {
	return yaml.Marshal(catalogFile{Patterns: c.Patterns()})
}

// CatalogNames lists the built-in catalog names CatalogByName understands.
func CatalogNames() []string {
	return []string{NameDefault, NamePatchwork}
}

// CatalogByName resolves a built-in name ("default", "patchwork") or,
// failing that, a path to a YAML catalog file. The empty name is the
// default catalog.
func CatalogByName(name string) (*Catalog, error) {
	switch name {
	case "", NameDefault:
		return DefaultCatalog(), nil
	case NamePatchwork:
		return PatchworkCatalog(), nil
	}

	if _, err := os.Stat(name); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCatalog, name)
	}
	return LoadCatalog(name)
}
