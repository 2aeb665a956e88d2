package wfc_test

import (
	"testing"

	"github.com/katalvlaran/tilewave/mesh"
	"github.com/katalvlaran/tilewave/tile"
	"github.com/katalvlaran/tilewave/wfc"
)

// BenchmarkPropagate_Pentakis measures one collapse plus full propagation on
// a fresh 60-cell grid with the 27-pattern catalog.
func BenchmarkPropagate_Pentakis(b *testing.B) {
	g, err := wfc.NewGrid(mesh.Pentakis(), tile.DefaultCatalog(), nil, wfc.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Reset()
		_ = g.Collapse(i % g.Len())
		_ = g.PropagateFromCollapse(i % g.Len())
	}
}

// BenchmarkNewGrid_Pentakis measures arena construction.
func BenchmarkNewGrid_Pentakis(b *testing.B) {
	topo := mesh.Pentakis()
	cat := tile.DefaultCatalog()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = wfc.NewGrid(topo, cat, nil)
	}
}
