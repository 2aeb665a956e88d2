package wfc_test

import (
	"fmt"

	"github.com/katalvlaran/tilewave/mesh"
	"github.com/katalvlaran/tilewave/tile"
	"github.com/katalvlaran/tilewave/wfc"
)

// ExampleGrid_PropagateFromCollapse collapses one cell of a 6-cell bipyramid
// to "sea" and lets propagation rule "land" out everywhere else.
func ExampleGrid_PropagateFromCollapse() {
	cat := tile.MustCatalog([]tile.Pattern{
		{Name: "sea", A: tile.Sea, B: tile.Sea, C: tile.Sea, Weight: 3},
		{Name: "land", A: tile.Ground, B: tile.Ground, C: tile.Ground, Weight: 1},
	})
	topo, err := mesh.Bipyramid(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g, err := wfc.NewGrid(topo, cat, nil, wfc.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Pin cell 0 to "sea" before collapsing it.
	g.Cell(0).RemoveAdmissible(1)
	_ = g.Collapse(0)
	_ = g.PropagateFromCollapse(0)

	counts := make([]int, g.Len())
	for id := range counts {
		counts[id] = g.Cell(id).AdmissibleCount()
	}
	p, _ := g.Cell(0).Pattern()
	fmt.Println(counts)
	fmt.Println(p)
	// Output:
	// [1 1 1 1 1 1]
	// sea[sea sea sea]x3
}

// ExampleCell_Entropy shows the Shannon entropy of two equally likely
// patterns, without jitter.
func ExampleCell_Entropy() {
	cat := tile.MustCatalog([]tile.Pattern{
		{Name: "sea", A: tile.Sea, B: tile.Sea, C: tile.Sea, Weight: 1},
		{Name: "land", A: tile.Ground, B: tile.Ground, C: tile.Ground, Weight: 1},
	})
	topo, _ := mesh.Bipyramid(3)
	g, _ := wfc.NewGrid(topo, cat, nil, wfc.WithNoise(0))

	fmt.Printf("%.3f\n", g.Cell(0).Entropy())
	g.Cell(0).RemoveAdmissible(1)
	fmt.Printf("%.3f\n", g.Cell(0).Entropy())
	// Output:
	// 1.000
	// 0.000
}
