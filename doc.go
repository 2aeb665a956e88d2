// Package tilewave assigns corner-labelled tiles to the faces of a closed
// triangle mesh with wave function collapse.
//
// Every face holds one tile.Pattern: labels for its corners A, B, C and a
// weight. Two faces sharing an edge must agree on the labels of that edge's
// two corners. The solver repeatedly fixes the least-uncertain face and
// propagates the consequence to its neighbours until every face is decided.
//
// Packages:
//
//	tile/      labels, sides, patterns, the compatibility rule and catalogs
//	wfc/       cells, the grid arena, collapse and constraint propagation
//	mesh/      topologies: pentakis dodecahedron, bipyramids, YAML files
//	generator/ lowest-entropy driver with restarts, logging, metrics, tracing
//	store/     BadgerDB snapshot store and .gob.zst exports
//	config/    YAML run configuration
//	cmd/tilewave  the command-line front end
//
// Quick start:
//
//	gen, err := generator.New(mesh.Pentakis(), tile.DefaultCatalog(), generator.WithSeed(42))
//	if err != nil { ... }
//	res, err := gen.Run(ctx)
//	if err != nil { ... }
//	for cell, p := range res.Tiles() { ... }
package tilewave
