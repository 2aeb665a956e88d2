package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilewave/generator"
	"github.com/katalvlaran/tilewave/mesh"
	"github.com/katalvlaran/tilewave/store"
	"github.com/katalvlaran/tilewave/tile"
)

type generateFlags struct {
	seed     int64
	topology string
	catalog  string
	attempts int
	save     bool
	export   string
	trace    bool
	metrics  bool
}

func newGenerateCmd(a *app) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Solve a mesh and print a summary",
		Long:  `Runs wave function collapse over the configured topology, restarting on contradiction, and prints attempts and label counts. With --save the result is written to the store.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.generate(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.Int64Var(&f.seed, "seed", 0, "RNG seed (overrides config)")
	fl.StringVar(&f.topology, "topology", "", "pentakis, bipyramid-N or a topology YAML file (overrides config)")
	fl.StringVar(&f.catalog, "catalog", "", "catalog: default, patchwork or a YAML file (overrides config)")
	fl.IntVar(&f.attempts, "attempts", 0, "maximum attempts (overrides config)")
	fl.BoolVar(&f.save, "save", false, "store the result")
	fl.StringVar(&f.export, "export", "", "also write the result to this .gob.zst file")
	fl.BoolVar(&f.trace, "trace", false, "print OpenTelemetry spans to stderr")
	fl.BoolVar(&f.metrics, "metrics", false, "print Prometheus metrics to stderr after the run")
	return cmd
}

func (a *app) generate(cmd *cobra.Command, f *generateFlags) error {
	cfg := a.cfg
	fl := cmd.Flags()
	if fl.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fl.Changed("topology") {
		cfg.Topology = f.topology
	}
	if fl.Changed("catalog") {
		cfg.Catalog = f.catalog
	}
	if fl.Changed("attempts") {
		cfg.MaxAttempts = f.attempts
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	topo, err := mesh.ByName(cfg.Topology)
	if err != nil {
		return err
	}
	cat, err := tile.CatalogByName(cfg.Catalog)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if f.trace {
		shutdown, err := startTracing(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer func() { _ = shutdown(ctx) }()
	}

	gen, err := generator.New(topo, cat, cfg.GeneratorOptions(a.logger)...)
	if err != nil {
		return err
	}
	res, err := gen.Run(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printSummary(out, topo.Name, res.Seed, res.Attempts, len(res.Patterns), res.LabelCounts())

	snap := &store.Snapshot{
		Seed:     res.Seed,
		Topology: topo.Name,
		Patterns: res.Tiles(),
		Attempts: res.Attempts,
	}
	if f.save {
		st, err := a.openStore()
		if err != nil {
			return err
		}
		id, err := st.Put(snap)
		if cerr := st.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "saved:    %s\n", id)
	}
	if f.export != "" {
		if err := store.WriteFile(f.export, snap); err != nil {
			return err
		}
		fmt.Fprintf(out, "exported: %s\n", f.export)
	}
	if f.metrics {
		return writeMetrics(cmd.ErrOrStderr())
	}
	return nil
}

func printSummary(w io.Writer, topology string, seed int64, attempts, cells int, counts map[tile.Label]int) {
	fmt.Fprintf(w, "topology: %s\n", topology)
	fmt.Fprintf(w, "seed:     %d\n", seed)
	fmt.Fprintf(w, "cells:    %d\n", cells)
	fmt.Fprintf(w, "attempts: %d\n", attempts)
	for _, l := range tile.Labels() {
		fmt.Fprintf(w, "%-9s %d\n", l.String()+":", counts[l])
	}
}
