package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilewave/mesh"
	"github.com/katalvlaran/tilewave/tile"
	"github.com/katalvlaran/tilewave/wfc"
)

func newCatalogCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the pattern catalog and the entropy of a fresh cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				name = a.cfg.Catalog
			}
			cat, err := tile.CatalogByName(name)
			if err != nil {
				return err
			}

			// Entropy of an untouched cell, read from a throwaway grid.
			topo, err := mesh.Bipyramid(mesh.MinBipyramid)
			if err != nil {
				return err
			}
			g, err := wfc.NewGrid(topo, cat, nil, wfc.WithNoise(0))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tNAME\tA\tB\tC\tWEIGHT")
			for i, p := range cat.Patterns() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\n", i, p.Name, p.A, p.B, p.C, p.Weight)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "patterns: %d\n", cat.Len())
			fmt.Fprintf(out, "weight:   %g\n", cat.SumWeights())
			fmt.Fprintf(out, "entropy:  %.4f bits\n", g.Cell(0).Entropy())
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "catalog", "", "catalog: default, patchwork or a YAML file (overrides config)")
	return cmd
}
