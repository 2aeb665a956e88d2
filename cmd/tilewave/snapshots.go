package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilewave/store"
)

func newShowCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Print the per-cell patterns of a stored result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				snap *store.Snapshot
				err  error
			)
			switch {
			case file != "":
				snap, err = store.ReadFile(file)
			case len(args) == 1:
				snap, err = a.getSnapshot(args[0])
			default:
				return fmt.Errorf("show: need an id or --file")
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id:       %s\n", snap.ID)
			fmt.Fprintf(out, "created:  %s\n", snap.CreatedAt.Format(time.RFC3339))
			printSummary(out, snap.Topology, snap.Seed, snap.Attempts, len(snap.Patterns), snap.LabelCounts())

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CELL\tA\tB\tC\tPATTERN")
			for i, p := range snap.Patterns {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i, p.A, p.B, p.C, p.Name)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "read an exported .gob.zst file instead of the store")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			all, err := st.List()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tTOPOLOGY\tSEED\tCELLS\tATTEMPTS")
			for _, s := range all {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\n",
					s.ID, s.CreatedAt.Format(time.RFC3339), s.Topology, s.Seed, len(s.Patterns), s.Attempts)
			}
			return tw.Flush()
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a stored result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("delete: %w", err)
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted: %s\n", id)
			return nil
		},
	}
}

func (a *app) getSnapshot(raw string) (*store.Snapshot, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("show: %w", err)
	}
	st, err := a.openStore()
	if err != nil {
		return nil, err
	}
	defer st.Close()

	return st.Get(id)
}
