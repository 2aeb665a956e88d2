package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilewave/config"
	"github.com/katalvlaran/tilewave/store"
)

// app carries state shared by all subcommands once the root pre-run has
// loaded the configuration.
type app struct {
	cfgPath  string
	logLevel string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "tilewave",
		Short:         "Wave function collapse over triangle meshes",
		Long:          `tilewave assigns corner-labelled tiles to every face of a closed triangle mesh (by default the 60-face pentakis dodecahedron) so that neighbouring tiles agree along shared edges.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "YAML config file (defaults apply when empty)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	root.AddCommand(
		newGenerateCmd(a),
		newShowCmd(a),
		newListCmd(a),
		newDeleteCmd(a),
		newCatalogCmd(a),
	)
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.cfgPath != "" {
		var err error
		if cfg, err = config.Load(a.cfgPath); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := cfg.Log.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) openStore() (*store.Store, error) {
	return store.Open(a.cfg.StoreConfig(a.logger))
}
