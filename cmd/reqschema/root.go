package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/deppfellow/reqschema/internal/config"
	"github.com/deppfellow/reqschema/internal/logger"
	"github.com/deppfellow/reqschema/internal/schemas"
)

// app carries what every subcommand needs once the root has run.
type app struct {
	cfg       *config.Config
	logger    *zerolog.Logger
	registry  *schemas.Registry
	schemaDir string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "reqschema",
		Short:         "Validate request payloads against the API schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.schemaDir, "schema-dir", "", "directory of extra YAML schema definitions (overrides REQSCHEMA_SCHEMAS_DIR)")

	root.AddCommand(
		newValidateCmd(a),
		newSchemasCmd(a),
		newServeCmd(a),
		newUsernameCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.schemaDir != "" {
		cfg.Schemas.Dir = a.schemaDir
	}
	a.cfg = cfg
	a.logger = logger.NewWithWriter(cfg, cmd.ErrOrStderr())

	registry, err := schemas.New()
	if err != nil {
		return err
	}
	if dir := cfg.Schemas.Dir; dir != "" {
		if err := registry.LoadFS(os.DirFS(dir), "."); err != nil {
			return err
		}
		a.logger.Debug().Str("dir", dir).Msg("loaded extra schema definitions")
	}
	a.registry = registry

	return nil
}
