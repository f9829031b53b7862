package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"datamapper/internal/config"
	"datamapper/internal/datatype"
	"datamapper/internal/logging"
)

// app carries the state shared by all subcommands.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "datamapper",
		Short: "Validate and inspect data mappings between message schemas",
		Long: `datamapper works on mapping descriptions (YAML or JSON) between a
source and a target message schema.

Commands:
  datamapper validate mapping.yaml     # Check a mapping description
  datamapper template type.yaml        # Example XML document for a type
  datamapper elements type.yaml        # List the elements of a type
  datamapper resolve type.yaml         # Resolve a reference type
  datamapper compile 'body.a + 1'      # Compile a mapping expression`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadOrDefault(a.cfgFile)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Logging, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.logger = logger

			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file path")

	root.AddCommand(
		newValidateCmd(a),
		newTemplateCmd(a),
		newElementsCmd(a),
		newResolveCmd(a),
		newCompileCmd(a),
	)

	return root
}

// loadType reads a data type from a YAML or JSON file.
func loadType(path string) (datatype.DataType, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read type file %s: %w", path, err)
	}

	return datatype.ParseType(data)
}
