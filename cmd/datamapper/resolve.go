package main

import (
	"github.com/spf13/cobra"

	"datamapper/internal/datatype"
	"datamapper/internal/resolve"
)

func newResolveCmd(a *app) *cobra.Command {
	var definitionID string

	cmd := &cobra.Command{
		Use:   "resolve <type-file>",
		Short: "Resolve a data type through its reference definitions",
		Long: `Resolve a data type through its reference definitions and print the
resulting type.

With --definition the type's local definitions are used to resolve a
reference to the given definition id instead of the type itself.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadType(args[0])
			if err != nil {
				return err
			}

			defs := resolve.Definitions{}
			if definitionID != "" {
				defs = resolve.MergeLocalDefinitions(defs, t)
				t = &datatype.Reference{DefinitionID: definitionID}
			}

			resolved, visible, err := a.cfg.Resolver().Resolve(t, defs)
			if err != nil {
				return err
			}

			out, err := datatype.MarshalType(resolved)
			if err != nil {
				return err
			}

			a.logger.Debug().
				Str("kind", resolved.Kind().String()).
				Strs("definitions", visible.IDs()).
				Msg("type resolved")

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}

	cmd.Flags().StringVar(&definitionID, "definition", "", "resolve this definition id")

	return cmd
}
