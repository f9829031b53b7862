package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"datamapper/internal/expr"
	"datamapper/internal/fieldref"
	"datamapper/internal/mapping"
)

func newCompileCmd(a *app) *cobra.Command {
	var (
		schemaFile string
		side       string
	)

	cmd := &cobra.Command{
		Use:   "compile <expression>",
		Short: "Compile a mapping expression",
		Long: `Compile a mapping expression, replacing field references with ${id}
placeholders.

Without --schema a reference is rendered as KIND:path. With --schema the
references are resolved to element ids of the source (or --side target)
schema of a mapping description.

Examples:
  datamapper compile 'concat(body.firstName, " ", body.lastName)'
  datamapper compile --schema order-mapping.yaml 'body.total * constant.rate'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sep := a.cfg.Expression.PathSeparator

			resolver := func(ref expr.FieldReference) (string, error) {
				return string(ref.Kind) + ":" + strings.Join(ref.Path, sep), nil
			}

			if schemaFile != "" {
				d, err := mapping.LoadFile(schemaFile)
				if err != nil {
					return err
				}

				schema := d.Source
				switch side {
				case "source":
				case "target":
					schema = d.Target
				default:
					return fmt.Errorf("--side must be 'source' or 'target', got %q", side)
				}

				resolver = fieldref.New(schema, d.Constants,
					fieldref.WithSeparator(sep),
					fieldref.WithTypeResolver(a.cfg.Resolver()),
				).Func()
			}

			out, err := expr.NewCompiler(resolver).Compile(args[0])
			if err != nil {
				return err
			}

			a.logger.Debug().Str("expression", args[0]).Msg("expression compiled")

			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}

	cmd.Flags().StringVar(&schemaFile, "schema", "", "mapping description whose schema resolves references")
	cmd.Flags().StringVar(&side, "side", "source", "schema side used with --schema: 'source' or 'target'")

	return cmd
}
