package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"datamapper/internal/index"
	"datamapper/internal/mapping"
	"datamapper/internal/resolve"
)

func newElementsCmd(a *app) *cobra.Command {
	var side string

	cmd := &cobra.Command{
		Use:   "elements <file>",
		Short: "List the elements reachable from a data type or a mapping schema",
		Long: `List the elements reachable from a data type, depth first.

With --side the file is read as a mapping description and the headers,
properties and body of its source or target schema are listed.

Examples:
  datamapper elements order.yaml
  datamapper elements --side target order-mapping.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ix := index.Indexer{Resolver: a.cfg.Resolver()}

			var (
				m   *index.ElementMap
				err error
			)

			switch side {
			case "":
				t, lerr := loadType(args[0])
				if lerr != nil {
					return lerr
				}

				m, err = ix.BuildElementMap(t, resolve.Definitions{})
			case "source", "target":
				d, lerr := mapping.LoadFile(args[0])
				if lerr != nil {
					return lerr
				}

				schema := d.Source
				if side == "target" {
					schema = d.Target
				}

				m, err = ix.BuildSchemaElementMap(schema)
			default:
				return fmt.Errorf("--side must be 'source' or 'target', got %q", side)
			}

			if err != nil {
				return fmt.Errorf("failed to index elements: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tREQUIRED")

			for _, e := range m.Entries() {
				kind := "-"
				if e.Attribute.Type != nil {
					kind = e.Attribute.Type.Kind().String()
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", e.Attribute.ID, e.Attribute.Name, kind, e.Attribute.Required)
			}

			a.logger.Debug().Int("elements", m.Len()).Msg("elements indexed")

			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&side, "side", "", "read a mapping description and list its 'source' or 'target' schema")

	return cmd
}
