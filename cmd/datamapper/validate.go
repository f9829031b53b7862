package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"datamapper/internal/diagnostic"
	"datamapper/internal/mapping"
)

func newValidateCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate <mapping-file>",
		Short: "Check a mapping description",
		Long: `Check a mapping description.

Checks:
  - action ids are unique and every action has a target
  - referenced constants and attributes exist
  - expression transformations compile
  - every mandatory target field is the target of an action

Examples:
  datamapper validate order-mapping.yaml
  datamapper validate --strict order-mapping.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := mapping.LoadFile(args[0])
			if err != nil {
				return err
			}

			diags := a.cfg.Checker().Check(d)

			out := cmd.OutOrStdout()
			for _, group := range [][]diagnostic.Diagnostic{diags.Errors, diags.Warnings, diags.Infos} {
				for _, diag := range group {
					fmt.Fprintf(out, "%s: %s\n", diag.Severity, diag)
				}
			}

			a.logger.Info().
				Str("file", args[0]).
				Int("actions", len(d.Actions)).
				Int("errors", len(diags.Errors)).
				Int("warnings", len(diags.Warnings)).
				Msg("mapping checked")

			if diags.HasErrors() {
				return fmt.Errorf("%s: %d error(s)", args[0], len(diags.Errors))
			}

			if strict && len(diags.Warnings) > 0 {
				return fmt.Errorf("%s: %d warning(s) in strict mode", args[0], len(diags.Warnings))
			}

			fmt.Fprintln(out, "Mapping is valid.")

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")

	return cmd
}
