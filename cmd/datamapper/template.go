package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newTemplateCmd(a *app) *cobra.Command {
	var indent int

	cmd := &cobra.Command{
		Use:   "template <type-file>",
		Short: "Print an example XML document for a data type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadType(args[0])
			if err != nil {
				return err
			}

			if format := t.Metadata().DataFormat(); format != "" && !strings.EqualFold(format, "xml") {
				a.logger.Warn().Str("file", args[0]).Str("dataFormat", format).
					Msg("type is not declared as XML, the template may not match its wire format")
			}

			doc, err := a.cfg.Synthesizer().SynthesizeDocument(t)
			if err != nil {
				return fmt.Errorf("failed to synthesize template: %w", err)
			}

			if indent > 0 {
				doc.Indent(indent)
			}

			out, err := doc.WriteToString()
			if err != nil {
				return err
			}

			a.logger.Debug().Str("file", args[0]).Str("kind", t.Kind().String()).Msg("template synthesized")

			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}

	cmd.Flags().IntVar(&indent, "indent", 0, "indent nested elements by this many spaces")

	return cmd
}
