package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/formbuilder/internal/element"
)

func newElementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elements",
		Short: "List the element types the palette offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "TOKEN\tKEY\tPALETTE\tINPUTS")
			for _, tpl := range element.DefaultCatalog().Entries() {
				inputs := make([]string, 0, len(tpl.Inputs))
				for _, in := range tpl.Inputs {
					inputs = append(inputs, fmt.Sprintf("%s %q", in.Kind, in.Placeholder))
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", tpl.Type, tpl.Shortcut, tpl.PaletteLabel, strings.Join(inputs, ", "))
			}
			return writer.Flush()
		},
	}

	return cmd
}
