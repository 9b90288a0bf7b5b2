package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/formbuilder/internal/theme"
)

type themeRow struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Active       bool   `json:"active"`
	LayoutClass  string `json:"layout_class"`
	ButtonAccent string `json:"button_accent"`
	Background   string `json:"background"`
	Foreground   string `json:"foreground"`
	Accent       string `json:"accent"`
	Border       string `json:"border"`
}

func newThemesCmd(root *rootFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the available themes with their styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}

			reg := cfg.Registry()
			active := cfg.InitialState().ActiveTheme
			rows := make([]themeRow, 0, len(theme.IDs()))
			for _, id := range theme.IDs() {
				style := reg.StyleFor(id)
				rows = append(rows, themeRow{
					ID:           id.String(),
					Label:        id.Label(),
					Active:       id == active,
					LayoutClass:  style.LayoutClass,
					ButtonAccent: style.ButtonAccent,
					Background:   style.Terminal.Background,
					Foreground:   style.Terminal.Foreground,
					Accent:       style.Terminal.Accent,
					Border:       string(style.Terminal.Border),
				})
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tLABEL\tLAYOUT\tBUTTON\tACCENT\tBORDER")
			for _, r := range rows {
				id := r.ID
				if r.Active {
					id += " *"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\n", id, r.Label, r.LayoutClass, r.ButtonAccent, r.Accent, r.Border)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
