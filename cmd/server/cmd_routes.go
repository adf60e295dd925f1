package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newRoutesCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the configured route table",
		Long: `Print the route table selected by frontend.routes, in match order,
with the browser-facing link for each pattern under the configured history mode.

Examples:
  lunch-web routes
  FRONTEND_ROUTES=minimal lunch-web routes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			table, err := cfg.Frontend.Table()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PAGE\tPATTERN\tLINK")
			for _, r := range table.Routes() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Page, r.Pattern, cfg.Frontend.History.Link(r.Pattern))
			}
			return tw.Flush()
		},
	}
}
