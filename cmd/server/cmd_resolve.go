package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newResolveCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>...",
		Short: "Print API URLs resolved against the configured base",
		Long: `Print the absolute URL for each path, resolved against frontend.api_base_url
(or API_BASE_URL). Paths that already begin with "http" are printed unchanged.

Examples:
  lunch-web resolve /api/groups /api/groups/42
  API_BASE_URL=https://api.example.com lunch-web resolve /api/restaurants`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			resolver := cfg.Frontend.Resolver()
			for _, path := range args {
				fmt.Fprintln(stdout, resolver.URL(path))
			}
			return nil
		},
	}
}
