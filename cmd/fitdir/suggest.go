package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sngm3741/fitness-directory/api/internal/cli"
)

func newSuggestCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest TERM...",
		Short: "Print search-as-you-type suggestions for a term",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			queries, err := root.loadQueries(cmd.Context())
			if err != nil {
				return err
			}
			p := cli.NewPrinter(cmd.OutOrStdout())
			for _, s := range queries.Suggest(strings.Join(args, " ")) {
				p.Println(p.Cyan(s))
			}
			return nil
		},
	}
}
