package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sngm3741/fitness-directory/api/internal/cli"
	"github.com/sngm3741/fitness-directory/api/internal/public/application"
)

func newMetaCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meta",
		Short: "List filter metadata: categories, services, vibes, price range",
	}

	lists := []struct {
		use   string
		short string
		list  func(application.BusinessQueryService) []string
	}{
		{"categories", "List distinct categories", application.BusinessQueryService.Categories},
		{"services", "List distinct services", application.BusinessQueryService.Services},
		{"vibes", "List the fixed vibes", application.BusinessQueryService.Vibes},
	}
	for _, l := range lists {
		l := l
		cmd.AddCommand(&cobra.Command{
			Use:   l.use,
			Short: l.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				queries, err := root.loadQueries(cmd.Context())
				if err != nil {
					return err
				}
				p := cli.NewPrinter(cmd.OutOrStdout())
				for _, v := range l.list(queries) {
					p.Println(v)
				}
				return nil
			},
		})
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "price-range",
		Short: "Print the lowest and highest weekly price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			queries, err := root.loadQueries(cmd.Context())
			if err != nil {
				return err
			}
			bounds := queries.PriceBounds()
			fmt.Fprintf(cmd.OutOrStdout(), "$%d - $%d\n", bounds.Min, bounds.Max)
			return nil
		},
	})
	return cmd
}
