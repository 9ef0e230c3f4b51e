package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sngm3741/fitness-directory/api/internal/cli"
	"github.com/sngm3741/fitness-directory/api/internal/infrastructure/filestore"
	"github.com/sngm3741/fitness-directory/api/internal/public/domain"
)

type queryOptions struct {
	category string
	minPrice int
	maxPrice int
	services []string
	vibe     string
	search   string
	sort     string
	order    string
	json     bool
}

func newQueryCmd(root *rootOptions) *cobra.Command {
	opts := &queryOptions{}
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Filter and search businesses",
		Long: `Filter and search businesses.

Results are ordered by rating (highest first) unless --sort is given.

Filter flags:
  --category    exact category, case-insensitive ("all" disables)
  --min-price   lowest weekly price (inclusive)
  --max-price   highest weekly price (inclusive)
  --services    match any of the given services (comma separated or repeated)
  --vibe        vibe substring ("all" disables)
  --search      free text; words like "cheap" or "intense" are understood`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", domain.AllSentinel, "filter by category")
	cmd.Flags().IntVar(&opts.minPrice, "min-price", domain.DefaultMinPrice, "minimum weekly price")
	cmd.Flags().IntVar(&opts.maxPrice, "max-price", domain.DefaultMaxPrice, "maximum weekly price")
	cmd.Flags().StringSliceVar(&opts.services, "services", nil, "filter by services (any match)")
	cmd.Flags().StringVar(&opts.vibe, "vibe", domain.AllSentinel, "filter by vibe")
	cmd.Flags().StringVar(&opts.search, "search", "", "free text search")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "sort column: name, category, location, price, vibe, rating")
	cmd.Flags().StringVar(&opts.order, "order", "asc", "sort order: asc or desc")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print results as JSON")
	return cmd
}

func runQuery(cmd *cobra.Command, root *rootOptions, opts *queryOptions) error {
	queries, err := root.loadQueries(cmd.Context())
	if err != nil {
		return err
	}

	criteria := domain.FilterCriteria{
		Category: opts.category,
		MinPrice: opts.minPrice,
		MaxPrice: opts.maxPrice,
		Services: opts.services,
		Vibe:     opts.vibe,
		Search:   opts.search,
		Sort:     domain.ParseSortSpec(opts.sort, opts.order),
	}
	result := queries.List(criteria.Normalize())

	if opts.json {
		records := make([]filestore.BusinessRecord, 0, len(result.Items))
		for _, b := range result.Items {
			records = append(records, filestore.RecordFromDomain(b))
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	p := cli.NewPrinter(cmd.OutOrStdout())
	if len(result.Items) == 0 {
		p.Println("No businesses match the current filters.")
		return nil
	}

	table := cli.NewTable()
	table.AddRow("ID", "NAME", "CATEGORY", "LOCATION", "PRICE", "RATING", "VIBE")
	for _, b := range result.Items {
		table.AddRow(
			strconv.Itoa(b.ID),
			cli.Truncate(b.Name, 32),
			b.Category,
			b.Location,
			p.Green(fmt.Sprintf("$%d/wk", b.Price)),
			p.Yellow(fmt.Sprintf("%.1f", b.Rating)),
			p.Gray(b.Vibe),
		)
	}
	table.Render(p.Writer())
	p.Printf("\nShowing %d of %d businesses\n", result.Count, result.Total)
	return nil
}
