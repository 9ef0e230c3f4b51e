// Package main is the entry point for the fitdir CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sngm3741/fitness-directory/api/internal/infrastructure/filestore"
	"github.com/sngm3741/fitness-directory/api/internal/public/application"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootOptions carries flags shared by every subcommand.
type rootOptions struct {
	dataPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "fitdir",
		Short: "fitdir - browse the fitness directory dataset from the terminal",
		Long: `fitdir queries the same business dataset the API serves.

It can filter and search businesses, print search suggestions, list
categories, services and vibes, and seed MongoDB from a dataset file.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetVersionTemplate("fitdir version {{.Version}}\n")
	cmd.PersistentFlags().StringVar(&opts.dataPath, "data", defaultDatasetPath(), "dataset file (.json, .yaml)")

	cmd.AddCommand(
		newQueryCmd(opts),
		newSuggestCmd(opts),
		newMetaCmd(opts),
		newSeedCmd(opts),
	)
	return cmd
}

func defaultDatasetPath() string {
	if v := strings.TrimSpace(os.Getenv("DATASET_PATH")); v != "" {
		return v
	}
	return "data/businesses.json"
}

// loadQueries reads the dataset and wraps it in the query service the API uses.
func (o *rootOptions) loadQueries(ctx context.Context) (application.BusinessQueryService, error) {
	catalog, err := application.LoadCatalog(ctx, filestore.NewBusinessLoader(o.dataPath))
	if err != nil {
		return nil, err
	}
	return application.NewBusinessQueryService(catalog), nil
}
