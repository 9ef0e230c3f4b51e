package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/fitness-directory/api/internal/infrastructure/filestore"
	mongodoc "github.com/sngm3741/fitness-directory/api/internal/infrastructure/mongo"
)

type seedOptions struct {
	mongoURI   string
	database   string
	collection string
	drop       bool
	timeout    time.Duration
}

func newSeedCmd(root *rootOptions) *cobra.Command {
	opts := &seedOptions{}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the dataset file into MongoDB",
		Long: `Load the dataset file into MongoDB.

Businesses are upserted by id in dataset order. With --drop the
collection is dropped first so removed businesses disappear too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", envOrDefault("MONGO_URI", "mongodb://localhost:27017"), "MongoDB connection URI")
	cmd.Flags().StringVar(&opts.database, "db", envOrDefault("MONGO_DB", "fitness-directory"), "database name")
	cmd.Flags().StringVar(&opts.collection, "collection", envOrDefault("BUSINESS_COLLECTION", "businesses"), "collection name")
	cmd.Flags().BoolVar(&opts.drop, "drop", false, "drop the collection before seeding")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 60*time.Second, "overall timeout")
	return cmd
}

func runSeed(ctx context.Context, root *rootOptions, opts *seedOptions) error {
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	businesses, err := filestore.NewBusinessLoader(root.dataPath).Load(ctx)
	if err != nil {
		return err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.mongoURI))
	if err != nil {
		return fmt.Errorf("MongoDB 接続に失敗しました: %w", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if opts.drop {
		log.Printf("[WARN] %s.%s を削除してから投入します", opts.database, opts.collection)
	}
	repo := mongodoc.NewBusinessRepository(client.Database(opts.database), opts.collection)
	n, err := repo.Seed(ctx, businesses, opts.drop)
	if err != nil {
		return fmt.Errorf("事業者データの投入に失敗しました: %w", err)
	}

	log.Printf("%s から %d 件の事業者データを %s.%s に投入しました", root.dataPath, n, opts.database, opts.collection)
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
