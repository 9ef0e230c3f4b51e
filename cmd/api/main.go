package main

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/fitness-directory/api/internal/config"
	"github.com/sngm3741/fitness-directory/api/internal/infrastructure/filestore"
	mongodoc "github.com/sngm3741/fitness-directory/api/internal/infrastructure/mongo"
	"github.com/sngm3741/fitness-directory/api/internal/public/application"
	"github.com/sngm3741/fitness-directory/api/internal/server"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	var (
		loader application.BusinessLoader
		client *mongo.Client
	)
	switch cfg.DataSource {
	case config.DataSourceMongo:
		clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
		var err error
		client, err = mongo.Connect(ctx, clientOptions)
		if err != nil {
			cfg.ServerLog.Fatalf("MongoDB 接続に失敗しました: %v", err)
		}
		loader = mongodoc.NewBusinessRepository(client.Database(cfg.MongoDatabase), cfg.BusinessCollection)
	default:
		loader = filestore.NewBusinessLoader(cfg.DatasetPath)
	}

	catalog, err := application.LoadCatalog(ctx, loader)
	if err != nil {
		// 読み込みに失敗しても空のカタログで起動を続ける。
		cfg.ServerLog.Printf("事業者データの読み込みに失敗しました。空のカタログで起動します: %v", err)
	} else {
		cfg.ServerLog.Printf("事業者データを %d 件読み込みました (source=%s)", catalog.Len(), cfg.DataSource)
	}

	app := server.New(cfg, catalog, client)
	if err := app.Run(); err != nil {
		log.Fatalf("サーバー起動に失敗: %v", err)
	}
}
