// Seeds the firm directory from a JSON file into MongoDB and Meilisearch.
//
// Usage: seed -file firms.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/servis-mreza/directory/app/config"
	"github.com/servis-mreza/directory/app/models"
	"github.com/servis-mreza/directory/helpers/utils"
	"github.com/servis-mreza/directory/internal/search"
)

func main() {
	file := flag.String("file", "firms.json", "path to the firms JSON file")
	mongoURL := flag.String("mongo", envOr("MONGO_URL", "mongodb://localhost:27017/servis_mreza"), "MongoDB URL")
	meiliURL := flag.String("meili", envOr("MEILI_URL", "http://localhost:7700"), "Meilisearch URL")
	meiliKey := flag.String("meili-key", os.Getenv("MEILI_MASTER_KEY"), "Meilisearch master key")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal("cannot initialize logger:", err)
	}
	defer logger.Sync()

	data, err := os.ReadFile(*file)
	if err != nil {
		logger.Fatal("cannot read firms file", zap.Error(err), zap.String("file", *file))
	}

	var firms []models.Firm
	if err := json.Unmarshal(data, &firms); err != nil {
		logger.Fatal("cannot parse firms file", zap.Error(err))
	}

	now := time.Now().UTC()
	for i := range firms {
		if firms[i].ID == "" {
			firms[i].ID = utils.GenerateUUID()
		}
		if firms[i].CreatedAt.IsZero() {
			firms[i].CreatedAt = now
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(*mongoURL))
	if err != nil {
		logger.Fatal("cannot connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	coll := client.Database("servis_mreza").Collection("firms")
	docs := make([]interface{}, len(firms))
	for i := range firms {
		docs[i] = firms[i]
	}

	res, err := coll.InsertMany(ctx, docs)
	if err != nil {
		logger.Fatal("insert firms failed", zap.Error(err))
	}
	logger.Info("inserted firms", zap.Int("count", len(res.InsertedIDs)))

	indexConfig := search.IndexConfig{
		Host:             *meiliURL,
		APIKey:           *meiliKey,
		FirmIndex:        config.C.Meili.FirmIndex,
		ApplicationIndex: config.C.Meili.ApplicationIndex,
		Timeout:          30 * time.Second,
	}

	firmIndex, err := search.NewFirmIndex(indexConfig, models.Catalog(), logger)
	if err != nil {
		logger.Fatal("cannot connect to Meilisearch", zap.Error(err))
	}

	if err := firmIndex.BuildIndexes(); err != nil {
		logger.Fatal("cannot build index settings", zap.Error(err))
	}
	if err := firmIndex.IndexFirms(ctx, firms); err != nil {
		logger.Fatal("cannot index firms", zap.Error(err))
	}

	logger.Info("seed complete", zap.Int("firms", len(firms)))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
