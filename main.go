package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/servis-mreza/directory/app/config"
	"github.com/servis-mreza/directory/app/controllers"
	"github.com/servis-mreza/directory/app/models"
	"github.com/servis-mreza/directory/app/services"
	"github.com/servis-mreza/directory/internal/matcher"
	"github.com/servis-mreza/directory/internal/search"
	"github.com/servis-mreza/directory/internal/synonyms"
	"github.com/servis-mreza/directory/routes"
)

func main() {
	// 1. Load configuration
	loadConfig()
	if path := viper.GetString("directory.config"); path != "" {
		if err := config.Load(path); err != nil {
			log.Printf("Warning: cannot read directory config %s: %v", path, err)
		}
	}

	// 2. Logger
	logger := initLogger()
	defer logger.Sync()

	logger.Info("Starting Servis Mreža Directory Service")

	// 3. MongoDB
	mongoDB := initMongoDB(logger)
	defer func() {
		if err := mongoDB.Client().Disconnect(context.Background()); err != nil {
			logger.Error("Error disconnecting MongoDB", zap.Error(err))
		}
	}()

	// 4. Meilisearch
	indexConfig := search.IndexConfig{
		Host:             viper.GetString("meilisearch.url"),
		APIKey:           viper.GetString("meilisearch.master_key"),
		FirmIndex:        config.C.Meili.FirmIndex,
		ApplicationIndex: config.C.Meili.ApplicationIndex,
		Timeout:          30 * time.Second,
	}

	logger.Info("Meilisearch config", zap.String("host", indexConfig.Host))

	firmIndex, err := search.NewFirmIndex(indexConfig, models.Catalog(), logger)
	if err != nil {
		logger.Fatal("Failed to initialize Meilisearch", zap.Error(err))
	}

	// 5. Matching components
	synonymIndex := synonyms.NewIndex(models.Catalog())
	firmMatcher := matcher.New(synonymIndex)

	// 6. Cache (LRU L1 + Redis L2)
	l1Size := getEnvInt("L1_CACHE_SIZE", 10000)
	memoryCache, err := services.NewMemoryCacheService(l1Size, logger)
	if err != nil {
		logger.Fatal("Failed to initialize memory cache", zap.Error(err))
	}

	redisURL := getEnv("REDIS_URL", "redis://localhost:6379")
	redisCache, err := services.NewRedisCacheService(redisURL, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Redis cache", zap.Error(err))
	}

	cacheService := services.NewHybridCacheService(memoryCache, redisCache, logger)

	// 7. Services
	firmService := services.NewFirmService(mongoDB, firmMatcher, logger)
	partnerService := services.NewPartnerService(mongoDB, firmIndex, config.C.Dedup, logger)
	favoriteService := services.NewFavoriteService(mongoDB, logger)

	// 8. Controllers
	searchController := controllers.NewSearchController(firmService, cacheService, logger)
	catalogController := controllers.NewCatalogController()
	partnerController := controllers.NewPartnerController(partnerService, logger)
	favoritesController := controllers.NewFavoritesController(favoriteService, logger)
	adminController := controllers.NewAdminController(firmService, partnerService, firmIndex, cacheService, logger)

	// 9. Router
	router := gin.New()
	routes.SetupAllRoutes(router, searchController, catalogController, partnerController, favoritesController, adminController)

	// 10. Index settings
	if err := firmIndex.BuildIndexes(); err != nil {
		logger.Warn("Failed to build Meilisearch indexes", zap.Error(err))
	}

	// 11. Serve
	port := getEnv("APP_PORT", "8080")
	logger.Info("Directory service starting", zap.String("port", port))

	if err := router.Run(":" + port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// loadConfig loads configuration from file and env vars.
func loadConfig() {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("meilisearch.url", "http://localhost:7700")
	viper.SetDefault("meilisearch.master_key", "")
	viper.SetDefault("mongo.url", "mongodb://localhost:27017/servis_mreza")
	viper.SetDefault("directory.config", "./config/directory.yaml")
	viper.SetDefault("cache.l1_size", 10000)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Cannot read config file: %v", err)
	}
}

// initLogger builds the structured logger for the current environment.
func initLogger() *zap.Logger {
	env := getEnv("APP_ENV", "development")

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatal("Cannot initialize logger:", err)
	}
	return logger
}

// initMongoDB connects to MongoDB and verifies the connection.
func initMongoDB(logger *zap.Logger) *mongo.Database {
	mongoURL := getEnv("MONGO_URL", "mongodb://localhost:27017/servis_mreza")

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(mongoURL))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("Failed to ping MongoDB", zap.Error(err))
	}

	db := client.Database("servis_mreza")
	logger.Info("Connected to MongoDB", zap.String("database", db.Name()))
	return db
}

// getEnv reads an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
