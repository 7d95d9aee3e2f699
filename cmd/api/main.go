package main

import (
	"context"
	"fmt"

	"review-insight-srv/config"
	configMinio "review-insight-srv/config/minio"
	configPostgre "review-insight-srv/config/postgre"
	configRedis "review-insight-srv/config/redis"
	"review-insight-srv/internal/httpserver"
	"review-insight-srv/pkg/appstore"
	"review-insight-srv/pkg/gemini"
	"review-insight-srv/pkg/log"
	"review-insight-srv/pkg/sentimodel"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s",
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)",
		cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 5. Initialize MinIO and ensure the report bucket exists
	minioClient, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	defer configMinio.Disconnect()
	if err := minioClient.EnsureBucket(ctx, cfg.Report.Bucket); err != nil {
		logger.Error(ctx, "Failed to ensure report bucket: ", err)
		return
	}
	logger.Infof(ctx, "MinIO connected successfully to %s (bucket %s)",
		cfg.MinIO.Endpoint, cfg.Report.Bucket)

	// 6. Initialize the App Store client
	appStoreClient := appstore.NewAppStore(appstore.AppStoreConfig{
		Timeout: cfg.AppStore.Timeout,
	})

	// 7. Initialize Gemini (optional; LLM stages degrade to heuristics)
	var geminiClient gemini.IGemini
	if cfg.Gemini.APIKey != "" {
		geminiClient, err = gemini.NewGemini(gemini.GeminiConfig{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			Timeout: cfg.Gemini.Timeout,
		})
		if err != nil {
			logger.Warnf(ctx, "Gemini client not available, falling back to heuristics: %v", err)
			geminiClient = nil
		} else {
			logger.Infof(ctx, "Gemini client initialized with model %s", cfg.Gemini.Model)
		}
	} else {
		logger.Infof(ctx, "No Gemini credential configured, LLM stages use heuristics")
	}

	// 8. Initialize the sentiment model (optional; degrades to rating thresholds)
	var sentiModel sentimodel.IModel
	if cfg.Sentiment.ModelURL != "" {
		sentiModel, err = sentimodel.NewModel(sentimodel.SentimentConfig{
			APIKey:   cfg.Sentiment.APIKey,
			ModelURL: cfg.Sentiment.ModelURL,
			Timeout:  cfg.Sentiment.Timeout,
		})
		if err != nil {
			logger.Warnf(ctx, "Sentiment model not available, falling back to rating thresholds: %v", err)
			sentiModel = nil
		} else {
			logger.Infof(ctx, "Sentiment model initialized")
		}
	} else {
		logger.Infof(ctx, "No sentiment model configured, scoring uses rating thresholds")
	}

	// 9. Initialize and run the HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		PostgresDB:  postgresDB,
		RedisClient: redisClient,
		MinIOClient: minioClient,

		AppStore:   appStoreClient,
		Gemini:     geminiClient,
		SentiModel: sentiModel,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "HTTP server stopped with error: ", err)
	}
}
