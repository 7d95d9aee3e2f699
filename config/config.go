package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// App Store - Review feed, lookup and search
	AppStore AppStoreConfig

	// Gemini - LLM
	Gemini GeminiConfig

	// Sentiment - Hosted inference endpoint
	Sentiment SentimentConfig

	// Pipeline policies
	Filter     FilterConfig
	Analysis   AnalysisConfig
	Competitor CompetitorConfig
	Report     ReportConfig

	// PostgreSQL - Report records
	Postgres PostgresConfig

	// Redis - Analysis caching
	Redis RedisConfig

	// MinIO - Report storage
	MinIO MinIOConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AppStoreConfig is the configuration for the App Store client
type AppStoreConfig struct {
	Timeout int // in seconds
}

// GeminiConfig is the configuration for Google Gemini (LLM). Same shape as pkg/gemini.GeminiConfig.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout int // in seconds
}

// SentimentConfig is the configuration for the sentiment inference endpoint.
type SentimentConfig struct {
	APIKey       string
	ModelURL     string
	Timeout      int // in seconds
	Enabled      bool
	BatchSize    int
	BatchDelayMs int
}

// FilterConfig is the configuration for the informativeness filter.
type FilterConfig struct {
	Enabled              bool
	MaxReviews           int
	BatchSize            int
	MaxConcurrentBatches int
	RetryAttempts        int
	RetryDelayMs         int
	RateLimitDelayMs     int
}

// AnalysisConfig is the configuration for the analysis pipeline.
type AnalysisConfig struct {
	MaxPages        int
	TopReviews      int
	RegionDelayMs   int
	CacheTTLMinutes int
}

// CompetitorConfig is the configuration for competitor discovery.
type CompetitorConfig struct {
	MaxCompetitors int
	SearchLimit    int
	MaxPages       int
	RegionDelayMs  int
}

// ReportConfig is the configuration for report generation.
type ReportConfig struct {
	Bucket             string
	ReuseWindowMinutes int
	URLExpiryMinutes   int
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	viper.SetConfigName("insight-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/review-insight/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; env vars cover everything
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// App Store
	cfg.AppStore.Timeout = viper.GetInt("appstore.timeout")

	// Gemini - LLM
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.Timeout = viper.GetInt("gemini.timeout")

	// Sentiment
	cfg.Sentiment.APIKey = viper.GetString("sentiment.api_key")
	cfg.Sentiment.ModelURL = viper.GetString("sentiment.model_url")
	cfg.Sentiment.Timeout = viper.GetInt("sentiment.timeout")
	cfg.Sentiment.Enabled = viper.GetBool("sentiment.enabled")
	cfg.Sentiment.BatchSize = viper.GetInt("sentiment.batch_size")
	cfg.Sentiment.BatchDelayMs = viper.GetInt("sentiment.batch_delay_ms")

	// Filter
	cfg.Filter.Enabled = viper.GetBool("filter.enabled")
	cfg.Filter.MaxReviews = viper.GetInt("filter.max_reviews")
	cfg.Filter.BatchSize = viper.GetInt("filter.batch_size")
	cfg.Filter.MaxConcurrentBatches = viper.GetInt("filter.max_concurrent_batches")
	cfg.Filter.RetryAttempts = viper.GetInt("filter.retry_attempts")
	cfg.Filter.RetryDelayMs = viper.GetInt("filter.retry_delay_ms")
	cfg.Filter.RateLimitDelayMs = viper.GetInt("filter.rate_limit_delay_ms")

	// Analysis
	cfg.Analysis.MaxPages = viper.GetInt("analysis.max_pages")
	cfg.Analysis.TopReviews = viper.GetInt("analysis.top_reviews")
	cfg.Analysis.RegionDelayMs = viper.GetInt("analysis.region_delay_ms")
	cfg.Analysis.CacheTTLMinutes = viper.GetInt("analysis.cache_ttl_minutes")

	// Competitor
	cfg.Competitor.MaxCompetitors = viper.GetInt("competitor.max_competitors")
	cfg.Competitor.SearchLimit = viper.GetInt("competitor.search_limit")
	cfg.Competitor.MaxPages = viper.GetInt("competitor.max_pages")
	cfg.Competitor.RegionDelayMs = viper.GetInt("competitor.region_delay_ms")

	// Report
	cfg.Report.Bucket = viper.GetString("report.bucket")
	cfg.Report.ReuseWindowMinutes = viper.GetInt("report.reuse_window_minutes")
	cfg.Report.URLExpiryMinutes = viper.GetInt("report.url_expiry_minutes")

	// PostgreSQL - Report records
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis - Analysis caching
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// MinIO - Report storage
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. App Store
	viper.SetDefault("appstore.timeout", 15)

	// 2. Gemini
	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("gemini.timeout", 30)

	// 3. Sentiment
	viper.SetDefault("sentiment.enabled", true)
	viper.SetDefault("sentiment.timeout", 20)
	viper.SetDefault("sentiment.batch_size", 10)
	viper.SetDefault("sentiment.batch_delay_ms", 200)

	// 4. Filter
	viper.SetDefault("filter.enabled", true)
	viper.SetDefault("filter.max_reviews", 100)
	viper.SetDefault("filter.batch_size", 5)
	viper.SetDefault("filter.max_concurrent_batches", 3)
	viper.SetDefault("filter.retry_attempts", 3)
	viper.SetDefault("filter.retry_delay_ms", 1000)
	viper.SetDefault("filter.rate_limit_delay_ms", 1000)

	// 5. Analysis
	viper.SetDefault("analysis.max_pages", 3)
	viper.SetDefault("analysis.top_reviews", 3)
	viper.SetDefault("analysis.region_delay_ms", 500)
	viper.SetDefault("analysis.cache_ttl_minutes", 15)

	// 6. Competitor
	viper.SetDefault("competitor.max_competitors", 10)
	viper.SetDefault("competitor.search_limit", 20)
	viper.SetDefault("competitor.max_pages", 1)
	viper.SetDefault("competitor.region_delay_ms", 500)

	// 7. Report
	viper.SetDefault("report.bucket", "insight-reports")
	viper.SetDefault("report.reuse_window_minutes", 60)
	viper.SetDefault("report.url_expiry_minutes", 30)

	// 8. PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "insight")

	// 9. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 10. MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535")
	}
	switch cfg.HTTPServer.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("http_server.mode must be debug, release or test")
	}
	// Missing model credentials are not fatal: the pipeline degrades to
	// its heuristic paths when a client cannot be built.
	return nil
}
