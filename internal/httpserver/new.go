package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"review-insight-srv/config"
	"review-insight-srv/pkg/appstore"
	"review-insight-srv/pkg/gemini"
	"review-insight-srv/pkg/log"
	"review-insight-srv/pkg/minio"
	pkgRedis "review-insight-srv/pkg/redis"
	"review-insight-srv/pkg/sentimodel"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Storage
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis
	minioClient minio.MinIO

	// External clients. gemini and sentiModel may be nil when no
	// credential is configured; the pipeline degrades to heuristics.
	appStore   appstore.IAppStore
	gemini     gemini.IGemini
	sentiModel sentimodel.IModel
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Storage
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis
	MinIOClient minio.MinIO

	// External clients
	AppStore   appstore.IAppStore
	Gemini     gemini.IGemini
	SentiModel sentimodel.IModel
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,
		minioClient: cfg.MinIOClient,
		appStore:    cfg.AppStore,
		gemini:      cfg.Gemini,
		sentiModel:  cfg.SentiModel,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}
	if srv.appStore == nil {
		return errors.New("appStore is required")
	}
	return nil
}
