package usecase

import (
	"review-insight-srv/internal/competitor"
	"review-insight-srv/pkg/appstore"
	"review-insight-srv/pkg/log"
)

type Config struct {
	MaxCompetitors int
	SearchLimit    int
	MaxPages       int
	RegionDelayMs  int
}

type implUseCase struct {
	appStore appstore.IAppStore
	l        log.Logger
	cfg      Config
}

// New creates a new competitor UseCase implementation.
func New(appStore appstore.IAppStore, l log.Logger, cfg Config) competitor.UseCase {
	if cfg.MaxCompetitors <= 0 {
		cfg.MaxCompetitors = competitor.DefaultMaxCompetitors
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = competitor.DefaultSearchLimit
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = competitor.DefaultMaxPages
	}
	if cfg.RegionDelayMs <= 0 {
		cfg.RegionDelayMs = 500
	}
	return &implUseCase{
		appStore: appStore,
		l:        l,
		cfg:      cfg,
	}
}
