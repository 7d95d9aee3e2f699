package usecase

import (
	"review-insight-srv/internal/analysis"
	"review-insight-srv/internal/analysis/repository"
	"review-insight-srv/internal/filter"
	"review-insight-srv/internal/sentiment"
	"review-insight-srv/internal/steps"
	"review-insight-srv/pkg/appstore"
	"review-insight-srv/pkg/log"
)

type Config struct {
	TopReviews    int
	MaxPages      int
	RegionDelayMs int
}

type implUseCase struct {
	appStore  appstore.IAppStore
	filter    filter.UseCase
	sentiment sentiment.UseCase
	steps     steps.UseCase
	repo      repository.Repository
	l         log.Logger
	cfg       Config
}

// New creates a new analysis UseCase implementation. A nil repository
// disables caching.
func New(
	appStore appstore.IAppStore,
	filterUC filter.UseCase,
	sentimentUC sentiment.UseCase,
	stepsUC steps.UseCase,
	repo repository.Repository,
	l log.Logger,
	cfg Config,
) analysis.UseCase {
	if cfg.TopReviews <= 0 {
		cfg.TopReviews = analysis.DefaultTopReviews
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = analysis.DefaultMaxPages
	}
	if cfg.RegionDelayMs <= 0 {
		cfg.RegionDelayMs = analysis.DefaultRegionDelayMs
	}
	return &implUseCase{
		appStore:  appStore,
		filter:    filterUC,
		sentiment: sentimentUC,
		steps:     stepsUC,
		repo:      repo,
		l:         l,
		cfg:       cfg,
	}
}
