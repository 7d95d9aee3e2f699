package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"review-insight-srv/internal/analysis"
	analysisHTTP "review-insight-srv/internal/analysis/delivery/http"
	analysisRedis "review-insight-srv/internal/analysis/repository/redis"
	analysisUsecase "review-insight-srv/internal/analysis/usecase"
	categorizerUsecase "review-insight-srv/internal/categorizer/usecase"
	filterUsecase "review-insight-srv/internal/filter/usecase"
	sentimentUsecase "review-insight-srv/internal/sentiment/usecase"
	stepsUsecase "review-insight-srv/internal/steps/usecase"
)

func (srv *HTTPServer) setupAnalysisDomain(ctx context.Context, r *gin.RouterGroup) analysis.UseCase {
	filterUC := filterUsecase.New(srv.gemini, nil, srv.l, filterUsecase.Config{
		Enabled:              srv.config.Filter.Enabled && srv.gemini != nil,
		MaxReviews:           srv.config.Filter.MaxReviews,
		BatchSize:            srv.config.Filter.BatchSize,
		MaxConcurrentBatches: srv.config.Filter.MaxConcurrentBatches,
		RetryAttempts:        srv.config.Filter.RetryAttempts,
		RetryDelayMs:         srv.config.Filter.RetryDelayMs,
		RateLimitDelayMs:     srv.config.Filter.RateLimitDelayMs,
	})

	sentimentUC := sentimentUsecase.New(srv.sentiModel, srv.l, sentimentUsecase.Config{
		Enabled:      srv.config.Sentiment.Enabled && srv.sentiModel != nil,
		BatchSize:    srv.config.Sentiment.BatchSize,
		BatchDelayMs: srv.config.Sentiment.BatchDelayMs,
	})

	stepsUC := stepsUsecase.New(srv.gemini, nil, srv.l, stepsUsecase.Config{})

	cacheRepo := analysisRedis.New(srv.redisClient, srv.l,
		time.Duration(srv.config.Analysis.CacheTTLMinutes)*time.Minute)

	uc := analysisUsecase.New(srv.appStore, filterUC, sentimentUC, stepsUC, cacheRepo, srv.l,
		analysisUsecase.Config{
			TopReviews:    srv.config.Analysis.TopReviews,
			MaxPages:      srv.config.Analysis.MaxPages,
			RegionDelayMs: srv.config.Analysis.RegionDelayMs,
		})

	categorizerUC := categorizerUsecase.New(srv.gemini, srv.l, categorizerUsecase.Config{
		Enabled: srv.gemini != nil,
	})

	handler := analysisHTTP.New(srv.l, uc, categorizerUC)
	handler.RegisterRoutes(r)

	srv.l.Infof(ctx, "Analysis domain registered")
	return uc
}
