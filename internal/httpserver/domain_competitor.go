package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	competitorHTTP "review-insight-srv/internal/competitor/delivery/http"
	competitorUsecase "review-insight-srv/internal/competitor/usecase"
)

func (srv *HTTPServer) setupCompetitorDomain(ctx context.Context, r *gin.RouterGroup) {
	uc := competitorUsecase.New(srv.appStore, srv.l, competitorUsecase.Config{
		MaxCompetitors: srv.config.Competitor.MaxCompetitors,
		SearchLimit:    srv.config.Competitor.SearchLimit,
		MaxPages:       srv.config.Competitor.MaxPages,
		RegionDelayMs:  srv.config.Competitor.RegionDelayMs,
	})

	handler := competitorHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r)

	srv.l.Infof(ctx, "Competitor domain registered")
}
