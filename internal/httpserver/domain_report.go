package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"review-insight-srv/internal/analysis"
	reportHTTP "review-insight-srv/internal/report/delivery/http"
	reportPostgre "review-insight-srv/internal/report/repository/postgre"
	reportUsecase "review-insight-srv/internal/report/usecase"
)

func (srv *HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, analysisUC analysis.UseCase) {
	repo := reportPostgre.New(srv.postgresDB, srv.l)

	uc := reportUsecase.New(repo, analysisUC, srv.minioClient, srv.l, reportUsecase.Config{
		ReportBucket: srv.config.Report.Bucket,
		ReuseWindow:  time.Duration(srv.config.Report.ReuseWindowMinutes) * time.Minute,
		URLExpiry:    time.Duration(srv.config.Report.URLExpiryMinutes) * time.Minute,
	})

	handler := reportHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r)

	srv.l.Infof(ctx, "Report domain registered")
}
