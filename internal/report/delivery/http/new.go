package http

import (
	"github.com/gin-gonic/gin"

	"review-insight-srv/internal/report"
	"review-insight-srv/pkg/log"
)

// Handler registers the report HTTP routes.
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l  log.Logger
	uc report.UseCase
}

// New creates a new report HTTP handler.
func New(l log.Logger, uc report.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
