package http

import (
	"github.com/gin-gonic/gin"

	"review-insight-srv/internal/analysis"
	"review-insight-srv/internal/categorizer"
	"review-insight-srv/pkg/log"
)

// Handler registers the analysis HTTP routes.
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l             log.Logger
	uc            analysis.UseCase
	categorizerUC categorizer.UseCase
}

// New creates a new analysis HTTP handler.
func New(l log.Logger, uc analysis.UseCase, categorizerUC categorizer.UseCase) Handler {
	return &handler{l: l, uc: uc, categorizerUC: categorizerUC}
}
