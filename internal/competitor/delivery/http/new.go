package http

import (
	"github.com/gin-gonic/gin"

	"review-insight-srv/internal/competitor"
	"review-insight-srv/pkg/log"
)

// Handler registers the competitor HTTP routes.
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l  log.Logger
	uc competitor.UseCase
}

// New creates a new competitor HTTP handler.
func New(l log.Logger, uc competitor.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
