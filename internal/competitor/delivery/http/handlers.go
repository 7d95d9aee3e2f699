package http

import (
	"github.com/gin-gonic/gin"

	"review-insight-srv/pkg/response"
)

// Analyze runs the competitor and market analysis for one app.
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "competitor.delivery.http.Analyze: processAnalyzeRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "competitor.delivery.http.Analyze: usecase Analyze failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, output)
}
