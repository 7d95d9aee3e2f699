package http

import (
	"github.com/gin-gonic/gin"

	"review-insight-srv/internal/categorizer"
	"review-insight-srv/pkg/response"
)

// Analyze runs the full review analysis pipeline for one app.
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: processAnalyzeRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: usecase Analyze failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, output)
}

// Categorize assigns issue categories to an app's negative reviews.
func (h *handler) Categorize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCategorizeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Categorize: processCategorizeRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	reviews, err := h.uc.FetchReviews(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Categorize: fetch reviews failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.categorizerUC.Categorize(ctx, categorizer.CategorizeInput{Reviews: reviews})
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Categorize: usecase Categorize failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCategorizeResp(output))
}
