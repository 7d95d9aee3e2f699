package http

import (
	"github.com/gin-gonic/gin"

	"review-insight-srv/pkg/response"
)

// GenerateReport starts an asynchronous report generation run.
func (h *handler) GenerateReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GenerateReport: processGenerateReportRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GenerateReport: usecase Generate failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, o)
}

// GetReport returns the current status and metadata of a report.
func (h *handler) GetReport(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processGetReportRequest(c)

	o, err := h.uc.GetReport(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GetReport: usecase GetReport failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, o)
}

// DownloadReport returns a presigned download URL for a completed
// report.
func (h *handler) DownloadReport(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processDownloadReportRequest(c)

	o, err := h.uc.DownloadReport(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.DownloadReport: usecase DownloadReport failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, o)
}

// ListReports lists reports, most recent first.
func (h *handler) ListReports(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReportsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReports: processListReportsRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.ListReports(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReports: usecase ListReports failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListReportsResp(o))
}
