package http

import "github.com/gin-gonic/gin"

func (h *handler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1/reports")
	{
		api.POST("", h.GenerateReport)
		api.GET("", h.ListReports)
		api.GET("/:report_id", h.GetReport)
		api.GET("/:report_id/download", h.DownloadReport)
	}
}
