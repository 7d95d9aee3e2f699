package http

import "github.com/gin-gonic/gin"

func (h *handler) processGenerateReportRequest(c *gin.Context) (generateReportReq, error) {
	var req generateReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processGetReportRequest(c *gin.Context) getReportReq {
	return getReportReq{ReportID: c.Param("report_id")}
}

func (h *handler) processDownloadReportRequest(c *gin.Context) downloadReportReq {
	return downloadReportReq{ReportID: c.Param("report_id")}
}

func (h *handler) processListReportsRequest(c *gin.Context) (listReportsReq, error) {
	var req listReportsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
