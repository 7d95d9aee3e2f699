package http

import "review-insight-srv/internal/report"

type generateReportReq struct {
	AppID      string   `json:"app_id" binding:"required"`
	Regions    []string `json:"regions" binding:"required"`
	MinVersion string   `json:"min_version,omitempty"`
	Title      string   `json:"title,omitempty"`
}

func (r generateReportReq) toInput() report.GenerateInput {
	return report.GenerateInput{
		AppID:      r.AppID,
		Regions:    r.Regions,
		MinVersion: r.MinVersion,
		Title:      r.Title,
	}
}

type getReportReq struct {
	ReportID string
}

func (r getReportReq) toInput() report.GetReportInput {
	return report.GetReportInput{ReportID: r.ReportID}
}

type downloadReportReq struct {
	ReportID string
}

func (r downloadReportReq) toInput() report.DownloadReportInput {
	return report.DownloadReportInput{ReportID: r.ReportID}
}

type listReportsReq struct {
	AppID  string `form:"app_id"`
	Status string `form:"status"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReportsReq) toInput() report.ListReportsInput {
	return report.ListReportsInput{
		AppID:  r.AppID,
		Status: r.Status,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

type listReportsResp struct {
	Reports []report.ReportOutput `json:"reports"`
	Total   int                   `json:"total"`
}

func newListReportsResp(reports []report.ReportOutput) listReportsResp {
	return listReportsResp{
		Reports: reports,
		Total:   len(reports),
	}
}
