package http

import "review-insight-srv/internal/competitor"

type analyzeReq struct {
	AppID   string   `json:"app_id" binding:"required"`
	Regions []string `json:"regions" binding:"required"`
}

func (r analyzeReq) toInput() competitor.AnalyzeInput {
	return competitor.AnalyzeInput{
		AppID:   r.AppID,
		Regions: r.Regions,
	}
}
