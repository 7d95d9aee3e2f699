package http

import (
	"review-insight-srv/internal/analysis"
	"review-insight-srv/internal/categorizer"
)

type analyzeReq struct {
	AppID      string   `json:"app_id" binding:"required"`
	Regions    []string `json:"regions" binding:"required"`
	MinVersion string   `json:"min_version,omitempty"`
	MaxPages   int      `json:"max_pages,omitempty"`
	SkipCache  bool     `json:"skip_cache,omitempty"`
}

func (r analyzeReq) toInput() analysis.AnalyzeInput {
	return analysis.AnalyzeInput{
		AppID:      r.AppID,
		Regions:    r.Regions,
		MinVersion: r.MinVersion,
		MaxPages:   r.MaxPages,
		SkipCache:  r.SkipCache,
	}
}

type categorizeReq struct {
	AppID    string   `json:"app_id" binding:"required"`
	Regions  []string `json:"regions" binding:"required"`
	MaxPages int      `json:"max_pages,omitempty"`
}

func (r categorizeReq) toInput() analysis.AnalyzeInput {
	return analysis.AnalyzeInput{
		AppID:    r.AppID,
		Regions:  r.Regions,
		MaxPages: r.MaxPages,
	}
}

type categoryResp struct {
	ReviewID   string  `json:"review_id"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

type categorizeResp struct {
	Categories       []categoryResp `json:"categories"`
	ProcessingTimeMs int64          `json:"processing_time_ms"`
	Errors           []string       `json:"errors,omitempty"`
	UsedLLM          bool           `json:"used_llm"`
}

func newCategorizeResp(output categorizer.CategorizeOutput) categorizeResp {
	resp := categorizeResp{
		ProcessingTimeMs: output.ProcessingTimeMs,
		Errors:           output.Errors,
		UsedLLM:          output.UsedLLM,
		Categories:       make([]categoryResp, len(output.Categories)),
	}
	for i, c := range output.Categories {
		resp.Categories[i] = categoryResp{
			ReviewID:   c.ReviewID,
			Category:   c.Category,
			Confidence: c.Confidence,
			Reasoning:  c.Reasoning,
		}
	}
	return resp
}
