package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"review-insight-srv/internal/model"
	"review-insight-srv/internal/report"
	"review-insight-srv/internal/report/repository"
	"review-insight-srv/pkg/minio"
)

// Generate creates a new report, or returns the existing one when an
// identical request is already processing or completed recently. The
// generation itself runs in the background.
func (uc *implUseCase) Generate(ctx context.Context, input report.GenerateInput) (report.GenerateOutput, error) {
	input.AppID = strings.TrimSpace(input.AppID)
	if input.AppID == "" {
		return report.GenerateOutput{}, report.ErrAppIDRequired
	}
	if len(input.Regions) == 0 {
		return report.GenerateOutput{}, report.ErrNoRegions
	}

	regions := normalizeRegions(input.Regions)
	paramsHash := generateParamsHash(input.AppID, regions, input.MinVersion)

	existing, err := uc.repo.FindByParamsHash(ctx, repository.FindByParamsHashOptions{
		ParamsHash: paramsHash,
		Status:     report.StatusProcessing,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: check existing report failed: %v", err)
		return report.GenerateOutput{}, report.ErrGenerationFailed
	}
	if existing != nil {
		return report.GenerateOutput{
			ReportID: existing.ID,
			Status:   existing.Status,
			Message:  "Report is already being generated",
		}, nil
	}

	completed, err := uc.repo.FindByParamsHash(ctx, repository.FindByParamsHashOptions{
		ParamsHash: paramsHash,
		Status:     report.StatusCompleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: check completed report failed: %v", err)
		return report.GenerateOutput{}, report.ErrGenerationFailed
	}
	if completed != nil && time.Since(completed.CreatedAt) < uc.cfg.ReuseWindow {
		return report.GenerateOutput{
			ReportID: completed.ID,
			Status:   completed.Status,
			Message:  "Report already completed",
		}, nil
	}

	rpt, err := uc.repo.CreateReport(ctx, repository.CreateReportOptions{
		ID:         uuid.New().String(),
		AppID:      input.AppID,
		Regions:    regions,
		Title:      input.Title,
		ParamsHash: paramsHash,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: create report failed: %v", err)
		return report.GenerateOutput{}, report.ErrGenerationFailed
	}

	go uc.generateInBackground(rpt.ID, input)

	return report.GenerateOutput{
		ReportID: rpt.ID,
		Status:   report.StatusProcessing,
		Message:  "Report generation started",
	}, nil
}

// GetReport returns the current status and metadata of a report.
func (uc *implUseCase) GetReport(ctx context.Context, input report.GetReportInput) (report.ReportOutput, error) {
	rpt, err := uc.repo.GetReportByID(ctx, input.ReportID)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.GetReport: get report failed: %v", err)
		return report.ReportOutput{}, report.ErrReportNotFound
	}

	return buildReportOutput(rpt), nil
}

// DownloadReport generates a presigned download URL for a completed
// report.
func (uc *implUseCase) DownloadReport(ctx context.Context, input report.DownloadReportInput) (report.DownloadOutput, error) {
	rpt, err := uc.repo.GetReportByID(ctx, input.ReportID)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.DownloadReport: get report failed: %v", err)
		return report.DownloadOutput{}, report.ErrReportNotFound
	}

	if rpt.Status != report.StatusCompleted {
		return report.DownloadOutput{}, report.ErrReportNotCompleted
	}

	presigned, err := uc.minio.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.cfg.ReportBucket,
		ObjectName: rpt.FileURL,
		Expiry:     uc.cfg.URLExpiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.DownloadReport: presign failed: %v", err)
		return report.DownloadOutput{}, report.ErrDownloadURLFailed
	}

	return report.DownloadOutput{
		DownloadURL: presigned.URL,
		ExpiresAt:   presigned.ExpiresAt.Format(time.RFC3339),
		FileName:    fmt.Sprintf("report_%s.%s", rpt.ID, rpt.FileFormat),
		FileSize:    rpt.FileSizeBytes,
	}, nil
}

// ListReports lists reports, most recent first.
func (uc *implUseCase) ListReports(ctx context.Context, input report.ListReportsInput) ([]report.ReportOutput, error) {
	rpts, err := uc.repo.ListReports(ctx, repository.ListReportsOptions{
		AppID:  input.AppID,
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ListReports: list reports failed: %v", err)
		return nil, err
	}

	result := make([]report.ReportOutput, 0, len(rpts))
	for _, rpt := range rpts {
		result = append(result, buildReportOutput(rpt))
	}

	return result, nil
}

// normalizeRegions produces the canonical stored form: lowercased,
// sorted, comma-joined.
func normalizeRegions(regions []string) string {
	normalized := make([]string, 0, len(regions))
	for _, r := range regions {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(r)))
	}
	sort.Strings(normalized)
	return strings.Join(normalized, ",")
}

// generateParamsHash creates a SHA-256 hash over the request parameters
// for deduplication.
func generateParamsHash(appID, regions, minVersion string) string {
	b, _ := json.Marshal(map[string]string{
		"app_id":      appID,
		"regions":     regions,
		"min_version": minVersion,
	})
	return fmt.Sprintf("%x", sha256.Sum256(b))
}

// buildReportOutput converts a model.Report to report.ReportOutput.
func buildReportOutput(rpt *model.Report) report.ReportOutput {
	output := report.ReportOutput{
		ID:               rpt.ID,
		AppID:            rpt.AppID,
		Regions:          rpt.Regions,
		Title:            rpt.Title,
		Status:           rpt.Status,
		ErrorMessage:     rpt.ErrorMessage,
		FileFormat:       rpt.FileFormat,
		FileSizeBytes:    rpt.FileSizeBytes,
		ReviewsAnalyzed:  rpt.ReviewsAnalyzed,
		SectionsCount:    rpt.SectionsCount,
		GenerationTimeMs: rpt.GenerationTimeMs,
		CreatedAt:        rpt.CreatedAt.Format(time.RFC3339),
	}

	if rpt.CompletedAt != nil {
		t := rpt.CompletedAt.Format(time.RFC3339)
		output.CompletedAt = &t
	}

	return output
}
