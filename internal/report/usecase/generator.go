package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"review-insight-srv/internal/analysis"
	"review-insight-srv/internal/report"
	"review-insight-srv/internal/report/repository"
	"review-insight-srv/pkg/minio"
)

// generateInBackground runs the full report pipeline: analyze the app,
// compile the markdown document, upload it and mark the record
// completed. Called in a goroutine, so it must handle its own errors.
func (uc *implUseCase) generateInBackground(reportID string, input report.GenerateInput) {
	ctx := context.Background()
	startTime := time.Now()

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "report.usecase.generateInBackground: panic recovered: %v", r)
			_ = uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
				ReportID:     reportID,
				ErrorMessage: fmt.Sprintf("internal panic: %v", r),
			})
		}
	}()

	uc.l.Infof(ctx, "report.usecase.generateInBackground: starting generation for report %s", reportID)

	output, err := uc.analysisUC.Analyze(ctx, analysis.AnalyzeInput{
		AppID:      input.AppID,
		Regions:    input.Regions,
		MinVersion: input.MinVersion,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.generateInBackground: analysis failed: %v", err)
		_ = uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
			ReportID:     reportID,
			ErrorMessage: fmt.Sprintf("analysis failed: %v", err),
		})
		return
	}

	markdown, sectionsCount := compileMarkdown(input.Title, output)
	fileBytes := []byte(markdown)

	objectName := fmt.Sprintf("reports/%s.md", reportID)
	_, err = uc.minio.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.cfg.ReportBucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(fileBytes),
		Size:        int64(len(fileBytes)),
		ContentType: "text/markdown; charset=utf-8",
		Metadata: map[string]string{
			"report_id": reportID,
			"app_id":    input.AppID,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.generateInBackground: upload failed: %v", err)
		_ = uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
			ReportID:     reportID,
			ErrorMessage: fmt.Sprintf("upload failed: %v", err),
		})
		return
	}

	completedAt := time.Now()
	generationTimeMs := completedAt.Sub(startTime).Milliseconds()

	err = uc.repo.UpdateCompleted(ctx, repository.UpdateCompletedOptions{
		ReportID:         reportID,
		FileURL:          objectName,
		FileSizeBytes:    int64(len(fileBytes)),
		FileFormat:       "md",
		ReviewsAnalyzed:  output.BasicStats.TotalReviews,
		SectionsCount:    sectionsCount,
		GenerationTimeMs: generationTimeMs,
		CompletedAt:      completedAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.generateInBackground: update completed failed: %v", err)
		return
	}

	uc.l.Infof(ctx, "report.usecase.generateInBackground: report %s completed in %dms", reportID, generationTimeMs)
}
