package postgre

import (
	"database/sql"

	"review-insight-srv/internal/model"
)

const selectReport = `
	SELECT id, app_id, regions, title, params_hash, status,
	       error_message, file_url, file_size_bytes, file_format,
	       reviews_analyzed, sections_count, generation_time_ms,
	       completed_at, created_at, updated_at
	FROM reports`

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanReport maps one reports row onto the domain model, folding the
// nullable output columns into zero values.
func scanReport(row rowScanner) (*model.Report, error) {
	var (
		rpt           model.Report
		title         sql.NullString
		errorMessage  sql.NullString
		fileURL       sql.NullString
		fileSizeBytes sql.NullInt64
		fileFormat    sql.NullString
		reviews       sql.NullInt64
		sections      sql.NullInt64
		generationMs  sql.NullInt64
		completedAt   sql.NullTime
	)

	err := row.Scan(
		&rpt.ID, &rpt.AppID, &rpt.Regions, &title, &rpt.ParamsHash, &rpt.Status,
		&errorMessage, &fileURL, &fileSizeBytes, &fileFormat,
		&reviews, &sections, &generationMs,
		&completedAt, &rpt.CreatedAt, &rpt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rpt.Title = title.String
	rpt.ErrorMessage = errorMessage.String
	rpt.FileURL = fileURL.String
	rpt.FileSizeBytes = fileSizeBytes.Int64
	rpt.FileFormat = fileFormat.String
	rpt.ReviewsAnalyzed = int(reviews.Int64)
	rpt.SectionsCount = int(sections.Int64)
	rpt.GenerationTimeMs = generationMs.Int64
	if completedAt.Valid {
		t := completedAt.Time
		rpt.CompletedAt = &t
	}

	return &rpt, nil
}
