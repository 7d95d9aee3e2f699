package postgre

import (
	"context"
	"database/sql"
	"time"

	"review-insight-srv/internal/model"
	"review-insight-srv/internal/report/repository"
)

// CreateReport inserts a new PROCESSING report record.
func (r *implRepository) CreateReport(ctx context.Context, opts repository.CreateReportOptions) (*model.Report, error) {
	now := time.Now()

	const query = `
		INSERT INTO reports (id, app_id, regions, title, params_hash, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		opts.ID, opts.AppID, opts.Regions, opts.Title, opts.ParamsHash,
		"PROCESSING", now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.CreateReport: insert failed: %v", err)
		return nil, repository.ErrReportCreateFailed
	}

	return &model.Report{
		ID:         opts.ID,
		AppID:      opts.AppID,
		Regions:    opts.Regions,
		Title:      opts.Title,
		ParamsHash: opts.ParamsHash,
		Status:     "PROCESSING",
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// GetReportByID gets a report by primary key.
func (r *implRepository) GetReportByID(ctx context.Context, id string) (*model.Report, error) {
	row := r.db.QueryRowContext(ctx, selectReport+` WHERE id = $1`, id)

	rpt, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrReportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.GetReportByID: query failed: %v", err)
		return nil, err
	}

	return rpt, nil
}

// FindByParamsHash finds the most recent report matching the params hash
// and optional status. A missing report is not an error here.
func (r *implRepository) FindByParamsHash(ctx context.Context, opts repository.FindByParamsHashOptions) (*model.Report, error) {
	query, args := r.buildFindByParamsHashQuery(opts)

	row := r.db.QueryRowContext(ctx, query, args...)

	rpt, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.FindByParamsHash: query failed: %v", err)
		return nil, err
	}

	return rpt, nil
}

// UpdateCompleted marks a report as COMPLETED with its output metadata.
func (r *implRepository) UpdateCompleted(ctx context.Context, opts repository.UpdateCompletedOptions) error {
	const query = `
		UPDATE reports
		SET status = 'COMPLETED',
		    file_url = $2,
		    file_size_bytes = $3,
		    file_format = $4,
		    reviews_analyzed = $5,
		    sections_count = $6,
		    generation_time_ms = $7,
		    completed_at = $8,
		    updated_at = $9
		WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query,
		opts.ReportID, opts.FileURL, opts.FileSizeBytes, opts.FileFormat,
		opts.ReviewsAnalyzed, opts.SectionsCount, opts.GenerationTimeMs,
		opts.CompletedAt, time.Now(),
	)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.UpdateCompleted: update failed: %v", err)
		return repository.ErrReportUpdateFailed
	}

	return nil
}

// UpdateFailed marks a report as FAILED with an error message.
func (r *implRepository) UpdateFailed(ctx context.Context, opts repository.UpdateFailedOptions) error {
	const query = `
		UPDATE reports
		SET status = 'FAILED',
		    error_message = $2,
		    updated_at = $3
		WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, opts.ReportID, opts.ErrorMessage, time.Now())
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.UpdateFailed: update failed: %v", err)
		return repository.ErrReportUpdateFailed
	}

	return nil
}

// ListReports lists reports with filters and pagination, most recent
// first.
func (r *implRepository) ListReports(ctx context.Context, opts repository.ListReportsOptions) ([]*model.Report, error) {
	query, args := r.buildListReportsQuery(opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListReports: query failed: %v", err)
		return nil, err
	}
	defer rows.Close()

	var result []*model.Report
	for rows.Next() {
		rpt, err := scanReport(rows)
		if err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.ListReports: scan failed: %v", err)
			return nil, err
		}
		result = append(result, rpt)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListReports: rows failed: %v", err)
		return nil, err
	}

	return result, nil
}
