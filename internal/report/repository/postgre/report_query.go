package postgre

import (
	"fmt"
	"strings"

	"review-insight-srv/internal/report/repository"
)

// buildFindByParamsHashQuery builds the query for FindByParamsHash.
func (r *implRepository) buildFindByParamsHashQuery(opts repository.FindByParamsHashOptions) (string, []any) {
	conditions := []string{"params_hash = $1"}
	args := []any{opts.ParamsHash}

	if opts.Status != "" {
		args = append(args, opts.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := selectReport +
		" WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY created_at DESC LIMIT 1"

	return query, args
}

// buildListReportsQuery builds the query for ListReports.
func (r *implRepository) buildListReportsQuery(opts repository.ListReportsOptions) (string, []any) {
	var conditions []string
	var args []any

	if opts.AppID != "" {
		args = append(args, opts.AppID)
		conditions = append(conditions, fmt.Sprintf("app_id = $%d", len(args)))
	}
	if opts.Status != "" {
		args = append(args, opts.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := selectReport
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	return query, args
}
