package report

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
	GetReport(ctx context.Context, input GetReportInput) (ReportOutput, error)
	DownloadReport(ctx context.Context, input DownloadReportInput) (DownloadOutput, error)
	ListReports(ctx context.Context, input ListReportsInput) ([]ReportOutput, error)
}
