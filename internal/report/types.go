package report

const (
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
)

// GenerateInput identifies the analysis scope one report covers.
type GenerateInput struct {
	AppID      string
	Regions    []string
	MinVersion string
	Title      string
}

type GetReportInput struct {
	ReportID string
}

type DownloadReportInput struct {
	ReportID string
}

type ListReportsInput struct {
	AppID  string
	Status string
	Limit  int
	Offset int
}

type GenerateOutput struct {
	ReportID string `json:"report_id"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

type ReportOutput struct {
	ID               string  `json:"id"`
	AppID            string  `json:"app_id"`
	Regions          string  `json:"regions"`
	Title            string  `json:"title"`
	Status           string  `json:"status"`
	ErrorMessage     string  `json:"error_message,omitempty"`
	FileFormat       string  `json:"file_format,omitempty"`
	FileSizeBytes    int64   `json:"file_size_bytes,omitempty"`
	ReviewsAnalyzed  int     `json:"reviews_analyzed,omitempty"`
	SectionsCount    int     `json:"sections_count,omitempty"`
	GenerationTimeMs int64   `json:"generation_time_ms,omitempty"`
	CompletedAt      *string `json:"completed_at,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

type DownloadOutput struct {
	DownloadURL string `json:"download_url"`
	ExpiresAt   string `json:"expires_at"`
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
}
