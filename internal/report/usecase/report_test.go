package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"review-insight-srv/internal/analysis"
	"review-insight-srv/internal/model"
	"review-insight-srv/internal/report"
	"review-insight-srv/internal/report/repository"
	"review-insight-srv/internal/sentiment"
	"review-insight-srv/internal/steps"
	"review-insight-srv/pkg/log"
	"review-insight-srv/pkg/minio"
)

type memRepo struct {
	mu      sync.Mutex
	reports map[string]*model.Report
}

func newMemRepo() *memRepo {
	return &memRepo{reports: make(map[string]*model.Report)}
}

func (m *memRepo) CreateReport(ctx context.Context, opts repository.CreateReportOptions) (*model.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rpt := &model.Report{
		ID:         opts.ID,
		AppID:      opts.AppID,
		Regions:    opts.Regions,
		Title:      opts.Title,
		ParamsHash: opts.ParamsHash,
		Status:     report.StatusProcessing,
		CreatedAt:  time.Now(),
	}
	m.reports[opts.ID] = rpt
	return rpt, nil
}

func (m *memRepo) GetReportByID(ctx context.Context, id string) (*model.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rpt, ok := m.reports[id]
	if !ok {
		return nil, repository.ErrReportNotFound
	}
	return rpt, nil
}

func (m *memRepo) FindByParamsHash(ctx context.Context, opts repository.FindByParamsHashOptions) (*model.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rpt := range m.reports {
		if rpt.ParamsHash == opts.ParamsHash && (opts.Status == "" || rpt.Status == opts.Status) {
			return rpt, nil
		}
	}
	return nil, nil
}

func (m *memRepo) UpdateCompleted(ctx context.Context, opts repository.UpdateCompletedOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rpt, ok := m.reports[opts.ReportID]
	if !ok {
		return repository.ErrReportUpdateFailed
	}
	rpt.Status = report.StatusCompleted
	rpt.FileURL = opts.FileURL
	rpt.FileSizeBytes = opts.FileSizeBytes
	rpt.FileFormat = opts.FileFormat
	rpt.ReviewsAnalyzed = opts.ReviewsAnalyzed
	rpt.SectionsCount = opts.SectionsCount
	rpt.GenerationTimeMs = opts.GenerationTimeMs
	completedAt := opts.CompletedAt
	rpt.CompletedAt = &completedAt
	return nil
}

func (m *memRepo) UpdateFailed(ctx context.Context, opts repository.UpdateFailedOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rpt, ok := m.reports[opts.ReportID]
	if !ok {
		return repository.ErrReportUpdateFailed
	}
	rpt.Status = report.StatusFailed
	rpt.ErrorMessage = opts.ErrorMessage
	return nil
}

func (m *memRepo) ListReports(ctx context.Context, opts repository.ListReportsOptions) ([]*model.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Report
	for _, rpt := range m.reports {
		if opts.AppID != "" && rpt.AppID != opts.AppID {
			continue
		}
		if opts.Status != "" && rpt.Status != opts.Status {
			continue
		}
		out = append(out, rpt)
	}
	return out, nil
}

type fakeAnalysis struct {
	analyze func(ctx context.Context, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error)
}

func (f *fakeAnalysis) Analyze(ctx context.Context, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	return f.analyze(ctx, input)
}

func (f *fakeAnalysis) FetchReviews(ctx context.Context, input analysis.AnalyzeInput) ([]model.Review, error) {
	return nil, errors.New("not implemented")
}

type fakeMinio struct {
	mu       sync.Mutex
	uploads  []*minio.UploadRequest
	uploaded []byte
	failUp   bool
}

func (f *fakeMinio) EnsureBucket(ctx context.Context, bucketName string) error { return nil }

func (f *fakeMinio) UploadFile(ctx context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUp {
		return nil, errors.New("bucket unavailable")
	}
	buf := make([]byte, req.Size)
	if _, err := req.Reader.Read(buf); err != nil {
		return nil, err
	}
	f.uploads = append(f.uploads, req)
	f.uploaded = buf
	return &minio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName, Size: req.Size}, nil
}

func (f *fakeMinio) GetPresignedDownloadURL(ctx context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error) {
	return &minio.PresignedURLResponse{
		URL:       "https://storage.local/" + req.BucketName + "/" + req.ObjectName,
		ExpiresAt: time.Now().Add(req.Expiry),
	}, nil
}

func (f *fakeMinio) HealthCheck(ctx context.Context) error { return nil }

func sampleOutput() analysis.AnalyzeOutput {
	return analysis.AnalyzeOutput{
		AppID:   "100",
		Regions: []string{"us"},
		Metadata: &model.AppMetadata{
			TrackName: "TestApp", SellerName: "Tester",
			PrimaryGenreName: "Finance", Version: "2.0",
			AverageRating: 4.3, UserRatingCount: 1200,
		},
		BasicStats: analysis.BasicStats{
			TotalReviews:       5,
			AverageRating:      3.4,
			RatingDistribution: map[int]int{1: 1, 3: 2, 5: 2},
		},
		SentimentAnalysis: sentiment.ScoreOutput{Positive: 2, Negative: 1, Neutral: 2, Total: 5},
		ActionableSteps: steps.GenerateOutput{
			Steps: []model.ActionableStep{
				{ID: "s1", Title: "Fix reported crashes", Description: "Crashes dominate negative feedback.", Priority: "critical", Category: "bug", Timeframe: "immediate"},
				{ID: "s2", Title: "Improve onboarding", Description: "New users report confusion.", Priority: "medium", Category: "ui", Timeframe: "short-term"},
			},
			Summary: model.StepSummary{TotalSteps: 2, CriticalCount: 1, MediumCount: 1},
		},
		GeneratedAt: time.Now(),
	}
}

func newTestUseCase(repo *memRepo, fa *fakeAnalysis, fm *fakeMinio) *implUseCase {
	return New(repo, fa, fm, log.NewNop(), Config{}).(*implUseCase)
}

func TestGenerateValidation(t *testing.T) {
	uc := newTestUseCase(newMemRepo(), &fakeAnalysis{}, &fakeMinio{})

	t.Run("missing app id", func(t *testing.T) {
		_, err := uc.Generate(context.Background(), report.GenerateInput{Regions: []string{"us"}})
		if !errors.Is(err, report.ErrAppIDRequired) {
			t.Errorf("expected ErrAppIDRequired, got %v", err)
		}
	})

	t.Run("empty regions", func(t *testing.T) {
		_, err := uc.Generate(context.Background(), report.GenerateInput{AppID: "100"})
		if !errors.Is(err, report.ErrNoRegions) {
			t.Errorf("expected ErrNoRegions, got %v", err)
		}
	})
}

func TestGenerateDeduplicatesProcessing(t *testing.T) {
	repo := newMemRepo()
	fa := &fakeAnalysis{
		analyze: func(ctx context.Context, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
			// Keep the first run in flight while the second request lands.
			time.Sleep(200 * time.Millisecond)
			return sampleOutput(), nil
		},
	}
	uc := newTestUseCase(repo, fa, &fakeMinio{})

	input := report.GenerateInput{AppID: "100", Regions: []string{"US", "de"}}

	first, err := uc.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Status != report.StatusProcessing {
		t.Fatalf("expected PROCESSING, got %q", first.Status)
	}

	// Region order and case must not defeat deduplication.
	second, err := uc.Generate(context.Background(), report.GenerateInput{AppID: "100", Regions: []string{"DE", "us"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ReportID != first.ReportID {
		t.Errorf("expected the in-flight report to be reused, got %q vs %q", second.ReportID, first.ReportID)
	}
}

func TestGenerateReusesRecentCompleted(t *testing.T) {
	repo := newMemRepo()
	uc := newTestUseCase(repo, &fakeAnalysis{}, &fakeMinio{})

	hash := generateParamsHash("100", "us", "")
	completedAt := time.Now()
	repo.reports["done"] = &model.Report{
		ID: "done", AppID: "100", Regions: "us", ParamsHash: hash,
		Status: report.StatusCompleted, CreatedAt: time.Now().Add(-10 * time.Minute),
		CompletedAt: &completedAt,
	}

	out, err := uc.Generate(context.Background(), report.GenerateInput{AppID: "100", Regions: []string{"us"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ReportID != "done" || out.Status != report.StatusCompleted {
		t.Errorf("expected reuse of completed report, got %+v", out)
	}
}

func TestGenerateInBackgroundCompletes(t *testing.T) {
	repo := newMemRepo()
	fm := &fakeMinio{}
	fa := &fakeAnalysis{
		analyze: func(ctx context.Context, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
			return sampleOutput(), nil
		},
	}
	uc := newTestUseCase(repo, fa, fm)

	repo.reports["r1"] = &model.Report{ID: "r1", AppID: "100", Status: report.StatusProcessing, CreatedAt: time.Now()}

	uc.generateInBackground("r1", report.GenerateInput{AppID: "100", Regions: []string{"us"}})

	rpt := repo.reports["r1"]
	if rpt.Status != report.StatusCompleted {
		t.Fatalf("expected COMPLETED, got %q (error %q)", rpt.Status, rpt.ErrorMessage)
	}
	if rpt.FileURL != "reports/r1.md" || rpt.FileFormat != "md" {
		t.Errorf("unexpected file metadata: %q %q", rpt.FileURL, rpt.FileFormat)
	}
	if rpt.ReviewsAnalyzed != 5 {
		t.Errorf("reviews analyzed = %d, want 5", rpt.ReviewsAnalyzed)
	}
	if rpt.SectionsCount == 0 {
		t.Error("expected at least one compiled section")
	}
	if rpt.FileSizeBytes != int64(len(fm.uploaded)) {
		t.Errorf("file size %d does not match uploaded bytes %d", rpt.FileSizeBytes, len(fm.uploaded))
	}
}

func TestGenerateInBackgroundAnalysisFailure(t *testing.T) {
	repo := newMemRepo()
	fa := &fakeAnalysis{
		analyze: func(ctx context.Context, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
			return analysis.AnalyzeOutput{}, errors.New("store unreachable")
		},
	}
	uc := newTestUseCase(repo, fa, &fakeMinio{})

	repo.reports["r1"] = &model.Report{ID: "r1", Status: report.StatusProcessing, CreatedAt: time.Now()}

	uc.generateInBackground("r1", report.GenerateInput{AppID: "100", Regions: []string{"us"}})

	rpt := repo.reports["r1"]
	if rpt.Status != report.StatusFailed {
		t.Fatalf("expected FAILED, got %q", rpt.Status)
	}
	if !strings.Contains(rpt.ErrorMessage, "store unreachable") {
		t.Errorf("error message should carry the cause, got %q", rpt.ErrorMessage)
	}
}

func TestGenerateInBackgroundUploadFailure(t *testing.T) {
	repo := newMemRepo()
	fa := &fakeAnalysis{
		analyze: func(ctx context.Context, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
			return sampleOutput(), nil
		},
	}
	uc := newTestUseCase(repo, fa, &fakeMinio{failUp: true})

	repo.reports["r1"] = &model.Report{ID: "r1", Status: report.StatusProcessing, CreatedAt: time.Now()}

	uc.generateInBackground("r1", report.GenerateInput{AppID: "100", Regions: []string{"us"}})

	if repo.reports["r1"].Status != report.StatusFailed {
		t.Fatalf("expected FAILED after upload error, got %q", repo.reports["r1"].Status)
	}
}

func TestDownloadReport(t *testing.T) {
	repo := newMemRepo()
	uc := newTestUseCase(repo, &fakeAnalysis{}, &fakeMinio{})

	completedAt := time.Now()
	repo.reports["done"] = &model.Report{
		ID: "done", Status: report.StatusCompleted,
		FileURL: "reports/done.md", FileFormat: "md", FileSizeBytes: 1234,
		CompletedAt: &completedAt, CreatedAt: time.Now(),
	}
	repo.reports["pending"] = &model.Report{
		ID: "pending", Status: report.StatusProcessing, CreatedAt: time.Now(),
	}

	t.Run("completed report", func(t *testing.T) {
		out, err := uc.DownloadReport(context.Background(), report.DownloadReportInput{ReportID: "done"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.FileName != "report_done.md" {
			t.Errorf("file name = %q, want report_done.md", out.FileName)
		}
		if out.FileSize != 1234 {
			t.Errorf("file size = %d, want 1234", out.FileSize)
		}
		if !strings.Contains(out.DownloadURL, "reports/done.md") {
			t.Errorf("download URL should point at the object, got %q", out.DownloadURL)
		}
	})

	t.Run("processing report", func(t *testing.T) {
		_, err := uc.DownloadReport(context.Background(), report.DownloadReportInput{ReportID: "pending"})
		if !errors.Is(err, report.ErrReportNotCompleted) {
			t.Errorf("expected ErrReportNotCompleted, got %v", err)
		}
	})

	t.Run("unknown report", func(t *testing.T) {
		_, err := uc.DownloadReport(context.Background(), report.DownloadReportInput{ReportID: "nope"})
		if !errors.Is(err, report.ErrReportNotFound) {
			t.Errorf("expected ErrReportNotFound, got %v", err)
		}
	})
}

func TestNormalizeRegions(t *testing.T) {
	got := normalizeRegions([]string{" DE", "us ", "Fr"})
	if got != "de,fr,us" {
		t.Errorf("normalizeRegions = %q, want de,fr,us", got)
	}
}

func TestCompileMarkdown(t *testing.T) {
	markdown, sections := compileMarkdown("", sampleOutput())

	if !strings.Contains(markdown, "# Review Analysis Report for TestApp") {
		t.Error("expected a default title derived from the app name")
	}
	if !strings.Contains(markdown, "Fix reported crashes") {
		t.Error("expected actionable steps in the document")
	}
	// Critical steps come before medium ones.
	if strings.Index(markdown, "Fix reported crashes") > strings.Index(markdown, "Improve onboarding") {
		t.Error("steps should be ordered by priority")
	}
	if sections < 3 {
		t.Errorf("expected at least 3 sections, got %d", sections)
	}

	t.Run("custom title", func(t *testing.T) {
		markdown, _ := compileMarkdown("Q3 Review Digest", sampleOutput())
		if !strings.Contains(markdown, "# Q3 Review Digest") {
			t.Error("custom title should be used verbatim")
		}
	})
}
