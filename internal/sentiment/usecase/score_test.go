package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"review-insight-srv/internal/model"
	"review-insight-srv/internal/sentiment"
	"review-insight-srv/pkg/log"
	"review-insight-srv/pkg/sentimodel"
)

type fakeModel struct {
	classify func(texts []string) ([]sentimodel.Label, error)
}

func (f *fakeModel) Classify(_ context.Context, texts []string) ([]sentimodel.Label, error) {
	return f.classify(texts)
}

func TestScoreEmptyInput(t *testing.T) {
	uc := New(nil, log.NewNop(), Config{})
	out := uc.Score(context.Background(), sentiment.ScoreInput{})
	if out.Total != 0 || out.Positive != 0 || out.Negative != 0 || out.Neutral != 0 {
		t.Errorf("empty input must yield all-zero counts, got %+v", out)
	}
}

func TestScoreRatingFallback(t *testing.T) {
	uc := New(nil, log.NewNop(), Config{Enabled: false})
	out := uc.Score(context.Background(), sentiment.ScoreInput{
		Reviews: []model.Review{{Rating: 5}, {Rating: 1}, {Rating: 3}},
	})
	want := sentiment.ScoreOutput{Positive: 1, Negative: 1, Neutral: 1, Total: 3}
	if out != want {
		t.Errorf("Score = %+v, want %+v", out, want)
	}
}

func TestScoreModelPath(t *testing.T) {
	m := &fakeModel{classify: func(texts []string) ([]sentimodel.Label, error) {
		labels := make([]sentimodel.Label, len(texts))
		for i := range labels {
			labels[i] = sentimodel.Label{Label: "positive", Score: 0.95}
		}
		return labels, nil
	}}
	uc := New(m, log.NewNop(), Config{Enabled: true, BatchDelayMs: 1})

	reviews := make([]model.Review, 7)
	out := uc.Score(context.Background(), sentiment.ScoreInput{Reviews: reviews})
	if out.Positive != 7 || out.Total != 7 {
		t.Errorf("Score = %+v, want all positive out of 7", out)
	}
	if !out.UsedModel {
		t.Error("UsedModel = false, want true")
	}
}

func TestScoreCountConservation(t *testing.T) {
	// Mixed labels across batch sizes: counts must always sum to total.
	for _, n := range []int{1, 3, 10, 11, 25} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			m := &fakeModel{classify: func(texts []string) ([]sentimodel.Label, error) {
				labels := make([]sentimodel.Label, len(texts))
				for i := range labels {
					switch i % 3 {
					case 0:
						labels[i] = sentimodel.Label{Label: "LABEL_2"}
					case 1:
						labels[i] = sentimodel.Label{Label: "LABEL_0"}
					default:
						labels[i] = sentimodel.Label{Label: "LABEL_1"}
					}
				}
				return labels, nil
			}}
			uc := New(m, log.NewNop(), Config{Enabled: true, BatchDelayMs: 1})

			out := uc.Score(context.Background(), sentiment.ScoreInput{Reviews: make([]model.Review, n)})
			if got := out.Positive + out.Negative + out.Neutral; got != out.Total || out.Total != n {
				t.Errorf("pos+neg+neu = %d, total = %d, want both %d", got, out.Total, n)
			}
		})
	}
}

func TestScoreBatchFailureDefaultsToNeutral(t *testing.T) {
	var calls int
	m := &fakeModel{classify: func(texts []string) ([]sentimodel.Label, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("model overloaded")
		}
		labels := make([]sentimodel.Label, len(texts))
		for i := range labels {
			labels[i] = sentimodel.Label{Label: "negative"}
		}
		return labels, nil
	}}
	uc := New(m, log.NewNop(), Config{Enabled: true, BatchSize: 2, BatchDelayMs: 1})

	out := uc.Score(context.Background(), sentiment.ScoreInput{Reviews: make([]model.Review, 4)})
	if out.Total != 4 {
		t.Fatalf("total = %d, want 4", out.Total)
	}
	if out.Neutral != 2 || out.Negative != 2 {
		t.Errorf("Score = %+v, want 2 neutral (failed batch) and 2 negative", out)
	}
}

func TestScoreTotalModelFailureFallsBackToRatings(t *testing.T) {
	m := &fakeModel{classify: func([]string) ([]sentimodel.Label, error) {
		return nil, errors.New("connection refused")
	}}
	uc := New(m, log.NewNop(), Config{Enabled: true, BatchDelayMs: 1})

	out := uc.Score(context.Background(), sentiment.ScoreInput{
		Reviews: []model.Review{{Rating: 5}, {Rating: 4}, {Rating: 1}},
	})
	want := sentiment.ScoreOutput{Positive: 2, Negative: 1, Total: 3}
	if out != want {
		t.Errorf("Score = %+v, want %+v", out, want)
	}
}

func TestNormalizeLabel(t *testing.T) {
	cases := map[string]string{
		"positive": sentiment.LabelPositive,
		"LABEL_2":  sentiment.LabelPositive,
		"NEG":      sentiment.LabelNegative,
		"LABEL_0":  sentiment.LabelNegative,
		"LABEL_1":  sentiment.LabelNeutral,
		"other":    sentiment.LabelNeutral,
	}
	for raw, want := range cases {
		if got := normalizeLabel(raw); got != want {
			t.Errorf("normalizeLabel(%q) = %q, want %q", raw, got, want)
		}
	}
}
