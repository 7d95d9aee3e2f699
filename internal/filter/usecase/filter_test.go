package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"review-insight-srv/internal/filter"
	"review-insight-srv/internal/model"
	"review-insight-srv/pkg/gemini"
	"review-insight-srv/pkg/log"
)

type fakeGemini struct {
	generate func(prompt string) (string, error)
}

func (f *fakeGemini) Generate(_ context.Context, prompt string) (string, error) {
	return f.generate(prompt)
}

func (f *fakeGemini) GenerateWithOptions(_ context.Context, prompt string, _ gemini.GenerateOptions) (string, error) {
	return f.generate(prompt)
}

func fastConfig() Config {
	return Config{
		Enabled:          true,
		RetryDelayMs:     1,
		RateLimitDelayMs: 1,
	}
}

func makeReviews(n int) []model.Review {
	reviews := make([]model.Review, n)
	for i := range reviews {
		reviews[i] = model.Review{
			ID:      fmt.Sprintf("r%d", i),
			Title:   "Crashes",
			Content: fmt.Sprintf("the app crashes when I open screen %d", i),
			Rating:  1,
		}
	}
	return reviews
}

func TestFilterManyEmptyInput(t *testing.T) {
	uc := New(nil, nil, log.NewNop(), Config{})
	_, err := uc.FilterMany(context.Background(), filter.FilterInput{})
	if !errors.Is(err, filter.ErrNoReviews) {
		t.Fatalf("err = %v, want ErrNoReviews", err)
	}
}

func TestFilterManyCountConservation(t *testing.T) {
	g := &fakeGemini{generate: func(string) (string, error) {
		return `{"isInformative": true, "confidence": 0.9, "reason": "bug report", "category": "bug"}`, nil
	}}
	uc := New(g, nil, log.NewNop(), fastConfig())

	reviews := makeReviews(12)
	out, err := uc.FilterMany(context.Background(), filter.FilterInput{Reviews: reviews})
	if err != nil {
		t.Fatalf("FilterMany: %v", err)
	}
	if got := len(out.Informative) + len(out.NonInformative); got != len(reviews) {
		t.Errorf("informative+nonInformative = %d, want %d", got, len(reviews))
	}
	if !out.UsedLLM {
		t.Error("UsedLLM = false, want true")
	}
}

func TestFilterManyDisabledUsesHeuristics(t *testing.T) {
	g := &fakeGemini{generate: func(string) (string, error) {
		t.Fatal("LLM must not be called when disabled")
		return "", nil
	}}
	cfg := fastConfig()
	cfg.Enabled = false
	uc := New(g, nil, log.NewNop(), cfg)

	out, err := uc.FilterMany(context.Background(), filter.FilterInput{Reviews: makeReviews(4)})
	if err != nil {
		t.Fatalf("FilterMany: %v", err)
	}
	if out.UsedLLM {
		t.Error("UsedLLM = true, want false")
	}
	if got := len(out.Informative) + len(out.NonInformative); got != 4 {
		t.Errorf("informative+nonInformative = %d, want 4", got)
	}
}

func TestFilterManyOverCeilingUsesHeuristics(t *testing.T) {
	g := &fakeGemini{generate: func(string) (string, error) {
		t.Fatal("LLM must not be called above the review ceiling")
		return "", nil
	}}
	cfg := fastConfig()
	cfg.MaxReviews = 10
	uc := New(g, nil, log.NewNop(), cfg)

	out, err := uc.FilterMany(context.Background(), filter.FilterInput{Reviews: makeReviews(11)})
	if err != nil {
		t.Fatalf("FilterMany: %v", err)
	}
	if out.UsedLLM {
		t.Error("UsedLLM = true, want false")
	}
}

func TestFilterManyLLMFailureDegradesPerReview(t *testing.T) {
	g := &fakeGemini{generate: func(string) (string, error) {
		return "", errors.New("invalid api key")
	}}
	uc := New(g, nil, log.NewNop(), fastConfig())

	reviews := makeReviews(3)
	out, err := uc.FilterMany(context.Background(), filter.FilterInput{Reviews: reviews})
	if err != nil {
		t.Fatalf("FilterMany: %v", err)
	}
	// Long texts pass the length-based fallback, so the set is not empty
	// and heuristics do not take over.
	if got := len(out.Informative) + len(out.NonInformative); got != len(reviews) {
		t.Errorf("informative+nonInformative = %d, want %d", got, len(reviews))
	}
	for _, cr := range out.Informative {
		if cr.Verdict.Confidence != 0.5 {
			t.Errorf("fallback confidence = %v, want 0.5", cr.Verdict.Confidence)
		}
	}
}

func TestFilterManyZeroInformativeFallsBackToHeuristics(t *testing.T) {
	g := &fakeGemini{generate: func(string) (string, error) {
		return `{"isInformative": false, "confidence": 0.9, "reason": "noise", "category": "non-informative"}`, nil
	}}
	uc := New(g, nil, log.NewNop(), fastConfig())

	// Crash reports the heuristics recognize as informative.
	out, err := uc.FilterMany(context.Background(), filter.FilterInput{Reviews: makeReviews(3)})
	if err != nil {
		t.Fatalf("FilterMany: %v", err)
	}
	if out.UsedLLM {
		t.Error("UsedLLM = true, want false after heuristic fallback")
	}
	if len(out.Informative) == 0 {
		t.Error("heuristic fallback found no informative reviews")
	}
}

func TestFilterManyRetriesTransientErrors(t *testing.T) {
	var calls int
	g := &fakeGemini{generate: func(string) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("429 too many requests")
		}
		return `{"isInformative": true, "confidence": 0.8, "reason": "bug", "category": "bug"}`, nil
	}}
	uc := New(g, nil, log.NewNop(), fastConfig())

	out, err := uc.FilterMany(context.Background(), filter.FilterInput{Reviews: makeReviews(1)})
	if err != nil {
		t.Fatalf("FilterMany: %v", err)
	}
	if calls != 2 {
		t.Errorf("generate calls = %d, want 2", calls)
	}
	if len(out.Informative) != 1 {
		t.Errorf("informative = %d, want 1", len(out.Informative))
	}
	if out.Informative[0].Verdict.Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8", out.Informative[0].Verdict.Confidence)
	}
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"timeout", errors.New("request timeout"), true},
		{"rate limit", errors.New("429 too many requests"), true},
		{"server error", errors.New("503 service unavailable"), true},
		{"connection reset", errors.New("read: connection reset by peer"), true},
		{"deadline", context.DeadlineExceeded, true},
		{"canceled", context.Canceled, false},
		{"auth", errors.New("invalid api key"), false},
		{"parse", errors.New("unmarshal verdict: unexpected token"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Retryable(tc.err); got != tc.want {
				t.Errorf("Retryable(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestFallbackVerdict(t *testing.T) {
	long := fallbackVerdict(model.Review{Title: "Broken", Content: "the login stopped working"})
	if !long.IsInformative {
		t.Error("long review fallback should be informative")
	}
	short := fallbackVerdict(model.Review{Title: "Ok", Content: "fine"})
	if short.IsInformative {
		t.Error("short review fallback should be non-informative")
	}
}
