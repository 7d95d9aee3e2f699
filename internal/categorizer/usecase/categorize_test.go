package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"review-insight-srv/internal/categorizer"
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

func negativeReview(id string) model.Review {
	return model.Review{
		ID:      id,
		Rating:  1,
		Title:   "Constant crashes",
		Content: "the app crashes every single time I try to open my saved projects list",
	}
}

func TestCategorizeEmptyInput(t *testing.T) {
	uc := New(nil, log.NewNop(), Config{})
	_, err := uc.Categorize(context.Background(), categorizer.CategorizeInput{})
	if !errors.Is(err, categorizer.ErrNoReviews) {
		t.Fatalf("err = %v, want ErrNoReviews", err)
	}
}

func TestCategorizeSkipsPositiveReviews(t *testing.T) {
	uc := New(nil, log.NewNop(), Config{})
	out, err := uc.Categorize(context.Background(), categorizer.CategorizeInput{
		Reviews: []model.Review{{ID: "r1", Rating: 5, Content: "amazing app I use it daily for everything"}},
	})
	if err != nil {
		t.Fatalf("Categorize: %v", err)
	}
	if len(out.Categories) != 0 {
		t.Errorf("categories = %d, want 0 for all-positive input", len(out.Categories))
	}
}

func TestCategorizeLLMPath(t *testing.T) {
	g := &fakeGemini{generate: func(string) (string, error) {
		return `Here you go:
[{"reviewId": "r1", "category": "crashes_errors", "confidence": 0.9, "reasoning": "crash report"}]`, nil
	}}
	uc := New(g, log.NewNop(), Config{Enabled: true})

	out, err := uc.Categorize(context.Background(), categorizer.CategorizeInput{
		Reviews: []model.Review{negativeReview("r1")},
	})
	if err != nil {
		t.Fatalf("Categorize: %v", err)
	}
	if !out.UsedLLM {
		t.Error("UsedLLM = false, want true")
	}
	if len(out.Categories) != 1 {
		t.Fatalf("categories = %d, want 1", len(out.Categories))
	}
	if out.Categories[0].Category != model.IssueCrashes {
		t.Errorf("category = %q, want %q", out.Categories[0].Category, model.IssueCrashes)
	}
}

func TestCategorizeDropsInvalidEntries(t *testing.T) {
	g := &fakeGemini{generate: func(string) (string, error) {
		return `[
{"reviewId": "r1", "category": "crashes_errors", "confidence": 0.9, "reasoning": "ok"},
{"reviewId": "r2", "category": "not_a_category", "confidence": 0.9, "reasoning": "bad enum"},
{"reviewId": "unknown", "category": "other", "confidence": 0.5, "reasoning": "bad id"},
{"reviewId": "r2", "category": "performance", "reasoning": "missing confidence"}
]`, nil
	}}
	uc := New(g, log.NewNop(), Config{Enabled: true})

	out, err := uc.Categorize(context.Background(), categorizer.CategorizeInput{
		Reviews: []model.Review{negativeReview("r1"), negativeReview("r2")},
	})
	if err != nil {
		t.Fatalf("Categorize: %v", err)
	}
	if len(out.Categories) != 1 {
		t.Fatalf("categories = %d, want 1 (invalid entries dropped)", len(out.Categories))
	}
	if out.Categories[0].ReviewID != "r1" {
		t.Errorf("review id = %q, want r1", out.Categories[0].ReviewID)
	}
}

func TestCategorizeBatchFailureIsolated(t *testing.T) {
	var calls int
	g := &fakeGemini{generate: func(string) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("503 service unavailable")
		}
		return `[{"reviewId": "r2", "category": "performance", "confidence": 0.8, "reasoning": "slow"}]`, nil
	}}
	uc := New(g, log.NewNop(), Config{Enabled: true, BatchSize: 1})

	out, err := uc.Categorize(context.Background(), categorizer.CategorizeInput{
		Reviews: []model.Review{negativeReview("r1"), negativeReview("r2")},
	})
	if err != nil {
		t.Fatalf("Categorize: %v", err)
	}
	if len(out.Categories) != 1 {
		t.Fatalf("categories = %d, want 1 from the surviving batch", len(out.Categories))
	}
	if len(out.Errors) != 1 {
		t.Errorf("errors = %d, want 1 recorded batch failure", len(out.Errors))
	}
}

func TestCategorizeTotalFailureFallsBackToKeywords(t *testing.T) {
	g := &fakeGemini{generate: func(string) (string, error) {
		return "", errors.New("503 service unavailable")
	}}
	uc := New(g, log.NewNop(), Config{Enabled: true})

	out, err := uc.Categorize(context.Background(), categorizer.CategorizeInput{
		Reviews: []model.Review{negativeReview("r1")},
	})
	if err != nil {
		t.Fatalf("Categorize: %v", err)
	}
	if out.UsedLLM {
		t.Error("UsedLLM = true, want false after keyword fallback")
	}
	if len(out.Categories) != 1 {
		t.Fatalf("categories = %d, want 1", len(out.Categories))
	}
	if out.Categories[0].Category != model.IssueCrashes {
		t.Errorf("category = %q, want %q from keyword fallback", out.Categories[0].Category, model.IssueCrashes)
	}
}

func TestQualityFilterFallsBackToFullNegativeSet(t *testing.T) {
	// All negative reviews are too short for the quality sub-filter, so
	// the full negative set is used instead of sending nothing.
	g := &fakeGemini{generate: func(prompt string) (string, error) {
		return `[{"reviewId": "r1", "category": "other", "confidence": 0.4, "reasoning": "vague"}]`, nil
	}}
	uc := New(g, log.NewNop(), Config{Enabled: true})

	out, err := uc.Categorize(context.Background(), categorizer.CategorizeInput{
		Reviews: []model.Review{{ID: "r1", Rating: 1, Content: "bad"}},
	})
	if err != nil {
		t.Fatalf("Categorize: %v", err)
	}
	if len(out.Categories) != 1 {
		t.Fatalf("categories = %d, want 1", len(out.Categories))
	}
}

func TestQualityFilter(t *testing.T) {
	long := negativeReview("long")
	short := model.Review{ID: "short", Rating: 1, Content: "bad app broken"}
	got := qualityFilter([]model.Review{long, short})
	if len(got) != 1 || got[0].ID != "long" {
		t.Fatalf("qualityFilter kept %d reviews, want only the long one", len(got))
	}
}

func TestCategorizeDisabledUsesKeywords(t *testing.T) {
	g := &fakeGemini{generate: func(string) (string, error) {
		t.Fatal("LLM must not be called when disabled")
		return "", nil
	}}
	uc := New(g, log.NewNop(), Config{Enabled: false})

	reviews := make([]model.Review, 3)
	for i := range reviews {
		reviews[i] = negativeReview(fmt.Sprintf("r%d", i))
	}
	out, err := uc.Categorize(context.Background(), categorizer.CategorizeInput{Reviews: reviews})
	if err != nil {
		t.Fatalf("Categorize: %v", err)
	}
	if len(out.Categories) != 3 {
		t.Errorf("categories = %d, want 3", len(out.Categories))
	}
}
