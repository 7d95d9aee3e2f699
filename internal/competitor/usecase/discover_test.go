package usecase

import (
	"reflect"
	"testing"

	"review-insight-srv/pkg/appstore"
)

func TestSearchTerms(t *testing.T) {
	tests := []struct {
		name    string
		appName string
		genre   string
		want    []string
	}{
		{
			name:    "two significant words and genre",
			appName: "Budget Tracker Pro",
			genre:   "Finance",
			want:    []string{"budget", "budget tracker", "finance"},
		},
		{
			name:    "stopwords stripped",
			appName: "The Free Photo App",
			genre:   "Photography",
			want:    []string{"photo", "photography"},
		},
		{
			name:    "punctuation trimmed",
			appName: "Notes! (Plus)",
			genre:   "",
			want:    []string{"notes", "notes plus"},
		},
		{
			name:    "only stopwords and no genre",
			appName: "The App",
			genre:   "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := searchTerms(tt.appName, tt.genre)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("searchTerms(%q, %q) = %v, want %v", tt.appName, tt.genre, got, tt.want)
			}
		})
	}
}

func TestFilterCandidates(t *testing.T) {
	primary := &appstore.App{
		TrackID:      100,
		TrackName:    "Budget Tracker",
		PrimaryGenre: "Finance",
	}

	candidates := []appstore.App{
		{TrackID: 100, TrackName: "Budget Tracker", PrimaryGenre: "Finance", AverageRating: 4.5, UserRatingCount: 500},
		{TrackID: 101, TrackName: "Money Manager", PrimaryGenre: "Finance", AverageRating: 4.2, UserRatingCount: 5},
		{TrackID: 102, TrackName: "Spend Less", PrimaryGenre: "Finance", AverageRating: 1.5, UserRatingCount: 300},
		{TrackID: 103, TrackName: "Sudoku Fun", PrimaryGenre: "Games", AverageRating: 4.8, UserRatingCount: 900, Description: "A puzzle game"},
		{TrackID: 104, TrackName: "Coin Keeper", PrimaryGenre: "Finance", AverageRating: 4.1, UserRatingCount: 250},
		{TrackID: 105, TrackName: "Ledger", PrimaryGenre: "Productivity", AverageRating: 4.0, UserRatingCount: 120,
			Description: "Track every budget and see where your money goes"},
	}

	got := filterCandidates(candidates, primary, "100")

	var ids []int64
	for _, c := range got {
		ids = append(ids, c.TrackID)
	}
	// 100 is the app itself, 101 has too few ratings, 102 is rated too
	// low, 103 is unrelated. 105 survives via description overlap.
	want := []int64{104, 105}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("filterCandidates kept %v, want %v", ids, want)
	}
}

func TestRelated(t *testing.T) {
	primary := &appstore.App{TrackName: "Budget Tracker", PrimaryGenre: "Finance"}

	t.Run("same genre", func(t *testing.T) {
		c := appstore.App{PrimaryGenre: "Finance"}
		if !related(c, primary) {
			t.Error("same-genre candidate should be related")
		}
	})

	t.Run("name token in description", func(t *testing.T) {
		c := appstore.App{PrimaryGenre: "Utilities", Description: "Plan your budget with ease"}
		if !related(c, primary) {
			t.Error("candidate mentioning a name token should be related")
		}
	})

	t.Run("no overlap", func(t *testing.T) {
		c := appstore.App{PrimaryGenre: "Games", Description: "Match three jewels"}
		if related(c, primary) {
			t.Error("unrelated candidate should be rejected")
		}
	})
}

func TestRank(t *testing.T) {
	candidates := []appstore.App{
		{TrackID: 1, AverageRating: 3.0, UserRatingCount: 10},
		{TrackID: 2, AverageRating: 4.5, UserRatingCount: 10000},
		{TrackID: 3, AverageRating: 5.0, UserRatingCount: 2},
	}

	got := rank(candidates, 2)
	if len(got) != 2 {
		t.Fatalf("expected top 2, got %d", len(got))
	}
	// 4.5*log(10001) beats 3.0*log(11) beats 5.0*log(3).
	if got[0].TrackID != 2 || got[1].TrackID != 1 {
		t.Errorf("rank order = [%d %d], want [2 1]", got[0].TrackID, got[1].TrackID)
	}
}
