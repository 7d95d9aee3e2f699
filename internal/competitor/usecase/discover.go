package usecase

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"

	"review-insight-srv/internal/competitor"
	"review-insight-srv/pkg/appstore"
)

// searchStopwords are dropped when deriving search terms from an app
// name.
var searchStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"for": true, "of": true, "app": true, "free": true, "pro": true,
	"my": true, "your": true, "with": true,
}

// searchTerms derives candidate competitor search terms from the app
// name and genre: the first significant word, the first two, and the
// genre itself.
func searchTerms(appName, genre string) []string {
	var significant []string
	for _, token := range strings.Fields(strings.ToLower(appName)) {
		token = strings.Trim(token, ".,:;!?()[]")
		if token == "" || searchStopwords[token] {
			continue
		}
		significant = append(significant, token)
	}

	var terms []string
	if len(significant) > 0 {
		terms = append(terms, significant[0])
	}
	if len(significant) > 1 {
		terms = append(terms, significant[0]+" "+significant[1])
	}
	if genre != "" {
		terms = append(terms, strings.ToLower(genre))
	}
	return terms
}

// discover searches every region for every term and returns de-duplicated
// candidates. A failed search is logged and skipped.
func (uc *implUseCase) discover(ctx context.Context, primary *appstore.App, appID string, regions []string) []appstore.App {
	terms := searchTerms(primary.TrackName, primary.PrimaryGenre)

	seen := make(map[int64]bool)
	var candidates []appstore.App
	for _, region := range regions {
		for _, term := range terms {
			apps, err := uc.appStore.Search(ctx, term, region, uc.cfg.SearchLimit)
			if err != nil {
				uc.l.Warnf(ctx, "competitor.usecase.discover: search %q in %s failed: %v", term, region, err)
				continue
			}
			for _, app := range apps {
				if seen[app.TrackID] {
					continue
				}
				seen[app.TrackID] = true
				candidates = append(candidates, app)
			}
		}
	}

	return filterCandidates(candidates, primary, appID)
}

// filterCandidates drops the app itself, apps with too few ratings or
// too low a rating, and apps related neither by genre nor by name
// keyword overlap.
func filterCandidates(candidates []appstore.App, primary *appstore.App, appID string) []appstore.App {
	var out []appstore.App
	for _, c := range candidates {
		if strconv.FormatInt(c.TrackID, 10) == appID {
			continue
		}
		if c.UserRatingCount < competitor.MinRatingCount {
			continue
		}
		if c.AverageRating < competitor.MinAverageRating {
			continue
		}
		if !related(c, primary) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// related accepts same-genre candidates, or candidates whose description
// mentions enough of the primary app's significant name tokens.
func related(candidate appstore.App, primary *appstore.App) bool {
	if candidate.PrimaryGenre != "" && candidate.PrimaryGenre == primary.PrimaryGenre {
		return true
	}

	var tokens []string
	for _, token := range strings.Fields(strings.ToLower(primary.TrackName)) {
		token = strings.Trim(token, ".,:;!?()[]")
		if token == "" || searchStopwords[token] {
			continue
		}
		tokens = append(tokens, token)
	}
	if len(tokens) == 0 {
		return false
	}

	description := strings.ToLower(candidate.Description)
	matched := 0
	for _, token := range tokens {
		if strings.Contains(description, token) {
			matched++
		}
	}
	return float64(matched)/float64(len(tokens)) >= competitor.NameOverlapThreshold
}

// rank orders candidates by rating x log(count+1) descending and keeps
// the top max.
func rank(candidates []appstore.App, max int) []appstore.App {
	sort.SliceStable(candidates, func(i, j int) bool {
		return rankScore(candidates[i]) > rankScore(candidates[j])
	})
	if len(candidates) > max {
		candidates = candidates[:max]
	}
	return candidates
}

func rankScore(app appstore.App) float64 {
	return app.AverageRating * math.Log(float64(app.UserRatingCount)+1)
}
