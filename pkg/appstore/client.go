package appstore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// FetchReviewPage fetches one page of the customer reviews RSS feed.
func (a *appstoreImpl) FetchReviewPage(ctx context.Context, appID, region string, page int) ([]ReviewEntry, error) {
	if page < 1 || page > MaxPageNumber {
		return nil, fmt.Errorf("appstore: page must be between 1 and %d", MaxPageNumber)
	}
	feedURL := fmt.Sprintf(ReviewsURLFormat, strings.ToLower(region), page, appID)

	body, statusCode, err := a.httpClient.Get(ctx, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews feed: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("reviews feed returned status: %d", statusCode)
	}

	var feed rssFeed
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reviews feed: %w", err)
	}

	reviews := make([]ReviewEntry, 0, len(feed.Feed.Entry))
	for _, e := range feed.Feed.Entry {
		// The feed mixes the app record into page 1; review entries
		// always carry a rating.
		if e.Rating.Label == "" {
			continue
		}
		rating, err := strconv.Atoi(e.Rating.Label)
		if err != nil || rating < 1 || rating > 5 {
			continue
		}
		reviews = append(reviews, ReviewEntry{
			ID:      e.ID.Label,
			Region:  strings.ToLower(region),
			Title:   e.Title.Label,
			Content: e.Content.Label,
			Rating:  rating,
			Version: e.Version.Label,
			Date:    e.Updated.Label,
			Author:  e.Author.Name.Label,
		})
	}
	return reviews, nil
}

// Lookup resolves an app id to its store metadata.
func (a *appstoreImpl) Lookup(ctx context.Context, appID string) (*App, error) {
	lookupURL := fmt.Sprintf("%s?id=%s", LookupURL, url.QueryEscape(appID))

	body, statusCode, err := a.httpClient.Get(ctx, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call lookup: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("lookup returned status: %d", statusCode)
	}

	var resp lookupResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lookup response: %w", err)
	}
	if resp.ResultCount == 0 || len(resp.Results) == 0 {
		return nil, nil
	}
	app := resp.Results[0]
	return &app, nil
}

// Search queries the software catalog for a term in one region.
func (a *appstoreImpl) Search(ctx context.Context, term, region string, limit int) ([]App, error) {
	if limit <= 0 {
		limit = 10
	}
	searchURL := fmt.Sprintf("%s?term=%s&country=%s&entity=software&limit=%d",
		SearchURL, url.QueryEscape(term), strings.ToLower(region), limit)

	body, statusCode, err := a.httpClient.Get(ctx, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call search: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status: %d", statusCode)
	}

	var resp lookupResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search response: %w", err)
	}
	return resp.Results, nil
}
