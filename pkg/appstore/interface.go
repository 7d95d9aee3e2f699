package appstore

import (
	"context"
	"time"

	pkghttp "review-insight-srv/pkg/http"
)

// IAppStore defines the interface for the public App Store endpoints:
// the customer-reviews RSS feed, app lookup and catalog search.
// Implementations are safe for concurrent use.
type IAppStore interface {
	// FetchReviewPage fetches one page of reviews for one region.
	// Page numbering starts at 1; pages past the last available return empty.
	FetchReviewPage(ctx context.Context, appID, region string, page int) ([]ReviewEntry, error)

	// Lookup resolves an app id to its store metadata. Returns nil when
	// the store does not know the app.
	Lookup(ctx context.Context, appID string) (*App, error)

	// Search queries the software catalog for a term in one region.
	Search(ctx context.Context, term, region string, limit int) ([]App, error)
}

// NewAppStore creates a new App Store client.
func NewAppStore(cfg AppStoreConfig) IAppStore {
	timeout := 15 * time.Second
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}
	return &appstoreImpl{
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   timeout,
			Retries:   2,
			RetryWait: 1 * time.Second,
		}),
	}
}
