package appstore

import pkghttp "review-insight-srv/pkg/http"

// AppStoreConfig holds the configuration for the App Store client.
type AppStoreConfig struct {
	Timeout int // in seconds, 0 = default
}

// appstoreImpl implements IAppStore against the public iTunes endpoints.
type appstoreImpl struct {
	httpClient pkghttp.IClient
}

// ReviewEntry is one raw customer review from the RSS feed.
type ReviewEntry struct {
	ID      string
	Region  string
	Title   string
	Content string
	Rating  int
	Version string
	Date    string // ISO-8601 as delivered by the feed
	Author  string
}

// App is one app record from the lookup/search endpoints.
type App struct {
	TrackID         int64   `json:"trackId"`
	TrackName       string  `json:"trackName"`
	SellerName      string  `json:"sellerName"`
	PrimaryGenre    string  `json:"primaryGenreName"`
	Version         string  `json:"version"`
	Description     string  `json:"description"`
	AverageRating   float64 `json:"averageUserRating"`
	UserRatingCount int     `json:"userRatingCount"`
}

// lookupResponse is the envelope of the lookup and search endpoints.
type lookupResponse struct {
	ResultCount int   `json:"resultCount"`
	Results     []App `json:"results"`
}

// rssLabel is the ubiquitous {"label": "..."} wrapper in the RSS feed.
type rssLabel struct {
	Label string `json:"label"`
}

// rssEntry is one review entry in the RSS feed.
type rssEntry struct {
	ID      rssLabel `json:"id"`
	Title   rssLabel `json:"title"`
	Content rssLabel `json:"content"`
	Rating  rssLabel `json:"im:rating"`
	Version rssLabel `json:"im:version"`
	Updated rssLabel `json:"updated"`
	Author  struct {
		Name rssLabel `json:"name"`
	} `json:"author"`
}

// rssFeed is the envelope of the customer reviews RSS feed. The first
// entry of page 1 is the app itself, not a review; entries without a
// rating are skipped.
type rssFeed struct {
	Feed struct {
		Entry []rssEntry `json:"entry"`
	} `json:"feed"`
}
