package appstore

const (
	// ReviewsURLFormat is the customer reviews RSS feed: region, page, app id.
	ReviewsURLFormat = "https://itunes.apple.com/%s/rss/customerreviews/page=%d/id=%s/sortby=mostrecent/json"
	// LookupURL resolves an app id to its metadata.
	LookupURL = "https://itunes.apple.com/lookup"
	// SearchURL searches the software catalog.
	SearchURL = "https://itunes.apple.com/search"
	// MaxPageNumber is the last page the RSS feed serves.
	MaxPageNumber = 10
)
