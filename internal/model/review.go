package model

import "time"

// Review is one customer review as fetched from the store. Reviews are
// immutable once fetched; the pipeline only reads them and produces
// derived aggregates.
type Review struct {
	ID      string    `json:"id"`
	Region  string    `json:"region"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Rating  int       `json:"rating"`  // 1..5
	Version string    `json:"version"` // dotted numeric, variable segment count
	Date    time.Time `json:"date"`
	Author  string    `json:"author"`
}

// Text returns the combined title and content used for classification.
func (r Review) Text() string {
	if r.Title == "" {
		return r.Content
	}
	return r.Title + " " + r.Content
}

// AppMetadata is the store's record for one app. Fetched once per app,
// cached with a medium TTL; read-only input to aggregation.
type AppMetadata struct {
	TrackName        string  `json:"track_name"`
	SellerName       string  `json:"seller_name"`
	PrimaryGenreName string  `json:"primary_genre_name"`
	Version          string  `json:"version"`
	AverageRating    float64 `json:"average_user_rating"` // 0..5
	UserRatingCount  int     `json:"user_rating_count"`
}
