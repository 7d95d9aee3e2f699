package sentimodel

import pkghttp "review-insight-srv/pkg/http"

// SentimentConfig holds the configuration for the sentiment model client.
type SentimentConfig struct {
	APIKey   string
	ModelURL string
	Timeout  int // in seconds, 0 = default
}

// Label is one (label, score) pair returned by the model.
type Label struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Request defines the request body for the inference API.
type Request struct {
	Inputs []string `json:"inputs"`
}

// sentimodelImpl implements IModel against a hosted inference endpoint.
type sentimodelImpl struct {
	apiKey     string
	modelURL   string
	httpClient pkghttp.IClient
}
