package sentimodel

const (
	// DefaultModelURL points at a hosted 3-class sentiment model.
	DefaultModelURL = "https://api-inference.huggingface.co/models/cardiffnlp/twitter-roberta-base-sentiment-latest"
)
