package sentimodel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Classify runs the model over the given texts. The inference API returns
// one candidate list per input; the highest-scoring label wins.
func (m *sentimodelImpl) Classify(ctx context.Context, texts []string) ([]Label, error) {
	if m.apiKey == "" {
		return nil, fmt.Errorf("sentimodel: API key is required")
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("sentimodel: at least one text is required")
	}

	headers := map[string]string{"Authorization": "Bearer " + m.apiKey}

	body, statusCode, err := m.httpClient.Post(ctx, m.modelURL, Request{Inputs: texts}, headers)
	if err != nil {
		return nil, fmt.Errorf("failed to call sentiment model: %w", err)
	}

	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("sentiment model returned status: %d, body: %s", statusCode, string(body))
	}

	var resp [][]Label
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sentiment response: %w", err)
	}
	if len(resp) != len(texts) {
		return nil, fmt.Errorf("sentiment model returned %d results for %d inputs", len(resp), len(texts))
	}

	labels := make([]Label, len(resp))
	for i, candidates := range resp {
		best := Label{}
		for _, c := range candidates {
			if c.Score >= best.Score {
				best = c
			}
		}
		labels[i] = best
	}
	return labels, nil
}
