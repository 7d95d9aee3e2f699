package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"review-insight-srv/internal/analysis"
	"review-insight-srv/internal/analysis/repository"
)

// analysisKey is deterministic over (appID, region set): regions are
// lower-cased and sorted so the same selection always hits the same key.
func analysisKey(appID string, regions []string) string {
	normalized := make([]string, len(regions))
	for i, r := range regions {
		normalized[i] = strings.ToLower(strings.TrimSpace(r))
	}
	sort.Strings(normalized)
	return fmt.Sprintf("analysis:%s:%s", appID, strings.Join(normalized, ","))
}

func (r *implRepository) GetAnalysis(ctx context.Context, appID string, regions []string) (analysis.AnalyzeOutput, error) {
	raw, err := r.redis.Get(ctx, analysisKey(appID, regions))
	if err != nil {
		if err == goredis.Nil {
			return analysis.AnalyzeOutput{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "analysis.repository.GetAnalysis: get key: %v", err)
		return analysis.AnalyzeOutput{}, err
	}

	var output analysis.AnalyzeOutput
	if err := json.Unmarshal([]byte(raw), &output); err != nil {
		r.l.Errorf(ctx, "analysis.repository.GetAnalysis: unmarshal cached analysis: %v", err)
		return analysis.AnalyzeOutput{}, err
	}

	return output, nil
}

func (r *implRepository) SaveAnalysis(ctx context.Context, output analysis.AnalyzeOutput) error {
	raw, err := json.Marshal(output)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.SaveAnalysis: marshal analysis: %v", err)
		return err
	}

	if err := r.redis.Set(ctx, analysisKey(output.AppID, output.Regions), raw, r.ttl); err != nil {
		r.l.Errorf(ctx, "analysis.repository.SaveAnalysis: set key: %v", err)
		return err
	}

	return nil
}
