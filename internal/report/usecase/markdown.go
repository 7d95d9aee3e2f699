package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"review-insight-srv/internal/analysis"
)

// compileMarkdown assembles the analysis output into one markdown
// document and returns it with the number of sections written.
func compileMarkdown(title string, output analysis.AnalyzeOutput) (string, int) {
	var sb strings.Builder

	if title == "" {
		title = fmt.Sprintf("Review Analysis Report for %s", appName(output))
	}
	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	sb.WriteString(fmt.Sprintf("**App ID:** %s\n\n", output.AppID))
	sb.WriteString(fmt.Sprintf("**Regions:** %s\n\n", strings.ToUpper(strings.Join(output.Regions, ", "))))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04 MST")))
	sb.WriteString("---\n\n")

	sections := []struct {
		title string
		write func(*strings.Builder, analysis.AnalyzeOutput) bool
	}{
		{"Overview", writeOverview},
		{"Sentiment", writeSentiment},
		{"Versions", writeVersions},
		{"Regions", writeRegions},
		{"Keywords", writeKeywords},
		{"Health Indicators", writeHealth},
		{"Actionable Steps", writeSteps},
	}

	written := 0
	for _, s := range sections {
		var body strings.Builder
		if !s.write(&body, output) {
			continue
		}
		sb.WriteString(fmt.Sprintf("## %s\n\n", s.title))
		sb.WriteString(body.String())
		sb.WriteString("\n---\n\n")
		written++
	}

	sb.WriteString("*Generated automatically by the Review Insight Service.*\n")

	return sb.String(), written
}

func appName(output analysis.AnalyzeOutput) string {
	if output.Metadata != nil && output.Metadata.TrackName != "" {
		return output.Metadata.TrackName
	}
	return output.AppID
}

func writeOverview(sb *strings.Builder, output analysis.AnalyzeOutput) bool {
	if output.Metadata != nil {
		sb.WriteString(fmt.Sprintf("**%s** by %s (%s), current version %s.\n\n",
			output.Metadata.TrackName, output.Metadata.SellerName,
			output.Metadata.PrimaryGenreName, output.Metadata.Version))
		sb.WriteString(fmt.Sprintf("Store rating %.1f across %d ratings.\n\n",
			output.Metadata.AverageRating, output.Metadata.UserRatingCount))
	}

	stats := output.BasicStats
	sb.WriteString(fmt.Sprintf("Analyzed %d reviews with an average rating of %.2f.\n\n",
		stats.TotalReviews, stats.AverageRating))

	sb.WriteString("| Rating | Count |\n|---|---|\n")
	for rating := 5; rating >= 1; rating-- {
		sb.WriteString(fmt.Sprintf("| %d stars | %d |\n", rating, stats.RatingDistribution[rating]))
	}
	sb.WriteString("\n")

	filtered := output.FilteredAnalysis
	sb.WriteString(fmt.Sprintf("Informativeness filter kept %d of %d reviews",
		filtered.InformativeCount, filtered.InformativeCount+filtered.NonInformativeCount))
	if filtered.UsedLLM {
		sb.WriteString(" (model-assisted).\n")
	} else {
		sb.WriteString(" (heuristic).\n")
	}
	return true
}

func writeSentiment(sb *strings.Builder, output analysis.AnalyzeOutput) bool {
	s := output.SentimentAnalysis
	if s.Total == 0 {
		return false
	}
	sb.WriteString(fmt.Sprintf("Positive: %d, Negative: %d, Neutral: %d (of %d reviews).\n",
		s.Positive, s.Negative, s.Neutral, s.Total))
	return true
}

func writeVersions(sb *strings.Builder, output analysis.AnalyzeOutput) bool {
	if len(output.VersionAnalysis) == 0 {
		return false
	}
	sb.WriteString("| Version | Reviews | Avg Rating |\n|---|---|---|\n")
	for _, v := range output.VersionAnalysis {
		sb.WriteString(fmt.Sprintf("| %s | %d | %.2f |\n", v.Version, v.Count, v.AverageRating))
	}
	return true
}

func writeRegions(sb *strings.Builder, output analysis.AnalyzeOutput) bool {
	if len(output.RegionalAnalysis) == 0 {
		return false
	}
	sb.WriteString("| Region | Reviews | Avg Rating |\n|---|---|---|\n")
	for _, r := range output.RegionalAnalysis {
		sb.WriteString(fmt.Sprintf("| %s | %d | %.2f |\n", r.Region, r.Count, r.AverageRating))
	}
	return true
}

func writeKeywords(sb *strings.Builder, output analysis.AnalyzeOutput) bool {
	if len(output.KeywordAnalysis) == 0 {
		return false
	}
	limit := len(output.KeywordAnalysis)
	if limit > 15 {
		limit = 15
	}
	sb.WriteString("| Keyword | Mentions | Sentiment |\n|---|---|---|\n")
	for _, k := range output.KeywordAnalysis[:limit] {
		sb.WriteString(fmt.Sprintf("| %s | %d | %s |\n", k.Keyword, k.Count, k.Sentiment))
	}
	return true
}

func writeHealth(sb *strings.Builder, output analysis.AnalyzeOutput) bool {
	m := output.DynamicMetrics

	if m.RatingTrend.InsufficientData {
		sb.WriteString("Not enough dated reviews to compute a rating trend.\n\n")
	} else {
		sb.WriteString(fmt.Sprintf("Rating trend: %s (weekly %+.2f, monthly %+.2f).\n\n",
			m.RatingTrend.Direction, m.RatingTrend.WeeklyChange, m.RatingTrend.MonthlyChange))
	}

	c := m.UserComplaints
	sb.WriteString(fmt.Sprintf("Complaints: %d crashes, %d performance, %d bugs.\n\n",
		c.Crashes, c.Performance, c.Bugs))

	i := m.ImpactAssessment
	sb.WriteString(fmt.Sprintf("Impact: %d critical, %d high, %d medium, %d low.\n",
		i.Critical, i.High, i.Medium, i.Low))
	return true
}

func writeSteps(sb *strings.Builder, output analysis.AnalyzeOutput) bool {
	steps := output.ActionableSteps
	if len(steps.Steps) == 0 {
		return false
	}

	if steps.Insights.OverallAssessment != "" {
		sb.WriteString(steps.Insights.OverallAssessment + "\n\n")
	}

	ordered := make([]int, len(steps.Steps))
	for i := range ordered {
		ordered[i] = i
	}
	sort.SliceStable(ordered, func(a, b int) bool {
		return priorityRank(steps.Steps[ordered[a]].Priority) < priorityRank(steps.Steps[ordered[b]].Priority)
	})

	for _, idx := range ordered {
		step := steps.Steps[idx]
		sb.WriteString(fmt.Sprintf("### %s\n\n", step.Title))
		sb.WriteString(fmt.Sprintf("*%s priority, %s, %s*\n\n", step.Priority, step.Category, step.Timeframe))
		sb.WriteString(step.Description + "\n\n")
	}

	if steps.UsedMock {
		sb.WriteString("*Steps were produced by the built-in fallback; configure a model credential for richer output.*\n")
	}
	return true
}

func priorityRank(priority string) int {
	switch priority {
	case "critical":
		return 0
	case "high":
		return 1
	case "medium":
		return 2
	default:
		return 3
	}
}
