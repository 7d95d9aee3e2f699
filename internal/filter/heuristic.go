package filter

import (
	"regexp"
	"strings"

	"review-insight-srv/internal/model"
)

// Confidence levels for heuristic verdicts. Kept below the LLM path on
// purpose: pattern matching is a fallback, not a primary signal.
const (
	heuristicConfidence      = 0.7
	keywordMatchConfidence   = 0.6
	keywordNoMatchConfidence = 0.3
)

// genericPhrases match short praise/complaint with no actionable content.
var genericPhrases = []*regexp.Regexp{
	regexp.MustCompile(`^\W*(love|loving|loved)\s+(it|this|the app)\W*$`),
	regexp.MustCompile(`^\W*(great|good|nice|cool|awesome|amazing|perfect|best|fun)(\s+(app|game))?\W*$`),
	regexp.MustCompile(`^\W*(bad|terrible|awful|worst|trash|garbage)(\s+(app|game))?\W*$`),
	regexp.MustCompile(`^\W*(hate|hating|hated)\s+(it|this|the app)\W*$`),
	regexp.MustCompile(`^\W*\w+\W*$`), // single word
	regexp.MustCompile(`^\W*(five|5)\s*stars?\W*$`),
	regexp.MustCompile(`^\W*(thank(s| you)?)\W*$`),
}

// informativeSignals match concrete bug, feature, performance or UI
// detail, or causal connectives that usually introduce it.
var informativeSignals = []*regexp.Regexp{
	regexp.MustCompile(`\b(bug|crash|crashes|crashing|freez\w*|error|broken|glitch)\b`),
	regexp.MustCompile(`\b(slow|lag\w*|performance|battery|drain\w*|loading|memory)\b`),
	regexp.MustCompile(`\b(feature|wish|should add|please add|would be (nice|great)|request)\b`),
	regexp.MustCompile(`\b(ui|ux|design|interface|layout|button|screen|navigation)\b`),
	regexp.MustCompile(`\b(login|account|sync|notification|update|version|subscription|refund)\b`),
	regexp.MustCompile(`\b(doesn'?t work|not working|can'?t|won'?t|stopped working|fails?)\b`),
	regexp.MustCompile(`\b(because|when|after|since|whenever|every time)\b`),
}

// ClassifyHeuristic classifies one review without any I/O. Deterministic:
// identical input always yields the identical verdict.
func ClassifyHeuristic(title, content string) model.FilterVerdict {
	text := strings.ToLower(strings.TrimSpace(title + " " + content))

	if len(text) < 50 {
		for _, p := range genericPhrases {
			if p.MatchString(text) {
				return model.FilterVerdict{
					IsInformative: false,
					Confidence:    heuristicConfidence,
					Reason:        "matches generic praise/complaint pattern",
					Category:      model.CategoryNonInformative,
				}
			}
		}
	}

	for _, p := range informativeSignals {
		if p.MatchString(text) {
			return model.FilterVerdict{
				IsInformative: true,
				Confidence:    heuristicConfidence,
				Reason:        "contains informative signal keywords",
				Category:      heuristicCategory(text),
			}
		}
	}

	if len(text) > 30 {
		return model.FilterVerdict{
			IsInformative: true,
			Confidence:    heuristicConfidence,
			Reason:        "long enough to carry detail",
			Category:      model.CategoryGeneral,
		}
	}

	return model.FilterVerdict{
		IsInformative: false,
		Confidence:    heuristicConfidence,
		Reason:        "short with no informative signal",
		Category:      model.CategoryNonInformative,
	}
}

var (
	bugSignal         = regexp.MustCompile(`\b(crash|bug|error|broken|glitch|freez)`)
	performanceSignal = regexp.MustCompile(`\b(slow|lag|performance|battery|drain|memory)`)
	featureSignal     = regexp.MustCompile(`\b(feature|wish|add|request)`)
	uiSignal          = regexp.MustCompile(`\b(ui|ux|design|interface|layout|button)`)
)

// heuristicCategory picks a verdict category from signal keywords.
func heuristicCategory(text string) string {
	switch {
	case bugSignal.MatchString(text):
		return model.CategoryBug
	case performanceSignal.MatchString(text):
		return model.CategoryPerformance
	case featureSignal.MatchString(text):
		return model.CategoryFeature
	case uiSignal.MatchString(text):
		return model.CategoryUI
	default:
		return model.CategoryGeneral
	}
}

// issueKeywords maps each issue category to its keyword list, in
// model.IssueCategories order.
var issueKeywords = map[string][]string{
	model.IssueCrashes:     {"crash", "freeze", "frozen", "error", "broken", "won't open", "wont open", "closes", "stuck", "black screen"},
	model.IssueFeatureReqs: {"feature", "add", "wish", "would be nice", "please", "option", "support", "missing"},
	model.IssuePerformance: {"slow", "lag", "battery", "drain", "loading", "performance", "memory", "heats"},
	model.IssueUIUX:        {"ui", "ux", "design", "interface", "layout", "confusing", "button", "navigation", "ugly", "hard to"},
	model.IssueBugs:        {"issue", "problem", "glitch", "doesn't work", "doesnt work", "not working", "fail", "login", "sync"},
}

// CategorizeWithKeywords scores each issue category by substring-match
// count over the lower-cased text and picks the max, ties broken by
// enumeration order. Deterministic fallback for the LLM categorizer.
func CategorizeWithKeywords(text string) (string, float64) {
	lower := strings.ToLower(text)

	best := model.IssueOther
	bestScore := 0
	for _, cat := range model.IssueCategories {
		score := 0
		for _, kw := range issueKeywords[cat] {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = cat
			bestScore = score
		}
	}

	if bestScore == 0 {
		return model.IssueOther, keywordNoMatchConfidence
	}
	return best, keywordMatchConfidence
}
