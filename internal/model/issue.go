package model

// Issue categories assigned to negative reviews.
const (
	IssueCrashes     = "crashes_errors"
	IssueFeatureReqs = "feature_requests"
	IssuePerformance = "performance"
	IssueUIUX        = "ui_ux"
	IssueBugs        = "bugs_issues"
	IssueOther       = "other"
)

// IssueCategories lists all issue categories in enumeration order.
// Keyword-scoring ties break toward the earlier entry.
var IssueCategories = []string{
	IssueCrashes,
	IssueFeatureReqs,
	IssuePerformance,
	IssueUIUX,
	IssueBugs,
	IssueOther,
}

// ValidIssueCategory reports whether c is a known issue category.
func ValidIssueCategory(c string) bool {
	for _, v := range IssueCategories {
		if v == c {
			return true
		}
	}
	return false
}
