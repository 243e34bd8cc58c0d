package types

// Recommendation values for a fit assessment
const (
	RecommendApply = "APPLY"
	RecommendMaybe = "MAYBE"
	RecommendNo    = "NO"
)

// FitAssessment is the apply/no-apply recommendation for a job posting.
// Confidence is always within 0-100 and Recommendation is one of the
// Recommend* constants.
type FitAssessment struct {
	Recommendation      string   `json:"recommendation"`
	Confidence          int      `json:"confidence"`
	Rationale           string   `json:"rationale"`
	MatchedRequirements []string `json:"matched_requirements"`
	MissingRequirements []string `json:"missing_requirements"`
	Gaps                []string `json:"gaps"`
}
