// Package assessment produces apply/no-apply recommendations for a job
// posting, using the text-generation collaborator when available and a local
// keyword-overlap heuristic otherwise.
package assessment

import (
	"fmt"
	"strings"

	"github.com/mobee/resume-tailor/internal/keywords"
	"github.com/mobee/resume-tailor/internal/parsing"
	"github.com/mobee/resume-tailor/internal/types"
)

// heuristicTokenCount is how many top-frequency job tokens the overlap score
// considers.
const heuristicTokenCount = 18

// Recommendation thresholds on the 0-100 confidence scale.
const (
	applyThreshold = 65
	maybeThreshold = 40
)

// Heuristic scores job fit by overlap between the job description's
// top-frequency tokens and the resume text. Confidence is the overlap
// percentage; APPLY at 65 and above, MAYBE at 40 and above, NO below.
func Heuristic(jobText, resumeText string) *types.FitAssessment {
	if strings.TrimSpace(jobText) == "" {
		return &types.FitAssessment{
			Recommendation: types.RecommendMaybe,
			Confidence:     0,
			Rationale:      "Paste a job description to get an apply recommendation.",
		}
	}

	topWords := keywords.TopTokens(strings.ToLower(parsing.Normalize(jobText)), heuristicTokenCount)
	if len(topWords) == 0 {
		return &types.FitAssessment{
			Recommendation: types.RecommendMaybe,
			Confidence:     40,
			Rationale:      "Not enough detail in the job description to score fit accurately.",
		}
	}

	resumeNorm := strings.ToLower(parsing.Normalize(resumeText))
	var matched, missing []string
	for _, w := range topWords {
		if strings.Contains(resumeNorm, w) {
			matched = append(matched, w)
		} else {
			missing = append(missing, w)
		}
	}

	confidence := len(matched) * 100 / len(topWords)
	recommendation := types.RecommendNo
	switch {
	case confidence >= applyThreshold:
		recommendation = types.RecommendApply
	case confidence >= maybeThreshold:
		recommendation = types.RecommendMaybe
	}

	gaps := missing
	if len(gaps) > 3 {
		gaps = gaps[:3]
	}
	return &types.FitAssessment{
		Recommendation:      recommendation,
		Confidence:          confidence,
		Rationale:           fmt.Sprintf("Match score based on keyword overlap: %d%%.", confidence),
		MatchedRequirements: matched,
		MissingRequirements: missing,
		Gaps:                gaps,
	}
}
