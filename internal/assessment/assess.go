package assessment

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/mobee/resume-tailor/internal/llm"
	"github.com/mobee/resume-tailor/internal/prompts"
	"github.com/mobee/resume-tailor/internal/schemas"
	"github.com/mobee/resume-tailor/internal/types"
)

// maxRequirementItems caps the matched/missing arrays from the model.
const maxRequirementItems = 15

// rawAssessment mirrors the collaborator's JSON shape before normalization.
type rawAssessment struct {
	Recommendation      string   `json:"recommendation"`
	Confidence          float64  `json:"confidence"`
	Rationale           string   `json:"rationale"`
	MatchedRequirements []string `json:"matched_requirements"`
	MissingRequirements []string `json:"missing_requirements"`
}

// Assess produces a fit assessment for the job posting. When a client is
// available it asks the model for strict JSON, validates it against the
// embedded schema, and normalizes the values; on any failure — no client, a
// transport error, malformed JSON — it silently falls back to the local
// heuristic. Assessment is never fatal.
func Assess(ctx context.Context, client llm.Client, jobText, resumeText string) *types.FitAssessment {
	if strings.TrimSpace(jobText) == "" || client == nil {
		return Heuristic(jobText, resumeText)
	}

	prompt := prompts.Format(prompts.MustGet("assessment.json", "assess"), map[string]string{
		"JobText":    jobText,
		"ResumeText": resumeText,
	})

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("[ASSESS] collaborator unavailable, using heuristic: %v", err)
		return Heuristic(jobText, resumeText)
	}

	assessment, err := parseAssessment(raw)
	if err != nil {
		log.Printf("[ASSESS] unusable collaborator output, using heuristic: %v", err)
		return Heuristic(jobText, resumeText)
	}
	return assessment
}

// parseAssessment validates and normalizes the collaborator's JSON reply.
func parseAssessment(raw string) (*types.FitAssessment, error) {
	payload := llm.FirstJSONObject(raw)
	if err := schemas.ValidateFitAssessment(payload); err != nil {
		return nil, err
	}

	var data rawAssessment
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, err
	}

	recommendation := strings.ToUpper(strings.TrimSpace(data.Recommendation))
	switch recommendation {
	case types.RecommendApply, types.RecommendMaybe, types.RecommendNo:
	default:
		recommendation = types.RecommendMaybe
	}

	confidence := int(data.Confidence)
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}

	matched := cleanItems(data.MatchedRequirements)
	missing := cleanItems(data.MissingRequirements)
	gaps := missing
	if len(gaps) > 3 {
		gaps = gaps[:3]
	}

	return &types.FitAssessment{
		Recommendation:      recommendation,
		Confidence:          confidence,
		Rationale:           strings.TrimSpace(data.Rationale),
		MatchedRequirements: matched,
		MissingRequirements: missing,
		Gaps:                gaps,
	}, nil
}

func cleanItems(items []string) []string {
	var out []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
		if len(out) >= maxRequirementItems {
			break
		}
	}
	return out
}
