package keywords

import (
	"sort"
	"strings"

	"github.com/mobee/resume-tailor/internal/parsing"
)

// FilterSkills selects the resume skills most relevant to a job description.
// A skill scores 5 when its full lowercased form appears in the job text,
// plus 1 per skill token found among the job's significant tokens. Matching
// skills come first (by score, then resume order); the remainder pads the
// list so the rendered section does not look sparse.
func FilterSkills(skills []string, jobText string, maxSkills, minSkills int) []string {
	if len(skills) == 0 {
		return skills
	}
	if jobText == "" {
		if len(skills) > maxSkills {
			return skills[:maxSkills]
		}
		return skills
	}

	jobNorm := strings.ToLower(parsing.Normalize(jobText))
	jobWords := make(map[string]bool)
	for _, w := range Tokenize(jobNorm) {
		jobWords[w] = true
	}

	type scored struct {
		score int
		idx   int
		skill string
	}
	var matches []scored
	for idx, skill := range skills {
		sNorm := strings.ToLower(parsing.Normalize(skill))
		score := 0
		if sNorm != "" && strings.Contains(jobNorm, sNorm) {
			score += 5
		}
		for _, token := range wordToken.FindAllString(sNorm, -1) {
			if jobWords[token] {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{score: score, idx: idx, skill: skill})
		}
	}
	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].score != matches[b].score {
			return matches[a].score > matches[b].score
		}
		return matches[a].idx < matches[b].idx
	})

	var selected []string
	selectedKeys := make(map[string]bool)
	for _, m := range matches {
		key := strings.ToLower(m.skill)
		if !selectedKeys[key] {
			selected = append(selected, m.skill)
			selectedKeys[key] = true
		}
		if len(selected) >= maxSkills {
			break
		}
	}

	// Pad with remaining resume skills up to a healthy count.
	for _, skill := range skills {
		key := strings.ToLower(skill)
		if selectedKeys[key] {
			continue
		}
		if len(selected) >= maxSkills {
			break
		}
		selected = append(selected, skill)
		selectedKeys[key] = true
		if len(selected) >= minSkills && len(matches) > 0 {
			break
		}
	}

	if len(selected) > maxSkills {
		selected = selected[:maxSkills]
	}
	return selected
}
