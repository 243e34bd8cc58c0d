package parsing

import (
	"regexp"
	"strings"

	"github.com/mobee/resume-tailor/internal/types"
)

// dateRange matches a "MM/YYYY - MM/YYYY" or "MM/YYYY - Present" span.
var dateRange = regexp.MustCompile(`(?i)\b\d{2}/\d{4}\s*-\s*(Present|\d{2}/\d{4})\b`)

// experienceTitleMarkers classify a work entry as professional experience
// rather than a project. Fixed, deterministic substring matching; not
// semantic understanding.
var experienceTitleMarkers = []string{"independent contractor", "web developer", "driver"}

// SplitEntries groups body lines into blocks separated by blank lines.
// Each block is one candidate entry.
func SplitEntries(blockLines []string) [][]string {
	var entries [][]string
	var current []string
	for _, line := range blockLines {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				entries = append(entries, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		entries = append(entries, current)
	}
	return entries
}

// ParseEducation parses degree entries: first line is the degree, second the
// school, third the date; remaining "-" lines are bullets. Course listings
// are dropped.
func ParseEducation(blockLines []string) []*types.Entry {
	var entries []*types.Entry
	for _, lines := range SplitEntries(blockLines) {
		e := &types.Entry{Title: lines[0]}
		if len(lines) > 1 {
			e.Subtitle = lines[1]
		}
		if len(lines) > 2 {
			e.Date = lines[2]
		}
		var rest []string
		if len(lines) > 3 {
			rest = lines[3:]
		}
		for _, line := range rest {
			if strings.HasPrefix(strings.ToLower(line), "courses") {
				continue
			}
			if strings.HasPrefix(line, "-") {
				e.Bullets = append(e.Bullets, stripBullet(line))
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// ParseExperience parses job/project entries: first line is the title; if the
// second line is a date range it is consumed as the date. "-" lines become
// bullets. The joined block text is retained for relevance scoring.
func ParseExperience(blockLines []string) []*types.Entry {
	var entries []*types.Entry
	for _, lines := range SplitEntries(blockLines) {
		e := &types.Entry{Title: lines[0], Raw: strings.Join(lines, " ")}
		idx := 1
		if len(lines) > 1 && dateRange.MatchString(lines[1]) {
			e.Date = lines[1]
			idx = 2
		}
		for _, line := range lines[idx:] {
			if strings.HasPrefix(line, "-") {
				e.Bullets = append(e.Bullets, stripBullet(line))
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// skillSeparators split a skills line into individual tokens.
var skillSeparators = regexp.MustCompile(`[|,]`)

// ParseSkills splits each line on '|' or ',' into skill tokens, trimmed and
// deduplicated case-insensitively preserving first occurrence.
func ParseSkills(blockLines []string) []string {
	var skills []string
	for _, line := range blockLines {
		if strings.HasPrefix(line, "-") {
			line = stripBullet(line)
		}
		for _, part := range skillSeparators.Split(line, -1) {
			part = strings.TrimSpace(part)
			if part != "" {
				skills = append(skills, part)
			}
		}
	}

	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		key := strings.ToLower(s)
		if !seen[key] {
			seen[key] = true
			out = append(out, s)
		}
	}
	return out
}

// ParseList turns each bullet-prefixed or plain line into one list item.
// Used for certificates and interests.
func ParseList(blockLines []string) []string {
	var items []string
	for _, line := range blockLines {
		if strings.HasPrefix(line, "-") {
			line = stripBullet(line)
		}
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// ClassifyWork partitions work entries into professional experience and
// projects based on title markers. Entries keep their original order within
// each partition.
func ClassifyWork(entries []*types.Entry) (experience, projects []*types.Entry) {
	for _, e := range entries {
		title := strings.ToLower(e.Title)
		matched := false
		for _, marker := range experienceTitleMarkers {
			if strings.Contains(title, marker) {
				matched = true
				break
			}
		}
		if matched {
			experience = append(experience, e)
		} else {
			projects = append(projects, e)
		}
	}
	return experience, projects
}

func stripBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "-"))
}
