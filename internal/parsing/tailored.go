package parsing

import (
	"regexp"
	"strings"

	"github.com/mobee/resume-tailor/internal/types"
)

// fallbackSectionTitle names content that arrives before any section header
// when no allow-list constrains the output.
const fallbackSectionTitle = "Tailored Resume"

var (
	boldStars       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	boldUnderscores = regexp.MustCompile(`__([^_]+)__`)
	onlyHashes      = regexp.MustCompile(`^#+$`)
	horizontalRule  = regexp.MustCompile(`^-{2,}$`)
	dateToken       = regexp.MustCompile(`(?i)\b\d{2}/\d{4}\b|\b\d{4}\b|\bPresent\b`)
)

// ParseTailored parses constrained Markdown-like tailored text into the
// section model. "## " lines open sections, accepted only when the title is
// on the allow-list (case-insensitive); content under a rejected title is
// discarded until the next accepted section. "### " lines open entries with
// pipe-separated fields, taking a trailing date-looking field as the date.
// "- " and "* " lines are bullets, split into skill tokens inside
// skills-named sections. Bold markers are stripped; horizontal rules are
// ignored. A "## " title equal to name is skipped (models sometimes echo the
// candidate name as a heading).
//
// The returned allow-list is lowercased for later ordering. Parsing is fully
// deterministic: identical input yields byte-identical output.
func ParseTailored(text, name string, allowedSections []string) ([]*types.Section, []string) {
	allowed := make([]string, 0, len(allowedSections))
	allowedSet := make(map[string]bool, len(allowedSections))
	for _, s := range allowedSections {
		key := strings.ToLower(s)
		allowed = append(allowed, key)
		allowedSet[key] = true
	}

	var sections []*types.Section
	var current *types.Section
	var currentEntry *types.Entry

	newSection := func(title string) {
		currentEntry = nil
		current = types.NewSection(title)
		sections = append(sections, current)
	}
	ensureSection := func() {
		if current == nil {
			newSection(fallbackSectionTitle)
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(Normalize(strings.TrimRight(raw, " \t\r")))
		if line == "" {
			continue
		}

		line = cleanMarkdown(line)
		if onlyHashes.MatchString(line) {
			continue
		}

		if strings.HasPrefix(line, "# ") && !strings.HasPrefix(line, "## ") {
			// Top-level title, usually the candidate name.
			continue
		}
		if strings.HasPrefix(line, "## ") {
			title := strings.TrimSpace(line[3:])
			if name != "" && strings.EqualFold(title, name) {
				continue
			}
			if len(allowedSet) == 0 || allowedSet[strings.ToLower(title)] {
				newSection(title)
			} else {
				current = nil
			}
			continue
		}
		if current == nil && len(allowedSet) > 0 {
			// Content outside accepted sections is dropped, not an error.
			continue
		}

		if strings.HasPrefix(line, "### ") {
			ensureSection()
			currentEntry = parseEntryHeading(strings.TrimSpace(line[4:]))
			current.Entries = append(current.Entries, currentEntry)
			continue
		}

		if horizontalRule.MatchString(line) {
			continue
		}

		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
			ensureSection()
			item := strings.TrimSpace(line[2:])
			if strings.Contains(strings.ToLower(current.Title), "skill") {
				appendSkills(current, item)
			} else if currentEntry != nil {
				currentEntry.Bullets = append(currentEntry.Bullets, item)
			} else {
				current.Bullets = append(current.Bullets, item)
			}
			continue
		}

		ensureSection()
		if strings.EqualFold(current.Title, "education") && strings.Contains(line, "|") {
			current.Entries = append(current.Entries, parseEducationShorthand(line))
			continue
		}
		if currentEntry != nil {
			switch {
			case dateToken.MatchString(line):
				currentEntry.Date = line
			case currentEntry.Subtitle == "":
				currentEntry.Subtitle = line
			default:
				current.Paragraphs = append(current.Paragraphs, line)
			}
		} else {
			current.Paragraphs = append(current.Paragraphs, line)
		}
	}

	return sections, allowed
}

// parseEntryHeading splits "### " content on pipes. When the last field looks
// like a date it becomes the entry date and the middle fields the subtitle;
// otherwise everything after the first field is the subtitle.
func parseEntryHeading(content string) *types.Entry {
	parts := strings.Split(content, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	e := &types.Entry{}
	if len(parts) >= 2 && dateToken.MatchString(parts[len(parts)-1]) {
		e.Date = parts[len(parts)-1]
		e.Title = parts[0]
		if len(parts) > 2 {
			e.Subtitle = strings.Join(parts[1:len(parts)-1], " | ")
		}
	} else {
		e.Title = parts[0]
		if len(parts) > 1 {
			e.Subtitle = strings.Join(parts[1:], " | ")
		}
	}
	return e
}

// parseEducationShorthand recognizes the one-line "Title - School | Date"
// form inside an Education section.
func parseEducationShorthand(line string) *types.Entry {
	left, right, _ := strings.Cut(line, "|")
	e := &types.Entry{Date: strings.TrimSpace(right)}
	left = strings.TrimSpace(left)
	if title, school, ok := strings.Cut(left, " - "); ok {
		e.Title = strings.TrimSpace(title)
		e.Subtitle = strings.TrimSpace(school)
	} else {
		e.Title = left
	}
	return e
}

// appendSkills splits a skills bullet on commas, dropping a leading
// "category:" label when present.
func appendSkills(section *types.Section, item string) {
	if _, rest, ok := strings.Cut(item, ":"); ok {
		item = strings.TrimSpace(rest)
	}
	for _, part := range strings.Split(item, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			section.Skills = append(section.Skills, part)
		}
	}
}

func cleanMarkdown(s string) string {
	s = boldStars.ReplaceAllString(s, "$1")
	s = boldUnderscores.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}
