package parsing

import (
	"regexp"
	"strings"
)

// dashLine matches a dashed separator: one or more '-' characters, optionally
// space-separated, nothing else.
var dashLine = regexp.MustCompile(`^-[-\s]*$`)

// urlOrEmail disqualifies a line from being a section header.
var urlOrEmail = regexp.MustCompile(`https?://|@`)

// SectionMap holds section bodies keyed by title, preserving first-seen order.
type SectionMap struct {
	titles []string
	bodies map[string][]string
}

// NewSectionMap creates an empty SectionMap
func NewSectionMap() *SectionMap {
	return &SectionMap{bodies: make(map[string][]string)}
}

// Add registers a section title if not already present
func (m *SectionMap) Add(title string) {
	if _, ok := m.bodies[title]; !ok {
		m.titles = append(m.titles, title)
		m.bodies[title] = nil
	}
}

// Append adds a body line to the named section, registering it if needed
func (m *SectionMap) Append(title, line string) {
	m.Add(title)
	m.bodies[title] = append(m.bodies[title], line)
}

// Get returns the body lines for an exact title
func (m *SectionMap) Get(title string) ([]string, bool) {
	body, ok := m.bodies[title]
	return body, ok
}

// GetFold returns the body lines for a title matched case-insensitively,
// preferring the first-seen section.
func (m *SectionMap) GetFold(title string) ([]string, bool) {
	for _, t := range m.titles {
		if strings.EqualFold(t, title) {
			return m.bodies[t], true
		}
	}
	return nil, false
}

// Titles returns the section titles in insertion order
func (m *SectionMap) Titles() []string {
	out := make([]string, len(m.titles))
	copy(out, m.titles)
	return out
}

// Len returns the number of sections
func (m *SectionMap) Len() int {
	return len(m.titles)
}

// SplitSections segments raw resume text into a header block and a mapping of
// section title to body lines. A line is a section header iff it is non-empty,
// contains no URL or '@', and is followed (skipping blank lines) by a dashed
// separator line. Dashed separator lines are dropped everywhere; everything
// before the first header goes to the header block. Blank lines are preserved
// inside bodies because they delimit entries.
//
// A resume with no headers degrades to a header block and an empty map.
func SplitSections(text string) ([]string, *SectionMap) {
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = Normalize(strings.TrimRight(l, " \t\r"))
	}

	var headerBlock []string
	sections := NewSectionMap()
	current := ""
	haveCurrent := false

	i := 0
	for i < len(lines) {
		line := lines[i]
		stripped := strings.TrimSpace(line)

		if stripped == "" {
			if haveCurrent {
				sections.Append(current, "")
			} else {
				headerBlock = append(headerBlock, "")
			}
			i++
			continue
		}

		if dashLine.MatchString(stripped) {
			i++
			continue
		}

		// Two-line lookahead: a header candidate is confirmed by the next
		// non-blank line being a dashed separator. A candidate followed by
		// EOF is ordinary content.
		j := i + 1
		for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
			j++
		}
		if !urlOrEmail.MatchString(stripped) && j < len(lines) && dashLine.MatchString(strings.TrimSpace(lines[j])) {
			current = stripped
			haveCurrent = true
			sections.Add(current)
			i = j + 1
			continue
		}

		if haveCurrent {
			sections.Append(current, stripped)
		} else {
			headerBlock = append(headerBlock, stripped)
		}
		i++
	}

	return headerBlock, sections
}
