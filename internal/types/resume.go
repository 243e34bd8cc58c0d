// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Header represents the contact block at the top of a resume
type Header struct {
	Name    string   `json:"name"`
	Contact []string `json:"contact"`
}

// Entry represents one structured item within a section: a job, project, or degree
type Entry struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Date     string   `json:"date,omitempty"`
	Bullets  []string `json:"bullets,omitempty"`

	// Raw holds the joined source block text for relevance scoring.
	// It is never rendered.
	Raw string `json:"-"`
}

// Section represents a named block of resume content. A well-formed section
// densely populates at most one of Entries/Bullets/Paragraphs/Skills, but the
// model tolerates any combination.
type Section struct {
	Title      string   `json:"title"`
	Entries    []*Entry `json:"entries,omitempty"`
	Bullets    []string `json:"bullets,omitempty"`
	Paragraphs []string `json:"paragraphs,omitempty"`
	Skills     []string `json:"skills,omitempty"`
}

// NewSection creates an empty section with the given title
func NewSection(title string) *Section {
	return &Section{Title: title}
}

// HasContent reports whether the section still carries any renderable content:
// skills, bullets, paragraphs, or an entry with at least one populated field.
func (s *Section) HasContent() bool {
	if len(s.Skills) > 0 || len(s.Bullets) > 0 || len(s.Paragraphs) > 0 {
		return true
	}
	for _, e := range s.Entries {
		if e.Title != "" || e.Subtitle != "" || e.Date != "" || len(e.Bullets) > 0 {
			return true
		}
	}
	return false
}

// ContentUnits returns the total count of bullets, paragraphs, skills, entries,
// and the section itself. Used to verify that trimming shrinks monotonically.
func (s *Section) ContentUnits() int {
	units := 1 // the section
	units += len(s.Bullets) + len(s.Paragraphs) + len(s.Skills)
	for _, e := range s.Entries {
		units += 1 + len(e.Bullets)
	}
	return units
}

// TotalUnits sums ContentUnits over a section list
func TotalUnits(sections []*Section) int {
	total := 0
	for _, s := range sections {
		total += s.ContentUnits()
	}
	return total
}
