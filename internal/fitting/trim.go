// Package fitting shrinks the resume section model until rendered output
// fits within a page budget.
package fitting

import (
	"strings"

	"github.com/mobee/resume-tailor/internal/types"
)

// trimPriority orders sections from least to most important. The first
// section on this list present in the model loses content first.
var trimPriority = []string{
	"additional information",
	"certifications",
	"projects",
	"professional experience",
	"education",
	"key skills / technical skills",
	"key skills",
	"technical skills",
	"professional summary",
}

// summaryTitle's last paragraph is never trimmed.
const summaryTitle = "professional summary"

// TrimOnce removes exactly one unit of content from the least-important
// trimmable section and returns true, or returns false when every section on
// the priority list is exhausted. Per section the rules apply in fixed,
// mutually exclusive order: last bullet of the last bulleted entry, then last
// flat bullet, then last skill, then last paragraph (sparing a sole summary
// paragraph), then the whole section once empty. Content is only ever deleted
// from the tail; nothing is reordered or merged.
func TrimOnce(sections *[]*types.Section) bool {
	for _, title := range trimPriority {
		s := findSection(*sections, title)
		if s == nil {
			continue
		}

		if trimmed := trimLastEntryBullet(s); trimmed {
			return true
		}
		if n := len(s.Bullets); n > 0 {
			s.Bullets = s.Bullets[:n-1]
			return true
		}
		if n := len(s.Skills); n > 0 {
			s.Skills = s.Skills[:n-1]
			return true
		}
		if n := len(s.Paragraphs); n > 0 && !(title == summaryTitle && n == 1) {
			s.Paragraphs = s.Paragraphs[:n-1]
			return true
		}
		if !s.HasContent() {
			removeSection(sections, s)
			return true
		}
	}
	return false
}

// trimLastEntryBullet removes the last bullet of the last entry that still
// has bullets, scanning entries in reverse.
func trimLastEntryBullet(s *types.Section) bool {
	for i := len(s.Entries) - 1; i >= 0; i-- {
		e := s.Entries[i]
		if n := len(e.Bullets); n > 0 {
			e.Bullets = e.Bullets[:n-1]
			return true
		}
	}
	return false
}

func findSection(sections []*types.Section, title string) *types.Section {
	for _, s := range sections {
		if strings.ToLower(s.Title) == title {
			return s
		}
	}
	return nil
}

func removeSection(sections *[]*types.Section, target *types.Section) {
	list := *sections
	for i, s := range list {
		if s == target {
			*sections = append(list[:i], list[i+1:]...)
			return
		}
	}
}
