// Package rendering converts the structured section model into HTML markup
// and assembles complete documents.
package rendering

import (
	"html/template"
	"sort"
	"strings"

	"github.com/mobee/resume-tailor/internal/types"
)

// hiddenSection is parsed and trimmed like any other section but never
// rendered.
const hiddenSection = "additional information"

// defaultSectionOrder is used when no allow-list constrains ordering.
var defaultSectionOrder = []string{
	"professional summary",
	"key skills / technical skills",
	"key skills",
	"technical skills",
	"professional experience",
	"projects",
	"education",
	"certifications",
	"additional information",
}

var sectionTmpl = template.Must(template.New("section").Parse(`<div class="section">
<div class="section-title">{{.Title}}</div>
{{- if .Skills}}
<div class="skills-grid">{{range .Skills}}<span class="skill-tag">{{.}}</span>{{end}}</div>
{{- end}}
{{- range .Paragraphs}}
<p class="summary">{{.}}</p>
{{- end}}
{{- range .Entries}}
<div class="entry">
<div class="entry-header">
<span class="entry-title">{{.Title}}</span>{{if .Date}}<span class="entry-date">{{.Date}}</span>{{end}}
</div>
{{- if .Subtitle}}
<div class="entry-subtitle">{{.Subtitle}}</div>
{{- end}}
{{- if .Bullets}}
<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>
{{- end}}
</div>
{{- end}}
{{- if .Bullets}}
<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>
{{- end}}
</div>`))

// RenderSections renders the section model to markup fragments. Sections are
// ordered by the lowercased allow-list (unknown titles follow, sorted
// alphabetically); the "additional information" section is never rendered.
func RenderSections(sections []*types.Section, allowedOrder []string) (string, error) {
	order := allowedOrder
	if len(order) == 0 {
		order = defaultSectionOrder
	}
	rank := make(map[string]int, len(order))
	for i, title := range order {
		if _, ok := rank[title]; !ok {
			rank[title] = i
		}
	}

	sorted := make([]*types.Section, len(sections))
	copy(sorted, sections)
	sort.SliceStable(sorted, func(a, b int) bool {
		ta, tb := strings.ToLower(sorted[a].Title), strings.ToLower(sorted[b].Title)
		ra, okA := rank[ta]
		rb, okB := rank[tb]
		switch {
		case okA && okB:
			return ra < rb
		case okA != okB:
			return okA
		default:
			return ta < tb
		}
	})

	var sb strings.Builder
	for _, s := range sorted {
		if strings.ToLower(s.Title) == hiddenSection {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		if err := sectionTmpl.Execute(&sb, s); err != nil {
			return "", &TemplateError{Message: "failed to render section " + s.Title, Cause: err}
		}
	}
	return sb.String(), nil
}
