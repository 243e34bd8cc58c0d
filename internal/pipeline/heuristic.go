package pipeline

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/mobee/resume-tailor/internal/keywords"
	"github.com/mobee/resume-tailor/internal/parsing"
	"github.com/mobee/resume-tailor/internal/rendering"
	"github.com/mobee/resume-tailor/internal/types"
)

// Conventional section names in dashed-header resumes. Lookups are
// case-insensitive.
var (
	summarySectionNames = []string{"Professional Summary", "Summary", "Software Engineer"}
	workSectionName     = "Work experience/Projects"
	volunteerSection    = "Volunteer Experience"
)

// defaultSummary backs a resume with no summary section.
const defaultSummary = "Software engineer with a strong foundation in web technologies, networking, and object-oriented programming."

// generateHeuristic runs the local path with no external text generation:
// parse the conventional resume sections, reorder by job-keyword relevance,
// and render.
func generateHeuristic(ctx context.Context, opts GenerateOptions, header types.Header, sectionMap *parsing.SectionMap, templateHeader, style string, result *Result) error {
	summary, headline := findSummary(sectionMap)

	education := parsing.ParseEducation(bodyOf(sectionMap, "Education"))

	skills := parsing.ParseSkills(bodyOf(sectionMap, "Skills"))
	skills = keywords.FilterSkills(skills, opts.JobText, maxFilteredSkills, minFilteredSkills)

	workEntries := parsing.ParseExperience(bodyOf(sectionMap, workSectionName))
	volunteerEntries := parsing.ParseExperience(bodyOf(sectionMap, volunteerSection))
	experience, projects := parsing.ClassifyWork(workEntries)

	certificates := parsing.ParseList(bodyOf(sectionMap, "Certificates"))
	interests := parsing.ParseList(bodyOf(sectionMap, "Interests"))

	kw := keywords.Extract(opts.JobText, skills)
	if len(kw) > 0 {
		skills = reorderSkills(skills, kw)
		sortByRelevance(projects, kw)
		sortByRelevance(experience, kw)
	}

	if summary == "" {
		summary = defaultSummary
	}
	summary = augmentSummary(summary, kw)

	tagline := buildTagline(headline, kw)
	sections, order := buildHeuristicSections(summary, education, skills, projects, experience, volunteerEntries, certificates, interests)

	headerHTML := templateHeader
	if headerHTML == "" {
		var err error
		headerHTML, err = rendering.RenderHeader(header.Name, "", header.Contact)
		if err != nil {
			return err
		}
	}
	if tagline != "" {
		headerHTML = rendering.ApplyTagline(headerHTML, tagline)
	}

	result.Tagline = tagline
	result.Sections = sections
	result.Keywords = kw
	return renderAndFit(ctx, opts, headerHTML, style, order, result)
}

// findSummary locates the summary section and returns its joined text plus
// the headline implied by its title (a role-named summary section doubles as
// the headline).
func findSummary(sectionMap *parsing.SectionMap) (summary, headline string) {
	for _, name := range summarySectionNames {
		body, ok := sectionMap.GetFold(name)
		if !ok {
			continue
		}
		var parts []string
		for _, l := range body {
			if strings.TrimSpace(l) != "" {
				parts = append(parts, l)
			}
		}
		if name == "Software Engineer" {
			headline = name
		}
		return strings.Join(parts, " "), headline
	}
	return "", ""
}

// augmentSummary terminates the summary sentence and appends the leading
// keywords as a relevance hint.
func augmentSummary(summary string, kw []string) string {
	if summary != "" {
		last, _ := utf8.DecodeLastRuneInString(summary)
		if !strings.ContainsRune(".!?…", last) {
			summary += "."
		}
	}
	if len(kw) > 0 {
		lead := kw
		if len(lead) > 4 {
			lead = lead[:4]
		}
		summary = strings.TrimRight(summary, ". ") + ". Relevant focus: " + strings.Join(lead, ", ") + "."
	}
	return summary
}

// buildTagline joins the headline with the top keywords.
func buildTagline(headline string, kw []string) string {
	if len(kw) == 0 {
		return headline
	}
	lead := kw
	if len(lead) > 3 {
		lead = lead[:3]
	}
	extra := strings.Join(lead, ", ")
	if headline == "" {
		return extra
	}
	return headline + " - " + extra
}

// reorderSkills puts keyword-matching skills first, each group sorted
// alphabetically.
func reorderSkills(skills, kw []string) []string {
	kwSet := make(map[string]bool, len(kw))
	for _, k := range kw {
		kwSet[strings.ToLower(k)] = true
	}
	out := make([]string, len(skills))
	copy(out, skills)
	sort.SliceStable(out, func(a, b int) bool {
		ma, mb := kwSet[strings.ToLower(out[a])], kwSet[strings.ToLower(out[b])]
		if ma != mb {
			return ma
		}
		return strings.ToLower(out[a]) < strings.ToLower(out[b])
	})
	return out
}

// sortByRelevance orders entries by descending keyword relevance of their
// raw block text, stable so equally relevant entries keep resume order.
func sortByRelevance(entries []*types.Entry, kw []string) {
	sort.SliceStable(entries, func(a, b int) bool {
		return keywords.RelevanceScore(entries[a].Raw, kw) > keywords.RelevanceScore(entries[b].Raw, kw)
	})
}

// buildHeuristicSections assembles the section model for the local path,
// returning the model and its render order.
func buildHeuristicSections(summary string, education []*types.Entry, skills []string, projects, experience, volunteer []*types.Entry, certificates, interests []string) ([]*types.Section, []string) {
	var sections []*types.Section
	addSection := func(s *types.Section) {
		if s.HasContent() {
			sections = append(sections, s)
		}
	}

	addSection(&types.Section{Title: "Professional Summary", Paragraphs: []string{summary}})
	addSection(&types.Section{Title: "Education", Entries: education})
	addSection(&types.Section{Title: "Technical Skills", Skills: skills})
	addSection(&types.Section{Title: "Projects", Entries: projects})
	addSection(&types.Section{Title: "Professional Experience", Entries: experience})
	addSection(&types.Section{Title: "Volunteer Experience", Entries: volunteer})
	addSection(&types.Section{Title: "Certifications", Bullets: certificates})
	if len(interests) > 0 {
		addSection(&types.Section{Title: "Interests", Paragraphs: []string{strings.Join(interests, " - ")}})
	}

	order := make([]string, 0, len(sections))
	for _, s := range sections {
		order = append(order, strings.ToLower(s.Title))
	}
	return sections, order
}

func bodyOf(sectionMap *parsing.SectionMap, title string) []string {
	body, _ := sectionMap.GetFold(title)
	return body
}
