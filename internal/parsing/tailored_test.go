package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTailored(t *testing.T) {
	input := "## Key Skills\n- Languages: Python, Go, Rust\n## Professional Experience\n### Backend Engineer | Acme | 01/2020 - Present\n- Built service X"
	sections, allowed := ParseTailored(input, "Jane Doe", []string{"Key Skills", "Professional Experience"})

	require.Len(t, sections, 2)
	assert.Equal(t, []string{"key skills", "professional experience"}, allowed)

	skills := sections[0]
	assert.Equal(t, "Key Skills", skills.Title)
	assert.Equal(t, []string{"Python", "Go", "Rust"}, skills.Skills)

	exp := sections[1]
	assert.Equal(t, "Professional Experience", exp.Title)
	require.Len(t, exp.Entries, 1)
	e := exp.Entries[0]
	assert.Equal(t, "Backend Engineer", e.Title)
	assert.Equal(t, "Acme", e.Subtitle)
	assert.Equal(t, "01/2020 - Present", e.Date)
	assert.Equal(t, []string{"Built service X"}, e.Bullets)
}

func TestParseTailoredRejectsUnlistedSections(t *testing.T) {
	input := "## Hobbies\n- knitting\n## Skills\n- Go"
	sections, _ := ParseTailored(input, "", []string{"Skills"})

	require.Len(t, sections, 1)
	assert.Equal(t, "Skills", sections[0].Title)
	assert.Equal(t, []string{"Go"}, sections[0].Skills)
}

func TestParseTailoredSkipsNameHeading(t *testing.T) {
	input := "# Jane Doe\n## Jane Doe\n## Summary\nExperienced engineer."
	sections, _ := ParseTailored(input, "Jane Doe", []string{"Summary"})

	require.Len(t, sections, 1)
	assert.Equal(t, "Summary", sections[0].Title)
	assert.Equal(t, []string{"Experienced engineer."}, sections[0].Paragraphs)
}

func TestParseTailoredBoldAndRules(t *testing.T) {
	input := "## Summary\n**Strong** __generalist__ background.\n---\n## Skills\n- Go"
	sections, _ := ParseTailored(input, "", nil)

	require.Len(t, sections, 2)
	assert.Equal(t, []string{"Strong generalist background."}, sections[0].Paragraphs)
}

func TestParseTailoredEducationShorthand(t *testing.T) {
	input := "## Education\nBSc Computer Science - Some University | 2019"
	sections, _ := ParseTailored(input, "", []string{"Education"})

	require.Len(t, sections, 1)
	require.Len(t, sections[0].Entries, 1)
	e := sections[0].Entries[0]
	assert.Equal(t, "BSc Computer Science", e.Title)
	assert.Equal(t, "Some University", e.Subtitle)
	assert.Equal(t, "2019", e.Date)
}

func TestParseTailoredEntryWithoutDateField(t *testing.T) {
	input := "## Projects\n### Static Site Generator | Personal\nRebuilt the pipeline."
	sections, _ := ParseTailored(input, "", []string{"Projects"})

	require.Len(t, sections, 1)
	e := sections[0].Entries[0]
	assert.Equal(t, "Static Site Generator", e.Title)
	assert.Equal(t, "Personal", e.Subtitle)
	assert.Empty(t, e.Date)
	// Free line with an open entry and a subtitle already set becomes a paragraph.
	assert.Equal(t, []string{"Rebuilt the pipeline."}, sections[0].Paragraphs)
}

func TestParseTailoredNoAllowListFallback(t *testing.T) {
	sections, allowed := ParseTailored("- loose bullet", "", nil)
	require.Len(t, sections, 1)
	assert.Equal(t, "Tailored Resume", sections[0].Title)
	assert.Equal(t, []string{"loose bullet"}, sections[0].Bullets)
	assert.Empty(t, allowed)
}

func TestParseTailoredDropsContentOutsideSections(t *testing.T) {
	sections, _ := ParseTailored("stray line\n- stray bullet", "", []string{"Skills"})
	assert.Empty(t, sections)
}
