package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobee/resume-tailor/internal/types"
)

func TestRenderSectionsMarkup(t *testing.T) {
	sections := []*types.Section{
		{
			Title:  "Technical Skills",
			Skills: []string{"Go", "SQL"},
		},
		{
			Title: "Projects",
			Entries: []*types.Entry{
				{Title: "Inventory Service", Subtitle: "Acme", Date: "2021", Bullets: []string{"Did things"}},
			},
		},
	}

	html, err := RenderSections(sections, nil)
	require.NoError(t, err)

	assert.Contains(t, html, `<div class="section-title">Technical Skills</div>`)
	assert.Contains(t, html, `<span class="skill-tag">Go</span><span class="skill-tag">SQL</span>`)
	assert.Contains(t, html, `<span class="entry-title">Inventory Service</span>`)
	assert.Contains(t, html, `<span class="entry-date">2021</span>`)
	assert.Contains(t, html, `<div class="entry-subtitle">Acme</div>`)
	assert.Contains(t, html, `<li>Did things</li>`)
}

func TestRenderSectionsOrder(t *testing.T) {
	sections := []*types.Section{
		{Title: "Projects", Bullets: []string{"x"}},
		{Title: "Summary", Paragraphs: []string{"p"}},
	}

	html, err := RenderSections(sections, []string{"summary", "projects"})
	require.NoError(t, err)
	assert.Less(t, strings.Index(html, "Summary"), strings.Index(html, "Projects"))
}

func TestRenderSectionsUnknownTitlesLast(t *testing.T) {
	sections := []*types.Section{
		{Title: "Zebra", Bullets: []string{"x"}},
		{Title: "Projects", Bullets: []string{"x"}},
		{Title: "Apples", Bullets: []string{"x"}},
	}

	html, err := RenderSections(sections, []string{"projects"})
	require.NoError(t, err)
	assert.Less(t, strings.Index(html, "Projects"), strings.Index(html, "Apples"))
	assert.Less(t, strings.Index(html, "Apples"), strings.Index(html, "Zebra"))
}

func TestRenderSectionsHidesAdditionalInformation(t *testing.T) {
	sections := []*types.Section{
		{Title: "Additional Information", Bullets: []string{"secret"}},
		{Title: "Projects", Bullets: []string{"visible"}},
	}

	html, err := RenderSections(sections, nil)
	require.NoError(t, err)
	assert.NotContains(t, html, "secret")
	assert.Contains(t, html, "visible")
}

func TestRenderSectionsEscapesContent(t *testing.T) {
	sections := []*types.Section{
		{Title: "Projects", Bullets: []string{"<script>alert(1)</script>"}},
	}

	html, err := RenderSections(sections, nil)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
