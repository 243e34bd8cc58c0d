package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCoverParagraphs(t *testing.T) {
	text := `Dear Hiring Manager,

I am writing to apply
for the backend role.

Kind regards,

Jane Doe

This trailing text must be dropped.`

	got := splitCoverParagraphs(text)
	require.Len(t, got, 4)
	assert.Equal(t, coverParagraph{Class: "body", Text: "Dear Hiring Manager,"}, got[0])
	assert.Equal(t, coverParagraph{Class: "body", Text: "I am writing to apply for the backend role."}, got[1])
	assert.Equal(t, coverParagraph{Class: "signature", Text: "Kind regards,"}, got[2])
	assert.Equal(t, coverParagraph{Class: "signature", Text: "Jane Doe"}, got[3])
}

func TestSplitCoverParagraphsNoSignature(t *testing.T) {
	got := splitCoverParagraphs("Just one paragraph.")
	require.Len(t, got, 1)
	assert.Equal(t, "body", got[0].Class)
}

func TestRenderCoverLetter(t *testing.T) {
	header := `<div class="header"><h1>Jane Doe</h1></div>`
	html, err := RenderCoverLetter(header, "body { margin: 0; }", "Dear team,\n\nKind regards,\n\nJane")
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>Jane Doe</h1>")
	assert.Contains(t, html, `<div class="section-title">Cover Letter</div>`)
	assert.Contains(t, html, `<p class="signature">Kind regards,</p>`)
	assert.Contains(t, html, `<p class="signature">Jane</p>`)
	assert.Contains(t, html, "<title>Cover Letter</title>")
	assert.Contains(t, html, "body { margin: 0; }")
}
