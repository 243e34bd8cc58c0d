package rendering

import (
	"html/template"
	"strings"
)

// coverParagraph is one paragraph of a cover letter with its display class.
type coverParagraph struct {
	Class string
	Text  string
}

// coverExtraCSS styles the cover-letter body on top of the resume template's
// stylesheet.
const coverExtraCSS = `
.section-title { font-weight: 700; margin-top: 16px; }
.cover-letter p { margin: 0 0 10px; }
.cover-letter .signature { margin-top: 10px; }
@media print {
  .page { padding-top: 6mm; }
}
@media screen {
  .page { padding-top: 24px; }
}`

var coverTmpl = template.Must(template.New("cover").Parse(`{{.Header}}
<div class="section">
<div class="section-title">Cover Letter</div>
<div class="cover-letter">
{{- range .Paragraphs}}
<p class="{{.Class}}">{{.Text}}</p>
{{- end}}
</div>
</div>`))

// splitCoverParagraphs groups cover-letter lines into paragraphs on blank
// lines. A paragraph starting with "Kind regards" begins the signature: it
// and the following paragraph (the name) are styled as signature lines and
// end the letter.
func splitCoverParagraphs(coverText string) []coverParagraph {
	var paragraphs []string
	var buf []string
	for _, line := range strings.Split(strings.TrimSpace(coverText), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(buf) > 0 {
				paragraphs = append(paragraphs, strings.Join(buf, " "))
				buf = nil
			}
			continue
		}
		buf = append(buf, line)
	}
	if len(buf) > 0 {
		paragraphs = append(paragraphs, strings.Join(buf, " "))
	}

	var styled []coverParagraph
	for i, para := range paragraphs {
		if strings.HasPrefix(strings.ToLower(para), "kind regards") {
			styled = append(styled, coverParagraph{Class: "signature", Text: "Kind regards,"})
			if i+1 < len(paragraphs) {
				styled = append(styled, coverParagraph{Class: "signature", Text: paragraphs[i+1]})
			}
			break
		}
		styled = append(styled, coverParagraph{Class: "body", Text: para})
	}
	return styled
}

// RenderCoverLetter composes a cover letter document from the resume
// template's header and stylesheet plus the generated letter text.
func RenderCoverLetter(headerHTML, css, coverText string) (string, error) {
	var body strings.Builder
	err := coverTmpl.Execute(&body, struct {
		Header     template.HTML
		Paragraphs []coverParagraph
	}{Header: template.HTML(headerHTML), Paragraphs: splitCoverParagraphs(coverText)}) //nolint:gosec // header comes from our own renderer or the trusted template
	if err != nil {
		return "", &TemplateError{Message: "failed to render cover letter", Cause: err}
	}
	return RenderDocument("Cover Letter", body.String(), css+coverExtraCSS)
}
