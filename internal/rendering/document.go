package rendering

import (
	"html/template"
	"strings"
)

// contactItem is one rendered contact entry; URLs become links with the
// scheme stripped from the label.
type contactItem struct {
	Href  string
	Label string
}

var headerTmpl = template.Must(template.New("header").Parse(`<div class="header">
<h1>{{.Name}}</h1>
<div class="tagline">{{.Tagline}}</div>
<div class="contact-row">{{range $i, $c := .Contact}}{{if $i}} <span>-</span> {{end}}{{if $c.Href}}<a href="{{$c.Href}}">{{$c.Label}}</a>{{else}}{{$c.Label}}{{end}}{{end}}</div>
</div>`))

var documentTmpl = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
{{.CSS}}
</style>
</head>
<body>
<div class="page">
{{.Body}}
</div>
</body>
</html>
`))

// RenderHeader builds the resume header block from the candidate name,
// tagline, and contact items.
func RenderHeader(name, tagline string, contact []string) (string, error) {
	items := make([]contactItem, 0, len(contact))
	for _, c := range contact {
		if strings.HasPrefix(c, "http") {
			label := strings.TrimPrefix(strings.TrimPrefix(c, "https://"), "http://")
			items = append(items, contactItem{Href: c, Label: label})
		} else {
			items = append(items, contactItem{Label: c})
		}
	}

	var sb strings.Builder
	err := headerTmpl.Execute(&sb, struct {
		Name    string
		Tagline string
		Contact []contactItem
	}{Name: name, Tagline: tagline, Contact: items})
	if err != nil {
		return "", &TemplateError{Message: "failed to render header", Cause: err}
	}
	return sb.String(), nil
}

// RenderDocument composes body markup and a stylesheet into a complete HTML
// document.
func RenderDocument(title, body, css string) (string, error) {
	var sb strings.Builder
	err := documentTmpl.Execute(&sb, struct {
		Title string
		Body  template.HTML
		CSS   template.CSS
	}{Title: title, Body: template.HTML(body), CSS: template.CSS(css)}) //nolint:gosec // body and css are produced by our own renderer/template introspection
	if err != nil {
		return "", &TemplateError{Message: "failed to render document", Cause: err}
	}
	return sb.String(), nil
}

// ApplyTagline splices a tagline into an existing header block's tagline
// slot. The header is returned unchanged when it has no tagline element.
func ApplyTagline(headerHTML, tagline string) string {
	if headerHTML == "" || tagline == "" {
		return headerHTML
	}
	const startToken = `<div class="tagline">`
	const endToken = `</div>`
	start := strings.Index(headerHTML, startToken)
	if start == -1 {
		return headerHTML
	}
	start += len(startToken)
	end := strings.Index(headerHTML[start:], endToken)
	if end == -1 {
		return headerHTML
	}
	return headerHTML[:start] + template.HTMLEscapeString(tagline) + headerHTML[start+end:]
}
