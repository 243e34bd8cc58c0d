package rendering

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractStyle returns the contents of the first <style> element in a
// template document, or "" when the template has none.
func ExtractStyle(templateHTML string) (string, error) {
	doc, err := parseTemplate(templateHTML)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Find("style").First().Text()), nil
}

// ExtractHeader returns the template's header block as HTML, or "" when the
// template has no <div class="header">.
func ExtractHeader(templateHTML string) (string, error) {
	doc, err := parseTemplate(templateHTML)
	if err != nil {
		return "", err
	}
	sel := doc.Find("div.header").First()
	if sel.Length() == 0 {
		return "", nil
	}
	html, err := goquery.OuterHtml(sel)
	if err != nil {
		return "", &TemplateError{Message: "failed to serialize template header", Cause: err}
	}
	return html, nil
}

// ExtractSectionTitles returns the section titles declared by a template, in
// document order, excluding the hidden "additional information" section.
// This list becomes the allow-list for tailored output.
func ExtractSectionTitles(templateHTML string) ([]string, error) {
	doc, err := parseTemplate(templateHTML)
	if err != nil {
		return nil, err
	}
	var titles []string
	doc.Find(".section-title").Each(func(_ int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.Text())
		if title == "" || strings.EqualFold(title, hiddenSection) {
			return
		}
		titles = append(titles, title)
	})
	return titles, nil
}

func parseTemplate(templateHTML string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(templateHTML))
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse template HTML", Cause: err}
	}
	return doc, nil
}
