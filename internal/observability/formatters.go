// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mobee/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSections outputs a summary of the parsed section model.
func (p *Printer) PrintSections(sections []*types.Section) {
	if len(sections) == 0 {
		return
	}

	var sb strings.Builder
	for _, s := range sections {
		sb.WriteString(s.Title)
		var parts []string
		if n := len(s.Entries); n > 0 {
			parts = append(parts, fmt.Sprintf("%d entries", n))
		}
		if n := len(s.Bullets); n > 0 {
			parts = append(parts, fmt.Sprintf("%d bullets", n))
		}
		if n := len(s.Skills); n > 0 {
			parts = append(parts, fmt.Sprintf("%d skills", n))
		}
		if n := len(s.Paragraphs); n > 0 {
			parts = append(parts, fmt.Sprintf("%d paragraphs", n))
		}
		if len(parts) > 0 {
			sb.WriteString("  (" + strings.Join(parts, ", ") + ")")
		}
		sb.WriteString("\n")
	}
	p.printBox("Parsed Sections", strings.TrimRight(sb.String(), "\n"))
}

// PrintKeywords outputs the extracted keyword set.
func (p *Printer) PrintKeywords(keywords []string) {
	if len(keywords) == 0 {
		return
	}
	p.printBox("Extracted Keywords", strings.Join(keywords, ", "))
}

// PrintAssessment outputs a human-readable fit assessment summary.
func (p *Printer) PrintAssessment(a *types.FitAssessment) {
	if a == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Recommendation: %s\n", a.Recommendation))
	sb.WriteString(fmt.Sprintf("Confidence:     %d%%\n", a.Confidence))
	if a.Rationale != "" {
		sb.WriteString(fmt.Sprintf("Rationale:      %s\n", a.Rationale))
	}
	if len(a.MatchedRequirements) > 0 {
		sb.WriteString("\nMatched:\n")
		count := min(len(a.MatchedRequirements), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", a.MatchedRequirements[i]))
		}
		if len(a.MatchedRequirements) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(a.MatchedRequirements)-maxItemsToShow))
		}
	}
	if len(a.MissingRequirements) > 0 {
		sb.WriteString("\nMissing:\n")
		count := min(len(a.MissingRequirements), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", a.MissingRequirements[i]))
		}
		if len(a.MissingRequirements) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(a.MissingRequirements)-maxItemsToShow))
		}
	}
	p.printBox("Fit Assessment", strings.TrimRight(sb.String(), "\n"))
}

// PrintFitResult outputs the outcome of the page-fit loop.
func (p *Printer) PrintFitResult(pages, iterations int, fitted bool) {
	status := "fits page budget"
	if !fitted {
		status = "best effort, over budget"
	}
	content := fmt.Sprintf("Pages:      %d\nIterations: %d\nStatus:     %s", pages, iterations, status)
	p.printBox("Page Fitting", content)
}
