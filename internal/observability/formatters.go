// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-renderer/internal/types"
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs a human-readable summary of the parsed resume document.
func (p *Printer) PrintDocument(doc *types.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Contact.Name))
	if doc.Headline != "" {
		sb.WriteString(fmt.Sprintf("Headline: %s\n", doc.Headline))
	}
	sb.WriteString("\n")

	bullets := 0
	for _, role := range doc.Roles {
		bullets += len(role.Bullets)
	}
	sb.WriteString(fmt.Sprintf("Roles:          %d (%d bullets)\n", len(doc.Roles), bullets))
	sb.WriteString(fmt.Sprintf("Projects:       %d\n", len(doc.Projects)))
	sb.WriteString(fmt.Sprintf("Skill groups:   %d\n", len(doc.Skills)))
	sb.WriteString(fmt.Sprintf("Education:      %d\n", len(doc.Education)))
	sb.WriteString(fmt.Sprintf("Certifications: %d", len(doc.Certifications)))

	p.printBox("PARSED DOCUMENT", sb.String())
}

// PrintRenderResult outputs the outcome of a render run.
func (p *Printer) PrintRenderResult(result *types.RenderResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mode:   %s\n", result.ModeUsed))
	sb.WriteString(fmt.Sprintf("Pages:  %d\n", result.PageCount))
	sb.WriteString(fmt.Sprintf("Output: %s\n", result.Filename))
	sb.WriteString(fmt.Sprintf("Size:   %d bytes", len(result.Bytes)))

	p.printBox("RENDER RESULT", sb.String())
}

// PrintAssessment outputs the fit assessment with per-section issues.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintAssessment(assessment *types.Assessment) {
	if assessment == nil {
		return
	}

	if assessment.OK {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ DOCUMENT FITS REQUESTED MODE")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Requested: %s\n", assessment.RequestedMode))
	sb.WriteString(fmt.Sprintf("Used:      %s (%d pages)\n\n", assessment.ModeUsed, assessment.Pages))
	sb.WriteString(fmt.Sprintf("Found %d issues:\n\n", len(assessment.Issues)))

	count := min(len(assessment.Issues), maxItemsToShow)
	for i := 0; i < count; i++ {
		issue := assessment.Issues[i]
		message := issue.Message
		if len(message) > 45 {
			message = message[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", issue.Code))
		sb.WriteString(fmt.Sprintf("  %s\n", message))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(assessment.Issues) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more issues", len(assessment.Issues)-maxItemsToShow))
	}

	p.printBox("FIT ASSESSMENT", strings.TrimSuffix(sb.String(), "\n"))
}
