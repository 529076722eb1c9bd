package measure

import (
	"strings"

	"github.com/jonathan/resume-renderer/internal/fonts"
	"github.com/jonathan/resume-renderer/internal/layout"
)

const (
	contactSeparator   = " | "
	maxContactLines    = 2
	maxContactsPerLine = 3
)

// HeaderLines lays out the document header: the name (never shortened),
// the headline (shrunk toward its font-size floor, then truncated), and
// the contact items packed into at most two lines of at most three items
// each. URLs are never truncated, only reflowed between lines.
func HeaderLines(m *Metrics, styles fonts.StyleTable, header layout.Header, width float64) []Line {
	var lines []Line
	lines = append(lines, Line{Text: header.Name, Style: styles.Name})

	if header.Headline != "" {
		lines = append(lines, headlineLine(m, styles, header.Headline, width))
	}

	for _, items := range packContacts(m, styles.Meta, header.Contacts, width) {
		lines = append(lines, Line{
			Text:  strings.Join(items, contactSeparator),
			Style: styles.Meta,
		})
	}
	return lines
}

// headlineLine shrinks the headline font size in half-point steps down to
// the floor; if it still does not fit on one line it is truncated with an
// ellipsis at the floor size.
func headlineLine(m *Metrics, styles fonts.StyleTable, headline string, width float64) Line {
	style := styles.Body
	for style.Size > fonts.HeadlineMinSize {
		if m.TextWidth(style, headline) <= width {
			return Line{Text: headline, Style: style}
		}
		style = style.WithSize(style.Size - 0.5)
	}
	if m.TextWidth(style, headline) <= width {
		return Line{Text: headline, Style: style}
	}
	return Line{Text: TruncateToWidth(m, style, headline, width), Style: style}
}

// packContacts greedily fills contact lines, bounded by both the item
// count and the measured width. An item too wide to share a line gets a
// line of its own rather than being cut. Items that do not fit within the
// two-line budget are dropped, lowest priority (links) last in order.
func packContacts(m *Metrics, style fonts.Style, contacts []string, width float64) [][]string {
	var packed [][]string
	var current []string

	flush := func() {
		if len(current) > 0 {
			packed = append(packed, current)
			current = nil
		}
	}

	for _, item := range contacts {
		if len(packed) == maxContactLines {
			break
		}
		candidate := append(append([]string(nil), current...), item)
		joined := strings.Join(candidate, contactSeparator)
		if len(candidate) <= maxContactsPerLine && m.TextWidth(style, joined) <= width {
			current = candidate
			continue
		}
		flush()
		if len(packed) == maxContactLines {
			break
		}
		current = []string{item}
	}
	flush()

	if len(packed) > maxContactLines {
		packed = packed[:maxContactLines]
	}
	return packed
}
