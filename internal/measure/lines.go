package measure

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-renderer/internal/fonts"
	"github.com/jonathan/resume-renderer/internal/layout"
)

// BulletIndent is the hanging indent for wrapped bullet continuations.
const BulletIndent = 10.0

// Line is one laid-out line of text: what to draw, in which style, at
// which indent from the content left edge. The renderer draws lines
// verbatim; all decisions are made here.
type Line struct {
	Text   string
	Style  fonts.Style
	Indent float64
}

// Height sums the line heights of a laid-out run.
func Height(lines []Line) float64 {
	total := 0.0
	for _, l := range lines {
		total += l.Style.LineHeight
	}
	return total
}

// ItemLines lays out a single item into lines at the given content width.
// The switch is exhaustive over the item union; an unknown kind is a
// programming error.
func ItemLines(m *Metrics, styles fonts.StyleTable, item layout.Item, width float64) []Line {
	switch v := item.(type) {
	case *layout.Paragraph:
		return plainLines(m, styles.Body, v.Text, width, 0)

	case *layout.SkillLine:
		text := v.Category + ": " + strings.Join(v.Skills, ", ")
		if v.Category == "" {
			text = strings.Join(v.Skills, ", ")
		}
		return plainLines(m, styles.Body, text, width, 0)

	case *layout.RoleItem:
		var lines []Line
		title := joinParts(", ", v.Title, v.Company)
		lines = append(lines, plainLines(m, styles.RoleTitle, title, width, 0)...)
		if meta := joinParts(" · ", v.Dates, v.Location); meta != "" {
			lines = append(lines, plainLines(m, styles.Meta, meta, width, 0)...)
		}
		for _, b := range v.Bullets {
			lines = append(lines, bulletLines(m, styles.Bullet, b, width)...)
		}
		return lines

	case *layout.ProjectItem:
		var lines []Line
		if v.Name != "" {
			lines = append(lines, plainLines(m, styles.ProjectTitle, v.Name, width, 0)...)
		}
		for _, b := range v.Bullets {
			lines = append(lines, bulletLines(m, styles.Bullet, b, width)...)
		}
		return lines

	case *layout.EducationItem:
		lines := plainLines(m, styles.RoleTitle, v.Line1, width, 0)
		if v.Line2 != "" {
			lines = append(lines, plainLines(m, styles.Meta, v.Line2, width, 0)...)
		}
		return lines

	case *layout.FlatBullets:
		var lines []Line
		for _, b := range v.Bullets {
			lines = append(lines, bulletLines(m, styles.Bullet, b, width)...)
		}
		return lines

	default:
		panic(fmt.Sprintf("measure: unknown item kind %T", item))
	}
}

// ItemHeight returns the exact height of an item at the given width.
func ItemHeight(m *Metrics, styles fonts.StyleTable, item layout.Item, width float64) float64 {
	return Height(ItemLines(m, styles, item, width))
}

func plainLines(m *Metrics, style fonts.Style, text string, width, indent float64) []Line {
	wrapped := WrapText(m, style, text, width-indent)
	lines := make([]Line, 0, len(wrapped))
	for _, w := range wrapped {
		lines = append(lines, Line{Text: w, Style: style, Indent: indent})
	}
	return lines
}

// bulletLines wraps one bullet sentence with a leading dash and a hanging
// indent for continuation lines.
func bulletLines(m *Metrics, style fonts.Style, text string, width float64) []Line {
	wrapped := WrapText(m, style, text, width-BulletIndent)
	lines := make([]Line, 0, len(wrapped))
	for i, w := range wrapped {
		if i == 0 {
			lines = append(lines, Line{Text: "- " + w, Style: style})
		} else {
			lines = append(lines, Line{Text: w, Style: style, Indent: BulletIndent})
		}
	}
	return lines
}

func joinParts(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
