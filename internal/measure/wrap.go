package measure

import (
	"strings"

	"github.com/jonathan/resume-renderer/internal/fonts"
)

const ellipsis = "…"

// WrapText greedily packs words into lines no wider than maxWidth. A
// single word wider than maxWidth is hard-split into width-fitting chunks
// rather than overflowing the column. Empty input yields no lines.
func WrapText(m *Metrics, style fonts.Style, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := ""
	for _, word := range words {
		if m.TextWidth(style, word) > maxWidth {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			chunks := splitWord(m, style, word, maxWidth)
			lines = append(lines, chunks[:len(chunks)-1]...)
			current = chunks[len(chunks)-1]
			continue
		}

		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if m.TextWidth(style, candidate) <= maxWidth {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// splitWord breaks one overlong word into chunks that each fit maxWidth.
// Every chunk holds at least one rune so the split always terminates.
func splitWord(m *Metrics, style fonts.Style, word string, maxWidth float64) []string {
	var chunks []string
	runes := []rune(word)
	for len(runes) > 0 {
		n := len(runes)
		for n > 1 && m.TextWidth(style, string(runes[:n])) > maxWidth {
			n--
		}
		chunks = append(chunks, string(runes[:n]))
		runes = runes[n:]
	}
	return chunks
}

// TruncateToWidth returns the longest prefix of text that, together with
// an ellipsis, still fits maxWidth. Text that already fits is returned
// unchanged. The prefix length is found by binary search over measured
// widths.
func TruncateToWidth(m *Metrics, style fonts.Style, text string, maxWidth float64) string {
	if m.TextWidth(style, text) <= maxWidth {
		return text
	}

	runes := []rune(text)
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		candidate := strings.TrimRight(string(runes[:mid]), " ") + ellipsis
		if m.TextWidth(style, candidate) <= maxWidth {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if lo == 0 {
		return ellipsis
	}
	return strings.TrimRight(string(runes[:lo]), " ") + ellipsis
}
