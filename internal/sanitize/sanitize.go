// Package sanitize provides one-shot text cleaning applied when the layout
// model is built, so every downstream stage operates on clean text.
package sanitize

import (
	"strings"
	"unicode"
)

// bulletGlyphs are leading list markers normalized to a plain dash.
var bulletGlyphs = map[rune]bool{
	'•': true,
	'◦': true,
	'▪': true,
	'▸': true,
	'●': true,
	'○': true,
	'–': true,
	'—': true,
	'*': true,
	'·': true,
}

// pictographs covers the emoji and dingbat blocks that have no glyph in
// the resume fonts and must never reach the measurer. The table is
// deliberately narrower than the So category: characters like degree,
// copyright, and trademark signs stay in.
var pictographs = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x26FF, Stride: 1}, // miscellaneous symbols
		{Lo: 0x2700, Hi: 0x27BF, Stride: 1}, // dingbats
	},
	R32: []unicode.Range32{
		{Lo: 0x1F000, Hi: 0x1F2FF, Stride: 1}, // mahjong, dominoes, playing cards, enclosed
		{Lo: 0x1F300, Hi: 0x1FAFF, Stride: 1}, // emoji blocks through symbols extended
	},
}

var pictographRanges = []*unicode.RangeTable{
	pictographs,
	unicode.Co, // private use
}

// Clean removes control characters and pictographic symbols, collapses
// runs of whitespace to a single space, and trims the result.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		switch {
		case r == '‍' || r == '︎' || r == '️':
			// Zero-width joiners and variation selectors travel with emoji.
		case unicode.IsControl(r):
			result.WriteRune(' ')
		case unicode.IsOneOf(pictographRanges, r):
		case unicode.IsSpace(r):
			result.WriteRune(' ')
		default:
			result.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(result.String()), " ")
}

// CleanBullet cleans a bullet sentence and strips any leading list marker;
// bullets get their dash from the renderer, not from the source text.
func CleanBullet(text string) string {
	cleaned := Clean(text)
	for {
		trimmed := strings.TrimLeft(cleaned, " ")
		r := firstRune(trimmed)
		if r == 0 || (!bulletGlyphs[r] && r != '-') {
			return trimmed
		}
		cleaned = strings.TrimPrefix(trimmed, string(r))
	}
}

// CleanAll cleans every string in a slice, dropping entries that clean to
// empty.
func CleanAll(values []string) []string {
	var cleaned []string
	for _, v := range values {
		if c := Clean(v); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	return cleaned
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
