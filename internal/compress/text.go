package compress

import (
	"regexp"
	"strings"
	"unicode"
)

// phraseTable maps verbose connector phrases to compact equivalents.
// Replacements never contain their own source phrase, so applying the
// table twice changes nothing.
var phraseTable = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\bin order to\b`), "to"},
	{regexp.MustCompile(`(?i)\bresponsible for\b`), "led"},
	{regexp.MustCompile(`(?i)\bwas in charge of\b`), "led"},
	{regexp.MustCompile(`(?i)\bworked closely with\b`), "partnered with"},
	{regexp.MustCompile(`(?i)\bas well as\b`), "and"},
	{regexp.MustCompile(`(?i)\ba variety of\b`), "many"},
	{regexp.MustCompile(`(?i)\ba number of\b`), "several"},
	{regexp.MustCompile(`(?i)\ba wide range of\b`), "many"},
	{regexp.MustCompile(`(?i)\butilized\b`), "used"},
	{regexp.MustCompile(`(?i)\bleveraged\b`), "used"},
	{regexp.MustCompile(`(?i)\bapproximately\b`), "about"},
	{regexp.MustCompile(`(?i)\bin addition to\b`), "besides"},
}

// fillerWords are adjectives and adverbs removed outright during phrase
// compression. Dropping them never changes what was done, only how loudly.
var fillerWords = regexp.MustCompile(`(?i)\b(successfully|effectively|efficiently|very|really|extremely|highly|actively|proactively|diligently|seamlessly) `)

// parentheticals matches parenthesized asides including a leading space.
var parentheticals = regexp.MustCompile(` ?\([^)]*\)`)

// commaListAnd matches the final "and" of an enumerated comma list.
var commaListAnd = regexp.MustCompile(`, and `)

// CountWords returns the whitespace-delimited word count.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CompressPhrases rewrites text through the deterministic phrase table:
// verbose connectors collapsed, filler words stripped, parenthetical
// asides dropped. The result keeps the original sentence casing.
func CompressPhrases(text string) string {
	out := text
	for _, entry := range phraseTable {
		out = entry.pattern.ReplaceAllString(out, entry.replacement)
	}
	out = fillerWords.ReplaceAllString(out, "")
	out = parentheticals.ReplaceAllString(out, "")
	out = strings.Join(strings.Fields(out), " ")
	return capitalize(out)
}

// CompactCommaLists removes the final "and" from enumerations ("a, b, and
// c" becomes "a, b, c"), a cheap word saved per list.
func CompactCommaLists(text string) string {
	return commaListAnd.ReplaceAllString(text, ", ")
}

// ClampWords keeps the first max words and appends terminal punctuation.
// A non-empty input never clamps to an empty string: max is floored at 1.
func ClampWords(text string, max int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	if max < 1 {
		max = 1
	}
	if len(words) <= max {
		return text
	}
	clamped := strings.Join(words[:max], " ")
	clamped = strings.TrimRight(clamped, ",;:")
	if !strings.HasSuffix(clamped, ".") && !strings.HasSuffix(clamped, "!") && !strings.HasSuffix(clamped, "?") {
		clamped += "."
	}
	return clamped
}

// CompressToBand shrinks text toward the [min,max] word band: texts at or
// under max are left alone, longer texts go through phrase compression
// and, as a last resort, a hard word clamp at max. Texts already inside
// the band pass through untouched, which keeps compression idempotent.
func CompressToBand(text string, max int) string {
	if CountWords(text) <= max {
		return text
	}
	compressed := CompressPhrases(text)
	if CountWords(compressed) <= max {
		return compressed
	}
	return ClampWords(compressed, max)
}

// MergeSentences joins two bullet sentences into one combined sentence,
// preserving both; used when structural clamps shrink a bullet list.
func MergeSentences(a, b string) string {
	a = strings.TrimRight(strings.TrimSpace(a), ".")
	b = strings.TrimSpace(b)
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + "; " + lowerFirst(b)
}

func capitalize(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}

func lowerFirst(s string) string {
	for i, r := range s {
		// Leave likely acronyms and proper nouns alone.
		if i+len(string(r)) < len(s) {
			next := rune(s[i+len(string(r))])
			if unicode.IsUpper(next) {
				return s
			}
		}
		return string(unicode.ToLower(r)) + s[i+len(string(r)):]
	}
	return s
}
