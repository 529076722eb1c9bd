package compress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompressPhrases_CollapsesConnectors(t *testing.T) {
	in := "Responsible for the billing service in order to reduce costs"
	out := CompressPhrases(in)
	assert.Equal(t, "Led the billing service to reduce costs", out)
}

func TestCompressPhrases_StripsFillerAndParentheticals(t *testing.T) {
	in := "Successfully migrated the database (a very large one) to Postgres"
	out := CompressPhrases(in)
	assert.Equal(t, "Migrated the database to Postgres", out)
}

func TestCompressPhrases_Idempotent(t *testing.T) {
	in := "Was in charge of a variety of services as well as tooling"
	once := CompressPhrases(in)
	assert.Equal(t, once, CompressPhrases(once))
}

func TestCompactCommaLists(t *testing.T) {
	assert.Equal(t, "Go, Rust, Python", CompactCommaLists("Go, Rust, and Python"))
	assert.Equal(t, "no list here", CompactCommaLists("no list here"))
}

func TestClampWords(t *testing.T) {
	in := "one two three four five six seven"
	assert.Equal(t, "one two three.", ClampWords(in, 3))
	assert.Equal(t, in, ClampWords(in, 10), "short text left alone")
	assert.Equal(t, "one.", ClampWords(in, 0), "never clamps to empty")
	assert.Equal(t, "", ClampWords("", 3))
}

func TestClampWords_TrimsDanglingPunctuation(t *testing.T) {
	assert.Equal(t, "shipped the release.", ClampWords("shipped the release, then iterated", 3))
}

func TestClampWords_Idempotent(t *testing.T) {
	once := ClampWords("one two three four five six", 4)
	assert.Equal(t, once, ClampWords(once, 4))
}

func TestCompressToBand_LeavesShortTextAlone(t *testing.T) {
	assert.Equal(t, "Built the compiler", CompressToBand("Built the compiler", 24))
}

func TestCompressToBand_HardClampsAsLastResort(t *testing.T) {
	words := make([]string, 40)
	for i := range words {
		words[i] = "word"
	}
	out := CompressToBand(strings.Join(words, " "), 10)
	assert.LessOrEqual(t, CountWords(out), 10)
	assert.NotEmpty(t, out)
}

func TestMergeSentences(t *testing.T) {
	merged := MergeSentences("Built the compiler.", "Shipped it to production")
	assert.Equal(t, "Built the compiler; shipped it to production", merged)

	assert.Equal(t, "b", MergeSentences("", "b"))
	assert.Equal(t, "a", MergeSentences("a", ""))
}

func TestMergeSentences_PreservesProperNouns(t *testing.T) {
	merged := MergeSentences("Cut latency by half", "AWS migration finished early")
	assert.Equal(t, "Cut latency by half; AWS migration finished early", merged)
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 3, CountWords("  a  b c "))
}
