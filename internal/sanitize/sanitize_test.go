package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_RemovesControlCharacters(t *testing.T) {
	assert.Equal(t, "hello world", Clean("hello\x00\tworld"))
	assert.Equal(t, "a b", Clean("a\r\nb"))
}

func TestClean_StripsEmoji(t *testing.T) {
	assert.Equal(t, "Shipped the launch", Clean("Shipped the launch 🚀"))
	assert.Equal(t, "Great team", Clean("Great team 👍🏽"))
	assert.Equal(t, "Go engineer", Clean("Go engineer 👨‍💻"))
}

func TestClean_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "one two three", Clean("  one   two\t\tthree  "))
}

func TestClean_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Clean(""))
	assert.Equal(t, "", Clean("   \t\n  "))
}

func TestClean_PreservesPunctuationAndAccents(t *testing.T) {
	assert.Equal(t, "Résumé — 50% faster (p99)", Clean("Résumé — 50% faster (p99)"))
}

func TestClean_KeepsTextSymbols(t *testing.T) {
	assert.Equal(t, "Ran services at 90° C", Clean("Ran services at 90° C"))
	assert.Equal(t, "Acme© and Widget™", Clean("Acme© and Widget™"))
	assert.Equal(t, "x^2 via `go test`", Clean("x^2 via `go test`"))
}

func TestCleanBullet_NormalizesGlyphs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"round bullet", "• Built the pipeline", "Built the pipeline"},
		{"dash", "- Built the pipeline", "Built the pipeline"},
		{"asterisk", "* Built the pipeline", "Built the pipeline"},
		{"doubled marker", "• - Built the pipeline", "Built the pipeline"},
		{"no marker", "Built the pipeline", "Built the pipeline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanBullet(tt.input))
		})
	}
}

func TestCleanAll_DropsEmptyEntries(t *testing.T) {
	got := CleanAll([]string{"Go", "  ", "Kubernetes", "\x00"})
	assert.Equal(t, []string{"Go", "Kubernetes"}, got)
	assert.Nil(t, CleanAll([]string{" ", "\t"}), "all-empty input yields no entries")
}
