package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderOptions_Mode(t *testing.T) {
	tests := []struct {
		name  string
		pages int
		want  Mode
	}{
		{"one page", 1, ModeOnePage},
		{"two pages", 2, ModeTwoPage},
		{"zero is unconstrained", 0, ModeMultiPage},
		{"three is unconstrained", 3, ModeMultiPage},
		{"negative is unconstrained", -1, ModeMultiPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := RenderOptions{RequestedPageCount: tt.pages}
			assert.Equal(t, tt.want, opts.Mode())
		})
	}
}
