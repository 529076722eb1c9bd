// Package measure is the engine's measurement core: text wrapping, width
// truncation and item heights. Both paginators, the compressor and the
// assessor call these same functions, so "preview says it fits" and
// "render actually fits" can never drift apart.
package measure

import (
	"sync"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/resume-renderer/internal/fonts"
)

// Metrics measures string widths for the resolved font family. It wraps a
// dedicated fpdf document used only for metrics; the renderer draws into
// its own document registered with the same fonts, so widths agree.
type Metrics struct {
	mu  sync.Mutex
	pdf *fpdf.Fpdf
}

// NewMetrics creates a metrics instance for a resolved font.
func NewMetrics(res fonts.Resolved) *Metrics {
	pdf := fpdf.New("P", "pt", "Letter", "")
	fonts.Register(pdf, res)
	return &Metrics{pdf: pdf}
}

// TextWidth returns the rendered width of text in points for the style.
func (m *Metrics) TextWidth(style fonts.Style, text string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pdf.SetFont(style.Family, style.FpdfStyle(), style.Size)
	return m.pdf.GetStringWidth(text)
}
