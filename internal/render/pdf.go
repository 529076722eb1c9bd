// Package render draws paginated blocks into a PDF byte stream. No layout
// decisions are made here: every coordinate derives from the line heights
// and offsets resolved upstream, so rendering is a straight drawing pass.
package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/resume-renderer/internal/fonts"
	"github.com/jonathan/resume-renderer/internal/layout"
	"github.com/jonathan/resume-renderer/internal/paginate"
)

// RenderError represents a failure emitting the PDF byte stream.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Renderer draws pages with a resolved font family and fixed geometry.
type Renderer struct {
	res    fonts.Resolved
	styles fonts.StyleTable
	geom   layout.Geometry
}

// New creates a renderer.
func New(res fonts.Resolved, styles fonts.StyleTable, geom layout.Geometry) *Renderer {
	return &Renderer{res: res, styles: styles, geom: geom}
}

// Render draws the page list and returns the PDF bytes. Output is
// byte-identical across invocations for the same pages and fonts: the
// document dates are pinned so no wall-clock state leaks into the stream.
func (r *Renderer) Render(pages []paginate.Page) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	epoch := time.Unix(0, 0).UTC()
	pdf.SetCreationDate(epoch)
	pdf.SetModificationDate(epoch)
	pdf.SetMargins(r.geom.Margin, r.geom.Margin, r.geom.Margin)
	pdf.SetAutoPageBreak(false, 0)
	fonts.Register(pdf, r.res)

	for pageNum, page := range pages {
		pdf.AddPage()
		for _, placed := range page.Blocks {
			r.drawBlock(pdf, placed)
		}
		if len(pages) > 1 {
			r.drawFooter(pdf, pageNum+1, len(pages))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Message: "failed to emit PDF", Cause: err}
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawBlock(pdf *fpdf.Fpdf, placed paginate.Placed) {
	y := r.geom.Margin + placed.Y
	for _, line := range placed.Block.Lines {
		pdf.SetFont(line.Style.Family, line.Style.FpdfStyle(), line.Style.Size)
		baseline := y + line.Style.Size
		pdf.Text(r.geom.Margin+line.Indent, baseline, line.Text)
		y += line.Style.LineHeight
	}
}

// drawFooter centers a page number in the bottom margin.
func (r *Renderer) drawFooter(pdf *fpdf.Fpdf, page, total int) {
	style := r.styles.Meta
	text := fmt.Sprintf("Page %d of %d", page, total)
	pdf.SetFont(style.Family, style.FpdfStyle(), style.Size)
	width := pdf.GetStringWidth(text)
	x := (layout.PageWidth - width) / 2
	y := layout.PageHeight - r.geom.Margin/2
	pdf.Text(x, y, text)
}
