// Package paginate converts a layout model into fixed blocks and packs
// them onto pages. Two strategies share the same blocks and the same
// measurement core: a greedy flow that always succeeds, and a strict
// two-page allocator that falls back to the greedy flow when infeasible.
package paginate

import (
	"github.com/jonathan/resume-renderer/internal/fonts"
	"github.com/jonathan/resume-renderer/internal/layout"
	"github.com/jonathan/resume-renderer/internal/measure"
)

// Block is the atomic placement unit: the header, or one section chunk.
// A block is never split across pages.
type Block struct {
	Header    bool
	Section   layout.SectionTitle
	Lines     []measure.Line
	Height    float64
	GapBefore float64
}

// Placed is a block with its resolved y offset within the page content box.
type Placed struct {
	Block Block
	Y     float64
}

// Page is an ordered list of placed blocks.
type Page struct {
	Blocks []Placed
}

// BuildBlocks lays the model out into its flat block list: the header
// first, then one block per section item. A section's first block carries
// the section heading so a heading is never orphaned from its content.
func BuildBlocks(m *measure.Metrics, styles fonts.StyleTable, model *layout.Model, geom layout.Geometry) []Block {
	width := geom.ContentWidth

	blocks := []Block{{
		Header: true,
		Lines:  measure.HeaderLines(m, styles, model.Header, width),
	}}

	for _, section := range model.Sections {
		for i, item := range section.Items {
			var lines []measure.Line
			gap := layout.BlockGap
			if i == 0 {
				lines = append(lines, measure.Line{
					Text:  string(section.Title),
					Style: styles.SectionHeading,
				})
				gap = layout.SectionGap
			}
			lines = append(lines, measure.ItemLines(m, styles, item, width)...)
			blocks = append(blocks, Block{
				Section:   section.Title,
				Lines:     lines,
				GapBefore: gap,
			})
		}
	}

	for i := range blocks {
		blocks[i].Height = measure.Height(blocks[i].Lines)
	}
	return blocks
}
