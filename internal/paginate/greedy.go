package paginate

import "github.com/jonathan/resume-renderer/internal/layout"

// Paginate packs blocks onto successive pages of fixed content height,
// starting a new page whenever the next block plus its gap would overflow
// the remaining height. An oversized single block is placed anyway, so
// pagination always terminates and never discards a block.
func Paginate(blocks []Block, geom layout.Geometry) []Page {
	var pages []Page
	current := Page{}
	y := 0.0

	for _, block := range blocks {
		gap := block.GapBefore
		if len(current.Blocks) == 0 {
			gap = 0
		}
		if len(current.Blocks) > 0 && y+gap+block.Height > geom.ContentHeight {
			pages = append(pages, current)
			current = Page{}
			y = 0
			gap = 0
		}
		current.Blocks = append(current.Blocks, Placed{Block: block, Y: y + gap})
		y += gap + block.Height
	}
	if len(current.Blocks) > 0 {
		pages = append(pages, current)
	}
	if len(pages) == 0 {
		pages = []Page{{}}
	}
	return pages
}
