package paginate

import "github.com/jonathan/resume-renderer/internal/layout"

// maxRolesOnPageOne caps how many most-recent roles the strict allocator
// front-loads onto page one.
const maxRolesOnPageOne = 2

// PaginateTwoPages applies the deterministic two-page allocation policy:
// header and summary always on page one, up to the two most recent roles
// on page one while space remains (the first role is placed there
// unconditionally so page one is never role-less), and everything else on
// page two in document order. It is not a generic bin-pack. The second
// return value is false when either page would overflow; callers then
// discard the result in favor of the general greedy paginator.
func PaginateTwoPages(blocks []Block, geom layout.Geometry) ([]Page, bool) {
	var pageOne, pageTwo []Block
	rolesOnPageOne := 0
	rolesSpilled := false

	for _, block := range blocks {
		switch {
		case block.Header, block.Section == layout.TitleSummary:
			pageOne = append(pageOne, block)
		case block.Section == layout.TitleExperience && rolesOnPageOne < maxRolesOnPageOne && !rolesSpilled:
			// Once a role spills to page two, every later role follows it
			// so roles keep their most-recent-first order.
			if rolesOnPageOne > 0 && !fitsOnPage(append(pageOne, block), geom) {
				rolesSpilled = true
				pageTwo = append(pageTwo, block)
				continue
			}
			pageOne = append(pageOne, block)
			rolesOnPageOne++
		default:
			pageTwo = append(pageTwo, block)
		}
	}

	if !fitsOnPage(pageOne, geom) || !fitsOnPage(pageTwo, geom) {
		return nil, false
	}

	pages := []Page{placeBlocks(pageOne), placeBlocks(pageTwo)}
	return pages, true
}

// fitsOnPage measures a block run including inter-block gaps against the
// page content height.
func fitsOnPage(blocks []Block, geom layout.Geometry) bool {
	return runHeight(blocks) <= geom.ContentHeight
}

func runHeight(blocks []Block) float64 {
	total := 0.0
	for i, b := range blocks {
		if i > 0 {
			total += b.GapBefore
		}
		total += b.Height
	}
	return total
}

func placeBlocks(blocks []Block) Page {
	page := Page{}
	y := 0.0
	for i, b := range blocks {
		if i > 0 {
			y += b.GapBefore
		}
		page.Blocks = append(page.Blocks, Placed{Block: b, Y: y})
		y += b.Height
	}
	return page
}
