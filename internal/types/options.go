// Package types provides type definitions for structured data used throughout the resume-renderer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Mode selects which contract values apply and which paginator runs.
type Mode string

// Pagination modes. MultiPage is the terminal fallback: it never fails and
// enforces no height budget.
const (
	ModeOnePage   Mode = "one-page"
	ModeTwoPage   Mode = "two-page"
	ModeMultiPage Mode = "multi-page"
)

// RenderOptions holds the caller's layout request. RequestedPageCount of 1
// selects one-page mode, 2 selects two-page mode; any other value selects
// unconstrained multi-page mode. Filename is presentation-only.
type RenderOptions struct {
	RequestedPageCount int    `json:"requested_page_count"`
	Filename           string `json:"filename,omitempty"`
}

// Mode maps the requested page count onto a pagination mode.
func (o RenderOptions) Mode() Mode {
	switch o.RequestedPageCount {
	case 1:
		return ModeOnePage
	case 2:
		return ModeTwoPage
	default:
		return ModeMultiPage
	}
}

// RenderResult is the engine's output. ModeUsed may legitimately differ
// from the requested mode when compression could not achieve the requested
// fit; callers must treat that as a normal, non-error outcome.
type RenderResult struct {
	Bytes     []byte `json:"-"`
	PageCount int    `json:"page_count"`
	ModeUsed  Mode   `json:"mode_used"`
	Filename  string `json:"filename,omitempty"`
}
