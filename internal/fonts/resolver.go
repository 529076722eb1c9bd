package fonts

import (
	"context"

	"github.com/go-pdf/fpdf"
)

// FallbackFamily is the built-in standard font used when no custom font
// candidate can be loaded. It needs no embedding and is always available.
const FallbackFamily = "Helvetica"

// Candidate names an optional custom font family with its regular and
// bold resource paths.
type Candidate struct {
	Family      string `json:"family"`
	RegularPath string `json:"regular_path"`
	BoldPath    string `json:"bold_path"`
}

// Resolved is the outcome of font resolution: either an embedded custom
// family or the built-in fallback.
type Resolved struct {
	Family  string
	Builtin bool
	Regular []byte
	Bold    []byte
}

// Resolver tries an ordered list of custom font candidates and falls back
// to the built-in family. Resolution is deterministic: the same font
// availability always yields the same result, and failure is never fatal.
type Resolver struct {
	cache      *Cache
	candidates []Candidate
	verify     func(Resolved) bool
}

// NewResolver creates a resolver over the given cache and candidates. A
// nil cache gets a filesystem-backed one.
func NewResolver(cache *Cache, candidates ...Candidate) *Resolver {
	if cache == nil {
		cache = NewCache()
	}
	return &Resolver{cache: cache, candidates: candidates, verify: embeddable}
}

// Resolve returns the first candidate whose regular and bold resources
// both load and embed, or the built-in fallback. It never returns an
// error: a missing or unparseable custom font is recovered locally, not
// surfaced.
func (r *Resolver) Resolve(ctx context.Context) Resolved {
	for _, cand := range r.candidates {
		if cand.Family == "" || cand.RegularPath == "" || cand.BoldPath == "" {
			continue
		}
		regular, err := r.cache.Load(ctx, cand.RegularPath)
		if err != nil {
			continue
		}
		bold, err := r.cache.Load(ctx, cand.BoldPath)
		if err != nil {
			continue
		}
		res := Resolved{Family: cand.Family, Regular: regular, Bold: bold}
		if !r.verify(res) {
			continue
		}
		return res
	}
	return Resolved{Family: FallbackFamily, Builtin: true}
}

// embeddable reports whether the resolved bytes register cleanly. fpdf
// parses TrueType data eagerly and records parse failures on the document
// error state, so registration is tried on a scratch document before the
// candidate is accepted.
func embeddable(res Resolved) bool {
	scratch := fpdf.New("P", "pt", "Letter", "")
	Register(scratch, res)
	return scratch.Ok()
}

// Register adds the resolved family to a PDF document. Built-in families
// need no registration.
func Register(pdf *fpdf.Fpdf, res Resolved) {
	if res.Builtin {
		return
	}
	pdf.AddUTF8FontFromBytes(res.Family, "", res.Regular)
	pdf.AddUTF8FontFromBytes(res.Family, "B", res.Bold)
}
