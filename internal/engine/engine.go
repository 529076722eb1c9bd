// Package engine wires the full pipeline: build the layout model,
// compress it to the requested mode, paginate, and render. The assessment
// replay runs the identical pipeline without producing bytes, so "this
// edit is safe" and "this is what got rendered" can never disagree.
package engine

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-renderer/internal/compress"
	"github.com/jonathan/resume-renderer/internal/fonts"
	"github.com/jonathan/resume-renderer/internal/layout"
	"github.com/jonathan/resume-renderer/internal/measure"
	"github.com/jonathan/resume-renderer/internal/render"
	"github.com/jonathan/resume-renderer/internal/types"
)

// Options configures an engine. The zero value yields the default margin,
// no custom fonts, and a fresh filesystem-backed font cache.
type Options struct {
	// Margin overrides the page margin in points; zero means the default.
	// A margin below the floor is rejected at construction.
	Margin float64

	// FontCandidates are tried in order; on any load failure the built-in
	// family is used instead.
	FontCandidates []fonts.Candidate

	// FontCache may be shared across engines so repeated renders do not
	// re-fetch font resources.
	FontCache *fonts.Cache
}

// Engine renders resume documents into deterministic, fixed-page-size PDF
// byte streams under the per-mode contracts.
type Engine struct {
	geom     layout.Geometry
	resolver *fonts.Resolver
}

// New constructs an engine, validating the configuration. The margin
// floor guard fires here, immediately, never during a render.
func New(opts Options) (*Engine, error) {
	margin := opts.Margin
	if margin == 0 {
		margin = layout.DefaultMargin
	}
	geom, err := layout.NewGeometry(margin)
	if err != nil {
		return nil, err
	}
	return &Engine{
		geom:     geom,
		resolver: fonts.NewResolver(opts.FontCache, opts.FontCandidates...),
	}, nil
}

// pipelineState is everything one Build→Compress→Paginate run produces.
type pipelineState struct {
	resolved   fonts.Resolved
	styles     fonts.StyleTable
	compressor *compress.Compressor
	result     compress.Result
}

// run executes the shared pipeline. The context covers the only I/O
// suspension point, the font fetch; everything after it is pure.
func (e *Engine) run(ctx context.Context, doc *types.Document, opts types.RenderOptions) pipelineState {
	resolved := e.resolver.Resolve(ctx)
	styles := fonts.Styles(resolved)
	metrics := measure.NewMetrics(resolved)
	compressor := compress.New(metrics, styles, e.geom)

	model := layout.Build(doc)
	result := compressor.Fit(model, opts.Mode())

	// The strict two-page allocator may hand back a blank second page for
	// small documents; it is dropped rather than rendered.
	for len(result.Pages) > 1 && len(result.Pages[len(result.Pages)-1].Blocks) == 0 {
		result.Pages = result.Pages[:len(result.Pages)-1]
	}

	return pipelineState{
		resolved:   resolved,
		styles:     styles,
		compressor: compressor,
		result:     result,
	}
}

// Render produces the final PDF bytes together with the page count and the
// mode actually used. A request that cannot be honored degrades to
// multi-page output rather than failing; document content never causes an
// error here.
func (e *Engine) Render(ctx context.Context, doc *types.Document, opts types.RenderOptions) (*types.RenderResult, error) {
	state := e.run(ctx, doc, opts)

	data, err := render.New(state.resolved, state.styles, e.geom).Render(state.result.Pages)
	if err != nil {
		return nil, err
	}
	return &types.RenderResult{
		Bytes:     data,
		PageCount: len(state.result.Pages),
		ModeUsed:  state.result.Mode,
		Filename:  opts.Filename,
	}, nil
}

// Assess replays the render pipeline without drawing and reports whether
// the document honors the requested mode, plus structured findings for
// anything that would not. It never fails: contract problems are data,
// not errors.
func (e *Engine) Assess(ctx context.Context, doc *types.Document, opts types.RenderOptions) *types.Assessment {
	state := e.run(ctx, doc, opts)
	requested := opts.Mode()

	var issues []types.Issue
	if state.result.Mode != requested {
		issues = append(issues, types.Issue{
			Code:    types.IssueModeOverflow,
			Message: "content does not fit the requested mode even after compression",
		})
	}
	if target := compress.PageTarget(requested); target > 0 && len(state.result.Pages) > target {
		issues = append(issues, types.Issue{
			Code:    types.IssuePageOverflow,
			Message: fmt.Sprintf("content spans %d pages, requested %d", len(state.result.Pages), target),
		})
	}
	issues = append(issues, state.compressor.Check(state.result.Model, requested)...)

	return &types.Assessment{
		OK:            len(issues) == 0,
		RequestedMode: requested,
		ModeUsed:      state.result.Mode,
		Pages:         len(state.result.Pages),
		Issues:        issues,
	}
}
