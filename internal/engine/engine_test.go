package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-renderer/internal/fonts"
	"github.com/jonathan/resume-renderer/internal/layout"
	"github.com/jonathan/resume-renderer/internal/types"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(Options{})
	require.NoError(t, err)
	return e
}

func longSentence(n int, tag string) string {
	words := make([]string, n)
	words[0] = "Delivered"
	for i := 1; i < n; i++ {
		words[i] = fmt.Sprintf("%s%d", tag, i)
	}
	return strings.Join(words, " ")
}

func scenarioDocument() *types.Document {
	doc := &types.Document{
		Contact: types.Contact{Name: "Ada Lovelace", Email: "ada@example.com"},
		Summary: longSentence(30, "sum"),
		Roles: []types.Role{{
			Company: "Analytical Engines",
			Title:   "Staff Engineer",
			Dates:   "2019 - Present",
		}},
	}
	for i := 0; i < 6; i++ {
		doc.Roles[0].Bullets = append(doc.Roles[0].Bullets, longSentence(25, fmt.Sprintf("r%d", i)))
	}
	for i := 0; i < 5; i++ {
		doc.Projects = append(doc.Projects, types.Project{
			Name:    fmt.Sprintf("Project %d", i),
			Bullets: []string{longSentence(15, fmt.Sprintf("p%d", i))},
		})
	}
	return doc
}

func oversizedDocument() *types.Document {
	doc := &types.Document{Contact: types.Contact{Name: "Ada Lovelace"}}
	for i := 0; i < 30; i++ {
		doc.Roles = append(doc.Roles, types.Role{
			Company: fmt.Sprintf("Company %d", i),
			Title:   "Engineer",
			Dates:   "2010 - 2020",
			Bullets: []string{longSentence(20, fmt.Sprintf("a%d", i)), longSentence(20, fmt.Sprintf("b%d", i))},
		})
	}
	return doc
}

func TestNew_MarginGuard(t *testing.T) {
	for _, margin := range []float64{1, 20, 35.5} {
		_, err := New(Options{Margin: margin})
		require.Error(t, err)

		var cfgErr *layout.ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	}
}

func TestRender_OnePageScenario(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.Render(context.Background(), scenarioDocument(), types.RenderOptions{RequestedPageCount: 1})
	require.NoError(t, err)
	assert.Equal(t, types.ModeOnePage, result.ModeUsed)
	assert.Equal(t, 1, result.PageCount)
	assert.Equal(t, "%PDF", string(result.Bytes[:4]))
}

func TestRender_Deterministic(t *testing.T) {
	e := newTestEngine(t)
	doc := scenarioDocument()
	opts := types.RenderOptions{RequestedPageCount: 1}

	first, err := e.Render(context.Background(), doc, opts)
	require.NoError(t, err)
	second, err := e.Render(context.Background(), doc, opts)
	require.NoError(t, err)
	assert.Equal(t, first.Bytes, second.Bytes)
}

func TestRender_TwoPageScenario(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.Render(context.Background(), scenarioDocument(), types.RenderOptions{RequestedPageCount: 2})
	require.NoError(t, err)
	assert.Equal(t, types.ModeTwoPage, result.ModeUsed)
	assert.Equal(t, 2, result.PageCount)
}

func TestRender_DegradesGracefully(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.Render(context.Background(), oversizedDocument(), types.RenderOptions{RequestedPageCount: 1})
	require.NoError(t, err)
	assert.Equal(t, types.ModeMultiPage, result.ModeUsed, "impossible request degrades, never fails")
	assert.Greater(t, result.PageCount, 1)
}

func TestRender_MultiPageUnconstrained(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.Render(context.Background(), oversizedDocument(), types.RenderOptions{RequestedPageCount: 0})
	require.NoError(t, err)
	assert.Equal(t, types.ModeMultiPage, result.ModeUsed)
}

func TestRender_TinyDocumentUnderTwoPageRequest(t *testing.T) {
	e := newTestEngine(t)
	doc := &types.Document{
		Contact: types.Contact{Name: "Ada Lovelace"},
		Summary: "Engineer.",
	}

	result, err := e.Render(context.Background(), doc, types.RenderOptions{RequestedPageCount: 2})
	require.NoError(t, err)
	assert.Equal(t, types.ModeTwoPage, result.ModeUsed)
	assert.Equal(t, 1, result.PageCount, "blank trailing page is not rendered")
}

func TestRender_MissingFontFallsBack(t *testing.T) {
	cache := fonts.NewCacheWithLoader(func(path string) ([]byte, error) {
		return nil, errors.New("no such file")
	})
	e, err := New(Options{
		FontCache: cache,
		FontCandidates: []fonts.Candidate{
			{Family: "Inter", RegularPath: "inter.ttf", BoldPath: "inter-bold.ttf"},
		},
	})
	require.NoError(t, err)

	result, err := e.Render(context.Background(), scenarioDocument(), types.RenderOptions{RequestedPageCount: 1})
	require.NoError(t, err, "font failure is recovered locally, never surfaced")
	assert.NotEmpty(t, result.Bytes)
}

func TestRender_CorruptFontFallsBack(t *testing.T) {
	cache := fonts.NewCacheWithLoader(func(path string) ([]byte, error) {
		return []byte("not a TrueType file"), nil
	})
	e, err := New(Options{
		FontCache: cache,
		FontCandidates: []fonts.Candidate{
			{Family: "Inter", RegularPath: "inter.ttf", BoldPath: "inter-bold.ttf"},
		},
	})
	require.NoError(t, err)

	result, err := e.Render(context.Background(), scenarioDocument(), types.RenderOptions{RequestedPageCount: 1})
	require.NoError(t, err, "unparseable font bytes are recovered locally, never surfaced")
	assert.Equal(t, "%PDF", string(result.Bytes[:4]))
}

func TestAssess_OKWhenRequestHonored(t *testing.T) {
	e := newTestEngine(t)

	assessment := e.Assess(context.Background(), scenarioDocument(), types.RenderOptions{RequestedPageCount: 1})
	assert.True(t, assessment.OK)
	assert.Equal(t, types.ModeOnePage, assessment.RequestedMode)
	assert.Equal(t, types.ModeOnePage, assessment.ModeUsed)
	assert.Equal(t, 1, assessment.Pages)
	assert.Empty(t, assessment.Issues)
}

func TestAssess_ReportsModeAndPageOverflow(t *testing.T) {
	e := newTestEngine(t)

	assessment := e.Assess(context.Background(), oversizedDocument(), types.RenderOptions{RequestedPageCount: 1})
	assert.False(t, assessment.OK)
	assert.Equal(t, types.ModeMultiPage, assessment.ModeUsed)

	codes := make(map[types.IssueCode]bool)
	for _, issue := range assessment.Issues {
		codes[issue.Code] = true
	}
	assert.True(t, codes[types.IssueModeOverflow])
	assert.True(t, codes[types.IssuePageOverflow])
}

func TestAssess_MatchesRender(t *testing.T) {
	e := newTestEngine(t)
	for _, doc := range []*types.Document{scenarioDocument(), oversizedDocument()} {
		for _, pages := range []int{1, 2, 0} {
			opts := types.RenderOptions{RequestedPageCount: pages}
			assessment := e.Assess(context.Background(), doc, opts)
			result, err := e.Render(context.Background(), doc, opts)
			require.NoError(t, err)

			assert.Equal(t, result.ModeUsed, assessment.ModeUsed,
				"assessment and render must agree on mode")
			assert.Equal(t, result.PageCount, assessment.Pages,
				"assessment and render must agree on page count")
		}
	}
}

func TestAssess_MultiPageAlwaysOK(t *testing.T) {
	e := newTestEngine(t)
	assessment := e.Assess(context.Background(), oversizedDocument(), types.RenderOptions{})
	assert.True(t, assessment.OK)
}

func TestRender_DegradeKeepsEveryEntry(t *testing.T) {
	e := newTestEngine(t)
	doc := oversizedDocument()
	for i := 0; i < 5; i++ {
		doc.Projects = append(doc.Projects, types.Project{
			Name:    fmt.Sprintf("Project %d", i),
			Bullets: []string{"Shipped it"},
		})
	}

	assessment := e.Assess(context.Background(), doc, types.RenderOptions{RequestedPageCount: 2})
	require.Equal(t, types.ModeMultiPage, assessment.ModeUsed)

	state := e.run(context.Background(), doc, types.RenderOptions{RequestedPageCount: 2})
	assert.Len(t, state.result.Model.Section(layout.TitleExperience).Items, 30,
		"degrading must not drop roles")
	assert.NotNil(t, state.result.Model.Section(layout.TitleProjects))
}
