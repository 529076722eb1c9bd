package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-renderer/internal/fonts"
	"github.com/jonathan/resume-renderer/internal/layout"
	"github.com/jonathan/resume-renderer/internal/measure"
	"github.com/jonathan/resume-renderer/internal/types"
)

func testGeometry(t *testing.T) layout.Geometry {
	t.Helper()
	geom, err := layout.NewGeometry(layout.DefaultMargin)
	require.NoError(t, err)
	return geom
}

func block(section layout.SectionTitle, height float64) Block {
	return Block{Section: section, Height: height, GapBefore: layout.BlockGap}
}

func sectionCount(pages []Page) int {
	count := 0
	for _, p := range pages {
		count += len(p.Blocks)
	}
	return count
}

func TestBuildBlocks_HeaderFirstHeadingWithFirstItem(t *testing.T) {
	res := fonts.Resolved{Family: fonts.FallbackFamily, Builtin: true}
	m := measure.NewMetrics(res)
	styles := fonts.Styles(res)
	geom := testGeometry(t)

	model := layout.Build(&types.Document{
		Contact: types.Contact{Name: "Ada Lovelace"},
		Summary: "Engineer with ten years of experience.",
		Roles: []types.Role{
			{Company: "A", Title: "Engineer", Bullets: []string{"Did a thing"}},
			{Company: "B", Title: "Engineer", Bullets: []string{"Did another thing"}},
		},
	})

	blocks := BuildBlocks(m, styles, model, geom)
	require.Len(t, blocks, 4) // header, summary, role A, role B

	assert.True(t, blocks[0].Header)
	assert.Equal(t, "SUMMARY", blocks[1].Lines[0].Text)
	assert.Equal(t, layout.SectionGap, blocks[1].GapBefore)
	assert.Equal(t, "EXPERIENCE", blocks[2].Lines[0].Text)
	assert.NotEqual(t, "EXPERIENCE", blocks[3].Lines[0].Text, "heading only on a section's first block")
	assert.Equal(t, layout.BlockGap, blocks[3].GapBefore)

	for _, b := range blocks {
		assert.Equal(t, measure.Height(b.Lines), b.Height)
	}
}

func TestPaginate_BreaksWhenBlockOverflows(t *testing.T) {
	geom := testGeometry(t)
	half := geom.ContentHeight * 0.6

	pages := Paginate([]Block{
		{Header: true, Height: half},
		block(layout.TitleExperience, half),
	}, geom)

	require.Len(t, pages, 2)
	assert.Equal(t, 0.0, pages[1].Blocks[0].Y, "new page starts at the top")
}

func TestPaginate_PacksWhatFits(t *testing.T) {
	geom := testGeometry(t)

	pages := Paginate([]Block{
		{Header: true, Height: 100},
		block(layout.TitleSummary, 50),
		block(layout.TitleExperience, 80),
	}, geom)

	require.Len(t, pages, 1)
	require.Len(t, pages[0].Blocks, 3)
	assert.Equal(t, 0.0, pages[0].Blocks[0].Y)
	assert.Equal(t, 100+layout.BlockGap, pages[0].Blocks[1].Y)
}

func TestPaginate_OversizedBlockPlacedAnyway(t *testing.T) {
	geom := testGeometry(t)

	pages := Paginate([]Block{
		block(layout.TitleExperience, geom.ContentHeight*3),
	}, geom)

	require.Len(t, pages, 1)
	require.Len(t, pages[0].Blocks, 1)
}

func TestPaginate_EmptyModelYieldsOnePage(t *testing.T) {
	pages := Paginate(nil, testGeometry(t))
	require.Len(t, pages, 1)
	assert.Empty(t, pages[0].Blocks)
}

func TestPaginateTwoPages_FrontLoadsHeaderSummaryAndTwoRoles(t *testing.T) {
	geom := testGeometry(t)
	blocks := []Block{
		{Header: true, Height: 80},
		block(layout.TitleSummary, 60),
		block(layout.TitleExperience, 120),
		block(layout.TitleExperience, 120),
		block(layout.TitleExperience, 120),
		block(layout.TitleProjects, 90),
		block(layout.TitleSkills, 40),
		block(layout.TitleEducation, 30),
	}

	pages, ok := PaginateTwoPages(blocks, geom)
	require.True(t, ok)
	require.Len(t, pages, 2)

	one := pages[0].Blocks
	require.Len(t, one, 4) // header, summary, two most recent roles
	assert.True(t, one[0].Block.Header)
	assert.Equal(t, layout.TitleSummary, one[1].Block.Section)
	assert.Equal(t, layout.TitleExperience, one[2].Block.Section)
	assert.Equal(t, layout.TitleExperience, one[3].Block.Section)

	two := pages[1].Blocks
	require.Len(t, two, 4) // remaining role, projects, skills, education
	assert.Equal(t, layout.TitleExperience, two[0].Block.Section)
	assert.Equal(t, layout.TitleProjects, two[1].Block.Section)
	assert.Equal(t, layout.TitleSkills, two[2].Block.Section)
	assert.Equal(t, layout.TitleEducation, two[3].Block.Section)
}

func TestPaginateTwoPages_FirstRolePlacedEvenWhenTight(t *testing.T) {
	geom := testGeometry(t)
	blocks := []Block{
		{Header: true, Height: geom.ContentHeight * 0.5},
		block(layout.TitleSummary, geom.ContentHeight*0.2),
		block(layout.TitleExperience, geom.ContentHeight*0.25),
		block(layout.TitleExperience, geom.ContentHeight*0.25),
	}

	pages, ok := PaginateTwoPages(blocks, geom)
	require.True(t, ok)
	require.Len(t, pages[0].Blocks, 3, "first role stays on page one, second spills")
	assert.Equal(t, layout.TitleExperience, pages[1].Blocks[0].Block.Section)
}

func TestPaginateTwoPages_SpilledRolesKeepOrder(t *testing.T) {
	geom := testGeometry(t)
	big := geom.ContentHeight * 0.4
	blocks := []Block{
		{Header: true, Height: geom.ContentHeight * 0.5},
		block(layout.TitleExperience, big), // role 1: placed unconditionally
		block(layout.TitleExperience, big), // role 2: does not fit, spills
		block(layout.TitleExperience, 10),  // role 3: must follow role 2
	}

	pages, ok := PaginateTwoPages(blocks, geom)
	require.True(t, ok)
	require.Len(t, pages[1].Blocks, 2)
	assert.Equal(t, big, pages[1].Blocks[0].Block.Height)
	assert.Equal(t, 10.0, pages[1].Blocks[1].Block.Height)
}

func TestPaginateTwoPages_OverflowSignalsFallback(t *testing.T) {
	geom := testGeometry(t)

	// Page one overflow: header + summary alone exceed the page.
	_, ok := PaginateTwoPages([]Block{
		{Header: true, Height: geom.ContentHeight},
		block(layout.TitleSummary, 50),
	}, geom)
	assert.False(t, ok)

	// Page two overflow: the tail does not fit on one page.
	_, ok = PaginateTwoPages([]Block{
		{Header: true, Height: 50},
		block(layout.TitleProjects, geom.ContentHeight*0.7),
		block(layout.TitleProjects, geom.ContentHeight*0.7),
	}, geom)
	assert.False(t, ok)
}

func TestPaginate_Deterministic(t *testing.T) {
	geom := testGeometry(t)
	blocks := []Block{
		{Header: true, Height: 120},
		block(layout.TitleSummary, 300),
		block(layout.TitleExperience, 400),
		block(layout.TitleProjects, 200),
	}

	a := Paginate(blocks, geom)
	b := Paginate(blocks, geom)
	assert.Equal(t, a, b)
	assert.Equal(t, sectionCount(a), sectionCount(b))
}
