package compress

import (
	"github.com/jonathan/resume-renderer/internal/fonts"
	"github.com/jonathan/resume-renderer/internal/layout"
	"github.com/jonathan/resume-renderer/internal/measure"
	"github.com/jonathan/resume-renderer/internal/paginate"
	"github.com/jonathan/resume-renderer/internal/types"
)

// maxSummaryPasses bounds the summary compression loop.
const maxSummaryPasses = 4

// Compressor rewrites layout models until they fit a requested mode. It
// never fails and never mutates its input: each run clones the model, and
// the result is always a valid, renderable model, at worst in multi-page
// mode.
type Compressor struct {
	metrics *measure.Metrics
	styles  fonts.StyleTable
	geom    layout.Geometry
}

// New creates a compressor over the shared measurement core.
func New(metrics *measure.Metrics, styles fonts.StyleTable, geom layout.Geometry) *Compressor {
	return &Compressor{metrics: metrics, styles: styles, geom: geom}
}

// Result is the outcome of a compression run: the (possibly rewritten)
// model, the mode actually achieved, and the pages it paginates to under
// that mode.
type Result struct {
	Model *layout.Model
	Mode  types.Mode
	Pages []paginate.Page
}

// Fit compresses a model to the requested mode. One-page and two-page
// requests apply the mode's structural clamps and word bands
// unconditionally, then run the ordered compression steps, re-testing fit
// after each; if the target
// still does not fit the result degrades gracefully to multi-page mode
// with all content preserved. Multi-page requests pass through untouched.
// Fit is idempotent: feeding its output model back in returns it
// unchanged.
func (c *Compressor) Fit(model *layout.Model, mode types.Mode) Result {
	if mode == types.ModeMultiPage {
		return c.multiPage(model.Clone())
	}

	contracts := ForMode(mode)
	m := model.Clone()

	applyStructuralClamps(m, contracts)
	rewriteText(m, contracts)
	if pages, ok := c.tryFit(m, mode); ok {
		return Result{Model: m, Mode: mode, Pages: pages}
	}

	steps := []func(*layout.Model, Contracts){
		func(m *layout.Model, contracts Contracts) {
			// Merging toward the minimum creates longer combined
			// sentences, so the word bands are re-applied afterwards.
			reduceBullets(m, contracts)
			rewriteText(m, contracts)
		},
		clampSkills,
		c.clampSummary,
	}
	for _, step := range steps {
		step(m, contracts)
		if pages, ok := c.tryFit(m, mode); ok {
			return Result{Model: m, Mode: mode, Pages: pages}
		}
	}

	return c.multiPage(m)
}

// tryFit paginates the model under the mode's strategy and reports whether
// the page target is satisfied.
func (c *Compressor) tryFit(m *layout.Model, mode types.Mode) ([]paginate.Page, bool) {
	blocks := paginate.BuildBlocks(c.metrics, c.styles, m, c.geom)
	if mode == types.ModeTwoPage {
		return paginate.PaginateTwoPages(blocks, c.geom)
	}
	pages := paginate.Paginate(blocks, c.geom)
	return pages, len(pages) <= PageTarget(mode)
}

func (c *Compressor) multiPage(m *layout.Model) Result {
	blocks := paginate.BuildBlocks(c.metrics, c.styles, m, c.geom)
	return Result{
		Model: m,
		Mode:  types.ModeMultiPage,
		Pages: paginate.Paginate(blocks, c.geom),
	}
}

// reduceBullets merges role bullets further, down toward the contract
// minimum.
func reduceBullets(m *layout.Model, contracts Contracts) {
	exp := m.Section(layout.TitleExperience)
	if exp == nil {
		return
	}
	for _, item := range exp.Items {
		if role, ok := item.(*layout.RoleItem); ok {
			role.Bullets = mergeBulletsTo(role.Bullets, contracts.MinBulletsPerRole)
		}
	}
}

// rewriteText compresses every bullet and paragraph into its word band via
// the deterministic phrase table, hard-clamping as a last resort.
func rewriteText(m *layout.Model, contracts Contracts) {
	for _, section := range m.Sections {
		for _, item := range section.Items {
			switch v := item.(type) {
			case *layout.Paragraph:
				v.Text = CompressToBand(v.Text, contracts.SummaryMaxWords)
			case *layout.RoleItem:
				for i, b := range v.Bullets {
					v.Bullets[i] = CompressToBand(b, contracts.BulletMaxWords)
				}
			case *layout.ProjectItem:
				for i, b := range v.Bullets {
					v.Bullets[i] = CompressToBand(b, contracts.BulletMaxWords)
				}
			case *layout.FlatBullets:
				for i, b := range v.Bullets {
					v.Bullets[i] = CompressToBand(b, contracts.BulletMaxWords)
				}
			}
		}
	}
}

// clampSkills enforces the skill caps: categories beyond the cap are cut,
// each category keeps its first N skills, and each line is shortened until
// it fits the character budget.
func clampSkills(m *layout.Model, contracts Contracts) {
	section := m.Section(layout.TitleSkills)
	if section == nil {
		return
	}
	if contracts.MaxSkillCategories > 0 && len(section.Items) > contracts.MaxSkillCategories {
		section.Items = section.Items[:contracts.MaxSkillCategories]
	}
	for _, item := range section.Items {
		line, ok := item.(*layout.SkillLine)
		if !ok {
			continue
		}
		if contracts.MaxSkillsPerCategory > 0 && len(line.Skills) > contracts.MaxSkillsPerCategory {
			line.Skills = line.Skills[:contracts.MaxSkillsPerCategory]
		}
		for len(line.Skills) > 1 && skillLineLen(line) > contracts.MaxSkillLineChars {
			line.Skills = line.Skills[:len(line.Skills)-1]
		}
	}
}

func skillLineLen(line *layout.SkillLine) int {
	n := len(line.Category) + 2
	for i, s := range line.Skills {
		if i > 0 {
			n += 2
		}
		n += len(s)
	}
	return n
}

// clampSummary runs the summary through its escalation ladder (filler
// adjectives, comma lists, verbose phrases, then a hard word clamp) until
// it fits its word, line and height budget.
func (c *Compressor) clampSummary(m *layout.Model, contracts Contracts) {
	section := m.Section(layout.TitleSummary)
	if section == nil || len(section.Items) == 0 {
		return
	}
	para, ok := section.Items[0].(*layout.Paragraph)
	if !ok {
		return
	}

	ladder := []func(string) string{
		func(s string) string { return fillerWords.ReplaceAllString(s, "") },
		CompactCommaLists,
		CompressPhrases,
		func(s string) string { return ClampWords(s, contracts.SummaryMaxWords) },
	}
	for pass := 0; pass < maxSummaryPasses && c.summaryOverBudget(para, contracts); pass++ {
		para.Text = capitalize(ladder[pass](para.Text))
	}
}

func (c *Compressor) summaryOverBudget(para *layout.Paragraph, contracts Contracts) bool {
	if CountWords(para.Text) > contracts.SummaryMaxWords {
		return true
	}
	height := measure.ItemHeight(c.metrics, c.styles, para, c.geom.ContentWidth)
	return height > float64(contracts.SummaryMaxLines)*c.styles.Body.LineHeight
}
