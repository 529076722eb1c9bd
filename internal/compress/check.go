package compress

import (
	"fmt"

	"github.com/jonathan/resume-renderer/internal/layout"
	"github.com/jonathan/resume-renderer/internal/types"
)

// Check evaluates a model against a mode's contracts and returns one
// structured issue per violated section, with the measured values. It is
// used by the assessor on the compressed model, so findings describe what
// would actually render. Multi-page mode has no contracts and never
// produces issues.
func (c *Compressor) Check(m *layout.Model, mode types.Mode) []types.Issue {
	if mode == types.ModeMultiPage {
		return nil
	}
	contracts := ForMode(mode)
	var issues []types.Issue

	if issue := c.checkSummary(m, contracts); issue != nil {
		issues = append(issues, *issue)
	}
	if issue := checkExperience(m, contracts); issue != nil {
		issues = append(issues, *issue)
	}
	if issue := checkProjects(m, contracts); issue != nil {
		issues = append(issues, *issue)
	}
	if issue := checkSkills(m, contracts); issue != nil {
		issues = append(issues, *issue)
	}
	if issue := checkEducation(m, contracts); issue != nil {
		issues = append(issues, *issue)
	}
	return issues
}

func (c *Compressor) checkSummary(m *layout.Model, contracts Contracts) *types.Issue {
	section := m.Section(layout.TitleSummary)
	if section == nil || len(section.Items) == 0 {
		return nil
	}
	para, ok := section.Items[0].(*layout.Paragraph)
	if !ok {
		return nil
	}
	if words := CountWords(para.Text); words > contracts.SummaryMaxWords {
		return &types.Issue{
			Code:    types.IssueSummaryContract,
			Message: fmt.Sprintf("summary has %d words, maximum is %d", words, contracts.SummaryMaxWords),
		}
	}
	if c.summaryOverBudget(para, contracts) {
		return &types.Issue{
			Code:    types.IssueSummaryContract,
			Message: fmt.Sprintf("summary exceeds its %d-line height budget", contracts.SummaryMaxLines),
		}
	}
	return nil
}

func checkExperience(m *layout.Model, contracts Contracts) *types.Issue {
	section := m.Section(layout.TitleExperience)
	if section == nil {
		return nil
	}
	for _, item := range section.Items {
		role, ok := item.(*layout.RoleItem)
		if !ok {
			continue
		}
		if len(role.Bullets) > contracts.MaxBulletsPerRole {
			return &types.Issue{
				Code: types.IssueExperienceContract,
				Message: fmt.Sprintf("role %q has %d bullets, maximum is %d",
					role.Company, len(role.Bullets), contracts.MaxBulletsPerRole),
			}
		}
		for _, b := range role.Bullets {
			if words := CountWords(b); words > contracts.BulletMaxWords {
				return &types.Issue{
					Code: types.IssueExperienceContract,
					Message: fmt.Sprintf("bullet in role %q has %d words, maximum is %d",
						role.Company, words, contracts.BulletMaxWords),
				}
			}
		}
	}
	return nil
}

func checkProjects(m *layout.Model, contracts Contracts) *types.Issue {
	section := m.Section(layout.TitleProjects)
	if section == nil {
		return nil
	}
	if len(section.Items) > contracts.MaxProjects {
		return &types.Issue{
			Code: types.IssueProjectsContract,
			Message: fmt.Sprintf("document has %d projects, maximum is %d",
				len(section.Items), contracts.MaxProjects),
		}
	}
	for _, item := range section.Items {
		if p, ok := item.(*layout.ProjectItem); ok && len(p.Bullets) > contracts.MaxBulletsPerProject {
			return &types.Issue{
				Code: types.IssueProjectsContract,
				Message: fmt.Sprintf("project %q has %d bullets, maximum is %d",
					p.Name, len(p.Bullets), contracts.MaxBulletsPerProject),
			}
		}
	}
	return nil
}

func checkSkills(m *layout.Model, contracts Contracts) *types.Issue {
	section := m.Section(layout.TitleSkills)
	if section == nil {
		return nil
	}
	if len(section.Items) > contracts.MaxSkillCategories {
		return &types.Issue{
			Code: types.IssueSkillsContract,
			Message: fmt.Sprintf("document has %d skill categories, maximum is %d",
				len(section.Items), contracts.MaxSkillCategories),
		}
	}
	for _, item := range section.Items {
		line, ok := item.(*layout.SkillLine)
		if !ok {
			continue
		}
		if len(line.Skills) > contracts.MaxSkillsPerCategory {
			return &types.Issue{
				Code: types.IssueSkillsContract,
				Message: fmt.Sprintf("category %q has %d skills, maximum is %d",
					line.Category, len(line.Skills), contracts.MaxSkillsPerCategory),
			}
		}
		if chars := skillLineLen(line); chars > contracts.MaxSkillLineChars {
			return &types.Issue{
				Code: types.IssueSkillsContract,
				Message: fmt.Sprintf("category %q line has %d characters, maximum is %d",
					line.Category, chars, contracts.MaxSkillLineChars),
			}
		}
	}
	return nil
}

func checkEducation(m *layout.Model, contracts Contracts) *types.Issue {
	section := m.Section(layout.TitleEducation)
	if section == nil {
		return nil
	}
	if len(section.Items) > contracts.MaxEducationEntries {
		return &types.Issue{
			Code: types.IssueEducationContract,
			Message: fmt.Sprintf("document has %d education entries, maximum is %d",
				len(section.Items), contracts.MaxEducationEntries),
		}
	}
	return nil
}
