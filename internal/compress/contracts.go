// Package compress enforces the per-mode layout contracts: it clamps and
// rewrites the layout model until the requested page count fits, degrading
// to multi-page mode when it cannot. Content is merged or reworded, never
// deleted.
package compress

import "github.com/jonathan/resume-renderer/internal/types"

// Contracts holds the hard numeric limits a model must satisfy in a given
// mode. One-page and two-page modes differ only in the numbers; multi-page
// mode enforces nothing.
type Contracts struct {
	SummaryMaxWords int
	SummaryMaxLines int

	MaxBulletsPerRole int
	MinBulletsPerRole int
	BulletMinWords    int
	BulletMaxWords    int

	MaxProjects          int
	MaxBulletsPerProject int

	MaxSkillCategories   int
	MaxSkillsPerCategory int
	MaxSkillLineChars    int

	MaxEducationEntries int
}

// ForMode returns the contract table for a mode. Multi-page returns the
// zero value: no limits apply.
func ForMode(mode types.Mode) Contracts {
	switch mode {
	case types.ModeOnePage:
		return Contracts{
			SummaryMaxWords:      55,
			SummaryMaxLines:      4,
			MaxBulletsPerRole:    3,
			MinBulletsPerRole:    2,
			BulletMinWords:       12,
			BulletMaxWords:       24,
			MaxProjects:          3,
			MaxBulletsPerProject: 2,
			MaxSkillCategories:   4,
			MaxSkillsPerCategory: 8,
			MaxSkillLineChars:    110,
			MaxEducationEntries:  2,
		}
	case types.ModeTwoPage:
		return Contracts{
			SummaryMaxWords:      70,
			SummaryMaxLines:      5,
			MaxBulletsPerRole:    5,
			MinBulletsPerRole:    3,
			BulletMinWords:       12,
			BulletMaxWords:       30,
			MaxProjects:          5,
			MaxBulletsPerProject: 3,
			MaxSkillCategories:   6,
			MaxSkillsPerCategory: 10,
			MaxSkillLineChars:    120,
			MaxEducationEntries:  3,
		}
	default:
		return Contracts{}
	}
}

// PageTarget returns the page count a mode is expected to fit, or 0 when
// unconstrained.
func PageTarget(mode types.Mode) int {
	switch mode {
	case types.ModeOnePage:
		return 1
	case types.ModeTwoPage:
		return 2
	default:
		return 0
	}
}
