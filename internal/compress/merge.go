package compress

import "github.com/jonathan/resume-renderer/internal/layout"

// maxMergePasses bounds every merge loop; list lengths shrink by one per
// pass, so real inputs converge long before the bound.
const maxMergePasses = 64

// mergeBulletsTo merges a bullet list pairwise from the end until it holds
// at most max entries. Nothing is deleted: the two least-recent bullets
// become one combined sentence each pass.
func mergeBulletsTo(bullets []string, max int) []string {
	if max < 1 {
		max = 1
	}
	for pass := 0; len(bullets) > max && pass < maxMergePasses; pass++ {
		n := len(bullets)
		merged := MergeSentences(bullets[n-2], bullets[n-1])
		bullets = append(bullets[:n-2], merged)
	}
	return bullets
}

// mergeShortBullets folds bullets below the minimum word count into a
// neighbor, keeping at least floor entries. Combined sentences can exceed
// the maximum band; the caller re-applies the word clamps afterwards.
func mergeShortBullets(bullets []string, minWords, floor int) []string {
	if minWords <= 0 {
		return bullets
	}
	if floor < 1 {
		floor = 1
	}
	for pass := 0; pass < maxMergePasses && len(bullets) > floor; pass++ {
		i := firstShortBullet(bullets, minWords)
		if i < 0 {
			break
		}
		if i == 0 {
			bullets[1] = MergeSentences(bullets[0], bullets[1])
			bullets = bullets[1:]
			continue
		}
		bullets[i-1] = MergeSentences(bullets[i-1], bullets[i])
		bullets = append(bullets[:i], bullets[i+1:]...)
	}
	return bullets
}

func firstShortBullet(bullets []string, minWords int) int {
	for i, b := range bullets {
		if CountWords(b) < minWords {
			return i
		}
	}
	return -1
}

// applyStructuralClamps applies the unconditional per-mode clamps to a
// model: bullet word floors, bullets per role and per project, projects
// per document, and education entries. Overflow is merged, never dropped.
func applyStructuralClamps(m *layout.Model, contracts Contracts) {
	if exp := m.Section(layout.TitleExperience); exp != nil {
		for _, item := range exp.Items {
			if role, ok := item.(*layout.RoleItem); ok {
				role.Bullets = mergeShortBullets(role.Bullets, contracts.BulletMinWords, contracts.MinBulletsPerRole)
				role.Bullets = mergeBulletsTo(role.Bullets, contracts.MaxBulletsPerRole)
			}
		}
	}

	if projects := m.Section(layout.TitleProjects); projects != nil {
		clampProjects(projects, contracts)
	}

	if edu := m.Section(layout.TitleEducation); edu != nil {
		clampEducation(edu, contracts.MaxEducationEntries)
	}
}

// clampProjects folds projects beyond the cap into the last kept project:
// the overflow project's name survives as a prefix on its first bullet and
// its bullets move over, after which the combined bullet list is merged
// down to the per-project cap.
func clampProjects(section *layout.Section, contracts Contracts) {
	for _, item := range section.Items {
		if p, ok := item.(*layout.ProjectItem); ok {
			p.Bullets = mergeShortBullets(p.Bullets, contracts.BulletMinWords, 1)
			p.Bullets = mergeBulletsTo(p.Bullets, contracts.MaxBulletsPerProject)
		}
	}

	max := contracts.MaxProjects
	if max < 1 || len(section.Items) <= max {
		return
	}

	last, ok := section.Items[max-1].(*layout.ProjectItem)
	if !ok {
		return
	}
	for _, item := range section.Items[max:] {
		overflow, ok := item.(*layout.ProjectItem)
		if !ok {
			continue
		}
		bullets := overflow.Bullets
		if overflow.Name != "" {
			if len(bullets) == 0 {
				bullets = []string{overflow.Name}
			} else {
				bullets = append([]string{overflow.Name + ": " + bullets[0]}, bullets[1:]...)
			}
		}
		last.Bullets = append(last.Bullets, bullets...)
	}
	last.Bullets = mergeBulletsTo(last.Bullets, contracts.MaxBulletsPerProject)
	section.Items = section.Items[:max]
}

// clampEducation folds entries beyond the cap into the last kept entry's
// second line.
func clampEducation(section *layout.Section, max int) {
	if max < 1 || len(section.Items) <= max {
		return
	}
	last, ok := section.Items[max-1].(*layout.EducationItem)
	if !ok {
		return
	}
	for _, item := range section.Items[max:] {
		overflow, ok := item.(*layout.EducationItem)
		if !ok {
			continue
		}
		extra := overflow.Line1
		if overflow.Line2 != "" {
			extra += " (" + overflow.Line2 + ")"
		}
		if last.Line2 == "" {
			last.Line2 = extra
		} else {
			last.Line2 += "; " + extra
		}
	}
	section.Items = section.Items[:max]
}
