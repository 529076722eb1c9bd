package layout

import (
	"strings"

	"github.com/jonathan/resume-renderer/internal/sanitize"
	"github.com/jonathan/resume-renderer/internal/types"
)

// Build maps an external resume document into the section-typed layout
// model. It is a pure function of its input: missing optional fields
// produce omitted sections, and it never fails. All text sanitization
// happens here, exactly once, so downstream stages operate on clean text.
func Build(doc *types.Document) *Model {
	m := &Model{
		Header: buildHeader(doc),
	}

	if summary := sanitize.Clean(doc.Summary); summary != "" {
		m.Sections = append(m.Sections, Section{
			Title: TitleSummary,
			Items: []Item{&Paragraph{Text: summary}},
		})
	}

	if items := buildRoles(doc.Roles); len(items) > 0 {
		m.Sections = append(m.Sections, Section{Title: TitleExperience, Items: items})
	}

	if items := buildProjects(doc.Projects); len(items) > 0 {
		m.Sections = append(m.Sections, Section{Title: TitleProjects, Items: items})
	}

	if items := buildSkills(doc.Skills); len(items) > 0 {
		m.Sections = append(m.Sections, Section{Title: TitleSkills, Items: items})
	}

	if items := buildEducation(doc.Education); len(items) > 0 {
		m.Sections = append(m.Sections, Section{Title: TitleEducation, Items: items})
	}

	if certs := sanitizeBullets(doc.Certifications); len(certs) > 0 {
		m.Sections = append(m.Sections, Section{
			Title: TitleCertifications,
			Items: []Item{&FlatBullets{Bullets: certs}},
		})
	}

	return m
}

// buildHeader assembles the header fields. Contact items keep their strict
// priority order; links come last so tight headers drop nothing but may
// reflow onto the second line.
func buildHeader(doc *types.Document) Header {
	h := Header{
		Name:     sanitize.Clean(doc.Contact.Name),
		Headline: sanitize.Clean(doc.Headline),
	}
	h.Contacts = sanitize.CleanAll([]string{doc.Contact.Email, doc.Contact.Phone, doc.Contact.Location})
	h.Contacts = append(h.Contacts, sanitize.CleanAll(doc.Contact.Links)...)
	return h
}

func buildRoles(roles []types.Role) []Item {
	items := make([]Item, 0, len(roles))
	for _, r := range roles {
		item := &RoleItem{
			Title:    sanitize.Clean(r.Title),
			Company:  sanitize.Clean(r.Company),
			Dates:    sanitize.Clean(r.Dates),
			Location: sanitize.Clean(r.Location),
			Bullets:  sanitizeBullets(r.Bullets),
		}
		if item.Title == "" && item.Company == "" && len(item.Bullets) == 0 {
			continue
		}
		items = append(items, item)
	}
	return items
}

// buildProjects folds a project's description and impact into its bullet
// list so every project renders uniformly as title + bullets.
func buildProjects(projects []types.Project) []Item {
	items := make([]Item, 0, len(projects))
	for _, p := range projects {
		bullets := make([]string, 0, len(p.Bullets)+2)
		if d := sanitize.CleanBullet(p.Description); d != "" {
			bullets = append(bullets, d)
		}
		bullets = append(bullets, sanitizeBullets(p.Bullets)...)
		if impact := sanitize.CleanBullet(p.Impact); impact != "" {
			bullets = append(bullets, impact)
		}
		item := &ProjectItem{
			Name:    sanitize.Clean(p.Name),
			Bullets: bullets,
		}
		if item.Name == "" && len(item.Bullets) == 0 {
			continue
		}
		items = append(items, item)
	}
	return items
}

// buildSkills deduplicates skills case-insensitively across categories,
// preserving first-seen casing and order.
func buildSkills(categories []types.SkillCategory) []Item {
	seen := make(map[string]struct{})
	items := make([]Item, 0, len(categories))
	for _, cat := range categories {
		skills := make([]string, 0, len(cat.Skills))
		for _, skill := range cat.Skills {
			cleaned := sanitize.Clean(skill)
			if cleaned == "" {
				continue
			}
			key := strings.ToLower(cleaned)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			skills = append(skills, cleaned)
		}
		if len(skills) == 0 {
			continue
		}
		items = append(items, &SkillLine{
			Category: sanitize.Clean(cat.Name),
			Skills:   skills,
		})
	}
	return items
}

// buildEducation renders each record as up to two lines: degree and school
// on the first, dates and location on the second.
func buildEducation(entries []types.Education) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		line1 := joinNonEmpty(", ", sanitize.Clean(e.Degree), sanitize.Clean(e.School))
		line2 := joinNonEmpty(" · ", sanitize.Clean(e.Dates), sanitize.Clean(e.Location))
		if line1 == "" && line2 == "" {
			continue
		}
		if line1 == "" {
			line1, line2 = line2, ""
		}
		items = append(items, &EducationItem{Line1: line1, Line2: line2})
	}
	return items
}

func sanitizeBullets(bullets []string) []string {
	cleaned := make([]string, 0, len(bullets))
	for _, b := range bullets {
		if c := sanitize.CleanBullet(b); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	return cleaned
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
