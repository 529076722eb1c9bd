package layout

// SectionTitle is one of the closed set of section headings the engine
// knows how to lay out.
type SectionTitle string

// The closed set of section titles, in their canonical document order.
const (
	TitleSummary        SectionTitle = "SUMMARY"
	TitleExperience     SectionTitle = "EXPERIENCE"
	TitleProjects       SectionTitle = "PROJECTS"
	TitleSkills         SectionTitle = "SKILLS"
	TitleEducation      SectionTitle = "EDUCATION"
	TitleCertifications SectionTitle = "CERTIFICATIONS"
)

// Model is the engine-internal representation of one resume: a header and
// an ordered list of typed sections. A Model is built once per render
// request and is copy-mutated (never mutated in place) by compression so a
// rejected step can be rolled back.
type Model struct {
	Header   Header
	Sections []Section
}

// Header holds the name (never shortened), the headline (may be shortened
// down to a font-size floor) and the contact items in strict priority
// order: email, phone, location, then links.
type Header struct {
	Name     string
	Headline string
	Contacts []string
}

// Section pairs a title from the closed set with its ordered items.
type Section struct {
	Title SectionTitle
	Items []Item
}

// Item is the tagged union of everything a section can hold. Measurer and
// renderer switch exhaustively on the concrete types; adding a kind here
// means adding a case there.
type Item interface {
	// Clone returns a deep copy so compression steps can mutate freely.
	Clone() Item
}

// Paragraph is free-running body text (the summary).
type Paragraph struct {
	Text string
}

// SkillLine is one category of skills rendered as a single logical line.
type SkillLine struct {
	Category string
	Skills   []string
}

// RoleItem is a work experience entry.
type RoleItem struct {
	Title    string
	Company  string
	Dates    string
	Location string
	Bullets  []string
}

// ProjectItem is a project entry.
type ProjectItem struct {
	Name    string
	Bullets []string
}

// EducationItem is a single education record rendered as up to two lines.
type EducationItem struct {
	Line1 string
	Line2 string
}

// FlatBullets is an unadorned bullet list (certifications).
type FlatBullets struct {
	Bullets []string
}

// Clone implements Item.
func (p *Paragraph) Clone() Item {
	c := *p
	return &c
}

// Clone implements Item.
func (s *SkillLine) Clone() Item {
	c := *s
	c.Skills = append([]string(nil), s.Skills...)
	return &c
}

// Clone implements Item.
func (r *RoleItem) Clone() Item {
	c := *r
	c.Bullets = append([]string(nil), r.Bullets...)
	return &c
}

// Clone implements Item.
func (p *ProjectItem) Clone() Item {
	c := *p
	c.Bullets = append([]string(nil), p.Bullets...)
	return &c
}

// Clone implements Item.
func (e *EducationItem) Clone() Item {
	c := *e
	return &c
}

// Clone implements Item.
func (f *FlatBullets) Clone() Item {
	c := *f
	c.Bullets = append([]string(nil), f.Bullets...)
	return &c
}

// Clone deep-copies the model.
func (m *Model) Clone() *Model {
	c := &Model{Header: m.Header}
	c.Header.Contacts = append([]string(nil), m.Header.Contacts...)
	c.Sections = make([]Section, len(m.Sections))
	for i, s := range m.Sections {
		items := make([]Item, len(s.Items))
		for j, it := range s.Items {
			items[j] = it.Clone()
		}
		c.Sections[i] = Section{Title: s.Title, Items: items}
	}
	return c
}

// Section returns the section with the given title, or nil.
func (m *Model) Section(title SectionTitle) *Section {
	for i := range m.Sections {
		if m.Sections[i].Title == title {
			return &m.Sections[i]
		}
	}
	return nil
}

// BulletCount returns the total number of bullets across roles, projects
// and flat lists. Compression merges bullets but never deletes them, so
// the sentences behind this count are preserved end to end.
func (m *Model) BulletCount() int {
	count := 0
	for _, s := range m.Sections {
		for _, it := range s.Items {
			switch v := it.(type) {
			case *RoleItem:
				count += len(v.Bullets)
			case *ProjectItem:
				count += len(v.Bullets)
			case *FlatBullets:
				count += len(v.Bullets)
			}
		}
	}
	return count
}
