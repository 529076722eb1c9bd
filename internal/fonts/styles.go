package fonts

// Style describes one named text style: font family, weight, size and line
// height, all in points. Styles are immutable once resolved.
type Style struct {
	Family     string
	Bold       bool
	Size       float64
	LineHeight float64
}

// FpdfStyle returns the fpdf style string for this style's weight.
func (s Style) FpdfStyle() string {
	if s.Bold {
		return "B"
	}
	return ""
}

// WithSize returns a copy of the style at a different size, scaling the
// line height proportionally. Used only for the headline shrink-to-fit.
func (s Style) WithSize(size float64) Style {
	c := s
	c.LineHeight = s.LineHeight * size / s.Size
	c.Size = size
	return c
}

// HeadlineMinSize is the font-size floor for the header headline. The
// headline may shrink to this size but is truncated rather than shrunk
// further.
const HeadlineMinSize = 8.0

// StyleTable is the fixed set of named styles, one per semantic role.
type StyleTable struct {
	Name           Style
	SectionHeading Style
	Body           Style
	Meta           Style
	RoleTitle      Style
	ProjectTitle   Style
	Bullet         Style
}

// Styles derives the style table for a resolved font family. Given the
// same family, the same styles result.
func Styles(res Resolved) StyleTable {
	family := res.Family
	return StyleTable{
		Name:           Style{Family: family, Bold: true, Size: 20, LineHeight: 24},
		SectionHeading: Style{Family: family, Bold: true, Size: 11, LineHeight: 14},
		Body:           Style{Family: family, Size: 10, LineHeight: 13.5},
		Meta:           Style{Family: family, Size: 9, LineHeight: 12},
		RoleTitle:      Style{Family: family, Bold: true, Size: 10.5, LineHeight: 14},
		ProjectTitle:   Style{Family: family, Bold: true, Size: 10.5, LineHeight: 14},
		Bullet:         Style{Family: family, Size: 10, LineHeight: 13},
	}
}
