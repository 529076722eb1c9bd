// Package layout defines the page geometry and the section-typed layout
// model the engine builds from an external resume document.
package layout

import "fmt"

// Page geometry in PostScript points (US Letter). These are fixed for the
// whole engine; every height budget downstream derives from them.
const (
	PageWidth  = 612.0
	PageHeight = 792.0

	// DefaultMargin is the uniform page margin.
	DefaultMargin = 54.0

	// MinMargin is the hard floor for the configurable margin. A margin
	// below it is a build-time misconfiguration, not a layout condition.
	MinMargin = 36.0

	// SectionGap separates a section heading block from the previous block;
	// BlockGap separates consecutive blocks within a section.
	SectionGap = 10.0
	BlockGap   = 6.0
)

// ConfigError represents an engine misconfiguration detected at
// construction time.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s", e.Message)
}

// Geometry holds the resolved page box. Construct it with NewGeometry so
// the margin floor is always enforced.
type Geometry struct {
	Margin        float64
	ContentWidth  float64
	ContentHeight float64
}

// NewGeometry validates the margin against the floor and derives the
// content box. Violating the floor is surfaced immediately as a
// ConfigError rather than a layout failure.
func NewGeometry(margin float64) (Geometry, error) {
	if margin < MinMargin {
		return Geometry{}, &ConfigError{
			Message: fmt.Sprintf("margin %.1fpt is below the minimum of %.1fpt", margin, MinMargin),
		}
	}
	return Geometry{
		Margin:        margin,
		ContentWidth:  PageWidth - 2*margin,
		ContentHeight: PageHeight - 2*margin,
	}, nil
}
