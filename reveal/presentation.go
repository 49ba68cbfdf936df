package reveal

import (
	"strings"
	"time"
)

// DefaultDuration is the length of the entrance transition.
const DefaultDuration = 1000 * time.Millisecond

// Presentation maps a reveal state onto the visual properties it drives:
// vertical offset and opacity, interpolated over Duration.
type Presentation struct {
	Threshold  float64
	Duration   time.Duration
	Transition string
	HiddenCSS  string
	ShownCSS   string
}

// DefaultPresentation is the fade-up used by every revealing section.
var DefaultPresentation = Presentation{
	Threshold:  DefaultThreshold,
	Duration:   DefaultDuration,
	Transition: "transition-all duration-1000 transform",
	HiddenCSS:  "translate-y-20 opacity-0",
	ShownCSS:   "translate-y-0 opacity-100",
}

// Class returns the full class list for state.
func (p Presentation) Class(state State) string {
	visual := p.HiddenCSS
	if state == Revealed {
		visual = p.ShownCSS
	}
	return strings.TrimSpace(p.Transition + " " + visual)
}

// DurationMS is Duration in whole milliseconds, for data attributes.
func (p Presentation) DurationMS() int64 {
	return p.Duration.Milliseconds()
}
