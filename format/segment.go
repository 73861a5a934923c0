package format

import (
	"strings"

	"github.com/grovetools/juju-prompt/style"
)

// Segment is a run of text sharing one style. An empty Style means the text
// is unstyled.
type Segment struct {
	Text  string `json:"text"`
	Style string `json:"style,omitempty"`
}

// Plain joins the text of segs without any styling.
func Plain(segs []Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// ANSI joins segs, rendering each with its style under the current lipgloss
// color profile.
func ANSI(segs []Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		st, err := style.Parse(seg.Style)
		if err != nil {
			// Only reachable for segments built by hand.
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(st.Render(seg.Text))
	}
	return b.String()
}
