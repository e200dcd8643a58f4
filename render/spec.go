package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/annotext/annot"
)

// StyleSpec is the configuration form of a style. Colors accept anything
// lipgloss.Color does: ANSI indices ("39") or hex ("#ff8800").
type StyleSpec struct {
	Foreground string `yaml:"foreground,omitempty" json:"foreground,omitempty"`
	Background string `yaml:"background,omitempty" json:"background,omitempty"`
	Bold       bool   `yaml:"bold,omitempty" json:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty" json:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty" json:"underline,omitempty"`
}

// Style builds the lipgloss style described by s on r.
func (s StyleSpec) Style(r *lipgloss.Renderer) lipgloss.Style {
	st := r.NewStyle()
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	return st
}

// ThemeFromSpec starts from the default theme and overrides the plain style
// and any kinds present in kinds.
func ThemeFromSpec(r *lipgloss.Renderer, plain *StyleSpec, kinds map[string]StyleSpec) Theme {
	th := DefaultThemeFor(r)
	if plain != nil {
		th.Plain = plain.Style(r)
	}
	for k, spec := range kinds {
		th.Kinds[annot.Kind(k)] = spec.Style(r)
	}
	return th
}
