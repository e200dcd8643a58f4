// Package render draws annotated segments for a terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/annotext/annot"
)

// Theme maps annotation kinds to styles. Segments of a kind without a style
// use Plain.
type Theme struct {
	Plain lipgloss.Style
	Kinds map[annot.Kind]lipgloss.Style
}

// DefaultTheme returns the built-in theme on the default renderer.
func DefaultTheme() Theme {
	return DefaultThemeFor(lipgloss.DefaultRenderer())
}

// DefaultThemeFor returns the built-in theme bound to r.
func DefaultThemeFor(r *lipgloss.Renderer) Theme {
	return Theme{
		Plain: r.NewStyle(),
		Kinds: map[annot.Kind]lipgloss.Style{
			annot.KindMention:   r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
			annot.KindLink:      r.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
			annot.KindHighlight: r.NewStyle().Background(lipgloss.Color("58")),
		},
	}
}

// StyleFor returns the style seg is drawn with.
func (th Theme) StyleFor(seg annot.Segment) lipgloss.Style {
	if seg.Range == nil {
		return th.Plain
	}
	if st, ok := th.Kinds[seg.Range.Kind]; ok {
		return st
	}
	return th.Plain
}

// Render draws segs in order. Empty segments draw nothing.
func Render(segs []annot.Segment, th Theme) string {
	var sb strings.Builder
	for _, seg := range segs {
		if seg.Text == "" {
			continue
		}
		sb.WriteString(th.StyleFor(seg).Render(seg.Text))
	}
	return sb.String()
}

// Text normalizes ranges against text and draws the result.
func Text(text string, ranges []annot.Range, th Theme) string {
	return Render(annot.ExtractSegments(text, annot.Normalize(text, ranges)), th)
}
