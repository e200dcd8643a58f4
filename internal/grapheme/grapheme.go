package grapheme

import (
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/annotext/internal/offsets"
)

// Boundaries returns the UTF-16 offsets of every cluster boundary in text,
// including 0 and the text length.
func Boundaries(text string) []int {
	out := []int{0}
	if text == "" {
		return out
	}
	g := uniseg.NewGraphemes(text)
	off := 0
	for g.Next() {
		off += offsets.Len16(g.Str())
		out = append(out, off)
	}
	return out
}

// Last returns the final grapheme cluster of text, or "" for empty text.
func Last(text string) string {
	last := ""
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		last = cluster
	}
	return last
}
