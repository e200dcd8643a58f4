package annot

import (
	"sort"

	"github.com/iw2rmb/annotext/internal/grapheme"
)

// SnapToGraphemes widens each range outwards to grapheme cluster
// boundaries, so that segments never split an emoji sequence or a base
// character from its combining marks. Bounds outside the text are clamped.
func SnapToGraphemes(text string, ranges []Range) []Range {
	if len(ranges) == 0 {
		return []Range{}
	}
	bounds := grapheme.Boundaries(text)
	n := bounds[len(bounds)-1]

	out := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		start := min(max(r.Start, 0), n)
		end := min(max(r.End, 0), n)

		// Largest boundary <= start.
		i := sort.SearchInts(bounds, start)
		if i == len(bounds) || bounds[i] != start {
			i--
		}
		r.Start = bounds[i]
		// Smallest boundary >= end.
		r.End = bounds[sort.SearchInts(bounds, end)]
		if r.End < r.Start {
			r.End = r.Start
		}
		out = append(out, r)
	}
	return out
}
