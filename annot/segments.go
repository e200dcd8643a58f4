package annot

import "github.com/iw2rmb/annotext/internal/offsets"

// ExtractSegments splits text into plain and annotated segments.
//
// ranges must already be sorted by Start and non-overlapping (see Merge and
// Normalize); they are walked in the given order and not re-validated.
// Overlapping input yields segments that repeat text.
//
// Without ranges the result is a single plain segment, even for empty text.
func ExtractSegments(text string, ranges []Range) []Segment {
	tab := offsets.New(text)
	n := tab.Len()
	if len(ranges) == 0 {
		return []Segment{{Text: text, Start: 0, End: n}}
	}

	out := make([]Segment, 0, 2*len(ranges)+1)
	last := 0
	for i := range ranges {
		r := ranges[i]
		if r.Start > last {
			out = append(out, Segment{
				Text:  tab.Slice(last, r.Start),
				Start: last,
				End:   r.Start,
			})
		}
		out = append(out, Segment{
			Text:  tab.Slice(r.Start, r.End),
			Start: r.Start,
			End:   r.End,
			Range: &r,
		})
		last = r.End
	}
	if last < n {
		out = append(out, Segment{Text: tab.Slice(last, n), Start: last, End: n})
	}
	return out
}
