package annot

// Sanitize fits ranges into a text of textLength code units.
//
// Start is raised to 0 and End lowered to textLength. A range that is still
// inverted afterwards lies outside the text and is dropped. Input order is
// preserved; the result is neither sorted nor merged.
func Sanitize(ranges []Range, textLength int) []Range {
	if textLength < 0 {
		textLength = 0
	}
	out := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		start := max(r.Start, 0)
		end := min(r.End, textLength)
		if start > end {
			continue
		}
		r.Start, r.End = start, end
		out = append(out, r)
	}
	return out
}

// Normalize returns the canonical range set for text: sanitized, sorted and
// merged.
func Normalize(text string, ranges []Range) []Range {
	return Merge(Sanitize(ranges, Len(text)))
}
