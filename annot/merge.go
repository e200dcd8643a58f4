package annot

import "sort"

// Merge sorts ranges by Start and folds every overlapping or touching run
// into one range.
//
// A folded range keeps the Kind of the first range in its run and carries the
// shallow union of all payloads, later keys overwriting earlier ones. Kinds
// are not compared: adjacent annotations of different kinds fold together
// and their payloads blend.
func Merge(ranges []Range) []Range {
	if len(ranges) == 0 {
		return []Range{}
	}

	sorted := append([]Range(nil), ranges...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	out := make([]Range, 0, len(sorted))
	cur := sorted[0]
	for _, next := range sorted[1:] {
		if next.Start <= cur.End {
			cur = Range{
				Start:   cur.Start,
				End:     max(cur.End, next.End),
				Kind:    cur.Kind,
				Payload: mergePayload(cur.Payload, next.Payload),
			}
			continue
		}
		out = append(out, cur)
		cur = next
	}
	return append(out, cur)
}
