package annot

// Edit replaces the code units [Start, End) of a text with InsertedLen new
// code units.
type Edit struct {
	Start       int
	End         int
	InsertedLen int
}

// Delta is the change in text length caused by the edit.
func (e Edit) Delta() int {
	return e.InsertedLen - (e.End - e.Start)
}

func (e Edit) normalize() Edit {
	if e.End < e.Start {
		e.Start, e.End = e.End, e.Start
	}
	if e.InsertedLen < 0 {
		e.InsertedLen = 0
	}
	return e
}

// Apply translates ranges across the edit. See AdjustForEdit.
func (e Edit) Apply(ranges []Range) []Range {
	return AdjustForEdit(ranges, e.Start, e.End, e.InsertedLen)
}

// AdjustForEdit moves ranges to account for text[editStart:editEnd] being
// replaced by insertedLen code units. Only offsets are translated; the new
// text is not needed.
//
//   - ranges ending at or before editStart are unchanged;
//   - ranges starting at or after editEnd shift by the length delta;
//   - ranges strictly enclosing the edit keep Start and shift End;
//   - any other overlap drops the range.
//
// An inverted edit window is swapped and a negative insertedLen counts as 0.
// Surviving ranges keep their relative order.
func AdjustForEdit(ranges []Range, editStart, editEnd, insertedLen int) []Range {
	e := Edit{Start: editStart, End: editEnd, InsertedLen: insertedLen}.normalize()
	delta := e.Delta()

	out := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		switch {
		case r.End <= e.Start:
		case r.Start >= e.End:
			r.Start += delta
			r.End += delta
		case r.Start < e.Start && r.End > e.End:
			r.End += delta
		default:
			// A partial overlap drops the whole range, so a mention losing its
			// first character disappears rather than shrinking. Unclear whether
			// product wants trimming here; kept until that is decided.
			continue
		}
		out = append(out, r)
	}
	return out
}
