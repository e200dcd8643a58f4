package annot

// ContainsPosition reports whether any range contains pos.
func ContainsPosition(pos int, ranges []Range) bool {
	for _, r := range ranges {
		if r.Contains(pos) {
			return true
		}
	}
	return false
}

// FindRangeAt returns the first range, in input order, that contains pos.
func FindRangeAt(pos int, ranges []Range) (Range, bool) {
	for _, r := range ranges {
		if r.Contains(pos) {
			return r, true
		}
	}
	return Range{}, false
}
