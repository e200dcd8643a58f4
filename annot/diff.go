package annot

import "github.com/iw2rmb/annotext/internal/offsets"

// DiffEdit derives the single replacement that turns before into after,
// from their longest common prefix and suffix. Offsets are UTF-16 and always
// fall on code point boundaries of both texts. It reports false when the
// texts are equal.
//
// When the change is ambiguous (e.g. typing "a" after "aa") the edit is
// placed as late as possible. Use DiffEditAt when the cursor is known.
func DiffEdit(before, after string) (Edit, bool) {
	if before == after {
		return Edit{}, false
	}

	prefix := commonPrefix(before, after)
	suffix := commonSuffix(before[prefix:], after[prefix:])
	return editBetween(before, after, prefix, suffix), true
}

// DiffEditAt is DiffEdit for a change made at a known cursor: cursor is the
// UTF-16 offset in after where the inserted text ends. An ambiguous edit is
// placed so that it ends at the cursor. Typing "@" right before "@bob" is
// then an insertion in front of the mention, not inside it.
//
// A cursor outside after falls back to DiffEdit.
func DiffEditAt(before, after string, cursor int) (Edit, bool) {
	if before == after {
		return Edit{}, false
	}
	c, ok := offsets.New(after).ByteOffset(cursor, offsets.ClampError)
	if !ok {
		return DiffEdit(before, after)
	}

	suffix := min(commonSuffix(before, after), len(after)-c)
	suffix = backOffSuffix(before, after, suffix)
	prefix := commonPrefix(before[:len(before)-suffix], after[:len(after)-suffix])
	return editBetween(before, after, prefix, suffix), true
}

func editBetween(before, after string, prefix, suffix int) Edit {
	start := offsets.Len16(before[:prefix])
	removed := offsets.Len16(before[prefix : len(before)-suffix])
	inserted := offsets.Len16(after[prefix : len(after)-suffix])
	return Edit{Start: start, End: start + removed, InsertedLen: inserted}
}

// commonPrefix returns the byte length of the longest common prefix of a and
// b that ends on a rune boundary of both.
func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	for i > 0 && !(isRuneStart(a, i) && isRuneStart(b, i)) {
		i--
	}
	return i
}

// commonSuffix is commonPrefix from the end.
func commonSuffix(a, b string) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return backOffSuffix(a, b, i)
}

func backOffSuffix(a, b string, n int) int {
	for n > 0 && !(isRuneStart(a, len(a)-n) && isRuneStart(b, len(b)-n)) {
		n--
	}
	return n
}

// isRuneStart reports whether s can be split before byte i without cutting
// a multi-byte sequence.
func isRuneStart(s string, i int) bool {
	return i >= len(s) || s[i]&0xC0 != 0x80
}
