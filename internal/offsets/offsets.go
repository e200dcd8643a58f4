// Package offsets converts between UTF-16 code unit offsets and byte offsets
// of a Go (UTF-8) string.
package offsets

import (
	"sort"
	"unicode/utf16"
	"unicode/utf8"
)

type ClampMode uint8

const (
	// ClampError rejects offsets outside the text.
	ClampError ClampMode = iota
	// ClampBounds moves offsets outside the text to the nearest end.
	ClampBounds
)

// Table indexes a string by UTF-16 code units.
//
// An offset that falls between the two code units of a surrogate pair
// resolves to the start of that code point.
type Table struct {
	text  string
	ascii bool

	// units[i] and bytes[i] are the UTF-16 and byte offsets of the i-th rune.
	// Both slices carry a trailing entry for the end of the text.
	units []int
	bytes []int
}

func New(text string) *Table {
	t := &Table{text: text, ascii: isASCII(text)}
	if t.ascii {
		return t
	}

	n := utf8.RuneCountInString(text)
	t.units = make([]int, 0, n+1)
	t.bytes = make([]int, 0, n+1)
	u := 0
	for i, r := range text {
		t.units = append(t.units, u)
		t.bytes = append(t.bytes, i)
		u += RuneLen(r)
	}
	t.units = append(t.units, u)
	t.bytes = append(t.bytes, len(text))
	return t
}

func (t *Table) Text() string { return t.text }

// Len returns the length of the text in UTF-16 code units.
func (t *Table) Len() int {
	if t.ascii {
		return len(t.text)
	}
	return t.units[len(t.units)-1]
}

// ByteOffset maps a UTF-16 offset to a byte offset.
func (t *Table) ByteOffset(off int, mode ClampMode) (int, bool) {
	off, ok := clampOffset(off, t.Len(), mode)
	if !ok {
		return 0, false
	}
	if t.ascii {
		return off, true
	}
	i := sort.Search(len(t.units), func(i int) bool { return t.units[i] > off }) - 1
	return t.bytes[i], true
}

// UnitOffset maps a byte offset to a UTF-16 offset. With ClampError a byte
// offset inside a multi-byte rune is rejected; with ClampBounds it resolves
// to the start of that rune.
func (t *Table) UnitOffset(off int, mode ClampMode) (int, bool) {
	off, ok := clampOffset(off, len(t.text), mode)
	if !ok {
		return 0, false
	}
	if t.ascii {
		return off, true
	}
	i := sort.Search(len(t.bytes), func(i int) bool { return t.bytes[i] > off }) - 1
	if t.bytes[i] != off && mode == ClampError {
		return 0, false
	}
	return t.units[i], true
}

// Slice returns text[start:end] with bounds in UTF-16 code units. Bounds are
// clamped into the text; an empty or inverted interval yields "".
func (t *Table) Slice(start, end int) string {
	bs, _ := t.ByteOffset(start, ClampBounds)
	be, _ := t.ByteOffset(end, ClampBounds)
	if be <= bs {
		return ""
	}
	return t.text[bs:be]
}

// Len16 returns the UTF-16 length of s without building a table.
func Len16(s string) int {
	n := 0
	for _, r := range s {
		n += RuneLen(r)
	}
	return n
}

// RuneLen returns the number of UTF-16 code units needed to encode r.
// Invalid runes count as one unit, the width of their replacement.
func RuneLen(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

func clampOffset(off, max int, mode ClampMode) (int, bool) {
	switch mode {
	case ClampError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case ClampBounds:
		if off < 0 {
			return 0, true
		}
		if off > max {
			return max, true
		}
		return off, true
	default:
		return 0, false
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
