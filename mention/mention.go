// Package mention finds @handle mentions in message text.
package mention

import (
	"unicode"
	"unicode/utf8"

	"github.com/iw2rmb/annotext/annot"
	"github.com/iw2rmb/annotext/internal/offsets"
)

const Sigil = '@'

// Resolver maps a handle to the payload of a mention. It reports false when
// the handle does not name a known user.
type Resolver func(handle string) (annot.Payload, bool)

// Query is a partially typed mention ending at the cursor.
type Query struct {
	// Start is the offset of the sigil, End the cursor offset.
	Start int
	End   int
	// Text is the handle typed so far, without the sigil.
	Text string
}

// Scan returns a mention range for every resolvable @handle in text, in
// order. A nil resolver accepts every handle and stores it under "handle".
//
// A sigil starts a mention only at the beginning of the text or after
// whitespace. Trailing dots and dashes are not part of the handle.
func Scan(text string, resolve Resolver) []annot.Range {
	if resolve == nil {
		resolve = func(h string) (annot.Payload, bool) {
			return annot.Payload{"handle": h}, true
		}
	}

	var out []annot.Range
	unit := 0
	prev := ' '
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r != Sigil || !unicode.IsSpace(prev) {
			unit += offsets.RuneLen(r)
			prev = r
			i += size
			continue
		}

		handle := handleAt(text[i+size:])
		if handle == "" {
			unit += offsets.RuneLen(r)
			prev = r
			i += size
			continue
		}

		end := unit + 1 + offsets.Len16(handle)
		if payload, ok := resolve(handle); ok {
			out = append(out, annot.Range{
				Start:   unit,
				End:     end,
				Kind:    annot.KindMention,
				Payload: payload,
			})
		}
		last, _ := utf8.DecodeLastRuneInString(handle)
		prev = last
		unit = end
		i += size + len(handle)
	}
	return out
}

// ActiveQuery reports the mention being typed immediately before cursor.
// A lone sigil yields a query with empty Text.
func ActiveQuery(text string, cursor int) (Query, bool) {
	tab := offsets.New(text)
	if cursor < 0 || cursor > tab.Len() {
		return Query{}, false
	}
	end, _ := tab.ByteOffset(cursor, offsets.ClampBounds)
	before := text[:end]

	i := len(before)
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(before[:i])
		if !isHandleRune(r) {
			break
		}
		i -= size
	}
	if i == 0 {
		return Query{}, false
	}
	r, size := utf8.DecodeLastRuneInString(before[:i])
	if r != Sigil {
		return Query{}, false
	}
	at := i - size
	if at > 0 {
		p, _ := utf8.DecodeLastRuneInString(before[:at])
		if !unicode.IsSpace(p) {
			return Query{}, false
		}
	}

	start, _ := tab.UnitOffset(at, offsets.ClampBounds)
	return Query{Start: start, End: cursor, Text: before[i:]}, true
}

// handleAt returns the handle at the start of s.
func handleAt(s string) string {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !isHandleRune(r) {
			break
		}
		n += size
	}
	for n > 0 && (s[n-1] == '.' || s[n-1] == '-') {
		n--
	}
	return s[:n]
}

func isHandleRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == '-'
}
