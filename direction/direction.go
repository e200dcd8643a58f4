// Package direction classifies the writing direction of message text.
package direction

import "unicode"

type Direction uint8

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// Detect returns RTL if text contains any Hebrew or Arabic letter, and LTR
// otherwise. Latin script never outweighs a Hebrew or Arabic letter.
func Detect(text string) Direction {
	for _, r := range text {
		if unicode.In(r, unicode.Hebrew, unicode.Arabic) && unicode.IsLetter(r) {
			return RTL
		}
	}
	return LTR
}
