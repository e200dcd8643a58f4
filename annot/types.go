package annot

import (
	"maps"

	"github.com/iw2rmb/annotext/internal/offsets"
)

// Kind tags what a range annotates. Applications may define their own kinds.
type Kind string

const (
	KindMention   Kind = "mention"
	KindHighlight Kind = "highlight"
	KindLink      Kind = "link"
)

// Payload is caller-defined data attached to a range, e.g. the user a
// mention points at.
type Payload map[string]any

// Range is a half-open annotation [Start, End) over a text.
type Range struct {
	Start   int     `json:"start" yaml:"start"`
	End     int     `json:"end" yaml:"end"`
	Kind    Kind    `json:"type" yaml:"type"`
	Payload Payload `json:"data,omitempty" yaml:"data,omitempty"`
}

func (r Range) Len() int { return r.End - r.Start }

func (r Range) IsEmpty() bool { return r.Start == r.End }

// Contains reports whether pos lies in [Start, End).
func (r Range) Contains(pos int) bool {
	return pos >= r.Start && pos < r.End
}

// Segment is a contiguous slice of a text. Plain segments have a nil Range.
type Segment struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Range *Range `json:"range,omitempty"`
}

func (s Segment) Annotated() bool { return s.Range != nil }

// Len returns the length of text in UTF-16 code units.
func Len(text string) int {
	return offsets.Len16(text)
}

// Slice returns text[start:end] with UTF-16 bounds. Bounds are clamped into
// the text, and a bound inside a surrogate pair resolves to the start of that
// code point.
func Slice(text string, start, end int) string {
	return offsets.New(text).Slice(start, end)
}

// mergePayload returns the shallow union of a and b, keys of b winning.
func mergePayload(a, b Payload) Payload {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(Payload, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}
