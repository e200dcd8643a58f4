package draft

import (
	"github.com/iw2rmb/annotext/annot"
	"github.com/iw2rmb/annotext/internal/offsets"
)

type Options struct {
	HistoryLimit int // default: 1000
}

// TextEdit replaces the code units [Start, End) with Text.
type TextEdit struct {
	Start int
	End   int
	Text  string
}

// Draft is the composer state: text, annotation ranges and cursor.
type Draft struct {
	text    string
	ranges  []annot.Range
	cursor  int
	version uint64

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

// New returns a draft for text. ranges are normalized against text.
func New(text string, ranges []annot.Range, opt Options) *Draft {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Draft{
		text:   text,
		ranges: annot.Normalize(text, ranges),
		opt:    opt,
	}
}

func (d *Draft) Text() string { return d.text }

// Len returns the text length in UTF-16 code units.
func (d *Draft) Len() int { return offsets.Len16(d.text) }

// Ranges returns a copy of the current ranges.
func (d *Draft) Ranges() []annot.Range {
	return append([]annot.Range(nil), d.ranges...)
}

// Segments splits the current text by the current ranges.
func (d *Draft) Segments() []annot.Segment {
	return annot.ExtractSegments(d.text, d.ranges)
}

// RangeAt returns the range under pos, if any.
func (d *Draft) RangeAt(pos int) (annot.Range, bool) {
	return annot.FindRangeAt(pos, d.ranges)
}

func (d *Draft) Version() uint64 { return d.version }

func (d *Draft) Cursor() int { return d.cursor }

// SetCursor moves the cursor, clamped into the text.
func (d *Draft) SetCursor(pos int) {
	next := d.clampPos(pos)
	if next == d.cursor {
		return
	}
	d.cursor = next
	d.version++
}

func (d *Draft) clampPos(pos int) int {
	return min(max(pos, 0), d.Len())
}
