package draft

import (
	"reflect"
	"slices"
	"sort"

	"github.com/iw2rmb/annotext/annot"
	"github.com/iw2rmb/annotext/internal/grapheme"
	"github.com/iw2rmb/annotext/internal/offsets"
)

// InsertText inserts s at the cursor.
func (d *Draft) InsertText(s string) {
	if s == "" {
		return
	}
	d.Replace(d.cursor, d.cursor, s)
}

// DeleteBackward removes the grapheme cluster before the cursor.
func (d *Draft) DeleteBackward() {
	if d.cursor == 0 {
		return
	}
	tab := offsets.New(d.text)
	end, _ := tab.ByteOffset(d.cursor, offsets.ClampBounds)
	last := grapheme.Last(d.text[:end])
	d.Replace(d.cursor-offsets.Len16(last), d.cursor, "")
}

// Replace replaces [start, end) with s and moves the cursor after s.
func (d *Draft) Replace(start, end int, s string) {
	d.Apply(TextEdit{Start: start, End: end, Text: s})
}

// Apply applies edits in order. Each edit's bounds are interpreted against
// the draft as left by the previous edit, and clamped into the text.
//
// The cursor ends after the last effective edit. Ranges are carried across
// every edit with annot.AdjustForEdit.
func (d *Draft) Apply(edits ...TextEdit) {
	if len(edits) == 0 {
		return
	}

	prev := d.snapshot()
	change := d.beginChange()

	anyChanged := false
	lastCursor := d.cursor
	for _, e := range edits {
		nextCursor, applied, changed := d.replaceRange(e.Start, e.End, e.Text)
		if !changed {
			continue
		}
		anyChanged = true
		lastCursor = nextCursor
		change.addAppliedEdit(applied)
	}
	if !anyChanged {
		return
	}

	d.cursor = d.clampPos(lastCursor)
	d.version++
	d.recordUndo(prev, change.versionBefore, change.appliedEdits)
	d.commitChange(change)
}

// SetText replaces the whole text with s, the way a text field reports its
// new value. The edit is recovered with annot.DiffEdit so that ranges outside
// the changed region survive.
func (d *Draft) SetText(s string) {
	e, ok := annot.DiffEdit(d.text, s)
	if !ok {
		return
	}
	d.Replace(e.Start, e.End, annot.Slice(s, e.Start, e.Start+e.InsertedLen))
}

// SetTextAt is SetText for a text field that also reports its cursor, a
// UTF-16 offset into s. The edit is taken to end at the cursor, so text
// typed right before a mention shifts it instead of growing it. The draft
// cursor ends at cursor.
func (d *Draft) SetTextAt(s string, cursor int) {
	if e, ok := annot.DiffEditAt(d.text, s, cursor); ok {
		d.Replace(e.Start, e.End, annot.Slice(s, e.Start, e.Start+e.InsertedLen))
	}
	d.SetCursor(cursor)
}

// InsertMention replaces [start, end), usually the typed "@query", with
// label followed by a space, and annotates label as a mention carrying
// payload. It is recorded as a single change.
func (d *Draft) InsertMention(start, end int, label string, payload annot.Payload) {
	if label == "" {
		return
	}

	prev := d.snapshot()
	change := d.beginChange()

	nextCursor, applied, changed := d.replaceRange(start, end, label+" ")
	if !changed {
		return
	}
	mention := annot.Range{
		Start:   applied.Edit.Start,
		End:     applied.Edit.Start + offsets.Len16(label),
		Kind:    annot.KindMention,
		Payload: payload,
	}
	d.ranges = insertRange(d.ranges, mention)

	change.addAppliedEdit(applied)
	d.cursor = d.clampPos(nextCursor)
	d.version++
	d.recordUndo(prev, change.versionBefore, nil)
	d.commitChange(change)
}

// insertRange places r into the sorted, non-overlapping ranges, dropping any
// range it overlaps. Touching neighbours are kept as they are: a mention
// never absorbs, or is absorbed by, an adjacent annotation.
func insertRange(ranges []annot.Range, r annot.Range) []annot.Range {
	out := make([]annot.Range, 0, len(ranges)+1)
	for _, x := range ranges {
		if x.Start < r.End && r.Start < x.End {
			continue
		}
		out = append(out, x)
	}
	i := sort.Search(len(out), func(i int) bool { return out[i].Start > r.Start })
	return slices.Insert(out, i, r)
}

// AddRange annotates [start, end) of the current text. The range is
// sanitized against the text and merged into the existing set.
func (d *Draft) AddRange(r annot.Range) {
	next := annot.Normalize(d.text, append(d.Ranges(), r))
	if len(next) == 0 && len(d.ranges) == 0 || reflect.DeepEqual(next, d.ranges) {
		return
	}

	prev := d.snapshot()
	change := d.beginChange()
	d.ranges = next
	d.version++
	d.recordUndo(prev, change.versionBefore, nil)
	d.commitChange(change)
}

func (d *Draft) replaceRange(start, end int, s string) (nextCursor int, applied AppliedEdit, changed bool) {
	tab := offsets.New(d.text)
	if end < start {
		start, end = end, start
	}
	bs, _ := tab.ByteOffset(start, offsets.ClampBounds)
	be, _ := tab.ByteOffset(end, offsets.ClampBounds)
	start, _ = tab.UnitOffset(bs, offsets.ClampBounds)
	end, _ = tab.UnitOffset(be, offsets.ClampBounds)

	deleted := d.text[bs:be]
	if deleted == s {
		return d.cursor, AppliedEdit{}, false
	}

	edit := annot.Edit{Start: start, End: end, InsertedLen: offsets.Len16(s)}
	d.text = d.text[:bs] + s + d.text[be:]
	d.ranges = edit.Apply(d.ranges)

	applied = AppliedEdit{
		Edit:        edit,
		InsertText:  s,
		DeletedText: deleted,
	}
	return start + edit.InsertedLen, applied, true
}
