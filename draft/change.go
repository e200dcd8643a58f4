package draft

import "github.com/iw2rmb/annotext/annot"

// AppliedEdit describes one effective edit in a change.
type AppliedEdit struct {
	Edit        annot.Edit
	InsertText  string
	DeletedText string
}

// Change is a versioned record of one mutation of a draft.
type Change struct {
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  int
	CursorAfter   int
	RangesBefore  []annot.Range
	RangesAfter   []annot.Range
	AppliedEdits  []AppliedEdit
}

type changeBuilder struct {
	versionBefore uint64
	cursorBefore  int
	rangesBefore  []annot.Range
	appliedEdits  []AppliedEdit
}

// LastChange returns the most recent effective change.
func (d *Draft) LastChange() (Change, bool) {
	if !d.hasLastChange {
		return Change{}, false
	}
	return cloneChange(d.lastChange), true
}

func cloneChange(in Change) Change {
	out := in
	out.RangesBefore = append([]annot.Range(nil), in.RangesBefore...)
	out.RangesAfter = append([]annot.Range(nil), in.RangesAfter...)
	out.AppliedEdits = append([]AppliedEdit(nil), in.AppliedEdits...)
	return out
}

func (d *Draft) beginChange() changeBuilder {
	return changeBuilder{
		versionBefore: d.version,
		cursorBefore:  d.cursor,
		rangesBefore:  d.Ranges(),
	}
}

func (cb *changeBuilder) addAppliedEdit(edit AppliedEdit) {
	cb.appliedEdits = append(cb.appliedEdits, edit)
}

func (d *Draft) commitChange(cb changeBuilder) {
	if d.version == cb.versionBefore {
		return
	}
	d.lastChange = Change{
		VersionBefore: cb.versionBefore,
		VersionAfter:  d.version,
		CursorBefore:  cb.cursorBefore,
		CursorAfter:   d.cursor,
		RangesBefore:  cb.rangesBefore,
		RangesAfter:   d.Ranges(),
		AppliedEdits:  append([]AppliedEdit(nil), cb.appliedEdits...),
	}
	d.hasLastChange = true
}

// replacementAppliedEdit describes a wholesale text swap (undo/redo) as the
// minimal edit between the two texts.
func replacementAppliedEdit(beforeText, afterText string) (AppliedEdit, bool) {
	e, ok := annot.DiffEdit(beforeText, afterText)
	if !ok {
		return AppliedEdit{}, false
	}
	return AppliedEdit{
		Edit:        e,
		InsertText:  annot.Slice(afterText, e.Start, e.Start+e.InsertedLen),
		DeletedText: annot.Slice(beforeText, e.Start, e.End),
	}, true
}
