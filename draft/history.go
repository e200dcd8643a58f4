package draft

import (
	"strings"
	"unicode"

	"github.com/iw2rmb/annotext/annot"
)

// draftSnapshot is what one undo step restores.
type draftSnapshot struct {
	text   string
	ranges []annot.Range
	cursor int
}

// typingRun tracks a run of plain insertions that undo as one step. The run
// continues while each insertion lands at end and the draft is still at
// version, i.e. nothing else touched it in between.
type typingRun struct {
	active  bool
	end     int
	version uint64
}

type historyState struct {
	undo []draftSnapshot
	redo []draftSnapshot
	run  typingRun
}

func (d *Draft) snapshot() draftSnapshot {
	return draftSnapshot{
		text:   d.text,
		ranges: d.Ranges(),
		cursor: d.cursor,
	}
}

func (d *Draft) restore(s draftSnapshot) {
	d.text = s.text
	d.ranges = append([]annot.Range(nil), s.ranges...)
	d.cursor = d.clampPos(s.cursor)
}

// pushBounded appends s to stack, keeping at most limit entries.
func pushBounded(stack []draftSnapshot, s draftSnapshot, limit int) []draftSnapshot {
	stack = append(stack, s)
	if len(stack) > limit {
		stack = stack[len(stack)-limit:]
	}
	return stack
}

// recordUndo makes prev, the state before the change just applied, an undo
// step. edits are the change's applied edits; a lone insertion continuing
// the current typing run joins the previous step instead.
func (d *Draft) recordUndo(prev draftSnapshot, versionBefore uint64, edits []AppliedEdit) {
	if d.opt.HistoryLimit <= 0 {
		return
	}
	d.hist.redo = nil

	typed, ok := typingInsert(edits)
	if ok && d.continuesRun(versionBefore, typed) && len(d.hist.undo) > 0 {
		d.hist.run.end = typed.Edit.Start + typed.Edit.InsertedLen
		d.hist.run.version = d.version
		return
	}

	d.hist.undo = pushBounded(d.hist.undo, prev, d.opt.HistoryLimit)
	d.hist.run = typingRun{}
	if ok {
		d.hist.run = typingRun{
			active:  true,
			end:     typed.Edit.Start + typed.Edit.InsertedLen,
			version: d.version,
		}
	}
}

// typingInsert returns the single insertion in edits, if that is all the
// change did.
func typingInsert(edits []AppliedEdit) (AppliedEdit, bool) {
	if len(edits) != 1 || edits[0].DeletedText != "" || edits[0].InsertText == "" {
		return AppliedEdit{}, false
	}
	return edits[0], true
}

// continuesRun reports whether e extends the typing run. Whitespace starts a
// new step, so undo removes typed text a word at a time.
func (d *Draft) continuesRun(versionBefore uint64, e AppliedEdit) bool {
	run := d.hist.run
	if !run.active || run.version != versionBefore || run.end != e.Edit.Start {
		return false
	}
	first := []rune(e.InsertText)[0]
	return !unicode.IsSpace(first) && !strings.ContainsRune(e.InsertText, '\n')
}

func (d *Draft) CanUndo() bool { return len(d.hist.undo) > 0 }

func (d *Draft) CanRedo() bool { return len(d.hist.redo) > 0 }

// Undo restores the text, ranges and cursor before the last undo step.
func (d *Draft) Undo() bool {
	return d.step(&d.hist.undo, &d.hist.redo)
}

// Redo reapplies the last undone step.
func (d *Draft) Redo() bool {
	return d.step(&d.hist.redo, &d.hist.undo)
}

// step pops a snapshot from src, pushes the current state onto dst and
// restores the popped one, recording the swap as a change.
func (d *Draft) step(src, dst *[]draftSnapshot) bool {
	if len(*src) == 0 {
		return false
	}

	cur := d.snapshot()
	change := d.beginChange()

	i := len(*src) - 1
	target := (*src)[i]
	*src = (*src)[:i]
	if d.opt.HistoryLimit > 0 {
		*dst = pushBounded(*dst, cur, d.opt.HistoryLimit)
	}
	d.hist.run = typingRun{}

	d.restore(target)
	d.version++
	if applied, ok := replacementAppliedEdit(cur.text, target.text); ok {
		change.addAppliedEdit(applied)
	}
	d.commitChange(change)
	return true
}
