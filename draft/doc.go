// Package draft implements the message composer model: the text being typed
// together with its annotation ranges, kept in sync across edits.
//
// Offsets (cursor, edit bounds) are UTF-16 code units, as in package annot.
// Ranges held by a Draft are sorted and non-overlapping.
package draft
