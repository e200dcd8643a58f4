// Package annot implements annotated text ranges: mentions, links and
// highlights laid over free-form message text.
//
// Offsets are 0-based UTF-16 code unit indices, matching the indexing used by
// the clients that produce annotation metadata.
// Ranges are half-open: [Start, End).
//
// Every function is pure: inputs are never mutated and results are freshly
// allocated.
package annot
