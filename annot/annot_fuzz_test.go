package annot

import (
	"strings"
	"testing"
)

func FuzzAnnotatorInvariants(f *testing.F) {
	seeds := [][]byte{
		{},
		{0},
		{1, 2, 3, 4, 5},
		{255, 0, 128, 64, 32, 16, 8, 4, 2, 1},
		[]byte("hello @alice bye"),
		[]byte("overlap-overlap-overlap"),
		[]byte("unicode-seed-\U0001F468\u200d\U0001F469"),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tc := decodeAnnotFuzzCase(data)
		n := Len(tc.text)

		sanitized := Sanitize(tc.ranges, n)
		for _, r := range sanitized {
			if r.Start < 0 || r.Start > r.End || r.End > n {
				t.Fatalf("sanitized range %#v outside [0,%d]", r, n)
			}
		}

		merged := Merge(sanitized)
		for i := 1; i < len(merged); i++ {
			if merged[i-1].End >= merged[i].Start {
				t.Fatalf("merged ranges overlap or touch: %#v %#v", merged[i-1], merged[i])
			}
		}

		again := Merge(merged)
		if len(again) != len(merged) {
			t.Fatalf("merge not idempotent: %#v vs %#v", merged, again)
		}
		for i := range again {
			if again[i].Start != merged[i].Start || again[i].End != merged[i].End || again[i].Kind != merged[i].Kind {
				t.Fatalf("merge not idempotent at %d: %#v vs %#v", i, merged[i], again[i])
			}
		}

		var sb strings.Builder
		for _, seg := range ExtractSegments(tc.text, merged) {
			sb.WriteString(seg.Text)
		}
		if got := sb.String(); got != tc.text {
			t.Fatalf("segments do not reproduce text: got %q, want %q", got, tc.text)
		}

		for p := 0; p < n; p++ {
			_, found := FindRangeAt(p, tc.ranges)
			if found != ContainsPosition(p, tc.ranges) {
				t.Fatalf("containment mismatch at %d", p)
			}
		}

		adjusted := AdjustForEdit(merged, tc.edit.Start, tc.edit.End, tc.edit.InsertedLen)
		if len(adjusted) > len(merged) {
			t.Fatalf("adjust grew the range set: %d > %d", len(adjusted), len(merged))
		}
		for _, r := range adjusted {
			if r.Start > r.End {
				t.Fatalf("adjust produced inverted range %#v", r)
			}
		}
	})
}

type annotFuzzCase struct {
	text   string
	ranges []Range
	edit   Edit
}

type fuzzByteReader struct {
	data []byte
	idx  int
}

func (r *fuzzByteReader) nextByte() byte {
	if len(r.data) == 0 {
		return 0
	}
	b := r.data[r.idx%len(r.data)]
	r.idx++
	return b
}

func (r *fuzzByteReader) nextInt(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.nextByte()) % n
}

var fuzzAlphabet = []string{"a", "b", " ", "@", "\u00e9", "e\u0301", "\U0001F600", "\u05e9", "\n"}

func decodeAnnotFuzzCase(data []byte) annotFuzzCase {
	r := fuzzByteReader{data: data}

	var sb strings.Builder
	for i, n := 0, r.nextInt(24); i < n; i++ {
		sb.WriteString(fuzzAlphabet[r.nextInt(len(fuzzAlphabet))])
	}
	text := sb.String()
	span := Len(text) + 8

	kinds := []Kind{KindMention, KindHighlight, KindLink}
	count := r.nextInt(8)
	ranges := make([]Range, 0, count)
	for i := 0; i < count; i++ {
		ranges = append(ranges, Range{
			Start:   r.nextInt(span) - 4,
			End:     r.nextInt(span) - 4,
			Kind:    kinds[r.nextInt(len(kinds))],
			Payload: Payload{"i": i},
		})
	}

	start := r.nextInt(span)
	return annotFuzzCase{
		text:   text,
		ranges: ranges,
		edit:   Edit{Start: start, End: start + r.nextInt(6), InsertedLen: r.nextInt(6)},
	}
}

func FuzzDiffEdit(f *testing.F) {
	f.Add("hi @bob", "hi @@bob", 4)
	f.Add("aa", "aaa", 1)
	f.Add("\xc3x", "\u00e9", 1)
	f.Add("a\U0001F600b", "ab", 1)
	f.Add("", "x", -1)

	f.Fuzz(func(t *testing.T, before, after string, cursor int) {
		for _, diff := range []func() (Edit, bool){
			func() (Edit, bool) { return DiffEdit(before, after) },
			func() (Edit, bool) { return DiffEditAt(before, after, cursor) },
		} {
			e, ok := diff()
			if ok != (before != after) {
				t.Fatalf("ok=%v for %q -> %q", ok, before, after)
			}
			if !ok {
				continue
			}
			if e.Start < 0 || e.Start > e.End || e.End > Len(before) {
				t.Fatalf("edit %#v outside %q", e, before)
			}
			rebuilt := Slice(before, 0, e.Start) +
				Slice(after, e.Start, e.Start+e.InsertedLen) +
				Slice(before, e.End, Len(before))
			if rebuilt != after {
				t.Fatalf("edit %#v turns %q into %q, want %q", e, before, rebuilt, after)
			}
		}
	})
}
