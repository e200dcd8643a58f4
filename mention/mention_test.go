package mention

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/annotext/annot"
)

func TestScan_DefaultResolver(t *testing.T) {
	text := "hey @alice and @bob.smith, mail me@example.com @"
	got := Scan(text, nil)
	want := []annot.Range{
		{Start: 4, End: 10, Kind: annot.KindMention, Payload: annot.Payload{"handle": "alice"}},
		{Start: 15, End: 25, Kind: annot.KindMention, Payload: annot.Payload{"handle": "bob.smith"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("scan mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_TrimsTrailingPunctuation(t *testing.T) {
	got := Scan("ping @carol.", nil)
	if len(got) != 1 || got[0].End != 11 || got[0].Payload["handle"] != "carol" {
		t.Fatalf("scan=%#v, want single @carol mention ending at 11", got)
	}
}

func TestScan_ResolverFiltersUnknownHandles(t *testing.T) {
	users := map[string]string{"alice": "u1"}
	resolve := func(h string) (annot.Payload, bool) {
		id, ok := users[h]
		if !ok {
			return nil, false
		}
		return annot.Payload{"id": id}, true
	}

	got := Scan("@ghost @alice", resolve)
	want := []annot.Range{{Start: 7, End: 13, Kind: annot.KindMention, Payload: annot.Payload{"id": "u1"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("scan mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_UTF16Offsets(t *testing.T) {
	text := "\U0001F600 @zo\u00eb"
	got := Scan(text, nil)
	if len(got) != 1 || got[0].Start != 3 || got[0].End != 7 {
		t.Fatalf("scan=%#v, want mention [3,7)", got)
	}
	if s := annot.Slice(text, got[0].Start, got[0].End); s != "@zo\u00eb" {
		t.Fatalf("mention text=%q", s)
	}
}

func TestActiveQuery(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		cursor int
		want   Query
		ok     bool
	}{
		{name: "partial handle", text: "hi @al", cursor: 6, want: Query{Start: 3, End: 6, Text: "al"}, ok: true},
		{name: "lone sigil", text: "hi @", cursor: 4, want: Query{Start: 3, End: 4, Text: ""}, ok: true},
		{name: "sigil at start", text: "@b", cursor: 2, want: Query{Start: 0, End: 2, Text: "b"}, ok: true},
		{name: "cursor mid text", text: "@bob rest", cursor: 3, want: Query{Start: 0, End: 3, Text: "bo"}, ok: true},
		{name: "email is not a query", text: "me@ex", cursor: 5, ok: false},
		{name: "after space", text: "@bob ", cursor: 5, ok: false},
		{name: "no sigil", text: "plain", cursor: 5, ok: false},
		{name: "cursor out of range", text: "@a", cursor: 9, ok: false},
		{name: "astral prefix", text: "\U0001F600 @x", cursor: 5, want: Query{Start: 3, End: 5, Text: "x"}, ok: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ActiveQuery(tc.text, tc.cursor)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("ActiveQuery(%q, %d)=(%#v,%v), want (%#v,%v)", tc.text, tc.cursor, got, ok, tc.want, tc.ok)
			}
		})
	}
}
