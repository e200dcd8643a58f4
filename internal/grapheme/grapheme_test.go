package grapheme

import (
	"reflect"
	"testing"
)

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"

func TestBoundaries_UTF16Offsets(t *testing.T) {
	// family: 4 astral runes (2 units each) joined by 3 ZWJ (1 unit each).
	text := "a" + "e\u0301" + family + "b"
	got := Boundaries(text)
	want := []int{0, 1, 3, 14, 15}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("boundaries=%v, want %v", got, want)
	}
	if got := Boundaries(""); !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("boundaries of empty text=%v, want [0]", got)
	}
}

func TestLast(t *testing.T) {
	if got, want := Last("hi"+family), family; got != want {
		t.Fatalf("last=%q, want %q", got, want)
	}
	if got, want := Last("ce\u0301"), "e\u0301"; got != want {
		t.Fatalf("last=%q, want %q", got, want)
	}
	if got := Last(""); got != "" {
		t.Fatalf("last of empty=%q, want empty", got)
	}
}
