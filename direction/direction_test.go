package direction

import "testing"

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Direction
	}{
		{name: "empty", text: "", want: LTR},
		{name: "latin", text: "hello there", want: LTR},
		{name: "digits and punctuation", text: "12:30 !?", want: LTR},
		{name: "hebrew", text: "שלום", want: RTL},
		{name: "arabic", text: "مرحبا", want: RTL},
		{name: "mixed hebrew wins", text: "meeting at 5 בבית", want: RTL},
		{name: "mixed arabic wins", text: "ok مرحبا ok", want: RTL},
		{name: "cyrillic", text: "привет", want: LTR},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(tc.text); got != tc.want {
				t.Fatalf("Detect(%q)=%v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestDirection_String(t *testing.T) {
	if LTR.String() != "ltr" || RTL.String() != "rtl" {
		t.Fatalf("unexpected names: %q %q", LTR, RTL)
	}
}
