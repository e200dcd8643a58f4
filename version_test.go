package annotext

import "testing"

func TestVersion_Embedded(t *testing.T) {
	v := Version()
	if !ValidVersion(v) {
		t.Fatalf("embedded VERSION must be semver, got %q", v)
	}
}

func TestValidVersion(t *testing.T) {
	cases := map[string]bool{
		"0.1.0":          true,
		"1.2.3-rc.1":     true,
		"2.0.0+sha.abc1": true,
		" 1.0.0\n":       true,
		"v1.2.3":         false,
		"1.2":            false,
		"1.02.3":         false,
		"":               false,
	}
	for in, want := range cases {
		if got := ValidVersion(in); got != want {
			t.Fatalf("ValidVersion(%q)=%v, want %v", in, got, want)
		}
	}
}
