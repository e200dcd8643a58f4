package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: " INFO ", want: LevelInfo},
		{in: "", want: LevelInfo},
		{in: "warning", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "loud", want: LevelInfo, wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Fatalf("ParseLevel(%q)=(%v,%v), want (%v, err=%v)", tc.in, got, err, tc.want, tc.wantErr)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Fatalf("ParseFormat(json)=(%v,%v)", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatText {
		t.Fatalf("ParseFormat(\"\")=(%v,%v)", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelWarn, FormatJSON)
	log.Info("hidden")
	log.Warn("shown", "ranges", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one record, got %d: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("invalid json record: %v", err)
	}
	if rec["msg"] != "shown" || rec["ranges"] != float64(3) {
		t.Fatalf("unexpected record: %#v", rec)
	}
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, LevelDebug, FormatText).Debug("segments", "count", 2)
	if out := buf.String(); !strings.Contains(out, "msg=segments") || !strings.Contains(out, "count=2") {
		t.Fatalf("unexpected text record: %q", out)
	}
}
