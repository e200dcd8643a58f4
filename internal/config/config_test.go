package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/annotext/annot"
	"github.com/iw2rmb/annotext/render"
)

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "annotext.yaml")
	body := `log:
  level: debug
theme:
  kinds:
    mention:
      foreground: "#ff0000"
      bold: true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{
		Log: LogConfig{Level: "debug", Format: "text"},
		Theme: ThemeConfig{Kinds: map[string]render.StyleSpec{
			"mention": {Foreground: "#ff0000", Bold: true},
		}},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err=%v, want not-exist", err)
	}
}

func TestDecode_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "colour: red\n",
		"bad level":     "log:\n  level: loud\n",
		"bad format":    "log:\n  format: xml\n",
		"not a mapping": "- a\n- b\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(body)); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err=%v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestDecode_EmptyInputIsDefault(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestReadDocument(t *testing.T) {
	want := Document{
		Text: "hello @alice",
		Ranges: []annot.Range{
			{Start: 6, End: 12, Kind: annot.KindMention, Payload: annot.Payload{"id": "u1"}},
		},
	}

	jsonDoc := `{"text":"hello @alice","ranges":[{"start":6,"end":12,"type":"mention","data":{"id":"u1"}}]}`
	yamlDoc := "text: hello @alice\nranges:\n  - start: 6\n    end: 12\n    type: mention\n    data:\n      id: u1\n"

	for name, tc := range map[string]struct {
		body   string
		format Format
	}{
		"json auto": {body: "  " + jsonDoc, format: FormatAuto},
		"json":      {body: jsonDoc, format: FormatJSON},
		"yaml auto": {body: yamlDoc, format: FormatAuto},
		"yaml":      {body: yamlDoc, format: FormatYAML},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := ReadDocument(strings.NewReader(tc.body), tc.format)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("document mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadDocument_Errors(t *testing.T) {
	if _, err := ReadDocument(strings.NewReader(`{"text": 3}`), FormatJSON); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("err=%v, want ErrInvalidDocument", err)
	}
	if _, err := ReadDocument(strings.NewReader(`{"txt": "a"}`), FormatAuto); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("err=%v, want ErrInvalidDocument for unknown field", err)
	}
	if _, err := ReadDocument(strings.NewReader("text: a"), Format("toml")); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err=%v, want ErrUnknownFormat", err)
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err=%v, want ErrUnknownFormat", err)
	}
}
