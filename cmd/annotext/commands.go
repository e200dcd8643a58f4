package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/annotext"
	"github.com/iw2rmb/annotext/annot"
	"github.com/iw2rmb/annotext/direction"
	"github.com/iw2rmb/annotext/internal/config"
	"github.com/iw2rmb/annotext/mention"
	"github.com/iw2rmb/annotext/render"
)

// InputFlags selects the document a command works on.
type InputFlags struct {
	Input  string `name:"input" short:"i" help:"Document file (JSON or YAML); stdin when empty" type:"path"`
	Format string `name:"format" short:"f" help:"Document format" enum:"auto,json,yaml" default:"auto"`
	Text   string `name:"text" short:"t" help:"Inline text without ranges, instead of a document"`
}

func (in InputFlags) load(env *Env) (config.Document, error) {
	if in.Text != "" {
		return config.Document{Text: in.Text}, nil
	}

	format, err := config.ParseFormat(in.Format)
	if err != nil {
		return config.Document{}, err
	}

	var r io.Reader = env.Stdin
	source := "stdin"
	if in.Input != "" {
		f, err := os.Open(in.Input)
		if err != nil {
			return config.Document{}, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
		source = in.Input
	}

	doc, err := config.ReadDocument(r, format)
	if err != nil {
		return config.Document{}, fmt.Errorf("%s: %w", source, err)
	}
	env.Log.Debug("document loaded", "source", source, "text_len", annot.Len(doc.Text), "ranges", len(doc.Ranges))
	return doc, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

type SegmentsCmd struct {
	InputFlags `embed:""`

	Render bool   `name:"render" short:"r" help:"Draw styled text instead of JSON" xor:"output"`
	Table  bool   `name:"table" help:"Print an aligned table instead of JSON" xor:"output"`
	Snap   bool   `name:"snap" help:"Widen ranges to grapheme cluster boundaries"`
	Color  string `name:"color" help:"Color output with --render" enum:"auto,always,never" default:"auto"`
}

func (c *SegmentsCmd) Run(env *Env) error {
	doc, err := c.load(env)
	if err != nil {
		return err
	}

	ranges := annot.Normalize(doc.Text, doc.Ranges)
	if c.Snap {
		ranges = annot.Merge(annot.SnapToGraphemes(doc.Text, ranges))
	}
	segs := annot.ExtractSegments(doc.Text, ranges)
	env.Log.Debug("segments extracted", "ranges_in", len(doc.Ranges), "ranges", len(ranges), "segments", len(segs))

	switch {
	case c.Render:
		r := newRenderer(env.Stdout, c.Color)
		th := render.ThemeFromSpec(r, env.Config.Theme.Plain, env.Config.Theme.Kinds)
		_, err = fmt.Fprintln(env.Stdout, render.Render(segs, th))
		return err
	case c.Table:
		return writeSegmentTable(env.Stdout, segs)
	default:
		return writeJSON(env.Stdout, segs)
	}
}

// newRenderer binds a lipgloss renderer to w. In auto mode color is only
// used when w is a terminal.
func newRenderer(w io.Writer, mode string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case "always":
		r.SetColorProfile(termenv.TrueColor)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	default:
		f, ok := w.(*os.File)
		if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			r.SetColorProfile(termenv.Ascii)
		}
	}
	return r
}

func writeSegmentTable(w io.Writer, segs []annot.Segment) error {
	cells := make([]string, len(segs))
	width := runewidth.StringWidth("TEXT")
	for i, seg := range segs {
		cells[i] = strconv.Quote(seg.Text)
		width = max(width, runewidth.StringWidth(cells[i]))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %5s  %5s  %s\n", runewidth.FillRight("TEXT", width), "START", "END", "KIND")
	for i, seg := range segs {
		kind := "-"
		if seg.Range != nil {
			kind = string(seg.Range.Kind)
		}
		fmt.Fprintf(&sb, "%s  %5d  %5d  %s\n", runewidth.FillRight(cells[i], width), seg.Start, seg.End, kind)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

type SanitizeCmd struct {
	InputFlags `embed:""`
}

func (c *SanitizeCmd) Run(env *Env) error {
	doc, err := c.load(env)
	if err != nil {
		return err
	}
	out := annot.Sanitize(doc.Ranges, annot.Len(doc.Text))
	if dropped := len(doc.Ranges) - len(out); dropped > 0 {
		env.Log.Info("ranges dropped", "count", dropped)
	}
	return writeJSON(env.Stdout, out)
}

type MergeCmd struct {
	InputFlags `embed:""`
}

func (c *MergeCmd) Run(env *Env) error {
	doc, err := c.load(env)
	if err != nil {
		return err
	}
	return writeJSON(env.Stdout, annot.Merge(doc.Ranges))
}

type AdjustCmd struct {
	InputFlags `embed:""`

	Start    int `name:"start" required:"" help:"Start of the replaced window (UTF-16 units)"`
	End      int `name:"end" required:"" help:"End of the replaced window (UTF-16 units)"`
	Inserted int `name:"inserted" default:"0" help:"Length of the inserted text (UTF-16 units)"`
}

func (c *AdjustCmd) Run(env *Env) error {
	doc, err := c.load(env)
	if err != nil {
		return err
	}
	out := annot.AdjustForEdit(doc.Ranges, c.Start, c.End, c.Inserted)
	if dropped := len(doc.Ranges) - len(out); dropped > 0 {
		env.Log.Info("ranges invalidated by edit", "count", dropped, "start", c.Start, "end", c.End)
	}
	return writeJSON(env.Stdout, out)
}

type QueryCmd struct {
	InputFlags `embed:""`

	Pos int `name:"pos" required:"" help:"Position to look up (UTF-16 units)"`
}

type queryResult struct {
	Contains bool         `json:"contains"`
	Range    *annot.Range `json:"range,omitempty"`
}

func (c *QueryCmd) Run(env *Env) error {
	doc, err := c.load(env)
	if err != nil {
		return err
	}
	res := queryResult{Contains: annot.ContainsPosition(c.Pos, doc.Ranges)}
	if r, ok := annot.FindRangeAt(c.Pos, doc.Ranges); ok {
		res.Range = &r
	}
	return writeJSON(env.Stdout, res)
}

type ScanCmd struct {
	InputFlags `embed:""`
}

func (c *ScanCmd) Run(env *Env) error {
	doc, err := c.load(env)
	if err != nil {
		return err
	}
	out := mention.Scan(doc.Text, nil)
	if out == nil {
		out = []annot.Range{}
	}
	return writeJSON(env.Stdout, out)
}

type DirectionCmd struct {
	InputFlags `embed:""`
}

func (c *DirectionCmd) Run(env *Env) error {
	doc, err := c.load(env)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.Stdout, direction.Detect(doc.Text))
	return err
}

type VersionCmd struct{}

func (c *VersionCmd) Run(env *Env) error {
	_, err := fmt.Fprintf(env.Stdout, "annotext version %s\n", annotext.Version())
	return err
}
