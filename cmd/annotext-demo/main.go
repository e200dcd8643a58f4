// Command annotext-demo is a chat composer that keeps @mentions attached to
// the text while it is edited.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/annotext/annot"
	"github.com/iw2rmb/annotext/direction"
	"github.com/iw2rmb/annotext/draft"
	"github.com/iw2rmb/annotext/internal/logging"
	"github.com/iw2rmb/annotext/mention"
	"github.com/iw2rmb/annotext/render"
)

type user struct {
	ID     string
	Handle string
	Name   string
}

var roster = []user{
	{ID: "u1", Handle: "alice", Name: "Alice Liddell"},
	{ID: "u2", Handle: "alex", Name: "Alex Chen"},
	{ID: "u3", Handle: "bob", Name: "Bob Marley"},
	{ID: "u4", Handle: "noa", Name: "נועה לוי"},
}

type model struct {
	input textinput.Model
	draft *draft.Draft
	keys  keyMap
	theme render.Theme
	help  lipgloss.Style
	log   *slog.Logger

	popup       lipgloss.Style
	selectedRow lipgloss.Style

	query       mention.Query
	suggestions []user
	selected    int

	sent  []string
	width int
}

const defaultWidth = 60

func newModel(log *slog.Logger) model {
	in := textinput.New()
	in.Placeholder = "Message (type @ to mention)"
	in.Prompt = "> "
	in.Focus()

	return model{
		input: in,
		draft: draft.New("", nil, draft.Options{}),
		keys:  defaultKeyMap(),
		theme: render.DefaultTheme(),
		help:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		log:   log,
		width: defaultWidth,

		popup:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		selectedRow: lipgloss.NewStyle().Reverse(true),
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = max(msg.Width, 1)
		m.input.Width = max(m.width-lipgloss.Width(m.input.Prompt)-1, 1)
		return m, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Accept) && len(m.suggestions) > 0:
			m.acceptSuggestion()
			return m, nil
		case key.Matches(msg, m.keys.Next) && len(m.suggestions) > 0:
			m.selected = (m.selected + 1) % len(m.suggestions)
			return m, nil
		case key.Matches(msg, m.keys.Prev) && len(m.suggestions) > 0:
			m.selected = (m.selected + len(m.suggestions) - 1) % len(m.suggestions)
			return m, nil
		case key.Matches(msg, m.keys.Undo):
			if m.draft.Undo() {
				m.syncInput()
			}
			return m, nil
		case key.Matches(msg, m.keys.Redo):
			if m.draft.Redo() {
				m.syncInput()
			}
			return m, nil
		case key.Matches(msg, m.keys.Send):
			m.send()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.syncDraft()
	return m, cmd
}

// syncDraft carries a change made in the text field over to the draft.
func (m *model) syncDraft() {
	value := m.input.Value()
	if value != m.draft.Text() {
		before := len(m.draft.Ranges())
		m.draft.SetTextAt(value, runeToUnit(value, m.input.Position()))
		if after := len(m.draft.Ranges()); after < before {
			m.log.Debug("mentions invalidated by edit", "count", before-after, "version", m.draft.Version())
		}
	} else {
		m.draft.SetCursor(runeToUnit(value, m.input.Position()))
	}
	m.refreshSuggestions()
}

// syncInput pushes the draft's text and cursor into the text field.
func (m *model) syncInput() {
	text := m.draft.Text()
	m.input.SetValue(text)
	m.input.SetCursor(unitToRune(text, m.draft.Cursor()))
	m.refreshSuggestions()
}

func (m *model) refreshSuggestions() {
	m.suggestions = nil
	q, ok := mention.ActiveQuery(m.draft.Text(), m.draft.Cursor())
	if !ok {
		return
	}
	m.query = q
	prefix := strings.ToLower(q.Text)
	for _, u := range roster {
		if strings.HasPrefix(u.Handle, prefix) {
			m.suggestions = append(m.suggestions, u)
		}
	}
	if m.selected >= len(m.suggestions) {
		m.selected = 0
	}
}

func (m *model) acceptSuggestion() {
	u := m.suggestions[m.selected]
	m.draft.InsertMention(m.query.Start, m.query.End, "@"+u.Handle, annot.Payload{"id": u.ID, "name": u.Name})
	m.log.Debug("mention inserted", "user", u.ID, "version", m.draft.Version())
	m.selected = 0
	m.syncInput()
}

func (m *model) send() {
	if strings.TrimSpace(m.draft.Text()) == "" {
		return
	}
	m.sent = append(m.sent, render.Render(m.draft.Segments(), m.theme))
	m.log.Info("message sent", "ranges", len(m.draft.Ranges()), "units", m.draft.Len())

	m.draft = draft.New("", nil, draft.Options{})
	m.input.Reset()
	m.suggestions = nil
}

func (m model) View() string {
	var lines []string
	for _, line := range m.sent {
		lines = append(lines, strings.Split(m.layoutSent(line), "\n")...)
	}
	if len(m.sent) > 0 {
		lines = append(lines, "")
	}

	inputRow := len(lines)
	preview := m.help.Render(fmt.Sprintf("preview (%s): ", direction.Detect(m.draft.Text()))) +
		render.Render(m.draft.Segments(), m.theme)
	lines = append(lines, m.input.View(), preview, "")

	parts := make([]string, 0, len(m.keys.help()))
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	lines = append(lines, m.help.Render(strings.Join(parts, " • ")))

	if len(m.suggestions) == 0 {
		return strings.Join(lines, "\n")
	}
	return m.withPicker(lines, inputRow)
}

// withPicker composites the suggestion popup over lines, just below the
// input row and aligned with the typed sigil.
func (m model) withPicker(lines []string, inputRow int) string {
	popup := m.renderPicker()
	for len(lines) < inputRow+1+lipgloss.Height(popup) {
		lines = append(lines, "")
	}
	for i, line := range lines {
		if pad := m.width - ansi.StringWidth(line); pad > 0 {
			lines[i] = line + strings.Repeat(" ", pad)
		}
	}

	typed := annot.Slice(m.draft.Text(), 0, m.query.Start)
	x := lipgloss.Width(m.input.Prompt) + ansi.StringWidth(typed)
	x = min(x, max(m.width-lipgloss.Width(popup), 0))

	return overlay.Composite(
		popup,
		strings.Join(lines, "\n"),
		overlay.Left,
		overlay.Top,
		x,
		inputRow+1,
	)
}

func (m model) renderPicker() string {
	rows := make([]string, len(m.suggestions))
	for i, u := range m.suggestions {
		row := fmt.Sprintf("@%-6s %s", u.Handle, u.Name)
		if i == m.selected {
			row = m.selectedRow.Render(row)
		}
		rows[i] = row
	}
	return m.popup.Render(strings.Join(rows, "\n"))
}

// layoutSent wraps a rendered message to the window and right-aligns
// right-to-left text.
func (m model) layoutSent(line string) string {
	wrapped := ansi.Wrap(line, m.width, "")
	if direction.Detect(ansi.Strip(line)) != direction.RTL {
		return wrapped
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, wrapped)
}

// runeToUnit converts a rune index in s to a UTF-16 offset.
func runeToUnit(s string, runeIdx int) int {
	i := 0
	for byteIdx := range s {
		if i == runeIdx {
			return annot.Len(s[:byteIdx])
		}
		i++
	}
	return annot.Len(s)
}

// unitToRune converts a UTF-16 offset in s to a rune index.
func unitToRune(s string, unit int) int {
	prefix := annot.Slice(s, 0, unit)
	return utf8.RuneCountInString(prefix)
}

var cli struct {
	LogFile  string `name:"log-file" help:"Write debug logs to this file" type:"path"`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"debug"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("annotext-demo"),
		kong.Description("Chat composer with live @mentions"),
		kong.UsageOnError(),
	)

	log := logging.Discard()
	if cli.LogFile != "" {
		level, err := logging.ParseLevel(cli.LogLevel)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		f, err := os.OpenFile(cli.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		log = logging.New(f, level, logging.FormatText)
	}

	p := tea.NewProgram(newModel(log))
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
