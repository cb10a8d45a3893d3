package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nao1215/sentinel/internal/model"
)

// DefaultWordWrap is the verdict wrap width.
const DefaultWordWrap = 80

// Terminal reads operator input and writes output.
type Terminal struct {
	in       *bufio.Reader
	out      io.Writer
	plain    bool
	wordWrap int
	lang     language.Tag
	numbers  *message.Printer
	styles   styles
	markdown *glamour.TermRenderer
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithLanguage sets the locale used to format numbers. The default is
// English ("12,345").
func WithLanguage(tag language.Tag) Option {
	return func(t *Terminal) {
		t.lang = tag
	}
}

// WithPlain disables colors and Markdown styling.
func WithPlain(plain bool) Option {
	return func(t *Terminal) {
		t.plain = plain
	}
}

// WithWordWrap sets the verdict wrap width. Values below 1 keep
// DefaultWordWrap.
func WithWordWrap(width int) Option {
	return func(t *Terminal) {
		if width > 0 {
			t.wordWrap = width
		}
	}
}

// New creates a Terminal reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Terminal {
	t := &Terminal{
		in:       bufio.NewReader(in),
		out:      out,
		wordWrap: DefaultWordWrap,
		lang:     language.English,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.numbers = message.NewPrinter(t.lang)

	renderer := lipgloss.NewRenderer(out)
	if t.plain {
		renderer.SetColorProfile(termenv.Ascii)
	}
	t.styles = newStyles(renderer)

	style := glamour.WithAutoStyle()
	if t.plain {
		style = glamour.WithStandardStyle("notty")
	}
	if md, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(t.wordWrap)); err == nil {
		t.markdown = md
	}
	return t
}

// Banner prints the start banner.
func (t *Terminal) Banner() {
	t.println(t.styles.banner.Render(strings.TrimPrefix(banner, "\n")))
	t.println(t.styles.dim.Render(tagline))
	t.println("")
}

// Prompt prints message and returns the next input line without the line
// terminator and surrounding spaces. It returns io.EOF when the input is
// exhausted before any character of the line was read.
func (t *Terminal) Prompt(message string) (string, error) {
	fmt.Fprint(t.out, t.styles.prompt.Render(message))

	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			fmt.Fprintln(t.out)
			return strings.TrimSpace(line), nil
		}
		fmt.Fprintln(t.out)
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Info prints a plain message.
func (t *Terminal) Info(message string) {
	t.println(t.styles.info.Render(message))
}

// Success prints a success message.
func (t *Terminal) Success(message string) {
	t.println(t.styles.success.Render(message))
}

// Warn prints a warning.
func (t *Terminal) Warn(message string) {
	t.println(t.styles.warning.Render(message))
}

// Error prints an error message.
func (t *Terminal) Error(message string) {
	t.println(t.styles.err.Render(message))
}

// Sessions prints the numbered session list.
func (t *Terminal) Sessions(names []string) {
	tbl := t.styles.newTable(true, "NUMBER", "SESSION NAME")
	for i, name := range names {
		tbl.Row(strconv.Itoa(i+1), name)
	}
	t.println(t.styles.title.Render("Available Sessions"))
	t.println(tbl.Render())
}

// Files prints the numbered, ranked file list.
func (t *Terminal) Files(entries []model.FileEntry) {
	tbl := t.styles.newTable(true, "NUMBER", "TOKEN COUNT", "FILENAME")
	for i, e := range entries {
		tbl.Row(strconv.Itoa(i+1), t.numbers.Sprintf("%d", e.Tokens), e.Name)
	}
	t.println(t.styles.title.Render("Available Files"))
	t.println(tbl.Render())
}

// Verdict prints an analysis verdict, rendered as Markdown when possible.
func (t *Terminal) Verdict(verdict string) {
	t.println("")
	t.println(t.styles.title.Render("Analysis:"))
	if t.markdown != nil {
		if rendered, err := t.markdown.Render(verdict); err == nil {
			t.println(rendered)
			return
		}
	}
	t.println(verdict)
}

// Status prints a progress line for a blocking operation.
func (t *Terminal) Status(message string) {
	t.println(t.styles.dim.Render(message))
}

func (t *Terminal) println(s string) {
	fmt.Fprintln(t.out, s)
}
