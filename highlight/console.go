package highlight

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf16"

	"github.com/fatih/color"
	"github.com/npillmayer/textbuilder/metrics"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

const ellipsis = "…"

// Console prints matches line by line, in the style of grep.
type Console struct {
	Name    string         // prefix for every line, usually a file name
	Width   int            // maximum display width of a line; 0 means unlimited
	Context *uax11.Context // context for display widths; nil means Latin
	match   *color.Color
	pos     *color.Color
}

// NewConsole creates a console printer. If colored is false, no escape
// sequences are written, regardless of the terminal.
func NewConsole(name string, width int, colored bool) *Console {
	c := &Console{
		Name:  name,
		Width: width,
		match: color.New(color.FgRed, color.Bold),
		pos:   color.New(color.FgBlue),
	}
	if colored {
		c.match.EnableColor()
		c.pos.EnableColor()
	} else {
		c.match.DisableColor()
		c.pos.DisableColor()
	}
	return c
}

// Print writes one line per range: name, line and column, followed by the
// line of text containing the start of the range. Ranges have to be sorted.
func (c *Console) Print(w io.Writer, units []uint16, ranges []Range) error {
	lines := metrics.Lines().Apply(units)
	for _, r := range ranges {
		hit := Locate(units, lines, r, c.Context)
		if _, err := fmt.Fprintf(w, "%s %s\n", c.pos.Sprintf("%s:%d:%d:", c.Name, hit.Line, hit.Column), c.render(units, hit)); err != nil {
			return err
		}
	}
	tracer().Debugf("highlight: printed %d matches", len(ranges))
	return nil
}

// render returns the line of hit with the match coloured, clipped to the
// console width.
func (c *Console) render(units []uint16, hit Hit) string {
	end := min(hit.End, hit.LineEnd)
	before := []rune(decode(units[hit.LineStart:hit.Start]))
	matched := decode(units[hit.Start:end])
	after := []rune(decode(units[end:hit.LineEnd]))
	mw := stringWidth(matched, c.Context)
	if c.Width <= 0 || c.runesWidth(before)+mw+c.runesWidth(after) <= c.Width {
		return string(before) + c.match.Sprint(matched) + string(after)
	}
	var sb strings.Builder
	room := c.Width - mw
	// keep as much of the text in front of the match as fits half the room
	keep := len(before)
	for keep > 0 && c.runesWidth(before[len(before)-keep:]) > room/2 {
		keep--
	}
	if keep < len(before) {
		sb.WriteString(ellipsis)
		room--
	}
	head := before[len(before)-keep:]
	sb.WriteString(string(head))
	room -= c.runesWidth(head)
	sb.WriteString(c.match.Sprint(matched))
	tail := 0
	for tail < len(after) && c.runesWidth(after[:tail+1]) <= room {
		tail++
	}
	if tail < len(after) && tail > 0 {
		tail-- // room for the ellipsis
	}
	sb.WriteString(string(after[:tail]))
	if tail < len(after) {
		sb.WriteString(ellipsis)
	}
	return sb.String()
}

func (c *Console) runesWidth(r []rune) int {
	return stringWidth(string(r), c.Context)
}

func decode(units []uint16) string {
	return string(utf16.Decode(units))
}

// TerminalWidth returns the width of the terminal stdout is connected to,
// or 0 if stdout is not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		tracer().Infof("highlight: cannot read terminal size: %v", err)
		return 80
	}
	if w > 10 {
		return w - 1
	}
	return 10
}
