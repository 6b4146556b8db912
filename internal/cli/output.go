package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// colorEnabled is on when stdout is a terminal. Tests and --no-color
// override it.
var colorEnabled = IsTerminal(os.Stdout)

// SetColorEnabled overrides terminal detection.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled reports whether ANSI colors are emitted.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green is used for totals and confirmations.
func Green(s string) string { return paint(colorGreen, s) }

// Red is used for errors.
func Red(s string) string { return paint(colorRed, s) }

// Yellow is used for toasts and hints.
func Yellow(s string) string { return paint(colorYellow, s) }

// Gray is used for secondary text such as the empty-cart message.
func Gray(s string) string { return paint(colorGray, s) }

// DefaultMaxTitleWidth caps product name columns.
const DefaultMaxTitleWidth = 60

// Align controls how a table column is padded.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Table lays out rows in columns separated by two spaces. Widths are measured
// without ANSI escapes.
type Table struct {
	rows      [][]string
	widths    []int
	maxWidths map[int]int
	aligns    map[int]Align
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{maxWidths: make(map[int]int), aligns: make(map[int]Align)}
}

// SetMaxWidth truncates column col to maxWidth visible characters, ending
// in "..." when cut.
func (t *Table) SetMaxWidth(col, maxWidth int) {
	t.maxWidths[col] = maxWidth
}

// SetAlign sets the alignment of column col. Amounts read best right-aligned.
func (t *Table) SetAlign(col int, a Align) {
	t.aligns[col] = a
}

// AddRow appends a row. Rows may have different lengths.
func (t *Table) AddRow(cols ...string) {
	row := make([]string, len(cols))
	for i, col := range cols {
		if maxW, ok := t.maxWidths[i]; ok {
			col = Truncate(col, maxW)
		}
		row[i] = col
		if i == len(t.widths) {
			t.widths = append(t.widths, 0)
		}
		if w := visibleWidth(col); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, row)
}

// Render writes the table to w. The last column of a left-aligned row is
// not padded so lines carry no trailing spaces.
func (t *Table) Render(w io.Writer) {
	last := len(t.widths) - 1
	for _, row := range t.rows {
		var b strings.Builder
		for i, col := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			pad := strings.Repeat(" ", t.widths[i]-visibleWidth(col))
			switch {
			case t.aligns[i] == AlignRight:
				b.WriteString(pad + col)
			case i == last || i == len(row)-1:
				b.WriteString(col)
			default:
				b.WriteString(col + pad)
			}
		}
		fmt.Fprintln(w, b.String())
	}
}

// Truncate shortens s to maxWidth visible characters. When room allows the
// cut text ends in "...". Escape sequences are kept and, if any were seen,
// a reset is appended so color does not leak.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	const ellipsis = "..."
	limit, suffix := maxWidth, ""
	if maxWidth >= len(ellipsis) {
		limit, suffix = maxWidth-len(ellipsis), ellipsis
	}

	var b strings.Builder
	visible := 0
	inEscape, sawEscape := false, false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape, sawEscape = true, true
			b.WriteRune(r)
		case inEscape:
			b.WriteRune(r)
			inEscape = r != 'm'
		case visible < limit:
			b.WriteRune(r)
			visible++
		}
	}
	b.WriteString(suffix)
	if sawEscape {
		b.WriteString(colorReset)
	}
	return b.String()
}

// visibleWidth counts runes outside ANSI escape sequences.
func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			inEscape = r != 'm'
		default:
			width++
		}
	}
	return width
}
