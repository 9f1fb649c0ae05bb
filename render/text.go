package render

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Heading underline characters by nesting level.
var textUnderlines = []string{"=", "-", "~", "^", "\""}

func writeText(w io.Writer, doc *Document) error {
	ew := &errWriter{w: w}
	level := 0
	if doc.Title != "" {
		textHeading(ew, doc.Title, level)
		level++
	}
	if doc.Error != nil {
		textError(ew, doc.Error)
	}
	for _, s := range doc.Sections {
		textSection(ew, s, level)
	}
	return ew.err
}

func textHeading(ew *errWriter, title string, level int) {
	mark := textUnderlines[min(level, len(textUnderlines)-1)]
	ew.printf("%s\n%s\n\n", title, strings.Repeat(mark, max(utf8.RuneCountInString(title), 1)))
}

func textSection(ew *errWriter, s *Section, level int) {
	textHeading(ew, s.Title, level)
	for _, p := range s.Paragraphs {
		ew.printf("%s\n\n", p)
	}
	if s.Table != nil {
		textTable(ew, s.Table)
	}
	if s.Error != nil {
		textError(ew, s.Error)
	}
	for _, child := range s.Sections {
		textSection(ew, child, level+1)
	}
}

func textError(ew *errWriter, e *ErrorBlock) {
	ew.printf("ERROR: %s\n", e.Message)
	if e.Advice != "" {
		ew.printf("%s\n", e.Advice)
	}
	if e.Cause != "" {
		ew.printf("Cause: %s\n", e.Cause)
	}
	ew.printf("\n")
}

// textTable draws a grid table. Column widths are taken as character counts
// and cell text is wrapped to fit.
func textTable(ew *errWriter, t *Table) {
	widths := make([]int, len(t.Columns))
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = max(c.Width, 1)
		headers[i] = c.Header
	}

	rule := func(fill string) string {
		var b strings.Builder
		b.WriteString("+")
		for _, w := range widths {
			b.WriteString(strings.Repeat(fill, w+2))
			b.WriteString("+")
		}
		return b.String()
	}

	ew.printf("%s\n", rule("-"))
	textRow(ew, headers, widths)
	ew.printf("%s\n", rule("="))
	for _, row := range t.Rows {
		textRow(ew, row, widths)
		ew.printf("%s\n", rule("-"))
	}
	ew.printf("\n")
}

func textRow(ew *errWriter, row []string, widths []int) {
	cells := make([][]string, len(widths))
	height := 1
	for i, w := range widths {
		var text string
		if i < len(row) {
			text = row[i]
		}
		cells[i] = wrap(text, w)
		height = max(height, len(cells[i]))
	}
	for line := range height {
		var b strings.Builder
		b.WriteString("|")
		for i, w := range widths {
			var part string
			if line < len(cells[i]) {
				part = cells[i][line]
			}
			b.WriteString(" ")
			b.WriteString(part)
			b.WriteString(strings.Repeat(" ", w-utf8.RuneCountInString(part)))
			b.WriteString(" |")
		}
		ew.printf("%s\n", b.String())
	}
}

// wrap splits text into lines of at most width runes, breaking on spaces and
// splitting words that are longer than a line.
func wrap(text string, width int) []string {
	var lines []string
	var cur []rune
	flush := func() {
		lines = append(lines, string(cur))
		cur = cur[:0]
	}
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > width {
			if len(cur) > 0 {
				flush()
			}
			cur = append(cur, w[:width]...)
			flush()
			w = w[width:]
		}
		if len(w) == 0 {
			continue
		}
		switch {
		case len(cur) == 0:
			cur = append(cur, w...)
		case len(cur)+1+len(w) <= width:
			cur = append(cur, ' ')
			cur = append(cur, w...)
		default:
			flush()
			cur = append(cur, w...)
		}
	}
	if len(cur) > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}
