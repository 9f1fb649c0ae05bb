package render

import (
	"io"
	"strings"
)

func writeMarkdown(w io.Writer, doc *Document) error {
	ew := &errWriter{w: w}
	level := 1
	if doc.Title != "" {
		ew.printf("# %s\n\n", doc.Title)
		level = 2
	}
	if doc.Error != nil {
		markdownError(ew, doc.Error)
	}
	for _, s := range doc.Sections {
		markdownSection(ew, s, level)
	}
	return ew.err
}

func markdownSection(ew *errWriter, s *Section, level int) {
	ew.printf("<a id=\"%s\"></a>\n%s %s\n\n", s.ID, strings.Repeat("#", min(level, 6)), s.Title)
	for _, p := range s.Paragraphs {
		ew.printf("%s\n\n", p)
	}
	if s.Table != nil {
		markdownTable(ew, s.Table)
	}
	if s.Error != nil {
		markdownError(ew, s.Error)
	}
	for _, child := range s.Sections {
		markdownSection(ew, child, level+1)
	}
}

func markdownTable(ew *errWriter, t *Table) {
	headers := make([]string, len(t.Columns))
	rule := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = markdownCell(c.Header)
		rule[i] = "---"
	}
	ew.printf("| %s |\n| %s |\n", strings.Join(headers, " | "), strings.Join(rule, " | "))
	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			if i < len(row) {
				cells[i] = markdownCell(row[i])
			}
		}
		ew.printf("| %s |\n", strings.Join(cells, " | "))
	}
	ew.printf("\n")
}

var markdownCellReplacer = strings.NewReplacer("|", `\|`, "\r\n", "<br>", "\n", "<br>")

func markdownCell(s string) string {
	return markdownCellReplacer.Replace(strings.TrimSpace(s))
}

func markdownError(ew *errWriter, e *ErrorBlock) {
	ew.printf("> **Error:** %s\n", e.Message)
	if e.Advice != "" {
		ew.printf(">\n> %s\n", e.Advice)
	}
	if e.Cause != "" {
		ew.printf(">\n> `%s`\n", strings.ReplaceAll(e.Cause, "`", "'"))
	}
	ew.printf("\n")
}
