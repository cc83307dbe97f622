package cli

import (
	"strings"
	"unicode/utf8"
)

// Table renders left-aligned text columns with a dashed separator under
// the header. Widths are measured in runes.
type Table struct {
	headers   []string
	rows      [][]string
	padding   int
	maxWidths map[int]int // Wrap limit per column index (0 = none)
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:   headers,
		padding:   2,
		maxWidths: make(map[int]int),
	}
}

// SetColumnMaxWidth wraps cells of a column at word boundaries beyond maxWidth.
func (t *Table) SetColumnMaxWidth(colIndex int, maxWidth int) {
	t.maxWidths[colIndex] = maxWidth
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	fitted := make([]string, len(t.headers))
	copy(fitted, row)
	t.rows = append(t.rows, fitted)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	// Each cell becomes one or more lines.
	cells := make([][][]string, len(t.rows))
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for r, row := range t.rows {
		cells[r] = make([][]string, len(row))
		for c, cell := range row {
			lines := wrapText(cell, t.maxWidths[c])
			cells[r][c] = lines
			for _, line := range lines {
				widths[c] = max(widths[c], utf8.RuneCountInString(line))
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var b strings.Builder
	writeLine := func(parts []string) {
		b.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
		b.WriteByte('\n')
	}

	parts := make([]string, len(t.headers))
	for i, h := range t.headers {
		parts[i] = padRight(h, widths[i])
	}
	writeLine(parts)

	for i, w := range widths {
		parts[i] = strings.Repeat("-", w)
	}
	writeLine(parts)

	for _, row := range cells {
		height := 1
		for _, lines := range row {
			height = max(height, len(lines))
		}
		for l := 0; l < height; l++ {
			for c := range t.headers {
				text := ""
				if l < len(row[c]) {
					text = row[c][l]
				}
				parts[c] = padRight(text, widths[c])
			}
			writeLine(parts)
		}
	}

	return b.String()
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// wrapText wraps text at word boundaries so no line exceeds width runes.
// Words longer than width are split.
func wrapText(text string, width int) []string {
	if width <= 0 || utf8.RuneCountInString(text) <= width {
		return []string{text}
	}

	var lines []string
	var current []rune
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > width {
			if len(current) > 0 {
				lines = append(lines, string(current))
				current = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(current) == 0:
			current = w
		case len(current)+1+len(w) <= width:
			current = append(append(current, ' '), w...)
		default:
			lines = append(lines, string(current))
			current = w
		}
	}
	if len(current) > 0 {
		lines = append(lines, string(current))
	}
	return lines
}
