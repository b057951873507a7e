package cli

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ansiEscape matches SGR escape sequences, which take no space on screen.
var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Table formats rows into aligned columns.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		padding: 2,
	}
}

// AddRow adds a row, padded or truncated to the number of headers.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = displayWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], displayWidth(cell))
		}
	}

	var sb strings.Builder
	t.writeRow(&sb, t.headers, widths)

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	t.writeRow(&sb, sep, widths)

	for _, row := range t.rows {
		t.writeRow(&sb, row, widths)
	}
	return sb.String()
}

func (t *Table) writeRow(sb *strings.Builder, cells []string, widths []int) {
	gap := strings.Repeat(" ", t.padding)
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString(gap)
		}
		sb.WriteString(cell)
		if i < len(cells)-1 {
			sb.WriteString(strings.Repeat(" ", widths[i]-displayWidth(cell)))
		}
	}
	sb.WriteString("\n")
}

// displayWidth returns the number of runes s occupies on screen.
func displayWidth(s string) int {
	return utf8.RuneCountInString(ansiEscape.ReplaceAllString(s, ""))
}
