package sechub

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const defaultTerminalWidth = 80

type listFormatter interface {
	Write([]string) error
}

// newListFormatter returns the formatter for listing rows with the given columns.
// Quiet listings only show the first column.
func newListFormatter(w io.Writer, format outputFormat, quiet bool, width int, columns []tableColumn) listFormatter {
	switch {
	case quiet:
		return firstColumn{newLineFormatter(w)}
	case format == formatJSON:
		names := make([]string, len(columns))
		for i, col := range columns {
			names[i] = col.name
		}
		return newJSONFormatter(w, names)
	default:
		return newTableFormatter(w, width, columns)
	}
}

// terminalWidth returns the width of the terminal at fd or a default width when fd is not a terminal.
func terminalWidth(fd int) int {
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}

// firstColumn only writes the first value of every row.
type firstColumn struct {
	listFormatter
}

func (f firstColumn) Write(row []string) error {
	if len(row) == 0 {
		return nil
	}
	return f.listFormatter.Write(row[:1])
}

func newLineFormatter(writer io.Writer) lineFormatter {
	return lineFormatter{writer: writer}
}

// lineFormatter returns a formatter that formats the given table into lines of text with unaligned columns.
type lineFormatter struct {
	writer io.Writer
}

// Write writes a the given row entries separated by '\t' characters.
func (l lineFormatter) Write(line []string) error {
	_, err := l.writer.Write([]byte(strings.Join(line, "\t") + "\n"))
	return err
}

// newJSONFormatter returns a table formatter that formats the given table rows as json.
func newJSONFormatter(writer io.Writer, fieldNames []string) *jsonFormatter {
	fields := make([]string, len(fieldNames))
	for i := range fieldNames {
		fields[i] = toPascalCase(fieldNames[i])
	}
	return &jsonFormatter{
		encoder: json.NewEncoder(writer),
		fields:  fields,
	}
}

// toPascalCase converts "next token" into "NextToken".
func toPascalCase(s string) string {
	caser := cases.Title(language.English)
	return strings.ReplaceAll(caser.String(s), " ", "")
}

type jsonFormatter struct {
	encoder *json.Encoder
	fields  []string
}

// Write writes the json representation of the given row
// with the configured field names as keys and the provided values
func (f *jsonFormatter) Write(values []string) error {
	if len(f.fields) != len(values) {
		return fmt.Errorf("unexpected number of json fields")
	}

	jsonMap := make(map[string]string)
	for i, element := range values {
		jsonMap[f.fields[i]] = element
	}

	return f.encoder.Encode(jsonMap)
}

type tableColumn struct {
	name     string
	maxWidth int
}

// newTableFormatter returns a list formatter that formats entries in a table.
func newTableFormatter(writer io.Writer, tableWidth int, columns []tableColumn) *tableFormatter {
	return &tableFormatter{
		writer:     writer,
		tableWidth: tableWidth,
		columns:    columns,
	}
}

type tableFormatter struct {
	tableWidth           int
	writer               io.Writer
	computedColumnWidths []int
	columns              []tableColumn
	headerPrinted        bool
}

// Write writes the given values formatted in a table with the configured column widths and names.
// The header of the table is printed on the first call, before any other value.
func (f *tableFormatter) Write(values []string) error {
	if !f.headerPrinted {
		header := make([]string, len(f.columns))
		for i, col := range f.columns {
			header[i] = strings.ToUpper(col.name)
		}
		_, err := f.writer.Write(f.formatRow(header))
		if err != nil {
			return err
		}
		f.headerPrinted = true
	}

	_, err := f.writer.Write(f.formatRow(values))
	return err
}

// formatRow formats the given table row to fit the configured width by
// giving each cell an equal width and wrapping the text in cells that exceed it.
func (f *tableFormatter) formatRow(row []string) []byte {
	grid := f.fitToColumns(row, f.columnWidths())

	var b strings.Builder
	for _, line := range grid {
		b.WriteString(strings.TrimRight(strings.Join(line, "  "), " ") + "\n")
	}
	return []byte(b.String())
}

// fitToColumns returns a the given row split over a matrix in which all columns have equal length.
// Longer values are split over multiple cells and shorter (or empty) ones are padded with " ".
func (f *tableFormatter) fitToColumns(cells []string, columnWidths []int) [][]string {
	maxLinesPerCell := f.lineCount(cells, columnWidths)

	grid := make([][]string, maxLinesPerCell)
	for i := range grid {
		grid[i] = make([]string, len(cells))
	}

	for i, cell := range cells {
		width := columnWidths[i]
		for j := 0; j < maxLinesPerCell; j++ {
			begin, end := j*width, (j+1)*width
			switch {
			case begin >= len(cell):
				grid[j][i] = strings.Repeat(" ", width)
			case end > len(cell):
				grid[j][i] = cell[begin:] + strings.Repeat(" ", end-len(cell))
			default:
				grid[j][i] = cell[begin:end]
			}
		}
	}

	return grid
}

// lineCount returns the number of lines the given table row will occupy after splitting the
// cell values that exceed their column width.
func (f *tableFormatter) lineCount(row []string, widths []int) int {
	maxLinesPerCell := 1
	for i, value := range row {
		lines := (len(value) + widths[i] - 1) / widths[i]
		if lines > maxLinesPerCell {
			maxLinesPerCell = lines
		}
	}
	return maxLinesPerCell
}

// columnWidths returns the width of each column based on their maximum widths
// and the table width.
func (f *tableFormatter) columnWidths() []int {
	if f.computedColumnWidths != nil {
		return f.computedColumnWidths
	}
	adjustedWidths := make([]int, len(f.columns))

	// Distribute the table width equally between all columns and leave a margin of 2 characters between them.
	columnsLeft := len(f.columns)
	widthLeft := f.tableWidth - 2*(len(f.columns)-1)
	widthPerColumn := widthLeft / columnsLeft
	adjusted := true
	for adjusted {
		adjusted = false
		for i, col := range f.columns {
			// fix columns that have a smaller maximum width than the current width/column and have not been fixed yet.
			if adjustedWidths[i] == 0 && col.maxWidth != 0 && col.maxWidth < widthPerColumn {
				adjustedWidths[i] = col.maxWidth
				widthLeft -= col.maxWidth
				columnsLeft--
				adjusted = true
			}
		}
		// If all columns are fixed to their max width, distribute the remaining width equally between all of them.
		if columnsLeft == 0 {
			for i := range adjustedWidths {
				adjustedWidths[i] += widthLeft / len(adjustedWidths)
			}
			break
		}
		// Recalculate the width/column for the remaining unadjusted columns.
		widthPerColumn = widthLeft / columnsLeft
	}

	// distribute the remaining width equally between columns with no maximum width.
	for i := range adjustedWidths {
		if adjustedWidths[i] == 0 {
			adjustedWidths[i] = widthPerColumn
		}
		if adjustedWidths[i] < 1 {
			adjustedWidths[i] = 1
		}
	}
	f.computedColumnWidths = adjustedWidths
	return adjustedWidths
}
