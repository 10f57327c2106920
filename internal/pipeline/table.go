package pipeline

import "strings"

// minTableLines is a header row plus a separator row.
const minTableLines = 2

// TableAccumulator buffers consecutive table rows.
// It is either idle (no buffered lines) or collecting.
type TableAccumulator struct {
	lines []string
}

// Collecting reports whether a table block is open.
func (a *TableAccumulator) Collecting() bool {
	return a.lines != nil
}

// Add appends a row, opening a block if none is open.
func (a *TableAccumulator) Add(line string) {
	if a.lines == nil {
		a.lines = make([]string, 0, 8)
	}
	a.lines = append(a.lines, line)
}

// Flush closes the open block and returns its parsed table.
// Returns nil if no block was open or the block holds no table.
// The accumulator is idle afterwards.
func (a *TableAccumulator) Flush() *Table {
	lines := a.lines
	a.lines = nil
	if lines == nil {
		return nil
	}
	return ParseTable(lines)
}

// ParseTable parses a buffered block: header row, separator row, data rows.
// Returns nil when fewer than two non-blank lines were given, when the
// header has no cells, or when no data rows remain.
func ParseTable(block []string) *Table {
	lines := make([]string, 0, len(block))
	for _, l := range block {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	if len(lines) < minTableLines {
		return nil
	}

	headers := splitRow(lines[0])
	if len(headers) == 0 {
		return nil
	}

	// lines[1] is the separator row
	var rows [][]string
	for _, line := range lines[minTableLines:] {
		cells := splitRow(line)
		if len(cells) == 0 {
			continue
		}
		row := make([]string, len(headers))
		copy(row, cells)
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil
	}

	return &Table{Headers: headers, Rows: rows}
}

// splitRow splits a row on the delimiter, trims every cell, and drops empty
// cells at both edges. Interior empty cells are kept.
func splitRow(line string) []string {
	parts := strings.Split(line, TableDelimiter)
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}

	start, end := 0, len(cells)
	for start < end && cells[start] == "" {
		start++
	}
	for end > start && cells[end-1] == "" {
		end--
	}
	return cells[start:end]
}
