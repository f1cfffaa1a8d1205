package types

import "fmt"

// Row is one source row; index 0 is the first column.
type Row []string

// Cell returns the value at col, or "" when the row is shorter.
func (r Row) Cell(col int) string {
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Record is one output row. The first field is always a date.
type Record []string

type SplitResult struct {
	Name       string
	OutputFile string
	Records    int
}

// SheetData holds the rows of a single worksheet, addressed by 1-based row number.
type SheetData struct {
	Name string
	Rows [][]string
}

// LastRow returns the number of the last stored row, 0 for an empty sheet.
func (s *SheetData) LastRow() int {
	return len(s.Rows)
}

// Row returns row i (1-based). Row LastRow()+1 is the implicit blank row that
// follows the stored data, since xlsx files drop trailing empty rows.
func (s *SheetData) Row(i int) (Row, error) {
	switch {
	case i >= 1 && i <= len(s.Rows):
		return Row(s.Rows[i-1]), nil
	case i == len(s.Rows)+1:
		return Row{}, nil
	default:
		return nil, fmt.Errorf("%w: row %d (last row %d)", ErrRowOutOfRange, i, len(s.Rows))
	}
}
