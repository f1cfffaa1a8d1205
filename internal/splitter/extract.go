package splitter

import "github.com/nconklindev/platesplit/internal/types"

const (
	// TotalsIndent is the number of empty leading columns in the Totals block.
	TotalsIndent = 4
	// TotalsSummaryColumn holds the stacked calorie summary values: the indent
	// plus one column for their labels.
	TotalsSummaryColumn = TotalsIndent + 1

	// WaterTerminator ends the Water block in place of a blank row.
	WaterTerminator = "TOTAL"

	waterDateColumn    = 0
	waterGlassesColumn = 2
)

// ExtractBlock reads a Meals or Fitness block whose label row is at start.
// It returns every data row up to the first row with an empty first cell, and
// the number of that row.
func ExtractBlock(src Source, start int) ([]types.Row, int, error) {
	if _, err := src.Row(start); err != nil {
		return nil, start, err
	}

	var rows []types.Row
	row := start + 1
	for {
		r, err := src.Row(row)
		if err != nil {
			return nil, row, err
		}
		if r.Cell(0) == "" {
			break
		}
		rows = append(rows, r)
		row++
	}

	return rows, row, nil
}

// ExtractTotals reads the Totals block whose label row is at start and
// flattens it into one list of values: the non-empty cells of the indented
// data row, then the summary column of each following row until that column
// is empty. The returned row number is the row with the empty summary cell.
func ExtractTotals(src Source, start int) ([]string, int, error) {
	if _, err := src.Row(start); err != nil {
		return nil, start, err
	}

	data, err := src.Row(start + 1)
	if err != nil {
		return nil, start + 1, err
	}

	lead := 0
	for lead < len(data) && data[lead] == "" {
		lead++
	}
	if lead != TotalsIndent || lead == len(data) {
		return nil, start + 1, ErrLayoutMismatch
	}

	var values []string
	for _, cell := range data {
		if cell != "" {
			values = append(values, cell)
		}
	}

	row := start + 2
	for {
		r, err := src.Row(row)
		if err != nil {
			return nil, row, err
		}
		v := r.Cell(TotalsSummaryColumn)
		if v == "" {
			break
		}
		values = append(values, v)
		row++
	}

	return values, row, nil
}

// ExtractWater reads the Water block whose label row is at start. Each entry
// carries its own date, so records are returned complete. The block ends at
// the first row whose first cell is empty or reads TOTAL.
func ExtractWater(src Source, start int) ([]types.Record, int, error) {
	if _, err := src.Row(start); err != nil {
		return nil, start, err
	}

	var records []types.Record
	row := start + 1
	for {
		r, err := src.Row(row)
		if err != nil {
			return nil, row, err
		}
		first := r.Cell(waterDateColumn)
		if first == "" || first == WaterTerminator {
			break
		}
		records = append(records, types.Record{first, r.Cell(waterGlassesColumn)})
		row++
	}

	return records, row, nil
}
