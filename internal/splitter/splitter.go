// Package splitter walks a MyPlate detailed export and routes each section
// into its own output collection.
package splitter

import (
	"github.com/nconklindev/platesplit/internal/types"

	"github.com/rs/zerolog/log"
)

// Source is a read-only sheet addressed by 1-based row number.
type Source interface {
	LastRow() int
	Row(i int) (types.Row, error)
}

// Split scans src once, top to bottom, appending records to out. The scan
// stops when the cursor reaches the last row of the sheet.
//
// On error the contents of out are incomplete and must be discarded.
func Split(src Source, out *types.Collections, progressChan chan<- float64) error {
	lastRow := src.LastRow()

	row := 0
	if lastRow != 0 {
		row = 1
	}

	var curDate string

	for row < lastRow {
		r, err := src.Row(row)
		if err != nil {
			return err
		}

		switch marker := Classify(r); marker {
		case MarkerDate:
			curDate = r.Cell(1)
			row++

			next, err := src.Row(row)
			if err != nil {
				return err
			}
			if Classify(next) == MarkerWeight {
				out.Weights.Append(types.Record{curDate, next.Cell(1)})
				log.Debug().Str("date", curDate).Int("row", row).Msg("Extracted weight")
				row++
			}

		case MarkerMeals, MarkerFitness:
			rows, end, err := ExtractBlock(src, row+1)
			if err != nil {
				return newBlockError(marker, row, err)
			}

			target := out.Meals
			if marker == MarkerFitness {
				target = out.Fitness
			}
			for _, data := range rows {
				target.Append(withDate(curDate, data))
			}

			log.Debug().
				Str("section", marker.String()).
				Str("date", curDate).
				Int("row", row).
				Int("records", len(rows)).
				Msg("Extracted block")
			row = end

		case MarkerTotals:
			values, end, err := ExtractTotals(src, row+1)
			if err != nil {
				return newBlockError(marker, row, err)
			}

			out.Totals.Append(withDate(curDate, values))
			log.Debug().Str("date", curDate).Int("row", row).Int("values", len(values)).Msg("Extracted totals")
			row = end

		case MarkerWater:
			records, end, err := ExtractWater(src, row+1)
			if err != nil {
				return newBlockError(marker, row, err)
			}

			for _, rec := range records {
				out.Water.Append(rec)
			}
			log.Debug().Int("row", row).Int("records", len(records)).Msg("Extracted water")
			row = end

		default:
			row++
		}

		reportProgress(progressChan, row, lastRow)
	}

	return nil
}

func withDate(date string, values []string) types.Record {
	rec := make(types.Record, 0, len(values)+1)
	rec = append(rec, date)
	return append(rec, values...)
}

func reportProgress(progressChan chan<- float64, row, lastRow int) {
	if progressChan == nil || lastRow == 0 {
		return
	}
	p := float64(row) / float64(lastRow)
	if p > 1 {
		p = 1
	}
	select {
	case progressChan <- p:
	default:
	}
}
