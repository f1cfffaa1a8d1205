package splitter

import "github.com/nconklindev/platesplit/internal/types"

// Marker classifies a source row by the text in its first cell.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerDate
	MarkerMeals
	MarkerFitness
	MarkerTotals
	MarkerWeight
	MarkerWater
)

var markerText = map[string]Marker{
	"Date:":   MarkerDate,
	"Date :":  MarkerDate,
	"Meals":   MarkerMeals,
	"Fitness": MarkerFitness,
	"Totals:": MarkerTotals,
	"Weight":  MarkerWeight,
	"Water":   MarkerWater,
}

// Classify returns the marker for row, or MarkerNone when the first cell is
// empty or not part of the export's marker vocabulary.
func Classify(row types.Row) Marker {
	return markerText[row.Cell(0)]
}

func (m Marker) String() string {
	switch m {
	case MarkerDate:
		return "date"
	case MarkerMeals:
		return "meals"
	case MarkerFitness:
		return "fitness"
	case MarkerTotals:
		return "totals"
	case MarkerWeight:
		return "weight"
	case MarkerWater:
		return "water"
	default:
		return "none"
	}
}

// CountMarkers tallies the section markers of src without extracting
// anything. Rows are counted from 1 through LastRow. A Weight row counts only
// when it directly follows a Date row, the one place Split reads a weight.
func CountMarkers(src Source) (map[Marker]int, error) {
	counts := make(map[Marker]int)
	prev := MarkerNone
	for i := 1; i <= src.LastRow(); i++ {
		r, err := src.Row(i)
		if err != nil {
			return nil, err
		}

		m := Classify(r)
		if m == MarkerWeight && prev != MarkerDate {
			m = MarkerNone
		}
		if m != MarkerNone {
			counts[m]++
		}
		prev = m
	}
	return counts, nil
}
