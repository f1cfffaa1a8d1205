package splitter

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nconklindev/platesplit/internal/types"
)

func TestExtractBlock(t *testing.T) {
	tests := []struct {
		name        string
		rows        [][]string
		start       int
		expected    []types.Row
		expectedEnd int
	}{
		{
			name: "Stops at blank row",
			rows: [][]string{
				{"Meal", "Item Brand"},
				{"Breakfast", "Generic"},
				{"Lunch", "Generic"},
				{},
				{"Dinner", "Generic"},
			},
			start:       1,
			expected:    []types.Row{{"Breakfast", "Generic"}, {"Lunch", "Generic"}},
			expectedEnd: 4,
		},
		{
			name: "Blank first cell ends block",
			rows: [][]string{
				{"Exercise Done", "Minutes"},
				{"Cycling", "40"},
				{"", "12"},
			},
			start:       1,
			expected:    []types.Row{{"Cycling", "40"}},
			expectedEnd: 3,
		},
		{
			name: "Header only",
			rows: [][]string{
				{"Meal"},
				{},
			},
			start:       1,
			expected:    nil,
			expectedEnd: 2,
		},
		{
			name: "Block at end of sheet",
			rows: [][]string{
				{"Meals"},
				{"Meal"},
				{"Snack", "Generic"},
			},
			start:       2,
			expected:    []types.Row{{"Snack", "Generic"}},
			expectedEnd: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, end, err := ExtractBlock(sheet(tt.rows...), tt.start)
			if err != nil {
				t.Fatalf("ExtractBlock() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractBlock() rows = %v; want %v", got, tt.expected)
			}
			if end != tt.expectedEnd {
				t.Errorf("ExtractBlock() end = %d; want %d", end, tt.expectedEnd)
			}
		})
	}
}

func TestExtractBlockOutOfRange(t *testing.T) {
	_, _, err := ExtractBlock(sheet([]string{"Meal"}), 5)
	if !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("ExtractBlock() error = %v; want ErrRowOutOfRange", err)
	}
}

func TestExtractTotals(t *testing.T) {
	tests := []struct {
		name        string
		rows        [][]string
		expected    []string
		expectedEnd int
		expectedErr error
	}{
		{
			name: "Data row and summary column",
			rows: [][]string{
				totalsLabels,
				totalsData("1200", "30"),
				summaryRow("Calories Allowed", "2000"),
				summaryRow("Net Calories", "1200"),
				{},
			},
			expected:    []string{"1200", "30", "2000", "1200"},
			expectedEnd: 5,
		},
		{
			name: "Gaps inside the data row are dropped",
			rows: [][]string{
				totalsLabels,
				totalsData("1200", "", "30"),
				{},
			},
			expected:    []string{"1200", "30"},
			expectedEnd: 3,
		},
		{
			name: "Summary column only",
			rows: [][]string{
				totalsLabels,
				totalsData("900"),
				{"", "", "", "", "", "2000"},
				{"", "", "", "", "Net Calories"},
			},
			expected:    []string{"900", "2000"},
			expectedEnd: 4,
		},
		{
			name: "Wrong indentation",
			rows: [][]string{
				totalsLabels,
				{"", "", "", "1200"},
				{},
			},
			expectedErr: ErrLayoutMismatch,
		},
		{
			name: "Missing data row",
			rows: [][]string{
				totalsLabels,
				{},
			},
			expectedErr: ErrLayoutMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, end, err := ExtractTotals(sheet(tt.rows...), 1)
			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("ExtractTotals() error = %v; want %v", err, tt.expectedErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractTotals() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractTotals() values = %v; want %v", got, tt.expected)
			}
			if end != tt.expectedEnd {
				t.Errorf("ExtractTotals() end = %d; want %d", end, tt.expectedEnd)
			}
		})
	}
}

func TestExtractWater(t *testing.T) {
	tests := []struct {
		name        string
		rows        [][]string
		expected    []types.Record
		expectedEnd int
	}{
		{
			name: "Stops at TOTAL",
			rows: [][]string{
				{"Date", "", "Glasses"},
				{"2019-10-01", "", "3"},
				{"2019-10-02", "", "5"},
				{"TOTAL", "", "8"},
			},
			expected:    []types.Record{{"2019-10-01", "3"}, {"2019-10-02", "5"}},
			expectedEnd: 4,
		},
		{
			name: "Stops at blank row",
			rows: [][]string{
				{"Date", "", "Glasses"},
				{"2019-10-01", "", "3"},
				{},
			},
			expected:    []types.Record{{"2019-10-01", "3"}},
			expectedEnd: 3,
		},
		{
			name: "Missing glasses cell",
			rows: [][]string{
				{"Date", "", "Glasses"},
				{"2019-10-01"},
				{"TOTAL"},
			},
			expected:    []types.Record{{"2019-10-01", ""}},
			expectedEnd: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, end, err := ExtractWater(sheet(tt.rows...), 1)
			if err != nil {
				t.Fatalf("ExtractWater() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractWater() records = %v; want %v", got, tt.expected)
			}
			if end != tt.expectedEnd {
				t.Errorf("ExtractWater() end = %d; want %d", end, tt.expectedEnd)
			}
		})
	}
}
