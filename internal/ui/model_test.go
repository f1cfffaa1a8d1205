package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nconklindev/platesplit/internal/splitter"
	"github.com/nconklindev/platesplit/internal/types"
	"github.com/nconklindev/platesplit/internal/workbook"

	tea "github.com/charmbracelet/bubbletea"
)

func loadedModel(t *testing.T) Model {
	t.Helper()

	m := InitialModel(context.Background(), "out", workbook.FormatXLSX)
	m.selectedFile = "/exports/MyPlate-Export.xlsx"

	next, _ := m.Update(fileLoadedMsg{
		sheet:   &types.SheetData{Name: "Sheet1", Rows: [][]string{{"Date:", "October 14th, 2019"}, {"Meals"}}},
		markers: map[splitter.Marker]int{splitter.MarkerDate: 1, splitter.MarkerMeals: 1},
	})
	return next.(Model)
}

func TestFileLoadedShowsPreview(t *testing.T) {
	m := loadedModel(t)

	if m.state != stateConfirm {
		t.Fatalf("Expected confirm state, got %d", m.state)
	}

	view := m.View()
	for _, want := range []string{"MyPlate-Export.xlsx", "Sheet1 (2 rows)", "meals", "Output format"} {
		if !strings.Contains(view, want) {
			t.Errorf("Confirm view missing %q", want)
		}
	}
}

func TestToggleFormat(t *testing.T) {
	m := loadedModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	m = next.(Model)
	if m.format != workbook.FormatCSV {
		t.Errorf("Expected csv after toggle, got %s", m.format)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	m = next.(Model)
	if m.format != workbook.FormatXLSX {
		t.Errorf("Expected xlsx after second toggle, got %s", m.format)
	}
}

func TestSplitCompleteShowsResults(t *testing.T) {
	m := loadedModel(t)
	m.state = stateProcessing

	next, _ := m.Update(splitCompleteMsg{results: []types.SplitResult{
		{Name: "meals", OutputFile: "out/split_meals.xlsx", Records: 7},
	}})
	m = next.(Model)

	if m.state != stateComplete {
		t.Fatalf("Expected complete state, got %d", m.state)
	}
	if !strings.Contains(m.View(), "out/split_meals.xlsx") {
		t.Errorf("Complete view missing output file")
	}
}

func TestSplitErrorShowsMessage(t *testing.T) {
	m := loadedModel(t)
	m.state = stateProcessing

	next, _ := m.Update(splitCompleteMsg{err: errors.New("malformed totals block at row 12")})
	m = next.(Model)

	if m.state != stateError {
		t.Fatalf("Expected error state, got %d", m.state)
	}
	if !strings.Contains(m.View(), "malformed totals block at row 12") {
		t.Errorf("Error view missing message")
	}
}

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		path     string
		maxLen   int
		expected string
	}{
		{"short.xlsx", 30, "short.xlsx"},
		{"/a/very/long/path/split_meals.xlsx", 20, ".../split_meals.xlsx"},
	}

	for _, tt := range tests {
		if got := truncatePath(tt.path, tt.maxLen); got != tt.expected {
			t.Errorf("truncatePath(%q, %d) = %q; want %q", tt.path, tt.maxLen, got, tt.expected)
		}
	}
}

func TestExitKeys(t *testing.T) {
	m := loadedModel(t)
	m.state = stateComplete

	if !strings.Contains(m.View(), exitHelp) {
		t.Errorf("Complete view missing exit help")
	}

	tests := []struct {
		name  string
		key   tea.KeyMsg
		quits bool
	}{
		{"Enter", tea.KeyMsg{Type: tea.KeyEnter}, true},
		{"Esc", tea.KeyMsg{Type: tea.KeyEsc}, true},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, true},
		{"Other key", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd := m.Update(tt.key)
			quit := cmd != nil && cmd() == tea.Quit()
			if quit != tt.quits {
				t.Errorf("quit = %v; want %v", quit, tt.quits)
			}
		})
	}
}

func TestSplitUsesLoadedSheet(t *testing.T) {
	m := InitialModel(context.Background(), t.TempDir(), workbook.FormatCSV)
	// Not on disk: the split must run from the sheet already loaded.
	m.selectedFile = "/missing/MyPlate-Export.xlsx"

	next, _ := m.Update(fileLoadedMsg{
		sheet: &types.SheetData{Name: "Sheet1", Rows: [][]string{
			{"Date:", "October 14th, 2019"},
			{"Weight", "181"},
			{},
		}},
		markers: map[splitter.Marker]int{splitter.MarkerDate: 1, splitter.MarkerWeight: 1},
	})
	m = next.(Model)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.state != stateProcessing {
		t.Fatalf("Expected processing state, got %d", m.state)
	}

	// Start the split goroutine.
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				c()
			}
		}
	}

	var done splitCompleteMsg
	for {
		msg := waitForProgress(m.progressChan, m.resultChan)()
		if res, ok := msg.(splitCompleteMsg); ok {
			done = res
			break
		}
		if msg == nil {
			t.Fatal("channels closed without a result")
		}
	}

	if done.err != nil {
		t.Fatalf("split failed: %v", done.err)
	}
	for _, res := range done.results {
		if res.Name == types.WeightsName && res.Records != 1 {
			t.Errorf("Expected 1 weight record, got %d", res.Records)
		}
	}
}
