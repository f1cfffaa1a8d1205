package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nconklindev/platesplit/internal/splitter"
	"github.com/nconklindev/platesplit/internal/types"
	"github.com/nconklindev/platesplit/internal/workbook"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type state int

const exitHelp = "enter/esc/q: exit"

const (
	stateFilePicker state = iota
	stateConfirm
	stateProcessing
	stateComplete
	stateError
)

// previewMarkers lists the markers shown on the confirm screen, in export order.
var previewMarkers = []splitter.Marker{
	splitter.MarkerDate,
	splitter.MarkerMeals,
	splitter.MarkerFitness,
	splitter.MarkerTotals,
	splitter.MarkerWeight,
	splitter.MarkerWater,
}

type Model struct {
	ctx          context.Context
	state        state
	filepicker   filepicker.Model
	selectedFile string
	sheet        *types.SheetData
	markers      map[splitter.Marker]int
	outputDir    string
	format       workbook.Format
	results      []types.SplitResult
	err          error
	width        int
	height       int
	progress     progress.Model
	progressChan chan float64
	resultChan   chan splitResultMsg
}

type splitResultMsg struct {
	results []types.SplitResult
	err     error
}

type fileLoadedMsg struct {
	sheet   *types.SheetData
	markers map[splitter.Marker]int
	err     error
}

type splitCompleteMsg struct {
	results []types.SplitResult
	err     error
}

type progressMsg float64

type waitForProgressMsg struct{}

func InitialModel(ctx context.Context, outputDir string, format workbook.Format) Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".xlsx"}
	fp.CurrentDirectory, _ = os.Getwd()

	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(accent)
	fp.Styles.Symlink = lipgloss.NewStyle().Foreground(highlight)
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(highlight)
	fp.Styles.File = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	fp.Styles.Permission = lipgloss.NewStyle().Foreground(muted)
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(accent).Bold(true)
	fp.Styles.FileSize = lipgloss.NewStyle().Foreground(muted)

	prog := progress.New(progress.WithGradient("#2E9E5B", "#7BD389"))

	return Model{
		ctx:        ctx,
		state:      stateFilePicker,
		filepicker: fp,
		outputDir:  outputDir,
		format:     format,
		progress:   prog,
	}
}

func (m Model) Init() tea.Cmd {
	return m.filepicker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Leave room for the title block and help line
		height := msg.Height - 14
		if height < 5 {
			height = 5
		}
		m.filepicker.SetHeight(height)

		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateFilePicker:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			}

		case stateConfirm:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "f":
				if m.format == workbook.FormatXLSX {
					m.format = workbook.FormatCSV
				} else {
					m.format = workbook.FormatXLSX
				}
			case "esc":
				m.state = stateFilePicker
				m.sheet = nil
				m.markers = nil
				return m, m.filepicker.Init()
			case "enter":
				m.state = stateProcessing
				return m.splitFile()
			}

		case stateComplete, stateError:
			switch msg.String() {
			case "ctrl+c", "q", "enter", "esc":
				return m, tea.Quit
			}
		}

	case fileLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.sheet = msg.sheet
		m.markers = msg.markers
		m.state = stateConfirm
		return m, nil

	case splitCompleteMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.results = msg.results
		m.state = stateComplete
		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case progressMsg:
		if m.state == stateProcessing {
			cmd := m.progress.SetPercent(float64(msg))
			return m, tea.Batch(cmd, waitForProgress(m.progressChan, m.resultChan))
		}
		return m, nil

	case waitForProgressMsg:
		return m, waitForProgress(m.progressChan, m.resultChan)
	}

	if m.state == stateFilePicker {
		var cmd tea.Cmd
		m.filepicker, cmd = m.filepicker.Update(msg)

		if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
			m.selectedFile = path
			return m, loadFile(path)
		}

		return m, cmd
	}

	return m, nil
}

func loadFile(path string) tea.Cmd {
	return func() tea.Msg {
		sheet, err := workbook.ReadSheet(path)
		if err != nil {
			return fileLoadedMsg{err: err}
		}
		markers, err := splitter.CountMarkers(sheet)
		return fileLoadedMsg{sheet: sheet, markers: markers, err: err}
	}
}

func (m Model) splitFile() (Model, tea.Cmd) {
	m.progressChan = make(chan float64, 100)
	m.resultChan = make(chan splitResultMsg, 1)

	ctx := m.ctx
	progressChan := m.progressChan
	resultChan := m.resultChan
	sheet := m.sheet
	outputDir := m.outputDir
	format := m.format

	cmd := tea.Batch(
		func() tea.Msg {
			go func() {
				// The sheet was read once for the preview; split it from memory.
				results, err := workbook.SplitSheet(ctx, sheet, outputDir, format, progressChan)

				resultChan <- splitResultMsg{results: results, err: err}

				close(progressChan)
				close(resultChan)
			}()

			return waitForProgressMsg{}
		},
		m.progress.Init(),
	)

	return m, cmd
}

func waitForProgress(progressChan chan float64, resultChan chan splitResultMsg) tea.Cmd {
	return func() tea.Msg {
		if progressChan == nil {
			return nil
		}

		p, ok := <-progressChan
		if !ok {
			res, ok := <-resultChan
			if ok {
				return splitCompleteMsg(res)
			}
			return nil
		}

		return progressMsg(p)
	}
}

func (m Model) View() string {
	switch m.state {
	case stateFilePicker:
		return m.viewFilePicker()
	case stateConfirm:
		return m.viewConfirm()
	case stateProcessing:
		return m.viewProcessing()
	case stateComplete:
		return m.viewComplete()
	case stateError:
		return m.viewError()
	}
	return ""
}

func (m Model) viewFilePicker() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("🍽  platesplit - MyPlate Export Splitter"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render("Select a detailed MyPlate export (.xlsx)"))
	s.WriteString("\n\n")
	s.WriteString(m.filepicker.View())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("Press q to quit"))

	return s.String()
}

func (m Model) viewConfirm() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("🍽  Ready to Split"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render(fmt.Sprintf("File: %s", filepath.Base(m.selectedFile))))
	s.WriteString("\n\n")

	s.WriteString(fmt.Sprintf("Sheet: %s (%d rows)\n\n", m.sheet.Name, m.sheet.LastRow()))
	for _, marker := range previewMarkers {
		n := m.markers[marker]
		line := fmt.Sprintf("  %-8s %4d", marker, n)
		if n > 0 {
			line = FoundStyle.Render(line)
		} else {
			line = MissingStyle.Render(line)
		}
		s.WriteString(line)
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("Output directory: %s\n", m.outputDir))
	s.WriteString(fmt.Sprintf("Output format:    %s\n", SelectedStyle.Render(string(m.format))))
	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("f: toggle xlsx/csv • enter: split • esc: back • q: quit"))

	return BoxStyle.Render(s.String())
}

func (m Model) viewProcessing() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("🍽  Splitting..."))
	s.WriteString("\n\n")
	s.WriteString("Walking the export section by section...")
	s.WriteString("\n\n")
	s.WriteString(m.progress.View())

	return BoxStyle.Render(s.String())
}

func (m Model) viewComplete() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("✓ Split Complete!"))
	s.WriteString("\n\n")

	// Truncate paths if they're too long
	maxPathLen := m.width - 30
	if maxPathLen < 30 {
		maxPathLen = 30
	}

	s.WriteString(fmt.Sprintf("Input: %s\n\n", truncatePath(m.selectedFile, maxPathLen)))
	for _, res := range m.results {
		s.WriteString(fmt.Sprintf("%-8s %5d  ", res.Name, res.Records))
		s.WriteString(SuccessStyle.Render(truncatePath(res.OutputFile, maxPathLen)))
		s.WriteString("\n")
	}
	s.WriteString("\n")
	s.WriteString(HelpStyle.Render(exitHelp))

	return BoxStyle.Render(s.String())
}

func (m Model) viewError() string {
	var s strings.Builder

	s.WriteString(ErrorStyle.Render("✗ Error"))
	s.WriteString("\n\n")
	s.WriteString(m.err.Error())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render(exitHelp))

	return BoxStyle.Render(s.String())
}

func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}
