package workbook

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nconklindev/platesplit/internal/types"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// Format selects the output file type.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// OutputPrefix is prepended to every collection name to form its file name.
const OutputPrefix = "split_"

// ParseFormat validates a user-supplied output format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatXLSX, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format %q (expected xlsx|csv)", s)
	}
}

// OutputPath returns the fixed file name for a collection inside dir.
func OutputPath(dir string, format Format, name string) string {
	return filepath.Join(dir, OutputPrefix+name+"."+string(format))
}

// WriteCollections writes every collection to its own file in dir.
func WriteCollections(ctx context.Context, dir string, format Format, cols *types.Collections) ([]types.SplitResult, error) {
	logger := zerolog.Ctx(ctx)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	var results []types.SplitResult
	for _, c := range cols.All() {
		outputFile := OutputPath(dir, format, c.Name)

		var err error
		switch format {
		case FormatCSV:
			err = writeCSV(outputFile, c)
		default:
			err = writeXLSX(outputFile, c)
		}
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", outputFile, err)
		}

		logger.Info().
			Str("file", outputFile).
			Int("records", len(c.Records)).
			Msg("Wrote split file")

		results = append(results, types.SplitResult{
			Name:       c.Name,
			OutputFile: outputFile,
			Records:    len(c.Records),
		})
	}

	return results, nil
}

func writeXLSX(outputFile string, c *types.Collection) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := sheetTitle(c.Name)
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}

	for i, row := range c.Rows() {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = parseValue(v)
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}

	return f.SaveAs(outputFile)
}

func writeCSV(outputFile string, c *types.Collection) error {
	outFile, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer outFile.Close()

	writer := csv.NewWriter(outFile)
	if err := writer.WriteAll(c.Rows()); err != nil {
		return err
	}

	return outFile.Close()
}

func sheetTitle(name string) string {
	if name == "" {
		return "Sheet1"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// parseValue converts numeric text back to a number so the output keeps the
// cell types of the export. Only text that formats back to itself is
// converted, so "007", "1e3" or "0x1p4" stay text. Empty strings become
// blank cells.
func parseValue(s string) interface{} {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(i, 10) == s {
		return i
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return s
	}
	if strconv.FormatFloat(f, 'f', -1, 64) != s {
		return s
	}
	return f
}
