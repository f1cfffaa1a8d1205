// Package workbook reads MyPlate exports and writes the split output files.
package workbook

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nconklindev/platesplit/internal/types"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const inputExt = ".xlsx"

// CheckInputPath accepts only .xlsx paths, case-insensitively. It does not
// touch the filesystem.
func CheckInputPath(filePath string) error {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case inputExt:
		return nil
	case ".xls":
		return fmt.Errorf("%w: %s", ErrLegacyFormat, filePath)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ReadSheet loads the active sheet of an export. Formula cells yield their
// cached values. A sheet with no rows is returned with LastRow() == 0.
func ReadSheet(filePath string) (*types.SheetData, error) {
	if err := CheckInputPath(filePath); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filePath, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	log.Debug().
		Str("file", filePath).
		Str("sheet", sheetName).
		Int("rows", len(rows)).
		Msg("Loaded export")

	return &types.SheetData{
		Name: sheetName,
		Rows: rows,
	}, nil
}
