package workbook

import (
	"context"
	"fmt"

	"github.com/nconklindev/platesplit/internal/splitter"
	"github.com/nconklindev/platesplit/internal/types"
)

// SplitFile reads an export, splits its sections and writes the five output
// files to outputDir. Nothing is written unless the whole sheet splits
// cleanly.
func SplitFile(ctx context.Context, inputFile, outputDir string, format Format, progressChan chan<- float64) ([]types.SplitResult, error) {
	data, err := ReadSheet(inputFile)
	if err != nil {
		return nil, err
	}

	results, err := SplitSheet(ctx, data, outputDir, format, progressChan)
	if err != nil {
		return nil, fmt.Errorf("split %s: %w", inputFile, err)
	}
	return results, nil
}

// SplitSheet splits a sheet that is already in memory and writes the output
// files. An empty sheet yields five header-only files.
func SplitSheet(ctx context.Context, data *types.SheetData, outputDir string, format Format, progressChan chan<- float64) ([]types.SplitResult, error) {
	cols := types.NewCollections()
	if err := splitter.Split(data, cols, progressChan); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return WriteCollections(ctx, outputDir, format, cols)
}
