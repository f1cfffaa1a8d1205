package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nconklindev/platesplit/internal/types"
	"github.com/nconklindev/platesplit/internal/workbook"
)

var errMissingFile = errors.New(`required flag "file" not set`)

type splitOptions struct {
	file      string
	outputDir string
	format    string
}

// validate checks the invocation before any file is opened.
func (o splitOptions) validate() (workbook.Format, error) {
	if o.file == "" {
		return "", usageError(errMissingFile)
	}
	if err := workbook.CheckInputPath(o.file); err != nil {
		return "", usageError(err)
	}
	format, err := workbook.ParseFormat(o.format)
	if err != nil {
		return "", usageError(err)
	}
	return format, nil
}

func runSplit(ctx context.Context, cmd *cobra.Command, opts splitOptions) error {
	format, err := opts.validate()
	if err != nil {
		return err
	}

	logger := log.With().Str("run_id", uuid.NewString()).Logger()
	ctx = logger.WithContext(ctx)

	logger.Info().
		Str("input", opts.file).
		Str("output_dir", opts.outputDir).
		Str("format", string(format)).
		Msg("Splitting export")

	results, err := workbook.SplitFile(ctx, opts.file, opts.outputDir, format, nil)
	if err != nil {
		logger.Error().Err(err).Str("input", opts.file).Msg("Split failed")
		return err
	}

	printResults(cmd, results)
	return nil
}

func printResults(cmd *cobra.Command, results []types.SplitResult) {
	out := cmd.OutOrStdout()
	for _, res := range results {
		fmt.Fprintf(out, "%-8s %5d  %s\n", res.Name, res.Records, res.OutputFile)
	}
}
