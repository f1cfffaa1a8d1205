package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nconklindev/platesplit/internal/config"
)

// NewRootCommand creates the split command; `browse` hangs off it.
func NewRootCommand(ctx context.Context, cfg config.Config, version string) *cobra.Command {
	opts := &splitOptions{}

	cmd := &cobra.Command{
		Use:   "platesplit --file <export.xlsx>",
		Short: "Split a MyPlate detailed export into one spreadsheet per section.",
		Long: `platesplit reads a MyPlate "detailed" export and writes its Meals, Fitness,
Totals, Weight and Water sections to split_meals, split_fitness,
split_totals, split_weights and split_water, one dated row per record.`,
		Version: version,
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(ctx, cmd, *opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "MyPlate export to split (.xlsx, required)")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", cfg.OutputDir, "Directory for the split files")
	cmd.Flags().StringVar(&opts.format, "format", cfg.Format, "Output format: xlsx or csv")

	cmd.AddCommand(newBrowseCommand(ctx, cfg))

	return cmd
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError(fmt.Errorf("unexpected argument %q", args[0]))
	}
	return nil
}

// Main is used by main.go to keep wiring contained in one package.
func Main(ctx context.Context, version string) {
	config.SetupEnvironment()

	root := NewRootCommand(ctx, config.Load(), version)
	cmd, err := root.ExecuteC()
	if err == nil {
		return
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(os.Stderr, "error: %v\n\n%s", err, cmd.UsageString())
	} else {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(1)
}
