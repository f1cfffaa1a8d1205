package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nconklindev/platesplit/internal/config"
	"github.com/nconklindev/platesplit/internal/ui"
	"github.com/nconklindev/platesplit/internal/workbook"
)

func newBrowseCommand(ctx context.Context, cfg config.Config) *cobra.Command {
	var (
		outputDir string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Pick an export in a file browser and split it.",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := workbook.ParseFormat(format)
			if err != nil {
				return usageError(err)
			}

			// Log lines would tear the alt screen.
			zerolog.SetGlobalLevel(zerolog.Disabled)

			m := ui.InitialModel(ctx, outputDir, f)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", cfg.OutputDir, "Directory for the split files")
	cmd.Flags().StringVar(&format, "format", cfg.Format, "Output format: xlsx or csv")

	return cmd
}
