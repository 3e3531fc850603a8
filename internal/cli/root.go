package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/godilite/gradegen/internal/app"
	"github.com/godilite/gradegen/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCommand builds the gradegen command. It takes no arguments.
func NewRootCommand(cfg *config.Config, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "gradegen",
		Short: "Collect assignment grades, summarize them and export grades.csv",
		Long: `gradegen asks for assignments one at a time (name, category FA or SA,
grade 0-100 and weight), prints weighted totals per category with a
pass/fail verdict, and writes the records to a CSV file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.NewApp(cfg, logger, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, err = application.Run(cmd.Context())
			return err
		},
	}
}

// Execute runs the root command and maps its outcome to a process exit code.
func Execute(ctx context.Context, cmd *cobra.Command, stdout, stderr io.Writer) int {
	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, app.ErrInterrupted):
		fmt.Fprintln(stdout, "\nInterrupted by user. Exiting.")
		return 1
	case errors.Is(err, app.ErrInputClosed):
		fmt.Fprintln(stdout, "\nInput closed. Exiting.")
		return 1
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
}
