package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/godilite/gradegen/internal/config"
	"github.com/godilite/gradegen/internal/console"
	"github.com/godilite/gradegen/internal/repository"
	"github.com/godilite/gradegen/internal/repository/models"
	"github.com/godilite/gradegen/internal/service"
	"github.com/godilite/gradegen/pkg/export"
	"github.com/godilite/gradegen/pkg/terminal"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInterrupted = errors.New("interrupted")
	ErrInputClosed = errors.New("input closed")
)

const banner = "Grade Generator - Enter assignment data. Type carefully; validations are enforced."

// ExportHeader is the column layout of the exported file.
var ExportHeader = []string{"Assignment", "Category", "Grade", "Weight"}

type App struct {
	logger    *zap.Logger
	out       io.Writer
	session   *terminal.Session
	grading   *service.GradingService
	collector *console.Collector
	exporter  *export.Writer
}

func NewApp(cfg *config.Config, logger *zap.Logger, in io.Reader, out io.Writer) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	session, err := terminal.New(
		terminal.WithInput(in),
		terminal.WithOutput(out),
		terminal.WithLogger(logger),
		terminal.WithLogging(true),
	)
	if err != nil {
		return nil, fmt.Errorf("terminal init failed: %w", err)
	}

	exporter, err := export.New(
		export.WithPath(cfg.OutputPath),
		export.WithHeader(ExportHeader...),
	)
	if err != nil {
		return nil, fmt.Errorf("exporter init failed: %w", err)
	}
	logger.Debug("exporter initialized", zap.String("path", cfg.OutputPath))

	grading := service.NewGradingService(repository.NewAssignmentRepository(), logger)
	prompter := console.NewPrompter(session, session.Output(), logger)

	return &App{
		logger:    logger,
		out:       session.Output(),
		session:   session,
		grading:   grading,
		collector: console.NewCollector(prompter, grading, logger),
		exporter:  exporter,
	}, nil
}

// Run collects assignments until the user stops, prints the summary and
// exports the records. An interrupted run returns before anything is
// exported. Export failures are reported and do not fail the run.
func (a *App) Run(ctx context.Context) (service.Summary, error) {
	a.logger.Info("application starting")
	defer a.session.Close()

	fmt.Fprintln(a.out, banner)

	count, err := a.collector.Collect(ctx)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			a.logger.Warn("run interrupted", zap.Int("assignments_discarded", count))
			return service.Summary{}, fmt.Errorf("%w: %v", ErrInterrupted, err)
		case errors.Is(err, terminal.ErrInputClosed):
			a.logger.Warn("input closed before run finished", zap.Int("assignments_discarded", count))
			return service.Summary{}, ErrInputClosed
		default:
			return service.Summary{}, fmt.Errorf("collect assignments: %w", err)
		}
	}

	summary := a.grading.Summarize()
	if err := console.PrintSummary(a.out, summary); err != nil {
		return summary, fmt.Errorf("print summary: %w", err)
	}

	a.exportRecords(ctx)

	a.logger.Info("application finished", zap.Int("assignments", count), zap.Bool("passed", summary.Passed))
	return summary, nil
}

func (a *App) exportRecords(ctx context.Context) {
	records, err := a.grading.Records(ctx)
	if err == nil {
		err = a.exporter.Write(exportRows(records))
	}
	if err != nil {
		a.logger.Error("export failed", zap.String("path", a.exporter.Path()), zap.Error(err))
		fmt.Fprintln(a.out, "Failed to write CSV:", err)
		return
	}

	a.logger.Info("export written", zap.String("path", a.exporter.Path()), zap.Int("rows", len(records)))
	fmt.Fprintf(a.out, "\nCSV file '%s' created successfully.\n", a.exporter.Path())
}

func exportRows(records []models.Assignment) [][]string {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			r.Name,
			string(r.Category),
			strconv.Itoa(r.Grade),
			strconv.Itoa(r.Weight),
		}
	}
	return rows
}
