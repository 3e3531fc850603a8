package console

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	promptName     = "\nAssignment Name: "
	promptCategory = "Category (FA/SA): "
	promptGrade    = "Grade (0-100): "
	promptWeight   = "Weight (e.g., 30): "
	promptAnother  = "\nAdd another assignment? (y/n): "
)

// Collector drives the entry loop: one assignment per iteration until the
// user declines to add another.
type Collector struct {
	prompter *Prompter
	grading  GradeService
	logger   *zap.Logger
}

func NewCollector(prompter *Prompter, grading GradeService, logger *zap.Logger) *Collector {
	if prompter == nil {
		panic("nil Prompter provided to NewCollector")
	}
	if grading == nil {
		panic("nil GradeService provided to NewCollector")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{
		prompter: prompter,
		grading:  grading,
		logger:   logger.Named("collector"),
	}
}

// Collect reads assignments until a negative confirmation and returns how
// many were recorded. A read error abandons the assignment in progress.
func (c *Collector) Collect(ctx context.Context) (int, error) {
	count := 0
	for {
		if err := c.collectOne(ctx); err != nil {
			return count, err
		}
		count++

		another, err := c.prompter.YesNo(ctx, promptAnother)
		if err != nil {
			return count, err
		}
		if !another {
			c.logger.Info("collection finished", zap.Int("assignments", count))
			return count, nil
		}
	}
}

func (c *Collector) collectOne(ctx context.Context) error {
	name, err := c.prompter.NonEmpty(ctx, promptName)
	if err != nil {
		return err
	}
	category, err := c.prompter.Category(ctx, promptCategory)
	if err != nil {
		return err
	}
	grade, err := c.prompter.Grade(ctx, promptGrade)
	if err != nil {
		return err
	}
	weight, err := c.prompter.PositiveNumber(ctx, promptWeight)
	if err != nil {
		return err
	}

	if _, err := c.grading.AddAssignment(ctx, name, category, Truncate(grade), Truncate(weight)); err != nil {
		return fmt.Errorf("record assignment %q: %w", name, err)
	}
	return nil
}
