package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/godilite/gradegen/internal/repository/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidAssignment = errors.New("invalid assignment")
	ErrStorageFailure    = errors.New("storage failure")
)

var (
	passRatio  = decimal.New(5, -1)
	scaleMax   = decimal.NewFromInt(5)
	percentMax = decimal.NewFromInt(100)
)

// GradingService accumulates assignment records and derives the summary.
type GradingService struct {
	storage AssignmentRepository
	logger  *zap.Logger
	totals  map[models.Category]models.CategoryTotals
}

// NewGradingService creates a new GradingService with zeroed totals.
func NewGradingService(storage AssignmentRepository, logger *zap.Logger) *GradingService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	totals := make(map[models.Category]models.CategoryTotals, len(models.Categories))
	for _, c := range models.Categories {
		totals[c] = models.CategoryTotals{WeightedSum: decimal.Zero}
	}
	return &GradingService{
		storage: storage,
		logger:  logger.Named("grading"),
		totals:  totals,
	}
}

// AddAssignment records one validated assignment and updates the totals of
// its category.
func (s *GradingService) AddAssignment(ctx context.Context, name string, category models.Category, grade, weight int) (models.Assignment, error) {
	if strings.TrimSpace(name) == "" {
		return models.Assignment{}, fmt.Errorf("%w: empty name", ErrInvalidAssignment)
	}
	if !category.Valid() {
		return models.Assignment{}, fmt.Errorf("%w: unknown category %q", ErrInvalidAssignment, category)
	}
	if grade < 0 || grade > 100 {
		return models.Assignment{}, fmt.Errorf("%w: grade %d outside 0-100", ErrInvalidAssignment, grade)
	}
	// Truncation of fractional weights below 1 yields 0, which is accepted.
	if weight < 0 {
		return models.Assignment{}, fmt.Errorf("%w: negative weight %d", ErrInvalidAssignment, weight)
	}

	a := models.NewAssignment(name, category, grade, weight)
	if err := s.storage.Append(ctx, a); err != nil {
		return models.Assignment{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	t := s.totals[category]
	t.WeightedSum = t.WeightedSum.Add(a.Weighted)
	t.WeightSum += a.Weight
	s.totals[category] = t

	s.logger.Debug("assignment recorded",
		zap.String("category", string(category)),
		zap.Int("grade", grade),
		zap.Int("weight", weight),
		zap.String("weighted", a.Weighted.StringFixed(2)))

	return a, nil
}

// Totals returns the running totals of one category.
func (s *GradingService) Totals(category models.Category) models.CategoryTotals {
	return s.totals[category]
}

// Records returns every accepted assignment in insertion order.
func (s *GradingService) Records(ctx context.Context) ([]models.Assignment, error) {
	records, err := s.storage.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return records, nil
}

// Summarize computes the overall grade, scaled score and pass/fail status
// from the current totals.
func (s *GradingService) Summarize() Summary {
	fa := EvaluateCategory(models.CategoryFormative, s.totals[models.CategoryFormative])
	sa := EvaluateCategory(models.CategorySummative, s.totals[models.CategorySummative])

	total := fa.WeightedSum.Add(sa.WeightedSum)
	summary := Summary{
		Formative:   fa,
		Summative:   sa,
		TotalGrade:  total,
		TotalWeight: fa.WeightSum + sa.WeightSum,
		ScaledScore: ScaledScore(total),
		Passed:      fa.Passed && sa.Passed,
	}

	s.logger.Info("summary computed",
		zap.String("total_grade", summary.TotalGrade.StringFixed(2)),
		zap.String("scaled_score", summary.ScaledScore.StringFixed(4)),
		zap.Bool("formative_passed", fa.Passed),
		zap.Bool("summative_passed", sa.Passed),
		zap.Bool("passed", summary.Passed))

	return summary
}

// EvaluateCategory applies the 50% pass rule to one category. A category
// without weight always fails.
func EvaluateCategory(category models.Category, totals models.CategoryTotals) CategoryStatus {
	status := CategoryStatus{
		Category:    category,
		WeightedSum: totals.WeightedSum,
		WeightSum:   totals.WeightSum,
		Threshold:   decimal.Zero,
	}
	if totals.WeightSum == 0 {
		status.Message = fmt.Sprintf("No %s assignments entered.", category)
		return status
	}

	status.Threshold = decimal.NewFromInt(int64(totals.WeightSum)).Mul(passRatio)
	status.Passed = totals.WeightedSum.GreaterThanOrEqual(status.Threshold)

	verdict := "FAIL"
	if status.Passed {
		verdict = "PASS"
	}
	status.Message = fmt.Sprintf("%s (needed >= %s, got %s)",
		verdict, status.Threshold.StringFixed(2), totals.WeightedSum.StringFixed(2))
	return status
}

// ScaledScore maps a total grade onto the 0-5 scale.
func ScaledScore(totalGrade decimal.Decimal) decimal.Decimal {
	return totalGrade.Div(percentMax).Mul(scaleMax)
}
