package console

import (
	"context"

	"github.com/godilite/gradegen/internal/repository/models"
)

// LineReader prompts for and returns one raw line of input.
type LineReader interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

type GradeService interface {
	AddAssignment(ctx context.Context, name string, category models.Category, grade, weight int) (models.Assignment, error)
}
