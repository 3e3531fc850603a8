package service

import (
	"context"

	"github.com/godilite/gradegen/internal/repository/models"
)

// AssignmentRepository defines the storage operations the grading service needs.
type AssignmentRepository interface {
	Append(ctx context.Context, a models.Assignment) error
	List(ctx context.Context) ([]models.Assignment, error)
}
