package repository

import (
	"context"
	"fmt"

	"github.com/godilite/gradegen/internal/repository/models"
)

// AssignmentRepository keeps the records of one run in insertion order.
type AssignmentRepository struct {
	records []models.Assignment
}

func NewAssignmentRepository() *AssignmentRepository {
	return &AssignmentRepository{}
}

// Append adds a record to the end of the collection.
func (r *AssignmentRepository) Append(ctx context.Context, a models.Assignment) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("append assignment: %w", err)
	}
	r.records = append(r.records, a)
	return nil
}

// List returns a copy of all records in insertion order.
func (r *AssignmentRepository) List(ctx context.Context) ([]models.Assignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	out := make([]models.Assignment, len(r.records))
	copy(out, r.records)
	return out, nil
}
