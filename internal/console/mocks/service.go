package mocks

import (
	"context"
	"errors"

	"github.com/godilite/gradegen/internal/repository/models"
)

// MockGradeService is a mock implementation of the GradeService interface
// for testing the console layer. It uses function-based mocking for flexibility.
type MockGradeService struct {
	AddAssignmentFunc func(ctx context.Context, name string, category models.Category, grade, weight int) (models.Assignment, error)
}

// AddAssignment implements the GradeService interface
func (m *MockGradeService) AddAssignment(ctx context.Context, name string, category models.Category, grade, weight int) (models.Assignment, error) {
	if m.AddAssignmentFunc != nil {
		return m.AddAssignmentFunc(ctx, name, category, grade, weight)
	}
	return models.Assignment{}, errors.New("AddAssignmentFunc not implemented")
}

// RecordingGradeService keeps every assignment it receives.
type RecordingGradeService struct {
	Assignments []models.Assignment
}

// AddAssignment implements the GradeService interface
func (r *RecordingGradeService) AddAssignment(ctx context.Context, name string, category models.Category, grade, weight int) (models.Assignment, error) {
	a := models.NewAssignment(name, category, grade, weight)
	r.Assignments = append(r.Assignments, a)
	return a, nil
}
