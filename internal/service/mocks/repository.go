package mocks

import (
	"context"
	"errors"

	"github.com/godilite/gradegen/internal/repository/models"
)

// MockAssignmentRepository is a mock implementation of the AssignmentRepository interface
// for testing the service layer.
type MockAssignmentRepository struct {
	AppendFunc func(ctx context.Context, a models.Assignment) error
	ListFunc   func(ctx context.Context) ([]models.Assignment, error)
}

// Append implements the AssignmentRepository interface
func (m *MockAssignmentRepository) Append(ctx context.Context, a models.Assignment) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, a)
	}
	return errors.New("AppendFunc not implemented")
}

// List implements the AssignmentRepository interface
func (m *MockAssignmentRepository) List(ctx context.Context) ([]models.Assignment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errors.New("ListFunc not implemented")
}
