package repository

import (
	"context"

	"studenthub-backend/internal/domains/student/model"
)

// RepositoryInterface is the student data-access contract.
// Get/Update/Delete return (nil, nil) / (false, nil) when no record
// matches; the service layer decides what "not found" means upstream.
type RepositoryInterface interface {
	List(ctx context.Context, filter model.Filter) ([]*model.Student, error)
	GetByID(ctx context.Context, id int64) (*model.Student, error)
	Create(ctx context.Context, student *model.Student) (*model.Student, error)
	Update(ctx context.Context, student *model.Student) (*model.Student, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
