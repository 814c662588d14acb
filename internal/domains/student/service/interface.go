package service

import (
	"context"

	"studenthub-backend/internal/domains/student/model"
)

// ServiceInterface is the student business-logic contract consumed by
// the HTTP handlers.
type ServiceInterface interface {
	List(ctx context.Context) ([]*model.StudentResponse, error)
	Search(ctx context.Context, query model.SearchQuery) ([]*model.StudentResponse, error)
	Get(ctx context.Context, id int64) (*model.StudentResponse, error)
	Create(ctx context.Context, req *model.StudentRequest) (*model.StudentResponse, error)
	Update(ctx context.Context, id int64, req *model.StudentRequest) (*model.StudentResponse, error)
	Delete(ctx context.Context, id int64) error
}
