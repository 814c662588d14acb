package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"studenthub-backend/internal/domains/student/model"
	"studenthub-backend/internal/domains/student/repository"
	"studenthub-backend/internal/sequence"
)

// studentCounter is the sequence name backing id assignment.
const studentCounter = "student_id"

type studentService struct {
	repo      repository.RepositoryInterface
	sequences sequence.Generator
	opTimeout time.Duration
}

// NewStudentService creates the student service.
// Dependency injection pattern - receives repo and generator from container
func NewStudentService(repo repository.RepositoryInterface, sequences sequence.Generator, opTimeout time.Duration) ServiceInterface {
	if opTimeout <= 0 {
		opTimeout = 5 * time.Second
	}
	return &studentService{
		repo:      repo,
		sequences: sequences,
		opTimeout: opTimeout,
	}
}

// withTimeout bounds every store round-trip so a stalled database
// surfaces as an error instead of a hung request.
func (s *studentService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opTimeout)
}

func (s *studentService) List(ctx context.Context) ([]*model.StudentResponse, error) {
	return s.Search(ctx, model.SearchQuery{})
}

func (s *studentService) Search(ctx context.Context, query model.SearchQuery) ([]*model.StudentResponse, error) {
	filter, err := query.ToFilter()
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	students, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("student search failed")
		return nil, model.NewStorageUnavailable(err)
	}

	responses := make([]*model.StudentResponse, 0, len(students))
	for _, stu := range students {
		responses = append(responses, stu.ToResponse())
	}
	return responses, nil
}

func (s *studentService) Get(ctx context.Context, id int64) (*model.StudentResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	stu, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("student lookup failed")
		return nil, model.NewStorageUnavailable(err)
	}
	if stu == nil {
		return nil, model.NewStudentNotFound(id)
	}

	return stu.ToResponse(), nil
}

// Create validates the fields, pulls a fresh id from the student counter
// and persists the record. A persistence failure after allocation burns
// the id: sequence values are unique and increasing, not gap-free.
func (s *studentService) Create(ctx context.Context, req *model.StudentRequest) (*model.StudentResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := s.sequences.Next(ctx, studentCounter)
	if err != nil {
		log.Error().Err(err).Msg("student id allocation failed")
		return nil, model.NewStorageUnavailable(err)
	}

	created, err := s.repo.Create(ctx, req.ToStudent(id))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("student create failed")
		return nil, model.NewStorageUnavailable(err)
	}

	return created.ToResponse(), nil
}

func (s *studentService) Update(ctx context.Context, id int64, req *model.StudentRequest) (*model.StudentResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	updated, err := s.repo.Update(ctx, req.ToStudent(id))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("student update failed")
		return nil, model.NewStorageUnavailable(err)
	}
	if updated == nil {
		return nil, model.NewStudentNotFound(id)
	}

	return updated.ToResponse(), nil
}

func (s *studentService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("student delete failed")
		return model.NewStorageUnavailable(err)
	}
	if !deleted {
		return model.NewStudentNotFound(id)
	}

	return nil
}
