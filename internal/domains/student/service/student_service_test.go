package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studenthub-backend/internal/domains/student/model"
)

// fakeRepo is an in-memory stand-in for the Postgres repository. It
// mirrors the repository's filter semantics so service tests exercise
// the full search path without a database.
type fakeRepo struct {
	mu       sync.Mutex
	students map[int64]model.Student
	failWith error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{students: make(map[int64]model.Student)}
}

func (f *fakeRepo) List(_ context.Context, filter model.Filter) ([]*model.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}

	var out []*model.Student
	for _, stu := range f.students {
		if filter.Name != "" && !strings.Contains(strings.ToLower(stu.FullName), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Address != "" && !strings.Contains(strings.ToLower(stu.Address), strings.ToLower(filter.Address)) {
			continue
		}
		if filter.Gender != "" && stu.Gender != filter.Gender {
			continue
		}
		if filter.Month != "" {
			parts := strings.Split(stu.BirthDate, "/")
			if len(parts) != 3 || parts[1] != filter.Month {
				continue
			}
		}
		s := stu
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*model.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	stu, ok := f.students[id]
	if !ok {
		return nil, nil
	}
	return &stu, nil
}

func (f *fakeRepo) Create(_ context.Context, stu *model.Student) (*model.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	if _, exists := f.students[stu.ID]; exists {
		return nil, fmt.Errorf("duplicate id %d", stu.ID)
	}
	f.students[stu.ID] = *stu
	created := *stu
	return &created, nil
}

func (f *fakeRepo) Update(_ context.Context, stu *model.Student) (*model.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	if _, ok := f.students[stu.ID]; !ok {
		return nil, nil
	}
	f.students[stu.ID] = *stu
	updated := *stu
	return &updated, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return false, f.failWith
	}
	if _, ok := f.students[id]; !ok {
		return false, nil
	}
	delete(f.students, id)
	return true, nil
}

// fakeSequence allocates ids from an in-process counter under a mutex,
// standing in for the atomic database upsert.
type fakeSequence struct {
	mu       sync.Mutex
	counters map[string]int64
	failWith error
}

func newFakeSequence() *fakeSequence {
	return &fakeSequence{counters: make(map[string]int64)}
}

func (f *fakeSequence) Next(_ context.Context, name string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return 0, f.failWith
	}
	f.counters[name]++
	return f.counters[name], nil
}

func newTestService() (ServiceInterface, *fakeRepo, *fakeSequence) {
	repo := newFakeRepo()
	seq := newFakeSequence()
	return NewStudentService(repo, seq, 0), repo, seq
}

func sampleRequest() *model.StudentRequest {
	return &model.StudentRequest{
		FullName:  "Nguyen Van A",
		BirthDate: "15/03/2010",
		Gender:    model.GenderMale,
		Address:   "Hanoi",
	}
}

func TestCreateAssignsFirstID(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.Create(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Nguyen Van A", created.FullName)
	assert.Equal(t, "15/03/2010", created.BirthDate)
	assert.Equal(t, model.GenderMale, created.Gender)
	assert.Equal(t, "Hanoi", created.Address)
	assert.Equal(t, "", created.SocialLink)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.Create(context.Background(), sampleRequest())
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateRejectsInvalidFields(t *testing.T) {
	svc, repo, _ := newTestService()

	req := sampleRequest()
	req.Gender = "robot"
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var stuErr *model.StudentError
	require.ErrorAs(t, err, &stuErr)
	assert.Equal(t, "STUDENT_VALIDATION", stuErr.Code)
	assert.Empty(t, repo.students)
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	svc, _, _ := newTestService()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := svc.Create(context.Background(), sampleRequest())
			if assert.NoError(t, err) {
				ids <- created.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestUpdateKeepsIdentity(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.Create(context.Background(), sampleRequest())
	require.NoError(t, err)

	req := sampleRequest()
	req.Address = "Da Nang"
	req.Gender = model.GenderFemale

	updated, err := svc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Da Nang", updated.Address)
	assert.Equal(t, model.GenderFemale, updated.Gender)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateMissingRecord(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Update(context.Background(), 42, sampleRequest())
	assert.True(t, model.IsStudentNotFound(err))
}

func TestDeleteThenGet(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.Create(context.Background(), sampleRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assert.True(t, model.IsStudentNotFound(err))

	err = svc.Delete(context.Background(), created.ID)
	assert.True(t, model.IsStudentNotFound(err))
}

func TestSearchByBirthMonth(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.Create(context.Background(), sampleRequest())
	require.NoError(t, err)

	march, err := svc.Search(context.Background(), model.SearchQuery{Thang: "03"})
	require.NoError(t, err)
	require.Len(t, march, 1)
	assert.Equal(t, created.ID, march[0].ID)

	// Unpadded input matches the same records.
	march, err = svc.Search(context.Background(), model.SearchQuery{Thang: "3"})
	require.NoError(t, err)
	assert.Len(t, march, 1)

	april, err := svc.Search(context.Background(), model.SearchQuery{Thang: "04"})
	require.NoError(t, err)
	assert.Empty(t, april)
}

func TestSearchRejectsBadParameters(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.failWith = errors.New("must not be reached")

	_, err := svc.Search(context.Background(), model.SearchQuery{GioiTinh: "2"})
	var stuErr *model.StudentError
	require.ErrorAs(t, err, &stuErr)
	assert.Equal(t, "INVALID_GENDER_CODE", stuErr.Code)

	_, err = svc.Search(context.Background(), model.SearchQuery{Thang: "13"})
	require.ErrorAs(t, err, &stuErr)
	assert.Equal(t, "INVALID_BIRTH_MONTH", stuErr.Code)
}

func TestSearchTreatsOperatorTextAsLiteral(t *testing.T) {
	svc, _, _ := newTestService()

	req := sampleRequest()
	req.FullName = "$where literal"
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	found, err := svc.Search(context.Background(), model.SearchQuery{HoTen: "$where"})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	none, err := svc.Search(context.Background(), model.SearchQuery{HoTen: "{$gt: 0}"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStorageFailuresSurfaceAsUnavailable(t *testing.T) {
	svc, repo, seq := newTestService()
	repo.failWith = errors.New("connection refused")

	_, err := svc.List(context.Background())
	assert.True(t, model.IsStorageUnavailable(err))

	_, err = svc.Get(context.Background(), 1)
	assert.True(t, model.IsStorageUnavailable(err))

	repo.failWith = nil
	seq.failWith = errors.New("connection refused")
	_, err = svc.Create(context.Background(), sampleRequest())
	assert.True(t, model.IsStorageUnavailable(err))
}
