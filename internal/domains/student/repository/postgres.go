package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"studenthub-backend/internal/domains/student/model"
)

// postgresRepository implements RepositoryInterface.
// Uses pgxpool for PostgreSQL connection management
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new student repository instance
// Dependency injection pattern - receives pool from container
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const studentColumns = "id, full_name, birth_date, gender, address, social_link"

// escapeLike neutralizes LIKE metacharacters in untrusted filter text.
// Combined with bind parameters this keeps search input literal data:
// it can never grow into a structural part of the query.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// List returns all students matching the filter, ordered by id so a
// snapshot is stable. An empty filter returns everything.
func (r *postgresRepository) List(ctx context.Context, filter model.Filter) ([]*model.Student, error) {
	var clauses []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Name != "" {
		clauses = append(clauses, "full_name ILIKE "+arg("%"+escapeLike(filter.Name)+"%"))
	}
	if filter.Address != "" {
		clauses = append(clauses, "address ILIKE "+arg("%"+escapeLike(filter.Address)+"%"))
	}
	if filter.Gender != "" {
		clauses = append(clauses, "gender = "+arg(filter.Gender))
	}
	if filter.Month != "" {
		// birth_date is DD/MM/YYYY; the second segment is the month.
		clauses = append(clauses, "split_part(birth_date, '/', 2) = "+arg(filter.Month))
	}

	query := "SELECT " + studentColumns + " FROM students"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	students := make([]*model.Student, 0)
	for rows.Next() {
		var stu model.Student
		if err := rows.Scan(&stu.ID, &stu.FullName, &stu.BirthDate, &stu.Gender, &stu.Address, &stu.SocialLink); err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, &stu)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// GetByID retrieves a student by id. Returns (nil, nil) when absent.
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	query := "SELECT " + studentColumns + " FROM students WHERE id = $1"

	var stu model.Student
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&stu.ID, &stu.FullName, &stu.BirthDate, &stu.Gender, &stu.Address, &stu.SocialLink,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student by id: %w", err)
	}

	return &stu, nil
}

// Create inserts a new student record. The id was already assigned by
// the sequence generator; a failure here burns it, which is acceptable.
func (r *postgresRepository) Create(ctx context.Context, student *model.Student) (*model.Student, error) {
	query := `
    INSERT INTO students (id, full_name, birth_date, gender, address, social_link)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + studentColumns

	var created model.Student
	err := r.pool.QueryRow(ctx, query,
		student.ID, student.FullName, student.BirthDate, student.Gender, student.Address, student.SocialLink,
	).Scan(
		&created.ID, &created.FullName, &created.BirthDate, &created.Gender, &created.Address, &created.SocialLink,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	return &created, nil
}

// Update replaces all mutable fields of the record matching the id.
// The id itself is the match key and never changes.
func (r *postgresRepository) Update(ctx context.Context, student *model.Student) (*model.Student, error) {
	query := `
    UPDATE students
    SET full_name = $2, birth_date = $3, gender = $4, address = $5, social_link = $6
    WHERE id = $1
    RETURNING ` + studentColumns

	var updated model.Student
	err := r.pool.QueryRow(ctx, query,
		student.ID, student.FullName, student.BirthDate, student.Gender, student.Address, student.SocialLink,
	).Scan(
		&updated.ID, &updated.FullName, &updated.BirthDate, &updated.Gender, &updated.Address, &updated.SocialLink,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update student: %w", err)
	}

	return &updated, nil
}

// Delete removes the record. Returns false when nothing matched.
func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM students WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete student: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
