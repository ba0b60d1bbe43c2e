package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atlasedu/accredia/internal/app/models"
	"github.com/atlasedu/accredia/internal/pkg/apperrors"
	"github.com/atlasedu/accredia/internal/pkg/dberrors"
)

// CourseRepository handles database operations for catalog courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO course (course_code, course_name, status)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, course.Code, course.Name, models.StatusActive)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	course.Status = models.StatusActive
	return nil
}

// CreateIfAbsent inserts a course unless one with the same code already
// exists. A clash on the unique course name still surfaces as a duplicate.
func (r *CourseRepository) CreateIfAbsent(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO course (course_code, course_name, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (course_code) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, course.Code, course.Name, models.StatusActive)
	if err != nil {
		if dberrors.IsConstraintViolation(err, "uk_course_name") {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByCode retrieves a course by its code
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	query := `
		SELECT course_code, course_name, status
		FROM course
		WHERE course_code = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, code).Scan(&course.Code, &course.Name, &course.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// List retrieves courses ordered by code, optionally Active only
func (r *CourseRepository) List(ctx context.Context, activeOnly bool) ([]*models.Course, error) {
	query := `
		SELECT course_code, course_name, status
		FROM course
	`
	if activeOnly {
		query += ` WHERE status = 'Active'`
	}
	query += ` ORDER BY course_code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.Code, &course.Name, &course.Status); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// CountReferences counts sections and degree links depending on this
// course.
func (r *CourseRepository) CountReferences(ctx context.Context, code string) (int, error) {
	query := `
		SELECT (SELECT COUNT(*) FROM section WHERE course_code = $1) +
		       (SELECT COUNT(*) FROM degree_course WHERE course_code = $1)
	`

	var count int
	if err := r.db.QueryRow(ctx, query, code).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting course references: %w", err)
	}

	return count, nil
}

// SetStatus flips the lifecycle status of a course
func (r *CourseRepository) SetStatus(ctx context.Context, code string, status models.Status) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE course SET status = $1 WHERE course_code = $2`, status, code)
	if err != nil {
		return fmt.Errorf("error updating course status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete hard-deletes a course
func (r *CourseRepository) Delete(ctx context.Context, code string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM course WHERE course_code = $1`, code)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
