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

// InstructorRepository handles database operations for instructors
type InstructorRepository struct {
	db *pgxpool.Pool
}

// NewInstructorRepository creates a new instructor repository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{
		db: db,
	}
}

// Create inserts a new instructor
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	query := `
		INSERT INTO instructor (instructor_id, first_name, middle_name, last_name, email_id, phone_number, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		instructor.ID,
		instructor.FirstName,
		instructor.MiddleName,
		instructor.LastName,
		instructor.Email,
		instructor.Phone,
		models.StatusActive,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrInstructorAlreadyExists
		}
		return fmt.Errorf("error creating instructor: %w", err)
	}

	instructor.Status = models.StatusActive
	return nil
}

// GetByID retrieves an instructor by ID
func (r *InstructorRepository) GetByID(ctx context.Context, id string) (*models.Instructor, error) {
	query := `
		SELECT instructor_id, first_name, middle_name, last_name, email_id, phone_number, status
		FROM instructor
		WHERE instructor_id = $1
	`

	var instructor models.Instructor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&instructor.ID,
		&instructor.FirstName,
		&instructor.MiddleName,
		&instructor.LastName,
		&instructor.Email,
		&instructor.Phone,
		&instructor.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, fmt.Errorf("error retrieving instructor: %w", err)
	}

	return &instructor, nil
}

// List retrieves instructors ordered by last name, optionally Active only
func (r *InstructorRepository) List(ctx context.Context, activeOnly bool) ([]*models.Instructor, error) {
	query := `
		SELECT instructor_id, first_name, middle_name, last_name, email_id, phone_number, status
		FROM instructor
	`
	if activeOnly {
		query += ` WHERE status = 'Active'`
	}
	query += ` ORDER BY last_name, first_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []*models.Instructor
	for rows.Next() {
		var instructor models.Instructor
		if err := rows.Scan(
			&instructor.ID,
			&instructor.FirstName,
			&instructor.MiddleName,
			&instructor.LastName,
			&instructor.Email,
			&instructor.Phone,
			&instructor.Status,
		); err != nil {
			return nil, err
		}
		instructors = append(instructors, &instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return instructors, nil
}

// Update updates an instructor's contact fields
func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	query := `
		UPDATE instructor
		SET first_name = $1, middle_name = $2, last_name = $3, email_id = $4, phone_number = $5
		WHERE instructor_id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		instructor.FirstName,
		instructor.MiddleName,
		instructor.LastName,
		instructor.Email,
		instructor.Phone,
		instructor.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrInstructorAlreadyExists
		}
		return fmt.Errorf("error updating instructor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstructorNotFound
	}

	return nil
}

// CountReferences counts teaching assignments referencing this instructor.
func (r *InstructorRepository) CountReferences(ctx context.Context, id string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM teaches WHERE instructor_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting instructor references: %w", err)
	}

	return count, nil
}

// SetStatus flips the lifecycle status of an instructor
func (r *InstructorRepository) SetStatus(ctx context.Context, id string, status models.Status) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE instructor SET status = $1 WHERE instructor_id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating instructor status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstructorNotFound
	}

	return nil
}

// Delete hard-deletes an instructor
func (r *InstructorRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM instructor WHERE instructor_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting instructor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstructorNotFound
	}

	return nil
}
