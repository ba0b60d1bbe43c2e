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

// DegreeRepository handles database operations for degree programs
type DegreeRepository struct {
	db *pgxpool.Pool
}

// NewDegreeRepository creates a new degree repository
func NewDegreeRepository(db *pgxpool.Pool) *DegreeRepository {
	return &DegreeRepository{
		db: db,
	}
}

// Create inserts a new degree program
func (r *DegreeRepository) Create(ctx context.Context, degree *models.Degree) error {
	query := `
		INSERT INTO degree (degree_name, degree_level, description, status)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, degree.Name, degree.Level, degree.Description, models.StatusActive)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDegreeAlreadyExists
		}
		return fmt.Errorf("error creating degree: %w", err)
	}

	degree.Status = models.StatusActive
	return nil
}

// GetByKey retrieves a degree by its (name, level) identity
func (r *DegreeRepository) GetByKey(ctx context.Context, key models.DegreeKey) (*models.Degree, error) {
	query := `
		SELECT degree_name, degree_level, description, status
		FROM degree
		WHERE degree_name = $1 AND degree_level = $2
	`

	var degree models.Degree
	err := r.db.QueryRow(ctx, query, key.Name, key.Level).Scan(
		&degree.Name,
		&degree.Level,
		&degree.Description,
		&degree.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDegreeNotFound
		}
		return nil, fmt.Errorf("error retrieving degree: %w", err)
	}

	return &degree, nil
}

// List retrieves degrees, optionally restricted to Active status
func (r *DegreeRepository) List(ctx context.Context, activeOnly bool) ([]*models.Degree, error) {
	query := `
		SELECT degree_name, degree_level, description, status
		FROM degree
	`
	if activeOnly {
		query += ` WHERE status = 'Active'`
	}
	query += ` ORDER BY degree_name, degree_level`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var degrees []*models.Degree
	for rows.Next() {
		var degree models.Degree
		if err := rows.Scan(
			&degree.Name,
			&degree.Level,
			&degree.Description,
			&degree.Status,
		); err != nil {
			return nil, err
		}
		degrees = append(degrees, &degree)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return degrees, nil
}

// CountReferences counts curriculum rows depending on this degree. A
// nonzero count means the degree must be archived instead of deleted.
func (r *DegreeRepository) CountReferences(ctx context.Context, key models.DegreeKey) (int, error) {
	query := `
		SELECT (SELECT COUNT(*) FROM degree_course WHERE degree_name = $1 AND degree_level = $2) +
		       (SELECT COUNT(*) FROM degree_objective WHERE degree_name = $1 AND degree_level = $2)
	`

	var count int
	if err := r.db.QueryRow(ctx, query, key.Name, key.Level).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting degree references: %w", err)
	}

	return count, nil
}

// SetStatus flips the lifecycle status of a degree
func (r *DegreeRepository) SetStatus(ctx context.Context, key models.DegreeKey, status models.Status) error {
	query := `UPDATE degree SET status = $1 WHERE degree_name = $2 AND degree_level = $3`

	cmdTag, err := r.db.Exec(ctx, query, status, key.Name, key.Level)
	if err != nil {
		return fmt.Errorf("error updating degree status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDegreeNotFound
	}

	return nil
}

// Delete hard-deletes a degree. The relational cascades remove any
// remaining curriculum and evaluation rows referencing it.
func (r *DegreeRepository) Delete(ctx context.Context, key models.DegreeKey) error {
	query := `DELETE FROM degree WHERE degree_name = $1 AND degree_level = $2`

	cmdTag, err := r.db.Exec(ctx, query, key.Name, key.Level)
	if err != nil {
		return fmt.Errorf("error deleting degree: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDegreeNotFound
	}

	return nil
}
