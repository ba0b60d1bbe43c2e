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

// ObjectiveRepository handles database operations for the global
// objective catalog
type ObjectiveRepository struct {
	db *pgxpool.Pool
}

// NewObjectiveRepository creates a new objective repository
func NewObjectiveRepository(db *pgxpool.Pool) *ObjectiveRepository {
	return &ObjectiveRepository{
		db: db,
	}
}

// Create inserts a new objective
func (r *ObjectiveRepository) Create(ctx context.Context, objective *models.Objective) error {
	query := `
		INSERT INTO objective (obj_code, title, description)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, objective.Code, objective.Title, objective.Description)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrObjectiveAlreadyExists
		}
		return fmt.Errorf("error creating objective: %w", err)
	}

	return nil
}

// GetByCode retrieves an objective by its code
func (r *ObjectiveRepository) GetByCode(ctx context.Context, code string) (*models.Objective, error) {
	query := `
		SELECT obj_code, title, description
		FROM objective
		WHERE obj_code = $1
	`

	var objective models.Objective
	err := r.db.QueryRow(ctx, query, code).Scan(&objective.Code, &objective.Title, &objective.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrObjectiveNotFound
		}
		return nil, fmt.Errorf("error retrieving objective: %w", err)
	}

	return &objective, nil
}

// List retrieves all objectives ordered by code
func (r *ObjectiveRepository) List(ctx context.Context) ([]*models.Objective, error) {
	query := `
		SELECT obj_code, title, description
		FROM objective
		ORDER BY obj_code
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var objectives []*models.Objective
	for rows.Next() {
		var objective models.Objective
		if err := rows.Scan(&objective.Code, &objective.Title, &objective.Description); err != nil {
			return nil, err
		}
		objectives = append(objectives, &objective)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return objectives, nil
}
