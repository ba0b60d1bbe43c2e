package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atlasedu/accredia/internal/app/models"
	"github.com/atlasedu/accredia/internal/db"
	"github.com/atlasedu/accredia/internal/pkg/apperrors"
	"github.com/atlasedu/accredia/internal/pkg/dberrors"
)

// EvaluationRepository handles grade-distribution rows and their
// assessment methods.
type EvaluationRepository struct {
	db *pgxpool.Pool
}

// NewEvaluationRepository creates a new evaluation repository
func NewEvaluationRepository(db *pgxpool.Pool) *EvaluationRepository {
	return &EvaluationRepository{
		db: db,
	}
}

// ReplaceAll writes a full evaluation submission in one transaction.
// Each row is upserted with replace semantics and its method list is
// deleted and reinserted, so resubmitting overwrites rather than merges.
func (r *EvaluationRepository) ReplaceAll(ctx context.Context, evaluations []*models.Evaluation) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, eval := range evaluations {
			if err := replaceOne(ctx, tx, eval); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		switch {
		case dberrors.IsConstraintViolation(err, "fk_eval_section"):
			return apperrors.ErrSectionNotFound
		case dberrors.IsConstraintViolation(err, "fk_eval_co"):
			return apperrors.ErrMappingNotFound
		}
		return err
	}

	return nil
}

func replaceOne(ctx context.Context, tx pgx.Tx, eval *models.Evaluation) error {
	keyArgs := []interface{}{
		eval.Section.CourseCode, eval.Section.SectionNum, eval.Section.Semester, eval.Section.Year,
		eval.Degree.Name, eval.Degree.Level, eval.ObjCode,
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO evaluation (course_code, section_num, semester, year_offered,
		                        degree_name, degree_level, obj_code,
		                        count_a, count_b, count_c, count_f, improvement)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT ON CONSTRAINT pk_evaluation DO UPDATE SET
		    count_a = EXCLUDED.count_a,
		    count_b = EXCLUDED.count_b,
		    count_c = EXCLUDED.count_c,
		    count_f = EXCLUDED.count_f,
		    improvement = EXCLUDED.improvement`,
		append(append([]interface{}{}, keyArgs...),
			eval.CountA, eval.CountB, eval.CountC, eval.CountF, eval.Improvement)...,
	)
	if err != nil {
		return fmt.Errorf("error writing evaluation for objective %s: %w", eval.ObjCode, err)
	}

	_, err = tx.Exec(ctx, `
		DELETE FROM evaluation_method
		WHERE course_code = $1 AND section_num = $2 AND semester = $3 AND year_offered = $4
		  AND degree_name = $5 AND degree_level = $6 AND obj_code = $7`,
		keyArgs...,
	)
	if err != nil {
		return fmt.Errorf("error clearing evaluation methods for objective %s: %w", eval.ObjCode, err)
	}

	for _, method := range eval.Methods {
		_, err = tx.Exec(ctx, `
			INSERT INTO evaluation_method (course_code, section_num, semester, year_offered,
			                               degree_name, degree_level, obj_code, method_name)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT DO NOTHING`,
			append(append([]interface{}{}, keyArgs...), method)...,
		)
		if err != nil {
			return fmt.Errorf("error writing evaluation method %q: %w", method, err)
		}
	}

	return nil
}

// FormState reconstructs the evaluation edit form for one section and
// degree: every mapped objective, left-joined with any saved counts, plus
// its method list.
func (r *EvaluationRepository) FormState(ctx context.Context, section models.SectionKey, degree models.DegreeKey) ([]models.EvaluationFormRow, error) {
	query := `
		SELECT o.obj_code, o.title, o.description,
		       COALESCE(e.count_a, 0), COALESCE(e.count_b, 0), COALESCE(e.count_c, 0), COALESCE(e.count_f, 0),
		       COALESCE(e.improvement, ''),
		       e.obj_code IS NOT NULL AS has_data
		FROM course_objective co
		JOIN objective o ON co.obj_code = o.obj_code
		LEFT JOIN evaluation e ON e.obj_code = co.obj_code
		                      AND e.degree_name = co.degree_name
		                      AND e.degree_level = co.degree_level
		                      AND e.course_code = co.course_code
		                      AND e.section_num = $1
		                      AND e.semester = $2
		                      AND e.year_offered = $3
		WHERE co.degree_name = $4 AND co.degree_level = $5 AND co.course_code = $6
		ORDER BY o.obj_code
	`

	rows, err := r.db.Query(ctx, query,
		section.SectionNum, section.Semester, section.Year,
		degree.Name, degree.Level, section.CourseCode,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var form []models.EvaluationFormRow
	index := make(map[string]int)
	for rows.Next() {
		var row models.EvaluationFormRow
		if err := rows.Scan(
			&row.Objective.Code, &row.Objective.Title, &row.Objective.Description,
			&row.CountA, &row.CountB, &row.CountC, &row.CountF,
			&row.Improvement, &row.HasData,
		); err != nil {
			return nil, err
		}
		index[row.Objective.Code] = len(form)
		form = append(form, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(form) == 0 {
		return form, nil
	}

	methodRows, err := r.db.Query(ctx, `
		SELECT obj_code, method_name
		FROM evaluation_method
		WHERE course_code = $1 AND section_num = $2 AND semester = $3 AND year_offered = $4
		  AND degree_name = $5 AND degree_level = $6
		ORDER BY obj_code, method_name`,
		section.CourseCode, section.SectionNum, section.Semester, section.Year,
		degree.Name, degree.Level,
	)
	if err != nil {
		return nil, err
	}
	defer methodRows.Close()

	for methodRows.Next() {
		var objCode, method string
		if err := methodRows.Scan(&objCode, &method); err != nil {
			return nil, err
		}
		if i, ok := index[objCode]; ok {
			form[i].Methods = append(form[i].Methods, method)
		}
	}
	if err := methodRows.Err(); err != nil {
		return nil, err
	}

	return form, nil
}
