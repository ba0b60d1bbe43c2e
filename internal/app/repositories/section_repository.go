package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atlasedu/accredia/internal/app/models"
	"github.com/atlasedu/accredia/internal/db"
	"github.com/atlasedu/accredia/internal/pkg/apperrors"
	"github.com/atlasedu/accredia/internal/pkg/dberrors"
)

// SectionRepository handles course offerings and instructor assignments
type SectionRepository struct {
	db *pgxpool.Pool
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(db *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{
		db: db,
	}
}

// CreateWithInstructor inserts the section and its instructor assignment
// in one transaction; either both rows land or neither does.
func (r *SectionRepository) CreateWithInstructor(ctx context.Context, section *models.Section, instructorID string) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO section (course_code, section_num, semester, year_offered, num_enrollments)
			VALUES ($1, $2, $3, $4, $5)`,
			section.CourseCode, section.SectionNum, section.Semester, section.Year, section.Enrollment,
		)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO teaches (course_code, section_num, semester, year_offered, instructor_id)
			VALUES ($1, $2, $3, $4, $5)`,
			section.CourseCode, section.SectionNum, section.Semester, section.Year, instructorID,
		)
		return err
	})
	if err != nil {
		switch {
		case dberrors.IsUniqueViolation(err):
			return apperrors.ErrSectionAlreadyExists
		case dberrors.IsConstraintViolation(err, "fk_section_course"):
			return apperrors.ErrCourseNotFound
		case dberrors.IsConstraintViolation(err, "fk_teaches_instructor"):
			return apperrors.ErrInstructorNotFound
		}
		return fmt.Errorf("error creating section: %w", err)
	}

	return nil
}

// Get retrieves a section by its composite key
func (r *SectionRepository) Get(ctx context.Context, key models.SectionKey) (*models.Section, error) {
	query := `
		SELECT course_code, section_num, semester, year_offered, num_enrollments
		FROM section
		WHERE course_code = $1 AND section_num = $2 AND semester = $3 AND year_offered = $4
	`

	var section models.Section
	err := r.db.QueryRow(ctx, query, key.CourseCode, key.SectionNum, key.Semester, key.Year).Scan(
		&section.CourseCode,
		&section.SectionNum,
		&section.Semester,
		&section.Year,
		&section.Enrollment,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSectionNotFound
		}
		return nil, fmt.Errorf("error retrieving section: %w", err)
	}

	return &section, nil
}

// List retrieves all sections, newest term first
func (r *SectionRepository) List(ctx context.Context) ([]*models.Section, error) {
	query := `
		SELECT course_code, section_num, semester, year_offered, num_enrollments
		FROM section
		ORDER BY year_offered DESC,
		         CASE semester WHEN 'Fall' THEN 3 WHEN 'Summer' THEN 2 WHEN 'Spring' THEN 1 END DESC,
		         course_code, section_num
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*models.Section
	for rows.Next() {
		var section models.Section
		if err := rows.Scan(
			&section.CourseCode,
			&section.SectionNum,
			&section.Semester,
			&section.Year,
			&section.Enrollment,
		); err != nil {
			return nil, err
		}
		sections = append(sections, &section)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sections, nil
}

// UpdateEnrollment changes the enrollment count of a section
func (r *SectionRepository) UpdateEnrollment(ctx context.Context, key models.SectionKey, enrollment int) error {
	query := `
		UPDATE section SET num_enrollments = $1
		WHERE course_code = $2 AND section_num = $3 AND semester = $4 AND year_offered = $5
	`

	cmdTag, err := r.db.Exec(ctx, query, enrollment, key.CourseCode, key.SectionNum, key.Semester, key.Year)
	if err != nil {
		return fmt.Errorf("error updating section enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSectionNotFound
	}

	return nil
}

// DeleteCascade removes a section and everything hanging off it, in
// order: evaluations, evaluation methods, the teaching assignment, then
// the section itself. One transaction; all or nothing.
func (r *SectionRepository) DeleteCascade(ctx context.Context, key models.SectionKey) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		where := `course_code = $1 AND section_num = $2 AND semester = $3 AND year_offered = $4`
		args := []interface{}{key.CourseCode, key.SectionNum, key.Semester, key.Year}

		if _, err := tx.Exec(ctx, `DELETE FROM evaluation WHERE `+where, args...); err != nil {
			return fmt.Errorf("error deleting evaluations: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM evaluation_method WHERE `+where, args...); err != nil {
			return fmt.Errorf("error deleting evaluation methods: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM teaches WHERE `+where, args...); err != nil {
			return fmt.Errorf("error deleting teaching assignment: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM section WHERE `+where, args...)
		if err != nil {
			return fmt.Errorf("error deleting section: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrSectionNotFound
		}

		return nil
	})
}

// Instructor returns the instructor assigned to a section, or NotFound
// when no assignment exists.
func (r *SectionRepository) Instructor(ctx context.Context, key models.SectionKey) (*models.Instructor, error) {
	query := `
		SELECT i.instructor_id, i.first_name, i.middle_name, i.last_name, i.email_id, i.phone_number, i.status
		FROM teaches t
		JOIN instructor i ON t.instructor_id = i.instructor_id
		WHERE t.course_code = $1 AND t.section_num = $2 AND t.semester = $3 AND t.year_offered = $4
	`

	var instructor models.Instructor
	err := r.db.QueryRow(ctx, query, key.CourseCode, key.SectionNum, key.Semester, key.Year).Scan(
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
		return nil, fmt.Errorf("error retrieving section instructor: %w", err)
	}

	return &instructor, nil
}

// SectionsForEvaluation lists the sections an instructor teaches in a
// term, each with the number of evaluation rows already recorded for the
// given degree.
func (r *SectionRepository) SectionsForEvaluation(ctx context.Context, degree models.DegreeKey, semester models.Semester, year int, instructorID string) ([]models.SectionEvalSummary, error) {
	query := `
		SELECT s.course_code, s.section_num, c.course_name,
		       (SELECT COUNT(*) FROM evaluation e
		        WHERE e.course_code = s.course_code
		          AND e.section_num = s.section_num
		          AND e.semester = s.semester
		          AND e.year_offered = s.year_offered
		          AND e.degree_name = $1
		          AND e.degree_level = $2) AS eval_count
		FROM teaches t
		JOIN section s ON t.course_code = s.course_code
		             AND t.section_num = s.section_num
		             AND t.semester = s.semester
		             AND t.year_offered = s.year_offered
		JOIN course c ON s.course_code = c.course_code
		WHERE t.instructor_id = $3 AND s.semester = $4 AND s.year_offered = $5
		ORDER BY s.course_code, s.section_num
	`

	rows, err := r.db.Query(ctx, query, degree.Name, degree.Level, instructorID, semester, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.SectionEvalSummary
	for rows.Next() {
		var summary models.SectionEvalSummary
		if err := rows.Scan(&summary.CourseCode, &summary.SectionNum, &summary.CourseName, &summary.EvalCount); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
