package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atlasedu/accredia/internal/app/models"
	"github.com/atlasedu/accredia/internal/pkg/apperrors"
	"github.com/atlasedu/accredia/internal/pkg/dberrors"
)

// CurriculumRepository handles the degree-course, degree-objective and
// course-objective links that make up the curriculum graph.
type CurriculumRepository struct {
	db *pgxpool.Pool
}

// NewCurriculumRepository creates a new curriculum repository
func NewCurriculumRepository(db *pgxpool.Pool) *CurriculumRepository {
	return &CurriculumRepository{
		db: db,
	}
}

// LinkDegreeCourse links a course into a degree with its core flag
func (r *CurriculumRepository) LinkDegreeCourse(ctx context.Context, link *models.DegreeCourse) error {
	query := `
		INSERT INTO degree_course (degree_name, degree_level, course_code, is_core)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, link.Degree.Name, link.Degree.Level, link.CourseCode, link.IsCore)
	if err != nil {
		switch {
		case dberrors.IsUniqueViolation(err):
			return apperrors.ErrLinkAlreadyExists
		case dberrors.IsConstraintViolation(err, "fk_dc_degree"):
			return apperrors.ErrDegreeNotFound
		case dberrors.IsConstraintViolation(err, "fk_dc_course"):
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error linking course to degree: %w", err)
	}

	return nil
}

// LinkDegreeObjective records that a degree claims to assess an objective
func (r *CurriculumRepository) LinkDegreeObjective(ctx context.Context, link *models.DegreeObjective) error {
	query := `
		INSERT INTO degree_objective (degree_name, degree_level, obj_code)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, link.Degree.Name, link.Degree.Level, link.ObjCode)
	if err != nil {
		switch {
		case dberrors.IsUniqueViolation(err):
			return apperrors.ErrLinkAlreadyExists
		case dberrors.IsConstraintViolation(err, "fk_do_degree"):
			return apperrors.ErrDegreeNotFound
		case dberrors.IsConstraintViolation(err, "fk_do_obj"):
			return apperrors.ErrObjectiveNotFound
		}
		return fmt.Errorf("error linking objective to degree: %w", err)
	}

	return nil
}

// MapCourseObjective maps an objective onto a course for one degree.
// Both parent links must already exist; the violated constraint tells us
// which prerequisite is missing.
func (r *CurriculumRepository) MapCourseObjective(ctx context.Context, mapping *models.CourseObjective) error {
	query := `
		INSERT INTO course_objective (degree_name, degree_level, course_code, obj_code)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, mapping.Degree.Name, mapping.Degree.Level, mapping.CourseCode, mapping.ObjCode)
	if err != nil {
		switch {
		case dberrors.IsUniqueViolation(err):
			return apperrors.ErrMappingAlreadyExists
		case dberrors.IsConstraintViolation(err, "fk_co_degree_course"):
			return apperrors.ErrCourseNotLinked
		case dberrors.IsConstraintViolation(err, "fk_co_degree_obj"):
			return apperrors.ErrObjectiveNotLinked
		}
		return fmt.Errorf("error mapping objective to course: %w", err)
	}

	return nil
}

// DegreeCourses lists the courses linked to a degree, joined with the
// catalog for names, ordered by course code.
func (r *CurriculumRepository) DegreeCourses(ctx context.Context, degree models.DegreeKey) ([]models.DegreeCourse, error) {
	query := `
		SELECT dc.course_code, dc.is_core, c.course_name
		FROM degree_course dc
		JOIN course c ON dc.course_code = c.course_code
		WHERE dc.degree_name = $1 AND dc.degree_level = $2
		ORDER BY c.course_code
	`

	rows, err := r.db.Query(ctx, query, degree.Name, degree.Level)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []models.DegreeCourse
	for rows.Next() {
		link := models.DegreeCourse{Degree: degree}
		if err := rows.Scan(&link.CourseCode, &link.IsCore, &link.CourseName); err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return links, nil
}

// DegreeObjectives lists the objectives a degree claims to assess.
func (r *CurriculumRepository) DegreeObjectives(ctx context.Context, degree models.DegreeKey) ([]models.DegreeObjective, error) {
	query := `
		SELECT do_.obj_code, o.title
		FROM degree_objective do_
		JOIN objective o ON do_.obj_code = o.obj_code
		WHERE do_.degree_name = $1 AND do_.degree_level = $2
		ORDER BY do_.obj_code
	`

	rows, err := r.db.Query(ctx, query, degree.Name, degree.Level)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []models.DegreeObjective
	for rows.Next() {
		link := models.DegreeObjective{Degree: degree}
		if err := rows.Scan(&link.ObjCode, &link.Title); err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return links, nil
}

// CourseObjectives lists the objectives mapped to a course under one
// degree, with catalog titles and descriptions.
func (r *CurriculumRepository) CourseObjectives(ctx context.Context, degree models.DegreeKey, courseCode string) ([]models.Objective, error) {
	query := `
		SELECT o.obj_code, o.title, o.description
		FROM course_objective co
		JOIN objective o ON co.obj_code = o.obj_code
		WHERE co.degree_name = $1 AND co.degree_level = $2 AND co.course_code = $3
		ORDER BY o.obj_code
	`

	rows, err := r.db.Query(ctx, query, degree.Name, degree.Level, courseCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var objectives []models.Objective
	for rows.Next() {
		var objective models.Objective
		if err := rows.Scan(&objective.Code, &objective.Title, &objective.Description); err != nil {
			return nil, err
		}
		objectives = append(objectives, objective)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return objectives, nil
}

// ObjectiveDegrees returns every degree that maps (course, objective) in
// its curriculum. Used to fan out evaluation saves to other degrees.
func (r *CurriculumRepository) ObjectiveDegrees(ctx context.Context, courseCode, objCode string) ([]models.DegreeKey, error) {
	query := `
		SELECT degree_name, degree_level
		FROM course_objective
		WHERE course_code = $1 AND obj_code = $2
		ORDER BY degree_name, degree_level
	`

	rows, err := r.db.Query(ctx, query, courseCode, objCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var degrees []models.DegreeKey
	for rows.Next() {
		var key models.DegreeKey
		if err := rows.Scan(&key.Name, &key.Level); err != nil {
			return nil, err
		}
		degrees = append(degrees, key)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return degrees, nil
}
