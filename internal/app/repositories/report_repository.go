package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atlasedu/accredia/internal/app/models"
)

// termOrdinalSQL orders terms chronologically. Must stay in step with
// models.TermOrdinal.
const termOrdinalSQL = `(%s.year_offered * 10 + CASE %s.semester
	WHEN 'Spring' THEN 1
	WHEN 'Summer' THEN 2
	WHEN 'Fall' THEN 3 END)`

// ReportRepository runs the read-only report queries. Reports never write,
// so everything here queries the pool directly.
type ReportRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// DegreeDetail assembles the four degree-level listings in one call:
// required courses (core first), claimed objectives, sections offered in
// the year range, and the course-to-objective map.
func (r *ReportRepository) DegreeDetail(ctx context.Context, degree models.DegreeKey, yearFrom, yearTo int) (*models.DegreeDetail, error) {
	detail := &models.DegreeDetail{}
	degreeEq := squirrel.Eq{"dc.degree_name": degree.Name, "dc.degree_level": degree.Level}

	query, args, err := r.sb.Select("dc.course_code", "c.course_name", "dc.is_core").
		From("degree_course dc").
		Join("course c ON dc.course_code = c.course_code").
		Where(degreeEq).
		OrderBy("dc.is_core DESC", "dc.course_code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building degree course query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		dc := models.DegreeCourse{Degree: degree}
		if err := rows.Scan(&dc.CourseCode, &dc.CourseName, &dc.IsCore); err != nil {
			rows.Close()
			return nil, err
		}
		detail.Courses = append(detail.Courses, dc)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	query, args, err = r.sb.Select("dob.obj_code", "o.title").
		From("degree_objective dob").
		Join("objective o ON dob.obj_code = o.obj_code").
		Where(squirrel.Eq{"dob.degree_name": degree.Name, "dob.degree_level": degree.Level}).
		OrderBy("dob.obj_code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building degree objective query: %w", err)
	}

	rows, err = r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		dob := models.DegreeObjective{Degree: degree}
		if err := rows.Scan(&dob.ObjCode, &dob.Title); err != nil {
			rows.Close()
			return nil, err
		}
		detail.Objectives = append(detail.Objectives, dob)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	query, args, err = r.sb.Select(
		"s.course_code", "c.course_name", "s.section_num", "s.semester",
		"s.year_offered", "s.num_enrollments",
		"COALESCE(i.first_name, '')", "COALESCE(i.last_name, '')",
	).
		From("section s").
		Join("degree_course dc ON s.course_code = dc.course_code").
		Join("course c ON s.course_code = c.course_code").
		LeftJoin("teaches t ON s.course_code = t.course_code AND s.section_num = t.section_num"+
			" AND s.semester = t.semester AND s.year_offered = t.year_offered").
		LeftJoin("instructor i ON t.instructor_id = i.instructor_id").
		Where(degreeEq).
		Where(squirrel.GtOrEq{"s.year_offered": yearFrom}).
		Where(squirrel.LtOrEq{"s.year_offered": yearTo}).
		OrderBy(termOrdinal("s")+" DESC", "s.course_code", "s.section_num").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building degree section query: %w", err)
	}

	detail.Sections, err = r.querySectionListings(ctx, query, args)
	if err != nil {
		return nil, err
	}

	query, args, err = r.sb.Select("co.course_code", "c.course_name", "co.obj_code", "o.title").
		From("course_objective co").
		Join("course c ON co.course_code = c.course_code").
		Join("objective o ON co.obj_code = o.obj_code").
		Where(squirrel.Eq{"co.degree_name": degree.Name, "co.degree_level": degree.Level}).
		OrderBy("co.course_code", "co.obj_code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building objective map query: %w", err)
	}

	rows, err = r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		co := models.CourseObjective{Degree: degree}
		if err := rows.Scan(&co.CourseCode, &co.CourseName, &co.ObjCode, &co.Title); err != nil {
			return nil, err
		}
		detail.ObjMap = append(detail.ObjMap, co)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return detail, nil
}

// PassingRate lists every evaluated (degree, course, section, objective)
// in a term whose pass rate meets the threshold. A, B and C count as
// passing; rows with no graded students are excluded before the division.
func (r *ReportRepository) PassingRate(ctx context.Context, semester models.Semester, year int, threshold float64) ([]models.PassingRateRow, error) {
	const total = "(e.count_a + e.count_b + e.count_c + e.count_f)"
	const passed = "(e.count_a + e.count_b + e.count_c)"

	query, args, err := r.sb.Select(
		"e.degree_name", "e.degree_level", "e.course_code", "e.section_num", "e.obj_code",
		passed, total,
		passed+" * 100.0 / NULLIF("+total+", 0) AS pass_rate",
		`COALESCE((SELECT STRING_AGG(em.method_name, ', ' ORDER BY em.method_name)
			FROM evaluation_method em
			WHERE em.course_code = e.course_code AND em.section_num = e.section_num
			  AND em.semester = e.semester AND em.year_offered = e.year_offered
			  AND em.degree_name = e.degree_name AND em.degree_level = e.degree_level
			  AND em.obj_code = e.obj_code), '')`,
	).
		From("evaluation e").
		Where(squirrel.Eq{"e.semester": semester, "e.year_offered": year}).
		Where(total + " > 0").
		Where(passed+" * 100.0 / "+total+" >= ?", threshold).
		OrderBy("e.degree_name", "e.degree_level", "e.course_code", "e.section_num", "e.obj_code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building passing rate query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.PassingRateRow
	for rows.Next() {
		var row models.PassingRateRow
		if err := rows.Scan(
			&row.Degree.Name, &row.Degree.Level, &row.CourseCode, &row.SectionNum, &row.ObjCode,
			&row.Passed, &row.Total, &row.PassRate, &row.Methods,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// CourseSections lists a course's sections within an inclusive term range,
// chronological order, with the assigned instructor when one exists.
func (r *ReportRepository) CourseSections(ctx context.Context, courseCode string, termRange models.TermRange) ([]models.SectionListing, error) {
	builder := r.sectionListingBuilder().
		Where(squirrel.Eq{"s.course_code": courseCode})

	query, args, err := r.withTermRange(builder, termRange).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building course section query: %w", err)
	}

	return r.querySectionListings(ctx, query, args)
}

// InstructorSections lists every section an instructor taught within an
// inclusive term range.
func (r *ReportRepository) InstructorSections(ctx context.Context, instructorID string, termRange models.TermRange) ([]models.SectionListing, error) {
	builder := r.sectionListingBuilder().
		Where(squirrel.Eq{"t.instructor_id": instructorID})

	query, args, err := r.withTermRange(builder, termRange).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building instructor section query: %w", err)
	}

	return r.querySectionListings(ctx, query, args)
}

// EvaluationStatus compares, per section in a term, how many evaluation
// rows actually carry grades against how many the course's objective
// mappings call for, plus how many include improvement notes.
func (r *ReportRepository) EvaluationStatus(ctx context.Context, semester models.Semester, year int) ([]models.EvaluationStatusRow, error) {
	query, args, err := r.sb.Select(
		"s.course_code", "s.section_num", "c.course_name",
		`(SELECT COUNT(*) FROM evaluation e
			WHERE e.course_code = s.course_code AND e.section_num = s.section_num
			  AND e.semester = s.semester AND e.year_offered = s.year_offered
			  AND e.count_a + e.count_b + e.count_c + e.count_f > 0) AS actual_evals`,
		`(SELECT COUNT(*) FROM course_objective co
			WHERE co.course_code = s.course_code) AS expected_evals`,
		`(SELECT COUNT(*) FROM evaluation e
			WHERE e.course_code = s.course_code AND e.section_num = s.section_num
			  AND e.semester = s.semester AND e.year_offered = s.year_offered
			  AND e.improvement <> '') AS improvement_count`,
	).
		From("section s").
		Join("course c ON s.course_code = c.course_code").
		Where(squirrel.Eq{"s.semester": semester, "s.year_offered": year}).
		OrderBy("s.course_code", "s.section_num").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building evaluation status query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.EvaluationStatusRow
	for rows.Next() {
		var row models.EvaluationStatusRow
		if err := rows.Scan(
			&row.CourseCode, &row.SectionNum, &row.CourseName,
			&row.ActualEvals, &row.ExpectedEvals, &row.ImprovementCount,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *ReportRepository) sectionListingBuilder() squirrel.SelectBuilder {
	return r.sb.Select(
		"s.course_code", "c.course_name", "s.section_num", "s.semester",
		"s.year_offered", "s.num_enrollments",
		"COALESCE(i.first_name, '')", "COALESCE(i.last_name, '')",
	).
		From("section s").
		Join("course c ON s.course_code = c.course_code").
		LeftJoin("teaches t ON s.course_code = t.course_code AND s.section_num = t.section_num" +
			" AND s.semester = t.semester AND s.year_offered = t.year_offered").
		LeftJoin("instructor i ON t.instructor_id = i.instructor_id")
}

func (r *ReportRepository) withTermRange(builder squirrel.SelectBuilder, termRange models.TermRange) squirrel.SelectBuilder {
	ordinal := termOrdinal("s")
	return builder.
		Where(ordinal+" >= ?", models.TermOrdinal(termRange.StartYear, termRange.StartSemester)).
		Where(ordinal+" <= ?", models.TermOrdinal(termRange.EndYear, termRange.EndSemester)).
		OrderBy(ordinal, "s.course_code", "s.section_num")
}

func (r *ReportRepository) querySectionListings(ctx context.Context, query string, args []interface{}) ([]models.SectionListing, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.SectionListing
	for rows.Next() {
		var row models.SectionListing
		if err := rows.Scan(
			&row.CourseCode, &row.CourseName, &row.SectionNum, &row.Semester,
			&row.Year, &row.Enrollment,
			&row.InstructorFirstName, &row.InstructorLastName,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func termOrdinal(alias string) string {
	return fmt.Sprintf(termOrdinalSQL, alias, alias)
}
