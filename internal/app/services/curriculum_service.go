package services

import (
	"context"
	"strings"

	"github.com/atlasedu/accredia/internal/app/models"
	"github.com/atlasedu/accredia/internal/pkg/apperrors"
)

// CurriculumService defines the interface for objectives and the links
// between degrees, courses and objectives
type CurriculumService interface {
	CreateObjective(ctx context.Context, objective *models.Objective) error
	ListObjectives(ctx context.Context) ([]*models.Objective, error)

	LinkDegreeCourse(ctx context.Context, link *models.DegreeCourse) error
	LinkDegreeObjective(ctx context.Context, link *models.DegreeObjective) error
	MapCourseObjective(ctx context.Context, mapping *models.CourseObjective) error

	DegreeCourses(ctx context.Context, degree models.DegreeKey) ([]models.DegreeCourse, error)
	DegreeObjectives(ctx context.Context, degree models.DegreeKey) ([]models.DegreeObjective, error)
	CourseObjectives(ctx context.Context, degree models.DegreeKey, courseCode string) ([]models.Objective, error)
}

type courseCreator interface {
	CreateIfAbsent(ctx context.Context, course *models.Course) error
}

type objectiveStore interface {
	Create(ctx context.Context, objective *models.Objective) error
	List(ctx context.Context) ([]*models.Objective, error)
}

type curriculumStore interface {
	LinkDegreeCourse(ctx context.Context, link *models.DegreeCourse) error
	LinkDegreeObjective(ctx context.Context, link *models.DegreeObjective) error
	MapCourseObjective(ctx context.Context, mapping *models.CourseObjective) error
	DegreeCourses(ctx context.Context, degree models.DegreeKey) ([]models.DegreeCourse, error)
	DegreeObjectives(ctx context.Context, degree models.DegreeKey) ([]models.DegreeObjective, error)
	CourseObjectives(ctx context.Context, degree models.DegreeKey, courseCode string) ([]models.Objective, error)
}

// curriculumServiceImpl implements the CurriculumService interface
type curriculumServiceImpl struct {
	courseRepo     courseCreator
	objectiveRepo  objectiveStore
	curriculumRepo curriculumStore
}

// NewCurriculumService creates a new curriculum service instance
func NewCurriculumService(courseRepo courseCreator, objectiveRepo objectiveStore, curriculumRepo curriculumStore) CurriculumService {
	return &curriculumServiceImpl{
		courseRepo:     courseRepo,
		objectiveRepo:  objectiveRepo,
		curriculumRepo: curriculumRepo,
	}
}

// CreateObjective registers a new learning objective.
func (s *curriculumServiceImpl) CreateObjective(ctx context.Context, objective *models.Objective) error {
	if objective == nil {
		return apperrors.NewValidationFailure("objective is nil")
	}
	if strings.TrimSpace(objective.Code) == "" {
		return apperrors.NewValidationFailure("objective code cannot be empty")
	}
	if strings.TrimSpace(objective.Title) == "" {
		return apperrors.NewValidationFailure("objective title cannot be empty")
	}
	return s.objectiveRepo.Create(ctx, objective)
}

func (s *curriculumServiceImpl) ListObjectives(ctx context.Context) ([]*models.Objective, error) {
	return s.objectiveRepo.List(ctx)
}

// LinkDegreeCourse attaches a course to a degree's curriculum. When the
// link carries a course name the course row itself is created on first
// use, so a curriculum can be described before the catalog is complete.
func (s *curriculumServiceImpl) LinkDegreeCourse(ctx context.Context, link *models.DegreeCourse) error {
	if link == nil {
		return apperrors.NewValidationFailure("degree-course link is nil")
	}
	if strings.TrimSpace(link.CourseCode) == "" {
		return apperrors.NewValidationFailure("course code cannot be empty")
	}
	if link.CourseName != "" {
		course := &models.Course{
			Code:   link.CourseCode,
			Name:   link.CourseName,
			Status: models.StatusActive,
		}
		if err := s.courseRepo.CreateIfAbsent(ctx, course); err != nil {
			return err
		}
	}
	return s.curriculumRepo.LinkDegreeCourse(ctx, link)
}

// LinkDegreeObjective claims a learning objective for a degree.
func (s *curriculumServiceImpl) LinkDegreeObjective(ctx context.Context, link *models.DegreeObjective) error {
	if link == nil {
		return apperrors.NewValidationFailure("degree-objective link is nil")
	}
	if strings.TrimSpace(link.ObjCode) == "" {
		return apperrors.NewValidationFailure("objective code cannot be empty")
	}
	return s.curriculumRepo.LinkDegreeObjective(ctx, link)
}

// MapCourseObjective declares that a course assesses an objective within a
// degree. Both the course-in-degree and objective-in-degree links must
// already exist; the repository reports which one is missing.
func (s *curriculumServiceImpl) MapCourseObjective(ctx context.Context, mapping *models.CourseObjective) error {
	if mapping == nil {
		return apperrors.NewValidationFailure("course-objective mapping is nil")
	}
	if strings.TrimSpace(mapping.CourseCode) == "" || strings.TrimSpace(mapping.ObjCode) == "" {
		return apperrors.NewValidationFailure("course code and objective code cannot be empty")
	}
	return s.curriculumRepo.MapCourseObjective(ctx, mapping)
}

func (s *curriculumServiceImpl) DegreeCourses(ctx context.Context, degree models.DegreeKey) ([]models.DegreeCourse, error) {
	return s.curriculumRepo.DegreeCourses(ctx, degree)
}

func (s *curriculumServiceImpl) DegreeObjectives(ctx context.Context, degree models.DegreeKey) ([]models.DegreeObjective, error) {
	return s.curriculumRepo.DegreeObjectives(ctx, degree)
}

func (s *curriculumServiceImpl) CourseObjectives(ctx context.Context, degree models.DegreeKey, courseCode string) ([]models.Objective, error) {
	return s.curriculumRepo.CourseObjectives(ctx, degree, courseCode)
}
