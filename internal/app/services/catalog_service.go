package services

import (
	"context"
	"strings"

	"github.com/atlasedu/accredia/internal/app/models"
	"github.com/atlasedu/accredia/internal/pkg/apperrors"
	"github.com/atlasedu/accredia/internal/pkg/logger"
)

// RemovalOutcome reports what ArchiveOrDelete actually did.
type RemovalOutcome string

const (
	// OutcomeArchived means the entity was referenced and got flagged
	// Inactive instead of removed.
	OutcomeArchived RemovalOutcome = "archived"
	// OutcomeDeleted means nothing referenced the entity and the row was
	// removed for real.
	OutcomeDeleted RemovalOutcome = "deleted"
)

// CatalogService defines the interface for degree, course and instructor
// catalog operations
type CatalogService interface {
	CreateDegree(ctx context.Context, degree *models.Degree) error
	CreateCourse(ctx context.Context, course *models.Course) error
	CreateInstructor(ctx context.Context, instructor *models.Instructor) error
	UpdateInstructor(ctx context.Context, instructor *models.Instructor) error

	GetDegree(ctx context.Context, key models.DegreeKey) (*models.Degree, error)
	GetInstructor(ctx context.Context, id string) (*models.Instructor, error)
	ListDegrees(ctx context.Context, activeOnly bool) ([]*models.Degree, error)
	ListCourses(ctx context.Context, activeOnly bool) ([]*models.Course, error)
	ListInstructors(ctx context.Context, activeOnly bool) ([]*models.Instructor, error)

	ArchiveOrDeleteDegree(ctx context.Context, key models.DegreeKey) (RemovalOutcome, error)
	ArchiveOrDeleteCourse(ctx context.Context, code string) (RemovalOutcome, error)
	ArchiveOrDeleteInstructor(ctx context.Context, id string) (RemovalOutcome, error)

	ReactivateDegree(ctx context.Context, key models.DegreeKey) error
	ReactivateCourse(ctx context.Context, code string) error
	ReactivateInstructor(ctx context.Context, id string) error
}

// degreeStore is the slice of DegreeRepository the catalog needs.
type degreeStore interface {
	Create(ctx context.Context, degree *models.Degree) error
	GetByKey(ctx context.Context, key models.DegreeKey) (*models.Degree, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Degree, error)
	CountReferences(ctx context.Context, key models.DegreeKey) (int, error)
	SetStatus(ctx context.Context, key models.DegreeKey, status models.Status) error
	Delete(ctx context.Context, key models.DegreeKey) error
}

type courseStore interface {
	Create(ctx context.Context, course *models.Course) error
	List(ctx context.Context, activeOnly bool) ([]*models.Course, error)
	CountReferences(ctx context.Context, code string) (int, error)
	SetStatus(ctx context.Context, code string, status models.Status) error
	Delete(ctx context.Context, code string) error
}

type instructorStore interface {
	Create(ctx context.Context, instructor *models.Instructor) error
	GetByID(ctx context.Context, id string) (*models.Instructor, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Instructor, error)
	Update(ctx context.Context, instructor *models.Instructor) error
	CountReferences(ctx context.Context, id string) (int, error)
	SetStatus(ctx context.Context, id string, status models.Status) error
	Delete(ctx context.Context, id string) error
}

// catalogServiceImpl implements the CatalogService interface
type catalogServiceImpl struct {
	degreeRepo     degreeStore
	courseRepo     courseStore
	instructorRepo instructorStore
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(degreeRepo degreeStore, courseRepo courseStore, instructorRepo instructorStore) CatalogService {
	return &catalogServiceImpl{
		degreeRepo:     degreeRepo,
		courseRepo:     courseRepo,
		instructorRepo: instructorRepo,
	}
}

func validateDegree(degree *models.Degree) error {
	if degree == nil {
		return apperrors.NewValidationFailure("degree is nil")
	}
	if strings.TrimSpace(degree.Name) == "" {
		return apperrors.NewValidationFailure("degree name cannot be empty")
	}
	if !degree.Level.Valid() {
		return apperrors.NewValidationFailure("unknown degree level: " + string(degree.Level))
	}
	return nil
}

func validateInstructor(instructor *models.Instructor) error {
	if instructor == nil {
		return apperrors.NewValidationFailure("instructor is nil")
	}
	if strings.TrimSpace(instructor.ID) == "" {
		return apperrors.NewValidationFailure("instructor ID cannot be empty")
	}
	if strings.TrimSpace(instructor.FirstName) == "" || strings.TrimSpace(instructor.LastName) == "" {
		return apperrors.NewValidationFailure("instructor first and last name cannot be empty")
	}
	if !strings.Contains(instructor.Email, "@") {
		return apperrors.NewValidationFailure("instructor email is not valid")
	}
	return nil
}

// CreateDegree registers a new degree program.
func (s *catalogServiceImpl) CreateDegree(ctx context.Context, degree *models.Degree) error {
	if err := validateDegree(degree); err != nil {
		return err
	}
	degree.Status = models.StatusActive
	return s.degreeRepo.Create(ctx, degree)
}

// CreateCourse registers a new course in the catalog.
func (s *catalogServiceImpl) CreateCourse(ctx context.Context, course *models.Course) error {
	if course == nil {
		return apperrors.NewValidationFailure("course is nil")
	}
	if strings.TrimSpace(course.Code) == "" {
		return apperrors.NewValidationFailure("course code cannot be empty")
	}
	if strings.TrimSpace(course.Name) == "" {
		return apperrors.NewValidationFailure("course name cannot be empty")
	}
	course.Status = models.StatusActive
	return s.courseRepo.Create(ctx, course)
}

// CreateInstructor registers a new instructor.
func (s *catalogServiceImpl) CreateInstructor(ctx context.Context, instructor *models.Instructor) error {
	if err := validateInstructor(instructor); err != nil {
		return err
	}
	instructor.Status = models.StatusActive
	return s.instructorRepo.Create(ctx, instructor)
}

// UpdateInstructor replaces an instructor's contact details. Status is not
// touched here; archiving goes through ArchiveOrDeleteInstructor.
func (s *catalogServiceImpl) UpdateInstructor(ctx context.Context, instructor *models.Instructor) error {
	if err := validateInstructor(instructor); err != nil {
		return err
	}
	return s.instructorRepo.Update(ctx, instructor)
}

func (s *catalogServiceImpl) GetDegree(ctx context.Context, key models.DegreeKey) (*models.Degree, error) {
	return s.degreeRepo.GetByKey(ctx, key)
}

func (s *catalogServiceImpl) GetInstructor(ctx context.Context, id string) (*models.Instructor, error) {
	return s.instructorRepo.GetByID(ctx, id)
}

func (s *catalogServiceImpl) ListDegrees(ctx context.Context, activeOnly bool) ([]*models.Degree, error) {
	return s.degreeRepo.List(ctx, activeOnly)
}

func (s *catalogServiceImpl) ListCourses(ctx context.Context, activeOnly bool) ([]*models.Course, error) {
	return s.courseRepo.List(ctx, activeOnly)
}

func (s *catalogServiceImpl) ListInstructors(ctx context.Context, activeOnly bool) ([]*models.Instructor, error) {
	return s.instructorRepo.List(ctx, activeOnly)
}

// ArchiveOrDeleteDegree removes a degree if nothing in the curriculum
// references it, otherwise flags it Inactive so historical links survive.
func (s *catalogServiceImpl) ArchiveOrDeleteDegree(ctx context.Context, key models.DegreeKey) (RemovalOutcome, error) {
	refs, err := s.degreeRepo.CountReferences(ctx, key)
	if err != nil {
		return "", err
	}
	if refs > 0 {
		if err := s.degreeRepo.SetStatus(ctx, key, models.StatusInactive); err != nil {
			return "", err
		}
		logger.Info().Str("degree", key.Name).Str("level", string(key.Level)).
			Int("references", refs).Msg("Degree archived")
		return OutcomeArchived, nil
	}
	if err := s.degreeRepo.Delete(ctx, key); err != nil {
		return "", err
	}
	return OutcomeDeleted, nil
}

// ArchiveOrDeleteCourse removes a course with no sections or degree links,
// and archives one that has either.
func (s *catalogServiceImpl) ArchiveOrDeleteCourse(ctx context.Context, code string) (RemovalOutcome, error) {
	refs, err := s.courseRepo.CountReferences(ctx, code)
	if err != nil {
		return "", err
	}
	if refs > 0 {
		if err := s.courseRepo.SetStatus(ctx, code, models.StatusInactive); err != nil {
			return "", err
		}
		logger.Info().Str("course", code).Int("references", refs).Msg("Course archived")
		return OutcomeArchived, nil
	}
	if err := s.courseRepo.Delete(ctx, code); err != nil {
		return "", err
	}
	return OutcomeDeleted, nil
}

// ArchiveOrDeleteInstructor removes an instructor who never taught and
// archives one with teaching history.
func (s *catalogServiceImpl) ArchiveOrDeleteInstructor(ctx context.Context, id string) (RemovalOutcome, error) {
	refs, err := s.instructorRepo.CountReferences(ctx, id)
	if err != nil {
		return "", err
	}
	if refs > 0 {
		if err := s.instructorRepo.SetStatus(ctx, id, models.StatusInactive); err != nil {
			return "", err
		}
		logger.Info().Str("instructor", id).Int("sections", refs).Msg("Instructor archived")
		return OutcomeArchived, nil
	}
	if err := s.instructorRepo.Delete(ctx, id); err != nil {
		return "", err
	}
	return OutcomeDeleted, nil
}

// ReactivateDegree flips an archived degree back to Active.
func (s *catalogServiceImpl) ReactivateDegree(ctx context.Context, key models.DegreeKey) error {
	return s.degreeRepo.SetStatus(ctx, key, models.StatusActive)
}

// ReactivateCourse flips an archived course back to Active.
func (s *catalogServiceImpl) ReactivateCourse(ctx context.Context, code string) error {
	return s.courseRepo.SetStatus(ctx, code, models.StatusActive)
}

// ReactivateInstructor flips an archived instructor back to Active.
func (s *catalogServiceImpl) ReactivateInstructor(ctx context.Context, id string) error {
	return s.instructorRepo.SetStatus(ctx, id, models.StatusActive)
}
