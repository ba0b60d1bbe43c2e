package services

import (
	"context"
	"time"

	"github.com/atlasedu/accredia/internal/app/models"
	"github.com/atlasedu/accredia/internal/pkg/apperrors"
)

// nowFunc is swapped out in tests to pin the current year.
var nowFunc = time.Now

// OfferingService defines the interface for section scheduling operations
type OfferingService interface {
	CreateSection(ctx context.Context, section *models.Section, instructorID string) error
	GetSection(ctx context.Context, key models.SectionKey) (*models.Section, error)
	ListSections(ctx context.Context) ([]*models.Section, error)
	UpdateEnrollment(ctx context.Context, key models.SectionKey, enrollment int) error
	DeleteSection(ctx context.Context, key models.SectionKey) error
	SectionInstructor(ctx context.Context, key models.SectionKey) (*models.Instructor, error)
	SectionsForEvaluation(ctx context.Context, degree models.DegreeKey, semester models.Semester, year int, instructorID string) ([]models.SectionEvalSummary, error)
}

type sectionStore interface {
	CreateWithInstructor(ctx context.Context, section *models.Section, instructorID string) error
	Get(ctx context.Context, key models.SectionKey) (*models.Section, error)
	List(ctx context.Context) ([]*models.Section, error)
	UpdateEnrollment(ctx context.Context, key models.SectionKey, enrollment int) error
	DeleteCascade(ctx context.Context, key models.SectionKey) error
	Instructor(ctx context.Context, key models.SectionKey) (*models.Instructor, error)
	SectionsForEvaluation(ctx context.Context, degree models.DegreeKey, semester models.Semester, year int, instructorID string) ([]models.SectionEvalSummary, error)
}

type instructorGetter interface {
	GetByID(ctx context.Context, id string) (*models.Instructor, error)
}

// offeringServiceImpl implements the OfferingService interface
type offeringServiceImpl struct {
	sectionRepo    sectionStore
	instructorRepo instructorGetter
}

// NewOfferingService creates a new offering service instance
func NewOfferingService(sectionRepo sectionStore, instructorRepo instructorGetter) OfferingService {
	return &offeringServiceImpl{
		sectionRepo:    sectionRepo,
		instructorRepo: instructorRepo,
	}
}

func validateSection(section *models.Section) error {
	if section == nil {
		return apperrors.NewValidationFailure("section is nil")
	}
	if section.CourseCode == "" {
		return apperrors.NewValidationFailure("course code cannot be empty")
	}
	if section.SectionNum < 1 || section.SectionNum > 999 {
		return apperrors.NewValidationFailure("section number must be between 1 and 999")
	}
	if !section.Semester.Valid() {
		return apperrors.NewValidationFailure("unknown semester: " + string(section.Semester))
	}
	if section.Enrollment <= 0 {
		return apperrors.NewValidationFailure("enrollment must be greater than zero")
	}
	return nil
}

// CreateSection schedules a section and assigns its instructor in one
// transaction. Archived instructors may be recorded for past terms but
// cannot be assigned to the current year or later.
func (s *offeringServiceImpl) CreateSection(ctx context.Context, section *models.Section, instructorID string) error {
	if err := validateSection(section); err != nil {
		return err
	}
	if instructorID == "" {
		return apperrors.NewValidationFailure("instructor ID cannot be empty")
	}

	instructor, err := s.instructorRepo.GetByID(ctx, instructorID)
	if err != nil {
		return err
	}
	if instructor.Status == models.StatusInactive && section.Year >= nowFunc().Year() {
		return apperrors.ErrInstructorArchived
	}

	return s.sectionRepo.CreateWithInstructor(ctx, section, instructorID)
}

func (s *offeringServiceImpl) GetSection(ctx context.Context, key models.SectionKey) (*models.Section, error) {
	return s.sectionRepo.Get(ctx, key)
}

func (s *offeringServiceImpl) ListSections(ctx context.Context) ([]*models.Section, error) {
	return s.sectionRepo.List(ctx)
}

// UpdateEnrollment changes a section's enrollment count. Existing
// evaluation rows keep their counts; resubmitting them is validated
// against the new enrollment.
func (s *offeringServiceImpl) UpdateEnrollment(ctx context.Context, key models.SectionKey, enrollment int) error {
	if enrollment <= 0 {
		return apperrors.NewValidationFailure("enrollment must be greater than zero")
	}
	return s.sectionRepo.UpdateEnrollment(ctx, key, enrollment)
}

// DeleteSection removes a section and everything hanging off it:
// evaluations, their methods and the instructor assignment, in one
// transaction.
func (s *offeringServiceImpl) DeleteSection(ctx context.Context, key models.SectionKey) error {
	return s.sectionRepo.DeleteCascade(ctx, key)
}

func (s *offeringServiceImpl) SectionInstructor(ctx context.Context, key models.SectionKey) (*models.Instructor, error) {
	return s.sectionRepo.Instructor(ctx, key)
}

// SectionsForEvaluation lists the sections an instructor teaches in a
// term, each with the number of evaluation rows already entered for the
// chosen degree.
func (s *offeringServiceImpl) SectionsForEvaluation(ctx context.Context, degree models.DegreeKey, semester models.Semester, year int, instructorID string) ([]models.SectionEvalSummary, error) {
	if !semester.Valid() {
		return nil, apperrors.NewValidationFailure("unknown semester: " + string(semester))
	}
	return s.sectionRepo.SectionsForEvaluation(ctx, degree, semester, year, instructorID)
}
