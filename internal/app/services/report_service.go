package services

import (
	"context"

	"github.com/atlasedu/accredia/internal/app/models"
	"github.com/atlasedu/accredia/internal/pkg/apperrors"
)

// ReportService defines the interface for the read-only accreditation
// reports
type ReportService interface {
	DegreeDetail(ctx context.Context, degree models.DegreeKey, yearFrom, yearTo int) (*models.DegreeDetail, error)
	PassingRate(ctx context.Context, semester models.Semester, year int, threshold float64) ([]models.PassingRateRow, error)
	CourseSections(ctx context.Context, courseCode string, termRange models.TermRange) ([]models.SectionListing, error)
	InstructorSections(ctx context.Context, instructorID string, termRange models.TermRange) ([]models.SectionListing, error)
	EvaluationStatus(ctx context.Context, semester models.Semester, year int) ([]models.EvaluationStatusRow, error)
}

type reportStore interface {
	DegreeDetail(ctx context.Context, degree models.DegreeKey, yearFrom, yearTo int) (*models.DegreeDetail, error)
	PassingRate(ctx context.Context, semester models.Semester, year int, threshold float64) ([]models.PassingRateRow, error)
	CourseSections(ctx context.Context, courseCode string, termRange models.TermRange) ([]models.SectionListing, error)
	InstructorSections(ctx context.Context, instructorID string, termRange models.TermRange) ([]models.SectionListing, error)
	EvaluationStatus(ctx context.Context, semester models.Semester, year int) ([]models.EvaluationStatusRow, error)
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	reportRepo reportStore
}

// NewReportService creates a new report service instance
func NewReportService(reportRepo reportStore) ReportService {
	return &reportServiceImpl{
		reportRepo: reportRepo,
	}
}

func validateTermRange(termRange models.TermRange) error {
	if !termRange.StartSemester.Valid() || !termRange.EndSemester.Valid() {
		return apperrors.NewValidationFailure("unknown semester in term range")
	}
	start := models.TermOrdinal(termRange.StartYear, termRange.StartSemester)
	end := models.TermOrdinal(termRange.EndYear, termRange.EndSemester)
	if start > end {
		return apperrors.NewValidationFailure("term range start is after its end")
	}
	return nil
}

func (s *reportServiceImpl) DegreeDetail(ctx context.Context, degree models.DegreeKey, yearFrom, yearTo int) (*models.DegreeDetail, error) {
	if yearFrom > yearTo {
		return nil, apperrors.NewValidationFailure("year range start is after its end")
	}
	return s.reportRepo.DegreeDetail(ctx, degree, yearFrom, yearTo)
}

func (s *reportServiceImpl) PassingRate(ctx context.Context, semester models.Semester, year int, threshold float64) ([]models.PassingRateRow, error) {
	if !semester.Valid() {
		return nil, apperrors.NewValidationFailure("unknown semester: " + string(semester))
	}
	if threshold < 0 || threshold > 100 {
		return nil, apperrors.NewValidationFailure("threshold must be between 0 and 100")
	}
	return s.reportRepo.PassingRate(ctx, semester, year, threshold)
}

func (s *reportServiceImpl) CourseSections(ctx context.Context, courseCode string, termRange models.TermRange) ([]models.SectionListing, error) {
	if err := validateTermRange(termRange); err != nil {
		return nil, err
	}
	return s.reportRepo.CourseSections(ctx, courseCode, termRange)
}

func (s *reportServiceImpl) InstructorSections(ctx context.Context, instructorID string, termRange models.TermRange) ([]models.SectionListing, error) {
	if err := validateTermRange(termRange); err != nil {
		return nil, err
	}
	return s.reportRepo.InstructorSections(ctx, instructorID, termRange)
}

func (s *reportServiceImpl) EvaluationStatus(ctx context.Context, semester models.Semester, year int) ([]models.EvaluationStatusRow, error) {
	if !semester.Valid() {
		return nil, apperrors.NewValidationFailure("unknown semester: " + string(semester))
	}
	return s.reportRepo.EvaluationStatus(ctx, semester, year)
}
