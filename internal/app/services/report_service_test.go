package services

import (
	"context"
	"errors"
	"testing"

	"github.com/atlasedu/accredia/internal/app/models"
	"github.com/atlasedu/accredia/internal/pkg/apperrors"
)

type fakeReportStore struct {
	calls []string
}

func (f *fakeReportStore) DegreeDetail(ctx context.Context, degree models.DegreeKey, yearFrom, yearTo int) (*models.DegreeDetail, error) {
	f.calls = append(f.calls, "DegreeDetail")
	return &models.DegreeDetail{}, nil
}

func (f *fakeReportStore) PassingRate(ctx context.Context, semester models.Semester, year int, threshold float64) ([]models.PassingRateRow, error) {
	f.calls = append(f.calls, "PassingRate")
	return nil, nil
}

func (f *fakeReportStore) CourseSections(ctx context.Context, courseCode string, termRange models.TermRange) ([]models.SectionListing, error) {
	f.calls = append(f.calls, "CourseSections")
	return nil, nil
}

func (f *fakeReportStore) InstructorSections(ctx context.Context, instructorID string, termRange models.TermRange) ([]models.SectionListing, error) {
	f.calls = append(f.calls, "InstructorSections")
	return nil, nil
}

func (f *fakeReportStore) EvaluationStatus(ctx context.Context, semester models.Semester, year int) ([]models.EvaluationStatusRow, error) {
	f.calls = append(f.calls, "EvaluationStatus")
	return nil, nil
}

func TestPassingRateThresholdValidation(t *testing.T) {
	store := &fakeReportStore{}
	svc := NewReportService(store)

	tests := []struct {
		name      string
		semester  models.Semester
		threshold float64
		wantErr   bool
	}{
		{name: "valid", semester: models.SemesterFall, threshold: 70},
		{name: "zero threshold", semester: models.SemesterSpring, threshold: 0},
		{name: "negative threshold", semester: models.SemesterFall, threshold: -1, wantErr: true},
		{name: "threshold above 100", semester: models.SemesterFall, threshold: 101, wantErr: true},
		{name: "unknown semester", semester: "Winter", threshold: 70, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.PassingRate(context.Background(), tt.semester, 2024, tt.threshold)
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrValidation) {
					t.Errorf("PassingRate() error = %v, want validation error", err)
				}
				return
			}
			if err != nil {
				t.Errorf("PassingRate() error = %v", err)
			}
		})
	}
}

func TestTermRangeValidation(t *testing.T) {
	store := &fakeReportStore{}
	svc := NewReportService(store)

	tests := []struct {
		name      string
		termRange models.TermRange
		wantErr   bool
	}{
		{
			name: "valid range across years",
			termRange: models.TermRange{
				StartSemester: models.SemesterFall, StartYear: 2022,
				EndSemester: models.SemesterSpring, EndYear: 2024,
			},
		},
		{
			name: "single term range",
			termRange: models.TermRange{
				StartSemester: models.SemesterFall, StartYear: 2024,
				EndSemester: models.SemesterFall, EndYear: 2024,
			},
		},
		{
			name: "inverted within one year",
			termRange: models.TermRange{
				StartSemester: models.SemesterFall, StartYear: 2024,
				EndSemester: models.SemesterSpring, EndYear: 2024,
			},
			wantErr: true,
		},
		{
			name: "unknown start semester",
			termRange: models.TermRange{
				StartSemester: "Winter", StartYear: 2024,
				EndSemester: models.SemesterFall, EndYear: 2024,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CourseSections(context.Background(), "CS101", tt.termRange)
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrValidation) {
					t.Errorf("CourseSections() error = %v, want validation error", err)
				}
				return
			}
			if err != nil {
				t.Errorf("CourseSections() error = %v", err)
			}
		})
	}
}

func TestDegreeDetailYearRange(t *testing.T) {
	store := &fakeReportStore{}
	svc := NewReportService(store)

	_, err := svc.DegreeDetail(context.Background(), models.DegreeKey{Name: "CS", Level: models.LevelBS}, 2025, 2020)
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("inverted year range error = %v, want validation error", err)
	}
	if len(store.calls) != 0 {
		t.Error("invalid range must not reach the store")
	}

	if _, err := svc.DegreeDetail(context.Background(), models.DegreeKey{Name: "CS", Level: models.LevelBS}, 2020, 2025); err != nil {
		t.Errorf("DegreeDetail() error = %v", err)
	}
}
