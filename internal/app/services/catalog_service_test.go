package services

import (
	"context"
	"errors"
	"testing"

	"github.com/atlasedu/accredia/internal/app/models"
	"github.com/atlasedu/accredia/internal/pkg/apperrors"
)

func newCatalogFixture() (*fakeDegreeStore, *fakeCourseStore, *fakeInstructorStore, CatalogService) {
	degrees := newFakeDegreeStore()
	courses := newFakeCourseStore()
	instructors := newFakeInstructorStore()
	return degrees, courses, instructors, NewCatalogService(degrees, courses, instructors)
}

func TestCreateDegreeValidation(t *testing.T) {
	_, _, _, svc := newCatalogFixture()

	tests := []struct {
		name   string
		degree *models.Degree
	}{
		{name: "nil degree", degree: nil},
		{name: "empty name", degree: &models.Degree{Name: " ", Level: models.LevelBS}},
		{name: "unknown level", degree: &models.Degree{Name: "CS", Level: "MBA"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreateDegree(context.Background(), tt.degree)
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Errorf("CreateDegree() error = %v, want validation error", err)
			}
		})
	}
}

func TestCreateDegreeDuplicate(t *testing.T) {
	_, _, _, svc := newCatalogFixture()

	degree := &models.Degree{Name: "Computer Science", Level: models.LevelBS}
	if err := svc.CreateDegree(context.Background(), degree); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if degree.Status != models.StatusActive {
		t.Errorf("new degree status = %s, want Active", degree.Status)
	}

	err := svc.CreateDegree(context.Background(), &models.Degree{Name: "Computer Science", Level: models.LevelBS})
	if !errors.Is(err, apperrors.ErrDuplicateKey) {
		t.Errorf("duplicate create error = %v, want duplicate key", err)
	}
}

func TestArchiveOrDeleteDegree(t *testing.T) {
	tests := []struct {
		name        string
		refs        int
		wantOutcome RemovalOutcome
	}{
		{name: "referenced degree is archived", refs: 3, wantOutcome: OutcomeArchived},
		{name: "unreferenced degree is deleted", refs: 0, wantOutcome: OutcomeDeleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			degrees, _, _, svc := newCatalogFixture()
			degrees.refs = tt.refs
			key := models.DegreeKey{Name: "CS", Level: models.LevelBS}
			degrees.degrees[key] = &models.Degree{Name: "CS", Level: models.LevelBS, Status: models.StatusActive}

			outcome, err := svc.ArchiveOrDeleteDegree(context.Background(), key)
			if err != nil {
				t.Fatalf("ArchiveOrDeleteDegree() error = %v", err)
			}
			if outcome != tt.wantOutcome {
				t.Errorf("outcome = %s, want %s", outcome, tt.wantOutcome)
			}

			if tt.wantOutcome == OutcomeArchived {
				if degrees.degrees[key].Status != models.StatusInactive {
					t.Error("archived degree should be Inactive")
				}
				if len(degrees.deleted) != 0 {
					t.Error("archived degree should not be deleted")
				}
			} else {
				if _, ok := degrees.degrees[key]; ok {
					t.Error("deleted degree should be gone")
				}
			}
		})
	}
}

func TestArchiveOrDeleteDegreeNotFound(t *testing.T) {
	_, _, _, svc := newCatalogFixture()

	_, err := svc.ArchiveOrDeleteDegree(context.Background(), models.DegreeKey{Name: "Nope", Level: models.LevelBS})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestArchiveOrDeleteInstructor(t *testing.T) {
	_, _, instructors, svc := newCatalogFixture()
	instructors.instructors["I1"] = &models.Instructor{ID: "I1", FirstName: "A", LastName: "B", Email: "a@b.edu", Status: models.StatusActive}
	instructors.refs = 2

	outcome, err := svc.ArchiveOrDeleteInstructor(context.Background(), "I1")
	if err != nil {
		t.Fatalf("ArchiveOrDeleteInstructor() error = %v", err)
	}
	if outcome != OutcomeArchived {
		t.Errorf("outcome = %s, want archived", outcome)
	}
	if instructors.instructors["I1"].Status != models.StatusInactive {
		t.Error("instructor with teaching history should be archived, not deleted")
	}
}

func TestReactivateDegree(t *testing.T) {
	degrees, _, _, svc := newCatalogFixture()
	key := models.DegreeKey{Name: "CS", Level: models.LevelBS}
	degrees.degrees[key] = &models.Degree{Name: "CS", Level: models.LevelBS, Status: models.StatusInactive}

	if err := svc.ReactivateDegree(context.Background(), key); err != nil {
		t.Fatalf("ReactivateDegree() error = %v", err)
	}
	if degrees.degrees[key].Status != models.StatusActive {
		t.Error("reactivated degree should be Active")
	}
}

func TestCreateInstructorValidation(t *testing.T) {
	_, _, _, svc := newCatalogFixture()

	tests := []struct {
		name       string
		instructor *models.Instructor
	}{
		{name: "empty ID", instructor: &models.Instructor{FirstName: "A", LastName: "B", Email: "a@b.edu"}},
		{name: "missing last name", instructor: &models.Instructor{ID: "I1", FirstName: "A", Email: "a@b.edu"}},
		{name: "bad email", instructor: &models.Instructor{ID: "I1", FirstName: "A", LastName: "B", Email: "nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreateInstructor(context.Background(), tt.instructor)
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Errorf("CreateInstructor() error = %v, want validation error", err)
			}
		})
	}
}

func TestListDegreesActiveOnly(t *testing.T) {
	degrees, _, _, svc := newCatalogFixture()
	degrees.degrees[models.DegreeKey{Name: "CS", Level: models.LevelBS}] = &models.Degree{Name: "CS", Level: models.LevelBS, Status: models.StatusActive}
	degrees.degrees[models.DegreeKey{Name: "Old", Level: models.LevelBA}] = &models.Degree{Name: "Old", Level: models.LevelBA, Status: models.StatusInactive}

	active, err := svc.ListDegrees(context.Background(), true)
	if err != nil {
		t.Fatalf("ListDegrees(active) error = %v", err)
	}
	if len(active) != 1 {
		t.Errorf("active list has %d degrees, want 1", len(active))
	}

	all, err := svc.ListDegrees(context.Background(), false)
	if err != nil {
		t.Fatalf("ListDegrees(all) error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("full list has %d degrees, want 2", len(all))
	}
}
