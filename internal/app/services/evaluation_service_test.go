package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/atlasedu/accredia/internal/app/models"
	"github.com/atlasedu/accredia/internal/pkg/apperrors"
)

func newEvaluationFixture(enrollment int) (*fakeEvaluationStore, *fakeSectionStore, *fakeMappingResolver, EvaluationService) {
	evaluations := &fakeEvaluationStore{}
	sections := newFakeSectionStore()
	resolver := &fakeMappingResolver{degreesByObj: make(map[string][]models.DegreeKey)}

	section := &models.Section{
		SectionKey: models.SectionKey{
			CourseCode: "CS101",
			SectionNum: 1,
			Semester:   models.SemesterFall,
			Year:       2024,
		},
		Enrollment: enrollment,
	}
	sections.sections[section.SectionKey] = section

	return evaluations, sections, resolver, NewEvaluationService(evaluations, sections, resolver)
}

var (
	testSectionKey = models.SectionKey{CourseCode: "CS101", SectionNum: 1, Semester: models.SemesterFall, Year: 2024}
	bsDegree       = models.DegreeKey{Name: "CS", Level: models.LevelBS}
	msDegree       = models.DegreeKey{Name: "CS", Level: models.LevelMS}
)

func TestSaveEvaluationGradeTotalInvariant(t *testing.T) {
	tests := []struct {
		name    string
		counts  [4]int
		wantErr bool
	}{
		{name: "total equals enrollment", counts: [4]int{10, 10, 5, 5}},
		{name: "all zero counts", counts: [4]int{0, 0, 0, 0}},
		{name: "total below enrollment", counts: [4]int{10, 10, 5, 4}, wantErr: true},
		{name: "total above enrollment", counts: [4]int{10, 10, 5, 6}, wantErr: true},
		{name: "negative count", counts: [4]int{-1, 11, 10, 10}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evaluations, _, _, svc := newEvaluationFixture(30)

			inputs := []ObjectiveInput{{
				ObjCode: "OBJ1",
				CountA:  tt.counts[0], CountB: tt.counts[1], CountC: tt.counts[2], CountF: tt.counts[3],
			}}
			err := svc.SaveEvaluation(context.Background(), testSectionKey, bsDegree, inputs, false)

			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrValidation) {
					t.Errorf("SaveEvaluation() error = %v, want validation error", err)
				}
				if evaluations.saveCalls != 0 {
					t.Error("nothing may be written when validation fails")
				}
				return
			}
			if err != nil {
				t.Errorf("SaveEvaluation() error = %v", err)
			}
		})
	}
}

func TestSaveEvaluationAllOrNothing(t *testing.T) {
	evaluations, _, _, svc := newEvaluationFixture(30)

	// Second objective has a bad total; the valid first one must not be
	// written either.
	inputs := []ObjectiveInput{
		{ObjCode: "OBJ1", CountA: 30},
		{ObjCode: "OBJ2", CountA: 7},
	}
	err := svc.SaveEvaluation(context.Background(), testSectionKey, bsDegree, inputs, false)

	var validationErr *apperrors.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("SaveEvaluation() error = %v, want *ValidationError", err)
	}
	if validationErr.Objective != "OBJ2" {
		t.Errorf("offending objective = %s, want OBJ2", validationErr.Objective)
	}
	if validationErr.Total != 7 || validationErr.Expected != 30 {
		t.Errorf("error carries total=%d expected=%d, want 7 and 30", validationErr.Total, validationErr.Expected)
	}
	if evaluations.saveCalls != 0 {
		t.Error("no write may happen when any objective fails validation")
	}
}

func TestSaveEvaluationSingleDegree(t *testing.T) {
	evaluations, _, resolver, svc := newEvaluationFixture(30)
	// Even with another degree mapped, duplicate=false stays on the
	// primary degree.
	resolver.degreesByObj["OBJ1"] = []models.DegreeKey{bsDegree, msDegree}

	inputs := []ObjectiveInput{{ObjCode: "OBJ1", CountA: 15, CountB: 15}}
	if err := svc.SaveEvaluation(context.Background(), testSectionKey, bsDegree, inputs, false); err != nil {
		t.Fatalf("SaveEvaluation() error = %v", err)
	}

	if evaluations.saveCalls != 1 {
		t.Fatalf("save calls = %d, want exactly 1", evaluations.saveCalls)
	}
	if len(evaluations.saved) != 1 {
		t.Fatalf("saved %d rows, want 1", len(evaluations.saved))
	}
	if evaluations.saved[0].Degree != bsDegree {
		t.Errorf("saved degree = %v, want primary", evaluations.saved[0].Degree)
	}
}

func TestSaveEvaluationDuplicateBroadcast(t *testing.T) {
	evaluations, _, resolver, svc := newEvaluationFixture(30)
	thirdDegree := models.DegreeKey{Name: "Software Engineering", Level: models.LevelBS}
	resolver.degreesByObj["OBJ1"] = []models.DegreeKey{bsDegree, msDegree, thirdDegree}
	resolver.degreesByObj["OBJ2"] = []models.DegreeKey{bsDegree}

	inputs := []ObjectiveInput{
		{ObjCode: "OBJ1", CountA: 20, CountF: 10, Improvement: "more labs"},
		{ObjCode: "OBJ2", CountA: 30},
	}
	if err := svc.SaveEvaluation(context.Background(), testSectionKey, bsDegree, inputs, true); err != nil {
		t.Fatalf("SaveEvaluation() error = %v", err)
	}

	if evaluations.saveCalls != 1 {
		t.Fatalf("save calls = %d, want one transaction for the whole submission", evaluations.saveCalls)
	}
	// OBJ1 fans out to three degrees, OBJ2 only maps the primary.
	if len(evaluations.saved) != 4 {
		t.Fatalf("saved %d rows, want 4", len(evaluations.saved))
	}

	degreesForObj1 := make(map[models.DegreeKey]*models.Evaluation)
	for _, e := range evaluations.saved {
		if e.ObjCode == "OBJ1" {
			degreesForObj1[e.Degree] = e
		}
	}
	if len(degreesForObj1) != 3 {
		t.Fatalf("OBJ1 written for %d degrees, want 3", len(degreesForObj1))
	}
	for degree, e := range degreesForObj1 {
		if e.CountA != 20 || e.CountF != 10 || e.Improvement != "more labs" {
			t.Errorf("degree %v got counts A=%d F=%d improvement=%q, want identical copies", degree, e.CountA, e.CountF, e.Improvement)
		}
	}
}

func TestSaveEvaluationEmptySubmission(t *testing.T) {
	_, _, _, svc := newEvaluationFixture(30)

	err := svc.SaveEvaluation(context.Background(), testSectionKey, bsDegree, nil, false)
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("empty submission error = %v, want validation error", err)
	}
}

func TestSaveEvaluationUnknownSection(t *testing.T) {
	_, _, _, svc := newEvaluationFixture(30)

	missing := models.SectionKey{CourseCode: "CS999", SectionNum: 1, Semester: models.SemesterFall, Year: 2024}
	err := svc.SaveEvaluation(context.Background(), missing, bsDegree, []ObjectiveInput{{ObjCode: "OBJ1"}}, false)
	if !errors.Is(err, apperrors.ErrSectionNotFound) {
		t.Errorf("error = %v, want section not found", err)
	}
}

func TestNormalizeMethods(t *testing.T) {
	tests := []struct {
		name    string
		methods []string
		other   string
		want    []string
	}{
		{
			name:    "checkbox list only",
			methods: []string{"Exam", "Project"},
			want:    []string{"Exam", "Project"},
		},
		{
			name:  "free text split on commas",
			other: "Quiz, Peer review ,Lab",
			want:  []string{"Quiz", "Peer review", "Lab"},
		},
		{
			name:    "blanks and repeats dropped",
			methods: []string{"Exam", " ", "Exam"},
			other:   "Exam,, Project",
			want:    []string{"Exam", "Project"},
		},
		{
			name: "all empty",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeMethods(tt.methods, tt.other)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalizeMethods() = %v, want %v", got, tt.want)
			}
		})
	}
}
