package services

import (
	"context"
	"strings"

	"github.com/atlasedu/accredia/internal/app/models"
	"github.com/atlasedu/accredia/internal/pkg/apperrors"
	"github.com/atlasedu/accredia/internal/pkg/logger"
)

// ObjectiveInput is one objective's slice of an evaluation submission.
type ObjectiveInput struct {
	ObjCode     string   `json:"objCode"`
	CountA      int      `json:"countA"`
	CountB      int      `json:"countB"`
	CountC      int      `json:"countC"`
	CountF      int      `json:"countF"`
	Improvement string   `json:"improvement"`
	Methods     []string `json:"methods"`

	// OtherMethods is the free-text method field, comma separated.
	OtherMethods string `json:"otherMethods"`
}

// EvaluationService defines the interface for grade-distribution entry
type EvaluationService interface {
	SaveEvaluation(ctx context.Context, section models.SectionKey, degree models.DegreeKey, inputs []ObjectiveInput, duplicate bool) error
	GetEvaluationForm(ctx context.Context, section models.SectionKey, degree models.DegreeKey) ([]models.EvaluationFormRow, error)
}

type evaluationStore interface {
	ReplaceAll(ctx context.Context, evaluations []*models.Evaluation) error
	FormState(ctx context.Context, section models.SectionKey, degree models.DegreeKey) ([]models.EvaluationFormRow, error)
}

type sectionGetter interface {
	Get(ctx context.Context, key models.SectionKey) (*models.Section, error)
}

type mappingResolver interface {
	ObjectiveDegrees(ctx context.Context, courseCode, objCode string) ([]models.DegreeKey, error)
}

// evaluationServiceImpl implements the EvaluationService interface
type evaluationServiceImpl struct {
	evaluationRepo evaluationStore
	sectionRepo    sectionGetter
	curriculumRepo mappingResolver
}

// NewEvaluationService creates a new evaluation service instance
func NewEvaluationService(evaluationRepo evaluationStore, sectionRepo sectionGetter, curriculumRepo mappingResolver) EvaluationService {
	return &evaluationServiceImpl{
		evaluationRepo: evaluationRepo,
		sectionRepo:    sectionRepo,
		curriculumRepo: curriculumRepo,
	}
}

// SaveEvaluation stores a full evaluation submission for a section against
// one degree. Every objective is validated before anything is written, so
// a bad total in any row aborts the whole submission. With duplicate set,
// the same counts are also written for every other degree that maps the
// same (course, objective) pair.
func (s *evaluationServiceImpl) SaveEvaluation(ctx context.Context, section models.SectionKey, degree models.DegreeKey, inputs []ObjectiveInput, duplicate bool) error {
	if len(inputs) == 0 {
		return apperrors.NewValidationFailure("evaluation submission is empty")
	}

	sec, err := s.sectionRepo.Get(ctx, section)
	if err != nil {
		return err
	}

	for i := range inputs {
		in := &inputs[i]
		if strings.TrimSpace(in.ObjCode) == "" {
			return apperrors.NewValidationFailure("objective code cannot be empty")
		}
		if in.CountA < 0 || in.CountB < 0 || in.CountC < 0 || in.CountF < 0 {
			return apperrors.NewValidationFailure("grade counts cannot be negative")
		}
		total := in.CountA + in.CountB + in.CountC + in.CountF
		if total != 0 && total != sec.Enrollment {
			return apperrors.NewValidationError(in.ObjCode, total, sec.Enrollment)
		}
	}

	var evaluations []*models.Evaluation
	for i := range inputs {
		in := &inputs[i]
		methods := normalizeMethods(in.Methods, in.OtherMethods)

		targets := []models.DegreeKey{degree}
		if duplicate {
			mapped, err := s.curriculumRepo.ObjectiveDegrees(ctx, section.CourseCode, in.ObjCode)
			if err != nil {
				return err
			}
			for _, d := range mapped {
				if d != degree {
					targets = append(targets, d)
				}
			}
		}

		for _, target := range targets {
			evaluations = append(evaluations, &models.Evaluation{
				Section:     section,
				Degree:      target,
				ObjCode:     in.ObjCode,
				CountA:      in.CountA,
				CountB:      in.CountB,
				CountC:      in.CountC,
				CountF:      in.CountF,
				Improvement: in.Improvement,
				Methods:     methods,
			})
		}
	}

	if err := s.evaluationRepo.ReplaceAll(ctx, evaluations); err != nil {
		return err
	}

	logger.Debug().Str("course", section.CourseCode).Int("section", section.SectionNum).
		Int("rows", len(evaluations)).Bool("duplicate", duplicate).
		Msg("Evaluation saved")
	return nil
}

// GetEvaluationForm returns the edit form for one section and degree:
// every mapped objective with any previously saved counts and methods.
func (s *evaluationServiceImpl) GetEvaluationForm(ctx context.Context, section models.SectionKey, degree models.DegreeKey) ([]models.EvaluationFormRow, error) {
	return s.evaluationRepo.FormState(ctx, section, degree)
}

// normalizeMethods merges the checkbox list with the free-text field,
// splitting the latter on commas and dropping blanks and repeats.
func normalizeMethods(methods []string, other string) []string {
	var result []string
	seen := make(map[string]bool)

	add := func(m string) {
		m = strings.TrimSpace(m)
		if m == "" || seen[m] {
			return
		}
		seen[m] = true
		result = append(result, m)
	}

	for _, m := range methods {
		add(m)
	}
	for _, m := range strings.Split(other, ",") {
		add(m)
	}

	return result
}
