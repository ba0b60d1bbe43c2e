package services

import (
	"context"

	"github.com/atlasedu/accredia/internal/app/models"
	"github.com/atlasedu/accredia/internal/pkg/apperrors"
)

// Hand-written fakes for the store interfaces. Each records the calls the
// service under test makes and returns canned data.

type fakeDegreeStore struct {
	degrees    map[models.DegreeKey]*models.Degree
	refs       int
	statusSets []models.Status
	deleted    []models.DegreeKey
}

func newFakeDegreeStore() *fakeDegreeStore {
	return &fakeDegreeStore{degrees: make(map[models.DegreeKey]*models.Degree)}
}

func (f *fakeDegreeStore) Create(ctx context.Context, degree *models.Degree) error {
	if _, ok := f.degrees[degree.Key()]; ok {
		return apperrors.ErrDegreeAlreadyExists
	}
	f.degrees[degree.Key()] = degree
	return nil
}

func (f *fakeDegreeStore) GetByKey(ctx context.Context, key models.DegreeKey) (*models.Degree, error) {
	degree, ok := f.degrees[key]
	if !ok {
		return nil, apperrors.ErrDegreeNotFound
	}
	return degree, nil
}

func (f *fakeDegreeStore) List(ctx context.Context, activeOnly bool) ([]*models.Degree, error) {
	var result []*models.Degree
	for _, d := range f.degrees {
		if activeOnly && d.Status != models.StatusActive {
			continue
		}
		result = append(result, d)
	}
	return result, nil
}

func (f *fakeDegreeStore) CountReferences(ctx context.Context, key models.DegreeKey) (int, error) {
	return f.refs, nil
}

func (f *fakeDegreeStore) SetStatus(ctx context.Context, key models.DegreeKey, status models.Status) error {
	degree, ok := f.degrees[key]
	if !ok {
		return apperrors.ErrDegreeNotFound
	}
	degree.Status = status
	f.statusSets = append(f.statusSets, status)
	return nil
}

func (f *fakeDegreeStore) Delete(ctx context.Context, key models.DegreeKey) error {
	if _, ok := f.degrees[key]; !ok {
		return apperrors.ErrDegreeNotFound
	}
	delete(f.degrees, key)
	f.deleted = append(f.deleted, key)
	return nil
}

type fakeCourseStore struct {
	courses         map[string]*models.Course
	refs            int
	createIfAbsents []string
	deleted         []string
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[string]*models.Course)}
}

func (f *fakeCourseStore) Create(ctx context.Context, course *models.Course) error {
	if _, ok := f.courses[course.Code]; ok {
		return apperrors.ErrCourseAlreadyExists
	}
	f.courses[course.Code] = course
	return nil
}

func (f *fakeCourseStore) CreateIfAbsent(ctx context.Context, course *models.Course) error {
	f.createIfAbsents = append(f.createIfAbsents, course.Code)
	if _, ok := f.courses[course.Code]; !ok {
		f.courses[course.Code] = course
	}
	return nil
}

func (f *fakeCourseStore) List(ctx context.Context, activeOnly bool) ([]*models.Course, error) {
	var result []*models.Course
	for _, c := range f.courses {
		if activeOnly && c.Status != models.StatusActive {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (f *fakeCourseStore) CountReferences(ctx context.Context, code string) (int, error) {
	return f.refs, nil
}

func (f *fakeCourseStore) SetStatus(ctx context.Context, code string, status models.Status) error {
	course, ok := f.courses[code]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	course.Status = status
	return nil
}

func (f *fakeCourseStore) Delete(ctx context.Context, code string) error {
	if _, ok := f.courses[code]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, code)
	f.deleted = append(f.deleted, code)
	return nil
}

type fakeInstructorStore struct {
	instructors map[string]*models.Instructor
	refs        int
	updated     []*models.Instructor
	deleted     []string
}

func newFakeInstructorStore() *fakeInstructorStore {
	return &fakeInstructorStore{instructors: make(map[string]*models.Instructor)}
}

func (f *fakeInstructorStore) Create(ctx context.Context, instructor *models.Instructor) error {
	if _, ok := f.instructors[instructor.ID]; ok {
		return apperrors.ErrInstructorAlreadyExists
	}
	f.instructors[instructor.ID] = instructor
	return nil
}

func (f *fakeInstructorStore) GetByID(ctx context.Context, id string) (*models.Instructor, error) {
	instructor, ok := f.instructors[id]
	if !ok {
		return nil, apperrors.ErrInstructorNotFound
	}
	return instructor, nil
}

func (f *fakeInstructorStore) List(ctx context.Context, activeOnly bool) ([]*models.Instructor, error) {
	var result []*models.Instructor
	for _, i := range f.instructors {
		if activeOnly && i.Status != models.StatusActive {
			continue
		}
		result = append(result, i)
	}
	return result, nil
}

func (f *fakeInstructorStore) Update(ctx context.Context, instructor *models.Instructor) error {
	if _, ok := f.instructors[instructor.ID]; !ok {
		return apperrors.ErrInstructorNotFound
	}
	f.instructors[instructor.ID] = instructor
	f.updated = append(f.updated, instructor)
	return nil
}

func (f *fakeInstructorStore) CountReferences(ctx context.Context, id string) (int, error) {
	return f.refs, nil
}

func (f *fakeInstructorStore) SetStatus(ctx context.Context, id string, status models.Status) error {
	instructor, ok := f.instructors[id]
	if !ok {
		return apperrors.ErrInstructorNotFound
	}
	instructor.Status = status
	return nil
}

func (f *fakeInstructorStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.instructors[id]; !ok {
		return apperrors.ErrInstructorNotFound
	}
	delete(f.instructors, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSectionStore struct {
	sections map[models.SectionKey]*models.Section
	created  []*models.Section
	deleted  []models.SectionKey
}

func newFakeSectionStore() *fakeSectionStore {
	return &fakeSectionStore{sections: make(map[models.SectionKey]*models.Section)}
}

func (f *fakeSectionStore) CreateWithInstructor(ctx context.Context, section *models.Section, instructorID string) error {
	if _, ok := f.sections[section.SectionKey]; ok {
		return apperrors.ErrSectionAlreadyExists
	}
	f.sections[section.SectionKey] = section
	f.created = append(f.created, section)
	return nil
}

func (f *fakeSectionStore) Get(ctx context.Context, key models.SectionKey) (*models.Section, error) {
	section, ok := f.sections[key]
	if !ok {
		return nil, apperrors.ErrSectionNotFound
	}
	return section, nil
}

func (f *fakeSectionStore) List(ctx context.Context) ([]*models.Section, error) {
	var result []*models.Section
	for _, s := range f.sections {
		result = append(result, s)
	}
	return result, nil
}

func (f *fakeSectionStore) UpdateEnrollment(ctx context.Context, key models.SectionKey, enrollment int) error {
	section, ok := f.sections[key]
	if !ok {
		return apperrors.ErrSectionNotFound
	}
	section.Enrollment = enrollment
	return nil
}

func (f *fakeSectionStore) DeleteCascade(ctx context.Context, key models.SectionKey) error {
	if _, ok := f.sections[key]; !ok {
		return apperrors.ErrSectionNotFound
	}
	delete(f.sections, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeSectionStore) Instructor(ctx context.Context, key models.SectionKey) (*models.Instructor, error) {
	return nil, apperrors.ErrInstructorNotFound
}

func (f *fakeSectionStore) SectionsForEvaluation(ctx context.Context, degree models.DegreeKey, semester models.Semester, year int, instructorID string) ([]models.SectionEvalSummary, error) {
	return nil, nil
}

type fakeEvaluationStore struct {
	saved     []*models.Evaluation
	saveCalls int
	form      []models.EvaluationFormRow
}

func (f *fakeEvaluationStore) ReplaceAll(ctx context.Context, evaluations []*models.Evaluation) error {
	f.saveCalls++
	f.saved = evaluations
	return nil
}

func (f *fakeEvaluationStore) FormState(ctx context.Context, section models.SectionKey, degree models.DegreeKey) ([]models.EvaluationFormRow, error) {
	return f.form, nil
}

type fakeMappingResolver struct {
	// degreesByObj maps obj_code to every degree mapping (course, obj).
	degreesByObj map[string][]models.DegreeKey
}

func (f *fakeMappingResolver) ObjectiveDegrees(ctx context.Context, courseCode, objCode string) ([]models.DegreeKey, error) {
	return f.degreesByObj[objCode], nil
}

type fakeCurriculumStore struct {
	degreeCourses    []*models.DegreeCourse
	degreeObjectives []*models.DegreeObjective
	mappings         []*models.CourseObjective
}

func (f *fakeCurriculumStore) LinkDegreeCourse(ctx context.Context, link *models.DegreeCourse) error {
	for _, existing := range f.degreeCourses {
		if existing.Degree == link.Degree && existing.CourseCode == link.CourseCode {
			return apperrors.ErrLinkAlreadyExists
		}
	}
	f.degreeCourses = append(f.degreeCourses, link)
	return nil
}

func (f *fakeCurriculumStore) LinkDegreeObjective(ctx context.Context, link *models.DegreeObjective) error {
	f.degreeObjectives = append(f.degreeObjectives, link)
	return nil
}

func (f *fakeCurriculumStore) MapCourseObjective(ctx context.Context, mapping *models.CourseObjective) error {
	f.mappings = append(f.mappings, mapping)
	return nil
}

func (f *fakeCurriculumStore) DegreeCourses(ctx context.Context, degree models.DegreeKey) ([]models.DegreeCourse, error) {
	var result []models.DegreeCourse
	for _, dc := range f.degreeCourses {
		if dc.Degree == degree {
			result = append(result, *dc)
		}
	}
	return result, nil
}

func (f *fakeCurriculumStore) DegreeObjectives(ctx context.Context, degree models.DegreeKey) ([]models.DegreeObjective, error) {
	var result []models.DegreeObjective
	for _, do := range f.degreeObjectives {
		if do.Degree == degree {
			result = append(result, *do)
		}
	}
	return result, nil
}

func (f *fakeCurriculumStore) CourseObjectives(ctx context.Context, degree models.DegreeKey, courseCode string) ([]models.Objective, error) {
	return nil, nil
}

type fakeObjectiveStore struct {
	objectives map[string]*models.Objective
}

func newFakeObjectiveStore() *fakeObjectiveStore {
	return &fakeObjectiveStore{objectives: make(map[string]*models.Objective)}
}

func (f *fakeObjectiveStore) Create(ctx context.Context, objective *models.Objective) error {
	if _, ok := f.objectives[objective.Code]; ok {
		return apperrors.ErrObjectiveAlreadyExists
	}
	f.objectives[objective.Code] = objective
	return nil
}

func (f *fakeObjectiveStore) List(ctx context.Context) ([]*models.Objective, error) {
	var result []*models.Objective
	for _, o := range f.objectives {
		result = append(result, o)
	}
	return result, nil
}
