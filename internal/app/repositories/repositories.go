package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	DegreeRepository     *DegreeRepository
	CourseRepository     *CourseRepository
	InstructorRepository *InstructorRepository
	ObjectiveRepository  *ObjectiveRepository
	CurriculumRepository *CurriculumRepository
	SectionRepository    *SectionRepository
	EvaluationRepository *EvaluationRepository
	ReportRepository     *ReportRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		DegreeRepository:     NewDegreeRepository(db),
		CourseRepository:     NewCourseRepository(db),
		InstructorRepository: NewInstructorRepository(db),
		ObjectiveRepository:  NewObjectiveRepository(db),
		CurriculumRepository: NewCurriculumRepository(db),
		SectionRepository:    NewSectionRepository(db),
		EvaluationRepository: NewEvaluationRepository(db),
		ReportRepository:     NewReportRepository(db),
	}
}
