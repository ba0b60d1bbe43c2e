package services

import (
	"github.com/atlasedu/accredia/internal/app/repositories"
)

// Services defined in this package:
// - CatalogService: degrees, courses and instructors with archive-or-delete
// - CurriculumService: objectives and the degree/course/objective links
// - OfferingService: sections and instructor assignments
// - EvaluationService: grade-distribution entry with replace semantics
// - ReportService: the read-only accreditation reports

// Services holds all the service instances
type Services struct {
	Catalog    CatalogService
	Curriculum CurriculumService
	Offering   OfferingService
	Evaluation EvaluationService
	Report     ReportService
}

// NewServices wires every service to its repositories
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Catalog: NewCatalogService(
			repos.DegreeRepository,
			repos.CourseRepository,
			repos.InstructorRepository,
		),
		Curriculum: NewCurriculumService(
			repos.CourseRepository,
			repos.ObjectiveRepository,
			repos.CurriculumRepository,
		),
		Offering: NewOfferingService(
			repos.SectionRepository,
			repos.InstructorRepository,
		),
		Evaluation: NewEvaluationService(
			repos.EvaluationRepository,
			repos.SectionRepository,
			repos.CurriculumRepository,
		),
		Report: NewReportService(repos.ReportRepository),
	}
}
