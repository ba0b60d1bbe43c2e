package dto

import "github.com/atlasedu/accredia/internal/app/models"

// CreateDegreeRequest represents a request to register a degree program
type CreateDegreeRequest struct {
	DegreeName  string `json:"degreeName" binding:"required"`
	DegreeLevel string `json:"degreeLevel" binding:"required"`
	Description string `json:"description"`
}

// CreateCourseRequest represents a request to register a course
type CreateCourseRequest struct {
	CourseCode string `json:"courseCode" binding:"required"`
	CourseName string `json:"courseName" binding:"required"`
}

// CreateInstructorRequest represents a request to register an instructor
type CreateInstructorRequest struct {
	InstructorID string  `json:"instructorId" binding:"required"`
	FirstName    string  `json:"firstName" binding:"required"`
	MiddleName   *string `json:"middleName"`
	LastName     string  `json:"lastName" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        *string `json:"phone"`
}

// UpdateInstructorRequest represents a request to change an instructor's
// contact details
type UpdateInstructorRequest struct {
	FirstName  string  `json:"firstName" binding:"required"`
	MiddleName *string `json:"middleName"`
	LastName   string  `json:"lastName" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      *string `json:"phone"`
}

// CreateObjectiveRequest represents a request to register a learning
// objective
type CreateObjectiveRequest struct {
	ObjCode     string `json:"objCode" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// LinkDegreeCourseRequest attaches a course to a degree's curriculum.
// CourseName is optional; when present the course row is created on first
// use.
type LinkDegreeCourseRequest struct {
	CourseCode string `json:"courseCode" binding:"required"`
	CourseName string `json:"courseName"`
	IsCore     bool   `json:"isCore"`
}

// LinkDegreeObjectiveRequest claims an objective for a degree
type LinkDegreeObjectiveRequest struct {
	ObjCode string `json:"objCode" binding:"required"`
}

// MapCourseObjectiveRequest declares that a course assesses an objective
// within a degree
type MapCourseObjectiveRequest struct {
	CourseCode string `json:"courseCode" binding:"required"`
	ObjCode    string `json:"objCode" binding:"required"`
}

// CreateSectionRequest represents a request to schedule a section
type CreateSectionRequest struct {
	CourseCode   string `json:"courseCode" binding:"required"`
	SectionNum   int    `json:"sectionNum" binding:"required"`
	Semester     string `json:"semester" binding:"required"`
	Year         int    `json:"year" binding:"required"`
	Enrollment   int    `json:"enrollment" binding:"required"`
	InstructorID string `json:"instructorId" binding:"required"`
}

// UpdateEnrollmentRequest represents a request to change a section's
// enrollment count
type UpdateEnrollmentRequest struct {
	Enrollment int `json:"enrollment" binding:"required"`
}

// ObjectiveEvaluationRequest is one objective's counts in an evaluation
// submission
type ObjectiveEvaluationRequest struct {
	ObjCode      string   `json:"objCode" binding:"required"`
	CountA       int      `json:"countA"`
	CountB       int      `json:"countB"`
	CountC       int      `json:"countC"`
	CountF       int      `json:"countF"`
	Improvement  string   `json:"improvement"`
	Methods      []string `json:"methods"`
	OtherMethods string   `json:"otherMethods"`
}

// SaveEvaluationRequest represents a full evaluation submission for a
// section against one degree
type SaveEvaluationRequest struct {
	DegreeName  string                       `json:"degreeName" binding:"required"`
	DegreeLevel string                       `json:"degreeLevel" binding:"required"`
	Duplicate   bool                         `json:"duplicate"`
	Objectives  []ObjectiveEvaluationRequest `json:"objectives" binding:"required"`
}

// DegreeKey converts the request's degree fields to a model key.
func (r *SaveEvaluationRequest) DegreeKey() models.DegreeKey {
	return models.DegreeKey{
		Name:  r.DegreeName,
		Level: models.DegreeLevel(r.DegreeLevel),
	}
}
