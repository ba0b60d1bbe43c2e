package models

// SectionKey identifies one scheduled offering of a course.
type SectionKey struct {
	CourseCode string   `json:"courseCode" db:"course_code"`
	SectionNum int      `json:"sectionNum" db:"section_num"`
	Semester   Semester `json:"semester" db:"semester"`
	Year       int      `json:"year" db:"year_offered"`
}

// Section is a course offering in a specific term with its enrollment.
type Section struct {
	SectionKey
	Enrollment int `json:"enrollment" db:"num_enrollments"`
}

// Teaches assigns exactly one instructor to a section. The key is the
// section key, so reassigning replaces the previous instructor.
type Teaches struct {
	SectionKey
	InstructorID string `json:"instructorId" db:"instructor_id"`
}
