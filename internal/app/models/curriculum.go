package models

// DegreeCourse links a course into a degree program, flagged as core
// (required) or elective.
type DegreeCourse struct {
	Degree     DegreeKey `json:"degree"`
	CourseCode string    `json:"courseCode" db:"course_code"`
	IsCore     bool      `json:"isCore" db:"is_core"`

	// Populated by listing queries.
	CourseName string `json:"courseName,omitempty" db:"course_name"`
}

// DegreeObjective links an objective a degree claims to assess.
type DegreeObjective struct {
	Degree  DegreeKey `json:"degree"`
	ObjCode string    `json:"objCode" db:"obj_code"`

	// Populated by listing queries.
	Title string `json:"title,omitempty" db:"title"`
}

// CourseObjective maps an objective onto a course for one degree. The row
// is only valid when both the DegreeCourse and DegreeObjective parent
// links already exist.
type CourseObjective struct {
	Degree     DegreeKey `json:"degree"`
	CourseCode string    `json:"courseCode" db:"course_code"`
	ObjCode    string    `json:"objCode" db:"obj_code"`

	// Populated by listing queries.
	CourseName string `json:"courseName,omitempty" db:"course_name"`
	Title      string `json:"title,omitempty" db:"title"`
}
