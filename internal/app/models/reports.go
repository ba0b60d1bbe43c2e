package models

// Report result rows. All reports are read-only projections; the shapes
// mirror what the report queries join together.

// TermRange bounds a report to an inclusive span of terms.
type TermRange struct {
	StartSemester Semester `json:"startSemester"`
	StartYear     int      `json:"startYear"`
	EndSemester   Semester `json:"endSemester"`
	EndYear       int      `json:"endYear"`
}

// DegreeDetail aggregates everything a degree-level accreditation view
// needs: required courses first, claimed objectives, offered sections in a
// year range, and the full course-to-objective map.
type DegreeDetail struct {
	Courses    []DegreeCourse    `json:"courses"`
	Objectives []DegreeObjective `json:"objectives"`
	Sections   []SectionListing  `json:"sections"`
	ObjMap     []CourseObjective `json:"objectiveMap"`
}

// SectionListing is one section row in a degree or course listing,
// optionally carrying the assigned instructor.
type SectionListing struct {
	CourseCode          string   `json:"courseCode"`
	CourseName          string   `json:"courseName"`
	SectionNum          int      `json:"sectionNum"`
	Semester            Semester `json:"semester"`
	Year                int      `json:"year"`
	Enrollment          int      `json:"enrollment"`
	InstructorFirstName string   `json:"instructorFirstName,omitempty"`
	InstructorLastName  string   `json:"instructorLastName,omitempty"`
}

// PassingRateRow reports the pass rate for one (degree, course, section,
// objective) evaluation. Rows with zero graded students are excluded at
// query time rather than dividing by zero.
type PassingRateRow struct {
	Degree     DegreeKey `json:"degree"`
	CourseCode string    `json:"courseCode"`
	SectionNum int       `json:"sectionNum"`
	ObjCode    string    `json:"objCode"`
	Passed     int       `json:"passed"`
	Total      int       `json:"total"`
	PassRate   float64   `json:"passRate"`
	Methods    string    `json:"methods,omitempty"`
}

// EvaluationStatusRow flags incomplete evaluation coverage for a section:
// actual counts evaluation rows with grades entered, expected counts the
// course's objective mappings.
type EvaluationStatusRow struct {
	CourseCode       string `json:"courseCode"`
	SectionNum       int    `json:"sectionNum"`
	CourseName       string `json:"courseName"`
	ActualEvals      int    `json:"actualEvals"`
	ExpectedEvals    int    `json:"expectedEvals"`
	ImprovementCount int    `json:"improvementCount"`
}

// SectionEvalSummary is one row of the evaluation-selection view: a
// section an instructor teaches in a term, with how many evaluation rows
// already exist for the chosen degree.
type SectionEvalSummary struct {
	CourseCode string `json:"courseCode"`
	SectionNum int    `json:"sectionNum"`
	CourseName string `json:"courseName"`
	EvalCount  int    `json:"evalCount"`
}
