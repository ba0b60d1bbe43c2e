package models

// Course represents a course in the global catalog.
type Course struct {
	Code   string `json:"courseCode" db:"course_code"`
	Name   string `json:"courseName" db:"course_name"`
	Status Status `json:"status" db:"status"`
}
