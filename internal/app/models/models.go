package models

import "fmt"

// DegreeLevel defines the academic level of a degree program.
type DegreeLevel string

const (
	LevelBA   DegreeLevel = "BA"
	LevelBS   DegreeLevel = "BS"
	LevelMS   DegreeLevel = "MS"
	LevelPhD  DegreeLevel = "PhD"
	LevelCert DegreeLevel = "Cert"
)

// Valid reports whether l is one of the known degree levels.
func (l DegreeLevel) Valid() bool {
	switch l {
	case LevelBA, LevelBS, LevelMS, LevelPhD, LevelCert:
		return true
	}
	return false
}

// Semester represents an academic term within a year.
type Semester string

const (
	SemesterSpring Semester = "Spring"
	SemesterSummer Semester = "Summer"
	SemesterFall   Semester = "Fall"
)

// Valid reports whether s is one of the known semesters.
func (s Semester) Valid() bool {
	return s.ordinal() != 0
}

// ordinal orders semesters within a year: Spring < Summer < Fall.
func (s Semester) ordinal() int {
	switch s {
	case SemesterSpring:
		return 1
	case SemesterSummer:
		return 2
	case SemesterFall:
		return 3
	}
	return 0
}

// TermOrdinal encodes (year, semester) so that term ranges spanning
// multiple years compare correctly: year*10 + Spring=1/Summer=2/Fall=3.
// This is the single source of term ordering; the report repository's SQL
// fragment mirrors it.
func TermOrdinal(year int, s Semester) int {
	return year*10 + s.ordinal()
}

// Status is the soft-delete lifecycle state for catalog entities.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// FormatSectionNum renders a section number in its 3-digit display form
// ("001", "042").
func FormatSectionNum(n int) string {
	return fmt.Sprintf("%03d", n)
}
