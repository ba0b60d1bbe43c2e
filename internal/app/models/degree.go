package models

// DegreeKey identifies a degree program. Programs with the same name at
// different levels (e.g. CS BS and CS MS) are distinct degrees.
type DegreeKey struct {
	Name  string      `json:"degreeName" db:"degree_name"`
	Level DegreeLevel `json:"degreeLevel" db:"degree_level"`
}

// Degree represents an academic program tracked for accreditation.
type Degree struct {
	Name        string      `json:"degreeName" db:"degree_name"`
	Level       DegreeLevel `json:"degreeLevel" db:"degree_level"`
	Description string      `json:"description,omitempty" db:"description"`
	Status      Status      `json:"status" db:"status"`
}

// Key returns the identifying (name, level) pair.
func (d *Degree) Key() DegreeKey {
	return DegreeKey{Name: d.Name, Level: d.Level}
}
