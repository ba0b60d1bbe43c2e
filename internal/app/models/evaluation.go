package models

// Evaluation records the grade-distribution outcome for one section
// against one degree-specific objective.
//
// Invariant: CountA+CountB+CountC+CountF is either 0 (not yet entered) or
// exactly the parent section's enrollment. The evaluation service rejects
// any other total before writing.
type Evaluation struct {
	Section     SectionKey `json:"section"`
	Degree      DegreeKey  `json:"degree"`
	ObjCode     string     `json:"objCode" db:"obj_code"`
	CountA      int        `json:"countA" db:"count_a"`
	CountB      int        `json:"countB" db:"count_b"`
	CountC      int        `json:"countC" db:"count_c"`
	CountF      int        `json:"countF" db:"count_f"`
	Improvement string     `json:"improvement,omitempty" db:"improvement"`

	// Methods are the free-text assessment methods attached to this row,
	// managed with replace semantics on every save.
	Methods []string `json:"methods,omitempty"`
}

// Total returns the number of graded students across all buckets.
func (e *Evaluation) Total() int {
	return e.CountA + e.CountB + e.CountC + e.CountF
}

// EvaluationFormRow is one objective's slice of the evaluation edit form:
// the objective itself plus any previously saved counts and methods.
type EvaluationFormRow struct {
	Objective   Objective `json:"objective"`
	CountA      int       `json:"countA"`
	CountB      int       `json:"countB"`
	CountC      int       `json:"countC"`
	CountF      int       `json:"countF"`
	Improvement string    `json:"improvement,omitempty"`
	Methods     []string  `json:"methods,omitempty"`
	HasData     bool      `json:"hasData"`
}
