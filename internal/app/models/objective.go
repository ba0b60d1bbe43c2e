package models

// Objective is a learning outcome in the global catalog.
type Objective struct {
	Code        string `json:"objCode" db:"obj_code"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
}
