package models

// Instructor represents a teaching staff member. Archived (Inactive)
// instructors remain referenced by historical Teaches rows but cannot be
// assigned to current or future terms.
type Instructor struct {
	ID         string  `json:"instructorId" db:"instructor_id"`
	FirstName  string  `json:"firstName" db:"first_name"`
	MiddleName *string `json:"middleName,omitempty" db:"middle_name"`
	LastName   string  `json:"lastName" db:"last_name"`
	Email      string  `json:"email" db:"email_id"`
	Phone      *string `json:"phone,omitempty" db:"phone_number"`
	Status     Status  `json:"status" db:"status"`
}
