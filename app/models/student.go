package models

import "time"

// Student represents an enrolled student. Each student belongs to exactly one
// grade; deleting a student cascades to its payment rows.
type Student struct {
	ID            string    `json:"id"`
	FullName      string    `json:"full_name"`
	GradeID       string    `json:"grade_id"`
	GuardianPhone string    `json:"guardian_phone"`
	IsExempt      bool      `json:"is_exempt"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Grade *Grade `json:"grade,omitempty"`
}

// StudentInput carries the add/edit form payload.
type StudentInput struct {
	FullName      string `json:"full_name" form:"full_name" validate:"required,min=2,max=100"`
	GradeCode     string `json:"grade_code" form:"grade_code" validate:"required"`
	GuardianPhone string `json:"guardian_phone" form:"guardian_phone" validate:"required,min=7,max=20"`
	IsExempt      bool   `json:"is_exempt" form:"is_exempt"`
}
