package models

// Grade represents a grade level with its monthly fee. Rows are created by
// the seeder and mutated only through fee updates; deleting a grade cascades
// to its students.
type Grade struct {
	ID         string    `json:"id"`
	Code       GradeCode `json:"code"`
	Name       string    `json:"name"`
	MonthlyFee float64   `json:"monthly_fee"`
}
