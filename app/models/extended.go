package models

// MonthStatus is one cell of a student's yearly payment picture. Amount is
// the stored snapshot when a row exists, otherwise the grade's current
// monthly fee that would be owed.
type MonthStatus struct {
	Month  Month   `json:"month"`
	Paid   bool    `json:"paid"`
	Amount float64 `json:"amount"`
	Exists bool    `json:"-"`
}

// PaymentSummary is the derived payment picture of one student for one cycle
// year.
type PaymentSummary struct {
	Year                 int           `json:"year"`
	Statuses             []MonthStatus `json:"statuses"`
	PaidMonths           int           `json:"paid_months"`
	UnpaidMonths         int           `json:"unpaid_months"`
	TotalPaid            float64       `json:"total_paid"`
	TotalPending         float64       `json:"total_pending"`
	CompletionPercentage float64       `json:"completion_percentage"`
	Status               PaymentStatus `json:"status"`
}

// PaidFor reports the flag for one month in the summary.
func (s *PaymentSummary) PaidFor(m Month) bool {
	for _, st := range s.Statuses {
		if st.Month == m {
			return st.Paid
		}
	}
	return false
}

// StudentRow pairs a student with its computed summary for list rendering.
type StudentRow struct {
	Student *Student        `json:"student"`
	Summary *PaymentSummary `json:"summary"`
}

// StudentListResult is the final filtered, sorted list plus run totals shared
// by the list view and the dashboard.
type StudentListResult struct {
	Rows         []StudentRow `json:"rows"`
	TotalPaid    float64      `json:"total_paid"`
	TotalPending float64      `json:"total_pending"`
}

// DashboardStats aggregates the headline numbers for the dashboard.
type DashboardStats struct {
	TotalStudents int     `json:"total_students"`
	TotalGrades   int     `json:"total_grades"`
	TotalPaid     float64 `json:"total_paid"`
	TotalPending  float64 `json:"total_pending"`
}

// GradeStudentCount is one dashboard breakdown row.
type GradeStudentCount struct {
	GradeCode    GradeCode `json:"grade_code"`
	GradeName    string    `json:"grade_name"`
	StudentCount int       `json:"student_count"`
}

// GradeRevenue is one grade's slice of a month's collected fees.
type GradeRevenue struct {
	Revenue      float64 `json:"revenue"`
	StudentCount int     `json:"student_count"`
}
