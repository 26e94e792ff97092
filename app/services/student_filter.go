package services

import (
	"errors"
	"sort"
	"strings"

	"student-management/app/models"
)

// ErrGradeSelectionRequired is returned when the student list is requested
// without any grade selection. The list deliberately never defaults to all
// grades; callers render the grade picker instead.
var ErrGradeSelectionRequired = errors.New("at least one grade must be selected")

// StudentFilters holds the list view parameters. Every field except Grades is
// optional and the filters combine independently.
type StudentFilters struct {
	Grades        []string // grade codes, or the sentinel "all"
	Search        string   // substring over name or phone, case-insensitive
	Month         string   // "" / "all" or one month token
	PaymentStatus string   // "" / "all" / "paid" / "unpaid" / "partial"
	SortBy        models.SortKey
}

// selectedMonth reports the single-month filter, if one is active.
func (f StudentFilters) selectedMonth() (models.Month, bool) {
	if f.Month == "" || f.Month == "all" {
		return "", false
	}
	return models.Month(f.Month), true
}

// BuildStudentList turns candidate students into the final display list: it
// computes each student's summary, applies the filters, sorts the survivors
// and accumulates the run totals. The input is never mutated; this is purely
// view construction, shared by the list page, the dashboard and the CSV
// export.
func BuildStudentList(students []*models.Student, paymentsByStudent map[string][]*models.Payment, year int, f StudentFilters) (*models.StudentListResult, error) {
	if !hasGradeSelection(f.Grades) {
		return nil, ErrGradeSelectionRequired
	}

	result := &models.StudentListResult{Rows: make([]models.StudentRow, 0, len(students))}

	for _, student := range students {
		if !matchesGrades(student, f.Grades) {
			continue
		}
		if !matchesSearch(student, f.Search) {
			continue
		}

		summary := ComputePaymentSummary(student.Grade.MonthlyFee, paymentsByStudent[student.ID], year)
		if !matchesPaymentStatus(summary, f) {
			continue
		}

		result.Rows = append(result.Rows, models.StudentRow{Student: student, Summary: summary})
		result.TotalPaid += summary.TotalPaid
		result.TotalPending += summary.TotalPending
	}

	sortRows(result.Rows, f.SortBy)
	return result, nil
}

func hasGradeSelection(grades []string) bool {
	for _, g := range grades {
		if g != "" {
			return true
		}
	}
	return false
}

func matchesGrades(student *models.Student, grades []string) bool {
	for _, g := range grades {
		if g == "all" || g == string(student.Grade.Code) {
			return true
		}
	}
	return false
}

func matchesSearch(student *models.Student, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(student.FullName), needle) ||
		strings.Contains(strings.ToLower(student.GuardianPhone), needle)
}

// matchesPaymentStatus applies the payment-status filter. With a single month
// selected the flag of that month decides, and "partial" means "unpaid"
// because one month cannot be partially paid. With no month selected the
// yearly classification decides.
func matchesPaymentStatus(summary *models.PaymentSummary, f StudentFilters) bool {
	status := f.PaymentStatus
	if status == "" || status == "all" {
		return true
	}

	if month, ok := f.selectedMonth(); ok {
		paid := summary.PaidFor(month)
		switch status {
		case "paid":
			return paid
		case "unpaid", "partial":
			return !paid
		}
		return true
	}

	return string(summary.Status) == status
}

// sortRows orders the list stably with a full tiebreak chain, so equal keys
// never flip between runs.
func sortRows(rows []models.StudentRow, key models.SortKey) {
	less := func(a, b models.StudentRow) bool {
		return lessByName(a, b)
	}

	switch key {
	case models.SortByGrade:
		less = func(a, b models.StudentRow) bool {
			if a.Student.Grade.Code != b.Student.Grade.Code {
				return a.Student.Grade.Code < b.Student.Grade.Code
			}
			return lessByName(a, b)
		}
	case models.SortByTotalPaid:
		less = func(a, b models.StudentRow) bool {
			if a.Summary.TotalPaid != b.Summary.TotalPaid {
				return a.Summary.TotalPaid > b.Summary.TotalPaid
			}
			return lessByName(a, b)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
}

func lessByName(a, b models.StudentRow) bool {
	an, bn := strings.ToLower(a.Student.FullName), strings.ToLower(b.Student.FullName)
	if an != bn {
		return an < bn
	}
	if a.Student.FullName != b.Student.FullName {
		return a.Student.FullName < b.Student.FullName
	}
	return a.Student.ID < b.Student.ID
}
