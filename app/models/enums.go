package models

import "fmt"

// Month identifies one month of the 11-month fee cycle (August through June).
// January–June belong to the following calendar year but are stored under the
// same cycle year as August–December; the cycle is keyed by the year it
// starts in.
type Month string

const (
	August    Month = "august"
	September Month = "september"
	October   Month = "october"
	November  Month = "november"
	December  Month = "december"
	January   Month = "january"
	February  Month = "february"
	March     Month = "march"
	April     Month = "april"
	May       Month = "may"
	June      Month = "june"
)

// MonthCount is the fixed length of the fee cycle.
const MonthCount = 11

// Months lists the fee cycle in display order.
var Months = []Month{
	August, September, October, November, December,
	January, February, March, April, May, June,
}

var monthTitles = map[Month]string{
	August:    "August",
	September: "September",
	October:   "October",
	November:  "November",
	December:  "December",
	January:   "January",
	February:  "February",
	March:     "March",
	April:     "April",
	May:       "May",
	June:      "June",
}

// ParseMonth validates a month token from the request boundary.
func ParseMonth(s string) (Month, error) {
	m := Month(s)
	if _, ok := monthTitles[m]; !ok {
		return "", fmt.Errorf("invalid month %q", s)
	}
	return m, nil
}

func (m Month) Valid() bool {
	_, ok := monthTitles[m]
	return ok
}

// Title returns the display name used in page headers and CSV columns.
func (m Month) Title() string {
	return monthTitles[m]
}

// PaymentStatus classifies a student's payment state for a year or a single
// month. A single month is never partial.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "paid"
	StatusPartial PaymentStatus = "partial"
	StatusUnpaid  PaymentStatus = "unpaid"
)

// GradeCode identifies a grade level. The set is closed; free-form codes are
// rejected at the boundary.
type GradeCode string

const (
	Grade1 GradeCode = "grade1"
	Grade2 GradeCode = "grade2"
	Grade3 GradeCode = "grade3"
	Grade4 GradeCode = "grade4"
	Grade5 GradeCode = "grade5"
	Grade6 GradeCode = "grade6"
)

// GradeCodes lists all grade levels in ascending order.
var GradeCodes = []GradeCode{Grade1, Grade2, Grade3, Grade4, Grade5, Grade6}

var gradeNames = map[GradeCode]string{
	Grade1: "Preparatory 1",
	Grade2: "Preparatory 2",
	Grade3: "Preparatory 3",
	Grade4: "Secondary 1",
	Grade5: "Secondary 2",
	Grade6: "Secondary 3",
}

// ParseGradeCode validates a grade code from the request boundary.
func ParseGradeCode(s string) (GradeCode, error) {
	g := GradeCode(s)
	if _, ok := gradeNames[g]; !ok {
		return "", fmt.Errorf("invalid grade code %q", s)
	}
	return g, nil
}

func (g GradeCode) Valid() bool {
	_, ok := gradeNames[g]
	return ok
}

// DisplayName returns the human-readable grade name used when no database row
// is at hand.
func (g GradeCode) DisplayName() string {
	return gradeNames[g]
}

// SortKey defines the student list orderings.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByGrade     SortKey = "grade"
	SortByTotalPaid SortKey = "total_paid"
)
