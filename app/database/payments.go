package database

import (
	"database/sql"

	"student-management/app/models"

	"github.com/lib/pq"
)

// GetPaymentsForStudent returns a student's payment rows for one cycle year
// in fee-cycle order. Months with no row yet are simply absent.
func GetPaymentsForStudent(db *sql.DB, studentID string, year int) ([]*models.Payment, error) {
	query := `SELECT id, student_id, month, year, amount, is_paid, paid_at
			  FROM payments
			  WHERE student_id = $1 AND year = $2
			  ORDER BY array_position(ARRAY['august','september','october','november','december',
			                                'january','february','march','april','may','june'], month)`

	rows, err := db.Query(query, studentID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayments(rows)
}

// GetPaymentsForStudents returns payment rows for a set of students keyed by
// student id, fetched in one query to keep the list view at two round trips.
func GetPaymentsForStudents(db *sql.DB, studentIDs []string, year int) (map[string][]*models.Payment, error) {
	byStudent := make(map[string][]*models.Payment, len(studentIDs))
	if len(studentIDs) == 0 {
		return byStudent, nil
	}

	query := `SELECT id, student_id, month, year, amount, is_paid, paid_at
			  FROM payments
			  WHERE student_id = ANY($1) AND year = $2`

	rows, err := db.Query(query, pq.Array(studentIDs), year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments, err := collectPayments(rows)
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		byStudent[p.StudentID] = append(byStudent[p.StudentID], p)
	}
	return byStudent, nil
}

func collectPayments(rows *sql.Rows) ([]*models.Payment, error) {
	var payments []*models.Payment
	for rows.Next() {
		p := &models.Payment{}
		if err := rows.Scan(&p.ID, &p.StudentID, &p.Month, &p.Year, &p.Amount, &p.IsPaid, &p.PaidAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// UpsertPaymentStatus sets the paid flag for one (student, month, year) cell,
// creating the row with the given fee snapshot on first touch. The statement
// leans on the unique constraint, so concurrent calls for the same cell can
// never produce two rows. paid_at is stamped only when it was empty and the
// flag turns true, and always cleared when the flag turns false; the stored
// amount is never overwritten.
func UpsertPaymentStatus(db *sql.DB, studentID string, month models.Month, year int, isPaid bool, feeSnapshot float64) (*models.Payment, error) {
	query := `INSERT INTO payments (student_id, month, year, amount, is_paid, paid_at)
			  VALUES ($1, $2, $3, $4, $5, CASE WHEN $5 THEN NOW() END)
			  ON CONFLICT (student_id, month, year) DO UPDATE
			  SET is_paid = EXCLUDED.is_paid,
			      paid_at = CASE
			          WHEN EXCLUDED.is_paid THEN COALESCE(payments.paid_at, NOW())
			          ELSE NULL
			      END
			  RETURNING id, student_id, month, year, amount, is_paid, paid_at`

	p := &models.Payment{}
	err := db.QueryRow(query, studentID, month, year, feeSnapshot, isPaid).
		Scan(&p.ID, &p.StudentID, &p.Month, &p.Year, &p.Amount, &p.IsPaid, &p.PaidAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// StudentTotalPaid sums a student's paid amounts for one cycle year.
func StudentTotalPaid(db *sql.DB, studentID string, year int) (float64, error) {
	var total float64
	query := `SELECT COALESCE(SUM(amount), 0)
			  FROM payments
			  WHERE student_id = $1 AND year = $2 AND is_paid = TRUE`
	err := db.QueryRow(query, studentID, year).Scan(&total)
	return total, err
}

// DashboardTotals returns the paid and pending sums over existing payment
// rows for the selected grades. Months with no row yet are not counted here;
// the list view's pending figure adds those from the grade fee.
func DashboardTotals(db *sql.DB, gradeCodes []string, year int) (totalPaid, totalPending float64, err error) {
	query := `SELECT
			      COALESCE(SUM(p.amount) FILTER (WHERE p.is_paid), 0),
			      COALESCE(SUM(p.amount) FILTER (WHERE NOT p.is_paid), 0)
			  FROM payments p
			  JOIN students s ON p.student_id = s.id
			  JOIN grades g ON s.grade_id = g.id
			  WHERE p.year = $1`

	args := []interface{}{year}
	if len(gradeCodes) > 0 && !containsAll(gradeCodes) {
		query += ` AND g.code = ANY($2)`
		args = append(args, pq.Array(gradeCodes))
	}

	err = db.QueryRow(query, args...).Scan(&totalPaid, &totalPending)
	return totalPaid, totalPending, err
}

// MonthlyRevenueByGrade returns, for one month, the collected amount and the
// number of distinct paying students per grade code.
func MonthlyRevenueByGrade(db *sql.DB, month models.Month, year int, gradeCodes []string) (map[models.GradeCode]models.GradeRevenue, error) {
	query := `SELECT g.code, SUM(p.amount), COUNT(DISTINCT p.student_id)
			  FROM payments p
			  JOIN students s ON p.student_id = s.id
			  JOIN grades g ON s.grade_id = g.id
			  WHERE p.month = $1 AND p.year = $2 AND p.is_paid = TRUE`

	args := []interface{}{month, year}
	if len(gradeCodes) > 0 && !containsAll(gradeCodes) {
		query += ` AND g.code = ANY($3)`
		args = append(args, pq.Array(gradeCodes))
	}
	query += ` GROUP BY g.code ORDER BY g.code`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	revenue := make(map[models.GradeCode]models.GradeRevenue)
	for rows.Next() {
		var code models.GradeCode
		var r models.GradeRevenue
		if err := rows.Scan(&code, &r.Revenue, &r.StudentCount); err != nil {
			return nil, err
		}
		revenue[code] = r
	}
	return revenue, rows.Err()
}
