package database

import (
	"database/sql"
	"errors"
	"fmt"

	"student-management/app/models"

	"github.com/lib/pq"
)

// ErrStudentNotFound is returned when a student id does not resolve.
var ErrStudentNotFound = errors.New("student not found")

const studentColumns = `
	s.id, s.full_name, s.grade_id, s.guardian_phone, s.is_exempt,
	s.created_at, s.updated_at,
	g.id, g.code, g.name, g.monthly_fee`

func scanStudent(scanner interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{Grade: &models.Grade{}}
	err := scanner.Scan(
		&s.ID, &s.FullName, &s.GradeID, &s.GuardianPhone, &s.IsExempt,
		&s.CreatedAt, &s.UpdatedAt,
		&s.Grade.ID, &s.Grade.Code, &s.Grade.Name, &s.Grade.MonthlyFee,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetStudents returns students with their grade preloaded, filtered at the
// storage layer by grade codes and a case-insensitive search over name and
// phone. A gradeCodes slice containing "all" (or an empty slice) applies no
// grade filter; the mandatory-selection gate lives in the filter engine, not
// here.
func GetStudents(db *sql.DB, gradeCodes []string, search string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + `
			  FROM students s
			  JOIN grades g ON s.grade_id = g.id`

	var conditions []string
	var args []interface{}
	argIndex := 1

	if len(gradeCodes) > 0 && !containsAll(gradeCodes) {
		conditions = append(conditions, fmt.Sprintf("g.code = ANY($%d)", argIndex))
		args = append(args, pq.Array(gradeCodes))
		argIndex++
	}

	if search != "" {
		conditions = append(conditions,
			fmt.Sprintf("(s.full_name ILIKE $%d OR s.guardian_phone ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+search+"%")
		argIndex++
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY s.full_name, s.id"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentByID returns one student with its grade preloaded.
func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + `
			  FROM students s
			  JOIN grades g ON s.grade_id = g.id
			  WHERE s.id = $1`

	s, err := scanStudent(db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateStudent inserts a student and its 11 unpaid payment rows for the
// given cycle year in one transaction. Each row snapshots the grade's current
// monthly fee.
func CreateStudent(db *sql.DB, input *models.StudentInput, grade *models.Grade, year int) (*models.Student, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	s := &models.Student{
		FullName:      input.FullName,
		GradeID:       grade.ID,
		GuardianPhone: input.GuardianPhone,
		IsExempt:      input.IsExempt,
		Grade:         grade,
	}

	queryStudent := `INSERT INTO students (full_name, grade_id, guardian_phone, is_exempt)
	                 VALUES ($1, $2, $3, $4)
	                 RETURNING id, created_at, updated_at`
	err = tx.QueryRow(queryStudent, s.FullName, s.GradeID, s.GuardianPhone, s.IsExempt).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert student: %w", err)
	}

	queryPayment := `INSERT INTO payments (student_id, month, year, amount, is_paid)
	                 VALUES ($1, $2, $3, $4, FALSE)`
	for _, month := range models.Months {
		if _, err := tx.Exec(queryPayment, s.ID, month, year, grade.MonthlyFee); err != nil {
			return nil, fmt.Errorf("failed to insert payment row for %s: %w", month, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateStudent updates the editable student fields. Existing payment rows
// are left untouched even when the grade changes.
func UpdateStudent(db *sql.DB, id string, input *models.StudentInput, grade *models.Grade) error {
	query := `UPDATE students
	          SET full_name = $1, grade_id = $2, guardian_phone = $3, is_exempt = $4, updated_at = NOW()
	          WHERE id = $5`
	res, err := db.Exec(query, input.FullName, grade.ID, input.GuardianPhone, input.IsExempt, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// DeleteStudent removes a student; its payment rows go with it via the
// ON DELETE CASCADE constraint.
func DeleteStudent(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// CountStudents counts students, optionally restricted to a grade set.
func CountStudents(db *sql.DB, gradeCodes []string) (int, error) {
	query := `SELECT COUNT(*) FROM students s JOIN grades g ON s.grade_id = g.id`
	var args []interface{}
	if len(gradeCodes) > 0 && !containsAll(gradeCodes) {
		query += ` WHERE g.code = ANY($1)`
		args = append(args, pq.Array(gradeCodes))
	}

	var n int
	err := db.QueryRow(query, args...).Scan(&n)
	return n, err
}

// GradeStudentCounts returns the per-grade student breakdown for the
// dashboard, restricted to the selected grades.
func GradeStudentCounts(db *sql.DB, gradeCodes []string) ([]*models.GradeStudentCount, error) {
	query := `SELECT g.code, g.name, COUNT(s.id)
			  FROM grades g
			  LEFT JOIN students s ON s.grade_id = g.id`
	var args []interface{}
	if len(gradeCodes) > 0 && !containsAll(gradeCodes) {
		query += ` WHERE g.code = ANY($1)`
		args = append(args, pq.Array(gradeCodes))
	}
	query += ` GROUP BY g.code, g.name ORDER BY g.code`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []*models.GradeStudentCount
	for rows.Next() {
		c := &models.GradeStudentCount{}
		if err := rows.Scan(&c.GradeCode, &c.GradeName, &c.StudentCount); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func containsAll(codes []string) bool {
	for _, c := range codes {
		if c == "all" {
			return true
		}
	}
	return false
}
