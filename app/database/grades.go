package database

import (
	"database/sql"
	"errors"

	"student-management/app/models"
)

// ErrGradeNotFound is returned when a grade code does not resolve.
var ErrGradeNotFound = errors.New("grade not found")

// GetAllGrades returns every grade ordered by code.
func GetAllGrades(db *sql.DB) ([]*models.Grade, error) {
	query := `SELECT id, code, name, monthly_fee FROM grades ORDER BY code`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		g := &models.Grade{}
		if err := rows.Scan(&g.ID, &g.Code, &g.Name, &g.MonthlyFee); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

// GetGradeByCode looks a grade up by its code.
func GetGradeByCode(db *sql.DB, code models.GradeCode) (*models.Grade, error) {
	g := &models.Grade{}
	query := `SELECT id, code, name, monthly_fee FROM grades WHERE code = $1`

	err := db.QueryRow(query, code).Scan(&g.ID, &g.Code, &g.Name, &g.MonthlyFee)
	if err == sql.ErrNoRows {
		return nil, ErrGradeNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// UpdateGradeFee changes a grade's monthly fee. Existing payment rows keep
// their snapshot amount; only rows created afterwards pick up the new fee.
func UpdateGradeFee(db *sql.DB, code models.GradeCode, fee float64) error {
	res, err := db.Exec(`UPDATE grades SET monthly_fee = $1 WHERE code = $2`, fee, code)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrGradeNotFound
	}
	return nil
}

// CountGrades returns the number of configured grades.
func CountGrades(db *sql.DB) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM grades`).Scan(&n)
	return n, err
}
