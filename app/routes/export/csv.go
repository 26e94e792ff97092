package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"student-management/app/models"
)

// utf8BOM makes Excel detect the encoding; it must be the first three bytes
// of the file.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteStudentsCSV writes the export: a header row, then one row per student
// with the month columns in fixed cycle order.
func WriteStudentsCSV(w io.Writer, rows []models.StudentRow) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	header := []string{"Name", "Grade", "Phone", "Total Paid"}
	for _, month := range models.Months {
		header = append(header, month.Title())
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.Student.FullName,
			row.Student.Grade.Name,
			row.Student.GuardianPhone,
			fmt.Sprintf("%.2f", row.Summary.TotalPaid),
		}
		for _, status := range row.Summary.Statuses {
			if status.Paid {
				record = append(record, "Paid")
			} else {
				record = append(record, "Unpaid")
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
