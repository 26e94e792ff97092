package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"student-management/app/models"
	"student-management/app/services"
)

func exportFixture(t *testing.T) []models.StudentRow {
	t.Helper()

	grade := &models.Grade{ID: "g1", Code: models.Grade1, Name: "Preparatory 1", MonthlyFee: 500}
	students := []*models.Student{
		{ID: "s1", FullName: "Ahmed Mohamed", GuardianPhone: "01234567890", Grade: grade},
		{ID: "s2", FullName: "Fatma Hassan", GuardianPhone: "01098765432", Grade: grade},
	}

	payments := map[string][]*models.Payment{}
	for _, m := range models.Months {
		payments["s1"] = append(payments["s1"], &models.Payment{
			StudentID: "s1", Month: m, Year: 2025, Amount: 500, IsPaid: m == models.October,
		})
	}

	result, err := services.BuildStudentList(students, payments, 2025, services.StudentFilters{
		Grades: []string{"all"},
		SortBy: models.SortByName,
	})
	if err != nil {
		t.Fatal(err)
	}
	return result.Rows
}

func TestWriteStudentsCSV_BOMPrefix(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteStudentsCSV(&buf, exportFixture(t)); err != nil {
		t.Fatal(err)
	}

	out := buf.Bytes()
	if len(out) < 3 || out[0] != 0xEF || out[1] != 0xBB || out[2] != 0xBF {
		t.Errorf("output does not start with the UTF-8 BOM: % x", out[:3])
	}
}

func TestWriteStudentsCSV_RowsAndColumns(t *testing.T) {
	rows := exportFixture(t)

	var buf bytes.Buffer
	if err := WriteStudentsCSV(&buf, rows); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(buf.Bytes(), utf8BOM))).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != len(rows)+1 {
		t.Fatalf("record count = %d, want %d data rows plus header", len(records), len(rows))
	}

	header := records[0]
	wantCols := 4 + models.MonthCount
	if len(header) != wantCols {
		t.Fatalf("header has %d columns, want %d", len(header), wantCols)
	}
	for i, m := range models.Months {
		if header[4+i] != m.Title() {
			t.Errorf("header[%d] = %q, want %q", 4+i, header[4+i], m.Title())
		}
	}

	// s1 paid only october
	ahmed := records[1]
	if ahmed[0] != "Ahmed Mohamed" || ahmed[3] != "500.00" {
		t.Errorf("unexpected first data row: %v", ahmed)
	}
	for i, m := range models.Months {
		want := "Unpaid"
		if m == models.October {
			want = "Paid"
		}
		if ahmed[4+i] != want {
			t.Errorf("%s column = %q, want %q", m, ahmed[4+i], want)
		}
	}

	// s2 has no rows at all: every month exports as Unpaid
	for i := range models.Months {
		if records[2][4+i] != "Unpaid" {
			t.Errorf("month column %d = %q, want Unpaid", i, records[2][4+i])
		}
	}
}
