package models

import "testing"

func TestMonths_FixedCycle(t *testing.T) {
	if len(Months) != MonthCount {
		t.Fatalf("len(Months) = %d, want %d", len(Months), MonthCount)
	}
	if Months[0] != August || Months[MonthCount-1] != June {
		t.Errorf("cycle must run August through June, got %s..%s", Months[0], Months[MonthCount-1])
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "august", wantErr: false},
		{input: "june", wantErr: false},
		{input: "july", wantErr: true}, // july is outside the fee cycle
		{input: "October", wantErr: true},
		{input: "", wantErr: true},
		{input: "all", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := ParseMonth(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseMonth(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && string(m) != tt.input {
				t.Errorf("ParseMonth(%q) = %q", tt.input, m)
			}
		})
	}
}

func TestParseGradeCode(t *testing.T) {
	for _, code := range GradeCodes {
		if got, err := ParseGradeCode(string(code)); err != nil || got != code {
			t.Errorf("ParseGradeCode(%q) = %q, %v", code, got, err)
		}
		if code.DisplayName() == "" {
			t.Errorf("DisplayName(%q) is empty", code)
		}
	}

	for _, bad := range []string{"grade7", "all", "", "Grade1"} {
		if _, err := ParseGradeCode(bad); err == nil {
			t.Errorf("ParseGradeCode(%q) accepted an invalid code", bad)
		}
	}
}
