package services

import (
	"testing"
	"time"

	"student-management/app/models"
)

func payment(month models.Month, year int, amount float64, paid bool) *models.Payment {
	p := &models.Payment{
		StudentID: "s1",
		Month:     month,
		Year:      year,
		Amount:    amount,
		IsPaid:    paid,
	}
	if paid {
		now := time.Now()
		p.PaidAt = &now
	}
	return p
}

func TestComputePaymentSummary_NewStudent(t *testing.T) {
	// A freshly added student has 11 unpaid rows.
	var payments []*models.Payment
	for _, m := range models.Months {
		payments = append(payments, payment(m, 2025, 500, false))
	}

	summary := ComputePaymentSummary(500, payments, 2025)

	if summary.PaidMonths != 0 {
		t.Errorf("PaidMonths = %d, want 0", summary.PaidMonths)
	}
	if summary.CompletionPercentage != 0 {
		t.Errorf("CompletionPercentage = %v, want 0", summary.CompletionPercentage)
	}
	if summary.Status != models.StatusUnpaid {
		t.Errorf("Status = %s, want %s", summary.Status, models.StatusUnpaid)
	}
	if summary.TotalPending != 11*500 {
		t.Errorf("TotalPending = %v, want %v", summary.TotalPending, 11*500.0)
	}
}

func TestComputePaymentSummary_OnePaidMonth(t *testing.T) {
	var payments []*models.Payment
	for _, m := range models.Months {
		payments = append(payments, payment(m, 2025, 500, m == models.October))
	}

	summary := ComputePaymentSummary(500, payments, 2025)

	if summary.PaidMonths != 1 {
		t.Errorf("PaidMonths = %d, want 1", summary.PaidMonths)
	}
	if summary.TotalPaid != 500 {
		t.Errorf("TotalPaid = %v, want 500", summary.TotalPaid)
	}
	if summary.CompletionPercentage != 9.09 {
		t.Errorf("CompletionPercentage = %v, want 9.09", summary.CompletionPercentage)
	}
	if summary.Status != models.StatusPartial {
		t.Errorf("Status = %s, want %s", summary.Status, models.StatusPartial)
	}
	if !summary.PaidFor(models.October) {
		t.Error("PaidFor(october) = false, want true")
	}
	if summary.PaidFor(models.November) {
		t.Error("PaidFor(november) = true, want false")
	}
}

func TestComputePaymentSummary_MonthInvariant(t *testing.T) {
	// paid + unpaid always equals the fixed cycle length, however many rows
	// exist.
	tests := []struct {
		name     string
		payments []*models.Payment
	}{
		{name: "no rows", payments: nil},
		{name: "partial rows", payments: []*models.Payment{
			payment(models.August, 2025, 500, true),
			payment(models.January, 2025, 500, false),
		}},
		{name: "full rows", payments: func() []*models.Payment {
			var ps []*models.Payment
			for _, m := range models.Months {
				ps = append(ps, payment(m, 2025, 500, true))
			}
			return ps
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := ComputePaymentSummary(500, tt.payments, 2025)
			if summary.PaidMonths+summary.UnpaidMonths != models.MonthCount {
				t.Errorf("PaidMonths + UnpaidMonths = %d, want %d",
					summary.PaidMonths+summary.UnpaidMonths, models.MonthCount)
			}
			if len(summary.Statuses) != models.MonthCount {
				t.Errorf("len(Statuses) = %d, want %d", len(summary.Statuses), models.MonthCount)
			}
		})
	}
}

func TestComputePaymentSummary_MissingRowsOwedAtCurrentFee(t *testing.T) {
	// Only two rows exist; the other nine months are owed at the grade's
	// current fee, not the rows' snapshot amount.
	payments := []*models.Payment{
		payment(models.August, 2025, 400, true),   // old fee snapshot
		payment(models.September, 2025, 400, false),
	}

	summary := ComputePaymentSummary(600, payments, 2025)

	if summary.TotalPaid != 400 {
		t.Errorf("TotalPaid = %v, want 400 (snapshot amount)", summary.TotalPaid)
	}
	wantPending := 400 + 9*600.0
	if summary.TotalPending != wantPending {
		t.Errorf("TotalPending = %v, want %v", summary.TotalPending, wantPending)
	}
}

func TestComputePaymentSummary_IgnoresOtherYears(t *testing.T) {
	payments := []*models.Payment{
		payment(models.October, 2024, 500, true),
		payment(models.October, 2025, 500, false),
	}

	summary := ComputePaymentSummary(500, payments, 2025)

	if summary.PaidMonths != 0 {
		t.Errorf("PaidMonths = %d, want 0 (2024 row must not count)", summary.PaidMonths)
	}
}

func TestComputePaymentSummary_YearlyClassification(t *testing.T) {
	tests := []struct {
		name       string
		paidMonths int
		want       models.PaymentStatus
	}{
		{name: "none paid", paidMonths: 0, want: models.StatusUnpaid},
		{name: "one paid", paidMonths: 1, want: models.StatusPartial},
		{name: "ten paid", paidMonths: 10, want: models.StatusPartial},
		{name: "all paid", paidMonths: 11, want: models.StatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payments []*models.Payment
			for i, m := range models.Months {
				payments = append(payments, payment(m, 2025, 500, i < tt.paidMonths))
			}
			summary := ComputePaymentSummary(500, payments, 2025)
			if summary.Status != tt.want {
				t.Errorf("Status = %s, want %s", summary.Status, tt.want)
			}
		})
	}
}

func TestComputePaymentSummary_CompletionRounding(t *testing.T) {
	// The denominator is always the fixed 11-month cycle.
	tests := []struct {
		paidMonths int
		want       float64
	}{
		{0, 0},
		{1, 9.09},
		{2, 18.18},
		{5, 45.45},
		{10, 90.91},
		{11, 100},
	}

	for _, tt := range tests {
		var payments []*models.Payment
		for i, m := range models.Months {
			payments = append(payments, payment(m, 2025, 500, i < tt.paidMonths))
		}
		summary := ComputePaymentSummary(500, payments, 2025)
		if summary.CompletionPercentage != tt.want {
			t.Errorf("paidMonths=%d: CompletionPercentage = %v, want %v",
				tt.paidMonths, summary.CompletionPercentage, tt.want)
		}
	}
}
