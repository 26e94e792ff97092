package services

import (
	"math"

	"student-management/app/models"
)

// ComputePaymentSummary derives a student's payment picture for one cycle
// year from its fetched rows. It is a pure read: months with no row yet are
// reported unpaid and never created here.
//
// Two policies are fixed deliberately:
//   - the pending total includes a virtual amount (the grade's current
//     monthly fee) for months whose row does not exist yet, since under lazy
//     row creation those months are still owed;
//   - the completion percentage always uses the fixed 11-month cycle as the
//     denominator, so the figure is stable regardless of how many rows exist.
func ComputePaymentSummary(monthlyFee float64, payments []*models.Payment, year int) *models.PaymentSummary {
	byMonth := make(map[models.Month]*models.Payment, len(payments))
	for _, p := range payments {
		if p.Year == year {
			byMonth[p.Month] = p
		}
	}

	summary := &models.PaymentSummary{
		Year:     year,
		Statuses: make([]models.MonthStatus, 0, models.MonthCount),
	}

	for _, month := range models.Months {
		status := models.MonthStatus{Month: month, Amount: monthlyFee}
		if p, ok := byMonth[month]; ok {
			status.Exists = true
			status.Paid = p.IsPaid
			status.Amount = p.Amount
		}

		if status.Paid {
			summary.PaidMonths++
			summary.TotalPaid += status.Amount
		} else {
			summary.UnpaidMonths++
			summary.TotalPending += status.Amount
		}
		summary.Statuses = append(summary.Statuses, status)
	}

	summary.CompletionPercentage = round2(float64(summary.PaidMonths) / models.MonthCount * 100)
	summary.Status = classifyYear(summary.PaidMonths)
	return summary
}

func classifyYear(paidMonths int) models.PaymentStatus {
	switch {
	case paidMonths == models.MonthCount:
		return models.StatusPaid
	case paidMonths > 0:
		return models.StatusPartial
	default:
		return models.StatusUnpaid
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
