package loan

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// ComputeEMI calculates the equated monthly installment for a loan using the
// standard amortization formula:
//
//	r   = annualRatePercent / 100 / 12
//	emi = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate falls back to a straight-line split P/n (the formula would
// divide by zero). The result is rounded to 2 decimals, half away from zero.
func ComputeEMI(principal, annualRatePercent float64, tenureMonths int) (float64, error) {
	if principal <= 0 {
		return 0, fmt.Errorf("%w: principal must be > 0, got %v", ErrInvalidInput, principal)
	}
	if tenureMonths <= 0 {
		return 0, fmt.Errorf("%w: tenure must be > 0 months, got %d", ErrInvalidInput, tenureMonths)
	}
	if annualRatePercent < 0 {
		return 0, fmt.Errorf("%w: rate must be >= 0, got %v", ErrInvalidInput, annualRatePercent)
	}

	monthlyRate := annualRatePercent / 100 / 12
	if monthlyRate == 0 {
		emi := decimal.NewFromFloat(principal).
			Div(decimal.NewFromInt(int64(tenureMonths))).
			Round(2)
		return emi.InexactFloat64(), nil
	}

	// The power term needs float64; switch back to decimal for the rounding.
	factor := math.Pow(1+monthlyRate, float64(tenureMonths))
	raw := principal * monthlyRate * factor / (factor - 1)
	return decimal.NewFromFloat(raw).Round(2).InexactFloat64(), nil
}

// GenerateSchedule produces the month-by-month repayment table for a
// disbursed loan. Every monetary value is rounded to 2 decimals at each step,
// the way printed amortization tables are built, so the principal column sums
// to the loan amount only within tenureMonths cents. Due dates advance by
// whole calendar months from startDate (AddDate handles month rollover).
//
// A missing emi, start date, or tenure yields an empty schedule, not an
// error: the loan simply has no schedule yet.
func GenerateSchedule(principal, annualRatePercent float64, tenureMonths int, emi float64, startDate time.Time) []Installment {
	if emi <= 0 || startDate.IsZero() || tenureMonths <= 0 {
		return []Installment{}
	}

	monthlyRate := decimal.NewFromFloat(annualRatePercent / 100 / 12)
	emiAmt := decimal.NewFromFloat(emi).Round(2)
	remaining := decimal.NewFromFloat(principal)

	schedule := make([]Installment, 0, tenureMonths)
	for i := 1; i <= tenureMonths; i++ {
		interest := remaining.Mul(monthlyRate).Round(2)
		principalPart := emiAmt.Sub(interest)
		remaining = remaining.Sub(principalPart)

		// Terminal rounding drift can push the balance a hair below zero.
		outstanding := remaining
		if outstanding.IsNegative() {
			outstanding = decimal.Zero
		}

		schedule = append(schedule, Installment{
			EMINumber:          i,
			DueDate:            startDate.AddDate(0, i, 0).Format("2006-01-02"),
			EMIAmount:          emiAmt.InexactFloat64(),
			PrincipalAmount:    principalPart.InexactFloat64(),
			InterestAmount:     interest.InexactFloat64(),
			OutstandingBalance: outstanding.Round(2).InexactFloat64(),
			Status:             InstallmentPending,
		})
	}
	return schedule
}
