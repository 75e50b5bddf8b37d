package loan

import (
	"errors"
	"math"
	"testing"
	"time"
)

func almostEqual(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestComputeEMI_PinnedValue(t *testing.T) {
	// 80,000 @ 12% p.a. over 12 months.
	emi, err := ComputeEMI(80000, 12, 12)
	if err != nil {
		t.Fatalf("ComputeEMI: %v", err)
	}
	if emi != 7107.90 {
		t.Fatalf("emi = %v, want 7107.90", emi)
	}
}

func TestComputeEMI_Deterministic(t *testing.T) {
	a, _ := ComputeEMI(250000, 9.5, 48)
	b, _ := ComputeEMI(250000, 9.5, 48)
	if a != b {
		t.Fatalf("same inputs gave %v and %v", a, b)
	}
	if a <= 0 {
		t.Fatalf("emi = %v, want > 0", a)
	}
}

func TestComputeEMI_ZeroRate(t *testing.T) {
	// Straight-line split, not a NaN from the formula.
	emi, err := ComputeEMI(100000, 0, 7)
	if err != nil {
		t.Fatalf("ComputeEMI: %v", err)
	}
	if emi != 14285.71 {
		t.Fatalf("emi = %v, want 14285.71", emi)
	}
}

func TestComputeEMI_InvalidInput(t *testing.T) {
	cases := []struct {
		name      string
		principal float64
		rate      float64
		tenure    int
	}{
		{"zero principal", 0, 10, 12},
		{"negative principal", -5000, 10, 12},
		{"zero tenure", 50000, 10, 0},
		{"negative rate", 50000, -1, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ComputeEMI(tc.principal, tc.rate, tc.tenure); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestGenerateSchedule_Invariants(t *testing.T) {
	const (
		principal = 80000.0
		rate      = 12.0
		tenure    = 12
	)
	emi, err := ComputeEMI(principal, rate, tenure)
	if err != nil {
		t.Fatalf("ComputeEMI: %v", err)
	}
	start := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	sched := GenerateSchedule(principal, rate, tenure, emi, start)
	if len(sched) != tenure {
		t.Fatalf("len = %d, want %d", len(sched), tenure)
	}

	// Principal column sums to the loan amount within tenure cents.
	var sumPrincipal float64
	for _, row := range sched {
		sumPrincipal += row.PrincipalAmount
	}
	if !almostEqual(sumPrincipal, principal, float64(tenure)*0.01) {
		t.Fatalf("sum(principal) = %v, want %v ± %v", sumPrincipal, principal, float64(tenure)*0.01)
	}

	// First row pins the per-step rounding behavior.
	first := sched[0]
	if first.EMINumber != 1 || first.DueDate != "2025-02-15" {
		t.Fatalf("first row = %+v", first)
	}
	if first.InterestAmount != 800.00 || first.PrincipalAmount != 6307.90 {
		t.Fatalf("first split = %v interest / %v principal", first.InterestAmount, first.PrincipalAmount)
	}

	// Terminal balance is floored at zero and within the rounding tolerance.
	last := sched[len(sched)-1]
	if last.OutstandingBalance < 0 {
		t.Fatalf("terminal balance %v < 0", last.OutstandingBalance)
	}
	if last.OutstandingBalance > float64(tenure)*0.01 {
		t.Fatalf("terminal balance %v exceeds tolerance", last.OutstandingBalance)
	}
	if sched[1].DueDate != "2025-03-15" {
		t.Fatalf("second due date = %s", sched[1].DueDate)
	}
}

func TestGenerateSchedule_MonthRollover(t *testing.T) {
	// Jan 31 + 1 month must use calendar arithmetic, not a 30-day add.
	emi, _ := ComputeEMI(12000, 0, 12)
	start := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	sched := GenerateSchedule(12000, 0, 12, emi, start)
	if sched[0].DueDate != "2025-03-03" { // AddDate normalizes Feb 31
		t.Fatalf("rollover due date = %s", sched[0].DueDate)
	}
}

func TestGenerateSchedule_EmptyWhenNotReady(t *testing.T) {
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	if got := GenerateSchedule(80000, 12, 12, 0, start); len(got) != 0 {
		t.Fatalf("missing emi: len = %d, want 0", len(got))
	}
	if got := GenerateSchedule(80000, 12, 12, 7107.90, time.Time{}); len(got) != 0 {
		t.Fatalf("missing start date: len = %d, want 0", len(got))
	}
	if got := GenerateSchedule(80000, 12, 0, 7107.90, start); len(got) != 0 {
		t.Fatalf("missing tenure: len = %d, want 0", len(got))
	}
}

func TestGenerateSchedule_ZeroRate(t *testing.T) {
	emi, _ := ComputeEMI(60000, 0, 6)
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	sched := GenerateSchedule(60000, 0, 6, emi, start)
	if len(sched) != 6 {
		t.Fatalf("len = %d, want 6", len(sched))
	}
	for _, row := range sched {
		if row.InterestAmount != 0 {
			t.Fatalf("row %d interest = %v, want 0", row.EMINumber, row.InterestAmount)
		}
		if row.Status != InstallmentPending {
			t.Fatalf("row %d status = %s", row.EMINumber, row.Status)
		}
	}
	if sched[5].OutstandingBalance != 0 {
		t.Fatalf("terminal balance = %v, want 0", sched[5].OutstandingBalance)
	}
}
