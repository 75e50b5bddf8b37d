package loan

import "math"

// ScoreInput carries the applicant attributes the eligibility heuristic
// looks at. CreditScore is nil when the bureau has no record; that simply
// contributes zero points.
type ScoreInput struct {
	AnnualIncome        float64
	LoanAmountRequested float64
	CreditScore         *int
	WorkExperienceYears int
	EmploymentType      EmploymentType
	DocumentsSubmitted  map[string]bool
}

// Score computes the 0–100 creditworthiness heuristic. Pure function:
// persisting the result is the caller's job. Weighted components, inclusive
// lower bounds evaluated top-down, sum capped at 100.
func Score(in ScoreInput) int {
	score := 0

	// Income-to-loan ratio (30 points)
	if in.LoanAmountRequested > 0 {
		ratio := in.AnnualIncome / in.LoanAmountRequested
		switch {
		case ratio >= 3:
			score += 30
		case ratio >= 2:
			score += 20
		case ratio >= 1.5:
			score += 10
		}
	}

	// Credit score (25 points)
	if in.CreditScore != nil {
		switch cs := *in.CreditScore; {
		case cs >= 750:
			score += 25
		case cs >= 700:
			score += 20
		case cs >= 650:
			score += 15
		case cs >= 600:
			score += 10
		}
	}

	// Work experience (20 points)
	switch exp := in.WorkExperienceYears; {
	case exp >= 5:
		score += 20
	case exp >= 3:
		score += 15
	case exp >= 2:
		score += 10
	case exp >= 1:
		score += 5
	}

	// Employment type (15 points)
	switch in.EmploymentType {
	case EmploymentSalaried:
		score += 15
	case EmploymentProfessional:
		score += 12
	case EmploymentBusiness:
		score += 10
	case EmploymentSelfEmployed:
		score += 8
	}

	// Document completeness (10 points)
	if total := len(in.DocumentsSubmitted); total > 0 {
		done := 0
		for _, ok := range in.DocumentsSubmitted {
			if ok {
				done++
			}
		}
		score += int(math.Round(float64(done) / float64(total) * 10))
	}

	if score > 100 {
		score = 100
	}
	return score
}

// ScoreApplication is a convenience wrapper building the input from a loan row.
func ScoreApplication(a *Application) int {
	return Score(ScoreInput{
		AnnualIncome:        a.AnnualIncome,
		LoanAmountRequested: a.LoanAmountRequested,
		CreditScore:         a.CreditScore,
		WorkExperienceYears: a.WorkExperienceYears,
		EmploymentType:      a.EmploymentType,
		DocumentsSubmitted:  a.DocumentsSubmitted,
	})
}
