package loan

import domain "schooldekho-loan-service/internal/domain/loan"

// CreateInput carries the fields a parent submits with a new application.
// Field-level range/enum checks happen at the HTTP adapter; the usecase
// re-asserts only the financial preconditions it owns.
type CreateInput struct {
	SchoolID            string                `json:"school_id"`
	StudentName         string                `json:"student_name"`
	StudentClass        string                `json:"student_class"`
	StudentAge          int                   `json:"student_age"`
	ParentName          string                `json:"parent_name"`
	ParentOccupation    string                `json:"parent_occupation"`
	AnnualIncome        float64               `json:"annual_income"`
	MonthlyIncome       float64               `json:"monthly_income"`
	LoanAmountRequested float64               `json:"loan_amount_requested"`
	LoanPurpose         domain.Purpose        `json:"loan_purpose"`
	LoanTenureMonths    int                   `json:"loan_tenure_months"`
	InterestRate        *float64              `json:"interest_rate"`
	EmploymentType      domain.EmploymentType `json:"employment_type"`
	EmployerName        string                `json:"employer_name"`
	WorkExperienceYears int                   `json:"work_experience_years"`
	CreditScore         *int                  `json:"credit_score"`
	DocumentsSubmitted  map[string]bool       `json:"documents_submitted"`
}

// UpdateInput uses pointers so "field absent" and "set to zero value" stay
// distinguishable. Only fields the owner may touch are listed; status and
// application number are never updatable through this path.
type UpdateInput struct {
	StudentName         *string                `json:"student_name"`
	StudentClass        *string                `json:"student_class"`
	StudentAge          *int                   `json:"student_age"`
	ParentName          *string                `json:"parent_name"`
	ParentOccupation    *string                `json:"parent_occupation"`
	AnnualIncome        *float64               `json:"annual_income"`
	MonthlyIncome       *float64               `json:"monthly_income"`
	LoanAmountRequested *float64               `json:"loan_amount_requested"`
	LoanPurpose         *domain.Purpose        `json:"loan_purpose"`
	LoanTenureMonths    *int                   `json:"loan_tenure_months"`
	InterestRate        *float64               `json:"interest_rate"`
	EmploymentType      *domain.EmploymentType `json:"employment_type"`
	EmployerName        *string                `json:"employer_name"`
	WorkExperienceYears *int                   `json:"work_experience_years"`
	CreditScore         *int                   `json:"credit_score"`
	DocumentsSubmitted  map[string]bool        `json:"documents_submitted"`
	Notes               *string                `json:"notes"`
}

// TransitionInput names the target state plus the optional decision context.
type TransitionInput struct {
	Target          domain.Status `json:"target"`
	RejectionReason string        `json:"rejection_reason"`
	BankPartner     string        `json:"bank_partner"`
}
