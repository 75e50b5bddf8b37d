package loan

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusDraft             Status = "draft"
	StatusSubmitted         Status = "submitted"
	StatusUnderReview       Status = "under_review"
	StatusDocumentsRequired Status = "documents_required"
	StatusApproved          Status = "approved"
	StatusRejected          Status = "rejected"
	StatusDisbursed         Status = "disbursed"
	StatusClosed            Status = "closed"
)

type EmploymentType string

const (
	EmploymentSalaried     EmploymentType = "salaried"
	EmploymentSelfEmployed EmploymentType = "self_employed"
	EmploymentBusiness     EmploymentType = "business"
	EmploymentProfessional EmploymentType = "professional"
	EmploymentOther        EmploymentType = "other"
)

type Purpose string

const (
	PurposeAdmissionFee      Purpose = "admission_fee"
	PurposeAnnualFee         Purpose = "annual_fee"
	PurposeMonthlyFee        Purpose = "monthly_fee"
	PurposeTransportFee      Purpose = "transport_fee"
	PurposeBooksUniform      Purpose = "books_uniform"
	PurposeInfrastructure    Purpose = "infrastructure"
	PurposeCompleteEducation Purpose = "complete_education"
	PurposeOther             Purpose = "other"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// DefaultDocumentChecklist returns a fresh copy of the standard checklist so
// callers can mutate it without sharing state.
func DefaultDocumentChecklist() map[string]bool {
	return map[string]bool{
		"identity_proof":          false,
		"address_proof":           false,
		"income_proof":            false,
		"bank_statements":         false,
		"school_admission_letter": false,
		"fee_structure":           false,
		"guarantor_documents":     false,
	}
}

type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "pending"
	InstallmentPaid    InstallmentStatus = "paid"
	InstallmentOverdue InstallmentStatus = "overdue"
)

// Installment is one row of a repayment schedule. DueDate is a calendar date
// in YYYY-MM-DD form; amounts carry at most 2 decimals.
type Installment struct {
	EMINumber          int               `json:"emi_number"`
	DueDate            string            `json:"due_date"`
	EMIAmount          float64           `json:"emi_amount"`
	PrincipalAmount    float64           `json:"principal_amount"`
	InterestAmount     float64           `json:"interest_amount"`
	OutstandingBalance float64           `json:"outstanding_balance"`
	Status             InstallmentStatus `json:"status"`
}

type Application struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier: SDL + 8-digit timestamp suffix + 3-digit random.
	// Immutable once assigned.
	ApplicationNumber string `gorm:"size:20;uniqueIndex:ux_loans_application_number" json:"application_number"`
	OwnerID           string `gorm:"size:36;index:idx_loans_owner" json:"owner_id"`
	SchoolID          string `gorm:"size:36;index:idx_loans_school" json:"school_id"`

	StudentName      string `gorm:"size:100" json:"student_name"`
	StudentClass     string `gorm:"size:20" json:"student_class"`
	StudentAge       int    `json:"student_age"`
	ParentName       string `gorm:"size:100" json:"parent_name"`
	ParentOccupation string `gorm:"size:100" json:"parent_occupation"`

	AnnualIncome        float64  `gorm:"type:decimal(12,2)" json:"annual_income"`
	MonthlyIncome       float64  `gorm:"type:decimal(10,2)" json:"monthly_income"`
	LoanAmountRequested float64  `gorm:"type:decimal(12,2)" json:"loan_amount_requested"`
	LoanPurpose         Purpose  `gorm:"size:32" json:"loan_purpose"`
	LoanTenureMonths    int      `json:"loan_tenure_months"`
	InterestRate        *float64 `gorm:"type:decimal(5,2)" json:"interest_rate"`
	EMIAmount           *float64 `gorm:"type:decimal(10,2)" json:"emi_amount"`

	EmploymentType      EmploymentType `gorm:"size:20" json:"employment_type"`
	EmployerName        string         `gorm:"size:200" json:"employer_name,omitempty"`
	WorkExperienceYears int            `json:"work_experience_years"`
	CreditScore         *int           `json:"credit_score"`

	DocumentsSubmitted map[string]bool `gorm:"type:json;serializer:json" json:"documents_submitted"`

	Status           Status `gorm:"column:application_status;size:20;index:idx_loans_status;default:'draft'" json:"application_status"`
	EligibilityScore *int   `json:"eligibility_score"`
	RejectionReason  string `gorm:"type:text" json:"rejection_reason,omitempty"`

	ApprovalDate     *time.Time `json:"approval_date"`
	DisbursementDate *time.Time `json:"disbursement_date"`
	LoanStartDate    *time.Time `json:"loan_start_date"`
	LoanEndDate      *time.Time `json:"loan_end_date"`

	BankPartner       string `gorm:"size:100" json:"bank_partner,omitempty"`
	LoanAccountNumber string `gorm:"size:50" json:"loan_account_number,omitempty"`

	RepaymentSchedule []Installment `gorm:"type:json;serializer:json" json:"repayment_schedule"`
	TotalAmountPaid   float64       `gorm:"type:decimal(12,2);default:0" json:"total_amount_paid"`
	OutstandingAmount *float64      `gorm:"type:decimal(12,2)" json:"outstanding_amount"`
	NextEMIDate       *time.Time    `gorm:"column:next_emi_date;index:idx_loans_next_emi" json:"next_emi_date"`

	Notes           string   `gorm:"type:text" json:"notes,omitempty"`
	AssignedOfficer string   `gorm:"size:100" json:"assigned_officer,omitempty"`
	Priority        Priority `gorm:"size:10;default:'medium'" json:"priority"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Application) TableName() string { return "loans" }

// ValidEmploymentType reports whether s is one of the accepted enum values.
func ValidEmploymentType(s string) bool {
	switch EmploymentType(s) {
	case EmploymentSalaried, EmploymentSelfEmployed, EmploymentBusiness,
		EmploymentProfessional, EmploymentOther:
		return true
	}
	return false
}

// ValidPurpose reports whether s is one of the accepted enum values.
func ValidPurpose(s string) bool {
	switch Purpose(s) {
	case PurposeAdmissionFee, PurposeAnnualFee, PurposeMonthlyFee,
		PurposeTransportFee, PurposeBooksUniform, PurposeInfrastructure,
		PurposeCompleteEducation, PurposeOther:
		return true
	}
	return false
}
