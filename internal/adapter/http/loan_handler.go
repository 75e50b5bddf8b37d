package http

import (
	"net/http"
	"time"

	domain "schooldekho-loan-service/internal/domain/loan"
	uc "schooldekho-loan-service/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

// ownerHeader carries the authenticated principal's id, resolved by the auth
// layer in front of this service. The handlers trust it.
const ownerHeader = "X-User-Id"

type LoanHandler struct{ uc *uc.Usecase }

func NewLoanHandler(u *uc.Usecase) *LoanHandler { return &LoanHandler{uc: u} }

func requesterID(c echo.Context) (string, bool) {
	id := c.Request().Header.Get(ownerHeader)
	return id, id != ""
}

// createLoanReq mirrors uc.CreateInput field-for-field so it converts directly;
// only the validate tags differ.
type createLoanReq struct {
	SchoolID            string                `json:"school_id" validate:"required"`
	StudentName         string                `json:"student_name" validate:"required,max=100"`
	StudentClass        string                `json:"student_class" validate:"required,max=20"`
	StudentAge          int                   `json:"student_age" validate:"gte=2,lte=25"`
	ParentName          string                `json:"parent_name" validate:"required,max=100"`
	ParentOccupation    string                `json:"parent_occupation" validate:"required,max=100"`
	AnnualIncome        float64               `json:"annual_income" validate:"gte=0,dec2"`
	MonthlyIncome       float64               `json:"monthly_income" validate:"gte=0,dec2"`
	LoanAmountRequested float64               `json:"loan_amount_requested" validate:"gte=1000,dec2"`
	LoanPurpose         domain.Purpose        `json:"loan_purpose" validate:"required,oneof=admission_fee annual_fee monthly_fee transport_fee books_uniform infrastructure complete_education other"`
	LoanTenureMonths    int                   `json:"loan_tenure_months" validate:"gte=6,lte=120"`
	InterestRate        *float64              `json:"interest_rate" validate:"omitempty,gte=0,lte=99.99,dec2"`
	EmploymentType      domain.EmploymentType `json:"employment_type" validate:"required,oneof=salaried self_employed business professional other"`
	EmployerName        string                `json:"employer_name" validate:"omitempty,max=200"`
	WorkExperienceYears int                   `json:"work_experience_years" validate:"gte=0,lte=50"`
	CreditScore         *int                  `json:"credit_score" validate:"omitempty,gte=300,lte=900"`
	DocumentsSubmitted  map[string]bool       `json:"documents_submitted"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	owner, ok := requesterID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing " + ownerHeader})
	}
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	a, err := h.uc.Create(c.Request().Context(), owner, uc.CreateInput(req))
	if err != nil {
		return c.JSON(statusOf(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	owner, ok := requesterID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing " + ownerHeader})
	}
	list, err := h.uc.List(c.Request().Context(), owner)
	if err != nil {
		return c.JSON(statusOf(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": list})
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	owner, ok := requesterID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing " + ownerHeader})
	}
	a, err := h.uc.Get(c.Request().Context(), c.Param("number"), owner)
	if err != nil {
		return c.JSON(statusOf(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, a)
}

// updateLoanReq mirrors uc.UpdateInput; pointer fields keep "absent" and
// "zero" apart for PATCH semantics.
type updateLoanReq struct {
	StudentName         *string                `json:"student_name" validate:"omitempty,max=100"`
	StudentClass        *string                `json:"student_class" validate:"omitempty,max=20"`
	StudentAge          *int                   `json:"student_age" validate:"omitempty,gte=2,lte=25"`
	ParentName          *string                `json:"parent_name" validate:"omitempty,max=100"`
	ParentOccupation    *string                `json:"parent_occupation" validate:"omitempty,max=100"`
	AnnualIncome        *float64               `json:"annual_income" validate:"omitempty,gte=0,dec2"`
	MonthlyIncome       *float64               `json:"monthly_income" validate:"omitempty,gte=0,dec2"`
	LoanAmountRequested *float64               `json:"loan_amount_requested" validate:"omitempty,gte=1000,dec2"`
	LoanPurpose         *domain.Purpose        `json:"loan_purpose" validate:"omitempty,oneof=admission_fee annual_fee monthly_fee transport_fee books_uniform infrastructure complete_education other"`
	LoanTenureMonths    *int                   `json:"loan_tenure_months" validate:"omitempty,gte=6,lte=120"`
	InterestRate        *float64               `json:"interest_rate" validate:"omitempty,gte=0,lte=99.99,dec2"`
	EmploymentType      *domain.EmploymentType `json:"employment_type" validate:"omitempty,oneof=salaried self_employed business professional other"`
	EmployerName        *string                `json:"employer_name" validate:"omitempty,max=200"`
	WorkExperienceYears *int                   `json:"work_experience_years" validate:"omitempty,gte=0,lte=50"`
	CreditScore         *int                   `json:"credit_score" validate:"omitempty,gte=300,lte=900"`
	DocumentsSubmitted  map[string]bool        `json:"documents_submitted"`
	Notes               *string                `json:"notes"`
}

func (h *LoanHandler) UpdateLoan(c echo.Context) error {
	owner, ok := requesterID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing " + ownerHeader})
	}
	var req updateLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	a, err := h.uc.Update(c.Request().Context(), c.Param("number"), uc.UpdateInput(req), owner)
	if err != nil {
		return c.JSON(statusOf(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, a)
}

type transitionReq struct {
	Target          domain.Status `json:"target" validate:"required,oneof=draft submitted under_review documents_required approved rejected disbursed closed"`
	RejectionReason string        `json:"rejection_reason" validate:"omitempty,max=1000"`
	BankPartner     string        `json:"bank_partner" validate:"omitempty,max=100"`
}

// TransitionLoan moves an application along the lifecycle. Who may request
// which edge is decided upstream (role-based auth); here only the edge
// legality and its side effects are enforced.
func (h *LoanHandler) TransitionLoan(c echo.Context) error {
	var req transitionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	a, err := h.uc.Transition(c.Request().Context(), c.Param("number"), uc.TransitionInput(req))
	if err != nil {
		return c.JSON(statusOf(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, a)
}

// PendingEMIs backs the external reminder job. as_of defaults to today (UTC).
func (h *LoanHandler) PendingEMIs(c echo.Context) error {
	asOf := time.Now().UTC()
	if raw := c.QueryParam("as_of"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "as_of must be YYYY-MM-DD"})
		}
		asOf = parsed
	}
	list, err := h.uc.ListPendingInstallments(c.Request().Context(), asOf)
	if err != nil {
		return c.JSON(statusOf(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": list, "as_of": asOf.Format("2006-01-02")})
}
