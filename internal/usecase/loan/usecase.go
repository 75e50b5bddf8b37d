package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "schooldekho-loan-service/internal/domain/loan"
	domainSchool "schooldekho-loan-service/internal/domain/school"
	"schooldekho-loan-service/internal/domain/uow"
	"schooldekho-loan-service/pkg/appnum"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// numberRetries bounds the regenerate-on-conflict loop for application numbers.
const numberRetries = 3

type Usecase struct {
	loans   domain.Repository
	schools domainSchool.Repository
	uow     uow.UnitOfWork
	log     *logrus.Logger
}

func NewUsecase(loans domain.Repository, schools domainSchool.Repository, tx uow.UnitOfWork, log *logrus.Logger) *Usecase {
	return &Usecase{loans: loans, schools: schools, uow: tx, log: log}
}

func (u *Usecase) Create(ctx context.Context, ownerID string, in CreateInput) (*domain.Application, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: missing owner id", domain.ErrInvalidInput)
	}
	if in.LoanAmountRequested < 1000 {
		return nil, fmt.Errorf("%w: loan amount must be >= 1000", domain.ErrInvalidInput)
	}
	if in.LoanTenureMonths < 6 || in.LoanTenureMonths > 120 {
		return nil, fmt.Errorf("%w: tenure must be between 6 and 120 months", domain.ErrInvalidInput)
	}
	if in.InterestRate != nil && *in.InterestRate < 0 {
		return nil, fmt.Errorf("%w: rate must be >= 0", domain.ErrInvalidInput)
	}

	if _, err := u.schools.GetBySchoolID(ctx, in.SchoolID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainSchool.ErrNotFound
		}
		return nil, err
	}

	// Merge the submitted document flags over the standard checklist so
	// unknown-but-required documents always appear, unchecked.
	docs := domain.DefaultDocumentChecklist()
	for name, done := range in.DocumentsSubmitted {
		docs[name] = done
	}

	a := &domain.Application{
		OwnerID:             ownerID,
		SchoolID:            in.SchoolID,
		StudentName:         in.StudentName,
		StudentClass:        in.StudentClass,
		StudentAge:          in.StudentAge,
		ParentName:          in.ParentName,
		ParentOccupation:    in.ParentOccupation,
		AnnualIncome:        in.AnnualIncome,
		MonthlyIncome:       in.MonthlyIncome,
		LoanAmountRequested: in.LoanAmountRequested,
		LoanPurpose:         in.LoanPurpose,
		LoanTenureMonths:    in.LoanTenureMonths,
		InterestRate:        in.InterestRate,
		EmploymentType:      in.EmploymentType,
		EmployerName:        in.EmployerName,
		WorkExperienceYears: in.WorkExperienceYears,
		CreditScore:         in.CreditScore,
		DocumentsSubmitted:  docs,
		Status:              domain.StatusDraft,
		Priority:            domain.PriorityMedium,
		RepaymentSchedule:   []domain.Installment{},
	}

	score := domain.ScoreApplication(a)
	a.EligibilityScore = &score

	if a.InterestRate != nil {
		emi, err := domain.ComputeEMI(a.LoanAmountRequested, *a.InterestRate, a.LoanTenureMonths)
		if err != nil {
			return nil, err
		}
		a.EMIAmount = &emi
	}

	// The generator is only probabilistically unique; lean on the DB unique
	// constraint and regenerate on collision, bounded.
	var lastErr error
	for attempt := 0; attempt < numberRetries; attempt++ {
		a.ApplicationNumber = appnum.New()
		lastErr = u.loans.Create(ctx, a)
		if lastErr == nil {
			u.log.WithFields(logrus.Fields{
				"application_number": a.ApplicationNumber,
				"owner_id":           ownerID,
				"eligibility_score":  score,
			}).Info("loan application created")
			return a, nil
		}
		if !errors.Is(lastErr, gorm.ErrDuplicatedKey) {
			return nil, lastErr
		}
		u.log.Warnf("application number %s collided, regenerating", a.ApplicationNumber)
	}
	return nil, fmt.Errorf("%w: gave up after %d attempts: %v", domain.ErrNumberConflict, numberRetries, lastErr)
}

func (u *Usecase) Get(ctx context.Context, number, requesterID string) (*domain.Application, error) {
	a, err := u.loans.GetByApplicationNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	// Ownership is part of the lookup: a foreign loan is indistinguishable
	// from a missing one.
	if a.OwnerID != requesterID {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (u *Usecase) List(ctx context.Context, ownerID string) ([]domain.Application, error) {
	return u.loans.ListByOwner(ctx, ownerID)
}

// Update mutates an editable application inside a row-locked transaction so
// the EMI/score recomputation observes exactly the values it is saving over.
func (u *Usecase) Update(ctx context.Context, number string, in UpdateInput, requesterID string) (*domain.Application, error) {
	var out *domain.Application
	err := u.uow.WithinLoanTx(ctx, number, func(r uow.Repos, a *domain.Application) error {
		if a.OwnerID != requesterID {
			return domain.ErrNotFound
		}
		if !domain.Editable(a.Status) {
			return fmt.Errorf("%w: status is %s", domain.ErrEditNotAllowed, a.Status)
		}

		financialsChanged := applyUpdate(a, in)

		if in.LoanAmountRequested != nil && a.LoanAmountRequested < 1000 {
			return fmt.Errorf("%w: loan amount must be >= 1000", domain.ErrInvalidInput)
		}
		if in.LoanTenureMonths != nil && (a.LoanTenureMonths < 6 || a.LoanTenureMonths > 120) {
			return fmt.Errorf("%w: tenure must be between 6 and 120 months", domain.ErrInvalidInput)
		}

		if financialsChanged && a.InterestRate != nil {
			emi, err := domain.ComputeEMI(a.LoanAmountRequested, *a.InterestRate, a.LoanTenureMonths)
			if err != nil {
				return err
			}
			a.EMIAmount = &emi
		}

		score := domain.ScoreApplication(a)
		a.EligibilityScore = &score

		if err := r.Loans.Save(ctx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	u.log.WithField("application_number", number).Info("loan application updated")
	return out, nil
}

// applyUpdate copies non-nil fields onto the row and reports whether any of
// the three EMI inputs changed.
func applyUpdate(a *domain.Application, in UpdateInput) bool {
	if in.StudentName != nil {
		a.StudentName = *in.StudentName
	}
	if in.StudentClass != nil {
		a.StudentClass = *in.StudentClass
	}
	if in.StudentAge != nil {
		a.StudentAge = *in.StudentAge
	}
	if in.ParentName != nil {
		a.ParentName = *in.ParentName
	}
	if in.ParentOccupation != nil {
		a.ParentOccupation = *in.ParentOccupation
	}
	if in.AnnualIncome != nil {
		a.AnnualIncome = *in.AnnualIncome
	}
	if in.MonthlyIncome != nil {
		a.MonthlyIncome = *in.MonthlyIncome
	}
	if in.LoanPurpose != nil {
		a.LoanPurpose = *in.LoanPurpose
	}
	if in.EmploymentType != nil {
		a.EmploymentType = *in.EmploymentType
	}
	if in.EmployerName != nil {
		a.EmployerName = *in.EmployerName
	}
	if in.WorkExperienceYears != nil {
		a.WorkExperienceYears = *in.WorkExperienceYears
	}
	if in.CreditScore != nil {
		a.CreditScore = in.CreditScore
	}
	if in.Notes != nil {
		a.Notes = *in.Notes
	}
	if in.DocumentsSubmitted != nil {
		if a.DocumentsSubmitted == nil {
			a.DocumentsSubmitted = domain.DefaultDocumentChecklist()
		}
		for name, done := range in.DocumentsSubmitted {
			a.DocumentsSubmitted[name] = done
		}
	}

	changed := false
	if in.LoanAmountRequested != nil && *in.LoanAmountRequested != a.LoanAmountRequested {
		a.LoanAmountRequested = *in.LoanAmountRequested
		changed = true
	}
	if in.LoanTenureMonths != nil && *in.LoanTenureMonths != a.LoanTenureMonths {
		a.LoanTenureMonths = *in.LoanTenureMonths
		changed = true
	}
	if in.InterestRate != nil && (a.InterestRate == nil || *in.InterestRate != *a.InterestRate) {
		a.InterestRate = in.InterestRate
		changed = true
	}
	return changed
}

// Transition moves an application along the lifecycle graph. Entering
// disbursed materializes the repayment schedule and activates the
// outstanding-amount tracking.
func (u *Usecase) Transition(ctx context.Context, number string, in TransitionInput) (*domain.Application, error) {
	if !domain.ValidStatus(string(in.Target)) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrIllegalTransition, in.Target)
	}

	var out *domain.Application
	err := u.uow.WithinLoanTx(ctx, number, func(r uow.Repos, a *domain.Application) error {
		if !domain.CanTransition(a.Status, in.Target) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrIllegalTransition, a.Status, in.Target)
		}

		now := time.Now().UTC()
		switch in.Target {
		case domain.StatusApproved:
			a.ApprovalDate = &now
		case domain.StatusRejected:
			a.RejectionReason = in.RejectionReason
		case domain.StatusDisbursed:
			if err := disburse(a, now, in.BankPartner); err != nil {
				return err
			}
		}

		a.Status = in.Target
		if err := r.Loans.Save(ctx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	u.log.WithFields(logrus.Fields{
		"application_number": number,
		"status":             in.Target,
	}).Info("loan application transitioned")
	return out, nil
}

// disburse stamps the dates, ensures the EMI exists, and generates the full
// schedule. outstanding_amount starts at the requested amount; next_emi_date
// is the first installment's due date.
func disburse(a *domain.Application, now time.Time, bankPartner string) error {
	if a.InterestRate == nil {
		return fmt.Errorf("%w: interest rate not assigned before disbursement", domain.ErrInvalidInput)
	}

	a.DisbursementDate = &now
	if a.LoanStartDate == nil {
		a.LoanStartDate = &now
	}
	if bankPartner != "" {
		a.BankPartner = bankPartner
	}

	if a.EMIAmount == nil {
		emi, err := domain.ComputeEMI(a.LoanAmountRequested, *a.InterestRate, a.LoanTenureMonths)
		if err != nil {
			return err
		}
		a.EMIAmount = &emi
	}

	sched := domain.GenerateSchedule(a.LoanAmountRequested, *a.InterestRate, a.LoanTenureMonths, *a.EMIAmount, *a.LoanStartDate)
	a.RepaymentSchedule = sched

	outstanding := a.LoanAmountRequested
	a.OutstandingAmount = &outstanding

	if len(sched) > 0 {
		first, err := time.Parse("2006-01-02", sched[0].DueDate)
		if err != nil {
			return err
		}
		last, err := time.Parse("2006-01-02", sched[len(sched)-1].DueDate)
		if err != nil {
			return err
		}
		a.NextEMIDate = &first
		a.LoanEndDate = &last
	}
	return nil
}

// ListPendingInstallments feeds the external reminder job: disbursed loans
// whose next EMI is due on or before asOf.
func (u *Usecase) ListPendingInstallments(ctx context.Context, asOf time.Time) ([]domain.Application, error) {
	return u.loans.ListPendingInstallments(ctx, asOf)
}
