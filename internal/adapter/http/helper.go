package http

import (
	"errors"
	"net/http"
	"strings"

	domainLoan "schooldekho-loan-service/internal/domain/loan"
	domainSchool "schooldekho-loan-service/internal/domain/school"
)

// statusOf maps domain errors to HTTP response codes. Anything unknown is a
// plain 500; the engine never swallows errors so everything lands here.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domainLoan.ErrNotFound), errors.Is(err, domainSchool.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainLoan.ErrEditNotAllowed), errors.Is(err, domainLoan.ErrIllegalTransition):
		return http.StatusConflict
	case errors.Is(err, domainLoan.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domainLoan.ErrNumberConflict):
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// ---- test helpers shared across handler tests ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
