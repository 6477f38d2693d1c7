package v1

import (
	"errors"
	"net/http"

	"github.com/pennywise/backend/internal/ledger"
	"github.com/pennywise/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no expense matching your query"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	// A completed write whose verification read disagrees is a storage
	// integrity problem, never the client's fault
	for _, integrity := range []error{
		ledger.ErrExpenseCreateFailed,
		ledger.ErrCategoryCreateFailed,
		ledger.ErrBudgetCreateFailed,
		ledger.ErrHistoryCreateFailed,
		ledger.ErrCategoryUpdateFailed,
		ledger.ErrBudgetUpdateFailed,
		ledger.ErrHistoryUpdateFailed,
	} {
		if errors.Is(err, integrity) {
			return http.StatusInternalServerError
		}
	}

	return http.StatusBadRequest
}

var (
	errMonthNotSetInQuery       = errors.New("the month query parameter must be set")
	errVerificationTokenInvalid = errors.New("the verification token is invalid")
	errCredentialsInvalid       = errors.New("the email or password is incorrect")
	errEmailNotVerified         = errors.New("the email address has not been verified yet")
)
