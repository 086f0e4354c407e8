package http

import (
	"errors"
	"net/http"

	"campus-leave-service/internal/domain/balance"
	"campus-leave-service/internal/domain/leave"
)

// ---- helpers ----

// domainStatus maps the core's error taxonomy to HTTP. Anything not in
// the taxonomy is a storage failure and surfaces as 500.
func domainStatus(err error) (int, string) {
	switch {
	case errors.Is(err, leave.ErrNotFound):
		return http.StatusNotFound, "application not found"
	case errors.Is(err, leave.ErrInvalidDateRange):
		return http.StatusUnprocessableEntity, "invalid date range"
	case errors.Is(err, leave.ErrUnknownCategory):
		return http.StatusUnprocessableEntity, "unknown leave category"
	case errors.Is(err, leave.ErrUnknownDecision):
		return http.StatusUnprocessableEntity, "unknown decision"
	case errors.Is(err, leave.ErrInvalidTransition):
		return http.StatusConflict, "decision already recorded"
	case errors.Is(err, leave.ErrNotEligible):
		return http.StatusConflict, "application has no HOD approval"
	case errors.Is(err, balance.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity, "insufficient leave balance"
	case errors.Is(err, balance.ErrNoBalanceRecord):
		return http.StatusUnprocessableEntity, "no balance record for staff and category"
	case errors.Is(err, leave.ErrNotAuthorizedToday):
		return http.StatusNotFound, "not authorized to be absent today"
	case errors.Is(err, leave.ErrAlreadyExited):
		return http.StatusConflict, "exit already recorded"
	case errors.Is(err, leave.ErrNotExited):
		return http.StatusConflict, "no exit recorded"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
