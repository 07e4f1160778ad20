package response

import (
	"errors"
	"net/http"

	"github.com/agrilabs/wms-backend-go/internal/domain/advance"
	"github.com/agrilabs/wms-backend-go/internal/domain/attendance"
	"github.com/agrilabs/wms-backend-go/internal/domain/auth"
	"github.com/agrilabs/wms-backend-go/internal/domain/extra"
	"github.com/agrilabs/wms-backend-go/internal/domain/notification"
	"github.com/agrilabs/wms-backend-go/internal/domain/settlement"
	"github.com/agrilabs/wms-backend-go/internal/domain/worker"
	"github.com/agrilabs/wms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var lockErr *settlement.LockedPeriodError
	if errors.As(err, &lockErr) {
		BadRequest(w, lockErr.Error(), map[string]string{"locked_until": lockErr.BoundaryDate})
		return
	}

	var rangeErr *settlement.RangeMismatchError
	if errors.As(err, &rangeErr) {
		BadRequest(w, rangeErr.Error(), map[string]string{
			"expected_start_date": rangeErr.ExpectedStartDate,
			"expected_end_date":   rangeErr.ExpectedEndDate,
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrEmailAlreadyInUse):
		Conflict(w, err.Error())
	case errors.Is(err, auth.ErrFarmerNotFound):
		NotFound(w, "Farmer not found")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrNotOwner):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateEntry):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrInvalidTimeRange),
		errors.Is(err, attendance.ErrInvalidWorkCalculation),
		errors.Is(err, attendance.ErrInvalidSegment),
		errors.Is(err, attendance.ErrAbsentNoteRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceSettled):
		BadRequest(w, err.Error(), nil)

	// Advance / extra domain errors
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance record not found")
	case errors.Is(err, advance.ErrAdvanceSettled):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, extra.ErrExtraNotFound):
		NotFound(w, "Extra record not found")
	case errors.Is(err, extra.ErrExtraSettled):
		BadRequest(w, err.Error(), nil)

	// Settlement domain errors
	case errors.Is(err, settlement.ErrSettlementNotFound):
		NotFound(w, "Settlement not found")
	case errors.Is(err, settlement.ErrNoPendingEntries),
		errors.Is(err, settlement.ErrInsufficientBalance),
		errors.Is(err, settlement.ErrInvalidAmount):
		BadRequest(w, err.Error(), nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
