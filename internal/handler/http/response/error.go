package response

import (
	"errors"
	"net/http"

	"github.com/jukulabs/juku-backend-go/internal/domain/attendance"
	"github.com/jukulabs/juku-backend-go/internal/domain/school"
	"github.com/jukulabs/juku-backend-go/internal/domain/tax"
	"github.com/jukulabs/juku-backend-go/internal/domain/teacher"
	"github.com/jukulabs/juku-backend-go/internal/pkg/validator"
	"github.com/jukulabs/juku-backend-go/internal/service/timesheet"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// School domain errors
	case errors.Is(err, school.ErrSchoolNotFound):
		NotFound(w, "School not found")
	case errors.Is(err, school.ErrSchoolNameExists):
		Conflict(w, "School name already exists")

	// Teacher domain errors
	case errors.Is(err, teacher.ErrTeacherNotFound):
		NotFound(w, "Teacher not found")
	case errors.Is(err, teacher.ErrDisplayNameExists):
		Conflict(w, "Display name already used in this school")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidTime),
		errors.Is(err, attendance.ErrInvalidDay),
		errors.Is(err, attendance.ErrInvalidTimeslotType),
		errors.Is(err, attendance.ErrInvalidTimeslotNumber),
		errors.Is(err, attendance.ErrEndBeforeStart),
		errors.Is(err, attendance.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrUnexpectedCellType):
		BadRequest(w, err.Error(), nil)

	// Timesheet extraction errors
	case errors.Is(err, timesheet.ErrUnknownTimeRange),
		errors.Is(err, timesheet.ErrMalformedTime):
		BadRequest(w, err.Error(), nil)

	// Tax table errors surface as server faults; the table is operator
	// supplied, not client supplied.
	case errors.Is(err, tax.ErrMalformedTable),
		errors.Is(err, tax.ErrBracketNotResolved):
		InternalServerError(w, "Withholding tax table misconfigured")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
