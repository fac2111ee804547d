package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("monthly attendance record not found")

	ErrInvalidTime           = errors.New("invalid time of day")
	ErrInvalidDay            = errors.New("invalid day of month")
	ErrInvalidTimeslotType   = errors.New("invalid timeslot type")
	ErrInvalidTimeslotNumber = errors.New("invalid timeslot number")
	ErrEndBeforeStart        = errors.New("timeslot end precedes start")
	ErrInvalidPeriod         = errors.New("invalid year-month period")

	ErrUnexpectedCellType = errors.New("unexpected cell type in grid")
)
