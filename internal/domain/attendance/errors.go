package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")

	// ErrDuplicateEntry: attendance already exists for this worker and date
	ErrDuplicateEntry = errors.New("attendance already exists for this date")

	// Wage derivation errors
	ErrInvalidTimeRange       = errors.New("end time must be greater than start time")
	ErrInvalidWorkCalculation = errors.New("rest and missing minutes exceed the worked interval")
	ErrInvalidSegment         = errors.New("segment must supply either hours worked or a valid time range")

	ErrAbsentNoteRequired = errors.New("a note is required when marking a worker absent")

	// ErrAttendanceSettled: settled records are immutable
	ErrAttendanceSettled = errors.New("attendance record is settled and cannot be changed")
)
