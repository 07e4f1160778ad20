package advance

import "errors"

var (
	ErrAdvanceNotFound = errors.New("advance record not found")

	// ErrAdvanceSettled: settled advances are immutable
	ErrAdvanceSettled = errors.New("advance is settled and cannot be changed")
)
