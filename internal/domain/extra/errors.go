package extra

import "errors"

var (
	ErrExtraNotFound = errors.New("extra record not found")

	// ErrExtraSettled: settled extras are immutable
	ErrExtraSettled = errors.New("extra is settled and cannot be changed")
)
