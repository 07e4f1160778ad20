package worker

import "errors"

var (
	ErrWorkerNotFound = errors.New("worker not found")
	ErrNotOwner       = errors.New("worker does not belong to this farmer")
)
