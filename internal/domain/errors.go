package domain

import "errors"

var (
	// ErrFetch marks a transient failure talking to the time table provider
	// or the recipient directory. The current cycle is retried.
	ErrFetch = errors.New("fetch failed")

	// ErrPermanent marks failures that retrying cannot fix (bad credentials,
	// rejected requests). The scheduler loop stops.
	ErrPermanent = errors.New("permanent failure")

	// ErrScheduleParse marks a time table entry that is not a valid HH:MM time.
	ErrScheduleParse = errors.New("invalid schedule time")

	ErrMemberNotFound = errors.New("member not found")
)
