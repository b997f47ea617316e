package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// ErrProfileIDInvalid is returned for profile ids that are not UUIDs.
	ErrProfileIDInvalid = errors.New("profile id must be a UUID")
)
