package asset

import "errors"

var (
	// ErrNotFound indicates that an asset file could not be opened.
	ErrNotFound = errors.New("asset: not found")
	// ErrMalformed indicates that an asset is shorter than its header declares.
	ErrMalformed = errors.New("asset: malformed")
	// ErrPathTooLong indicates that prefix+name exceeds MaxPathLen.
	ErrPathTooLong = errors.New("asset: path too long")
)
