package repository

import "errors"

// ErrNotFound is returned when the addressed record does not exist in the
// store, including records that were deleted earlier in the process.
var ErrNotFound = errors.New("record not found")
