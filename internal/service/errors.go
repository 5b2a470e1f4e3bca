package service

import "errors"

// ErrCaseNotFound is returned when a use case names a case id that is not
// stored.
var ErrCaseNotFound = errors.New("case not found")
