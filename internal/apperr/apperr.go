// Package apperr holds the error categories every domain package maps onto.
// Handlers translate them to HTTP status codes with errors.Is.
package apperr

import "errors"

var (
	// ErrValidation: input fails a constraint; nothing was written.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden: the principal fails an access rule on a record it can
	// already see exists.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound: the record does not exist or is not visible to the
	// principal. Point reads of invisible records return this, never
	// ErrForbidden, so existence is not leaked.
	ErrNotFound = errors.New("not found")

	// ErrConflict: uniqueness violation (duplicate email, exhausted
	// unique-code retries).
	ErrConflict = errors.New("conflict")

	// ErrUpstream: identity provider or blob store unavailable.
	ErrUpstream = errors.New("upstream unavailable")
)
