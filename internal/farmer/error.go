package farmer

import (
	"fmt"

	"fishmarket-be/internal/apperr"
)

var (
	ErrEmailExists   = fmt.Errorf("%w: email already registered", apperr.ErrConflict)
	ErrCodeTaken     = fmt.Errorf("%w: unique code already taken", apperr.ErrConflict)
	ErrCodeExhausted = fmt.Errorf("%w: could not allocate a unique farmer code", apperr.ErrConflict)
	ErrNotFound      = fmt.Errorf("farmer %w", apperr.ErrNotFound)
)
