package customer

import (
	"fmt"

	"fishmarket-be/internal/apperr"
)

var (
	ErrEmailExists = fmt.Errorf("%w: email already registered", apperr.ErrConflict)
	ErrNotFound    = fmt.Errorf("customer %w", apperr.ErrNotFound)
)
