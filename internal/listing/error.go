package listing

import (
	"fmt"

	"fishmarket-be/internal/apperr"
)

var ErrNotFound = fmt.Errorf("listing %w", apperr.ErrNotFound)
