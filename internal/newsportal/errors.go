package newsportal

import "errors"

var (
	ErrForbidden = errors.New("only admins can change news")
	ErrNotFound  = errors.New("news not found")
)

// ValidationError is returned before any store call when the input is incomplete.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
