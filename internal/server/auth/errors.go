package auth

import "errors"

// Error groups returned by Service. Use errors.Is to pick the HTTP status
var (
	// ErrMissingInput is the group of errors for absent required input (400)
	ErrMissingInput = errors.New("missing input")

	// ErrUnauthorized is the group of errors for rejected credentials (401)
	ErrUnauthorized = errors.New("unauthorized")
)

// Concrete errors; each matches its group with errors.Is
var (
	ErrMissingCredentials = &Error{group: ErrMissingInput, message: "missing credentials"}
	ErrMissingKey         = &Error{group: ErrMissingInput, message: "missing product_key"}
	ErrMissingToken       = &Error{group: ErrMissingInput, message: "missing"}

	ErrInvalidCredentials = &Error{group: ErrUnauthorized, message: "invalid credentials"}
	ErrInvalidKey         = &Error{group: ErrUnauthorized, message: "invalid product key"}
	ErrInvalidToken       = &Error{group: ErrUnauthorized, message: "invalid token"}
)

// Error is a facade failure belonging to one of the error groups
type Error struct {
	group   error
	message string
}

func (e *Error) Error() string {
	return e.message
}

// Is reports whether target is e itself or its group
func (e *Error) Is(target error) bool {
	return target == e.group
}
