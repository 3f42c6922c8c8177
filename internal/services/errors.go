package services

import "errors"

// Error variables
var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrDuplicateURL  = errors.New("site already registered")
	ErrInvalidURL    = errors.New("url must be an absolute http or https address")
	ErrNotOwner      = errors.New("site not found")
	ErrUsernameTaken = errors.New("username already exists")
)
