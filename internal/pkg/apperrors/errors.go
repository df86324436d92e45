package apperrors

import "errors"

// Common errors
var (
	// Authentication errors
	ErrMissingToken       = errors.New("authorization token missing")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Authorization errors
	ErrNotCommunityOwner = errors.New("only the community owner can perform this action")
	ErrNotAllowedAccess  = errors.New("not allowed to perform this action")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Conflict errors
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrSlugAlreadyExists   = errors.New("community with this slug already exists")
	ErrRoleAlreadyExists   = errors.New("role with this name already exists")
	ErrMemberAlreadyExists = errors.New("user is already a member of this community")
)

// Not-found errors, one per entity so handlers can map them to precise
// API messages.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrRoleNotFound      = errors.New("role not found")
	ErrCommunityNotFound = errors.New("community not found")
	ErrMemberNotFound    = errors.New("member not found")
)

// CustomError carries an underlying sentinel plus a request-specific message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// IsNotFound reports whether err is any of the entity not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrRoleNotFound) ||
		errors.Is(err, ErrCommunityNotFound) ||
		errors.Is(err, ErrMemberNotFound)
}

// IsConflict reports whether err is a uniqueness-violation sentinel.
func IsConflict(err error) bool {
	return errors.Is(err, ErrEmailAlreadyExists) ||
		errors.Is(err, ErrSlugAlreadyExists) ||
		errors.Is(err, ErrRoleAlreadyExists) ||
		errors.Is(err, ErrMemberAlreadyExists)
}
