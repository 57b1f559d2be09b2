package services

import "errors"

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrNotSignedIn is returned by operations that need a stored session.
	ErrNotSignedIn = errors.New("not signed in")
)

// User-facing validation messages.
const (
	MsgFillAllFields       = "Please fill in all fields"
	MsgInvalidEmail        = "Please enter a valid email address"
	MsgPasswordTooShort    = "Password must be at least 6 characters long"
	MsgPasswordMismatch    = "Passwords do not match"
	MsgFillRequiredFields  = "Please fill in all required fields"
	MsgTooManyImages       = "Maximum 10 images allowed"
	MsgNegativeRooms       = "Bedrooms and bathrooms cannot be negative"
	MsgInvalidPropertyType = "Please choose a valid property type"
	MsgRejectReason        = "Please provide a rejection reason"
	MsgLoginFailed         = "Login failed. Please try again."
	MsgRegistrationFailed  = "Registration failed. Please try again."
)

// ValidationError is input rejected before any request is sent. Its message
// is shown to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(msg string) error { return &ValidationError{Message: msg} }
