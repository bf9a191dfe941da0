package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when the identifier or password is wrong.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("Email already registered")
	// ErrPhoneTaken is returned when registering with a phone number that already exists.
	ErrPhoneTaken = errors.New("Phone number already registered")
	// ErrUserNotFound is returned when a user lookup finds nothing.
	ErrUserNotFound = errors.New("User not found")
	// ErrProductNotFound is returned when a product lookup finds nothing.
	ErrProductNotFound = errors.New("Product not found")
	// ErrProductCodeTaken is returned when registering a product code that already exists.
	ErrProductCodeTaken = errors.New("Product with this code already exists")
	// ErrCertificationNotFound is returned when a business has no certification record.
	ErrCertificationNotFound = errors.New("No certification found")
	// ErrBusinessNotFound is returned when a business lookup finds nothing.
	ErrBusinessNotFound = errors.New("Business not found")
	// ErrFeedbackNotFound is returned when a feedback lookup finds nothing.
	ErrFeedbackNotFound = errors.New("Feedback not found")
	// ErrInvalidRating is returned when a rating falls outside 1..5.
	ErrInvalidRating = errors.New("Rating must be between 1 and 5")
)

// RoleMismatchError is returned when credentials check out but the stored
// role differs from the one the client asked to log in as.
type RoleMismatchError struct {
	Role string
}

func (e *RoleMismatchError) Error() string {
	return "User is not registered as a " + e.Role
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized is a
// store or programming error: clients get a generic message, the detail stays
// in the server logs.
func MapErrorToHTTP(err error) *HTTPError {
	var roleMismatch *RoleMismatchError
	if errors.As(err, &roleMismatch) {
		return NewHTTPError(http.StatusForbidden, roleMismatch.Error())
	}
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrPhoneTaken),
		errors.Is(err, ErrProductCodeTaken),
		errors.Is(err, ErrInvalidRating):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrCertificationNotFound),
		errors.Is(err, ErrBusinessNotFound),
		errors.Is(err, ErrFeedbackNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
