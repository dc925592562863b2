package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeInvalidID       = "INVALID_ID"
	ErrCodeUnauthenticated = "UNAUTHENTICATED"
	ErrCodeInvalidToken    = "INVALID_TOKEN"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeFoodNotFound    = "FOOD_NOT_FOUND"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// DomainError is an error carrying a stable machine-readable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrUnauthenticated = NewDomainError(ErrCodeUnauthenticated, "No session token presented")
	ErrInvalidToken    = NewDomainError(ErrCodeInvalidToken, "Session token is invalid or expired")
	ErrForbidden       = NewDomainError(ErrCodeForbidden, "Forbidden access")
	ErrFoodNotFound    = NewDomainError(ErrCodeFoodNotFound, "Food not found")
)
