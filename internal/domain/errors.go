package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain error codes
const (
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeAuthentication = "AUTHENTICATION_ERROR"
	ErrCodeRateLimited    = "RATE_LIMITED"
	ErrCodeQuotaExhausted = "QUOTA_EXHAUSTED"
	ErrCodeUpstream       = "UPSTREAM_ERROR"
	ErrCodeNetwork        = "NETWORK_ERROR"
	ErrCodeInternalError  = "INTERNAL_ERROR"
)

// Validation errors
var (
	ErrMissingRequiredField = NewDomainError(ErrCodeValidation, "missing required field")
	ErrInvalidCategory      = NewDomainError(ErrCodeValidation, "invalid document category")
	ErrInvalidIcon          = NewDomainError(ErrCodeValidation, "invalid icon kind")
	ErrInvalidRelevance     = NewDomainError(ErrCodeValidation, "invalid relevance tier")
	ErrInvalidChatRole      = NewDomainError(ErrCodeValidation, "invalid chat message role")
	ErrQueryRequired        = NewDomainError(ErrCodeValidation, "Query is required")
	ErrMessagesRequired     = NewDomainError(ErrCodeValidation, "Messages are required")
)

// Authentication errors
var (
	ErrAuthRequired = NewDomainError(ErrCodeAuthentication, "Unauthorized - authentication required")
	ErrInvalidToken = NewDomainError(ErrCodeAuthentication, "Unauthorized - invalid token")
)

// Upstream gateway errors
var (
	ErrRateLimited = NewDomainError(ErrCodeRateLimited,
		"AI search is receiving too many requests - please retry in a moment")
	ErrQuotaExhausted = NewDomainError(ErrCodeQuotaExhausted,
		"AI search quota exhausted - switch to regular search for now")
	ErrUpstreamFailure = NewDomainError(ErrCodeUpstream, "AI gateway request failed")
	ErrUpstreamTimeout = NewDomainError(ErrCodeUpstream, "AI gateway request timed out")
)
