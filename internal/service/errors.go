package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeValidation            = "validation_failed"
	ErrCodeAccountNotFound       = "account_not_found"
	ErrCodeStoreError            = "store_error"
	ErrCodePredictionUnavailable = "prediction_unavailable"
	ErrCodeInternalError         = "internal_error"
)
