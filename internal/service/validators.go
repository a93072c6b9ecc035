package service

import (
	"fmt"
	"math"
	"time"
)

// Pagination defaults. Page numbering is 1-based on the wire and
// converted to an offset here.
const (
	DefaultPageLimit = 10
)

// ValidateName checks that the account name is present.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// ValidateValue checks that the monetary value is a finite number, so
// it can always be forwarded to the prediction service.
func ValidateValue(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("value must be a finite number")
	}
	return nil
}

// ValidateDueDate checks that a due date was provided.
func ValidateDueDate(dueDate time.Time) error {
	if dueDate.IsZero() {
		return fmt.Errorf("due_date is required")
	}
	return nil
}

// NormalizePagination converts a 1-based page and a limit into a
// (limit, offset) pair, applying defaults and clamping non-positive
// values.
func NormalizePagination(page, limit int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if page <= 0 {
		page = 1
	}
	return limit, (page - 1) * limit
}
