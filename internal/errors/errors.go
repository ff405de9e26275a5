package errors

import "fmt"

// ErrorCode represents a Nutrilog error code.
type ErrorCode string

const (
	ErrInvalidRequest     ErrorCode = "INVALID_REQUEST"     // 400
	ErrNotFound           ErrorCode = "NOT_FOUND"           // 404
	ErrStorageUnavailable ErrorCode = "STORAGE_UNAVAILABLE" // 503
	ErrInternal           ErrorCode = "INTERNAL"            // 500
)

// NutrilogError represents a structured error with code, status, and details.
// Only the outer surfaces (CLI, MCP, web) produce these; the meal engine itself
// never fails.
type NutrilogError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *NutrilogError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *NutrilogError {
	return &NutrilogError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewInvalidValue creates a 400 error for a value outside a closed vocabulary.
func NewInvalidValue(field, value string, allowed []string) *NutrilogError {
	return &NutrilogError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: fmt.Sprintf("invalid %s %q (allowed: %v)", field, value, allowed),
		Details: map[string]any{"field": field, "value": value, "allowed": allowed},
	}
}

// NewFoodNotFound creates a 404 error for a food item id missing from a slot.
func NewFoodNotFound(slot, id string) *NutrilogError {
	return &NutrilogError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("food item %s not found in %s", id, slot),
		Details: map[string]any{"slot": slot, "id": id},
	}
}

// NewStorageUnavailable creates a 503 error when the local database cannot be used.
func NewStorageUnavailable(err error) *NutrilogError {
	msg := "storage unavailable"
	if err != nil {
		msg = fmt.Sprintf("storage unavailable: %v", err)
	}
	return &NutrilogError{
		Code:    ErrStorageUnavailable,
		Status:  503,
		Message: msg,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *NutrilogError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &NutrilogError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a NutrilogError with the given code.
func Is(err error, code ErrorCode) bool {
	if nErr, ok := err.(*NutrilogError); ok {
		return nErr.Code == code
	}
	return false
}
