package services

import (
	"errors"
	"fmt"
	"net/http"

	"cafe-service/repository"

	"gorm.io/gorm"
)

// ErrorKind classifies a ServiceError for callers that need more than the
// HTTP status: validation and not-found are terminal, invalid references
// abort the whole containing operation, and transaction failures are
// retryable because the operation's effect is exactly "not attempted".
type ErrorKind string

const (
	KindValidation       ErrorKind = "validation"
	KindNotFound         ErrorKind = "not_found"
	KindInvalidReference ErrorKind = "invalid_reference"
	KindTransaction      ErrorKind = "transaction"
)

// ServiceError represents a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Kind       ErrorKind
	Message    string
	Field      string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// Retryable reports whether the caller may safely retry the operation.
func (e *ServiceError) Retryable() bool {
	return e.Kind == KindTransaction
}

func validationError(field, message string) *ServiceError {
	return &ServiceError{
		StatusCode: http.StatusBadRequest,
		Kind:       KindValidation,
		Message:    message,
		Field:      field,
	}
}

func notFoundError(entity string, id uint) *ServiceError {
	return &ServiceError{
		StatusCode: http.StatusNotFound,
		Kind:       KindNotFound,
		Message:    fmt.Sprintf("%s %d not found", entity, id),
	}
}

func invalidReference(ref *repository.ReferenceError) *ServiceError {
	return &ServiceError{
		StatusCode: http.StatusUnprocessableEntity,
		Kind:       KindInvalidReference,
		Message:    ref.Error(),
		Field:      ref.Entity,
	}
}

func transactionFailure(err error) *ServiceError {
	return &ServiceError{
		StatusCode: http.StatusServiceUnavailable,
		Kind:       KindTransaction,
		Message:    fmt.Sprintf("operation rolled back, safe to retry: %v", err),
	}
}

// storeError maps repository errors onto the taxonomy. gorm's not-found
// sentinel becomes a 404 for the named entity, unresolved references keep
// the offending id, and anything else (commit failure, timeout, constraint
// violation) is a retryable transaction failure.
func storeError(err error, entity string, id uint) *ServiceError {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundError(entity, id)
	}
	var ref *repository.ReferenceError
	if errors.As(err, &ref) {
		return invalidReference(ref)
	}
	return transactionFailure(err)
}
