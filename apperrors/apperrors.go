// Package apperrors defines the closed set of domain failures the API
// can signal. Every failure carries a fixed HTTP status and a stable
// machine-readable code; anything outside this set is treated as
// unclassified by the error boundary.
package apperrors

import (
	"fmt"
	"net/http"
)

type Kind int

const (
	Unclassified Kind = iota
	NotFoundKind
	ValidationKind
	BusinessRuleKind
	ReferentialIntegrityKind
	DatabaseKind
)

type Error struct {
	Kind             Kind
	Message          string
	ValidationErrors map[string][]string
	Cause            error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Status() int {
	switch e.Kind {
	case NotFoundKind:
		return http.StatusNotFound
	case ValidationKind, BusinessRuleKind:
		return http.StatusBadRequest
	case ReferentialIntegrityKind:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (e *Error) Code() string {
	switch e.Kind {
	case NotFoundKind:
		return "RESOURCE_NOT_FOUND"
	case ValidationKind:
		return "VALIDATION_ERROR"
	case BusinessRuleKind:
		return "BUSINESS_RULE_VIOLATION"
	case ReferentialIntegrityKind:
		return "REFERENTIAL_INTEGRITY_VIOLATION"
	case DatabaseKind:
		return "DATABASE_ERROR"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

func NotFound(resource string, key interface{}) *Error {
	return &Error{
		Kind:    NotFoundKind,
		Message: fmt.Sprintf("%s with ID '%v' was not found.", resource, key),
	}
}

func NotFoundMsg(message string) *Error {
	return &Error{Kind: NotFoundKind, Message: message}
}

func Validation(message string) *Error {
	return &Error{Kind: ValidationKind, Message: message}
}

func ValidationFields(errors map[string][]string) *Error {
	return &Error{
		Kind:             ValidationKind,
		Message:          "One or more validation errors occurred.",
		ValidationErrors: errors,
	}
}

func BusinessRule(message string) *Error {
	return &Error{Kind: BusinessRuleKind, Message: message}
}

func ReferentialIntegrity(message string) *Error {
	return &Error{Kind: ReferentialIntegrityKind, Message: message}
}

func Database(message string, cause error) *Error {
	return &Error{Kind: DatabaseKind, Message: message, Cause: cause}
}
