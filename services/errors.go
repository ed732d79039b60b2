package services

import (
	"errors"
	"fmt"
)

// ErrorKind classifies service failures so transport layers can map them
// to status codes without string matching.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindConflict   ErrorKind = "conflict"
	KindNotFound   ErrorKind = "not_found"
	KindAuthz      ErrorKind = "authz"
	KindDependency ErrorKind = "dependency"
)

// ServiceError is a typed service-level failure.
type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// Is lets errors.Is match two ServiceErrors by kind and message, so the
// sentinel values below behave like classic sentinel errors even when a
// call site wraps them.
func (e *ServiceError) Is(target error) bool {
	var se *ServiceError
	if !errors.As(target, &se) {
		return false
	}
	return e.Kind == se.Kind && e.Message == se.Message
}

// Sentinel errors for the well-known failure modes.
var (
	ErrInvalidPersonType = &ServiceError{Kind: KindValidation, Message: "unknown person type"}
	ErrPersonNotFound    = &ServiceError{Kind: KindNotFound, Message: "person not found"}

	ErrAlreadyCheckedIn = &ServiceError{Kind: KindConflict, Message: "person already has an open presence entry"}
	ErrNoActiveEntry    = &ServiceError{Kind: KindNotFound, Message: "no open presence entry for this person"}
	ErrPresenceNotFound = &ServiceError{Kind: KindNotFound, Message: "presence entry not found"}

	ErrInvalidCredentials = &ServiceError{Kind: KindAuthz, Message: "invalid email or password"}
	ErrPendingApproval    = &ServiceError{Kind: KindAuthz, Message: "account is pending admin approval"}
	ErrDeactivated        = &ServiceError{Kind: KindAuthz, Message: "account is deactivated"}
	ErrAccountNotFound    = &ServiceError{Kind: KindNotFound, Message: "account not found"}
	ErrAccountExists      = &ServiceError{Kind: KindConflict, Message: "account already exists"}
	ErrNotEligible        = &ServiceError{Kind: KindConflict, Message: "account role is not eligible for approval"}
	ErrAlreadyApproved    = &ServiceError{Kind: KindConflict, Message: "account is already approved"}

	ErrVehicleNotFound = &ServiceError{Kind: KindNotFound, Message: "vehicle not found"}
	ErrVehicleExists   = &ServiceError{Kind: KindConflict, Message: "a vehicle with the same license plate already exists"}

	ErrIncidentNotFound   = &ServiceError{Kind: KindNotFound, Message: "incident not found"}
	ErrInvalidStatus      = &ServiceError{Kind: KindValidation, Message: "invalid incident status"}
	ErrInvalidTransition  = &ServiceError{Kind: KindConflict, Message: "illegal incident status transition"}
	ErrScheduleNotFound   = &ServiceError{Kind: KindNotFound, Message: "schedule entry not found"}
)

// Validationf builds a validation error.
func Validationf(format string, args ...interface{}) *ServiceError {
	return &ServiceError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Conflictf builds a conflict error.
func Conflictf(format string, args ...interface{}) *ServiceError {
	return &ServiceError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not-found error.
func NotFoundf(format string, args ...interface{}) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the error kind of err, or empty when err is not a
// ServiceError.
func KindOf(err error) ErrorKind {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
