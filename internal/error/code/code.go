package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: bad request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: unauthorized.
	StatusUnauthorized = 401
	// StatusForbidden - 403: forbidden.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusConflict - 409: state conflict.
	StatusConflict = 409
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request binding error.
	ErrBind
	// ErrValidation - 400: request validation error.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// Account error codes (101xxx).
const (
	// ErrAccountNotFound - 404: account not found.
	ErrAccountNotFound int = iota + 101000
	// ErrAccountAlreadyExist - 400: account already exists.
	ErrAccountAlreadyExist
	// ErrPasswordIncorrect - 401: invalid email or password.
	ErrPasswordIncorrect
	// ErrAccountPendingApproval - 403: account awaiting admin approval.
	ErrAccountPendingApproval
	// ErrAccountDeactivated - 403: account deactivated.
	ErrAccountDeactivated
	// ErrAccountAlreadyApproved - 409: account already approved.
	ErrAccountAlreadyApproved
	// ErrAccountNotEligible - 409: account role not eligible for approval.
	ErrAccountNotEligible
)

// Presence ledger error codes (102xxx).
const (
	// ErrAlreadyCheckedIn - 409: person already has an open presence entry.
	ErrAlreadyCheckedIn int = iota + 102000
	// ErrNoActiveEntry - 404: no open presence entry for person.
	ErrNoActiveEntry
	// ErrPresenceNotFound - 404: presence entry not found.
	ErrPresenceNotFound
)

// Person error codes (103xxx).
const (
	// ErrPersonNotFound - 404: person not found.
	ErrPersonNotFound int = iota + 103000
	// ErrPersonAlreadyExist - 400: person with same natural key exists.
	ErrPersonAlreadyExist
	// ErrInvalidPersonType - 400: unknown person type.
	ErrInvalidPersonType
)

// Vehicle error codes (104xxx).
const (
	// ErrVehicleNotFound - 404: vehicle not found.
	ErrVehicleNotFound int = iota + 104000
	// ErrVehicleAlreadyExist - 400: vehicle with same plate exists.
	ErrVehicleAlreadyExist
)

// Incident error codes (105xxx).
const (
	// ErrIncidentNotFound - 404: incident not found.
	ErrIncidentNotFound int = iota + 105000
	// ErrIncidentInvalidStatus - 400: invalid incident status token.
	ErrIncidentInvalidStatus
	// ErrIncidentInvalidTransition - 409: illegal incident status transition.
	ErrIncidentInvalidTransition
)

// Database error codes (106xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 106000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)
