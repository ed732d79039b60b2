package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Common
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "invalid request parameters",
	ErrValidation:      "request validation failed",
	ErrTokenInvalid:    "invalid authentication token",
	ErrTooManyRequests: "too many requests",

	// Account
	ErrAccountNotFound:        "account not found",
	ErrAccountAlreadyExist:    "account already exists",
	ErrPasswordIncorrect:      "invalid email or password",
	ErrAccountPendingApproval: "account is pending admin approval",
	ErrAccountDeactivated:     "account is deactivated",
	ErrAccountAlreadyApproved: "account is already approved",
	ErrAccountNotEligible:     "account role is not eligible for approval",

	// Presence ledger
	ErrAlreadyCheckedIn: "person already has an open presence entry",
	ErrNoActiveEntry:    "no open presence entry for this person",
	ErrPresenceNotFound: "presence entry not found",

	// Person
	ErrPersonNotFound:    "person not found",
	ErrPersonAlreadyExist: "a person with the same identifier already exists",
	ErrInvalidPersonType: "unknown person type",

	// Vehicle
	ErrVehicleNotFound:     "vehicle not found",
	ErrVehicleAlreadyExist: "a vehicle with the same license plate already exists",

	// Incident
	ErrIncidentNotFound:          "incident not found",
	ErrIncidentInvalidStatus:     "invalid incident status",
	ErrIncidentInvalidTransition: "illegal incident status transition",

	// Database
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Common
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// Account
	ErrAccountNotFound:        StatusNotFound,
	ErrAccountAlreadyExist:    StatusBadRequest,
	ErrPasswordIncorrect:      StatusUnauthorized,
	ErrAccountPendingApproval: StatusForbidden,
	ErrAccountDeactivated:     StatusForbidden,
	ErrAccountAlreadyApproved: StatusConflict,
	ErrAccountNotEligible:     StatusConflict,

	// Presence ledger
	ErrAlreadyCheckedIn: StatusConflict,
	ErrNoActiveEntry:    StatusNotFound,
	ErrPresenceNotFound: StatusNotFound,

	// Person
	ErrPersonNotFound:    StatusNotFound,
	ErrPersonAlreadyExist: StatusBadRequest,
	ErrInvalidPersonType: StatusBadRequest,

	// Vehicle
	ErrVehicleNotFound:     StatusNotFound,
	ErrVehicleAlreadyExist: StatusBadRequest,

	// Incident
	ErrIncidentNotFound:          StatusNotFound,
	ErrIncidentInvalidStatus:     StatusBadRequest,
	ErrIncidentInvalidTransition: StatusConflict,

	// Database
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
