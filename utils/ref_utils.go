package utils

import (
	"github.com/google/uuid"
)

// NewRefCode generates a unique reference code for external correlation
// of presence entries (badge prints, paper registers).
func NewRefCode() string {
	return uuid.NewString()
}
