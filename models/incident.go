package models

import "time"

// IncidentStatus represents the workflow state of an incident report
type IncidentStatus string

const (
	IncidentStatusPending  IncidentStatus = "pending"
	IncidentStatusApproved IncidentStatus = "approved"
	IncidentStatusRejected IncidentStatus = "rejected"
	IncidentStatusResolved IncidentStatus = "resolved"
)

// Valid reports whether s is a known incident status.
func (s IncidentStatus) Valid() bool {
	switch s {
	case IncidentStatusPending, IncidentStatusApproved, IncidentStatusRejected, IncidentStatusResolved:
		return true
	}
	return false
}

// Incident represents a reported site incident. Status moves one way:
// pending -> approved|rejected|resolved, approved|rejected -> resolved.
type Incident struct {
	BaseModel
	Title       string         `gorm:"type:varchar(200);not null" json:"title"`
	Description string         `gorm:"type:varchar(2000)" json:"description"`
	Location    string         `gorm:"type:varchar(100)" json:"location"`
	Severity    string         `gorm:"type:varchar(20)" json:"severity"`
	ReporterID  uint           `gorm:"not null;index" json:"reporter_id"`
	Status      IncidentStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	ApprovedBy  *uint          `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time     `json:"approved_at,omitempty"`
	ResolvedAt  *time.Time     `json:"resolved_at,omitempty"`
}
