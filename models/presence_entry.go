package models

import (
	"time"
)

// PresenceStatus represents the lifecycle state of a presence entry
type PresenceStatus string

const (
	PresenceStatusEntry   PresenceStatus = "entry"
	PresenceStatusExit    PresenceStatus = "exit"
	PresenceStatusPresent PresenceStatus = "present"
)

// Valid reports whether s is a known presence status.
func (s PresenceStatus) Valid() bool {
	switch s {
	case PresenceStatusEntry, PresenceStatusExit, PresenceStatusPresent:
		return true
	}
	return false
}

// Open reports whether the status counts as "currently inside".
func (s PresenceStatus) Open() bool {
	return s == PresenceStatusEntry || s == PresenceStatusPresent
}

// PresenceEntry is one check-in/check-out lifecycle record for a person.
//
// OpenMarker is 1 while the entry is open and NULL once closed. The
// composite unique index over (person_id, person_type, open_marker)
// makes a second concurrent check-in for the same person fail at the
// store: MySQL unique indexes skip NULL values, so any number of closed
// entries coexist while at most one open entry can.
type PresenceEntry struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	RefCode    string         `gorm:"type:varchar(40);index" json:"ref_code"`
	PersonID   uint           `gorm:"not null;uniqueIndex:idx_open_presence" json:"person_id"`
	PersonType PersonType     `gorm:"type:varchar(20);not null;uniqueIndex:idx_open_presence" json:"person_type"`
	Status     PresenceStatus `gorm:"type:varchar(10);not null" json:"status"`
	EntryTime  time.Time      `gorm:"not null;index" json:"entry_time"`
	ExitTime   *time.Time     `json:"exit_time,omitempty"`
	Duration   int            `gorm:"not null;default:0" json:"duration"` // minutes, derived
	LogDate    time.Time      `gorm:"type:date;index" json:"log_date"`
	OpenMarker *uint8         `gorm:"uniqueIndex:idx_open_presence" json:"-"`
	Notes      string         `gorm:"type:varchar(500)" json:"notes"`
	RecordedBy uint           `json:"recorded_by"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	VehiclePresenceID *uint            `json:"vehicle_presence_id,omitempty"`
	VehiclePresence   *VehiclePresence `gorm:"foreignKey:VehiclePresenceID" json:"vehicle_presence,omitempty"`
}

// IsOpen reports whether the entry still counts as "currently inside".
func (e *PresenceEntry) IsOpen() bool {
	return e.Status.Open() && e.ExitTime == nil
}

// ComputeDuration returns the visit length in whole minutes. A negative
// delta (clock skew, bad manual input) clamps to zero instead of going
// negative; the caller is expected to surface the clamp as a warning.
func ComputeDuration(entryTime, exitTime time.Time) int {
	d := exitTime.Sub(entryTime)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}

// DateOf truncates t to its calendar date for log_date storage.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
