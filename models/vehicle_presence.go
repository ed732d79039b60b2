package models

import "time"

// VehiclePresence mirrors a presence entry when a vehicle came on site.
// It is created and closed only as a side effect of the presence ledger;
// entry and exit times must match the parent entry once it checks out.
type VehiclePresence struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	VehicleID       uint       `gorm:"not null;index" json:"vehicle_id"`
	PresenceEntryID uint       `gorm:"not null;uniqueIndex" json:"presence_entry_id"`
	EntryTime       time.Time  `gorm:"not null" json:"entry_time"`
	ExitTime        *time.Time `json:"exit_time,omitempty"`
	ParkingLocation string     `gorm:"type:varchar(100)" json:"parking_location"`
	Notes           string     `gorm:"type:varchar(500)" json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}
