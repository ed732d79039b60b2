package models

import "time"

// SchedulePresence is a planned presence window for a person, used by
// gate operators to know who is expected on a given day.
type SchedulePresence struct {
	BaseModel
	PersonID   uint       `gorm:"not null;index:idx_schedule_person" json:"person_id"`
	PersonType PersonType `gorm:"type:varchar(20);not null;index:idx_schedule_person" json:"person_type"`
	Date       time.Time  `gorm:"type:date;not null;index" json:"date"`
	StartTime  string     `gorm:"type:varchar(5)" json:"start_time"` // HH:MM
	EndTime    string     `gorm:"type:varchar(5)" json:"end_time"`   // HH:MM
	Notes      string     `gorm:"type:varchar(500)" json:"notes"`
}
