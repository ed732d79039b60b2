package models

// Vehicle represents a vehicle registered to one of the three person kinds.
// OwnerID plus OwnerType form a polymorphic reference resolved through the
// owner service, never by ad-hoc type switches at call sites.
type Vehicle struct {
	BaseModel
	LicensePlate string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"license_plate"`
	Brand        string     `gorm:"type:varchar(50)" json:"brand"`
	Model        string     `gorm:"type:varchar(50)" json:"model"`
	Color        string     `gorm:"type:varchar(30)" json:"color"`
	OwnerID      uint       `gorm:"not null;index:idx_vehicle_owner" json:"owner_id"`
	OwnerType    PersonType `gorm:"type:varchar(20);not null;index:idx_vehicle_owner" json:"owner_type"`

	// Relations
	Presences []VehiclePresence `gorm:"foreignKey:VehicleID" json:"presences,omitempty"`
}
