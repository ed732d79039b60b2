package models

// LeoniPersonnel represents internal company personnel
type LeoniPersonnel struct {
	BaseModel
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	Matricule  string `gorm:"type:varchar(50);uniqueIndex;not null" json:"matricule"`
	Email      string `gorm:"type:varchar(100)" json:"email"`
	Phone      string `gorm:"type:varchar(20)" json:"phone"`
	Department string `gorm:"type:varchar(100)" json:"department"`
}
