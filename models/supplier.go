package models

// Supplier represents a visiting supplier company contact
type Supplier struct {
	BaseModel
	CompAffil string `gorm:"type:varchar(100);not null" json:"comp_affil"`
	IDSup     string `gorm:"type:varchar(50);uniqueIndex;not null" json:"id_sup"`
	Email     string `gorm:"type:varchar(100)" json:"email"`
	Phone     string `gorm:"type:varchar(20)" json:"phone"`
	NumVst    string `gorm:"type:varchar(20)" json:"num_vst"`
}
