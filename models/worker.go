package models

// Worker represents an external contractor working on site
type Worker struct {
	BaseModel
	Name    string `gorm:"type:varchar(100);not null" json:"worker_name"`
	CIN     string `gorm:"type:varchar(20);uniqueIndex;not null" json:"cin"`
	Email   string `gorm:"type:varchar(100)" json:"email"`
	Phone   string `gorm:"type:varchar(20)" json:"phone"`
	Company string `gorm:"type:varchar(100)" json:"company"`
	Post    string `gorm:"type:varchar(100)" json:"post"`
}
