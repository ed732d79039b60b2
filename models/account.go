package models

import (
	"time"

	"gorm.io/gorm"

	"sitegate-http-service/utils"
)

// AccountRole represents the role of a backend account
type AccountRole string

const (
	RoleAdmin AccountRole = "admin"
	RoleSOS   AccountRole = "sos"
)

// Valid reports whether r is a known account role.
func (r AccountRole) Valid() bool {
	return r == RoleAdmin || r == RoleSOS
}

// Account represents a backend user account. Admin accounts are approved
// and active at creation; sos accounts stay pending until an admin
// approves them.
type Account struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	Name       string      `gorm:"type:varchar(100);not null" json:"name"`
	Email      string      `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password   string      `gorm:"type:varchar(100);not null" json:"-"`
	Role       AccountRole `gorm:"type:varchar(20);not null;default:sos" json:"role"`
	IsApproved bool        `gorm:"not null;default:false" json:"is_approved"`
	IsActive   bool        `gorm:"not null;default:false" json:"is_active"`
	ApprovedBy *uint       `json:"approved_by,omitempty"`
	ApprovedAt *time.Time  `json:"approved_at,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// BeforeCreate hashes the password if a plaintext one was supplied.
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.Password != "" && len(a.Password) < 60 {
		hashed, err := utils.HashPassword(a.Password)
		if err != nil {
			return err
		}
		a.Password = hashed
	}
	return nil
}
