package models

import "time"

// MonthlyVisit aggregates supplier check-ins per calendar month. The
// (supplier_id, month_key) pair is unique; rows are created lazily on
// the first visit of a month and never deleted. VisitCount only grows.
type MonthlyVisit struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SupplierID  uint      `gorm:"not null;uniqueIndex:idx_supplier_month" json:"supplier_id"`
	MonthKey    string    `gorm:"type:varchar(7);not null;uniqueIndex:idx_supplier_month" json:"month_key"` // YYYY-MM
	VisitCount  int       `gorm:"not null;default:0" json:"visit_count"`
	LastVisitAt time.Time `json:"last_visit_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MonthKeyOf formats t as the YYYY-MM aggregation key.
func MonthKeyOf(t time.Time) string {
	return t.Format("2006-01")
}
