package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sitegate-http-service/config"
	"sitegate-http-service/models"
)

// InterfaceVisitCounterService defines the monthly visit aggregator interface
type InterfaceVisitCounterService interface {
	Increment(supplierID uint, visitDate time.Time) (*models.MonthlyVisit, error)
	GetCount(supplierID uint, monthKey string) (int, error)
	History(supplierID uint, limit int) ([]models.MonthlyVisit, error)
}

// VisitCounterService maintains the per-supplier, per-month visit
// aggregate.
type VisitCounterService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewVisitCounterService creates a new visit counter service
func NewVisitCounterService(db *gorm.DB, cfg *config.Config) InterfaceVisitCounterService {
	return &VisitCounterService{
		DB:     db,
		Config: cfg,
	}
}

// Increment bumps the counter for the month of visitDate by one. The
// upsert is a single statement so concurrent check-ins within the same
// month cannot lose updates.
func (s *VisitCounterService) Increment(supplierID uint, visitDate time.Time) (*models.MonthlyVisit, error) {
	monthKey := models.MonthKeyOf(visitDate)

	visit := models.MonthlyVisit{
		SupplierID:  supplierID,
		MonthKey:    monthKey,
		VisitCount:  1,
		LastVisitAt: visitDate,
	}

	err := s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "supplier_id"}, {Name: "month_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"visit_count":   gorm.Expr("visit_count + 1"),
			"last_visit_at": visitDate,
			"updated_at":    time.Now(),
		}),
	}).Create(&visit).Error
	if err != nil {
		return nil, err
	}

	// Reload: on the conflict path the struct still holds the insert values.
	var current models.MonthlyVisit
	if err := s.DB.Where("supplier_id = ? AND month_key = ?", supplierID, monthKey).First(&current).Error; err != nil {
		return nil, err
	}
	return &current, nil
}

// GetCount returns the visit count for a month, zero when no record
// exists.
func (s *VisitCounterService) GetCount(supplierID uint, monthKey string) (int, error) {
	var visit models.MonthlyVisit
	err := s.DB.Where("supplier_id = ? AND month_key = ?", supplierID, monthKey).First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return visit.VisitCount, nil
}

// History returns the newest months first, bounded by limit.
func (s *VisitCounterService) History(supplierID uint, limit int) ([]models.MonthlyVisit, error) {
	if limit <= 0 {
		limit = 12
	}
	var visits []models.MonthlyVisit
	err := s.DB.Where("supplier_id = ?", supplierID).
		Order("month_key DESC").
		Limit(limit).
		Find(&visits).Error
	return visits, err
}
