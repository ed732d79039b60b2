package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"sitegate-http-service/config"
	"sitegate-http-service/models"
)

// InterfaceIncidentService defines the incident workflow interface
type InterfaceIncidentService interface {
	Report(incident *models.Incident) error
	GetIncidents(page, pageSize int, status *models.IncidentStatus) ([]models.Incident, int64, error)
	GetIncidentByID(id uint) (*models.Incident, error)
	UpdateStatus(adminID, incidentID uint, status models.IncidentStatus) (*models.Incident, error)
}

// IncidentService runs the incident status workflow. Transitions are one
// way: pending -> approved|rejected|resolved, approved|rejected ->
// resolved. Timestamps are set once and never reset.
type IncidentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewIncidentService creates a new incident service
func NewIncidentService(db *gorm.DB, cfg *config.Config) InterfaceIncidentService {
	return &IncidentService{
		DB:     db,
		Config: cfg,
	}
}

// Report files a new incident in the pending state.
func (s *IncidentService) Report(incident *models.Incident) error {
	if incident.Title == "" {
		return Validationf("incident title is required")
	}
	incident.Status = models.IncidentStatusPending
	incident.ApprovedBy = nil
	incident.ApprovedAt = nil
	incident.ResolvedAt = nil
	return s.DB.Create(incident).Error
}

// GetIncidents returns a page of incidents, optionally filtered by status.
func (s *IncidentService) GetIncidents(page, pageSize int, status *models.IncidentStatus) ([]models.Incident, int64, error) {
	query := s.DB.Model(&models.Incident{})
	if status != nil {
		if !status.Valid() {
			return nil, 0, ErrInvalidStatus
		}
		query = query.Where("status = ?", *status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var incidents []models.Incident
	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&incidents).Error; err != nil {
		return nil, 0, err
	}
	return incidents, total, nil
}

// GetIncidentByID fetches a single incident.
func (s *IncidentService) GetIncidentByID(id uint) (*models.Incident, error) {
	var incident models.Incident
	if err := s.DB.First(&incident, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncidentNotFound
		}
		return nil, err
	}
	return &incident, nil
}

// UpdateStatus applies one workflow transition taken by an admin.
func (s *IncidentService) UpdateStatus(adminID, incidentID uint, status models.IncidentStatus) (*models.Incident, error) {
	if !status.Valid() || status == models.IncidentStatusPending {
		return nil, ErrInvalidStatus
	}

	incident, err := s.GetIncidentByID(incidentID)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(incident.Status, status) {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	updates := map[string]interface{}{"status": status}
	switch status {
	case models.IncidentStatusApproved, models.IncidentStatusRejected:
		updates["approved_by"] = adminID
		updates["approved_at"] = now
		incident.ApprovedBy = &adminID
		incident.ApprovedAt = &now
	case models.IncidentStatusResolved:
		updates["resolved_at"] = now
		incident.ResolvedAt = &now
	}

	if err := s.DB.Model(incident).Updates(updates).Error; err != nil {
		return nil, err
	}
	incident.Status = status
	return incident, nil
}

func transitionAllowed(from, to models.IncidentStatus) bool {
	switch from {
	case models.IncidentStatusPending:
		return to == models.IncidentStatusApproved ||
			to == models.IncidentStatusRejected ||
			to == models.IncidentStatusResolved
	case models.IncidentStatusApproved, models.IncidentStatusRejected:
		return to == models.IncidentStatusResolved
	default:
		return false
	}
}
