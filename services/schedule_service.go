package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"sitegate-http-service/config"
	"sitegate-http-service/models"
)

// InterfaceScheduleService defines the planned presence CRUD interface
type InterfaceScheduleService interface {
	GetSchedules(page, pageSize int, date *time.Time) ([]models.SchedulePresence, int64, error)
	GetScheduleByID(id uint) (*models.SchedulePresence, error)
	CreateSchedule(schedule *models.SchedulePresence) error
	UpdateSchedule(id uint, updates map[string]interface{}) (*models.SchedulePresence, error)
	DeleteSchedule(id uint) error
}

// ScheduleService provides planned presence CRUD
type ScheduleService struct {
	DB     *gorm.DB
	Config *config.Config
	Owners InterfaceOwnerService
}

// NewScheduleService creates a new schedule service
func NewScheduleService(db *gorm.DB, cfg *config.Config, owners InterfaceOwnerService) InterfaceScheduleService {
	return &ScheduleService{
		DB:     db,
		Config: cfg,
		Owners: owners,
	}
}

// GetSchedules returns a page of schedule entries, optionally for one day
func (s *ScheduleService) GetSchedules(page, pageSize int, date *time.Time) ([]models.SchedulePresence, int64, error) {
	query := s.DB.Model(&models.SchedulePresence{})
	if date != nil {
		query = query.Where("date = ?", models.DateOf(*date))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var schedules []models.SchedulePresence
	offset := (page - 1) * pageSize
	if err := query.Order("date DESC, start_time").Limit(pageSize).Offset(offset).Find(&schedules).Error; err != nil {
		return nil, 0, err
	}
	return schedules, total, nil
}

// GetScheduleByID fetches a schedule entry by id
func (s *ScheduleService) GetScheduleByID(id uint) (*models.SchedulePresence, error) {
	var schedule models.SchedulePresence
	if err := s.DB.First(&schedule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return &schedule, nil
}

// CreateSchedule creates a planned presence window after validating the
// person reference
func (s *ScheduleService) CreateSchedule(schedule *models.SchedulePresence) error {
	if !schedule.PersonType.Valid() {
		return ErrInvalidPersonType
	}
	if _, err := s.Owners.Resolve(schedule.PersonID, schedule.PersonType); err != nil {
		return err
	}
	if schedule.Date.IsZero() {
		return Validationf("schedule date is required")
	}
	schedule.Date = models.DateOf(schedule.Date)
	return s.DB.Create(schedule).Error
}

// UpdateSchedule updates schedule fields
func (s *ScheduleService) UpdateSchedule(id uint, updates map[string]interface{}) (*models.SchedulePresence, error) {
	schedule, err := s.GetScheduleByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(schedule).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetScheduleByID(id)
}

// DeleteSchedule deletes a schedule entry
func (s *ScheduleService) DeleteSchedule(id uint) error {
	schedule, err := s.GetScheduleByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(schedule).Error
}
