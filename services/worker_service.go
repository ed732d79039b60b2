package services

import (
	"errors"

	"gorm.io/gorm"

	"sitegate-http-service/config"
	"sitegate-http-service/models"
)

// InterfaceWorkerService defines the worker CRUD interface
type InterfaceWorkerService interface {
	GetWorkers(page, pageSize int, search string) ([]models.Worker, int64, error)
	GetWorkerByID(id uint) (*models.Worker, error)
	CreateWorker(worker *models.Worker) error
	UpdateWorker(id uint, updates map[string]interface{}) (*models.Worker, error)
	DeleteWorker(id uint) error
}

// WorkerService provides worker CRUD
type WorkerService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewWorkerService creates a new worker service
func NewWorkerService(db *gorm.DB, cfg *config.Config) InterfaceWorkerService {
	return &WorkerService{
		DB:     db,
		Config: cfg,
	}
}

// GetWorkers returns a page of workers, with optional search on name and CIN
func (s *WorkerService) GetWorkers(page, pageSize int, search string) ([]models.Worker, int64, error) {
	var workers []models.Worker
	var total int64

	query := s.DB.Model(&models.Worker{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR cin LIKE ? OR company LIKE ?", pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Limit(pageSize).Offset(offset).Find(&workers).Error; err != nil {
		return nil, 0, err
	}

	return workers, total, nil
}

// GetWorkerByID fetches a worker by id
func (s *WorkerService) GetWorkerByID(id uint) (*models.Worker, error) {
	var worker models.Worker
	if err := s.DB.First(&worker, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	return &worker, nil
}

// CreateWorker creates a new worker after checking CIN uniqueness
func (s *WorkerService) CreateWorker(worker *models.Worker) error {
	if worker.CIN == "" {
		return Validationf("worker CIN is required")
	}

	var count int64
	if err := s.DB.Model(&models.Worker{}).Where("cin = ?", worker.CIN).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return Conflictf("a worker with CIN %s already exists", worker.CIN)
	}

	return s.DB.Create(worker).Error
}

// UpdateWorker updates worker fields, re-checking CIN uniqueness on change
func (s *WorkerService) UpdateWorker(id uint, updates map[string]interface{}) (*models.Worker, error) {
	worker, err := s.GetWorkerByID(id)
	if err != nil {
		return nil, err
	}

	if cin, ok := updates["cin"].(string); ok && cin != worker.CIN {
		var count int64
		if err := s.DB.Model(&models.Worker{}).Where("cin = ? AND id != ?", cin, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, Conflictf("a worker with CIN %s already exists", cin)
		}
	}

	if err := s.DB.Model(worker).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetWorkerByID(id)
}

// DeleteWorker deletes a worker
func (s *WorkerService) DeleteWorker(id uint) error {
	worker, err := s.GetWorkerByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(worker).Error
}
