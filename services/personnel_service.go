package services

import (
	"errors"

	"gorm.io/gorm"

	"sitegate-http-service/config"
	"sitegate-http-service/models"
)

// InterfacePersonnelService defines the internal personnel CRUD interface
type InterfacePersonnelService interface {
	GetPersonnel(page, pageSize int, search string) ([]models.LeoniPersonnel, int64, error)
	GetPersonnelByID(id uint) (*models.LeoniPersonnel, error)
	CreatePersonnel(personnel *models.LeoniPersonnel) error
	UpdatePersonnel(id uint, updates map[string]interface{}) (*models.LeoniPersonnel, error)
	DeletePersonnel(id uint) error
}

// PersonnelService provides internal personnel CRUD
type PersonnelService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPersonnelService creates a new personnel service
func NewPersonnelService(db *gorm.DB, cfg *config.Config) InterfacePersonnelService {
	return &PersonnelService{
		DB:     db,
		Config: cfg,
	}
}

// GetPersonnel returns a page of personnel with optional search
func (s *PersonnelService) GetPersonnel(page, pageSize int, search string) ([]models.LeoniPersonnel, int64, error) {
	var personnel []models.LeoniPersonnel
	var total int64

	query := s.DB.Model(&models.LeoniPersonnel{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR matricule LIKE ? OR department LIKE ?", pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Limit(pageSize).Offset(offset).Find(&personnel).Error; err != nil {
		return nil, 0, err
	}

	return personnel, total, nil
}

// GetPersonnelByID fetches one personnel record by id
func (s *PersonnelService) GetPersonnelByID(id uint) (*models.LeoniPersonnel, error) {
	var personnel models.LeoniPersonnel
	if err := s.DB.First(&personnel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	return &personnel, nil
}

// CreatePersonnel creates a personnel record after checking matricule uniqueness
func (s *PersonnelService) CreatePersonnel(personnel *models.LeoniPersonnel) error {
	if personnel.Matricule == "" {
		return Validationf("personnel matricule is required")
	}

	var count int64
	if err := s.DB.Model(&models.LeoniPersonnel{}).Where("matricule = ?", personnel.Matricule).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return Conflictf("a personnel record with matricule %s already exists", personnel.Matricule)
	}

	return s.DB.Create(personnel).Error
}

// UpdatePersonnel updates personnel fields, re-checking matricule uniqueness
func (s *PersonnelService) UpdatePersonnel(id uint, updates map[string]interface{}) (*models.LeoniPersonnel, error) {
	personnel, err := s.GetPersonnelByID(id)
	if err != nil {
		return nil, err
	}

	if matricule, ok := updates["matricule"].(string); ok && matricule != personnel.Matricule {
		var count int64
		if err := s.DB.Model(&models.LeoniPersonnel{}).Where("matricule = ? AND id != ?", matricule, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, Conflictf("a personnel record with matricule %s already exists", matricule)
		}
	}

	if err := s.DB.Model(personnel).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetPersonnelByID(id)
}

// DeletePersonnel deletes a personnel record
func (s *PersonnelService) DeletePersonnel(id uint) error {
	personnel, err := s.GetPersonnelByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(personnel).Error
}
