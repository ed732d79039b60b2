package services

import (
	"errors"

	"gorm.io/gorm"

	"sitegate-http-service/config"
	"sitegate-http-service/models"
)

// InterfaceSupplierService defines the supplier CRUD interface
type InterfaceSupplierService interface {
	GetSuppliers(page, pageSize int, search string) ([]models.Supplier, int64, error)
	GetSupplierByID(id uint) (*models.Supplier, error)
	CreateSupplier(supplier *models.Supplier) error
	UpdateSupplier(id uint, updates map[string]interface{}) (*models.Supplier, error)
	DeleteSupplier(id uint) error
}

// SupplierService provides supplier CRUD
type SupplierService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewSupplierService creates a new supplier service
func NewSupplierService(db *gorm.DB, cfg *config.Config) InterfaceSupplierService {
	return &SupplierService{
		DB:     db,
		Config: cfg,
	}
}

// GetSuppliers returns a page of suppliers with optional search
func (s *SupplierService) GetSuppliers(page, pageSize int, search string) ([]models.Supplier, int64, error) {
	var suppliers []models.Supplier
	var total int64

	query := s.DB.Model(&models.Supplier{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("comp_affil LIKE ? OR id_sup LIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Limit(pageSize).Offset(offset).Find(&suppliers).Error; err != nil {
		return nil, 0, err
	}

	return suppliers, total, nil
}

// GetSupplierByID fetches a supplier by id
func (s *SupplierService) GetSupplierByID(id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := s.DB.First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// CreateSupplier creates a new supplier after checking identifier uniqueness
func (s *SupplierService) CreateSupplier(supplier *models.Supplier) error {
	if supplier.IDSup == "" {
		return Validationf("supplier identifier is required")
	}

	var count int64
	if err := s.DB.Model(&models.Supplier{}).Where("id_sup = ?", supplier.IDSup).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return Conflictf("a supplier with identifier %s already exists", supplier.IDSup)
	}

	return s.DB.Create(supplier).Error
}

// UpdateSupplier updates supplier fields, re-checking identifier uniqueness
func (s *SupplierService) UpdateSupplier(id uint, updates map[string]interface{}) (*models.Supplier, error) {
	supplier, err := s.GetSupplierByID(id)
	if err != nil {
		return nil, err
	}

	if idSup, ok := updates["id_sup"].(string); ok && idSup != supplier.IDSup {
		var count int64
		if err := s.DB.Model(&models.Supplier{}).Where("id_sup = ? AND id != ?", idSup, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, Conflictf("a supplier with identifier %s already exists", idSup)
		}
	}

	if err := s.DB.Model(supplier).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetSupplierByID(id)
}

// DeleteSupplier deletes a supplier
func (s *SupplierService) DeleteSupplier(id uint) error {
	supplier, err := s.GetSupplierByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(supplier).Error
}
