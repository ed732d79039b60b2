package services

import (
	"errors"

	"gorm.io/gorm"

	"sitegate-http-service/config"
	"sitegate-http-service/models"
)

// InterfaceVehicleService defines the vehicle CRUD interface
type InterfaceVehicleService interface {
	GetVehicles(page, pageSize int, search string) ([]models.Vehicle, int64, error)
	GetVehicleByID(id uint) (*models.Vehicle, error)
	CreateVehicle(vehicle *models.Vehicle) error
	UpdateVehicle(id uint, updates map[string]interface{}) (*models.Vehicle, error)
	DeleteVehicle(id uint) error
	GetVehiclePresences(vehicleID uint, page, pageSize int) ([]models.VehiclePresence, int64, error)
}

// VehicleService provides vehicle CRUD. Vehicle owners are polymorphic
// over the three person kinds and are validated through the owner
// resolution service.
type VehicleService struct {
	DB     *gorm.DB
	Config *config.Config
	Owners InterfaceOwnerService
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(db *gorm.DB, cfg *config.Config, owners InterfaceOwnerService) InterfaceVehicleService {
	return &VehicleService{
		DB:     db,
		Config: cfg,
		Owners: owners,
	}
}

// GetVehicles returns a page of vehicles with optional plate search
func (s *VehicleService) GetVehicles(page, pageSize int, search string) ([]models.Vehicle, int64, error) {
	var vehicles []models.Vehicle
	var total int64

	query := s.DB.Model(&models.Vehicle{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("license_plate LIKE ? OR brand LIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Limit(pageSize).Offset(offset).Find(&vehicles).Error; err != nil {
		return nil, 0, err
	}

	return vehicles, total, nil
}

// GetVehicleByID fetches a vehicle by id
func (s *VehicleService) GetVehicleByID(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.DB.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// CreateVehicle creates a vehicle after validating the owner reference
// and plate uniqueness
func (s *VehicleService) CreateVehicle(vehicle *models.Vehicle) error {
	if vehicle.LicensePlate == "" {
		return Validationf("vehicle license plate is required")
	}
	if !vehicle.OwnerType.Valid() {
		return ErrInvalidPersonType
	}
	if _, err := s.Owners.Resolve(vehicle.OwnerID, vehicle.OwnerType); err != nil {
		return err
	}

	var count int64
	if err := s.DB.Model(&models.Vehicle{}).Where("license_plate = ?", vehicle.LicensePlate).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrVehicleExists
	}

	return s.DB.Create(vehicle).Error
}

// UpdateVehicle updates vehicle fields, re-validating plate uniqueness
// and any owner change
func (s *VehicleService) UpdateVehicle(id uint, updates map[string]interface{}) (*models.Vehicle, error) {
	vehicle, err := s.GetVehicleByID(id)
	if err != nil {
		return nil, err
	}

	if plate, ok := updates["license_plate"].(string); ok && plate != vehicle.LicensePlate {
		var count int64
		if err := s.DB.Model(&models.Vehicle{}).Where("license_plate = ? AND id != ?", plate, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrVehicleExists
		}
	}

	ownerID := vehicle.OwnerID
	ownerType := vehicle.OwnerType
	ownerChanged := false
	if v, ok := updates["owner_id"]; ok {
		switch id := v.(type) {
		case uint:
			ownerID = id
		case float64:
			ownerID = uint(id)
		}
		ownerChanged = true
	}
	if v, ok := updates["owner_type"].(string); ok {
		ownerType = models.PersonType(v)
		ownerChanged = true
	}
	if ownerChanged {
		if !ownerType.Valid() {
			return nil, ErrInvalidPersonType
		}
		if _, err := s.Owners.Resolve(ownerID, ownerType); err != nil {
			return nil, err
		}
	}

	if err := s.DB.Model(vehicle).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetVehicleByID(id)
}

// DeleteVehicle deletes a vehicle
func (s *VehicleService) DeleteVehicle(id uint) error {
	vehicle, err := s.GetVehicleByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(vehicle).Error
}

// GetVehiclePresences returns the presence mirror records of a vehicle,
// newest first
func (s *VehicleService) GetVehiclePresences(vehicleID uint, page, pageSize int) ([]models.VehiclePresence, int64, error) {
	if _, err := s.GetVehicleByID(vehicleID); err != nil {
		return nil, 0, err
	}

	query := s.DB.Model(&models.VehiclePresence{}).Where("vehicle_id = ?", vehicleID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var presences []models.VehiclePresence
	offset := (page - 1) * pageSize
	if err := query.Order("entry_time DESC").Limit(pageSize).Offset(offset).Find(&presences).Error; err != nil {
		return nil, 0, err
	}

	return presences, total, nil
}
