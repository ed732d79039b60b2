package services

import (
	"errors"

	"gorm.io/gorm"

	"sitegate-http-service/config"
	"sitegate-http-service/models"
)

// OwnerInfo is the normalized projection of whichever entity owns a
// presence or vehicle record.
type OwnerInfo struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Identifier  string            `json:"identifier"`
	ContactInfo string            `json:"contact_info"`
	Kind        models.PersonType `json:"kind"`
}

// InterfaceOwnerService defines the owner resolution interface
type InterfaceOwnerService interface {
	Resolve(personID uint, personType models.PersonType) (*OwnerInfo, error)
	SearchIDs(personType models.PersonType, text string) ([]uint, error)
}

// OwnerService resolves a (person id, person type) pair to the concrete
// entity behind it. This is the single place the three person kinds are
// dispatched over; the rest of the core only sees OwnerInfo.
type OwnerService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewOwnerService creates a new owner resolution service
func NewOwnerService(db *gorm.DB, cfg *config.Config) InterfaceOwnerService {
	return &OwnerService{
		DB:     db,
		Config: cfg,
	}
}

// Resolve maps the entity fields of the matching kind onto OwnerInfo.
func (s *OwnerService) Resolve(personID uint, personType models.PersonType) (*OwnerInfo, error) {
	switch personType {
	case models.PersonTypeWorker:
		var w models.Worker
		if err := s.DB.First(&w, personID).Error; err != nil {
			return nil, translateNotFound(err)
		}
		return &OwnerInfo{
			ID:          w.ID,
			Name:        w.Name,
			Identifier:  w.CIN,
			ContactInfo: w.Email,
			Kind:        models.PersonTypeWorker,
		}, nil

	case models.PersonTypeSupplier:
		var sp models.Supplier
		if err := s.DB.First(&sp, personID).Error; err != nil {
			return nil, translateNotFound(err)
		}
		return &OwnerInfo{
			ID:          sp.ID,
			Name:        sp.CompAffil,
			Identifier:  sp.IDSup,
			ContactInfo: sp.NumVst,
			Kind:        models.PersonTypeSupplier,
		}, nil

	case models.PersonTypePersonnel:
		var p models.LeoniPersonnel
		if err := s.DB.First(&p, personID).Error; err != nil {
			return nil, translateNotFound(err)
		}
		return &OwnerInfo{
			ID:          p.ID,
			Name:        p.Name,
			Identifier:  p.Matricule,
			ContactInfo: p.Email,
			Kind:        models.PersonTypePersonnel,
		}, nil

	default:
		return nil, ErrInvalidPersonType
	}
}

// SearchIDs returns the ids of entities of the given kind whose display
// name or identifier matches the search text. Used by the presence query
// for free-text search through the owner join.
func (s *OwnerService) SearchIDs(personType models.PersonType, text string) ([]uint, error) {
	pattern := "%" + text + "%"
	var ids []uint

	switch personType {
	case models.PersonTypeWorker:
		err := s.DB.Model(&models.Worker{}).
			Where("name LIKE ? OR cin LIKE ?", pattern, pattern).
			Pluck("id", &ids).Error
		return ids, err

	case models.PersonTypeSupplier:
		err := s.DB.Model(&models.Supplier{}).
			Where("comp_affil LIKE ? OR id_sup LIKE ?", pattern, pattern).
			Pluck("id", &ids).Error
		return ids, err

	case models.PersonTypePersonnel:
		err := s.DB.Model(&models.LeoniPersonnel{}).
			Where("name LIKE ? OR matricule LIKE ?", pattern, pattern).
			Pluck("id", &ids).Error
		return ids, err

	default:
		return nil, ErrInvalidPersonType
	}
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPersonNotFound
	}
	return err
}
