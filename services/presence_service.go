package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"sitegate-http-service/config"
	"sitegate-http-service/models"
	"sitegate-http-service/utils"
)

// CheckInRequest carries the inputs of a check-in.
type CheckInRequest struct {
	PersonID   uint
	PersonType models.PersonType
	VehicleID  *uint
	EntryTime  *time.Time
	Notes      string
	RecordedBy uint
}

// CheckOutRequest carries the inputs of a check-out.
type CheckOutRequest struct {
	PersonID   uint
	PersonType models.PersonType
	ExitTime   *time.Time
	Notes      string
}

// ManualEntryRequest creates a back-dated entry directly in the closed
// state, for visits recorded on paper and typed in later.
type ManualEntryRequest struct {
	PersonID   uint
	PersonType models.PersonType
	EntryTime  time.Time
	ExitTime   time.Time
	Notes      string
	RecordedBy uint
}

// PresenceFilter selects and pages presence entries.
type PresenceFilter struct {
	PersonType *models.PersonType
	Status     *models.PresenceStatus
	DateFrom   *time.Time
	DateTo     *time.Time
	Search     string
	PageNum    int
	PageSize   int
}

// EnrichedPresenceEntry is a presence entry with its owner resolved for
// display. Person is nil when resolution failed (degraded, not fatal).
type EnrichedPresenceEntry struct {
	models.PresenceEntry
	Person *OwnerInfo `json:"person,omitempty"`
}

// InterfacePresenceService defines the presence ledger interface
type InterfacePresenceService interface {
	CheckIn(req CheckInRequest) (*EnrichedPresenceEntry, error)
	CheckOut(req CheckOutRequest) (*EnrichedPresenceEntry, error)
	CreateClosed(req ManualEntryRequest) (*EnrichedPresenceEntry, error)
	ListActive() ([]EnrichedPresenceEntry, error)
	Query(filter PresenceFilter) ([]EnrichedPresenceEntry, int64, error)
	GetByID(id uint) (*EnrichedPresenceEntry, error)
}

// PresenceService is the check-in/check-out engine. The presence entry
// is the primary record: it commits first, and the vehicle mirror and
// supplier monthly counter are best-effort side effects whose failure is
// logged but never fails the check-in.
type PresenceService struct {
	DB     *gorm.DB
	Config *config.Config
	Owners InterfaceOwnerService
	Visits InterfaceVisitCounterService
	Events EventLogger
}

// NewPresenceService creates a new presence ledger service
func NewPresenceService(db *gorm.DB, cfg *config.Config, owners InterfaceOwnerService, visits InterfaceVisitCounterService, events EventLogger) InterfacePresenceService {
	return &PresenceService{
		DB:     db,
		Config: cfg,
		Owners: owners,
		Visits: visits,
		Events: events,
	}
}

var openMarker uint8 = 1

// CheckIn opens a presence entry for a person. Fails with
// ErrAlreadyCheckedIn when an open entry exists; the unique index on
// (person_id, person_type, open_marker) backstops the pre-check under
// concurrent requests.
func (s *PresenceService) CheckIn(req CheckInRequest) (*EnrichedPresenceEntry, error) {
	if !req.PersonType.Valid() {
		return nil, ErrInvalidPersonType
	}

	owner, err := s.Owners.Resolve(req.PersonID, req.PersonType)
	if err != nil {
		return nil, err
	}

	var openCount int64
	if err := s.DB.Model(&models.PresenceEntry{}).
		Where("person_id = ? AND person_type = ? AND open_marker IS NOT NULL", req.PersonID, req.PersonType).
		Count(&openCount).Error; err != nil {
		return nil, err
	}
	if openCount > 0 {
		return nil, ErrAlreadyCheckedIn
	}

	entryTime := time.Now()
	if req.EntryTime != nil {
		entryTime = *req.EntryTime
	}

	entry := models.PresenceEntry{
		RefCode:    utils.NewRefCode(),
		PersonID:   req.PersonID,
		PersonType: req.PersonType,
		Status:     models.PresenceStatusEntry,
		EntryTime:  entryTime,
		LogDate:    models.DateOf(entryTime),
		OpenMarker: &openMarker,
		Notes:      req.Notes,
		RecordedBy: req.RecordedBy,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, err
	}

	// Secondary effects from here on are best-effort: the check-in is
	// already committed and must not be reported as failed.
	if req.VehicleID != nil {
		s.linkVehicle(&entry, *req.VehicleID)
	}

	if req.PersonType == models.PersonTypeSupplier {
		if _, err := s.Visits.Increment(req.PersonID, entryTime); err != nil {
			s.Events.Warnf("monthly visit increment failed for supplier %d (entry %d): %v", req.PersonID, entry.ID, err)
		}
	}

	return &EnrichedPresenceEntry{PresenceEntry: entry, Person: owner}, nil
}

// linkVehicle creates the vehicle mirror record for a fresh entry.
func (s *PresenceService) linkVehicle(entry *models.PresenceEntry, vehicleID uint) {
	var vehicle models.Vehicle
	if err := s.DB.First(&vehicle, vehicleID).Error; err != nil {
		s.Events.Warnf("vehicle %d not linked to presence entry %d: %v", vehicleID, entry.ID, err)
		return
	}

	vp := models.VehiclePresence{
		VehicleID:       vehicleID,
		PresenceEntryID: entry.ID,
		EntryTime:       entry.EntryTime,
	}
	if err := s.DB.Create(&vp).Error; err != nil {
		s.Events.Warnf("vehicle presence creation failed for entry %d: %v", entry.ID, err)
		return
	}

	if err := s.DB.Model(entry).Update("vehicle_presence_id", vp.ID).Error; err != nil {
		s.Events.Warnf("vehicle presence back-reference failed for entry %d: %v", entry.ID, err)
		return
	}
	entry.VehiclePresenceID = &vp.ID
	entry.VehiclePresence = &vp
}

// CheckOut closes the open entry of a person. The exit time propagates
// to the linked vehicle presence so both records always agree.
func (s *PresenceService) CheckOut(req CheckOutRequest) (*EnrichedPresenceEntry, error) {
	if !req.PersonType.Valid() {
		return nil, ErrInvalidPersonType
	}

	var entry models.PresenceEntry
	err := s.DB.
		Where("person_id = ? AND person_type = ? AND open_marker IS NOT NULL", req.PersonID, req.PersonType).
		Order("entry_time DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveEntry
		}
		return nil, err
	}

	exitTime := time.Now()
	if req.ExitTime != nil {
		exitTime = *req.ExitTime
	}

	if exitTime.Before(entry.EntryTime) {
		s.Events.Warnf("exit time %s before entry time %s for presence entry %d, clamping duration to 0",
			exitTime.Format(time.RFC3339), entry.EntryTime.Format(time.RFC3339), entry.ID)
	}
	duration := models.ComputeDuration(entry.EntryTime, exitTime)

	notes := entry.Notes
	if req.Notes != "" {
		if notes != "" {
			notes = notes + " | " + req.Notes
		} else {
			notes = req.Notes
		}
	}

	updates := map[string]interface{}{
		"status":      models.PresenceStatusExit,
		"exit_time":   exitTime,
		"duration":    duration,
		"notes":       notes,
		"open_marker": nil,
	}
	if err := s.DB.Model(&entry).Updates(updates).Error; err != nil {
		return nil, err
	}
	entry.Status = models.PresenceStatusExit
	entry.ExitTime = &exitTime
	entry.Duration = duration
	entry.Notes = notes
	entry.OpenMarker = nil

	if entry.VehiclePresenceID != nil {
		if err := s.DB.Model(&models.VehiclePresence{}).
			Where("id = ?", *entry.VehiclePresenceID).
			Update("exit_time", exitTime).Error; err != nil {
			s.Events.Warnf("vehicle presence exit mirror failed for entry %d: %v", entry.ID, err)
		}
	}

	return s.enrich(entry), nil
}

// CreateClosed records a back-dated visit directly in the exit state.
func (s *PresenceService) CreateClosed(req ManualEntryRequest) (*EnrichedPresenceEntry, error) {
	if !req.PersonType.Valid() {
		return nil, ErrInvalidPersonType
	}
	if req.EntryTime.IsZero() || req.ExitTime.IsZero() {
		return nil, Validationf("entry and exit times are required for manual entries")
	}

	owner, err := s.Owners.Resolve(req.PersonID, req.PersonType)
	if err != nil {
		return nil, err
	}

	if req.ExitTime.Before(req.EntryTime) {
		s.Events.Warnf("manual entry for person %d has exit before entry, clamping duration to 0", req.PersonID)
	}
	exitTime := req.ExitTime

	entry := models.PresenceEntry{
		RefCode:    utils.NewRefCode(),
		PersonID:   req.PersonID,
		PersonType: req.PersonType,
		Status:     models.PresenceStatusExit,
		EntryTime:  req.EntryTime,
		ExitTime:   &exitTime,
		Duration:   models.ComputeDuration(req.EntryTime, req.ExitTime),
		LogDate:    models.DateOf(req.EntryTime),
		Notes:      req.Notes,
		RecordedBy: req.RecordedBy,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		return nil, err
	}

	return &EnrichedPresenceEntry{PresenceEntry: entry, Person: owner}, nil
}

// ListActive returns all open entries, most recent entry first.
func (s *PresenceService) ListActive() ([]EnrichedPresenceEntry, error) {
	var entries []models.PresenceEntry
	err := s.DB.Preload("VehiclePresence").
		Where("open_marker IS NOT NULL").
		Order("entry_time DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return s.enrichAll(entries), nil
}

// Query returns a page of entries matching the filter plus the total
// count. Free-text search goes through the owner stores: candidate id
// sets per kind, then an OR of (person_type, person_id IN ...) clauses.
func (s *PresenceService) Query(filter PresenceFilter) ([]EnrichedPresenceEntry, int64, error) {
	if filter.PageNum < 1 {
		filter.PageNum = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 10
	}

	query := s.DB.Model(&models.PresenceEntry{})

	if filter.PersonType != nil {
		if !filter.PersonType.Valid() {
			return nil, 0, ErrInvalidPersonType
		}
		query = query.Where("person_type = ?", *filter.PersonType)
	}
	if filter.Status != nil {
		if !filter.Status.Valid() {
			return nil, 0, Validationf("unknown presence status %q", string(*filter.Status))
		}
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("log_date >= ?", models.DateOf(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		query = query.Where("log_date <= ?", models.DateOf(*filter.DateTo))
	}

	if filter.Search != "" {
		searchTypes := []models.PersonType{models.PersonTypeWorker, models.PersonTypeSupplier, models.PersonTypePersonnel}
		if filter.PersonType != nil {
			searchTypes = []models.PersonType{*filter.PersonType}
		}

		match := s.DB.Where("1 = 0")
		found := false
		for _, pt := range searchTypes {
			ids, err := s.Owners.SearchIDs(pt, filter.Search)
			if err != nil {
				return nil, 0, err
			}
			if len(ids) == 0 {
				continue
			}
			match = match.Or(s.DB.Where("person_type = ? AND person_id IN ?", pt, ids))
			found = true
		}
		if !found {
			return []EnrichedPresenceEntry{}, 0, nil
		}
		query = query.Where(match)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.PresenceEntry
	offset := (filter.PageNum - 1) * filter.PageSize
	err := query.Preload("VehiclePresence").
		Order("entry_time DESC").
		Limit(filter.PageSize).Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return s.enrichAll(entries), total, nil
}

// GetByID returns a single enriched entry.
func (s *PresenceService) GetByID(id uint) (*EnrichedPresenceEntry, error) {
	var entry models.PresenceEntry
	if err := s.DB.Preload("VehiclePresence").First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPresenceNotFound
		}
		return nil, err
	}
	return s.enrich(entry), nil
}

func (s *PresenceService) enrich(entry models.PresenceEntry) *EnrichedPresenceEntry {
	enriched := &EnrichedPresenceEntry{PresenceEntry: entry}
	owner, err := s.Owners.Resolve(entry.PersonID, entry.PersonType)
	if err != nil {
		s.Events.Warnf("owner resolution failed for presence entry %d (%s %d): %v", entry.ID, entry.PersonType, entry.PersonID, err)
		return enriched
	}
	enriched.Person = owner
	return enriched
}

func (s *PresenceService) enrichAll(entries []models.PresenceEntry) []EnrichedPresenceEntry {
	enriched := make([]EnrichedPresenceEntry, 0, len(entries))
	for _, entry := range entries {
		enriched = append(enriched, *s.enrich(entry))
	}
	return enriched
}
