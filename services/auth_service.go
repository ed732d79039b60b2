package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"sitegate-http-service/config"
	"sitegate-http-service/models"
	"sitegate-http-service/utils"
)

// InterfaceAuthService defines the account and approval service interface
type InterfaceAuthService interface {
	Login(email, password string) (*models.Account, string, error)
	Register(account *models.Account) error
	Approve(adminID, accountID uint) (*models.Account, error)
	SetActive(accountID uint, active bool) (*models.Account, error)
	GetAccounts(page, pageSize int) ([]models.Account, int64, error)
	GetAccountByID(id uint) (*models.Account, error)
}

// AuthService owns accounts, the approval state machine and login.
//
// Login gating order is fixed: credentials first, then approval, then
// activation. A non-approved or non-active account never gets a token.
type AuthService struct {
	DB     *gorm.DB
	Config *config.Config
	JWT    InterfaceJWTService
	Cache  InterfaceRedisService
	Events EventLogger
}

// NewAuthService creates a new auth service
func NewAuthService(db *gorm.DB, cfg *config.Config, jwtService InterfaceJWTService, cache InterfaceRedisService, events EventLogger) InterfaceAuthService {
	return &AuthService{
		DB:     db,
		Config: cfg,
		JWT:    jwtService,
		Cache:  cache,
		Events: events,
	}
}

// Login verifies credentials and the approval/activation gates, then
// issues a session token.
func (s *AuthService) Login(email, password string) (*models.Account, string, error) {
	var account models.Account
	if err := s.DB.Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !utils.CheckPasswordHash(password, account.Password) {
		return nil, "", ErrInvalidCredentials
	}
	if !account.IsApproved {
		return nil, "", ErrPendingApproval
	}
	if !account.IsActive {
		return nil, "", ErrDeactivated
	}

	token, err := s.JWT.GenerateToken(account.ID, account.Email, string(account.Role))
	if err != nil {
		return nil, "", err
	}

	if err := s.Cache.CacheSession(account.ID, token, 24*time.Hour); err != nil {
		s.Events.Warnf("session cache failed for account %d: %v", account.ID, err)
	}

	return &account, token, nil
}

// Register creates a new account. Admin accounts are approved and active
// at creation; sos accounts stay pending and inactive until an admin
// approves them.
func (s *AuthService) Register(account *models.Account) error {
	if !account.Role.Valid() {
		return Validationf("unknown account role %q", string(account.Role))
	}

	var count int64
	if err := s.DB.Model(&models.Account{}).Where("email = ?", account.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAccountExists
	}

	if account.Role == models.RoleAdmin {
		account.IsApproved = true
		account.IsActive = true
	} else {
		account.IsApproved = false
		account.IsActive = false
	}

	if err := s.DB.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountExists
		}
		return err
	}
	return nil
}

// Approve moves a pending sos account to approved and activates it.
// Approving twice is rejected, not silently accepted, since it signals a
// caller bug.
func (s *AuthService) Approve(adminID, accountID uint) (*models.Account, error) {
	var account models.Account
	if err := s.DB.First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if account.Role != models.RoleSOS {
		return nil, ErrNotEligible
	}
	if account.IsApproved {
		return nil, ErrAlreadyApproved
	}

	now := time.Now()
	updates := map[string]interface{}{
		"is_approved": true,
		"is_active":   true,
		"approved_by": adminID,
		"approved_at": now,
	}
	if err := s.DB.Model(&account).Updates(updates).Error; err != nil {
		return nil, err
	}

	account.IsApproved = true
	account.IsActive = true
	account.ApprovedBy = &adminID
	account.ApprovedAt = &now
	return &account, nil
}

// SetActive toggles the activation flag. Deactivation drops the cached
// session so the account cannot keep using its token-backed session.
func (s *AuthService) SetActive(accountID uint, active bool) (*models.Account, error) {
	var account models.Account
	if err := s.DB.First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if err := s.DB.Model(&account).Update("is_active", active).Error; err != nil {
		return nil, err
	}
	account.IsActive = active

	if !active {
		if err := s.Cache.InvalidateSession(accountID); err != nil {
			s.Events.Warnf("session invalidation failed for account %d: %v", accountID, err)
		}
	}

	return &account, nil
}

// GetAccounts returns a page of accounts plus the total count.
func (s *AuthService) GetAccounts(page, pageSize int) ([]models.Account, int64, error) {
	var accounts []models.Account
	var total int64

	if err := s.DB.Model(&models.Account{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&accounts).Error; err != nil {
		return nil, 0, err
	}

	return accounts, total, nil
}

// GetAccountByID fetches a single account.
func (s *AuthService) GetAccountByID(id uint) (*models.Account, error) {
	var account models.Account
	if err := s.DB.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}
