package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sitegate-http-service/models"
	"sitegate-http-service/services"
)

func newAuthService(t *testing.T, db *gorm.DB) services.InterfaceAuthService {
	t.Helper()
	cfg := testConfig()
	jwtService := services.NewJWTService(cfg)
	cache := &services.RedisService{}
	return services.NewAuthService(db, cfg, jwtService, cache, &recordingLogger{})
}

func seedAccount(t *testing.T, db *gorm.DB, email string, role models.AccountRole, approved, active bool) models.Account {
	t.Helper()
	account := models.Account{
		Name:       "Test User",
		Email:      email,
		Password:   "password123",
		Role:       role,
		IsApproved: approved,
		IsActive:   active,
	}
	require.NoError(t, db.Create(&account).Error)
	return account
}

func TestAuthService_Login(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	seedAccount(t, db, "guard@sitegate.local", models.RoleSOS, true, true)

	account, token, err := svc.Login("guard@sitegate.local", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "guard@sitegate.local", account.Email)
}

func TestAuthService_Login_WrongCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	seedAccount(t, db, "guard@sitegate.local", models.RoleSOS, true, true)

	_, _, err := svc.Login("guard@sitegate.local", "wrong-password")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@sitegate.local", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_Login_GateOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	pending := seedAccount(t, db, "pending@sitegate.local", models.RoleSOS, false, false)
	_, _, err := svc.Login(pending.Email, "password123")
	assert.ErrorIs(t, err, services.ErrPendingApproval)

	// Wrong password on a pending account must not leak the approval
	// state.
	_, _, err = svc.Login(pending.Email, "wrong-password")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	deactivated := seedAccount(t, db, "off@sitegate.local", models.RoleSOS, true, false)
	_, _, err = svc.Login(deactivated.Email, "password123")
	assert.ErrorIs(t, err, services.ErrDeactivated)
}

func TestAuthService_Register_Defaults(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	sos := models.Account{Name: "Guard", Email: "guard@sitegate.local", Password: "password123", Role: models.RoleSOS}
	require.NoError(t, svc.Register(&sos))
	assert.False(t, sos.IsApproved)
	assert.False(t, sos.IsActive)

	admin := models.Account{Name: "Boss", Email: "boss@sitegate.local", Password: "password123", Role: models.RoleAdmin}
	require.NoError(t, svc.Register(&admin))
	assert.True(t, admin.IsApproved)
	assert.True(t, admin.IsActive)

	// Passwords are hashed by the creation hook.
	assert.NotEqual(t, "password123", sos.Password)
}

func TestAuthService_Register_Rejections(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	seedAccount(t, db, "guard@sitegate.local", models.RoleSOS, false, false)

	dup := models.Account{Name: "Guard", Email: "guard@sitegate.local", Password: "password123", Role: models.RoleSOS}
	assert.ErrorIs(t, svc.Register(&dup), services.ErrAccountExists)

	bad := models.Account{Name: "X", Email: "x@sitegate.local", Password: "password123", Role: models.AccountRole("superuser")}
	err := svc.Register(&bad)
	require.Error(t, err)
	assert.Equal(t, services.KindValidation, services.KindOf(err))
}

func TestAuthService_Approve(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	admin := seedAccount(t, db, "boss@sitegate.local", models.RoleAdmin, true, true)
	guard := seedAccount(t, db, "guard@sitegate.local", models.RoleSOS, false, false)

	approved, err := svc.Approve(admin.ID, guard.ID)
	require.NoError(t, err)

	// Approval also activates, there is no separate activation step for a
	// fresh account.
	assert.True(t, approved.IsApproved)
	assert.True(t, approved.IsActive)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, admin.ID, *approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovedAt)

	_, token, err := svc.Login(guard.Email, "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthService_Approve_Rejections(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	admin := seedAccount(t, db, "boss@sitegate.local", models.RoleAdmin, true, true)
	other := seedAccount(t, db, "other@sitegate.local", models.RoleAdmin, true, true)
	guard := seedAccount(t, db, "guard@sitegate.local", models.RoleSOS, false, false)

	_, err := svc.Approve(admin.ID, 999)
	assert.ErrorIs(t, err, services.ErrAccountNotFound)

	// Admin accounts never go through the approval workflow.
	_, err = svc.Approve(admin.ID, other.ID)
	assert.ErrorIs(t, err, services.ErrNotEligible)

	_, err = svc.Approve(admin.ID, guard.ID)
	require.NoError(t, err)
	_, err = svc.Approve(admin.ID, guard.ID)
	assert.ErrorIs(t, err, services.ErrAlreadyApproved)
}

func TestAuthService_SetActive(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	guard := seedAccount(t, db, "guard@sitegate.local", models.RoleSOS, true, true)

	account, err := svc.SetActive(guard.ID, false)
	require.NoError(t, err)
	assert.False(t, account.IsActive)

	_, _, err = svc.Login(guard.Email, "password123")
	assert.ErrorIs(t, err, services.ErrDeactivated)

	account, err = svc.SetActive(guard.ID, true)
	require.NoError(t, err)
	assert.True(t, account.IsActive)

	_, _, err = svc.Login(guard.Email, "password123")
	require.NoError(t, err)

	_, err = svc.SetActive(999, false)
	assert.ErrorIs(t, err, services.ErrAccountNotFound)
}

func TestAuthService_GetAccounts(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	seedAccount(t, db, "a@sitegate.local", models.RoleAdmin, true, true)
	seedAccount(t, db, "b@sitegate.local", models.RoleSOS, false, false)
	seedAccount(t, db, "c@sitegate.local", models.RoleSOS, true, true)

	accounts, total, err := svc.GetAccounts(1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, accounts, 2)
}
