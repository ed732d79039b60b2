package services_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sitegate-http-service/config"
	"sitegate-http-service/models"
	"sitegate-http-service/services"
)

// newTestDB opens a private in-memory database and migrates all models.
// Each test gets its own named database so tests stay independent.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Account{},
		&models.Worker{},
		&models.Supplier{},
		&models.LeoniPersonnel{},
		&models.Vehicle{},
		&models.PresenceEntry{},
		&models.VehiclePresence{},
		&models.MonthlyVisit{},
		&models.SchedulePresence{},
		&models.Incident{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey: "test-secret-key",
	}
}

// recordingLogger captures warnings so tests can assert on degraded paths.
type recordingLogger struct {
	mu       sync.Mutex
	Warnings []string
}

func (l *recordingLogger) Infof(format string, args ...interface{}) {}

func (l *recordingLogger) Warnf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Warnings = append(l.Warnings, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(format string, args ...interface{}) {}

func (l *recordingLogger) warningCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.Warnings)
}

var _ services.EventLogger = (*recordingLogger)(nil)

// seedWorker inserts a worker and returns it.
func seedWorker(t *testing.T, db *gorm.DB, name, cin string) models.Worker {
	t.Helper()
	w := models.Worker{Name: name, CIN: cin, Email: name + "@example.com"}
	require.NoError(t, db.Create(&w).Error)
	return w
}

// seedSupplier inserts a supplier and returns it.
func seedSupplier(t *testing.T, db *gorm.DB, compAffil, idSup string) models.Supplier {
	t.Helper()
	s := models.Supplier{CompAffil: compAffil, IDSup: idSup, NumVst: "V-100"}
	require.NoError(t, db.Create(&s).Error)
	return s
}

// seedPersonnel inserts an internal staff member and returns it.
func seedPersonnel(t *testing.T, db *gorm.DB, name, matricule string) models.LeoniPersonnel {
	t.Helper()
	p := models.LeoniPersonnel{Name: name, Matricule: matricule, Email: name + "@example.com"}
	require.NoError(t, db.Create(&p).Error)
	return p
}
