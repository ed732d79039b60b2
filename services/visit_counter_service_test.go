package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegate-http-service/models"
	"sitegate-http-service/services"
)

func TestVisitCounterService_Increment(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewVisitCounterService(db, testConfig())
	supplier := seedSupplier(t, db, "Acme Logistics", "SUP-001")

	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	// The first visit of a month creates the row lazily.
	visit, err := svc.Increment(supplier.ID, day)
	require.NoError(t, err)
	assert.Equal(t, "2026-03", visit.MonthKey)
	assert.Equal(t, 1, visit.VisitCount)

	visit, err = svc.Increment(supplier.ID, day.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, visit.VisitCount)

	visit, err = svc.Increment(supplier.ID, day.Add(48*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 3, visit.VisitCount)

	// A single aggregate row per supplier and month.
	var rows int64
	require.NoError(t, db.Model(&models.MonthlyVisit{}).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestVisitCounterService_Increment_SeparateMonths(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewVisitCounterService(db, testConfig())
	supplier := seedSupplier(t, db, "Acme Logistics", "SUP-001")

	march := time.Date(2026, 3, 31, 23, 0, 0, 0, time.UTC)
	april := time.Date(2026, 4, 1, 1, 0, 0, 0, time.UTC)

	_, err := svc.Increment(supplier.ID, march)
	require.NoError(t, err)
	_, err = svc.Increment(supplier.ID, april)
	require.NoError(t, err)

	marchCount, err := svc.GetCount(supplier.ID, "2026-03")
	require.NoError(t, err)
	assert.Equal(t, 1, marchCount)

	aprilCount, err := svc.GetCount(supplier.ID, "2026-04")
	require.NoError(t, err)
	assert.Equal(t, 1, aprilCount)
}

func TestVisitCounterService_GetCount_MissingMonthIsZero(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewVisitCounterService(db, testConfig())
	supplier := seedSupplier(t, db, "Acme Logistics", "SUP-001")

	count, err := svc.GetCount(supplier.ID, "2026-01")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestVisitCounterService_History(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewVisitCounterService(db, testConfig())
	supplier := seedSupplier(t, db, "Acme Logistics", "SUP-001")

	for month := 1; month <= 4; month++ {
		day := time.Date(2026, time.Month(month), 5, 9, 0, 0, 0, time.UTC)
		_, err := svc.Increment(supplier.ID, day)
		require.NoError(t, err)
	}

	history, err := svc.History(supplier.ID, 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "2026-04", history[0].MonthKey)
	assert.Equal(t, "2026-03", history[1].MonthKey)
	assert.Equal(t, "2026-02", history[2].MonthKey)

	// Zero limit falls back to the default of twelve months.
	history, err = svc.History(supplier.ID, 0)
	require.NoError(t, err)
	assert.Len(t, history, 4)
}

func TestVisitCounterService_LastVisitTracksNewestVisit(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewVisitCounterService(db, testConfig())
	supplier := seedSupplier(t, db, "Acme Logistics", "SUP-001")

	first := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	second := first.Add(5 * 24 * time.Hour)

	_, err := svc.Increment(supplier.ID, first)
	require.NoError(t, err)
	visit, err := svc.Increment(supplier.ID, second)
	require.NoError(t, err)

	assert.True(t, visit.LastVisitAt.Equal(second))
}
