package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sitegate-http-service/models"
	"sitegate-http-service/services"
)

func newPresenceService(t *testing.T, db *gorm.DB) (services.InterfacePresenceService, *recordingLogger) {
	t.Helper()
	cfg := testConfig()
	events := &recordingLogger{}
	owners := services.NewOwnerService(db, cfg)
	visits := services.NewVisitCounterService(db, cfg)
	return services.NewPresenceService(db, cfg, owners, visits, events), events
}

func TestPresenceService_CheckIn(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPresenceService(t, db)
	worker := seedWorker(t, db, "Amine", "AB123456")

	entry, err := svc.CheckIn(services.CheckInRequest{
		PersonID:   worker.ID,
		PersonType: models.PersonTypeWorker,
		RecordedBy: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, models.PresenceStatusEntry, entry.Status)
	assert.True(t, entry.IsOpen())
	assert.NotEmpty(t, entry.RefCode)
	require.NotNil(t, entry.Person)
	assert.Equal(t, "Amine", entry.Person.Name)
	assert.Equal(t, "AB123456", entry.Person.Identifier)
}

func TestPresenceService_CheckIn_SecondOpenEntryRejected(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPresenceService(t, db)
	worker := seedWorker(t, db, "Amine", "AB123456")

	_, err := svc.CheckIn(services.CheckInRequest{PersonID: worker.ID, PersonType: models.PersonTypeWorker})
	require.NoError(t, err)

	_, err = svc.CheckIn(services.CheckInRequest{PersonID: worker.ID, PersonType: models.PersonTypeWorker})
	assert.ErrorIs(t, err, services.ErrAlreadyCheckedIn)

	var openCount int64
	require.NoError(t, db.Model(&models.PresenceEntry{}).
		Where("person_id = ? AND person_type = ? AND open_marker IS NOT NULL", worker.ID, models.PersonTypeWorker).
		Count(&openCount).Error)
	assert.EqualValues(t, 1, openCount)
}

func TestPresenceService_CheckIn_ReopenAfterCheckout(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPresenceService(t, db)
	worker := seedWorker(t, db, "Amine", "AB123456")

	_, err := svc.CheckIn(services.CheckInRequest{PersonID: worker.ID, PersonType: models.PersonTypeWorker})
	require.NoError(t, err)

	_, err = svc.CheckOut(services.CheckOutRequest{PersonID: worker.ID, PersonType: models.PersonTypeWorker})
	require.NoError(t, err)

	// A closed entry no longer blocks a new check-in.
	_, err = svc.CheckIn(services.CheckInRequest{PersonID: worker.ID, PersonType: models.PersonTypeWorker})
	require.NoError(t, err)

	var total int64
	require.NoError(t, db.Model(&models.PresenceEntry{}).Count(&total).Error)
	assert.EqualValues(t, 2, total)
}

func TestPresenceService_CheckIn_UnknownPerson(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPresenceService(t, db)

	_, err := svc.CheckIn(services.CheckInRequest{PersonID: 999, PersonType: models.PersonTypeWorker})
	assert.ErrorIs(t, err, services.ErrPersonNotFound)

	_, err = svc.CheckIn(services.CheckInRequest{PersonID: 1, PersonType: models.PersonType("alien")})
	assert.ErrorIs(t, err, services.ErrInvalidPersonType)
}

func TestPresenceService_CheckIn_SupplierIncrementsMonthlyCounter(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPresenceService(t, db)
	supplier := seedSupplier(t, db, "Acme Logistics", "SUP-001")

	entryTime := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	_, err := svc.CheckIn(services.CheckInRequest{
		PersonID:   supplier.ID,
		PersonType: models.PersonTypeSupplier,
		EntryTime:  &entryTime,
	})
	require.NoError(t, err)

	var visit models.MonthlyVisit
	require.NoError(t, db.Where("supplier_id = ? AND month_key = ?", supplier.ID, "2026-03").First(&visit).Error)
	assert.Equal(t, 1, visit.VisitCount)
}

func TestPresenceService_CheckIn_WorkerDoesNotTouchCounter(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPresenceService(t, db)
	worker := seedWorker(t, db, "Amine", "AB123456")

	_, err := svc.CheckIn(services.CheckInRequest{PersonID: worker.ID, PersonType: models.PersonTypeWorker})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.MonthlyVisit{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestPresenceService_CheckIn_VehicleMirror(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPresenceService(t, db)
	worker := seedWorker(t, db, "Amine", "AB123456")

	vehicle := models.Vehicle{LicensePlate: "123-TUN-456", OwnerID: worker.ID, OwnerType: models.PersonTypeWorker}
	require.NoError(t, db.Create(&vehicle).Error)

	entry, err := svc.CheckIn(services.CheckInRequest{
		PersonID:   worker.ID,
		PersonType: models.PersonTypeWorker,
		VehicleID:  &vehicle.ID,
	})
	require.NoError(t, err)

	require.NotNil(t, entry.VehiclePresenceID)
	var vp models.VehiclePresence
	require.NoError(t, db.First(&vp, *entry.VehiclePresenceID).Error)
	assert.Equal(t, vehicle.ID, vp.VehicleID)
	assert.Equal(t, entry.ID, vp.PresenceEntryID)
	assert.True(t, vp.EntryTime.Equal(entry.EntryTime))
	assert.Nil(t, vp.ExitTime)
}

func TestPresenceService_CheckIn_UnknownVehicleIsDegradedNotFatal(t *testing.T) {
	db := newTestDB(t)
	svc, events := newPresenceService(t, db)
	worker := seedWorker(t, db, "Amine", "AB123456")

	missing := uint(999)
	entry, err := svc.CheckIn(services.CheckInRequest{
		PersonID:   worker.ID,
		PersonType: models.PersonTypeWorker,
		VehicleID:  &missing,
	})
	require.NoError(t, err)
	assert.Nil(t, entry.VehiclePresenceID)
	assert.Equal(t, 1, events.warningCount())
}

func TestPresenceService_CheckOut(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPresenceService(t, db)
	worker := seedWorker(t, db, "Amine", "AB123456")

	entryTime := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	_, err := svc.CheckIn(services.CheckInRequest{
		PersonID:   worker.ID,
		PersonType: models.PersonTypeWorker,
		EntryTime:  &entryTime,
	})
	require.NoError(t, err)

	exitTime := entryTime.Add(150 * time.Minute)
	closed, err := svc.CheckOut(services.CheckOutRequest{
		PersonID:   worker.ID,
		PersonType: models.PersonTypeWorker,
		ExitTime:   &exitTime,
	})
	require.NoError(t, err)

	assert.Equal(t, models.PresenceStatusExit, closed.Status)
	assert.False(t, closed.IsOpen())
	require.NotNil(t, closed.ExitTime)
	assert.True(t, closed.ExitTime.Equal(exitTime))
	assert.Equal(t, 150, closed.Duration)
}

func TestPresenceService_CheckOut_NoOpenEntry(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPresenceService(t, db)
	worker := seedWorker(t, db, "Amine", "AB123456")

	_, err := svc.CheckOut(services.CheckOutRequest{PersonID: worker.ID, PersonType: models.PersonTypeWorker})
	assert.ErrorIs(t, err, services.ErrNoActiveEntry)
}

func TestPresenceService_CheckOut_ExitBeforeEntryClampsDuration(t *testing.T) {
	db := newTestDB(t)
	svc, events := newPresenceService(t, db)
	worker := seedWorker(t, db, "Amine", "AB123456")

	entryTime := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	_, err := svc.CheckIn(services.CheckInRequest{
		PersonID:   worker.ID,
		PersonType: models.PersonTypeWorker,
		EntryTime:  &entryTime,
	})
	require.NoError(t, err)

	exitTime := entryTime.Add(-time.Hour)
	closed, err := svc.CheckOut(services.CheckOutRequest{
		PersonID:   worker.ID,
		PersonType: models.PersonTypeWorker,
		ExitTime:   &exitTime,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, closed.Duration)
	assert.Equal(t, 1, events.warningCount())
}

func TestPresenceService_CheckOut_AppendsNotes(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPresenceService(t, db)
	worker := seedWorker(t, db, "Amine", "AB123456")

	_, err := svc.CheckIn(services.CheckInRequest{
		PersonID:   worker.ID,
		PersonType: models.PersonTypeWorker,
		Notes:      "gate 2",
	})
	require.NoError(t, err)

	closed, err := svc.CheckOut(services.CheckOutRequest{
		PersonID:   worker.ID,
		PersonType: models.PersonTypeWorker,
		Notes:      "left early",
	})
	require.NoError(t, err)
	assert.Equal(t, "gate 2 | left early", closed.Notes)
}

func TestPresenceService_CheckOut_MirrorsExitToVehiclePresence(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPresenceService(t, db)
	worker := seedWorker(t, db, "Amine", "AB123456")

	vehicle := models.Vehicle{LicensePlate: "123-TUN-456", OwnerID: worker.ID, OwnerType: models.PersonTypeWorker}
	require.NoError(t, db.Create(&vehicle).Error)

	_, err := svc.CheckIn(services.CheckInRequest{
		PersonID:   worker.ID,
		PersonType: models.PersonTypeWorker,
		VehicleID:  &vehicle.ID,
	})
	require.NoError(t, err)

	closed, err := svc.CheckOut(services.CheckOutRequest{PersonID: worker.ID, PersonType: models.PersonTypeWorker})
	require.NoError(t, err)

	var vp models.VehiclePresence
	require.NoError(t, db.Where("presence_entry_id = ?", closed.ID).First(&vp).Error)
	require.NotNil(t, vp.ExitTime)
	assert.True(t, vp.ExitTime.Equal(*closed.ExitTime))
}

func TestPresenceService_CreateClosed(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPresenceService(t, db)
	worker := seedWorker(t, db, "Amine", "AB123456")

	entryTime := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	exitTime := entryTime.Add(8 * time.Hour)
	entry, err := svc.CreateClosed(services.ManualEntryRequest{
		PersonID:   worker.ID,
		PersonType: models.PersonTypeWorker,
		EntryTime:  entryTime,
		ExitTime:   exitTime,
		Notes:      "paper log",
	})
	require.NoError(t, err)

	assert.Equal(t, models.PresenceStatusExit, entry.Status)
	assert.False(t, entry.IsOpen())
	assert.Equal(t, 480, entry.Duration)

	// A back-dated closed entry never blocks a live check-in.
	_, err = svc.CheckIn(services.CheckInRequest{PersonID: worker.ID, PersonType: models.PersonTypeWorker})
	require.NoError(t, err)
}

func TestPresenceService_CreateClosed_RequiresBothTimes(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPresenceService(t, db)
	worker := seedWorker(t, db, "Amine", "AB123456")

	_, err := svc.CreateClosed(services.ManualEntryRequest{
		PersonID:   worker.ID,
		PersonType: models.PersonTypeWorker,
		EntryTime:  time.Now(),
	})
	require.Error(t, err)
	assert.Equal(t, services.KindValidation, services.KindOf(err))
}

func TestPresenceService_ListActive(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPresenceService(t, db)
	w1 := seedWorker(t, db, "Amine", "AB123456")
	w2 := seedWorker(t, db, "Sana", "CD654321")

	t1 := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	_, err := svc.CheckIn(services.CheckInRequest{PersonID: w1.ID, PersonType: models.PersonTypeWorker, EntryTime: &t1})
	require.NoError(t, err)
	_, err = svc.CheckIn(services.CheckInRequest{PersonID: w2.ID, PersonType: models.PersonTypeWorker, EntryTime: &t2})
	require.NoError(t, err)

	_, err = svc.CheckOut(services.CheckOutRequest{PersonID: w1.ID, PersonType: models.PersonTypeWorker})
	require.NoError(t, err)

	active, err := svc.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, w2.ID, active[0].PersonID)
	require.NotNil(t, active[0].Person)
	assert.Equal(t, "Sana", active[0].Person.Name)
}

func TestPresenceService_Query_Filters(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPresenceService(t, db)
	worker := seedWorker(t, db, "Amine", "AB123456")
	supplier := seedSupplier(t, db, "Acme Logistics", "SUP-001")

	t1 := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	_, err := svc.CheckIn(services.CheckInRequest{PersonID: worker.ID, PersonType: models.PersonTypeWorker, EntryTime: &t1})
	require.NoError(t, err)
	_, err = svc.CheckIn(services.CheckInRequest{PersonID: supplier.ID, PersonType: models.PersonTypeSupplier, EntryTime: &t1})
	require.NoError(t, err)
	_, err = svc.CheckOut(services.CheckOutRequest{PersonID: worker.ID, PersonType: models.PersonTypeWorker})
	require.NoError(t, err)

	workerType := models.PersonTypeWorker
	entries, total, err := svc.Query(services.PresenceFilter{PersonType: &workerType})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, entries, 1)
	assert.Equal(t, worker.ID, entries[0].PersonID)

	exitStatus := models.PresenceStatusExit
	entries, total, err = svc.Query(services.PresenceFilter{Status: &exitStatus})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, models.PresenceStatusExit, entries[0].Status)
}

func TestPresenceService_Query_DateRange(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPresenceService(t, db)
	worker := seedWorker(t, db, "Amine", "AB123456")

	day1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	_, err := svc.CreateClosed(services.ManualEntryRequest{
		PersonID: worker.ID, PersonType: models.PersonTypeWorker,
		EntryTime: day1, ExitTime: day1.Add(time.Hour),
	})
	require.NoError(t, err)
	_, err = svc.CreateClosed(services.ManualEntryRequest{
		PersonID: worker.ID, PersonType: models.PersonTypeWorker,
		EntryTime: day2, ExitTime: day2.Add(time.Hour),
	})
	require.NoError(t, err)

	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	entries, total, err := svc.Query(services.PresenceFilter{DateFrom: &from})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].EntryTime.Equal(day2))
}

func TestPresenceService_Query_FreeTextSearch(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPresenceService(t, db)
	worker := seedWorker(t, db, "Amine Trabelsi", "AB123456")
	supplier := seedSupplier(t, db, "Acme Logistics", "SUP-001")

	_, err := svc.CheckIn(services.CheckInRequest{PersonID: worker.ID, PersonType: models.PersonTypeWorker})
	require.NoError(t, err)
	_, err = svc.CheckIn(services.CheckInRequest{PersonID: supplier.ID, PersonType: models.PersonTypeSupplier})
	require.NoError(t, err)

	entries, total, err := svc.Query(services.PresenceFilter{Search: "Trabelsi"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, entries, 1)
	assert.Equal(t, worker.ID, entries[0].PersonID)

	// Identifier matches work the same way as name matches.
	entries, total, err = svc.Query(services.PresenceFilter{Search: "SUP-001"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, supplier.ID, entries[0].PersonID)

	entries, total, err = svc.Query(services.PresenceFilter{Search: "nobody-matches-this"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	assert.Empty(t, entries)
}

func TestPresenceService_Query_Pagination(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPresenceService(t, db)
	worker := seedWorker(t, db, "Amine", "AB123456")

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		entryTime := base.Add(time.Duration(i) * 24 * time.Hour)
		_, err := svc.CreateClosed(services.ManualEntryRequest{
			PersonID: worker.ID, PersonType: models.PersonTypeWorker,
			EntryTime: entryTime, ExitTime: entryTime.Add(time.Hour),
		})
		require.NoError(t, err)
	}

	entries, total, err := svc.Query(services.PresenceFilter{PageNum: 2, PageSize: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, entries, 2)
	// Ordered newest first; page 2 holds the third and fourth newest.
	assert.True(t, entries[0].EntryTime.After(entries[1].EntryTime))
}

func TestPresenceService_GetByID(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPresenceService(t, db)
	worker := seedWorker(t, db, "Amine", "AB123456")

	created, err := svc.CheckIn(services.CheckInRequest{PersonID: worker.ID, PersonType: models.PersonTypeWorker})
	require.NoError(t, err)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.RefCode, got.RefCode)

	_, err = svc.GetByID(999)
	assert.ErrorIs(t, err, services.ErrPresenceNotFound)
}
