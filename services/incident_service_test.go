package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sitegate-http-service/models"
	"sitegate-http-service/services"
)

func reportIncident(t *testing.T, svc services.InterfaceIncidentService, title string) *models.Incident {
	t.Helper()
	incident := &models.Incident{Title: title, ReporterID: 1, Severity: "low"}
	require.NoError(t, svc.Report(incident))
	return incident
}

func newIncidentService(t *testing.T, db *gorm.DB) services.InterfaceIncidentService {
	t.Helper()
	return services.NewIncidentService(db, testConfig())
}

func TestIncidentService_Report(t *testing.T) {
	db := newTestDB(t)
	svc := newIncidentService(t, db)

	incident := &models.Incident{
		Title:      "Broken gate barrier",
		ReporterID: 7,
		// Client-supplied workflow fields are ignored on creation.
		Status: models.IncidentStatusResolved,
	}
	require.NoError(t, svc.Report(incident))
	assert.Equal(t, models.IncidentStatusPending, incident.Status)
	assert.Nil(t, incident.ApprovedAt)
	assert.Nil(t, incident.ResolvedAt)

	err := svc.Report(&models.Incident{ReporterID: 7})
	require.Error(t, err)
	assert.Equal(t, services.KindValidation, services.KindOf(err))
}

func TestIncidentService_UpdateStatus_Transitions(t *testing.T) {
	db := newTestDB(t)
	svc := newIncidentService(t, db)
	adminID := uint(3)

	incident := reportIncident(t, svc, "Broken gate barrier")

	updated, err := svc.UpdateStatus(adminID, incident.ID, models.IncidentStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusApproved, updated.Status)
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, adminID, *updated.ApprovedBy)
	require.NotNil(t, updated.ApprovedAt)
	approvedAt := *updated.ApprovedAt

	updated, err = svc.UpdateStatus(adminID, incident.ID, models.IncidentStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusResolved, updated.Status)
	assert.NotNil(t, updated.ResolvedAt)

	// Resolution does not rewrite the approval timestamp.
	require.NotNil(t, updated.ApprovedAt)
	assert.True(t, updated.ApprovedAt.Equal(approvedAt))
}

func TestIncidentService_UpdateStatus_PendingStraightToResolved(t *testing.T) {
	db := newTestDB(t)
	svc := newIncidentService(t, db)

	incident := reportIncident(t, svc, "Spilled oil near dock")

	updated, err := svc.UpdateStatus(3, incident.ID, models.IncidentStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusResolved, updated.Status)
	assert.NotNil(t, updated.ResolvedAt)
	assert.Nil(t, updated.ApprovedBy)
}

func TestIncidentService_UpdateStatus_IllegalTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := newIncidentService(t, db)

	incident := reportIncident(t, svc, "Broken gate barrier")

	// Back to pending is never allowed, nor are unknown statuses.
	_, err := svc.UpdateStatus(3, incident.ID, models.IncidentStatusPending)
	assert.ErrorIs(t, err, services.ErrInvalidStatus)
	_, err = svc.UpdateStatus(3, incident.ID, models.IncidentStatus("escalated"))
	assert.ErrorIs(t, err, services.ErrInvalidStatus)

	_, err = svc.UpdateStatus(3, incident.ID, models.IncidentStatusRejected)
	require.NoError(t, err)

	// Rejected can only move to resolved.
	_, err = svc.UpdateStatus(3, incident.ID, models.IncidentStatusApproved)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	_, err = svc.UpdateStatus(3, incident.ID, models.IncidentStatusResolved)
	require.NoError(t, err)

	// Resolved is terminal.
	_, err = svc.UpdateStatus(3, incident.ID, models.IncidentStatusResolved)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestIncidentService_UpdateStatus_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newIncidentService(t, db)

	_, err := svc.UpdateStatus(3, 999, models.IncidentStatusApproved)
	assert.ErrorIs(t, err, services.ErrIncidentNotFound)
}

func TestIncidentService_GetIncidents(t *testing.T) {
	db := newTestDB(t)
	svc := newIncidentService(t, db)

	reportIncident(t, svc, "First")
	second := reportIncident(t, svc, "Second")
	_, err := svc.UpdateStatus(3, second.ID, models.IncidentStatusApproved)
	require.NoError(t, err)

	all, total, err := svc.GetIncidents(1, 10, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, all, 2)

	pending := models.IncidentStatusPending
	filtered, total, err := svc.GetIncidents(1, 10, &pending)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, filtered, 1)
	assert.Equal(t, "First", filtered[0].Title)

	bogus := models.IncidentStatus("escalated")
	_, _, err = svc.GetIncidents(1, 10, &bogus)
	assert.ErrorIs(t, err, services.ErrInvalidStatus)
}
