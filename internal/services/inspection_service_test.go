package services

import (
	"testing"

	"github.com/condomanager/condomanager-api/internal/dto"
	"github.com/condomanager/condomanager-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectionCreateGeneratesWorkOrderForBadItem(t *testing.T) {
	db := newTestDB(t)
	condo := seedCondominium(t, db, "Residencial Aurora")
	inspector := seedUser(t, db, models.RoleInspector, &condo.ID)
	svc := NewInspectionService(db)

	items := []dto.InspectionItemPayload{
		{Name: "Pool", Status: "Bom"},
		{Name: "Garage gate", Status: "REGULAR", Observation: "squeaks"},
		{Name: "Elevator", Status: "Ruim", Observation: "door stuck"},
	}

	inspection, err := svc.Create(inspector, condo.ID, false, "monthly walkthrough", items)
	require.NoError(t, err)
	assert.Equal(t, models.InspectionPending, inspection.Status)

	var saved []models.InspectionItem
	require.NoError(t, db.Where("inspection_id = ?", inspection.ID).Order("name ASC").Find(&saved).Error)
	require.Len(t, saved, 3)
	for _, item := range saved {
		assert.Equal(t, condo.ID, item.CondominiumID)
	}
	// Statuses are normalized to lowercase.
	assert.Equal(t, models.ItemStatusBad, saved[0].Status)   // Elevator
	assert.Equal(t, models.ItemStatusRegular, saved[1].Status)
	assert.Equal(t, models.ItemStatusGood, saved[2].Status)

	var orders []models.WorkOrder
	require.NoError(t, db.Find(&orders).Error)
	require.Len(t, orders, 1)
	assert.Equal(t, "Immediate action: Elevator", orders[0].Title)
	assert.Equal(t, models.WorkOrderPending, orders[0].Status)
	require.NotNil(t, orders[0].ItemID)
	assert.Equal(t, saved[0].ID, *orders[0].ItemID)
}

func TestInspectionCreateRollsBackOnUnknownCondominium(t *testing.T) {
	db := newTestDB(t)
	condo := seedCondominium(t, db, "Residencial Aurora")
	inspector := seedUser(t, db, models.RoleInspector, &condo.ID)
	svc := NewInspectionService(db)

	_, err := svc.Create(inspector, uuid.New(), false, "", []dto.InspectionItemPayload{
		{Name: "Roof", Status: "ruim"},
	})
	require.ErrorIs(t, err, ErrIntegrityViolation)

	var inspections int64
	require.NoError(t, db.Model(&models.Inspection{}).Count(&inspections).Error)
	assert.Zero(t, inspections)
	var orders int64
	require.NoError(t, db.Model(&models.WorkOrder{}).Count(&orders).Error)
	assert.Zero(t, orders)
}

func TestInspectionListVisibility(t *testing.T) {
	db := newTestDB(t)
	condoA := seedCondominium(t, db, "Condo A")
	condoB := seedCondominium(t, db, "Condo B")
	inspectorA := seedUser(t, db, models.RoleInspector, &condoA.ID)
	inspectorB := seedUser(t, db, models.RoleInspector, &condoB.ID)
	managerA := seedUser(t, db, models.RoleManager, &condoA.ID)
	admin := seedUser(t, db, models.RoleAdmin, nil)
	svc := NewInspectionService(db)

	_, err := svc.Create(inspectorA, condoA.ID, false, "", nil)
	require.NoError(t, err)
	_, err = svc.Create(inspectorB, condoB.ID, false, "", nil)
	require.NoError(t, err)

	all, err := svc.List(admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.List(inspectorA)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, inspectorA.ID, own[0].SurveyorID)

	condoScoped, err := svc.List(managerA)
	require.NoError(t, err)
	require.Len(t, condoScoped, 1)
	assert.Equal(t, condoA.ID, condoScoped[0].CondominiumID)
}
