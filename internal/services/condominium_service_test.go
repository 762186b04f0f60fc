package services

import (
	"testing"

	"github.com/condomanager/condomanager-api/internal/dto"
	"github.com/condomanager/condomanager-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCondominiumCreateEnforcesUniqueTaxID(t *testing.T) {
	db := newTestDB(t)
	svc := NewCondominiumService(db)

	condo, err := svc.Create(&dto.CreateCondominiumRequest{Name: "Residencial Aurora", TaxID: "12.345.678/0001-00"})
	require.NoError(t, err)
	assert.Equal(t, "0xFF000000", condo.PrimaryColor)
	assert.Equal(t, "0xFFFFFFFF", condo.SecondaryColor)

	_, err = svc.Create(&dto.CreateCondominiumRequest{Name: "Other", TaxID: "12.345.678/0001-00"})
	require.ErrorIs(t, err, ErrTaxIDTaken)
}

func TestCondominiumGetOwnership(t *testing.T) {
	db := newTestDB(t)
	condoA := seedCondominium(t, db, "Condo A")
	condoB := seedCondominium(t, db, "Condo B")
	manager := seedUser(t, db, models.RoleManager, &condoA.ID)
	admin := seedUser(t, db, models.RoleAdmin, nil)
	svc := NewCondominiumService(db)

	_, err := svc.Get(manager, condoB.ID)
	require.ErrorIs(t, err, ErrForbidden)

	got, err := svc.Get(manager, condoA.ID)
	require.NoError(t, err)
	assert.Equal(t, condoA.ID, got.ID)

	_, err = svc.Get(admin, condoB.ID)
	require.NoError(t, err)

	_, err = svc.Get(admin, uuid.New())
	require.ErrorIs(t, err, ErrCondominiumNotFound)
}

func TestCondominiumListScoping(t *testing.T) {
	db := newTestDB(t)
	condoA := seedCondominium(t, db, "Condo A")
	seedCondominium(t, db, "Condo B")
	manager := seedUser(t, db, models.RoleManager, &condoA.ID)
	admin := seedUser(t, db, models.RoleAdmin, nil)
	unassigned := seedUser(t, db, models.RolePending, nil)
	svc := NewCondominiumService(db)

	all, err := svc.List(admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.List(manager)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, condoA.ID, own[0].ID)

	none, err := svc.List(unassigned)
	require.NoError(t, err)
	assert.Empty(t, none)
}
