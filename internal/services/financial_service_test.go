package services

import (
	"testing"

	"github.com/condomanager/condomanager-api/internal/dto"
	"github.com/condomanager/condomanager-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinancialCreateValidation(t *testing.T) {
	db := newTestDB(t)
	condo := seedCondominium(t, db, "Condo A")
	other := seedCondominium(t, db, "Condo B")
	manager := seedUser(t, db, models.RoleManager, &condo.ID)
	svc := NewFinancialService(db)

	_, err := svc.Create(manager, &dto.CreateFinancialRecordRequest{
		Description: "Condo fee", Amount: 1200, Type: "donation", Date: "2026-08-01", CondominiumID: condo.ID,
	})
	require.ErrorIs(t, err, ErrInvalidRecordType)

	_, err = svc.Create(manager, &dto.CreateFinancialRecordRequest{
		Description: "Condo fee", Amount: 1200, Type: "income", Date: "01-08-2026", CondominiumID: condo.ID,
	})
	require.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.Create(manager, &dto.CreateFinancialRecordRequest{
		Description: "Condo fee", Amount: 1200, Type: "income", Date: "2026-08-01", CondominiumID: other.ID,
	})
	require.ErrorIs(t, err, ErrForbidden)

	record, err := svc.Create(manager, &dto.CreateFinancialRecordRequest{
		Description: "Condo fee", Amount: 1200, Type: "income", Date: "2026-08-01", CondominiumID: condo.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.FinancialIncome, record.Type)
}

func TestFinancialDashboardAggregates(t *testing.T) {
	db := newTestDB(t)
	condo := seedCondominium(t, db, "Condo A")
	admin := seedUser(t, db, models.RoleAdmin, nil)
	svc := NewFinancialService(db)

	mk := func(amount float64, recordType, date string) {
		_, err := svc.Create(admin, &dto.CreateFinancialRecordRequest{
			Description: "entry", Amount: amount, Type: recordType, Date: date, CondominiumID: condo.ID,
		})
		require.NoError(t, err)
	}
	mk(1500, "income", "2026-08-01")
	mk(500, "income", "2026-08-10")
	mk(700, "expense", "2026-08-15")

	dashboard, err := svc.Dashboard()
	require.NoError(t, err)
	assert.InDelta(t, 2000, dashboard.TotalIncome, 0.001)
	assert.InDelta(t, 700, dashboard.TotalExpense, 0.001)
	assert.InDelta(t, 1300, dashboard.Profitability, 0.001)
}

func TestFinancialDashboardEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewFinancialService(db)

	dashboard, err := svc.Dashboard()
	require.NoError(t, err)
	assert.Zero(t, dashboard.TotalIncome)
	assert.Zero(t, dashboard.TotalExpense)
	assert.Zero(t, dashboard.Profitability)
}
