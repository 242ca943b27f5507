package Repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sanle/Models"
)

func TestDashboardFromLocalDatabase(t *testing.T) {
	c := newTestCoordinator(t, newFakeStore(false))
	ctx := context.Background()
	companyID, driverID, vehicleID := seedFleet(t, c)

	for _, e := range []ExpenseInput{
		{Description: "Frete SP-Campinas", Amount: 2000, Date: "2026-08-01", Type: "income"},
		{Description: "Frete retorno", Amount: 1500, Date: "2026-08-10", Type: "income"},
		{Description: "Diesel", Amount: 800, Date: "2026-08-05", Type: "expense"},
	} {
		_, err := c.CreateExpense(ctx, e)
		require.NoError(t, err)
	}

	open, err := c.CreateService(ctx, ServiceInput{CompanyID: companyID, DriverID: driverID, VehicleID: vehicleID})
	require.NoError(t, err)
	_, err = c.AcceptByToken(ctx, open.Token)
	require.NoError(t, err)

	done, err := c.CreateService(ctx, ServiceInput{CompanyID: companyID, DriverID: driverID, VehicleID: vehicleID})
	require.NoError(t, err)
	_, err = c.CompleteByToken(ctx, done.Token, completion())
	require.NoError(t, err)

	stats, err := c.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Trips)
	assert.Equal(t, 1, stats.Drivers)
	assert.Equal(t, 1, stats.Companies)
	assert.Equal(t, 1, stats.ActiveServices)
	assert.Equal(t, 3500.0, stats.Revenue)
	assert.Equal(t, 800.0, stats.Expenses)
}

func TestDashboardFromDocumentStore(t *testing.T) {
	store := newFakeStore(true)
	store.seed("trips", "t1", map[string]interface{}{})
	store.seed("drivers", "d1", map[string]interface{}{"name": "Carlos"})
	store.seed("drivers", "d2", map[string]interface{}{"name": "Ana"})
	store.seed("companies", "c1", map[string]interface{}{"name": "Sanle"})
	store.seed("services", "s1", map[string]interface{}{"status": Models.ServicePending})
	store.seed("services", "s2", map[string]interface{}{"status": Models.ServiceAccepted})
	store.seed("services", "s3", map[string]interface{}{"status": Models.ServiceCompleted})
	store.seed("expenses", "e1", map[string]interface{}{"type": "income", "amount": 1200.0})
	store.seed("expenses", "e2", map[string]interface{}{"type": "expense", "amount": 450.0})

	c := newTestCoordinator(t, store)

	stats, err := c.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Trips)
	assert.Equal(t, 2, stats.Drivers)
	assert.Equal(t, 1, stats.Companies)
	assert.Equal(t, 2, stats.ActiveServices)
	assert.Equal(t, 1200.0, stats.Revenue)
	assert.Equal(t, 450.0, stats.Expenses)
}
