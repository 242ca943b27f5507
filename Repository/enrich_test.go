package Repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListServicesEnrichesFromLocalStore(t *testing.T) {
	c := newTestCoordinator(t, newFakeStore(false))
	ctx := context.Background()
	companyID, driverID, vehicleID := seedFleet(t, c)

	_, err := c.CreateService(ctx, ServiceInput{
		CompanyID: companyID, DriverID: driverID, VehicleID: vehicleID,
	})
	require.NoError(t, err)
	_, err = c.CreateService(ctx, ServiceInput{
		CompanyID: "999", DriverID: driverID, VehicleID: vehicleID,
	})
	require.NoError(t, err)

	services, err := c.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 2)

	byCompany := map[string]ServiceView{}
	for _, s := range services {
		byCompany[s.CompanyID] = s
	}
	assert.Equal(t, "Transportes Sanle", byCompany[companyID].CompanyName)
	assert.Equal(t, "Carlos", byCompany[companyID].DriverName)
	assert.Equal(t, "Scania R450", byCompany[companyID].VehicleModel)
	assert.Equal(t, "N/A", byCompany["999"].CompanyName)
}

func TestListServicesEnrichesFromDocumentStore(t *testing.T) {
	store := newFakeStore(true)
	store.seed("companies", "c1", map[string]interface{}{"name": "Cloud Co"})
	store.seed("drivers", "d1", map[string]interface{}{"name": "Ana"})
	store.seed("vehicles", "v1", map[string]interface{}{"model": "Volvo FH"})
	store.seed("services", "s1", map[string]interface{}{
		"company_id": "c1", "driver_id": "d1", "vehicle_id": "v1",
		"status": "pending", "token": "tok-1",
	})
	c := newTestCoordinator(t, store)

	services, err := c.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Cloud Co", services[0].CompanyName)
	assert.Equal(t, "Ana", services[0].DriverName)
	assert.Equal(t, "Volvo FH", services[0].VehicleModel)
}

func TestListTripsJoinsServiceDescription(t *testing.T) {
	c := newTestCoordinator(t, newFakeStore(false))
	ctx := context.Background()
	companyID, driverID, vehicleID := seedFleet(t, c)

	created, err := c.CreateService(ctx, ServiceInput{
		CompanyID: companyID, DriverID: driverID, VehicleID: vehicleID,
		Description: "Carga refrigerada",
	})
	require.NoError(t, err)
	_, err = c.CompleteByToken(ctx, created.Token, completion())
	require.NoError(t, err)

	trips, err := c.ListTrips(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Carga refrigerada", trips[0].ServiceDesc)
}
