package Repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sanle/Models"
)

// seedFleet creates one company, driver and vehicle on the local store
// and returns their public ids.
func seedFleet(t *testing.T, c *Coordinator) (companyID, driverID, vehicleID string) {
	t.Helper()
	ctx := context.Background()

	companyID, err := c.CreateCompany(ctx, CompanyInput{Name: "Transportes Sanle"})
	require.NoError(t, err)
	driverID, err = c.CreateDriver(ctx, DriverInput{Name: "Carlos", Phone: "(11) 99999-0000"})
	require.NoError(t, err)
	vehicleID, err = c.CreateVehicle(ctx, VehicleInput{Model: "Scania R450", Plate: "ABC1D23"})
	require.NoError(t, err)
	return companyID, driverID, vehicleID
}

func completion() CompletionInput {
	return CompletionInput{
		Date:         "2026-08-29",
		Origin:       "São Paulo",
		Destination:  "Campinas",
		KmStart:      1000,
		KmEnd:        1100,
		UserName:     "Carlos",
		SignatureURL: "/uploads/sig.png",
		FinishedAt:   "2026-08-29T18:00:00Z",
	}
}

func TestCreateServiceAssignsTokenAndOrderNumber(t *testing.T) {
	c := newTestCoordinator(t, newFakeStore(false))
	ctx := context.Background()
	companyID, driverID, vehicleID := seedFleet(t, c)

	first, err := c.CreateService(ctx, ServiceInput{
		CompanyID: companyID, DriverID: driverID, VehicleID: vehicleID,
		Origin: "São Paulo", Destination: "Campinas",
	})
	require.NoError(t, err)
	second, err := c.CreateService(ctx, ServiceInput{
		CompanyID: companyID, DriverID: driverID, VehicleID: vehicleID,
	})
	require.NoError(t, err)

	assert.Equal(t, Models.ServicePending, first.Status)
	assert.NotEmpty(t, first.Token)
	assert.NotEqual(t, first.Token, second.Token)
	assert.Equal(t, 1, first.OSNumber)
	assert.Equal(t, 2, second.OSNumber)
}

func TestGetServiceByTokenEnrichesReferences(t *testing.T) {
	c := newTestCoordinator(t, newFakeStore(false))
	ctx := context.Background()
	companyID, driverID, vehicleID := seedFleet(t, c)

	created, err := c.CreateService(ctx, ServiceInput{
		CompanyID: companyID, DriverID: driverID, VehicleID: vehicleID,
	})
	require.NoError(t, err)

	view, err := c.GetServiceByToken(ctx, created.Token)
	require.NoError(t, err)
	assert.Equal(t, "Transportes Sanle", view.CompanyName)
	assert.Equal(t, "Carlos", view.DriverName)
	assert.Equal(t, "(11) 99999-0000", view.DriverPhone)
	assert.Equal(t, "Scania R450", view.VehicleModel)
	assert.Equal(t, "ABC1D23", view.VehiclePlate)
}

func TestGetServiceByTokenMissingReferences(t *testing.T) {
	c := newTestCoordinator(t, newFakeStore(false))
	ctx := context.Background()

	created, err := c.CreateService(ctx, ServiceInput{
		CompanyID: "404", DriverID: "404", VehicleID: "404",
	})
	require.NoError(t, err)

	view, err := c.GetServiceByToken(ctx, created.Token)
	require.NoError(t, err)
	assert.Equal(t, "N/A", view.CompanyName)
	assert.Equal(t, "N/A", view.DriverName)
	assert.Equal(t, "N/A", view.VehicleModel)
}

func TestGetServiceByTokenUnknown(t *testing.T) {
	c := newTestCoordinator(t, newFakeStore(false))
	_, err := c.GetServiceByToken(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAcceptByTokenIsIdempotent(t *testing.T) {
	c := newTestCoordinator(t, newFakeStore(false))
	ctx := context.Background()
	companyID, driverID, vehicleID := seedFleet(t, c)

	created, err := c.CreateService(ctx, ServiceInput{
		CompanyID: companyID, DriverID: driverID, VehicleID: vehicleID,
	})
	require.NoError(t, err)

	status, err := c.AcceptByToken(ctx, created.Token)
	require.NoError(t, err)
	assert.Equal(t, Models.ServiceAccepted, status)
	view, err := c.GetServiceByToken(ctx, created.Token)
	require.NoError(t, err)
	assert.Equal(t, Models.ServiceAccepted, view.Status)

	// The driver taps the link again.
	status, err = c.AcceptByToken(ctx, created.Token)
	require.NoError(t, err)
	assert.Equal(t, Models.ServiceAccepted, status)
	view, err = c.GetServiceByToken(ctx, created.Token)
	require.NoError(t, err)
	assert.Equal(t, Models.ServiceAccepted, view.Status)
}

func TestAcceptAfterCompletionKeepsCompleted(t *testing.T) {
	c := newTestCoordinator(t, newFakeStore(false))
	ctx := context.Background()
	companyID, driverID, vehicleID := seedFleet(t, c)

	created, err := c.CreateService(ctx, ServiceInput{
		CompanyID: companyID, DriverID: driverID, VehicleID: vehicleID,
	})
	require.NoError(t, err)
	_, err = c.CompleteByToken(ctx, created.Token, completion())
	require.NoError(t, err)

	status, err := c.AcceptByToken(ctx, created.Token)
	require.NoError(t, err)
	assert.Equal(t, Models.ServiceCompleted, status)
	view, err := c.GetServiceByToken(ctx, created.Token)
	require.NoError(t, err)
	assert.Equal(t, Models.ServiceCompleted, view.Status)
}

func TestCompleteRequiresSignature(t *testing.T) {
	c := newTestCoordinator(t, newFakeStore(false))
	ctx := context.Background()
	companyID, driverID, vehicleID := seedFleet(t, c)

	created, err := c.CreateService(ctx, ServiceInput{
		CompanyID: companyID, DriverID: driverID, VehicleID: vehicleID,
	})
	require.NoError(t, err)

	in := completion()
	in.SignatureURL = ""
	_, err = c.CompleteByToken(ctx, created.Token, in)
	assert.ErrorIs(t, err, ErrSignatureRequired)

	var tripCount int64
	require.NoError(t, c.DB.Model(&Models.Trip{}).Count(&tripCount).Error)
	assert.Zero(t, tripCount)

	view, err := c.GetServiceByToken(ctx, created.Token)
	require.NoError(t, err)
	assert.Equal(t, Models.ServicePending, view.Status)
}

func TestCompleteCreatesDenormalizedTrip(t *testing.T) {
	c := newTestCoordinator(t, newFakeStore(false))
	ctx := context.Background()
	companyID, driverID, vehicleID := seedFleet(t, c)

	created, err := c.CreateService(ctx, ServiceInput{
		CompanyID: companyID, DriverID: driverID, VehicleID: vehicleID,
		Description: "Carga geral",
	})
	require.NoError(t, err)

	trip, err := c.CompleteByToken(ctx, created.Token, completion())
	require.NoError(t, err)

	assert.Equal(t, created.ID, trip.ServiceID)
	assert.Equal(t, created.OSNumber, trip.OSNumber)
	assert.Equal(t, "Transportes Sanle", trip.CompanyName)
	assert.Equal(t, "Carlos", trip.DriverName)
	assert.Equal(t, "Scania R450", trip.VehicleModel)
	assert.Equal(t, "ABC1D23", trip.Plate)
	assert.Equal(t, float64(1100), trip.KmEnd)

	view, err := c.GetServiceByToken(ctx, created.Token)
	require.NoError(t, err)
	assert.Equal(t, Models.ServiceCompleted, view.Status)
	assert.Equal(t, trip.ID, view.TripID)
}

func TestCompleteTwiceIsRejected(t *testing.T) {
	c := newTestCoordinator(t, newFakeStore(false))
	ctx := context.Background()
	companyID, driverID, vehicleID := seedFleet(t, c)

	created, err := c.CreateService(ctx, ServiceInput{
		CompanyID: companyID, DriverID: driverID, VehicleID: vehicleID,
	})
	require.NoError(t, err)

	_, err = c.CompleteByToken(ctx, created.Token, completion())
	require.NoError(t, err)

	_, err = c.CompleteByToken(ctx, created.Token, completion())
	assert.ErrorIs(t, err, ErrAlreadyCompleted)

	var tripCount int64
	require.NoError(t, c.DB.Model(&Models.Trip{}).Count(&tripCount).Error)
	assert.EqualValues(t, 1, tripCount)
}

func TestTripKeepsNamesAfterDriverEdit(t *testing.T) {
	c := newTestCoordinator(t, newFakeStore(false))
	ctx := context.Background()
	companyID, driverID, vehicleID := seedFleet(t, c)

	created, err := c.CreateService(ctx, ServiceInput{
		CompanyID: companyID, DriverID: driverID, VehicleID: vehicleID,
	})
	require.NoError(t, err)
	_, err = c.CompleteByToken(ctx, created.Token, completion())
	require.NoError(t, err)

	require.NoError(t, c.UpdateDriver(ctx, driverID, DriverInput{Name: "Renamed"}))

	trips, err := c.ListTrips(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Carlos", trips[0].DriverName)
}

func TestLifecycleThroughDocumentStore(t *testing.T) {
	store := newFakeStore(true)
	c := newTestCoordinator(t, store)
	ctx := context.Background()
	companyID, driverID, vehicleID := seedFleet(t, c)

	created, err := c.CreateService(ctx, ServiceInput{
		CompanyID: companyID, DriverID: driverID, VehicleID: vehicleID,
	})
	require.NoError(t, err)

	status, err := c.AcceptByToken(ctx, created.Token)
	require.NoError(t, err)
	assert.Equal(t, Models.ServiceAccepted, status)
	doc := store.GetOne(ctx, "services", created.ID)
	require.NotNil(t, doc)
	assert.Equal(t, Models.ServiceAccepted, doc["status"])

	trip, err := c.CompleteByToken(ctx, created.Token, completion())
	require.NoError(t, err)

	doc = store.GetOne(ctx, "services", created.ID)
	assert.Equal(t, Models.ServiceCompleted, doc["status"])
	assert.Equal(t, trip.ID, doc["trip_id"])
	require.NotNil(t, store.GetOne(ctx, "trips", trip.ID))

	// The mirror row followed every transition.
	var row Models.Service
	require.NoError(t, c.DB.Where("doc_id = ?", created.ID).First(&row).Error)
	assert.Equal(t, Models.ServiceCompleted, row.Status)
}
