package Repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"Sanle/DocStore"
	"Sanle/Models"
)

// Service-order lifecycle: pending → accepted → completed, driven through
// the public token link. Accept is an idempotent no-op once the order has
// moved on; complete is terminal and produces exactly one Trip.

// CreateService registers a new order: fresh unguessable token, atomically
// reserved order number, initial status pending.
func (c *Coordinator) CreateService(ctx context.Context, in ServiceInput) (ServiceView, error) {
	token := uuid.NewString()
	osNumber, err := Models.NextOSNumber(c.DB)
	if err != nil {
		return ServiceView{}, err
	}

	docID := c.Docs.Add(ctx, "services", map[string]interface{}{
		"company_id":    in.CompanyID,
		"driver_id":     in.DriverID,
		"vehicle_id":    in.VehicleID,
		"customer_name": in.CustomerName,
		"origin":        in.Origin,
		"destination":   in.Destination,
		"scheduled_at":  in.ScheduledAt,
		"description":   in.Description,
		"token":         token,
		"os_number":     osNumber,
		"status":        Models.ServicePending,
	})

	row := Models.Service{
		DocID:        docID,
		CompanyID:    in.CompanyID,
		DriverID:     in.DriverID,
		VehicleID:    in.VehicleID,
		CustomerName: in.CustomerName,
		Origin:       in.Origin,
		Destination:  in.Destination,
		ScheduledAt:  in.ScheduledAt,
		Description:  in.Description,
		Status:       Models.ServicePending,
		Token:        token,
		OSNumber:     osNumber,
	}
	if err := c.DB.Create(&row).Error; err != nil {
		return ServiceView{}, err
	}
	return serviceFromRow(row), nil
}

// UpdateService is the staff edit: any field including status may change
// directly. This is an administrative override, not a lifecycle
// transition, so no state-machine check applies.
func (c *Coordinator) UpdateService(ctx context.Context, id string, in ServiceInput) error {
	if in.Status == "" {
		in.Status = Models.ServicePending
	}
	data := map[string]interface{}{
		"company_id":    in.CompanyID,
		"driver_id":     in.DriverID,
		"vehicle_id":    in.VehicleID,
		"customer_name": in.CustomerName,
		"origin":        in.Origin,
		"destination":   in.Destination,
		"scheduled_at":  in.ScheduledAt,
		"description":   in.Description,
		"status":        in.Status,
	}

	var row Models.Service
	if err := c.findRow(&row, id); err != nil {
		if c.Docs.Update(ctx, "services", id, data) {
			return nil
		}
		return ErrNotFound
	}

	if row.DocID != "" {
		c.Docs.Update(ctx, "services", row.DocID, data)
	}
	return c.DB.Model(&row).Updates(data).Error
}

func (c *Coordinator) DeleteService(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, "services", id, &Models.Service{})
}

// resolvedService is a token lookup across both stores. The document and
// the mirrored row are tracked separately so lifecycle writes can be
// applied to whichever copies exist.
type resolvedService struct {
	doc DocStore.Document
	row *Models.Service
}

func (rs *resolvedService) id() string {
	if rs.doc != nil {
		return rs.doc.ID()
	}
	return publicID(rs.row.DocID, rs.row.ID)
}

func (rs *resolvedService) status() string {
	if rs.doc != nil {
		return docString(rs.doc, "status")
	}
	return rs.row.Status
}

func (rs *resolvedService) view() ServiceView {
	if rs.doc != nil {
		return serviceFromDoc(rs.doc)
	}
	return serviceFromRow(*rs.row)
}

func (c *Coordinator) resolveByToken(ctx context.Context, token string) (*resolvedService, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	rs := &resolvedService{}
	rs.doc = c.Docs.QueryByField(ctx, "services", "token", token)

	var row Models.Service
	if err := c.DB.Where("token = ?", token).First(&row).Error; err == nil {
		rs.row = &row
	}

	if rs.doc == nil && rs.row == nil {
		return nil, ErrNotFound
	}
	return rs, nil
}

// GetServiceByToken is the unauthenticated public fetch behind the driver
// link. The response carries the denormalized display fields the driver
// page needs, including phone and plate.
func (c *Coordinator) GetServiceByToken(ctx context.Context, token string) (ServiceView, error) {
	rs, err := c.resolveByToken(ctx, token)
	if err != nil {
		return ServiceView{}, err
	}

	v := rs.view()
	company, driver, vehicle := c.resolveRefs(ctx, rs, v)
	v.CompanyName = company.Name
	v.DriverName = driver.Name
	v.DriverPhone = driver.Phone
	v.VehicleModel = vehicle.Model
	v.VehiclePlate = vehicle.Plate
	return v, nil
}

// AcceptByToken transitions pending → accepted and returns the order's
// resulting status. Orders already accepted or completed answer success
// without changing state, so drivers retry the link freely; the returned
// status tells the caller what the order actually is.
func (c *Coordinator) AcceptByToken(ctx context.Context, token string) (string, error) {
	rs, err := c.resolveByToken(ctx, token)
	if err != nil {
		return "", err
	}

	if rs.status() != Models.ServicePending {
		return rs.status(), nil
	}

	if rs.doc != nil {
		c.Docs.Update(ctx, "services", rs.doc.ID(), map[string]interface{}{
			"status": Models.ServiceAccepted,
		})
	}
	if rs.row != nil {
		// Guarded by the current status so a concurrent complete is not
		// clobbered back to accepted.
		if err := c.DB.Model(&Models.Service{}).
			Where("id = ? AND status = ?", rs.row.ID, Models.ServicePending).
			Update("status", Models.ServiceAccepted).Error; err != nil {
			return "", err
		}
	}
	return Models.ServiceAccepted, nil
}

// CompleteByToken finishes an order: validates the signature, materializes
// exactly one Trip carrying the denormalized company/driver/vehicle
// identifiers and names, and marks the service completed. Completing an
// already-completed order is rejected and creates nothing.
func (c *Coordinator) CompleteByToken(ctx context.Context, token string, in CompletionInput) (TripView, error) {
	if in.SignatureURL == "" {
		return TripView{}, ErrSignatureRequired
	}

	rs, err := c.resolveByToken(ctx, token)
	if err != nil {
		return TripView{}, err
	}
	if rs.status() == Models.ServiceCompleted {
		return TripView{}, ErrAlreadyCompleted
	}

	v := rs.view()
	company, driver, vehicle := c.resolveRefs(ctx, rs, v)

	tripDocID := ""
	if rs.doc != nil {
		tripDocID = c.Docs.Add(ctx, "trips", map[string]interface{}{
			"service_id":     rs.id(),
			"os_number":      v.OSNumber,
			"company_id":     v.CompanyID,
			"company_name":   company.Name,
			"driver_id":      v.DriverID,
			"driver_name":    driver.Name,
			"vehicle_id":     v.VehicleID,
			"vehicle_model":  vehicle.Model,
			"plate":          vehicle.Plate,
			"date":           in.Date,
			"description":    in.Description,
			"origin":         in.Origin,
			"destination":    in.Destination,
			"km_start":       in.KmStart,
			"km_end":         in.KmEnd,
			"observations":   in.Observations,
			"user_name":      in.UserName,
			"signature_url":  in.SignatureURL,
			"finished_at":    in.FinishedAt,
			"stopped_hours":  in.StoppedHours,
			"stopped_reason": in.StoppedReason,
		})
		c.Docs.Update(ctx, "services", rs.doc.ID(), map[string]interface{}{
			"status":  Models.ServiceCompleted,
			"trip_id": tripDocID,
		})
	}

	trip := Models.Trip{
		DocID:         tripDocID,
		ServiceID:     rs.id(),
		OSNumber:      v.OSNumber,
		CompanyID:     v.CompanyID,
		CompanyName:   company.Name,
		DriverID:      v.DriverID,
		DriverName:    driver.Name,
		VehicleID:     v.VehicleID,
		VehicleModel:  vehicle.Model,
		Plate:         vehicle.Plate,
		Date:          in.Date,
		Description:   in.Description,
		Origin:        in.Origin,
		Destination:   in.Destination,
		KmStart:       in.KmStart,
		KmEnd:         in.KmEnd,
		Observations:  in.Observations,
		UserName:      in.UserName,
		SignatureURL:  in.SignatureURL,
		FinishedAt:    in.FinishedAt,
		StoppedHours:  in.StoppedHours,
		StoppedReason: in.StoppedReason,
	}

	if rs.row != nil {
		err = c.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&trip).Error; err != nil {
				return err
			}
			return tx.Model(rs.row).Updates(map[string]interface{}{
				"status":  Models.ServiceCompleted,
				"trip_id": publicID(trip.DocID, trip.ID),
			}).Error
		})
	} else {
		err = c.DB.Create(&trip).Error
	}
	if err != nil {
		return TripView{}, err
	}

	return tripFromRow(trip), nil
}

// resolveRefs looks up the referenced company, driver and vehicle in the
// same store the service came from, substituting placeholders for records
// that no longer exist.
func (c *Coordinator) resolveRefs(ctx context.Context, rs *resolvedService, v ServiceView) (CompanyView, DriverView, VehicleView) {
	company := CompanyView{Name: missingRef}
	driver := DriverView{Name: missingRef, Phone: missingRef}
	vehicle := VehicleView{Model: missingRef, Plate: missingRef}

	if rs.doc != nil {
		if d := c.Docs.GetOne(ctx, "companies", v.CompanyID); d != nil {
			company = companyFromDoc(d)
		}
		if d := c.Docs.GetOne(ctx, "drivers", v.DriverID); d != nil {
			driver = driverFromDoc(d)
		}
		if d := c.Docs.GetOne(ctx, "vehicles", v.VehicleID); d != nil {
			vehicle = vehicleFromDoc(d)
		}
	}

	if rs.row != nil {
		var companyRow Models.Company
		if company.Name == missingRef && c.findRow(&companyRow, v.CompanyID) == nil {
			company = companyFromRow(companyRow)
		}
		var driverRow Models.Driver
		if driver.Name == missingRef && c.findRow(&driverRow, v.DriverID) == nil {
			driver = driverFromRow(driverRow)
		}
		var vehicleRow Models.Vehicle
		if vehicle.Model == missingRef && c.findRow(&vehicleRow, v.VehicleID) == nil {
			vehicle = vehicleFromRow(vehicleRow)
		}
	}

	return company, driver, vehicle
}
