package Repository

import (
	"context"
	"strconv"

	"Sanle/DocStore"
	"Sanle/Models"
)

// Placeholder substituted when an enrichment join cannot resolve a
// referenced record. A deleted company must never fail a whole listing.
const missingRef = "N/A"

// nameIndex maps every id a record is reachable by (document id and
// numeric row id) to one display field.
type nameIndex map[string]string

func (idx nameIndex) lookup(id string) string {
	if v, ok := idx[id]; ok && v != "" {
		return v
	}
	return missingRef
}

func docIndex(docs []DocStore.Document, field string) nameIndex {
	idx := make(nameIndex, len(docs))
	for _, d := range docs {
		idx[d.ID()] = docString(d, field)
	}
	return idx
}

// ListServices returns all service orders with company, driver and
// vehicle display names attached.
func (c *Coordinator) ListServices(ctx context.Context) ([]ServiceView, error) {
	if docs := c.Docs.GetAll(ctx, "services"); len(docs) > 0 {
		companies := docIndex(c.Docs.GetAll(ctx, "companies"), "name")
		drivers := docIndex(c.Docs.GetAll(ctx, "drivers"), "name")
		vehicles := docIndex(c.Docs.GetAll(ctx, "vehicles"), "model")

		views := make([]ServiceView, 0, len(docs))
		for _, d := range docs {
			v := serviceFromDoc(d)
			v.CompanyName = companies.lookup(v.CompanyID)
			v.DriverName = drivers.lookup(v.DriverID)
			v.VehicleModel = vehicles.lookup(v.VehicleID)
			views = append(views, v)
		}
		return views, nil
	}

	var rows []Models.Service
	if err := c.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	companies, drivers, vehicles, err := c.localIndexes()
	if err != nil {
		return nil, err
	}

	views := make([]ServiceView, 0, len(rows))
	for _, r := range rows {
		v := serviceFromRow(r)
		v.CompanyName = companies.lookup(v.CompanyID)
		v.DriverName = drivers.lookup(v.DriverID)
		v.VehicleModel = vehicles.lookup(v.VehicleID)
		views = append(views, v)
	}
	return views, nil
}

// ListTrips returns completion records. The company/driver/vehicle names
// on a trip are the denormalized copies captured at completion; only the
// originating service description is joined in.
func (c *Coordinator) ListTrips(ctx context.Context) ([]TripView, error) {
	if docs := c.Docs.GetAll(ctx, "trips"); len(docs) > 0 {
		services := docIndex(c.Docs.GetAll(ctx, "services"), "description")

		views := make([]TripView, 0, len(docs))
		for _, d := range docs {
			v := tripFromDoc(d)
			v.ServiceDesc = services.lookup(v.ServiceID)
			views = append(views, v)
		}
		return views, nil
	}

	var rows []Models.Trip
	if err := c.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	var services []Models.Service
	if err := c.DB.Find(&services).Error; err != nil {
		return nil, err
	}
	serviceDesc := make(nameIndex, len(services)*2)
	for _, s := range services {
		serviceDesc[strconv.FormatUint(uint64(s.ID), 10)] = s.Description
		if s.DocID != "" {
			serviceDesc[s.DocID] = s.Description
		}
	}

	views := make([]TripView, 0, len(rows))
	for _, r := range rows {
		v := tripFromRow(r)
		v.ServiceDesc = serviceDesc.lookup(v.ServiceID)
		views = append(views, v)
	}
	return views, nil
}

// localIndexes builds the display-name lookups over the relational store.
func (c *Coordinator) localIndexes() (companies, drivers, vehicles nameIndex, err error) {
	var companyRows []Models.Company
	if err = c.DB.Find(&companyRows).Error; err != nil {
		return
	}
	companies = make(nameIndex, len(companyRows)*2)
	for _, r := range companyRows {
		companies[strconv.FormatUint(uint64(r.ID), 10)] = r.Name
		if r.DocID != "" {
			companies[r.DocID] = r.Name
		}
	}

	var driverRows []Models.Driver
	if err = c.DB.Find(&driverRows).Error; err != nil {
		return
	}
	drivers = make(nameIndex, len(driverRows)*2)
	for _, r := range driverRows {
		drivers[strconv.FormatUint(uint64(r.ID), 10)] = r.Name
		if r.DocID != "" {
			drivers[r.DocID] = r.Name
		}
	}

	var vehicleRows []Models.Vehicle
	if err = c.DB.Find(&vehicleRows).Error; err != nil {
		return
	}
	vehicles = make(nameIndex, len(vehicleRows)*2)
	for _, r := range vehicleRows {
		vehicles[strconv.FormatUint(uint64(r.ID), 10)] = r.CarModel
		if r.DocID != "" {
			vehicles[r.DocID] = r.CarModel
		}
	}
	return
}
