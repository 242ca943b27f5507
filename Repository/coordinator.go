package Repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"Sanle/DocStore"
	"Sanle/Models"
)

// Coordinator keeps the cloud document store and the embedded relational
// database in best-effort sync. Writes go to the document store first and
// are always mirrored into the local database; reads prefer whichever
// store has data. The two writes are not atomic — a crash in between
// leaves the stores divergent, and reconciliation is manual. Both stores
// are sources of truth; this is not a cache.
type Coordinator struct {
	DB   *gorm.DB
	Docs DocStore.DocumentStore
}

func NewCoordinator(db *gorm.DB, docs DocStore.DocumentStore) *Coordinator {
	if docs == nil {
		docs = DocStore.NewStore(nil, nil)
	}
	return &Coordinator{DB: db, Docs: docs}
}

// findRow resolves a public id against the local database: mirrored rows
// match on their document id, local-only rows on the numeric key.
func (c *Coordinator) findRow(dest interface{}, id string) error {
	if id == "" {
		return gorm.ErrRecordNotFound
	}
	if err := c.DB.Where("doc_id = ?", id).First(dest).Error; err == nil {
		return nil
	}
	if n, err := strconv.ParseUint(id, 10, 64); err == nil {
		return c.DB.First(dest, n).Error
	}
	return gorm.ErrRecordNotFound
}

// --- COMPANIES ---

func (c *Coordinator) ListCompanies(ctx context.Context) ([]CompanyView, error) {
	if docs := c.Docs.GetAll(ctx, "companies"); len(docs) > 0 {
		views := make([]CompanyView, 0, len(docs))
		for _, d := range docs {
			views = append(views, companyFromDoc(d))
		}
		return views, nil
	}

	var rows []Models.Company
	if err := c.DB.Find(&rows).Error; err != nil {
		return nil, err
	}
	views := make([]CompanyView, 0, len(rows))
	for _, r := range rows {
		views = append(views, companyFromRow(r))
	}
	return views, nil
}

// CreateCompany also spawns the templated contract record that goes with
// every new company.
func (c *Coordinator) CreateCompany(ctx context.Context, in CompanyInput) (string, error) {
	docID := c.Docs.Add(ctx, "companies", map[string]interface{}{
		"name":    in.Name,
		"cnpj":    in.CNPJ,
		"address": in.Address,
		"contact": in.Contact,
		"notes":   in.Notes,
	})

	row := Models.Company{
		DocID:   docID,
		Name:    in.Name,
		CNPJ:    in.CNPJ,
		Address: in.Address,
		Contact: in.Contact,
		Notes:   in.Notes,
	}
	if err := c.DB.Create(&row).Error; err != nil {
		return "", err
	}

	date := time.Now().Format("2006-01-02")
	contract := ContractInput{
		Title:       fmt.Sprintf("Contrato Automático - %s", in.Name),
		Description: fmt.Sprintf("Contrato gerado automaticamente na criação da empresa %s.", in.Name),
		Date:        date,
	}
	if _, err := c.CreateContract(ctx, contract); err != nil {
		return "", err
	}

	return publicID(docID, row.ID), nil
}

func (c *Coordinator) UpdateCompany(ctx context.Context, id string, in CompanyInput) error {
	data := map[string]interface{}{
		"name":    in.Name,
		"cnpj":    in.CNPJ,
		"address": in.Address,
		"contact": in.Contact,
		"notes":   in.Notes,
	}

	var row Models.Company
	err := c.findRow(&row, id)
	if err != nil {
		// The record may live only in the document store.
		if c.Docs.Update(ctx, "companies", id, data) {
			return nil
		}
		return ErrNotFound
	}

	if row.DocID != "" {
		c.Docs.Update(ctx, "companies", row.DocID, data)
	}
	return c.DB.Model(&row).Updates(Models.Company{
		Name:    in.Name,
		CNPJ:    in.CNPJ,
		Address: in.Address,
		Contact: in.Contact,
		Notes:   in.Notes,
	}).Error
}

func (c *Coordinator) DeleteCompany(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, "companies", id, &Models.Company{})
}

// --- DRIVERS ---

func (c *Coordinator) ListDrivers(ctx context.Context) ([]DriverView, error) {
	if docs := c.Docs.GetAll(ctx, "drivers"); len(docs) > 0 {
		views := make([]DriverView, 0, len(docs))
		for _, d := range docs {
			views = append(views, driverFromDoc(d))
		}
		return views, nil
	}

	var rows []Models.Driver
	if err := c.DB.Find(&rows).Error; err != nil {
		return nil, err
	}
	views := make([]DriverView, 0, len(rows))
	for _, r := range rows {
		views = append(views, driverFromRow(r))
	}
	return views, nil
}

func (c *Coordinator) CreateDriver(ctx context.Context, in DriverInput) (string, error) {
	if in.Status == "" {
		in.Status = "active"
	}
	docID := c.Docs.Add(ctx, "drivers", map[string]interface{}{
		"name":   in.Name,
		"cpf":    in.CPF,
		"cnh":    in.CNH,
		"phone":  in.Phone,
		"status": in.Status,
	})

	row := Models.Driver{
		DocID:  docID,
		Name:   in.Name,
		CPF:    in.CPF,
		CNH:    in.CNH,
		Phone:  in.Phone,
		Status: in.Status,
	}
	if err := c.DB.Create(&row).Error; err != nil {
		return "", err
	}
	return publicID(docID, row.ID), nil
}

func (c *Coordinator) UpdateDriver(ctx context.Context, id string, in DriverInput) error {
	if in.Status == "" {
		in.Status = "active"
	}
	data := map[string]interface{}{
		"name":   in.Name,
		"cpf":    in.CPF,
		"cnh":    in.CNH,
		"phone":  in.Phone,
		"status": in.Status,
	}

	var row Models.Driver
	if err := c.findRow(&row, id); err != nil {
		if c.Docs.Update(ctx, "drivers", id, data) {
			return nil
		}
		return ErrNotFound
	}

	if row.DocID != "" {
		c.Docs.Update(ctx, "drivers", row.DocID, data)
	}
	return c.DB.Model(&row).Select("name", "cpf", "cnh", "phone", "status").
		Updates(Models.Driver{Name: in.Name, CPF: in.CPF, CNH: in.CNH, Phone: in.Phone, Status: in.Status}).Error
}

func (c *Coordinator) DeleteDriver(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, "drivers", id, &Models.Driver{})
}

// --- VEHICLES ---

func (c *Coordinator) ListVehicles(ctx context.Context) ([]VehicleView, error) {
	if docs := c.Docs.GetAll(ctx, "vehicles"); len(docs) > 0 {
		views := make([]VehicleView, 0, len(docs))
		for _, d := range docs {
			views = append(views, vehicleFromDoc(d))
		}
		return views, nil
	}

	var rows []Models.Vehicle
	if err := c.DB.Find(&rows).Error; err != nil {
		return nil, err
	}
	views := make([]VehicleView, 0, len(rows))
	for _, r := range rows {
		views = append(views, vehicleFromRow(r))
	}
	return views, nil
}

func (c *Coordinator) CreateVehicle(ctx context.Context, in VehicleInput) (string, error) {
	docID := c.Docs.Add(ctx, "vehicles", map[string]interface{}{
		"model":     in.Model,
		"plate":     in.Plate,
		"year":      in.Year,
		"color":     in.Color,
		"notes":     in.Notes,
		"photo_url": in.PhotoURL,
	})

	row := Models.Vehicle{
		DocID:    docID,
		CarModel: in.Model,
		Plate:    in.Plate,
		Year:     in.Year,
		Color:    in.Color,
		Notes:    in.Notes,
		PhotoURL: in.PhotoURL,
	}
	if err := c.DB.Create(&row).Error; err != nil {
		return "", err
	}
	return publicID(docID, row.ID), nil
}

func (c *Coordinator) UpdateVehicle(ctx context.Context, id string, in VehicleInput) error {
	data := map[string]interface{}{
		"model": in.Model,
		"plate": in.Plate,
		"year":  in.Year,
		"color": in.Color,
		"notes": in.Notes,
	}
	if in.PhotoURL != "" {
		data["photo_url"] = in.PhotoURL
	}

	var row Models.Vehicle
	if err := c.findRow(&row, id); err != nil {
		if c.Docs.Update(ctx, "vehicles", id, data) {
			return nil
		}
		return ErrNotFound
	}

	if row.DocID != "" {
		c.Docs.Update(ctx, "vehicles", row.DocID, data)
	}
	updates := Models.Vehicle{
		CarModel: in.Model,
		Plate:    in.Plate,
		Year:     in.Year,
		Color:    in.Color,
		Notes:    in.Notes,
		PhotoURL: in.PhotoURL,
	}
	return c.DB.Model(&row).Select("model", "plate", "year", "color", "notes", "photo_url").
		Updates(updates).Error
}

func (c *Coordinator) DeleteVehicle(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, "vehicles", id, &Models.Vehicle{})
}

// --- EXPENSES ---

func (c *Coordinator) ListExpenses(ctx context.Context) ([]ExpenseView, error) {
	if docs := c.Docs.GetAll(ctx, "expenses"); len(docs) > 0 {
		views := make([]ExpenseView, 0, len(docs))
		for _, d := range docs {
			views = append(views, expenseFromDoc(d))
		}
		return views, nil
	}

	var rows []Models.Expense
	if err := c.DB.Order("date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	views := make([]ExpenseView, 0, len(rows))
	for _, r := range rows {
		views = append(views, expenseFromRow(r))
	}
	return views, nil
}

func (c *Coordinator) CreateExpense(ctx context.Context, in ExpenseInput) (string, error) {
	if in.Type == "" {
		in.Type = "expense"
	}
	docID := c.Docs.Add(ctx, "expenses", map[string]interface{}{
		"description": in.Description,
		"amount":      in.Amount,
		"date":        in.Date,
		"category":    in.Category,
		"type":        in.Type,
	})

	row := Models.Expense{
		DocID:       docID,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date,
		Category:    in.Category,
		Type:        in.Type,
	}
	if err := c.DB.Create(&row).Error; err != nil {
		return "", err
	}
	return publicID(docID, row.ID), nil
}

func (c *Coordinator) DeleteExpense(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, "expenses", id, &Models.Expense{})
}

// --- CONTRACTS ---

func (c *Coordinator) ListContracts(ctx context.Context) ([]ContractView, error) {
	if docs := c.Docs.GetAll(ctx, "contracts"); len(docs) > 0 {
		views := make([]ContractView, 0, len(docs))
		for _, d := range docs {
			views = append(views, contractFromDoc(d))
		}
		return views, nil
	}

	var rows []Models.Contract
	if err := c.DB.Order("date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	views := make([]ContractView, 0, len(rows))
	for _, r := range rows {
		views = append(views, contractFromRow(r))
	}
	return views, nil
}

func (c *Coordinator) CreateContract(ctx context.Context, in ContractInput) (string, error) {
	docID := c.Docs.Add(ctx, "contracts", map[string]interface{}{
		"title":       in.Title,
		"description": in.Description,
		"file_url":    in.FileURL,
		"date":        in.Date,
	})

	row := Models.Contract{
		DocID:       docID,
		Title:       in.Title,
		Description: in.Description,
		FileURL:     in.FileURL,
		Date:        in.Date,
	}
	if err := c.DB.Create(&row).Error; err != nil {
		return "", err
	}
	return publicID(docID, row.ID), nil
}

func (c *Coordinator) DeleteContract(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, "contracts", id, &Models.Contract{})
}

// --- COLLABORATORS ---

func (c *Coordinator) ListCollaborators(ctx context.Context) ([]CollaboratorView, error) {
	if docs := c.Docs.GetAll(ctx, "users"); len(docs) > 0 {
		views := make([]CollaboratorView, 0, len(docs))
		for _, d := range docs {
			if docString(d, "role") == Models.RoleCollaborator {
				views = append(views, collaboratorFromDoc(d))
			}
		}
		if len(views) > 0 {
			return views, nil
		}
	}

	var rows []Models.User
	if err := c.DB.Where("role = ?", Models.RoleCollaborator).Find(&rows).Error; err != nil {
		return nil, err
	}
	views := make([]CollaboratorView, 0, len(rows))
	for _, r := range rows {
		views = append(views, collaboratorFromRow(r))
	}
	return views, nil
}

// CreateCollaborator mirrors the new account into both stores. When the
// identity provider already issued a uid, the user document is keyed by
// it so cloud logins resolve to the same record.
func (c *Coordinator) CreateCollaborator(ctx context.Context, in CollaboratorInput, uid string, passwordHash []byte) (string, error) {
	if in.Permissions == nil {
		in.Permissions = []string{}
	}
	data := map[string]interface{}{
		"email":       in.Email,
		"name":        in.Name,
		"role":        Models.RoleCollaborator,
		"permissions": in.Permissions,
	}

	docID := uid
	if uid != "" {
		if !c.Docs.Set(ctx, "users", uid, data) {
			docID = ""
		}
	} else {
		docID = c.Docs.Add(ctx, "users", data)
	}

	perms, err := Models.PermissionsJSON(in.Permissions)
	if err != nil {
		return "", err
	}
	row := Models.User{
		DocID:       docID,
		Email:       in.Email,
		Password:    passwordHash,
		Name:        in.Name,
		Role:        Models.RoleCollaborator,
		Permissions: perms,
	}
	if err := c.DB.Create(&row).Error; err != nil {
		return "", err
	}
	return publicID(docID, row.ID), nil
}

func (c *Coordinator) DeleteCollaborator(ctx context.Context, id string) error {
	return c.deleteEntity(ctx, "users", id, &Models.User{})
}

// deleteEntity removes a record from both stores, tolerating its absence
// in either.
func (c *Coordinator) deleteEntity(ctx context.Context, collection, id string, model interface{}) error {
	found := false

	if err := c.findRow(model, id); err == nil {
		found = true
		docID := mirroredDocID(model)
		if docID != "" {
			c.Docs.Delete(ctx, collection, docID)
		} else {
			c.Docs.Delete(ctx, collection, id)
		}
		if err := c.DB.Delete(model).Error; err != nil {
			return err
		}
	} else if c.Docs.Delete(ctx, collection, id) {
		found = true
	}

	if !found {
		return ErrNotFound
	}
	return nil
}

func mirroredDocID(model interface{}) string {
	switch m := model.(type) {
	case *Models.Company:
		return m.DocID
	case *Models.Driver:
		return m.DocID
	case *Models.Vehicle:
		return m.DocID
	case *Models.Service:
		return m.DocID
	case *Models.Trip:
		return m.DocID
	case *Models.Expense:
		return m.DocID
	case *Models.Contract:
		return m.DocID
	case *Models.User:
		return m.DocID
	default:
		return ""
	}
}
