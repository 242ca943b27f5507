package Repository

import (
	"encoding/json"
	"strconv"

	"Sanle/DocStore"
	"Sanle/Models"
)

// Views are the JSON shapes the API returns. Both stores funnel into the
// same view types: document-store records arrive as loosely typed maps,
// relational rows as GORM models. The public id of a mirrored row is its
// document id so references stay stable whichever store answered.

type CompanyView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	CNPJ    string `json:"cnpj"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	Notes   string `json:"notes"`
}

type DriverView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	CPF    string `json:"cpf"`
	CNH    string `json:"cnh"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

type VehicleView struct {
	ID       string `json:"id"`
	Model    string `json:"model"`
	Plate    string `json:"plate"`
	Year     string `json:"year"`
	Color    string `json:"color"`
	Notes    string `json:"notes"`
	PhotoURL string `json:"photo_url"`
}

type ServiceView struct {
	ID           string `json:"id"`
	CompanyID    string `json:"company_id"`
	DriverID     string `json:"driver_id"`
	VehicleID    string `json:"vehicle_id"`
	CustomerName string `json:"customer_name"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	ScheduledAt  string `json:"scheduled_at"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	Token        string `json:"token"`
	OSNumber     int    `json:"os_number"`
	TripID       string `json:"trip_id,omitempty"`

	// Denormalized display fields attached by the enrichment join.
	CompanyName  string `json:"company_name,omitempty"`
	DriverName   string `json:"driver_name,omitempty"`
	DriverPhone  string `json:"driver_phone,omitempty"`
	VehicleModel string `json:"vehicle_model,omitempty"`
	VehiclePlate string `json:"vehicle_plate,omitempty"`
}

type TripView struct {
	ID            string  `json:"id"`
	ServiceID     string  `json:"service_id"`
	OSNumber      int     `json:"os_number"`
	CompanyID     string  `json:"company_id"`
	CompanyName   string  `json:"company_name"`
	DriverID      string  `json:"driver_id"`
	DriverName    string  `json:"driver_name"`
	VehicleID     string  `json:"vehicle_id"`
	VehicleModel  string  `json:"vehicle_model"`
	Plate         string  `json:"plate"`
	Date          string  `json:"date"`
	Description   string  `json:"description"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	KmStart       float64 `json:"km_start"`
	KmEnd         float64 `json:"km_end"`
	Observations  string  `json:"observations"`
	UserName      string  `json:"user_name"`
	SignatureURL  string  `json:"signature_url"`
	FinishedAt    string  `json:"finished_at"`
	StoppedHours  float64 `json:"stopped_hours"`
	StoppedReason string  `json:"stopped_reason"`
	PDFURL        string  `json:"pdf_url,omitempty"`
	ServiceDesc   string  `json:"service_desc,omitempty"`
}

type ExpenseView struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
}

type ContractView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FileURL     string `json:"file_url"`
	Date        string `json:"date"`
}

type CollaboratorView struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

type DashboardStats struct {
	Trips          int     `json:"trips"`
	Revenue        float64 `json:"revenue"`
	Expenses       float64 `json:"expenses"`
	Drivers        int     `json:"drivers"`
	Companies      int     `json:"companies"`
	ActiveServices int     `json:"active_services"`
}

// publicID picks the externally visible id for a mirrored row.
func publicID(docID string, rowID uint) string {
	if docID != "" {
		return docID
	}
	return strconv.FormatUint(uint64(rowID), 10)
}

// Loose coercion for document fields: the store is schema-less and older
// clients wrote numbers as strings.

func docString(d DocStore.Document, key string) string {
	switch v := d[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return ""
	}
}

func docFloat(d DocStore.Document, key string) float64 {
	switch v := d[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}

func docInt(d DocStore.Document, key string) int {
	return int(docFloat(d, key))
}

func docStrings(d DocStore.Document, key string) []string {
	raw, ok := d[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func companyFromDoc(d DocStore.Document) CompanyView {
	return CompanyView{
		ID:      d.ID(),
		Name:    docString(d, "name"),
		CNPJ:    docString(d, "cnpj"),
		Address: docString(d, "address"),
		Contact: docString(d, "contact"),
		Notes:   docString(d, "notes"),
	}
}

func companyFromRow(m Models.Company) CompanyView {
	return CompanyView{
		ID:      publicID(m.DocID, m.ID),
		Name:    m.Name,
		CNPJ:    m.CNPJ,
		Address: m.Address,
		Contact: m.Contact,
		Notes:   m.Notes,
	}
}

func driverFromDoc(d DocStore.Document) DriverView {
	return DriverView{
		ID:     d.ID(),
		Name:   docString(d, "name"),
		CPF:    docString(d, "cpf"),
		CNH:    docString(d, "cnh"),
		Phone:  docString(d, "phone"),
		Status: docString(d, "status"),
	}
}

func driverFromRow(m Models.Driver) DriverView {
	return DriverView{
		ID:     publicID(m.DocID, m.ID),
		Name:   m.Name,
		CPF:    m.CPF,
		CNH:    m.CNH,
		Phone:  m.Phone,
		Status: m.Status,
	}
}

func vehicleFromDoc(d DocStore.Document) VehicleView {
	return VehicleView{
		ID:       d.ID(),
		Model:    docString(d, "model"),
		Plate:    docString(d, "plate"),
		Year:     docString(d, "year"),
		Color:    docString(d, "color"),
		Notes:    docString(d, "notes"),
		PhotoURL: docString(d, "photo_url"),
	}
}

func vehicleFromRow(m Models.Vehicle) VehicleView {
	return VehicleView{
		ID:       publicID(m.DocID, m.ID),
		Model:    m.CarModel,
		Plate:    m.Plate,
		Year:     m.Year,
		Color:    m.Color,
		Notes:    m.Notes,
		PhotoURL: m.PhotoURL,
	}
}

func serviceFromDoc(d DocStore.Document) ServiceView {
	return ServiceView{
		ID:           d.ID(),
		CompanyID:    docString(d, "company_id"),
		DriverID:     docString(d, "driver_id"),
		VehicleID:    docString(d, "vehicle_id"),
		CustomerName: docString(d, "customer_name"),
		Origin:       docString(d, "origin"),
		Destination:  docString(d, "destination"),
		ScheduledAt:  docString(d, "scheduled_at"),
		Description:  docString(d, "description"),
		Status:       docString(d, "status"),
		Token:        docString(d, "token"),
		OSNumber:     docInt(d, "os_number"),
		TripID:       docString(d, "trip_id"),
	}
}

func serviceFromRow(m Models.Service) ServiceView {
	return ServiceView{
		ID:           publicID(m.DocID, m.ID),
		CompanyID:    m.CompanyID,
		DriverID:     m.DriverID,
		VehicleID:    m.VehicleID,
		CustomerName: m.CustomerName,
		Origin:       m.Origin,
		Destination:  m.Destination,
		ScheduledAt:  m.ScheduledAt,
		Description:  m.Description,
		Status:       m.Status,
		Token:        m.Token,
		OSNumber:     m.OSNumber,
		TripID:       m.TripID,
	}
}

func tripFromDoc(d DocStore.Document) TripView {
	return TripView{
		ID:            d.ID(),
		ServiceID:     docString(d, "service_id"),
		OSNumber:      docInt(d, "os_number"),
		CompanyID:     docString(d, "company_id"),
		CompanyName:   docString(d, "company_name"),
		DriverID:      docString(d, "driver_id"),
		DriverName:    docString(d, "driver_name"),
		VehicleID:     docString(d, "vehicle_id"),
		VehicleModel:  docString(d, "vehicle_model"),
		Plate:         docString(d, "plate"),
		Date:          docString(d, "date"),
		Description:   docString(d, "description"),
		Origin:        docString(d, "origin"),
		Destination:   docString(d, "destination"),
		KmStart:       docFloat(d, "km_start"),
		KmEnd:         docFloat(d, "km_end"),
		Observations:  docString(d, "observations"),
		UserName:      docString(d, "user_name"),
		SignatureURL:  docString(d, "signature_url"),
		FinishedAt:    docString(d, "finished_at"),
		StoppedHours:  docFloat(d, "stopped_hours"),
		StoppedReason: docString(d, "stopped_reason"),
		PDFURL:        docString(d, "pdf_url"),
	}
}

func tripFromRow(m Models.Trip) TripView {
	return TripView{
		ID:            publicID(m.DocID, m.ID),
		ServiceID:     m.ServiceID,
		OSNumber:      m.OSNumber,
		CompanyID:     m.CompanyID,
		CompanyName:   m.CompanyName,
		DriverID:      m.DriverID,
		DriverName:    m.DriverName,
		VehicleID:     m.VehicleID,
		VehicleModel:  m.VehicleModel,
		Plate:         m.Plate,
		Date:          m.Date,
		Description:   m.Description,
		Origin:        m.Origin,
		Destination:   m.Destination,
		KmStart:       m.KmStart,
		KmEnd:         m.KmEnd,
		Observations:  m.Observations,
		UserName:      m.UserName,
		SignatureURL:  m.SignatureURL,
		FinishedAt:    m.FinishedAt,
		StoppedHours:  m.StoppedHours,
		StoppedReason: m.StoppedReason,
		PDFURL:        m.PDFURL,
	}
}

func expenseFromDoc(d DocStore.Document) ExpenseView {
	return ExpenseView{
		ID:          d.ID(),
		Description: docString(d, "description"),
		Amount:      docFloat(d, "amount"),
		Date:        docString(d, "date"),
		Category:    docString(d, "category"),
		Type:        docString(d, "type"),
	}
}

func expenseFromRow(m Models.Expense) ExpenseView {
	return ExpenseView{
		ID:          publicID(m.DocID, m.ID),
		Description: m.Description,
		Amount:      m.Amount,
		Date:        m.Date,
		Category:    m.Category,
		Type:        m.Type,
	}
}

func contractFromDoc(d DocStore.Document) ContractView {
	return ContractView{
		ID:          d.ID(),
		Title:       docString(d, "title"),
		Description: docString(d, "description"),
		FileURL:     docString(d, "file_url"),
		Date:        docString(d, "date"),
	}
}

func contractFromRow(m Models.Contract) ContractView {
	return ContractView{
		ID:          publicID(m.DocID, m.ID),
		Title:       m.Title,
		Description: m.Description,
		FileURL:     m.FileURL,
		Date:        m.Date,
	}
}

func collaboratorFromDoc(d DocStore.Document) CollaboratorView {
	return CollaboratorView{
		ID:          d.ID(),
		Email:       docString(d, "email"),
		Name:        docString(d, "name"),
		Role:        docString(d, "role"),
		Permissions: docStrings(d, "permissions"),
	}
}

func collaboratorFromRow(m Models.User) CollaboratorView {
	return CollaboratorView{
		ID:          publicID(m.DocID, m.ID),
		Email:       m.Email,
		Name:        m.Name,
		Role:        m.Role,
		Permissions: m.PermissionList(),
	}
}
