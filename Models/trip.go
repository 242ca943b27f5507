package Models

import "gorm.io/gorm"

// Trip is the completion record of a Service. Company, driver and vehicle
// identifiers and display names are copied onto the row at completion time
// so historical reports survive later edits or deletes of the referenced
// entities.
type Trip struct {
	gorm.Model
	DocID         string  `json:"doc_id" gorm:"index"`
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
	PDFURL        string  `json:"pdf_url"`
}

func (Trip) TableName() string {
	return "trips"
}

type Expense struct {
	gorm.Model
	DocID       string  `json:"doc_id" gorm:"index"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Type        string  `json:"type" gorm:"default:expense"` // "income" or "expense"
}

type Contract struct {
	gorm.Model
	DocID       string `json:"doc_id" gorm:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FileURL     string `json:"file_url"`
	Date        string `json:"date"`
}
