package Models

import "gorm.io/gorm"

const (
	ServicePending   = "pending"
	ServiceAccepted  = "accepted"
	ServiceCompleted = "completed"
)

// Service is a scheduled transport job. The token is the sole credential
// for the public driver link and never changes once assigned. Entity
// references are stored as strings: document ids when the record came
// through the document store, numeric row ids otherwise.
type Service struct {
	gorm.Model
	DocID        string `json:"doc_id" gorm:"index"`
	CompanyID    string `json:"company_id"`
	DriverID     string `json:"driver_id"`
	VehicleID    string `json:"vehicle_id"`
	CustomerName string `json:"customer_name"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	ScheduledAt  string `json:"scheduled_at"`
	Description  string `json:"description"`
	Status       string `json:"status" gorm:"default:pending"`
	Token        string `json:"token" gorm:"size:64"`
	OSNumber     int    `json:"os_number"`
	TripID       string `json:"trip_id"`
}

func (Service) TableName() string {
	return "services"
}

// IsValidStatus reports whether s is one of the three lifecycle states.
func IsValidStatus(s string) bool {
	switch s {
	case ServicePending, ServiceAccepted, ServiceCompleted:
		return true
	default:
		return false
	}
}
