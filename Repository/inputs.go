package Repository

// Request payloads accepted at the API boundary. Handlers parse and
// validate these before anything reaches the stores, so malformed JSON
// never leaks into the lifecycle logic.

type CompanyInput struct {
	Name    string `json:"name" validate:"required"`
	CNPJ    string `json:"cnpj"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	Notes   string `json:"notes"`
}

type DriverInput struct {
	Name   string `json:"name" validate:"required"`
	CPF    string `json:"cpf"`
	CNH    string `json:"cnh"`
	Phone  string `json:"phone"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type VehicleInput struct {
	Model    string `json:"model" validate:"required"`
	Plate    string `json:"plate"`
	Year     string `json:"year"`
	Color    string `json:"color"`
	Notes    string `json:"notes"`
	PhotoURL string `json:"photo_url"`
}

type ServiceInput struct {
	CompanyID    string `json:"company_id" validate:"required"`
	DriverID     string `json:"driver_id" validate:"required"`
	VehicleID    string `json:"vehicle_id" validate:"required"`
	CustomerName string `json:"customer_name"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	ScheduledAt  string `json:"scheduled_at"`
	Description  string `json:"description"`
	// Status is only honored on staff edits; creation always starts
	// pending.
	Status string `json:"status" validate:"omitempty,oneof=pending accepted completed"`
}

// CompletionInput is the trip payload the driver submits through the
// public link when finishing a service.
type CompletionInput struct {
	Date          string  `json:"date"`
	Description   string  `json:"description"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	KmStart       float64 `json:"km_start"`
	KmEnd         float64 `json:"km_end" validate:"omitempty,gtefield=KmStart"`
	Observations  string  `json:"observations"`
	UserName      string  `json:"user_name"`
	SignatureURL  string  `json:"signature_url" validate:"required"`
	FinishedAt    string  `json:"finished_at"`
	StoppedHours  float64 `json:"stopped_hours"`
	StoppedReason string  `json:"stopped_reason"`
}

type ExpenseInput struct {
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Type        string  `json:"type" validate:"omitempty,oneof=income expense"`
}

type ContractInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	FileURL     string `json:"file_url"`
	Date        string `json:"date"`
}

type CollaboratorInput struct {
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=6"`
	Name        string   `json:"name" validate:"required"`
	Permissions []string `json:"permissions"`
}
