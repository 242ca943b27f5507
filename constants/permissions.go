package constants

// Page/feature permission identifiers checked against a collaborator's
// permission set. Admins bypass these entirely.
const (
	PermDashboard     = "dashboard"
	PermCompanies     = "companies"
	PermDrivers       = "drivers"
	PermVehicles      = "vehicles"
	PermServices      = "services"
	PermTrips         = "trips"
	PermFinancial     = "financial"
	PermContracts     = "contracts"
	PermCollaborators = "collaborators"

	// PermAll marks an unrestricted permission set.
	PermAll = "all"
)
