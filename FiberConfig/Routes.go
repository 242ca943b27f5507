package FiberConfig

import (
	"fmt"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"

	"Sanle/Controllers"
	"Sanle/Repository"
	"Sanle/config"
	"Sanle/constants"
	"Sanle/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, repo *Repository.Coordinator, authClient *auth.Client, cfg config.Config) {
	// Initialize handlers
	authController := Controllers.NewAuthController(db, []byte(cfg.JWTSecret))
	dashboardController := Controllers.NewDashboardController(repo)
	companyController := Controllers.NewCompanyController(repo)
	driverController := Controllers.NewDriverController(repo)
	vehicleController := Controllers.NewVehicleController(repo, cfg.UploadDir)
	serviceController := Controllers.NewServiceController(repo)
	publicController := Controllers.NewPublicController(repo)
	tripController := Controllers.NewTripController(repo)
	expenseController := Controllers.NewExpenseController(repo)
	contractController := Controllers.NewContractController(repo, cfg.UploadDir)
	collaboratorController := Controllers.NewCollaboratorController(repo, authClient)

	// API group
	api := app.Group("/api")

	api.Post("/login", authController.Login)
	api.Get("/me", middleware.Verify(""), authController.Me)

	// Public token routes, no authentication
	public := api.Group("/public")
	public.Get("/service/:token", publicController.GetService)
	public.Post("/service/:token/accept", publicController.AcceptService)
	public.Post("/service/:token/complete", publicController.CompleteService)
	public.Post("/service/:token/signature", publicController.UploadSignature(cfg.UploadDir))

	api.Get("/dashboard", middleware.Verify(constants.PermDashboard), dashboardController.Stats)

	companies := api.Group("/companies", middleware.Verify(constants.PermCompanies))
	companies.Get("/", companyController.GetCompanies)
	companies.Post("/", companyController.CreateCompany)
	companies.Put("/:id", companyController.UpdateCompany)
	companies.Delete("/:id", companyController.DeleteCompany)

	drivers := api.Group("/drivers", middleware.Verify(constants.PermDrivers))
	drivers.Get("/", driverController.GetDrivers)
	drivers.Post("/", driverController.CreateDriver)
	drivers.Put("/:id", driverController.UpdateDriver)
	drivers.Delete("/:id", driverController.DeleteDriver)

	vehicles := api.Group("/vehicles", middleware.Verify(constants.PermVehicles))
	vehicles.Get("/", vehicleController.GetVehicles)
	vehicles.Post("/", vehicleController.CreateVehicle)
	vehicles.Put("/:id", vehicleController.UpdateVehicle)
	vehicles.Delete("/:id", vehicleController.DeleteVehicle)

	services := api.Group("/services", middleware.Verify(constants.PermServices))
	services.Get("/", serviceController.GetServices)
	services.Post("/", serviceController.CreateService)
	services.Put("/:id", serviceController.UpdateService)
	services.Delete("/:id", serviceController.DeleteService)

	trips := api.Group("/trips", middleware.Verify(constants.PermTrips))
	trips.Get("/", tripController.GetTrips)
	trips.Get("/export", tripController.ExportTrips)

	expenses := api.Group("/expenses", middleware.Verify(constants.PermFinancial))
	expenses.Get("/", expenseController.GetExpenses)
	expenses.Post("/", expenseController.CreateExpense)
	expenses.Delete("/:id", expenseController.DeleteExpense)

	contracts := api.Group("/contracts", middleware.Verify(constants.PermContracts))
	contracts.Get("/", contractController.GetContracts)
	contracts.Post("/", contractController.CreateContract)
	contracts.Delete("/:id", contractController.DeleteContract)

	collaborators := api.Group("/collaborators", middleware.Verify(constants.PermCollaborators), middleware.AdminOnly())
	collaborators.Get("/", collaboratorController.GetCollaborators)
	collaborators.Post("/", collaboratorController.CreateCollaborator)
	collaborators.Delete("/:id", collaboratorController.DeleteCollaborator)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

func NewApp(db *gorm.DB, repo *Repository.Coordinator, authClient *auth.Client, cfg config.Config) *fiber.App {
	fmt.Println("Server Up...")
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*", // Allow all origins
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           300,
	}))

	SetupRoutes(app, db, repo, authClient, cfg)

	// Serve uploaded signatures and vehicle photos
	app.Static("/uploads", cfg.UploadDir, fiber.Static{Compress: true, CacheDuration: time.Second * 10})

	return app
}
