package Controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"Sanle/Repository"
)

type ServiceController struct {
	Repo *Repository.Coordinator
}

func NewServiceController(repo *Repository.Coordinator) *ServiceController {
	return &ServiceController{Repo: repo}
}

func (sc *ServiceController) GetServices(ctx *fiber.Ctx) error {
	services, err := sc.Repo.ListServices(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve services"})
	}
	return ctx.JSON(services)
}

func (sc *ServiceController) CreateService(ctx *fiber.Ctx) error {
	var input Repository.ServiceInput
	if err := parseAndValidate(ctx, &input); err != nil {
		return err
	}

	view, err := sc.Repo.CreateService(ctx.UserContext(), input)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create service"})
	}
	return ctx.JSON(fiber.Map{
		"id":        view.ID,
		"token":     view.Token,
		"os_number": view.OSNumber,
	})
}

// UpdateService is the staff override. It writes whatever fields were
// sent, state machine rules do not apply here.
func (sc *ServiceController) UpdateService(ctx *fiber.Ctx) error {
	var input Repository.ServiceInput
	if err := parseAndValidate(ctx, &input); err != nil {
		return err
	}

	if err := sc.Repo.UpdateService(ctx.UserContext(), ctx.Params("id"), input); err != nil {
		if errors.Is(err, Repository.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update service"})
	}
	return ctx.JSON(fiber.Map{"success": true})
}

func (sc *ServiceController) DeleteService(ctx *fiber.Ctx) error {
	if err := sc.Repo.DeleteService(ctx.UserContext(), ctx.Params("id")); err != nil {
		if errors.Is(err, Repository.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete service"})
	}
	return ctx.JSON(fiber.Map{"success": true})
}
