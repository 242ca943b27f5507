package Controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"Sanle/Repository"
)

type DriverController struct {
	Repo *Repository.Coordinator
}

func NewDriverController(repo *Repository.Coordinator) *DriverController {
	return &DriverController{Repo: repo}
}

func (dc *DriverController) GetDrivers(ctx *fiber.Ctx) error {
	drivers, err := dc.Repo.ListDrivers(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve drivers"})
	}
	return ctx.JSON(drivers)
}

func (dc *DriverController) CreateDriver(ctx *fiber.Ctx) error {
	var input Repository.DriverInput
	if err := parseAndValidate(ctx, &input); err != nil {
		return err
	}

	id, err := dc.Repo.CreateDriver(ctx.UserContext(), input)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create driver"})
	}
	return ctx.JSON(fiber.Map{"id": id})
}

func (dc *DriverController) UpdateDriver(ctx *fiber.Ctx) error {
	var input Repository.DriverInput
	if err := parseAndValidate(ctx, &input); err != nil {
		return err
	}

	if err := dc.Repo.UpdateDriver(ctx.UserContext(), ctx.Params("id"), input); err != nil {
		if errors.Is(err, Repository.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Driver not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update driver"})
	}
	return ctx.JSON(fiber.Map{"success": true})
}

func (dc *DriverController) DeleteDriver(ctx *fiber.Ctx) error {
	if err := dc.Repo.DeleteDriver(ctx.UserContext(), ctx.Params("id")); err != nil {
		if errors.Is(err, Repository.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Driver not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete driver"})
	}
	return ctx.JSON(fiber.Map{"success": true})
}
