package Controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"Sanle/Repository"
)

type VehicleController struct {
	Repo      *Repository.Coordinator
	UploadDir string
}

func NewVehicleController(repo *Repository.Coordinator, uploadDir string) *VehicleController {
	return &VehicleController{Repo: repo, UploadDir: uploadDir}
}

func (vc *VehicleController) GetVehicles(ctx *fiber.Ctx) error {
	vehicles, err := vc.Repo.ListVehicles(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve vehicles"})
	}
	return ctx.JSON(vehicles)
}

// CreateVehicle accepts multipart form data with an optional photo. The
// record is written only after the upload landed on disk; an upload
// failure loses the photo, not the vehicle.
func (vc *VehicleController) CreateVehicle(ctx *fiber.Ctx) error {
	var input Repository.VehicleInput
	if err := parseAndValidate(ctx, &input); err != nil {
		return err
	}

	if file, err := ctx.FormFile("photo"); err == nil && file != nil {
		url, upErr := saveUpload(file, vc.UploadDir)
		if upErr != nil {
			log.Printf("Vehicle photo upload failed: %v", upErr)
		} else {
			input.PhotoURL = url
		}
	}

	id, err := vc.Repo.CreateVehicle(ctx.UserContext(), input)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create vehicle"})
	}
	return ctx.JSON(fiber.Map{"id": id, "photo_url": input.PhotoURL})
}

func (vc *VehicleController) UpdateVehicle(ctx *fiber.Ctx) error {
	var input Repository.VehicleInput
	if err := parseAndValidate(ctx, &input); err != nil {
		return err
	}

	if file, err := ctx.FormFile("photo"); err == nil && file != nil {
		url, upErr := saveUpload(file, vc.UploadDir)
		if upErr == nil {
			input.PhotoURL = url
		}
	}

	if err := vc.Repo.UpdateVehicle(ctx.UserContext(), ctx.Params("id"), input); err != nil {
		if errors.Is(err, Repository.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update vehicle"})
	}
	return ctx.JSON(fiber.Map{"success": true})
}

func (vc *VehicleController) DeleteVehicle(ctx *fiber.Ctx) error {
	if err := vc.Repo.DeleteVehicle(ctx.UserContext(), ctx.Params("id")); err != nil {
		if errors.Is(err, Repository.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete vehicle"})
	}
	return ctx.JSON(fiber.Map{"success": true})
}
