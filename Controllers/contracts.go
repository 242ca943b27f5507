package Controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"Sanle/Repository"
)

type ContractController struct {
	Repo      *Repository.Coordinator
	UploadDir string
}

func NewContractController(repo *Repository.Coordinator, uploadDir string) *ContractController {
	return &ContractController{Repo: repo, UploadDir: uploadDir}
}

func (cc *ContractController) GetContracts(ctx *fiber.Ctx) error {
	contracts, err := cc.Repo.ListContracts(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve contracts"})
	}
	return ctx.JSON(contracts)
}

func (cc *ContractController) CreateContract(ctx *fiber.Ctx) error {
	var input Repository.ContractInput
	if err := parseAndValidate(ctx, &input); err != nil {
		return err
	}

	if file, err := ctx.FormFile("file"); err == nil && file != nil {
		url, upErr := saveUpload(file, cc.UploadDir)
		if upErr != nil {
			log.Printf("Contract file upload failed: %v", upErr)
		} else {
			input.FileURL = url
		}
	}

	id, err := cc.Repo.CreateContract(ctx.UserContext(), input)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create contract"})
	}
	return ctx.JSON(fiber.Map{"id": id, "file_url": input.FileURL})
}

func (cc *ContractController) DeleteContract(ctx *fiber.Ctx) error {
	if err := cc.Repo.DeleteContract(ctx.UserContext(), ctx.Params("id")); err != nil {
		if errors.Is(err, Repository.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Contract not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete contract"})
	}
	return ctx.JSON(fiber.Map{"success": true})
}
