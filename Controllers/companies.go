package Controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"Sanle/Repository"
)

type CompanyController struct {
	Repo *Repository.Coordinator
}

func NewCompanyController(repo *Repository.Coordinator) *CompanyController {
	return &CompanyController{Repo: repo}
}

func (cc *CompanyController) GetCompanies(ctx *fiber.Ctx) error {
	companies, err := cc.Repo.ListCompanies(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve companies"})
	}
	return ctx.JSON(companies)
}

// CreateCompany registers a company and its auto-generated contract.
func (cc *CompanyController) CreateCompany(ctx *fiber.Ctx) error {
	var input Repository.CompanyInput
	if err := parseAndValidate(ctx, &input); err != nil {
		return err
	}

	id, err := cc.Repo.CreateCompany(ctx.UserContext(), input)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create company"})
	}
	return ctx.JSON(fiber.Map{"id": id})
}

func (cc *CompanyController) UpdateCompany(ctx *fiber.Ctx) error {
	var input Repository.CompanyInput
	if err := parseAndValidate(ctx, &input); err != nil {
		return err
	}

	if err := cc.Repo.UpdateCompany(ctx.UserContext(), ctx.Params("id"), input); err != nil {
		if errors.Is(err, Repository.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update company"})
	}
	return ctx.JSON(fiber.Map{"success": true})
}

func (cc *CompanyController) DeleteCompany(ctx *fiber.Ctx) error {
	if err := cc.Repo.DeleteCompany(ctx.UserContext(), ctx.Params("id")); err != nil {
		if errors.Is(err, Repository.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete company"})
	}
	return ctx.JSON(fiber.Map{"success": true})
}
