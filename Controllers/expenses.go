package Controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"Sanle/Repository"
)

type ExpenseController struct {
	Repo *Repository.Coordinator
}

func NewExpenseController(repo *Repository.Coordinator) *ExpenseController {
	return &ExpenseController{Repo: repo}
}

func (ec *ExpenseController) GetExpenses(ctx *fiber.Ctx) error {
	expenses, err := ec.Repo.ListExpenses(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve expenses"})
	}
	return ctx.JSON(expenses)
}

func (ec *ExpenseController) CreateExpense(ctx *fiber.Ctx) error {
	var input Repository.ExpenseInput
	if err := parseAndValidate(ctx, &input); err != nil {
		return err
	}

	id, err := ec.Repo.CreateExpense(ctx.UserContext(), input)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create expense"})
	}
	return ctx.JSON(fiber.Map{"id": id})
}

func (ec *ExpenseController) DeleteExpense(ctx *fiber.Ctx) error {
	if err := ec.Repo.DeleteExpense(ctx.UserContext(), ctx.Params("id")); err != nil {
		if errors.Is(err, Repository.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expense not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete expense"})
	}
	return ctx.JSON(fiber.Map{"success": true})
}
