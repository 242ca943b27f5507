package Controllers

import (
	"github.com/gofiber/fiber/v2"

	"Sanle/Repository"
)

type DashboardController struct {
	Repo *Repository.Coordinator
}

func NewDashboardController(repo *Repository.Coordinator) *DashboardController {
	return &DashboardController{Repo: repo}
}

func (d *DashboardController) Stats(ctx *fiber.Ctx) error {
	stats, err := d.Repo.Dashboard(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute dashboard"})
	}
	return ctx.JSON(stats)
}
