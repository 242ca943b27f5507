package Controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"Sanle/Repository"
)

// PublicController serves the token links sent to drivers. No
// authentication: possession of the token is the credential.
type PublicController struct {
	Repo *Repository.Coordinator
}

func NewPublicController(repo *Repository.Coordinator) *PublicController {
	return &PublicController{Repo: repo}
}

func (pc *PublicController) GetService(ctx *fiber.Ctx) error {
	view, err := pc.Repo.GetServiceByToken(ctx.UserContext(), ctx.Params("token"))
	if err != nil {
		if errors.Is(err, Repository.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Serviço não encontrado"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve service"})
	}
	return ctx.JSON(view)
}

func (pc *PublicController) AcceptService(ctx *fiber.Ctx) error {
	status, err := pc.Repo.AcceptByToken(ctx.UserContext(), ctx.Params("token"))
	if err != nil {
		if errors.Is(err, Repository.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Serviço não encontrado"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to accept service"})
	}
	return ctx.JSON(fiber.Map{"success": true, "status": status})
}

func (pc *PublicController) CompleteService(ctx *fiber.Ctx) error {
	var input Repository.CompletionInput
	if err := parseAndValidate(ctx, &input); err != nil {
		return err
	}

	trip, err := pc.Repo.CompleteByToken(ctx.UserContext(), ctx.Params("token"), input)
	if err != nil {
		switch {
		case errors.Is(err, Repository.ErrNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Serviço não encontrado"})
		case errors.Is(err, Repository.ErrSignatureRequired):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Assinatura é obrigatória"})
		case errors.Is(err, Repository.ErrAlreadyCompleted):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Serviço já foi concluído"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to complete service"})
	}
	return ctx.JSON(fiber.Map{"success": true, "status": "completed", "trip_id": trip.ID})
}

// UploadSignature receives the canvas image drawn on the public
// completion page and returns its URL for the complete call. The token
// is the only credential here, so it must resolve to a live order before
// anything touches disk, and only image files are accepted.
func (pc *PublicController) UploadSignature(uploadDir string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if _, err := pc.Repo.GetServiceByToken(ctx.UserContext(), ctx.Params("token")); err != nil {
			if errors.Is(err, Repository.ErrNotFound) {
				return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Serviço não encontrado"})
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve service"})
		}

		file, err := ctx.FormFile("signature")
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Signature file is required"})
		}
		if !isImage(file.Filename) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Signature must be an image"})
		}

		url, err := saveUpload(file, uploadDir)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save signature"})
		}
		return ctx.JSON(fiber.Map{"url": url})
	}
}
