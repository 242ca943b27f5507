package Controllers

import (
	"errors"
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"Sanle/Repository"
)

type CollaboratorController struct {
	Repo *Repository.Coordinator
	Auth *auth.Client
}

func NewCollaboratorController(repo *Repository.Coordinator, authClient *auth.Client) *CollaboratorController {
	return &CollaboratorController{Repo: repo, Auth: authClient}
}

func (cc *CollaboratorController) GetCollaborators(ctx *fiber.Ctx) error {
	collaborators, err := cc.Repo.ListCollaborators(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve collaborators"})
	}
	return ctx.JSON(collaborators)
}

// CreateCollaborator provisions the Firebase Auth account first so the
// stored document can be keyed by its UID. When the auth service is
// unreachable the account is created locally only and can still sign in
// through the legacy token path.
func (cc *CollaboratorController) CreateCollaborator(ctx *fiber.Ctx) error {
	var input Repository.CollaboratorInput
	if err := parseAndValidate(ctx, &input); err != nil {
		return err
	}

	var uid string
	if cc.Auth != nil {
		params := (&auth.UserToCreate{}).
			Email(input.Email).
			Password(input.Password).
			DisplayName(input.Name)
		record, err := cc.Auth.CreateUser(ctx.UserContext(), params)
		if err != nil {
			log.Printf("Firebase user creation failed for %s: %v", input.Email, err)
		} else {
			uid = record.UID
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create collaborator"})
	}

	id, err := cc.Repo.CreateCollaborator(ctx.UserContext(), input, uid, hash)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create collaborator"})
	}
	return ctx.JSON(fiber.Map{"id": id})
}

func (cc *CollaboratorController) DeleteCollaborator(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := cc.Repo.DeleteCollaborator(ctx.UserContext(), id); err != nil {
		if errors.Is(err, Repository.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Collaborator not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete collaborator"})
	}

	if cc.Auth != nil {
		if err := cc.Auth.DeleteUser(ctx.UserContext(), id); err != nil {
			log.Printf("Firebase user deletion failed for %s: %v", id, err)
		}
	}
	return ctx.JSON(fiber.Map{"success": true})
}
