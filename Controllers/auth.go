package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"Sanle/Models"
	"Sanle/middleware"
)

type AuthController struct {
	DB     *gorm.DB
	Secret []byte
}

func NewAuthController(db *gorm.DB, secret []byte) *AuthController {
	return &AuthController{DB: db, Secret: secret}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login checks credentials against the local user table and issues a
// signed token. Cloud-provider logins happen on the client; this is the
// legacy path and the only one that works offline.
func (a *AuthController) Login(ctx *fiber.Ctx) error {
	var input LoginRequest
	if err := parseAndValidate(ctx, &input); err != nil {
		return err
	}

	var user Models.User
	if err := a.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Credenciais inválidas"})
	}
	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(input.Password)); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Credenciais inválidas"})
	}

	userID := user.DocID
	if userID == "" {
		userID = strconv.FormatUint(uint64(user.ID), 10)
	}

	claims := middleware.LegacyClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
		},
		Email:       user.Email,
		Name:        user.Name,
		Role:        user.Role,
		Permissions: user.PermissionList(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.Secret)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not issue token"})
	}

	return ctx.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":          userID,
			"email":       user.Email,
			"name":        user.Name,
			"role":        user.Role,
			"permissions": user.PermissionList(),
		},
	})
}

// Me returns the authenticated account. Prefers the local row (it carries
// the authoritative permission set); identities that only exist in the
// cloud provider are echoed from the verified token.
func (a *AuthController) Me(ctx *fiber.Ctx) error {
	identity := middleware.CurrentUser(ctx)
	if identity == nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var user Models.User
	err := a.DB.Where("doc_id = ?", identity.ID).First(&user).Error
	if err != nil {
		if n, convErr := strconv.ParseUint(identity.ID, 10, 64); convErr == nil {
			err = a.DB.First(&user, n).Error
		}
	}
	if err != nil {
		return ctx.JSON(fiber.Map{
			"id":          identity.ID,
			"email":       identity.Email,
			"name":        identity.Name,
			"role":        identity.Role,
			"permissions": identity.Permissions,
		})
	}

	return ctx.JSON(fiber.Map{
		"id":          identity.ID,
		"email":       user.Email,
		"name":        user.Name,
		"role":        user.Role,
		"permissions": user.PermissionList(),
	})
}
