package Controllers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseAndValidate decodes the request body into dest and runs the
// validation tags. Malformed payloads are rejected here, before any
// store is touched.
func parseAndValidate(ctx *fiber.Ctx, dest interface{}) error {
	if err := ctx.BodyParser(dest); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(dest); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return nil
}

// saveUpload stores an uploaded file under uploadDir and returns its
// public URL path. Image uploads are normalized to a bounded width so a
// phone photo does not land as a 12 MB original.
func saveUpload(file *multipart.FileHeader, uploadDir string) (string, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	dst := filepath.Join(uploadDir, name)

	if isImage(file.Filename) {
		src, err := file.Open()
		if err != nil {
			return "", err
		}
		defer src.Close()

		img, err := imaging.Decode(src, imaging.AutoOrientation(true))
		if err != nil {
			return "", err
		}
		if img.Bounds().Dx() > 1280 {
			img = imaging.Resize(img, 1280, 0, imaging.Lanczos)
		}
		if err := imaging.Save(img, dst); err != nil {
			return "", err
		}
	} else {
		src, err := file.Open()
		if err != nil {
			return "", err
		}
		defer src.Close()

		out, err := os.Create(dst)
		if err != nil {
			return "", err
		}
		defer out.Close()
		if _, err := out.ReadFrom(src); err != nil {
			return "", err
		}
	}

	return "/uploads/" + name, nil
}

func isImage(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff":
		return true
	default:
		return false
	}
}
