package handler

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"sopclassify/internal/repository"
)

// UploadSop stores an uploaded SOP .txt document (multipart field: file).
// uploadDir is only used to report the stored path back to the caller.
func UploadSop(repo repository.SopRepository, uploadDir string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "no file uploaded")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		content, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		doc, err := repo.Store(c.UserContext(), fh.Filename, content)
		if err != nil {
			if errors.Is(err, repository.ErrInvalidFileType) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_FILE_TYPE", "only .txt files are supported for SOP upload")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		return c.JSON(fiber.Map{
			"success":    true,
			"fileName":   doc.Name,
			"filePath":   filepath.Join(uploadDir, doc.Name),
			"uploadedAt": doc.UploadedAt,
		})
	}
}

// ListSop returns all stored SOP documents, newest first.
func ListSop(repo repository.SopRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		files, err := repo.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"sopFiles": files})
	}
}
