package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sopclassify/internal/classify"
	"sopclassify/internal/llm"
	"sopclassify/internal/repository"
	"sopclassify/internal/service"
)

type classifyRequest struct {
	Text string `json:"text"`
}

// ClassifyText classifies a pasted feature description against the
// latest uploaded SOP.
func ClassifyText(svc service.ClassificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req classifyRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		if req.Text == "" {
			return writeError(c, fiber.StatusBadRequest, "TEXT_REQUIRED", "no text provided")
		}

		result, err := svc.ClassifyText(c.UserContext(), req.Text)
		if err != nil {
			return classificationError(c, err)
		}
		return c.JSON(result)
	}
}

// ClassifyFile classifies an uploaded feature description text file
// (multipart field: file).
func ClassifyFile(svc service.ClassificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "no file provided")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		result, err := svc.ClassifyFile(c.UserContext(), f, fh.Filename, ct)
		if err != nil {
			return classificationError(c, err)
		}
		return c.JSON(result)
	}
}

// classificationError maps pipeline failures to HTTP statuses: caller
// input problems are 400, model/parse failures 500.
func classificationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrNoSop):
		return writeError(c, fiber.StatusBadRequest, "NO_SOP_AVAILABLE", "no SOP .txt file found, please upload an SOP .txt file first")
	case errors.Is(err, service.ErrUnsupportedMediaType):
		return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_MEDIA_TYPE", "invalid file type, only TXT files are allowed")
	case errors.Is(err, service.ErrNotUTF8):
		return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_MEDIA_TYPE", "file content is not valid UTF-8 text")
	case errors.Is(err, llm.ErrModelUnavailable):
		return writeError(c, fiber.StatusInternalServerError, "MODEL_UNAVAILABLE", "failed to classify feature")
	case errors.Is(err, llm.ErrEmptyResponse):
		return writeError(c, fiber.StatusInternalServerError, "EMPTY_MODEL_RESPONSE", "failed to classify feature")
	case errors.Is(err, classify.ErrNoJSON):
		return writeError(c, fiber.StatusInternalServerError, "NO_JSON_FOUND", "failed to classify feature")
	case errors.Is(err, classify.ErrMalformedJSON):
		return writeError(c, fiber.StatusInternalServerError, "MALFORMED_JSON", "failed to classify feature")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
