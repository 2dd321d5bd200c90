package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kavinraj03/PlaceHub/internal/httperr"
	"github.com/kavinraj03/PlaceHub/internal/storage"
)

// UploadHandler serves the standalone image upload endpoint. Clients upload
// first, then reference the returned URL when creating a place.
type UploadHandler struct {
	images storage.Uploader
}

func NewUploadHandler(images storage.Uploader) *UploadHandler {
	return &UploadHandler{images: images}
}

func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	image, err := formImage(c, "image")
	if err != nil {
		return err
	}
	if image == nil {
		return httperr.UnsupportedMedia("Could not read image, unsupported media file")
	}

	url, _, err := h.images.Upload(c.Context(), image.Data, image.ContentType)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
