package handlers

import (
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/kavinraj03/PlaceHub/internal/httperr"
	"github.com/kavinraj03/PlaceHub/internal/services"
)

var validate = validator.New()

// checkRequest runs struct validation on a request DTO and converts any
// failure into the 422 the clients expect.
func checkRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return httperr.Validation("Invalid inputs passed, please check your data")
	}
	return nil
}

// formImage reads a multipart image field into memory. Returns nil without
// error when the field is absent so callers can decide whether it is
// required.
func formImage(c *fiber.Ctx, field string) (*services.ImageUpload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, httperr.Validation("Could not read uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, httperr.Validation("Could not read uploaded image")
	}

	return &services.ImageUpload{
		Data:        data,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}, nil
}
