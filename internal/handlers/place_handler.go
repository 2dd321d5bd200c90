package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kavinraj03/PlaceHub/internal/httperr"
	"github.com/kavinraj03/PlaceHub/internal/middleware"
	"github.com/kavinraj03/PlaceHub/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PlaceHandler struct {
	places *services.PlaceService
}

func NewPlaceHandler(places *services.PlaceService) *PlaceHandler {
	return &PlaceHandler{places: places}
}

func paramID(c *fiber.Ctx, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return primitive.NilObjectID, httperr.Validation("Invalid id format")
	}
	return id, nil
}

func (h *PlaceHandler) GetByID(c *fiber.Ctx) error {
	placeID, err := paramID(c, "pid")
	if err != nil {
		return err
	}

	place, err := h.places.GetByID(c.Context(), placeID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"place": place})
}

func (h *PlaceHandler) GetByUser(c *fiber.Ctx) error {
	userID, err := paramID(c, "uid")
	if err != nil {
		return err
	}

	places, err := h.places.GetByUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"places": places})
}

type createPlaceRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required,min=5"`
	Address     string `json:"address" validate:"required"`
	Image       string `json:"image"`
}

// Create accepts either a JSON body carrying an already-uploaded image URL
// or a multipart form with an image file.
func (h *PlaceHandler) Create(c *fiber.Ctx) error {
	requester, err := middleware.AuthedUser(c)
	if err != nil {
		return err
	}

	var req createPlaceRequest
	var imageFile *services.ImageUpload

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		req = createPlaceRequest{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
			Address:     c.FormValue("address"),
			Image:       c.FormValue("image"),
		}
		if imageFile, err = formImage(c, "image"); err != nil {
			return err
		}
	} else if err := c.BodyParser(&req); err != nil {
		return httperr.Validation("Invalid inputs passed, please check your data")
	}

	if err := checkRequest(req); err != nil {
		return err
	}
	if imageFile == nil && req.Image == "" {
		return httperr.Validation("Invalid inputs passed, please check your data")
	}

	place, err := h.places.Create(c.Context(), services.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		ImageURL:    req.Image,
		ImageFile:   imageFile,
	}, requester)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"place": place})
}

type updatePlaceRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required,min=5"`
}

func (h *PlaceHandler) Update(c *fiber.Ctx) error {
	requester, err := middleware.AuthedUser(c)
	if err != nil {
		return err
	}

	placeID, err := paramID(c, "pid")
	if err != nil {
		return err
	}

	var req updatePlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.Validation("Invalid inputs passed, please check your data")
	}
	if err := checkRequest(req); err != nil {
		return err
	}

	place, err := h.places.Update(c.Context(), placeID, services.UpdatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
	}, requester)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"place": place})
}

func (h *PlaceHandler) Delete(c *fiber.Ctx) error {
	requester, err := middleware.AuthedUser(c)
	if err != nil {
		return err
	}

	placeID, err := paramID(c, "pid")
	if err != nil {
		return err
	}

	if err := h.places.Delete(c.Context(), placeID, requester); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Deleted place"})
}
