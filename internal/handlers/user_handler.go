package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kavinraj03/PlaceHub/internal/httperr"
	"github.com/kavinraj03/PlaceHub/internal/services"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"users": users})
}

type signupRequest struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Signup handles multipart signup: name, email, password fields plus an
// image file.
func (h *UserHandler) Signup(c *fiber.Ctx) error {
	req := signupRequest{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}
	if err := checkRequest(req); err != nil {
		return err
	}

	image, err := formImage(c, "image")
	if err != nil {
		return err
	}
	if image == nil {
		return httperr.Validation("Invalid inputs passed, please check your data")
	}

	result, err := h.users.Signup(c.Context(), services.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Image:    *image,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.Validation("Invalid inputs passed, please check your data")
	}
	if err := checkRequest(req); err != nil {
		return err
	}

	result, err := h.users.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
