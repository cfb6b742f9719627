package handlers

import (
	"errors"
	"log"

	apperrors "travel-webapp/errors"
	"travel-webapp/middleware"
	"travel-webapp/service"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserHandler struct {
	auth *service.AuthService
}

func NewUserHandler(auth *service.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

func (h *UserHandler) Signup(c *fiber.Ctx) error {
	username := c.FormValue("username")
	email := c.FormValue("email")
	password := c.FormValue("password")

	_, err := h.auth.Register(c.Context(), username, email, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			middleware.FlashError(c, "Email already exists!")
		} else {
			if !apperrors.IsValidation(err) {
				log.Printf("signup error: %v", err)
			}
			middleware.FlashError(c, "Error creating account")
		}
		return c.Redirect("/signup")
	}

	middleware.FlashSuccess(c, "Account created successfully! Please log in.")
	return c.Redirect("/login")
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.auth.VerifyCredentials(c.Context(), email, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			middleware.FlashError(c, "Invalid email or password")
		} else {
			log.Printf("login error: %v", err)
			middleware.FlashError(c, "Error logging in")
		}
		return c.Redirect("/login")
	}

	if err := middleware.SetSessionUser(c, user.Id); err != nil {
		log.Printf("login session error: %v", err)
		middleware.FlashError(c, "Error logging in")
		return c.Redirect("/login")
	}

	middleware.FlashSuccess(c, "Login successful!")
	return c.Redirect("/home")
}

func (h *UserHandler) Logout(c *fiber.Ctx) error {
	if err := middleware.DestroySession(c); err != nil {
		log.Printf("logout error: %v", err)
	}
	return c.Redirect("/")
}

func (h *UserHandler) Profile(c *fiber.Ctx) error {
	userId := c.Locals("userId").(primitive.ObjectID)

	user, err := h.auth.GetUser(c.Context(), userId)
	if err != nil {
		log.Printf("profile error: %v", err)
		return c.Redirect("/home")
	}

	return c.Render("dashboard", fiber.Map{"user": user})
}
