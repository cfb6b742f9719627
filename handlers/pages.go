package handlers

import (
	"log"

	"travel-webapp/service"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PageHandler struct {
	bookings *service.BookingService
	reviews  *service.ReviewService
}

func NewPageHandler(bookings *service.BookingService, reviews *service.ReviewService) *PageHandler {
	return &PageHandler{bookings: bookings, reviews: reviews}
}

func (h *PageHandler) Welcome(c *fiber.Ctx) error {
	return c.Render("welcome", fiber.Map{})
}

// Home forwards to the public destination listing, keeping the query string
// so searches survive the hop.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	target := "/destinations"
	if qs := string(c.Request().URI().QueryString()); qs != "" {
		target += "?" + qs
	}
	return c.Redirect(target)
}

func (h *PageHandler) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{})
}

func (h *PageHandler) SignupPage(c *fiber.Ctx) error {
	return c.Render("signup", fiber.Map{})
}

// Dashboard shows the user's bookings and reviews side by side.
func (h *PageHandler) Dashboard(c *fiber.Ctx) error {
	userId := c.Locals("userId").(primitive.ObjectID)

	bookings, err := h.bookings.ListForUser(c.Context(), userId)
	if err != nil {
		log.Printf("dashboard error: %v", err)
		return c.Redirect("/home")
	}

	reviews, err := h.reviews.ListForUser(c.Context(), userId)
	if err != nil {
		log.Printf("dashboard error: %v", err)
		return c.Redirect("/home")
	}

	return c.Render("dashboard", fiber.Map{
		"Bookings": bookings,
		"Reviews":  reviews,
	})
}

func redirectBack(c *fiber.Ctx, fallback string) error {
	if ref := c.Get(fiber.HeaderReferer); ref != "" {
		return c.Redirect(ref)
	}
	return c.Redirect(fallback)
}
