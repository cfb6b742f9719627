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

type BookingHandler struct {
	bookings *service.BookingService
}

func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

func (h *BookingHandler) Create(c *fiber.Ctx) error {
	userId := c.Locals("userId").(primitive.ObjectID)

	input := service.CreateBookingInput{
		DestinationId: c.FormValue("destinationId"),
		Checkin:       c.FormValue("checkin"),
		Checkout:      c.FormValue("checkout"),
		GuestName:     c.FormValue("name"),
	}

	_, err := h.bookings.Create(c.Context(), userId, input)
	if err != nil {
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			middleware.FlashError(c, "Booking validation failed: "+verr.Reason)
		} else {
			log.Printf("booking create error: %v", err)
			middleware.FlashError(c, "Error creating booking")
		}
		return redirectBack(c, "/destinations")
	}

	middleware.FlashSuccess(c, "Booking created successfully!")
	return c.Redirect("/bookings")
}

func (h *BookingHandler) List(c *fiber.Ctx) error {
	userId := c.Locals("userId").(primitive.ObjectID)

	bookings, err := h.bookings.ListForUser(c.Context(), userId)
	if err != nil {
		log.Printf("bookings list error: %v", err)
		middleware.FlashError(c, "Error fetching bookings")
		return c.Redirect("/home")
	}

	return c.Render("view_bookings", fiber.Map{"Bookings": bookings})
}

func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	userId := c.Locals("userId").(primitive.ObjectID)

	_, err := h.bookings.Cancel(c.Context(), userId, c.Params("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			middleware.FlashError(c, "Booking not found")
		} else {
			log.Printf("booking cancel error: %v", err)
			middleware.FlashError(c, "Error cancelling booking")
		}
		return c.Redirect("/bookings")
	}

	middleware.FlashSuccess(c, "Booking cancelled successfully")
	return c.Redirect("/bookings")
}
