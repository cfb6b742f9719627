package handlers

import (
	"errors"
	"log"

	apperrors "travel-webapp/errors"
	"travel-webapp/middleware"
	"travel-webapp/service"

	"github.com/gofiber/fiber/v2"
)

type DestinationHandler struct {
	catalog *service.CatalogService
}

func NewDestinationHandler(catalog *service.CatalogService) *DestinationHandler {
	return &DestinationHandler{catalog: catalog}
}

func (h *DestinationHandler) List(c *fiber.Ctx) error {
	search := c.Query("search")

	destinations, err := h.catalog.List(c.Context(), search)
	if err != nil {
		log.Printf("destinations list error: %v", err)
		middleware.FlashError(c, "Error fetching destinations")
		return c.Redirect("/home")
	}

	return c.Render("index", fiber.Map{
		"Destinations": destinations,
		"Query":        search,
	})
}

func (h *DestinationHandler) Detail(c *fiber.Ctx) error {
	destination, err := h.catalog.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			middleware.FlashError(c, "Destination not found")
		} else {
			log.Printf("destination detail error: %v", err)
			middleware.FlashError(c, "Error fetching destination")
		}
		return c.Redirect("/home")
	}

	return c.Render("booking", fiber.Map{"Destination": destination})
}
