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

type ReviewHandler struct {
	reviews *service.ReviewService
	catalog *service.CatalogService
}

func NewReviewHandler(reviews *service.ReviewService, catalog *service.CatalogService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, catalog: catalog}
}

// PickDestination renders the list of destinations a review can be left for.
func (h *ReviewHandler) PickDestination(c *fiber.Ctx) error {
	destinations, err := h.catalog.List(c.Context(), "")
	if err != nil {
		log.Printf("review picker error: %v", err)
		middleware.FlashError(c, "Unable to load destinations")
		return c.Redirect("/home")
	}

	return c.Render("review_list", fiber.Map{"Destinations": destinations})
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	userId := c.Locals("userId").(primitive.ObjectID)

	input := service.CreateReviewInput{
		DestinationId: c.FormValue("destinationId"),
		Rating:        c.FormValue("rating"),
		Comment:       c.FormValue("comment"),
	}

	_, err := h.reviews.Create(c.Context(), userId, input)
	if err != nil {
		if !apperrors.IsValidation(err) {
			log.Printf("review create error: %v", err)
		}
		middleware.FlashError(c, "Error submitting review")
		return redirectBack(c, "/reviews")
	}

	middleware.FlashSuccess(c, "Review submitted successfully!")
	return redirectBack(c, "/reviews")
}

// ForDestination shows a destination's reviews together with the review form.
func (h *ReviewHandler) ForDestination(c *fiber.Ctx) error {
	destination, err := h.catalog.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			middleware.FlashError(c, "Destination not found")
		} else {
			log.Printf("reviews fetch error: %v", err)
			middleware.FlashError(c, "Error fetching reviews")
		}
		return c.Redirect("/reviews")
	}

	reviews, err := h.reviews.ListForDestination(c.Context(), c.Params("id"))
	if err != nil {
		log.Printf("reviews fetch error: %v", err)
		middleware.FlashError(c, "Error fetching reviews")
		return c.Redirect("/reviews")
	}

	return c.Render("review", fiber.Map{
		"Destination": destination,
		"Reviews":     reviews,
	})
}

func (h *ReviewHandler) ForUser(c *fiber.Ctx) error {
	userId := c.Locals("userId").(primitive.ObjectID)

	reviews, err := h.reviews.ListForUser(c.Context(), userId)
	if err != nil {
		log.Printf("user reviews error: %v", err)
		middleware.FlashError(c, "Error fetching reviews")
		return c.Redirect("/home")
	}

	return c.Render("view_reviews", fiber.Map{"Reviews": reviews})
}
