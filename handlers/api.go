package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"travel-webapp/config"
	apperrors "travel-webapp/errors"
	"travel-webapp/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// APIHandler serves the JSON mounts of the app. Page routes authenticate with
// the session cookie; these endpoints take a bearer token instead.
type APIHandler struct {
	auth     *service.AuthService
	catalog  *service.CatalogService
	bookings *service.BookingService
	reviews  *service.ReviewService
}

func NewAPIHandler(auth *service.AuthService, catalog *service.CatalogService, bookings *service.BookingService, reviews *service.ReviewService) *APIHandler {
	return &APIHandler{auth: auth, catalog: catalog, bookings: bookings, reviews: reviews}
}

func (h *APIHandler) Login(c *fiber.Ctx) error {
	type Credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	creds := new(Credentials)
	if err := c.BodyParser(creds); err != nil {
		return apperrors.RaiseBadRequestError(c, fmt.Sprintf("cannot parse credentials: %v", err))
	}

	user, err := h.auth.VerifyCredentials(c.Context(), creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return apperrors.RaiseError(c, fiber.StatusUnauthorized, "invalid email or password", "")
		}
		return apperrors.RaiseInternalServerError(c, fmt.Sprintf("login error: %v", err))
	}

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = user.Id.Hex()
	claims["username"] = user.Username
	claims["exp"] = time.Now().Add(time.Hour * 8).Unix()

	secret := config.Get("SESSION_SECRET", "supersecretkey")
	t, err := token.SignedString([]byte(secret))
	if err != nil {
		return apperrors.RaiseInternalServerError(c, fmt.Sprintf("cannot sign token: %v", err))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Success login", "data": t})
}

func (h *APIHandler) Destinations(c *fiber.Ctx) error {
	destinations, err := h.catalog.List(c.Context(), c.Query("search"))
	if err != nil {
		return apperrors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	destinationsJson, jsonErr := json.MarshalIndent(destinations, "", "	")
	if jsonErr != nil {
		return apperrors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(destinationsJson))
}

func (h *APIHandler) Bookings(c *fiber.Ctx) error {
	userId, err := apiUserId(c)
	if err != nil {
		return apperrors.RaisePermissionsError(c, "token carries no valid user id")
	}

	bookings, err := h.bookings.ListForUser(c.Context(), userId)
	if err != nil {
		return apperrors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	bookingsJson, jsonErr := json.MarshalIndent(bookings, "", "	")
	if jsonErr != nil {
		return apperrors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(bookingsJson))
}

func (h *APIHandler) UserReviews(c *fiber.Ctx) error {
	userId, err := apiUserId(c)
	if err != nil {
		return apperrors.RaisePermissionsError(c, "token carries no valid user id")
	}

	reviews, err := h.reviews.ListForUser(c.Context(), userId)
	if err != nil {
		return apperrors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
	}

	reviewsJson, jsonErr := json.MarshalIndent(reviews, "", "	")
	if jsonErr != nil {
		return apperrors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(reviewsJson))
}

func apiUserId(c *fiber.Ctx) (primitive.ObjectID, error) {
	token, ok := c.Locals("identity").(*jwt.Token)
	if !ok {
		return primitive.NilObjectID, errors.New("no bearer token in request context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected token claims format")
	}
	sub, _ := claims["sub"].(string)
	return primitive.ObjectIDFromHex(sub)
}
