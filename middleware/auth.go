package middleware

import (
	"travel-webapp/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	jwtware "github.com/gofiber/jwt/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var store *session.Store

const sessionUserKey = "userId"

// Setup hands the middleware package the process-wide session store.
func Setup(s *session.Store) {
	store = s
}

// CurrentUserId reads the authenticated user's id out of the session cookie.
func CurrentUserId(c *fiber.Ctx) (primitive.ObjectID, bool) {
	sess, err := store.Get(c)
	if err != nil {
		return primitive.NilObjectID, false
	}
	hex, ok := sess.Get(sessionUserKey).(string)
	if !ok || hex == "" {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// SetSessionUser marks the session as authenticated for the given user.
func SetSessionUser(c *fiber.Ctx, id primitive.ObjectID) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessionUserKey, id.Hex())
	return sess.Save()
}

// DestroySession drops the whole session, logging the user out.
func DestroySession(c *fiber.Ctx) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// RequireAuth lets authenticated requests through with their user id in
// c.Locals("userId") and sends everyone else to the login page.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := CurrentUserId(c)
		if !ok {
			return c.Redirect("/login")
		}
		c.Locals("userId", id)
		return c.Next()
	}
}

// RequireAnon sends already-authenticated requests to the home page.
func RequireAnon() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := CurrentUserId(c); ok {
			return c.Redirect("/home")
		}
		return c.Next()
	}
}

// Authorize protects the JSON API group with a bearer token.
func Authorize() fiber.Handler {
	secret := config.Get("SESSION_SECRET", "supersecretkey")

	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(secret),
		ErrorHandler: jwtError,
		ContextKey:   "identity",
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}
