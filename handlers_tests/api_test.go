package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"travel-webapp/handlers"
	"travel-webapp/model"
	"travel-webapp/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type apiEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

func (env *testEnv) postJSON(t *testing.T, route, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest("POST", route, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	res, err := env.app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func (env *testEnv) getWithToken(t *testing.T, route, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest("GET", route, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := env.app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func decodeEnvelope(t *testing.T, res *http.Response) apiEnvelope {
	t.Helper()
	var envelope apiEnvelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&envelope))
	return envelope
}

// apiLogin exchanges credentials for a bearer token.
func (env *testEnv) apiLogin(t *testing.T, email, password string) string {
	t.Helper()
	res := env.postJSON(t, "/api/login", `{"email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	envelope := decodeEnvelope(t, res)
	require.Equal(t, "success", envelope.Status)
	require.NotEmpty(t, envelope.Data)
	return envelope.Data
}

func TestAPILogin(t *testing.T) {
	t.Setenv("SESSION_SECRET", "api-test-secret")
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice", "alice@example.com", "s3cret")

	tests := []struct {
		description  string
		body         string
		expectedCode int
	}{
		{"wrong password is rejected", `{"email":"alice@example.com","password":"wrong"}`, 401},
		{"unknown email is rejected", `{"email":"nobody@example.com","password":"s3cret"}`, 401},
		{"malformed body is a bad request", `not-json`, 400},
		{"valid credentials mint a token", `{"email":"alice@example.com","password":"s3cret"}`, 200},
	}

	for _, test := range tests {
		res := env.postJSON(t, "/api/login", test.body)
		assert.Equalf(t, test.expectedCode, res.StatusCode, test.description)
	}

	// the minted token is signed with the configured secret and names the user
	token := env.apiLogin(t, "alice@example.com", "s3cret")
	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("api-test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, alice.Id.Hex(), claims["sub"])
	assert.Equal(t, "alice", claims["username"])
}

func TestAPIReadsRequireToken(t *testing.T) {
	t.Setenv("SESSION_SECRET", "api-test-secret")
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice", "alice@example.com", "s3cret")
	env.destinations.items = append(env.destinations.items, model.Destination{
		Id: primitive.NewObjectID(), Name: "Lake View", Location: "Geneva",
	})
	env.bookings.items = append(env.bookings.items, &model.Booking{
		Id: primitive.NewObjectID(), UserId: alice.Id, Status: model.BookingStatusPending,
	})

	res := env.getWithToken(t, "/api/bookings", "")
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Missing or malformed JWT", decodeEnvelope(t, res).Message)

	res = env.getWithToken(t, "/api/bookings", "not-a-real-token")
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	token := env.apiLogin(t, "alice@example.com", "s3cret")

	res = env.getWithToken(t, "/api/bookings", token)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	var bookings []model.BookingWithDestination
	require.NoError(t, json.NewDecoder(res.Body).Decode(&bookings))
	require.Len(t, bookings, 1)
	assert.Equal(t, alice.Id, bookings[0].UserId)

	res = env.getWithToken(t, "/api/destinations", token)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	var destinations []model.Destination
	require.NoError(t, json.NewDecoder(res.Body).Decode(&destinations))
	require.Len(t, destinations, 1)
	assert.Equal(t, "Lake View", destinations[0].Name)

	res = env.getWithToken(t, "/api/reviews/user", token)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

// A read handler reached without the token middleware answers 401 instead of
// panicking on the missing identity local.
func TestAPIReadsRejectMissingIdentity(t *testing.T) {
	env := newTestEnv(t)

	app := fiber.New()
	api := handlers.NewAPIHandler(
		service.NewAuthService(env.users),
		service.NewCatalogService(env.destinations),
		service.NewBookingService(env.bookings),
		service.NewReviewService(env.reviews),
	)
	app.Get("/bookings", api.Bookings)

	req, err := http.NewRequest("GET", "/bookings", nil)
	require.NoError(t, err)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}
