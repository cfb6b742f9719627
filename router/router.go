package router

import (
	"travel-webapp/handlers"
	"travel-webapp/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(
	app *fiber.App,
	pages *handlers.PageHandler,
	users *handlers.UserHandler,
	destinations *handlers.DestinationHandler,
	bookings *handlers.BookingHandler,
	reviews *handlers.ReviewHandler,
	api *handlers.APIHandler,
) {
	root := app.Group("/", logger.New())

	root.Get("/", pages.Welcome)
	root.Get("/home", pages.Home)
	root.Get("/login", middleware.RequireAnon(), pages.LoginPage)
	root.Get("/signup", middleware.RequireAnon(), pages.SignupPage)
	root.Get("/dashboard", middleware.RequireAuth(), pages.Dashboard)

	user := root.Group("/users")
	user.Post("/signup", middleware.RequireAnon(), users.Signup)
	user.Post("/login", users.Login)
	user.Get("/logout", users.Logout)
	user.Get("/profile", middleware.RequireAuth(), users.Profile)

	destination := root.Group("/destinations")
	destination.Get("/", destinations.List)
	destination.Get("/:id", destinations.Detail)

	booking := root.Group("/bookings", middleware.RequireAuth())
	booking.Post("/", bookings.Create)
	booking.Get("/", bookings.List)
	booking.Post("/:id/cancel", bookings.Cancel)

	review := root.Group("/reviews")
	review.Get("/", reviews.PickDestination)
	review.Post("/", middleware.RequireAuth(), reviews.Create)
	review.Get("/user", middleware.RequireAuth(), reviews.ForUser)
	review.Get("/destination/:id", reviews.ForDestination)

	apiGroup := root.Group("/api")
	apiGroup.Post("/login", api.Login)
	apiGroup.Get("/destinations", middleware.Authorize(), api.Destinations)
	apiGroup.Get("/bookings", middleware.Authorize(), api.Bookings)
	apiGroup.Get("/reviews/user", middleware.Authorize(), api.UserReviews)
}
