package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/mongodb"
	"github.com/gofiber/template/html"
	"github.com/joho/godotenv"

	"travel-webapp/config"
	"travel-webapp/database"
	"travel-webapp/handlers"
	"travel-webapp/middleware"
	"travel-webapp/router"
	"travel-webapp/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if _, err := config.GetSecret("SESSION_SECRET"); err != nil {
		log.Println("SESSION_SECRET not set; tokens are signed with an insecure default")
	}

	db, err := database.DBInit()
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	if err := database.EnsureIndexes(db); err != nil {
		log.Fatalf("database index setup failed: %v", err)
	}
	log.Println("Connected to MongoDB")

	users := database.NewUserRepository(db)
	destinations := database.NewDestinationRepository(db)
	bookings := database.NewBookingRepository(db)
	reviews := database.NewReviewRepository(db)

	authService := service.NewAuthService(users)
	catalogService := service.NewCatalogService(destinations)
	bookingService := service.NewBookingService(bookings)
	reviewService := service.NewReviewService(reviews)

	sessionStore := session.New(session.Config{
		Storage: mongodb.New(mongodb.Config{
			ConnectionURI: config.Get("MONGODB_URI", config.DefaultMongoURI),
			Database:      config.DatabaseName,
			Collection:    "sessions",
		}),
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
	})
	middleware.Setup(sessionStore)

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layout",
		PassLocalsToViews: true,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.Get("CORS_ORIGIN", "*"),
		AllowCredentials: true,
	}))
	app.Static("/", "./static")
	app.Use(middleware.Locals(authService))

	router.SetupRoutes(app,
		handlers.NewPageHandler(bookingService, reviewService),
		handlers.NewUserHandler(authService),
		handlers.NewDestinationHandler(catalogService),
		handlers.NewBookingHandler(bookingService),
		handlers.NewReviewHandler(reviewService, catalogService),
		handlers.NewAPIHandler(authService, catalogService, bookingService, reviewService),
	)

	port := config.Get("PORT", config.DefaultPort)
	go func() {
		log.Printf("Server running on port %v", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	if err := app.ShutdownWithTimeout(15 * time.Second); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
