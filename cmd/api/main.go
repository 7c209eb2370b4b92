package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tablebook/internal/config"
	"tablebook/internal/database"
	"tablebook/internal/middleware"
	"tablebook/internal/modules/analytics"
	"tablebook/internal/modules/auth"
	"tablebook/internal/modules/booking"
	"tablebook/internal/modules/live"
	"tablebook/internal/modules/restaurant"
	jwtsvc "tablebook/internal/pkg/jwt"
	"tablebook/internal/pkg/mailer"
	"tablebook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	for _, m := range []interface{ Migrate() error }{userRepo, restaurantRepo, bookingRepo} {
		if err := m.Migrate(); err != nil {
			log.Fatal(err)
		}
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL())

	var mail booking.Mailer
	if cfg.BrevoAPIKey != "" && cfg.EmailSender != "" {
		mail = mailer.NewBrevo(cfg.BrevoAPIKey, cfg.EmailSender, cfg.EmailSenderName)
	} else {
		log.Println("Email service not configured; status emails disabled")
	}

	hub := live.NewHub()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	restaurantService := restaurant.NewService(restaurantRepo)
	restaurantHandler := restaurant.NewHandler(restaurantService)

	bookingService := booking.NewService(bookingRepo, userRepo, restaurantRepo, hub, mail)
	bookingHandler := booking.NewHandler(bookingService)

	analyticsService := analytics.NewService(bookingRepo, restaurantRepo)
	analyticsHandler := analytics.NewHandler(analyticsService)

	wsHandler := live.NewWSHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.CORS())

	wsHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// customer-authenticated
		customer := v1.Group("/")
		customer.Use(middleware.Auth(j), middleware.RequireRole("customer"))
		{
			bookingHandler.RegisterCustomerRoutes(customer)
		}

		// owner-authenticated
		owner := v1.Group("/")
		owner.Use(middleware.Auth(j), middleware.RequireRole("owner"))
		{
			restaurantHandler.RegisterRoutes(owner)
			bookingHandler.RegisterOwnerRoutes(owner)
			analyticsHandler.RegisterRoutes(owner)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
