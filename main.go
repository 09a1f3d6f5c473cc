package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"itinerary-backend/config"
	"itinerary-backend/controllers"
	"itinerary-backend/routes"
	"itinerary-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// One-shot superuser bootstrap, then exit
	if len(os.Args) > 1 && os.Args[1] == "bootstrap" {
		runBootstrap()
		return
	}

	// Required token secret (fatal if missing: there is no safe default)
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot issue or verify admin tokens.")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Services
	customerService := services.NewCustomerService(db)
	hotelService := services.NewHotelService(db)
	flightService := services.NewFlightService(db)
	itineraryService := services.NewItineraryService(db)
	extrasService := services.NewExtrasService(db)
	pageService := services.NewPageService(db)
	authService := services.NewAuthService(db)
	auditService := services.NewAuditService(db)

	// Controllers
	pageController := controllers.NewPageController(customerService, pageService)
	authController := controllers.NewAuthController(authService, []byte(jwtSecret))
	customerController := controllers.NewCustomerController(customerService, auditService)
	hotelController := controllers.NewHotelController(hotelService, auditService)
	flightController := controllers.NewFlightController(flightService, auditService)
	itineraryController := controllers.NewItineraryController(itineraryService, auditService)
	extrasController := controllers.NewExtrasController(extrasService, auditService)
	auditController := controllers.NewAuditController(auditService)

	router := routes.SetupRouter(
		pageController,
		authController,
		customerController,
		hotelController,
		flightController,
		itineraryController,
		extrasController,
		auditController,
		[]byte(jwtSecret),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

// runBootstrap ensures a superuser exists using credentials from the
// environment. Missing credentials are fatal: there are no built-in
// defaults on purpose.
func runBootstrap() {
	creds, err := config.BootstrapCredentialsFromEnv()
	if err != nil {
		log.Fatalf("❌ Bootstrap refused: %v", err)
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}

	if err := config.EnsureSuperuser(config.DB, creds); err != nil {
		log.Fatalf("❌ Bootstrap failed: %v", err)
	}
	log.Println("✅ Bootstrap complete")
}
