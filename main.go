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

	"homestay-backend/config"
	"homestay-backend/controllers"
	"homestay-backend/routes"
	"homestay-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	site := config.LoadSite()
	log.Printf("✅ Site configured: %s (WhatsApp %s)", site.Name, site.WhatsAppNumber)

	st, err := config.Connect()
	if err != nil {
		log.Fatalf("❌ Store connect failed: %v", err)
	}
	log.Println("✅ Record store ready")

	notifier := services.NewWhatsAppNotifier(site.WhatsAppNumber)

	// Initialize services
	roomService := services.NewRoomService(st)
	bookingService := services.NewBookingService(st, site, notifier)
	reviewService := services.NewReviewService(st)
	userService := services.NewUserService(st)
	contactService := services.NewContactService(site, notifier)
	employeeService := services.NewEmployeeService(st)
	noteService := services.NewNoteService(st)
	notificationService := services.NewNotificationService(st)
	paymentService := services.NewPaymentService(st)

	// Initialize controllers
	siteController := controllers.NewSiteController(site)
	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(bookingService)
	reviewController := controllers.NewReviewController(reviewService)
	contactController := controllers.NewContactController(contactService)
	authController := controllers.NewAuthController(userService)
	userController := controllers.NewUserController(userService)
	employeeController := controllers.NewEmployeeController(employeeService)
	noteController := controllers.NewNoteController(noteService)
	notificationController := controllers.NewNotificationController(notificationService)
	paymentController := controllers.NewPaymentController(paymentService)

	// Build router
	router := routes.SetupRouter(
		siteController,
		roomController,
		bookingController,
		reviewController,
		contactController,
		authController,
		userController,
		employeeController,
		noteController,
		notificationController,
		paymentController,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
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
