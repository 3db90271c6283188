package main

import (
	"log"
	"net/http"
	"os"

	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"campcare/internal/handlers"
	authMiddleware "campcare/internal/middleware"
	"campcare/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize Firebase
	credPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if credPath == "" {
		credPath = "./firebase-service-account.json"
	}

	var authClient *auth.Client
	var messagingClient *messaging.Client
	firebaseApp, err := services.InitFirebase(credPath)
	if err != nil {
		log.Printf("Warning: Firebase initialization failed: %v", err)
		log.Println("Auth and push features will not work until valid credentials are provided")
	} else {
		if authClient, err = services.AuthClient(firebaseApp); err != nil {
			log.Printf("Warning: Firebase auth client failed: %v", err)
		}
		if messagingClient, err = services.MessagingClient(firebaseApp); err != nil {
			log.Printf("Warning: Firebase messaging client failed: %v", err)
		}
	}

	// Initialize Database
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := services.InitDB(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := services.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Initialize Redis (optional; camp listing falls back to direct queries)
	var cache *services.RedisCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cache, err = services.NewRedisCache(redisURL)
		if err != nil {
			log.Printf("Warning: Redis initialization failed: %v", err)
			cache = nil
		}
	}

	// Payment gateway and services
	gateway := services.NewRazorpayService()
	paymentService := services.NewPaymentService(db, gateway)

	var sender services.PushSender
	if messagingClient != nil {
		sender = services.NewFCMSender(messagingClient)
	}
	notificationService := services.NewNotificationService(db, sender)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, "x-client-info", "apikey"},
	}))

	// Initialize handlers
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	notificationHandler := handlers.NewNotificationHandler(db, notificationService)
	campHandler := handlers.NewCampHandler(db, cache)
	partnerHandler := handlers.NewPartnerHandler(db)

	// Public routes
	e.GET("/api/camps", campHandler.ListCamps)
	e.GET("/api/camps/:id", campHandler.GetCamp)
	e.GET("/api/camps/:id/sponsorships", campHandler.ListSponsorships)
	e.GET("/api/business-requests", partnerHandler.ListBusinessRequests)
	e.POST("/api/business-requests", partnerHandler.CreateBusinessRequest)
	e.GET("/api/proposals", partnerHandler.ListProposals)
	e.POST("/api/proposals", partnerHandler.CreateProposal)

	// Service endpoint, invoked by backend jobs rather than end users
	e.POST("/api/notifications/send", notificationHandler.SendNotification)

	// Protected routes
	protected := e.Group("/api")
	protected.Use(authMiddleware.RequireAuth(authClient))
	protected.POST("/payments/create-order", paymentHandler.CreateOrder)
	protected.POST("/payments/verify", paymentHandler.VerifyPayment)
	protected.POST("/devices", notificationHandler.RegisterDevice)
	protected.POST("/camps", campHandler.CreateCamp)

	// Admin moderation routes
	admin := e.Group("/api/admin")
	admin.Use(authMiddleware.RequireAuth(authClient), authMiddleware.RequireAdmin())
	admin.PATCH("/camps/:id/status", campHandler.UpdateCampStatus)
	admin.PATCH("/business-requests/:id/status", partnerHandler.UpdateBusinessRequestStatus)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
