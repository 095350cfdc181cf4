package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/stripe/stripe-go/v82"

	"okbike/internal/api"
	"okbike/internal/auth"
	"okbike/internal/repository"
	"okbike/internal/service"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	sweepRepo := repository.NewSweepRepository(db)
	adminAuthRepo := repository.NewAdminAuthRepository(db)

	senderSvc := service.NewSenderService()
	stripeSvc := service.NewStripeService()
	bookingSvc := service.NewBookingService(bookingRepo, userRepo, stripeSvc, senderSvc)
	invoiceSvc := service.NewInvoiceService(bookingRepo)
	documentSvc := service.NewDocumentService(userRepo)
	catalogSvc := service.NewCatalogService(catalogRepo)
	sweepSvc := service.NewSweepService(sweepRepo)
	adminAuthSvc := service.NewAdminAuthService(adminAuthRepo)

	bookingHandler := api.NewBookingHandler(bookingSvc, invoiceSvc)
	documentHandler := api.NewDocumentHandler(documentSvc)
	catalogHandler := api.NewCatalogHandler(catalogSvc)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)
	stripeWebhookHandler := api.NewStripeWebhookHandler(os.Getenv("STRIPE_WEBHOOK_SECRET"), bookingSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")
	r.HandleFunc("/webhook/stripe", stripeWebhookHandler.HandleWebhook).Methods("POST")

	// Booking lifecycle (protected)
	booking := r.PathPrefix("/booking").Subrouter()
	booking.Use(auth.AdminAuthMiddleware)
	booking.HandleFunc("/all", bookingHandler.ListBookings).Methods("GET")
	booking.HandleFunc("/combined/{id:[0-9]+}", bookingHandler.GetCombinedBooking).Methods("GET")
	booking.HandleFunc("/cancel/{id:[0-9]+}", bookingHandler.CancelBooking).Methods("PUT")
	booking.HandleFunc("/admin/accept/{id:[0-9]+}", bookingHandler.AcceptBooking).Methods("PUT")
	booking.HandleFunc("/admin/complete-trip/{id:[0-9]+}", bookingHandler.CompleteTrip).Methods("PUT")
	booking.HandleFunc("/update/{id:[0-9]+}", bookingHandler.UpdateBookingStatus).Methods("PUT")
	booking.HandleFunc("/invoice/{id:[0-9]+}", bookingHandler.GetInvoice).Methods("GET")
	booking.HandleFunc("/verify-documents/{userId:[0-9]+}", documentHandler.VerifyDocuments).Methods("PUT")
	booking.HandleFunc("/{id:[0-9]+}", bookingHandler.UpdateBooking).Methods("PUT")

	// Customers, admin accounts and catalog (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/register", adminAuthHandler.CreateUserAdmin).Methods("POST")

	users := r.PathPrefix("/users").Subrouter()
	users.Use(auth.AdminAuthMiddleware)
	users.HandleFunc("/{userId:[0-9]+}", documentHandler.GetUser).Methods("GET")

	admin.HandleFunc("/brands", catalogHandler.ListBrands).Methods("GET")
	admin.HandleFunc("/brands", catalogHandler.CreateBrand).Methods("POST")
	admin.HandleFunc("/brands/{id}", catalogHandler.UpdateBrand).Methods("PUT")
	admin.HandleFunc("/brands/{id}/toggle", catalogHandler.ToggleBrand).Methods("PUT")

	admin.HandleFunc("/categories", catalogHandler.ListCategories).Methods("GET")
	admin.HandleFunc("/categories", catalogHandler.CreateCategory).Methods("POST")
	admin.HandleFunc("/categories/{id}", catalogHandler.UpdateCategory).Methods("PUT")
	admin.HandleFunc("/categories/{id}/toggle", catalogHandler.ToggleCategory).Methods("PUT")

	admin.HandleFunc("/models", catalogHandler.ListModels).Methods("GET")
	admin.HandleFunc("/models", catalogHandler.CreateModel).Methods("POST")
	admin.HandleFunc("/models/bybrandid/{brandId}", catalogHandler.ListModelsByBrand).Methods("GET")

	admin.HandleFunc("/vehicles", catalogHandler.ListVehicles).Methods("GET")
	admin.HandleFunc("/vehicles/{id}/status", catalogHandler.UpdateVehicleStatus).Methods("PUT")

	admin.HandleFunc("/packages", catalogHandler.ListPackages).Methods("GET")
	admin.HandleFunc("/packages", catalogHandler.CreatePackage).Methods("POST")
	admin.HandleFunc("/packages/{id}", catalogHandler.UpdatePackage).Methods("PUT")
	admin.HandleFunc("/packages/{id}/toggle", catalogHandler.TogglePackage).Methods("PUT")

	admin.HandleFunc("/stores", catalogHandler.ListStores).Methods("GET")
	admin.HandleFunc("/coupons", catalogHandler.ListCoupons).Methods("GET")

	// Overdue sweep every 30 minutes
	c := cron.New()
	if _, err := c.AddFunc("*/30 * * * *", func() {
		if err := sweepSvc.FlagOverdueBookings(); err != nil {
			log.Printf("%v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule overdue sweep: %v", err)
	}
	c.Start()

	allowedOrigins := []string{"*"}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}
	corsHandler := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, corsHandler)))
}
