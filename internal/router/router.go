package router

import (
	"fmt"
	"net/http"

	"contest-api/internal/config"
	"contest-api/internal/handlers"
	"contest-api/internal/middleware"
	"contest-api/internal/services"
	"contest-api/internal/storage"
	"contest-api/internal/stripeclient"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

func SetupRouter(store *storage.Store, cfg config.Config, logger zerolog.Logger) *mux.Router {
	authService := services.NewAuthService(cfg.JWTSecret, logger)
	userService := services.NewUserService(store, logger)
	catalogService := services.NewCatalogService(store, logger)
	cartService := services.NewCartService(store, logger)
	statsService := services.NewStatsService(store, logger)

	processor := stripeclient.New(cfg.StripeSecretKey, logger)
	paymentService := services.NewPaymentService(store, processor, logger)

	authHandler := handlers.NewAuthHandler(authService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	cartHandler := handlers.NewCartHandler(cartService, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService, logger)
	statsHandler := handlers.NewStatsHandler(statsService, logger)

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "default-secret-key-change-in-production"
		logger.Warn().Msg("JWT_SECRET not set, using default key")
	}

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(rate.Limit(10), 20)

	r.Use(middleware.ErrorHandling(logger))
	r.Use(middleware.PerformanceMonitoring(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	r.Use(rateLimiter.Middleware())

	authenticate := middleware.Authentication(jwtSecret, logger)
	requireAdmin := middleware.RequireAdmin(userService, logger)

	// Gate chains: admin always runs behind authenticate so the admin gate
	// can read the verified identity from the context.
	authed := func(h http.HandlerFunc) http.Handler { return authenticate(h) }
	admin := func(h http.HandlerFunc) http.Handler { return authenticate(requireAdmin(h)) }

	r.HandleFunc("/jwt", authHandler.IssueToken).Methods("POST")

	r.HandleFunc("/users", userHandler.Create).Methods("POST")
	r.HandleFunc("/users", userHandler.List).Methods("GET")
	r.Handle("/users/admin/{email}", authed(userHandler.GetAdminFlag)).Methods("GET")
	r.Handle("/users/admin/{id}", admin(userHandler.PromoteToAdmin)).Methods("PATCH")
	r.Handle("/users/{id}", admin(userHandler.Delete)).Methods("DELETE")

	r.HandleFunc("/contests", catalogHandler.ListContests).Methods("GET")
	r.HandleFunc("/contests/{id}", catalogHandler.GetContest).Methods("GET")
	r.Handle("/contests", admin(catalogHandler.CreateContest)).Methods("POST")
	r.Handle("/contests/{id}", admin(catalogHandler.UpdateContest)).Methods("PATCH")
	r.Handle("/contests/{id}", admin(catalogHandler.DeleteContest)).Methods("DELETE")

	r.HandleFunc("/gallery", catalogHandler.ListGallery).Methods("GET")
	r.HandleFunc("/features", catalogHandler.ListFeatures).Methods("GET")

	r.HandleFunc("/carts", cartHandler.List).Methods("GET")
	r.HandleFunc("/carts", cartHandler.Add).Methods("POST")
	r.HandleFunc("/carts/{id}", cartHandler.Delete).Methods("DELETE")

	r.HandleFunc("/create-payment-intent", paymentHandler.CreateIntent).Methods("POST")
	r.HandleFunc("/payments", paymentHandler.Settle).Methods("POST")
	r.Handle("/payments/{email}", authed(paymentHandler.History)).Methods("GET")

	r.Handle("/admin-stats", admin(statsHandler.AdminStats)).Methods("GET")
	r.HandleFunc("/order-stats", statsHandler.OrderStats).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Contest server is running")
	}).Methods("GET")

	return r
}
