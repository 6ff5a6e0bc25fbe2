package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fitchallengeAPI/handlers"
	"fitchallengeAPI/internal/database"
	"fitchallengeAPI/internal/identity"
	"fitchallengeAPI/middleware"
	"fitchallengeAPI/services"
)

var (
	dbPool           *pgxpool.Pool
	verifier         identity.Verifier
	accountService   *services.AccountService
	challengeService *services.ChallengeService
	progressService  *services.ProgressService
	communityService *services.CommunityService
	favoriteService  *services.FavoriteService
	goalService      *services.GoalService
	homeService      *services.HomeService
	legacyAuth       *services.LegacyAuthService
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	dbPool, err = database.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := database.Migrate(ctx, dbPool); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	log.Println("Successfully connected to database")

	credsFile := os.Getenv("FIREBASE_CREDENTIALS_FILE")
	if credsFile == "" {
		credsFile = "./serviceAccountKey.json"
	}
	verifier, err = identity.NewFirebaseVerifier(ctx, credsFile)
	if err != nil {
		log.Fatal("Failed to initialize Firebase verifier: ", err)
	}
	log.Println("Firebase identity verifier initialized successfully")

	accountService = services.NewAccountService(dbPool)
	challengeService = services.NewChallengeService(dbPool)
	progressService = services.NewProgressService(dbPool)
	communityService = services.NewCommunityService(dbPool)
	favoriteService = services.NewFavoriteService(dbPool)
	goalService = services.NewGoalService(dbPool)
	homeService = services.NewHomeService(challengeService, communityService)
	legacyAuth = services.NewLegacyAuthService(dbPool)

	middleware.InitPrometheus()
}

func main() {
	defer func() {
		log.Println("Closing database connection pool...")
		dbPool.Close()
	}()

	accountHandler := handlers.NewAccountHandler(accountService)
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	progressHandler := handlers.NewProgressHandler(progressService)
	communityHandler := handlers.NewCommunityHandler(communityService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	goalHandler := handlers.NewGoalHandler(goalService)
	homeHandler := handlers.NewHomeHandler(homeService)
	legacyAuthHandler := handlers.NewLegacyAuthHandler(legacyAuth)

	r := mux.NewRouter()

	go middleware.CleanupVisitors()

	r.Use(middleware.RateLimit)
	r.Use(middleware.Monitor)

	r.Handle("/metrics", middleware.BasicAuth(promhttp.Handler()))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unhealthy", "error": "database connection failed"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "fitchallenge-api"}`))
	}).Methods("GET")

	// -------------------------------------------------------------------------
	// OPEN ROUTES
	// -------------------------------------------------------------------------
	r.HandleFunc("/register", legacyAuthHandler.Register).Methods("POST")
	r.HandleFunc("/login", legacyAuthHandler.Login).Methods("POST")

	r.HandleFunc("/community_chat", communityHandler.GetMessages).Methods("GET")
	r.HandleFunc("/community_chat", communityHandler.PostMessage).Methods("POST")
	r.HandleFunc("/latest", homeHandler.GetLatest).Methods("GET")

	// -------------------------------------------------------------------------
	// PROTECTED ROUTES (REQUIRE AUTH HEADER)
	// -------------------------------------------------------------------------
	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(verifier))

	protected.HandleFunc("/account", accountHandler.GetAccount).Methods("GET")
	protected.HandleFunc("/account", accountHandler.CreateAccount).Methods("POST")
	protected.HandleFunc("/leaderboard", accountHandler.GetLeaderboard).Methods("GET")

	protected.HandleFunc("/challenges", challengeHandler.GetChallenges).Methods("GET")
	protected.HandleFunc("/challenges", challengeHandler.CreateChallenge).Methods("POST")
	protected.HandleFunc("/challenges/creator/{uid}", challengeHandler.GetChallengesByCreator).Methods("GET")
	protected.HandleFunc("/challenges/{id}", challengeHandler.GetChallengeByID).Methods("GET")
	protected.HandleFunc("/challenges/{id}", challengeHandler.DeleteChallenge).Methods("DELETE")

	protected.HandleFunc("/progress/{id}", progressHandler.GetProgress).Methods("GET")
	protected.HandleFunc("/progress/{id}", progressHandler.AdvanceProgress).Methods("POST")

	protected.HandleFunc("/favorites", favoriteHandler.GetFavorites).Methods("GET")
	protected.HandleFunc("/favorites/{id}", favoriteHandler.AddFavorite).Methods("POST")
	protected.HandleFunc("/favorites/{id}", favoriteHandler.RemoveFavorite).Methods("DELETE")

	protected.HandleFunc("/goals", goalHandler.GetGoals).Methods("GET")
	protected.HandleFunc("/goals", goalHandler.CreateGoal).Methods("POST")
	protected.HandleFunc("/goals/{id}", goalHandler.UpdateGoal).Methods("PUT")
	protected.HandleFunc("/goals/{id}", goalHandler.DeleteGoal).Methods("DELETE")

	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		gorillaHandlers.ExposedHeaders([]string{"Content-Length"}),
		gorillaHandlers.AllowCredentials(),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3333"
	}
	port = ":" + port

	server := http.Server{
		Addr:         port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	sig := <-sigChan
	log.Println("Got signal:", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
