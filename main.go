package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/UserHub/userhub-backend/internal/auth"
	"github.com/UserHub/userhub-backend/internal/db"
	"github.com/UserHub/userhub-backend/internal/middleware"
	"github.com/UserHub/userhub-backend/internal/users"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

var startedAt = time.Now()

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(startedAt).Seconds(),
	})
}

func corsAllowList() map[string]struct{} {
	allowed := make(map[string]struct{})
	for _, origin := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowed[origin] = struct{}{}
		}
	}
	return allowed
}

func tokenTTL() time.Duration {
	raw := os.Getenv("JWT_EXPIRES_IN")
	if raw == "" {
		return auth.DefaultTokenTTL
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		log.Printf("Invalid JWT_EXPIRES_IN %q, using default", raw)
		return auth.DefaultTokenTTL
	}
	return ttl
}

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()
	users.Init()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-default-secret-key"
		log.Println("JWT_SECRET is empty, using insecure default — do not do this in production")
	}

	ttl := tokenTTL()
	tokens := auth.NewTokenService(secret, ttl)
	cookies := auth.NewSessionCookies(os.Getenv("APP_ENV") == "production", ttl)

	dir := users.NewDirectory(db.DB)
	svc := users.NewService(dir)
	handler := users.NewHandler(svc, tokens, cookies)

	limits := middleware.DefaultRateLimits()
	if path := os.Getenv("RATE_LIMITS_PATH"); path != "" {
		loaded, err := middleware.LoadRateLimits(path)
		if err != nil {
			log.Fatal("Failed to load rate limits: ", err)
		}
		limits = loaded
	}
	limiter := middleware.NewRateLimiter(limits)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORSMiddleware(corsAllowList()))
	r.Use(middleware.OptionalAuth(tokens, cookies))
	r.Use(limiter.Middleware)

	r.Get("/", RootHandler)
	r.Get("/health", HealthHandler)

	r.Mount("/api/auth", handler.AuthRoutes())
	r.Mount("/api/users", handler.UserRoutes())

	fmt.Printf("Server listening on port :%s...\n", port)

	if err := http.ListenAndServe("0.0.0.0:"+port, r); err != nil {
		log.Fatal(err)
	}
}
