package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/kingrain94/dashboard-config-api/internal/config"
	"github.com/kingrain94/dashboard-config-api/internal/middleware"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	subject := flag.String("sub", "", "Subject (caller id) for the token")
	expirationHours := flag.Int("exp", 0, "Token expiration in hours (defaults to JWT_EXPIRATION_HOURS)")
	flag.Parse()

	if *subject == "" {
		log.Fatal("Subject is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if !cfg.AuthEnabled() {
		log.Fatal("JWT_SECRET_KEY is not set")
	}
	if *expirationHours > 0 {
		cfg.JWTExpirationHours = *expirationHours
	}

	tokenString, err := middleware.NewAuthMiddleware(cfg).GenerateToken(*subject)
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}

	fmt.Printf("Generated JWT Token:\n%s\n", tokenString)
}
