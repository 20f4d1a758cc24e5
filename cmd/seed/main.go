package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"time"

	"github.com/UserHub/userhub-backend/internal/auth"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// Bootstraps the first admin account. Safe to re-run: an existing email wins.
var (
	name     = flag.String("name", "Admin", "Display name for the admin account")
	email    = flag.String("email", "", "Email for the admin account (required)")
	password = flag.String("password", "", "Password for the admin account (required)")
	dsn      = flag.String("dsn", os.Getenv("DATABASE_URL"), "Postgres DSN (default: env DATABASE_URL)")
)

func main() {
	_ = godotenv.Load(".env.local")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}
	if *dsn == "" {
		log.Fatal("no DSN: set -dsn or DATABASE_URL")
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := db.ExecContext(ctx, `
		INSERT INTO app_users.users (name, email, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, 'admin', now(), now())
		ON CONFLICT (email) DO NOTHING`,
		*name, *email, hashed)
	if err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		log.Printf("admin %s already exists, nothing to do", *email)
		return
	}
	log.Printf("admin %s created", *email)
}
