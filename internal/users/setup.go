package users

import (
	"log"

	"github.com/UserHub/userhub-backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "app_users"); err != nil {
		log.Fatal("Failed to ensure schema app_users: ", err)
	}

	if err := db.DB.AutoMigrate(&User{}); err != nil {
		log.Fatal("Failed to auto-migrate tables: ", err)
	}
}
