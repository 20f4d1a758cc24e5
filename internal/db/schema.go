package db

import "gorm.io/gorm"

// EnsureSchema creates the Postgres schema the user tables live in,
// so AutoMigrate has somewhere to put them on a fresh database.
func EnsureSchema(d *gorm.DB, schema string) error {
	return d.Exec(`CREATE SCHEMA IF NOT EXISTS "` + schema + `"`).Error
}
