package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"

	"gorm.io/gorm"
)

func (db *DB) GormConnect() (*gorm.DB, error) {
	switch db.DRIVER {
	case "sqlite":
		return gorm.Open(sqlite.Open(db.NAME), &gorm.Config{})
	case "postgres", "":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			db.HOST, db.USER, db.PASSWORD, db.NAME, db.PORT, db.SSLMODE,
		)
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", db.DRIVER)
	}
}
