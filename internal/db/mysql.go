// Package db opens the MySQL store that holds users, certifications,
// products, feedback and verification events.
package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL opens a GORM connection for the given DSN. Schema creation is the
// caller's job (cmd/server runs AutoMigrate after connecting).
func NewMySQL(dsn string) (*gorm.DB, error) {
	gormDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open mysql store: %w", err)
	}
	return gormDB, nil
}
