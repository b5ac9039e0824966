package infra

import (
	"fmt"

	"inventario/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate for every table. TranslateError is enabled so uniqueness and
// foreign-key violations surface as gorm sentinel errors and can be mapped
// to the apierror taxonomy without driver-specific checks.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}
	return db, nil
}

// Migrate creates or updates all tables. Also used by integration tests to
// prepare throwaway databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Product{},
		&model.Sede{},
		&model.SedeProductAssociation{},
		&model.Customer{},
		&model.Supplier{},
		&model.User{},
		&model.AuthToken{},
		&model.SalesOrder{},
		&model.SalesOrderItem{},
		&model.PurchaseOrder{},
		&model.PurchaseOrderItem{},
		&model.TransactionHistory{},
	)
}
