package database

import (
	"fmt"
	"log"
	"strings"

	"chokokon/config"
	"chokokon/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the in-memory SQLite database that backs the entity store for
// the lifetime of the process and migrates the schema.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := cfg.DSN
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logLevel(cfg.LogLevel)),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}

	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database connection established successfully")
	return db, nil
}

// Migrate creates the tables for every collection.
func Migrate(db *gorm.DB) error {
	log.Println("Running migrations...")
	err := db.AutoMigrate(
		&models.Supplier{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Product{},
		&models.ProductComponent{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Println("Migrations completed successfully.")
	return nil
}

func logLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// MemoryDSN names a private in-memory database, so tests and one-off
// commands do not share state with the server's default database.
func MemoryDSN(name string) string {
	clean := strings.NewReplacer("/", "_", " ", "_", "?", "_", "&", "_").Replace(name)
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", clean)
}
