package db

import (
	"fmt"

	"library_lending/config"
	"library_lending/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := Migrate(gdb); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return gdb, nil
}

func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&models.LibraryItem{}, &models.Loan{}); err != nil {
		return err
	}

	// At most one open loan per item, enforced by the database itself.
	// The lending service checks before writing; this index is the backstop
	// against a second concurrent checkout slipping past the check.
	if err := gdb.Exec(fmt.Sprintf(`
	  CREATE UNIQUE INDEX IF NOT EXISTS %s_one_open_per_item
	  ON %s (item_id)
	  WHERE return_date IS NULL;
	`, models.LoanTable, models.LoanTable)).Error; err != nil {
		return err
	}

	// Open-loan lookups by item.
	if err := gdb.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_open_item_borrowdate_desc
	  ON %s (item_id, borrow_date DESC)
	  WHERE return_date IS NULL;
	`, models.LoanTable, models.LoanTable)).Error; err != nil {
		return err
	}

	return nil
}
