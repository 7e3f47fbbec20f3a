package migration

import (
	"HealthPantry-Backend/entities"
	"fmt"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(
		&entities.Patient{},
		&entities.Medication{},
		&entities.Allergy{},
		&entities.PatientDietaryTag{},
		&entities.VitalReading{},
	); err != nil {
		return fmt.Errorf("migrating patient tables: %w", err)
	}

	if err := db.AutoMigrate(&entities.InventoryItem{}); err != nil {
		return fmt.Errorf("migrating inventory tables: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.Recipe{},
		&entities.RecipeIngredient{},
	); err != nil {
		return fmt.Errorf("migrating recipe tables: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.CatalogProduct{},
		&entities.ProductPriceStat{},
		&entities.ProductStore{},
	); err != nil {
		return fmt.Errorf("migrating catalog tables: %w", err)
	}

	fmt.Println("Database migration complete")
	return nil
}
