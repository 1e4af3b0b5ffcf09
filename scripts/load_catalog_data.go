package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"gear-garage-backend/internal/config"
	"gear-garage-backend/internal/database"
	"gear-garage-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structure that directly matches DB schema
type CatalogItemData struct {
	GearCategory string `yaml:"gear_category"`
	Brand        string `yaml:"brand"`
	ModelName    string `yaml:"model_name"`
	Variant      string `yaml:"variant,omitempty"`
	Description  string `yaml:"description,omitempty"`
	Status       string `yaml:"status,omitempty"`
	ImageKey     string `yaml:"image_key,omitempty"`
}

type CatalogItemsFile struct {
	CatalogItems []CatalogItemData `yaml:"catalog_items"`
}

func main() {
	log.Println("🚀 Loading catalog data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadCatalogItems(db, "scripts/data/catalog_items.yaml"); err != nil {
		log.Fatalf("Failed to load catalog items: %v", err)
	}

	log.Println("✅ Catalog data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress GORM logs including "record not found" during lookups
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadCatalogItems(db *gorm.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file CatalogItemsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	created := 0
	for _, itemData := range file.CatalogItems {
		category := models.GearCategory(itemData.GearCategory)
		if !category.IsValid() {
			return fmt.Errorf("unknown gear category %q for %s %s", itemData.GearCategory, itemData.Brand, itemData.ModelName)
		}

		status := models.CatalogItemStatusActive
		if itemData.Status != "" {
			status = models.CatalogItemStatus(itemData.Status)
			if !status.IsValid() {
				return fmt.Errorf("unknown status %q for %s %s", itemData.Status, itemData.Brand, itemData.ModelName)
			}
		}

		// Idempotent: skip items already present under the same brand/model/variant
		var existing models.CatalogItem
		err := db.Where("gear_category = ? AND brand = ? AND model_name = ? AND variant = ?",
			category, itemData.Brand, itemData.ModelName, itemData.Variant).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to look up %s %s: %w", itemData.Brand, itemData.ModelName, err)
		}

		item := &models.CatalogItem{
			GearCategory: category,
			Brand:        itemData.Brand,
			ModelName:    itemData.ModelName,
			Variant:      itemData.Variant,
			Description:  itemData.Description,
			Status:       status,
			ImageKey:     itemData.ImageKey,
		}
		if err := db.Create(item).Error; err != nil {
			return fmt.Errorf("failed to create %s %s: %w", itemData.Brand, itemData.ModelName, err)
		}
		created++
	}

	log.Printf("📋 Catalog items: %d created, %d total", created, len(file.CatalogItems))
	return nil
}
