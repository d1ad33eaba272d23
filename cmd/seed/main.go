package main

import (
	"log"

	"sales_demarcation_go/config"
	"sales_demarcation_go/db"
	"sales_demarcation_go/models"
	"sales_demarcation_go/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.TursoDatabaseURL, cfg.TursoAuthToken, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.Country{}, &models.Channel{}, &models.SubChannel{},
		&models.Region{}, &models.Area{}, &models.AreaRegion{},
		&models.Territory{}, &models.Route{},
		&models.Agency{}, &models.Distributor{}, &models.AgencyDistributor{},
		&models.Warehouse{},
		&models.CategoryType{}, &models.MainCategory{}, &models.SubCategory{}, &models.SubSubCategory{},
		&models.SalesTarget{}, &models.Invoice{}, &models.InvoiceLine{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := services.SeedDemarcation(db.DB); err != nil {
		log.Fatalf("Failed to seed demarcation data: %v", err)
	}

	log.Println("Seed completed")
}
