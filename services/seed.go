package services

import (
	"fmt"
	"log"
	"time"

	"sales_demarcation_go/models"

	"gorm.io/gorm"
)

// SeedDemarcation loads a small demonstration hierarchy so every screen has
// data on first run. Safe to call repeatedly: it bails out once a country exists.
func SeedDemarcation(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Country{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing countries: %w", err)
	}
	if count > 0 {
		log.Println("Demarcation data already present, skipping seed")
		return nil
	}

	country := models.Country{CountryCode: "LKA", CountryName: "Sri Lanka"}
	country.IsActive = true
	if err := db.Create(&country).Error; err != nil {
		return fmt.Errorf("failed to seed country: %w", err)
	}

	channel := models.Channel{ChannelCode: "CH01", ChannelName: "Retail", CountryID: country.ID}
	channel.IsActive = true
	if err := db.Create(&channel).Error; err != nil {
		return fmt.Errorf("failed to seed channel: %w", err)
	}

	subChannel := models.SubChannel{SubChannelCode: "SC01", SubChannelName: "General Trade", ChannelID: channel.ID}
	subChannel.IsActive = true
	if err := db.Create(&subChannel).Error; err != nil {
		return fmt.Errorf("failed to seed sub-channel: %w", err)
	}

	region := models.Region{RegionCode: "RG01", RegionName: "Western", ChannelID: channel.ID, SubChannelID: subChannel.ID}
	region.IsActive = true
	if err := db.Create(&region).Error; err != nil {
		return fmt.Errorf("failed to seed region: %w", err)
	}

	area := models.Area{AreaCode: "AR01", AreaName: "Colombo Metro", DisplayOrder: 1}
	area.IsActive = true
	if err := db.Create(&area).Error; err != nil {
		return fmt.Errorf("failed to seed area: %w", err)
	}

	areaRegion := models.AreaRegion{AreaID: area.ID, RegionID: region.ID}
	areaRegion.IsActive = true
	if err := db.Create(&areaRegion).Error; err != nil {
		return fmt.Errorf("failed to seed area-region mapping: %w", err)
	}

	territory := models.Territory{
		TerritoryCode: "TR01",
		TerritoryName: "Colombo North",
		RegionID:      region.ID,
		SubChannelID:  subChannel.ID,
		AreaID:        area.ID,
		DisplayOrder:  1,
	}
	territory.IsActive = true
	if err := db.Create(&territory).Error; err != nil {
		return fmt.Errorf("failed to seed territory: %w", err)
	}

	route := models.Route{RouteCode: "RT01", RouteName: "Pettah Main", TerritoryID: territory.ID, DisplayOrder: 1}
	route.IsActive = true
	if err := db.Create(&route).Error; err != nil {
		return fmt.Errorf("failed to seed route: %w", err)
	}

	agency := models.Agency{AgencyCode: "AG001", AgencyName: "Colombo North Distributors", ChannelID: channel.ID, TerritoryID: territory.ID}
	agency.IsActive = true
	if err := db.Create(&agency).Error; err != nil {
		return fmt.Errorf("failed to seed agency: %w", err)
	}

	distributor := models.Distributor{
		DistributorName: "Lanka Distribution (Pvt) Ltd",
		Email:           "ops@lankadist.example",
		Address1:        "120 Main Street",
		Address2:        "Colombo 11",
		MobileNo:        "+94 77 123 4567",
	}
	distributor.IsActive = true
	if err := db.Create(&distributor).Error; err != nil {
		return fmt.Errorf("failed to seed distributor: %w", err)
	}

	mapping := models.AgencyDistributor{AgencyID: agency.ID, DistributorID: distributor.ID, AgencyCode: agency.AgencyCode}
	mapping.IsActive = true
	if err := db.Create(&mapping).Error; err != nil {
		return fmt.Errorf("failed to seed agency-distributor mapping: %w", err)
	}

	warehouse := models.Warehouse{
		WarehouseCode: "WH01",
		WarehouseName: "Colombo Central Warehouse",
		DistributorID: distributor.ID,
		AgencyID:      &agency.ID,
		Address:       "45 Harbour Road, Colombo 13",
	}
	warehouse.IsActive = true
	if err := db.Create(&warehouse).Error; err != nil {
		return fmt.Errorf("failed to seed warehouse: %w", err)
	}

	if err := seedCategoryTree(db); err != nil {
		return err
	}

	if err := seedSampleInvoice(db, agency.ID, distributor.ID); err != nil {
		return err
	}

	log.Println("Demarcation seed data created")
	return nil
}

func seedCategoryTree(db *gorm.DB) error {
	categoryType := models.CategoryType{Name: "Beverages", Sequence: 1}
	categoryType.IsActive = true
	if err := db.Create(&categoryType).Error; err != nil {
		return fmt.Errorf("failed to seed category type: %w", err)
	}

	mainCategory := models.MainCategory{Name: "Soft Drinks", Sequence: 1, CategoryTypeID: categoryType.ID}
	mainCategory.IsActive = true
	if err := db.Create(&mainCategory).Error; err != nil {
		return fmt.Errorf("failed to seed main category: %w", err)
	}

	subCategory := models.SubCategory{Name: "Carbonated", Sequence: 1, MainCategoryID: mainCategory.ID}
	subCategory.IsActive = true
	if err := db.Create(&subCategory).Error; err != nil {
		return fmt.Errorf("failed to seed sub-category: %w", err)
	}

	subSubCategory := models.SubSubCategory{Name: "Cola 500ml", Sequence: 1, SubCategoryID: subCategory.ID}
	subSubCategory.IsActive = true
	if err := db.Create(&subSubCategory).Error; err != nil {
		return fmt.Errorf("failed to seed sub-sub-category: %w", err)
	}

	return nil
}

func seedSampleInvoice(db *gorm.DB, agencyID, distributorID uint) error {
	invoice := models.Invoice{
		InvoiceNo:     "INV-2026-000001",
		InvoiceDate:   time.Now().AddDate(0, 0, -7),
		AgencyID:      agencyID,
		DistributorID: distributorID,
		TotalAmount:   45000,
		Status:        "ISSUED",
	}
	if err := db.Create(&invoice).Error; err != nil {
		return fmt.Errorf("failed to seed invoice: %w", err)
	}

	lines := []models.InvoiceLine{
		{InvoiceID: invoice.ID, ProductName: "Cola 500ml (x24)", Quantity: 10, UnitPrice: 3000, Amount: 30000},
		{InvoiceID: invoice.ID, ProductName: "Lemonade 1L (x12)", Quantity: 5, UnitPrice: 3000, Amount: 15000},
	}
	for _, line := range lines {
		if err := db.Create(&line).Error; err != nil {
			return fmt.Errorf("failed to seed invoice line: %w", err)
		}
	}

	return nil
}
