package services

import (
	"sales_demarcation_go/models"

	"gorm.io/gorm"
)

// OptionRow is a dropdown-ready projection of a master-data row
type OptionRow struct {
	Label string `json:"label"`
	Value uint   `json:"value"`
}

// GetSubChannelsByChannel returns all sub-channels under a channel
func GetSubChannelsByChannel(db *gorm.DB, channelID uint) ([]models.SubChannel, error) {
	var rows []models.SubChannel
	err := db.Where("channel_id = ?", channelID).Find(&rows).Error
	return rows, err
}

// GetRegionsBySubChannel returns all regions under a sub-channel
func GetRegionsBySubChannel(db *gorm.DB, subChannelID uint) ([]models.Region, error) {
	var rows []models.Region
	err := db.Where("sub_channel_id = ?", subChannelID).Find(&rows).Error
	return rows, err
}

// GetTerritoriesByArea returns all territories under an area
func GetTerritoriesByArea(db *gorm.DB, areaID uint) ([]models.Territory, error) {
	var rows []models.Territory
	err := db.Where("area_id = ?", areaID).Find(&rows).Error
	return rows, err
}

// GetTerritoriesByRegion returns all territories under a region
func GetTerritoriesByRegion(db *gorm.DB, regionID uint) ([]models.Territory, error) {
	var rows []models.Territory
	err := db.Where("region_id = ?", regionID).Find(&rows).Error
	return rows, err
}

// GetRoutesByTerritory returns all routes under a territory
func GetRoutesByTerritory(db *gorm.DB, territoryID uint) ([]models.Route, error) {
	var rows []models.Route
	err := db.Where("territory_id = ?", territoryID).Find(&rows).Error
	return rows, err
}

// GetAgenciesByTerritory returns all agencies under a territory
func GetAgenciesByTerritory(db *gorm.DB, territoryID uint) ([]models.Agency, error) {
	var rows []models.Agency
	err := db.Where("territory_id = ?", territoryID).Find(&rows).Error
	return rows, err
}

// GetAreaRegionsByArea returns the region mappings of an area
func GetAreaRegionsByArea(db *gorm.DB, areaID uint) ([]models.AreaRegion, error) {
	var rows []models.AreaRegion
	err := db.Preload("Region").Where("area_id = ?", areaID).Find(&rows).Error
	return rows, err
}

// GetAgencyDistributorsByAgency returns the distributor mappings of an agency
func GetAgencyDistributorsByAgency(db *gorm.DB, agencyID uint) ([]models.AgencyDistributor, error) {
	var rows []models.AgencyDistributor
	err := db.Preload("Distributor").Where("agency_id = ?", agencyID).Find(&rows).Error
	return rows, err
}

// GetWarehousesByDistributor returns the warehouses of a distributor
func GetWarehousesByDistributor(db *gorm.DB, distributorID uint) ([]models.Warehouse, error) {
	var rows []models.Warehouse
	err := db.Where("distributor_id = ?", distributorID).Find(&rows).Error
	return rows, err
}

// ActiveSubChannelOptions projects active sub-channels of a channel into dropdown options
func ActiveSubChannelOptions(db *gorm.DB, channelID uint) ([]OptionRow, error) {
	var rows []models.SubChannel
	err := db.Where("channel_id = ? AND is_active = ?", channelID, true).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	options := make([]OptionRow, 0, len(rows))
	for _, r := range rows {
		options = append(options, OptionRow{Label: r.SubChannelName, Value: r.ID})
	}
	return options, nil
}

// ActiveRegionOptions projects active regions of a sub-channel into dropdown options
func ActiveRegionOptions(db *gorm.DB, subChannelID uint) ([]OptionRow, error) {
	var rows []models.Region
	err := db.Where("sub_channel_id = ? AND is_active = ?", subChannelID, true).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	options := make([]OptionRow, 0, len(rows))
	for _, r := range rows {
		options = append(options, OptionRow{Label: r.RegionName, Value: r.ID})
	}
	return options, nil
}

// ActiveDistributorOptions projects all active distributors into dropdown options
func ActiveDistributorOptions(db *gorm.DB) ([]OptionRow, error) {
	var rows []models.Distributor
	err := db.Where("is_active = ?", true).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	options := make([]OptionRow, 0, len(rows))
	for _, r := range rows {
		options = append(options, OptionRow{Label: r.DistributorName, Value: r.ID})
	}
	return options, nil
}

// ActiveRouteOptions projects all active routes into dropdown options
func ActiveRouteOptions(db *gorm.DB) ([]OptionRow, error) {
	var rows []models.Route
	err := db.Where("is_active = ?", true).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	options := make([]OptionRow, 0, len(rows))
	for _, r := range rows {
		options = append(options, OptionRow{Label: r.RouteName, Value: r.ID})
	}
	return options, nil
}
