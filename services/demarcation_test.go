package services

import (
	"testing"

	"sales_demarcation_go/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDemarcationTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.Country{}, &models.Channel{}, &models.SubChannel{},
		&models.Region{}, &models.Area{}, &models.AreaRegion{},
		&models.Territory{}, &models.Route{},
		&models.Agency{}, &models.Distributor{}, &models.AgencyDistributor{},
		&models.Warehouse{},
	)
	assert.NoError(t, err)
	return db
}

func TestGetSubChannelsByChannel(t *testing.T) {
	db := setupDemarcationTestDB(t)

	country := models.Country{CountryCode: "LKA", CountryName: "Sri Lanka"}
	db.Create(&country)

	retail := models.Channel{ChannelCode: "CH01", ChannelName: "Retail", CountryID: country.ID}
	horeca := models.Channel{ChannelCode: "CH02", ChannelName: "Horeca", CountryID: country.ID}
	db.Create(&retail)
	db.Create(&horeca)

	db.Create(&models.SubChannel{SubChannelCode: "SC01", SubChannelName: "General Trade", ChannelID: retail.ID})
	db.Create(&models.SubChannel{SubChannelCode: "SC02", SubChannelName: "Wholesale", ChannelID: retail.ID})
	db.Create(&models.SubChannel{SubChannelCode: "SC03", SubChannelName: "Hotels", ChannelID: horeca.ID})

	rows, err := GetSubChannelsByChannel(db, retail.ID)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, retail.ID, r.ChannelID)
	}

	empty, err := GetSubChannelsByChannel(db, 999)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestActiveSubChannelOptions(t *testing.T) {
	db := setupDemarcationTestDB(t)

	channel := models.Channel{ChannelCode: "CH01", ChannelName: "Retail", CountryID: 1}
	db.Create(&channel)

	active := models.SubChannel{SubChannelCode: "SC01", SubChannelName: "General Trade", ChannelID: channel.ID}
	db.Create(&active)

	inactive := models.SubChannel{SubChannelCode: "SC02", SubChannelName: "Wholesale", ChannelID: channel.ID}
	db.Create(&inactive)
	db.Model(&inactive).Update("is_active", false)

	options, err := ActiveSubChannelOptions(db, channel.ID)
	assert.NoError(t, err)
	assert.Len(t, options, 1)
	assert.Equal(t, "General Trade", options[0].Label)
	assert.Equal(t, active.ID, options[0].Value)
}

func TestGetAreaRegionsByAreaPreloadsRegion(t *testing.T) {
	db := setupDemarcationTestDB(t)

	area := models.Area{AreaCode: "AR01", AreaName: "Colombo Metro"}
	db.Create(&area)

	region := models.Region{RegionCode: "RG01", RegionName: "Western", ChannelID: 1, SubChannelID: 1}
	db.Create(&region)

	db.Create(&models.AreaRegion{AreaID: area.ID, RegionID: region.ID})

	rows, err := GetAreaRegionsByArea(db, area.ID)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.NotNil(t, rows[0].Region)
	assert.Equal(t, "Western", rows[0].Region.RegionName)
}

func TestActiveDistributorOptions(t *testing.T) {
	db := setupDemarcationTestDB(t)

	live := models.Distributor{DistributorName: "Lanka Distributors"}
	db.Create(&live)

	closed := models.Distributor{DistributorName: "Former Partner"}
	db.Create(&closed)
	db.Model(&closed).Update("is_active", false)

	options, err := ActiveDistributorOptions(db)
	assert.NoError(t, err)
	assert.Len(t, options, 1)
	assert.Equal(t, "Lanka Distributors", options[0].Label)
}
