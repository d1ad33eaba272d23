package handlers

import (
	"sales_demarcation_go/models"
	"sales_demarcation_go/services"

	"github.com/labstack/echo/v4"
)

// RegisterDemarcationCRUD wires the endpoint quartet for every demarcation
// entity under the given group. One descriptor per administration screen.
func RegisterDemarcationCRUD(g *echo.Group) {
	RegisterCRUD[models.Country](g, EntityDescriptor[models.Country]{
		Name:              "country",
		DeactivateSegment: "deactivateCountry",
		Sanitize: func(e *models.Country) {
			services.SanitizeAll(&e.CountryCode, &e.CountryName)
		},
		Validate: func(e *models.Country) map[string]string {
			errs := map[string]string{}
			requireString(errs, "countryCode", e.CountryCode)
			requireString(errs, "countryName", e.CountryName)
			return errs
		},
	})

	RegisterCRUD[models.Channel](g, EntityDescriptor[models.Channel]{
		Name:              "channel",
		DeactivateSegment: "deactivateChannel",
		Sanitize: func(e *models.Channel) {
			services.SanitizeAll(&e.ChannelCode, &e.ChannelName)
		},
		Validate: func(e *models.Channel) map[string]string {
			errs := map[string]string{}
			requireString(errs, "channelCode", e.ChannelCode)
			requireString(errs, "channelName", e.ChannelName)
			requireID(errs, "countryId", e.CountryID)
			return errs
		},
	})

	RegisterCRUD[models.SubChannel](g, EntityDescriptor[models.SubChannel]{
		Name:              "subChannel",
		DeactivateSegment: "deactivateSubChannel",
		Sanitize: func(e *models.SubChannel) {
			services.SanitizeAll(&e.SubChannelCode, &e.SubChannelName)
		},
		Validate: func(e *models.SubChannel) map[string]string {
			errs := map[string]string{}
			requireString(errs, "subChannelCode", e.SubChannelCode)
			requireString(errs, "subChannelName", e.SubChannelName)
			requireID(errs, "channelId", e.ChannelID)
			return errs
		},
	})

	RegisterCRUD[models.Region](g, EntityDescriptor[models.Region]{
		Name:              "region",
		DeactivateSegment: "deactivateRegion",
		Sanitize: func(e *models.Region) {
			services.SanitizeAll(&e.RegionCode, &e.RegionName)
		},
		Validate: func(e *models.Region) map[string]string {
			errs := map[string]string{}
			requireString(errs, "regionCode", e.RegionCode)
			requireString(errs, "regionName", e.RegionName)
			requireID(errs, "channelId", e.ChannelID)
			requireID(errs, "subChannelId", e.SubChannelID)
			return errs
		},
	})

	RegisterCRUD[models.Area](g, EntityDescriptor[models.Area]{
		Name:              "area",
		DeactivateSegment: "deactivateArea",
		Sanitize: func(e *models.Area) {
			services.SanitizeAll(&e.AreaCode, &e.AreaName)
		},
		Validate: func(e *models.Area) map[string]string {
			errs := map[string]string{}
			requireString(errs, "areaCode", e.AreaCode)
			requireString(errs, "areaName", e.AreaName)
			return errs
		},
	})

	RegisterCRUD[models.AreaRegion](g, EntityDescriptor[models.AreaRegion]{
		Name:              "areaRegion",
		DeactivateSegment: "deactivateAreaRegion",
		BulkCreate:        true,
		Validate: func(e *models.AreaRegion) map[string]string {
			errs := map[string]string{}
			requireID(errs, "areaId", e.AreaID)
			requireID(errs, "regionId", e.RegionID)
			return errs
		},
	})

	RegisterCRUD[models.Territory](g, EntityDescriptor[models.Territory]{
		Name:              "territory",
		DeactivateSegment: "deactivateTerritory",
		Sanitize: func(e *models.Territory) {
			services.SanitizeAll(&e.TerritoryCode, &e.TerritoryName)
		},
		Validate: func(e *models.Territory) map[string]string {
			errs := map[string]string{}
			requireString(errs, "territoryCode", e.TerritoryCode)
			requireString(errs, "territoryName", e.TerritoryName)
			requireID(errs, "regionId", e.RegionID)
			requireID(errs, "subChannelId", e.SubChannelID)
			requireID(errs, "areaId", e.AreaID)
			return errs
		},
	})

	RegisterCRUD[models.Route](g, EntityDescriptor[models.Route]{
		Name:              "route",
		DeactivateSegment: "deactivateRoute",
		Sanitize: func(e *models.Route) {
			services.SanitizeAll(&e.RouteCode, &e.RouteName, &e.OldRouteCode)
		},
		Validate: func(e *models.Route) map[string]string {
			errs := map[string]string{}
			requireString(errs, "routeCode", e.RouteCode)
			requireString(errs, "routeName", e.RouteName)
			requireID(errs, "territoryId", e.TerritoryID)
			return errs
		},
	})

	RegisterCRUD[models.Agency](g, EntityDescriptor[models.Agency]{
		Name:              "agency",
		DeactivateSegment: "deactivateAgency",
		Sanitize: func(e *models.Agency) {
			services.SanitizeAll(&e.AgencyCode, &e.AgencyName, &e.OldAgencyCode)
		},
		Validate: func(e *models.Agency) map[string]string {
			errs := map[string]string{}
			requireString(errs, "agencyCode", e.AgencyCode)
			requireString(errs, "agencyName", e.AgencyName)
			requireID(errs, "channelId", e.ChannelID)
			requireID(errs, "territoryId", e.TerritoryID)
			return errs
		},
	})

	RegisterCRUD[models.Distributor](g, EntityDescriptor[models.Distributor]{
		Name:              "distributor",
		DeactivateSegment: "deactivateDistributor",
		Sanitize: func(e *models.Distributor) {
			services.SanitizeAll(&e.DistributorName, &e.Email, &e.Address1, &e.Address2, &e.Address3, &e.MobileNo)
		},
		Validate: func(e *models.Distributor) map[string]string {
			errs := map[string]string{}
			requireString(errs, "distributorName", e.DistributorName)
			return errs
		},
	})

	RegisterCRUD[models.AgencyDistributor](g, EntityDescriptor[models.AgencyDistributor]{
		Name:              "agencyDistributor",
		DeactivateSegment: "deactivateAgencyDistributor",
		BulkCreate:        true,
		Sanitize: func(e *models.AgencyDistributor) {
			services.SanitizeAll(&e.AgencyCode)
		},
		Validate: func(e *models.AgencyDistributor) map[string]string {
			errs := map[string]string{}
			requireID(errs, "agencyId", e.AgencyID)
			requireID(errs, "distributorId", e.DistributorID)
			return errs
		},
	})

	RegisterCRUD[models.Warehouse](g, EntityDescriptor[models.Warehouse]{
		Name:              "warehouse",
		DeactivateSegment: "deactivateWarehouse",
		Sanitize: func(e *models.Warehouse) {
			services.SanitizeAll(&e.WarehouseCode, &e.WarehouseName, &e.Address)
		},
		Validate: func(e *models.Warehouse) map[string]string {
			errs := map[string]string{}
			requireString(errs, "warehouseCode", e.WarehouseCode)
			requireString(errs, "warehouseName", e.WarehouseName)
			requireID(errs, "distributorId", e.DistributorID)
			return errs
		},
	})
}

// RegisterCategoryCRUD wires the endpoint quartet for the four-level product
// category tree under the given group.
func RegisterCategoryCRUD(g *echo.Group) {
	RegisterCRUD[models.CategoryType](g, EntityDescriptor[models.CategoryType]{
		Name:              "categoryType",
		DeactivateSegment: "deactivateCategoryType",
		Sanitize:          func(e *models.CategoryType) { services.SanitizeAll(&e.Name) },
		Validate: func(e *models.CategoryType) map[string]string {
			errs := map[string]string{}
			requireString(errs, "name", e.Name)
			return errs
		},
	})

	RegisterCRUD[models.MainCategory](g, EntityDescriptor[models.MainCategory]{
		Name:              "mainCategory",
		DeactivateSegment: "deactivateMainCategory",
		Sanitize:          func(e *models.MainCategory) { services.SanitizeAll(&e.Name) },
		Validate: func(e *models.MainCategory) map[string]string {
			errs := map[string]string{}
			requireString(errs, "name", e.Name)
			requireID(errs, "categoryTypeId", e.CategoryTypeID)
			return errs
		},
	})

	RegisterCRUD[models.SubCategory](g, EntityDescriptor[models.SubCategory]{
		Name:              "subCategory",
		DeactivateSegment: "deactivateSubCategory",
		Sanitize:          func(e *models.SubCategory) { services.SanitizeAll(&e.Name) },
		Validate: func(e *models.SubCategory) map[string]string {
			errs := map[string]string{}
			requireString(errs, "name", e.Name)
			requireID(errs, "mainCategoryId", e.MainCategoryID)
			return errs
		},
	})

	RegisterCRUD[models.SubSubCategory](g, EntityDescriptor[models.SubSubCategory]{
		Name:              "subSubCategory",
		DeactivateSegment: "deactivateSubSubCategory",
		Sanitize:          func(e *models.SubSubCategory) { services.SanitizeAll(&e.Name) },
		Validate: func(e *models.SubSubCategory) map[string]string {
			errs := map[string]string{}
			requireString(errs, "name", e.Name)
			requireID(errs, "subCategoryId", e.SubCategoryID)
			return errs
		},
	})
}

// RegisterSalesTargetCRUD wires the sales target entry screen endpoints
func RegisterSalesTargetCRUD(g *echo.Group) {
	RegisterCRUD[models.SalesTarget](g, EntityDescriptor[models.SalesTarget]{
		Name:              "salesTarget",
		DeactivateSegment: "deactivateSalesTarget",
		Validate: func(e *models.SalesTarget) map[string]string {
			errs := map[string]string{}
			requireID(errs, "agencyId", e.AgencyID)
			if e.TargetYear < 2000 || e.TargetYear > 2100 {
				errs["targetYear"] = "targetYear must be a four digit year"
			}
			if e.TargetMonth < 1 || e.TargetMonth > 12 {
				errs["targetMonth"] = "targetMonth must be between 1 and 12"
			}
			return errs
		},
	})
}

func requireString(errs map[string]string, field, value string) {
	if value == "" {
		errs[field] = field + " is required"
	}
}

func requireID(errs map[string]string, field string, value uint) {
	if value == 0 {
		errs[field] = field + " is required"
	}
}
