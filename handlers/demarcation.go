package handlers

import (
	"net/http"
	"strconv"

	"sales_demarcation_go/db"
	"sales_demarcation_go/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// RegisterDemarcationQueries wires the by-parent listing endpoints that feed
// the cascading dropdown chain, plus the dropdown option projections.
func RegisterDemarcationQueries(g *echo.Group) {
	g.GET("/subChannel/byChannelId/:parentId", byParent(services.GetSubChannelsByChannel, "Failed to fetch sub-channels."))
	g.GET("/region/bySubChannelId/:parentId", byParent(services.GetRegionsBySubChannel, "Failed to fetch regions."))
	g.GET("/territory/byAreaId/:parentId", byParent(services.GetTerritoriesByArea, "Failed to fetch territories."))
	g.GET("/territory/byRegionId/:parentId", byParent(services.GetTerritoriesByRegion, "Failed to fetch territories."))
	g.GET("/route/byTerritoryId/:parentId", byParent(services.GetRoutesByTerritory, "Failed to fetch routes."))
	g.GET("/agency/byTerritoryId/:parentId", byParent(services.GetAgenciesByTerritory, "Failed to fetch agencies."))
	g.GET("/areaRegion/byAreaId/:parentId", byParent(services.GetAreaRegionsByArea, "Failed to fetch area-region mappings."))
	g.GET("/agencyDistributor/byAgencyId/:parentId", byParent(services.GetAgencyDistributorsByAgency, "Failed to fetch agency-distributor mappings."))
	g.GET("/warehouse/byDistributorId/:parentId", byParent(services.GetWarehousesByDistributor, "Failed to fetch warehouses."))

	g.GET("/options/subChannelsByChannel/:parentId", byParent(services.ActiveSubChannelOptions, "Failed to fetch sub-channel options."))
	g.GET("/options/regionsBySubChannel/:parentId", byParent(services.ActiveRegionOptions, "Failed to fetch region options."))
	g.GET("/options/activeDistributors", optionsList(services.ActiveDistributorOptions, "Failed to fetch distributor options."))
	g.GET("/options/activeRoutes", optionsList(services.ActiveRouteOptions, "Failed to fetch route options."))
}

// RegisterCategoryQueries wires the by-parent listing endpoints of the
// product category tree, plus the full-tree view.
func RegisterCategoryQueries(g *echo.Group) {
	g.GET("/mainCategory/byCategoryTypeId/:parentId", byParent(services.GetMainCategoriesByType, "Failed to fetch main categories."))
	g.GET("/subCategory/byMainCategoryId/:parentId", byParent(services.GetSubCategoriesByMain, "Failed to fetch sub-categories."))
	g.GET("/subSubCategory/bySubCategoryId/:parentId", byParent(services.GetSubSubCategoriesBySub, "Failed to fetch sub-sub-categories."))

	g.GET("/tree", func(c echo.Context) error {
		tree, err := services.GetCategoryTree(db.DB)
		if err != nil {
			return respondMessage(c, http.StatusInternalServerError, "Failed to fetch category tree.")
		}
		return respondPayload(c, http.StatusOK, tree)
	})
}

// byParent adapts a parent-scoped service query into a handler
func byParent[T any](query func(db *gorm.DB, parentID uint) ([]T, error), failure string) echo.HandlerFunc {
	return func(c echo.Context) error {
		parentID, err := parseParentID(c)
		if err != nil {
			return respondMessage(c, http.StatusBadRequest, "Invalid parent id.")
		}

		rows, err := query(db.DB, parentID)
		if err != nil {
			return respondMessage(c, http.StatusInternalServerError, failure)
		}
		return respondPayload(c, http.StatusOK, rows)
	}
}

// optionsList adapts an unscoped option projection into a handler
func optionsList(query func(db *gorm.DB) ([]services.OptionRow, error), failure string) echo.HandlerFunc {
	return func(c echo.Context) error {
		rows, err := query(db.DB)
		if err != nil {
			return respondMessage(c, http.StatusInternalServerError, failure)
		}
		return respondPayload(c, http.StatusOK, rows)
	}
}

// parseParentID reads the numeric :parentId route parameter
func parseParentID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("parentId"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
