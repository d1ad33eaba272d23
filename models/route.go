package models

// Route is a sales route within a territory. Old route fields keep the link
// to the identifiers used before a demarcation restructure.
type Route struct {
	MasterData

	RouteCode    string `gorm:"size:20;uniqueIndex;not null" json:"routeCode"`
	RouteName    string `gorm:"size:100;not null" json:"routeName"`
	TerritoryID  uint   `gorm:"not null;index" json:"territoryId"`
	OldRouteID   *uint  `json:"oldRouteId"`
	OldRouteCode string `gorm:"size:20" json:"oldRouteCode"`
	DisplayOrder int    `gorm:"not null;default:0" json:"displayOrder"`

	// Relationships
	Territory *Territory `gorm:"foreignKey:TerritoryID" json:"territory,omitempty"`
}

// TableName specifies the table name
func (Route) TableName() string {
	return "routes"
}
