package models

// Territory sits under an area/region pair within the demarcation hierarchy
type Territory struct {
	MasterData

	TerritoryCode string `gorm:"size:20;uniqueIndex;not null" json:"territoryCode"`
	TerritoryName string `gorm:"size:100;not null" json:"territoryName"`
	RegionID      uint   `gorm:"not null;index" json:"regionId"`
	SubChannelID  uint   `gorm:"not null;index" json:"subChannelId"`
	AreaID        uint   `gorm:"not null;index" json:"areaId"`
	RangeID       *uint  `gorm:"index" json:"rangeId"`
	DisplayOrder  int    `gorm:"not null;default:0" json:"displayOrder"`

	// Relationships
	Region     *Region     `gorm:"foreignKey:RegionID" json:"region,omitempty"`
	SubChannel *SubChannel `gorm:"foreignKey:SubChannelID" json:"subChannel,omitempty"`
	Area       *Area       `gorm:"foreignKey:AreaID" json:"area,omitempty"`
	Routes     []Route     `gorm:"foreignKey:TerritoryID" json:"routes,omitempty"`
}

// TableName specifies the table name
func (Territory) TableName() string {
	return "territories"
}
