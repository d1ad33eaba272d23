package models

// AreaRegion is the many-to-many mapping between areas and regions
type AreaRegion struct {
	MasterData

	AreaID   uint `gorm:"not null;index;uniqueIndex:idx_area_region" json:"areaId"`
	RegionID uint `gorm:"not null;index;uniqueIndex:idx_area_region" json:"regionId"`

	// Relationships
	Area   *Area   `gorm:"foreignKey:AreaID" json:"area,omitempty"`
	Region *Region `gorm:"foreignKey:RegionID" json:"region,omitempty"`
}

// TableName specifies the table name
func (AreaRegion) TableName() string {
	return "area_regions"
}
