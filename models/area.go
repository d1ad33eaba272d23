package models

// Area is a standalone demarcation unit, attached to regions through AreaRegion
type Area struct {
	MasterData

	AreaCode     string `gorm:"size:20;uniqueIndex;not null" json:"areaCode"`
	AreaName     string `gorm:"size:100;not null" json:"areaName"`
	DisplayOrder int    `gorm:"not null;default:0" json:"displayOrder"`
}

// TableName specifies the table name
func (Area) TableName() string {
	return "areas"
}
