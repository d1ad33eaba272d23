package models

// Agency is a distribution agency operating in a territory
type Agency struct {
	MasterData

	AgencyCode    string `gorm:"size:20;uniqueIndex;not null" json:"agencyCode"`
	AgencyName    string `gorm:"size:100;not null" json:"agencyName"`
	ChannelID     uint   `gorm:"not null;index" json:"channelId"`
	TerritoryID   uint   `gorm:"not null;index" json:"territoryId"`
	OldAgencyCode string `gorm:"size:20" json:"oldAgencyCode"`

	// Relationships
	Channel   *Channel   `gorm:"foreignKey:ChannelID" json:"channel,omitempty"`
	Territory *Territory `gorm:"foreignKey:TerritoryID" json:"territory,omitempty"`
}

// TableName specifies the table name
func (Agency) TableName() string {
	return "agencies"
}
