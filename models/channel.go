package models

// Channel is a top-level sales channel within a country (e.g. Retail, HoReCa)
type Channel struct {
	MasterData

	ChannelCode string `gorm:"size:20;uniqueIndex;not null" json:"channelCode"`
	ChannelName string `gorm:"size:100;not null" json:"channelName"`
	CountryID   uint   `gorm:"not null;index" json:"countryId"`

	// Relationships
	Country     *Country     `gorm:"foreignKey:CountryID" json:"country,omitempty"`
	SubChannels []SubChannel `gorm:"foreignKey:ChannelID" json:"subChannels,omitempty"`
}

// TableName specifies the table name
func (Channel) TableName() string {
	return "channels"
}
