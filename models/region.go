package models

// Region belongs to a channel and sub-channel
type Region struct {
	MasterData

	RegionCode   string `gorm:"size:20;uniqueIndex;not null" json:"regionCode"`
	RegionName   string `gorm:"size:100;not null" json:"regionName"`
	ChannelID    uint   `gorm:"not null;index" json:"channelId"`
	SubChannelID uint   `gorm:"not null;index" json:"subChannelId"`

	// Relationships
	Channel    *Channel    `gorm:"foreignKey:ChannelID" json:"channel,omitempty"`
	SubChannel *SubChannel `gorm:"foreignKey:SubChannelID" json:"subChannel,omitempty"`
}

// TableName specifies the table name
func (Region) TableName() string {
	return "regions"
}
