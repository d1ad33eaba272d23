package models

// SubChannel subdivides a channel (e.g. Modern Trade, General Trade)
type SubChannel struct {
	MasterData

	SubChannelCode string `gorm:"size:20;uniqueIndex;not null" json:"subChannelCode"`
	SubChannelName string `gorm:"size:100;not null" json:"subChannelName"`
	ChannelID      uint   `gorm:"not null;index" json:"channelId"`

	// Relationships
	Channel *Channel `gorm:"foreignKey:ChannelID" json:"channel,omitempty"`
	Regions []Region `gorm:"foreignKey:SubChannelID" json:"regions,omitempty"`
}

// TableName specifies the table name
func (SubChannel) TableName() string {
	return "sub_channels"
}
