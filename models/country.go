package models

// Country is the root of the demarcation hierarchy
type Country struct {
	MasterData

	CountryCode string `gorm:"size:3;uniqueIndex;not null" json:"countryCode"` // ISO 3166-1 alpha-3 (LKA, IND, etc.)
	CountryName string `gorm:"size:100;not null" json:"countryName"`

	// Relationships
	Channels []Channel `gorm:"foreignKey:CountryID" json:"channels,omitempty"`
}

// TableName specifies the table name
func (Country) TableName() string {
	return "countries"
}
