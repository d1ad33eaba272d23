package models

// SalesTarget is a monthly target for an agency, optionally scoped to a
// category type. One row per agency/category/year/month.
type SalesTarget struct {
	MasterData

	AgencyID       uint    `gorm:"not null;index;uniqueIndex:idx_target_period" json:"agencyId"`
	CategoryTypeID *uint   `gorm:"index;uniqueIndex:idx_target_period" json:"categoryTypeId"`
	TargetYear     int     `gorm:"not null;uniqueIndex:idx_target_period" json:"targetYear"`
	TargetMonth    int     `gorm:"not null;uniqueIndex:idx_target_period" json:"targetMonth"`
	TargetQty      float64 `gorm:"not null;default:0" json:"targetQty"`
	TargetValue    float64 `gorm:"not null;default:0" json:"targetValue"`

	// Relationships
	Agency       *Agency       `gorm:"foreignKey:AgencyID" json:"agency,omitempty"`
	CategoryType *CategoryType `gorm:"foreignKey:CategoryTypeID" json:"categoryType,omitempty"`
}

// TableName specifies the table name
func (SalesTarget) TableName() string {
	return "sales_targets"
}
