package models

// CategoryType is the root level of the product category tree
type CategoryType struct {
	MasterData

	Name     string `gorm:"size:100;not null" json:"name"`
	Sequence int    `gorm:"not null;default:0" json:"sequence"`

	// Relationships
	MainCategories []MainCategory `gorm:"foreignKey:CategoryTypeID" json:"mainCategories,omitempty"`
}

// TableName specifies the table name
func (CategoryType) TableName() string {
	return "category_types"
}
