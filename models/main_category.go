package models

// MainCategory is the second level of the product category tree
type MainCategory struct {
	MasterData

	Name           string `gorm:"size:100;not null" json:"name"`
	Sequence       int    `gorm:"not null;default:0" json:"sequence"`
	CategoryTypeID uint   `gorm:"not null;index" json:"categoryTypeId"`

	// Relationships
	CategoryType  *CategoryType `gorm:"foreignKey:CategoryTypeID" json:"categoryType,omitempty"`
	SubCategories []SubCategory `gorm:"foreignKey:MainCategoryID" json:"subCategories,omitempty"`
}

// TableName specifies the table name
func (MainCategory) TableName() string {
	return "main_categories"
}
