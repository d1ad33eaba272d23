package models

// SubCategory is the third level of the product category tree
type SubCategory struct {
	MasterData

	Name           string `gorm:"size:100;not null" json:"name"`
	Sequence       int    `gorm:"not null;default:0" json:"sequence"`
	MainCategoryID uint   `gorm:"not null;index" json:"mainCategoryId"`

	// Relationships
	MainCategory     *MainCategory    `gorm:"foreignKey:MainCategoryID" json:"mainCategory,omitempty"`
	SubSubCategories []SubSubCategory `gorm:"foreignKey:SubCategoryID" json:"subSubCategories,omitempty"`
}

// TableName specifies the table name
func (SubCategory) TableName() string {
	return "sub_categories"
}
