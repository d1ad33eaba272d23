package models

// SubSubCategory is the leaf level of the product category tree
type SubSubCategory struct {
	MasterData

	Name          string `gorm:"size:100;not null" json:"name"`
	Sequence      int    `gorm:"not null;default:0" json:"sequence"`
	SubCategoryID uint   `gorm:"not null;index" json:"subCategoryId"`

	// Relationships
	SubCategory *SubCategory `gorm:"foreignKey:SubCategoryID" json:"subCategory,omitempty"`
}

// TableName specifies the table name
func (SubSubCategory) TableName() string {
	return "sub_sub_categories"
}
