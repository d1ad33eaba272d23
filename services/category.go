package services

import (
	"sales_demarcation_go/models"

	"gorm.io/gorm"
)

// GetMainCategoriesByType returns all main categories under a category type
func GetMainCategoriesByType(db *gorm.DB, categoryTypeID uint) ([]models.MainCategory, error) {
	var rows []models.MainCategory
	err := db.Where("category_type_id = ?", categoryTypeID).Order("sequence ASC").Find(&rows).Error
	return rows, err
}

// GetSubCategoriesByMain returns all sub-categories under a main category
func GetSubCategoriesByMain(db *gorm.DB, mainCategoryID uint) ([]models.SubCategory, error) {
	var rows []models.SubCategory
	err := db.Where("main_category_id = ?", mainCategoryID).Order("sequence ASC").Find(&rows).Error
	return rows, err
}

// GetSubSubCategoriesBySub returns all leaf categories under a sub-category
func GetSubSubCategoriesBySub(db *gorm.DB, subCategoryID uint) ([]models.SubSubCategory, error) {
	var rows []models.SubSubCategory
	err := db.Where("sub_category_id = ?", subCategoryID).Order("sequence ASC").Find(&rows).Error
	return rows, err
}

// GetCategoryTree returns the full four-level category tree, active branches only
func GetCategoryTree(db *gorm.DB) ([]models.CategoryType, error) {
	var types []models.CategoryType
	err := db.Where("is_active = ?", true).
		Preload("MainCategories", "is_active = ?", true).
		Preload("MainCategories.SubCategories", "is_active = ?", true).
		Preload("MainCategories.SubCategories.SubSubCategories", "is_active = ?", true).
		Order("sequence ASC").
		Find(&types).Error
	return types, err
}
