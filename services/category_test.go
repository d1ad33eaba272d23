package services

import (
	"testing"

	"sales_demarcation_go/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCategoryTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.CategoryType{}, &models.MainCategory{},
		&models.SubCategory{}, &models.SubSubCategory{},
	)
	assert.NoError(t, err)
	return db
}

func seedCategoryLevels(t *testing.T, db *gorm.DB) (models.CategoryType, models.MainCategory) {
	ct := models.CategoryType{Name: "Beverages", Sequence: 1}
	assert.NoError(t, db.Create(&ct).Error)

	second := models.MainCategory{Name: "Juices", Sequence: 2, CategoryTypeID: ct.ID}
	first := models.MainCategory{Name: "Soft Drinks", Sequence: 1, CategoryTypeID: ct.ID}
	assert.NoError(t, db.Create(&second).Error)
	assert.NoError(t, db.Create(&first).Error)

	return ct, first
}

func TestGetMainCategoriesByTypeOrdersBySequence(t *testing.T) {
	db := setupCategoryTestDB(t)
	ct, _ := seedCategoryLevels(t, db)

	rows, err := GetMainCategoriesByType(db, ct.ID)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Soft Drinks", rows[0].Name)
	assert.Equal(t, "Juices", rows[1].Name)
}

func TestGetCategoryTreeSkipsInactiveBranches(t *testing.T) {
	db := setupCategoryTestDB(t)
	ct, main := seedCategoryLevels(t, db)

	live := models.SubCategory{Name: "Carbonated", Sequence: 1, MainCategoryID: main.ID}
	assert.NoError(t, db.Create(&live).Error)

	retired := models.SubCategory{Name: "Discontinued", Sequence: 2, MainCategoryID: main.ID}
	assert.NoError(t, db.Create(&retired).Error)
	assert.NoError(t, db.Model(&retired).Update("is_active", false).Error)

	leaf := models.SubSubCategory{Name: "Cola 500ml", Sequence: 1, SubCategoryID: live.ID}
	assert.NoError(t, db.Create(&leaf).Error)

	tree, err := GetCategoryTree(db)
	assert.NoError(t, err)
	assert.Len(t, tree, 1)
	assert.Equal(t, ct.ID, tree[0].ID)

	var softDrinks *models.MainCategory
	for i := range tree[0].MainCategories {
		if tree[0].MainCategories[i].Name == "Soft Drinks" {
			softDrinks = &tree[0].MainCategories[i]
		}
	}
	assert.NotNil(t, softDrinks)
	assert.Len(t, softDrinks.SubCategories, 1)
	assert.Equal(t, "Carbonated", softDrinks.SubCategories[0].Name)
	assert.Len(t, softDrinks.SubCategories[0].SubSubCategories, 1)
}
