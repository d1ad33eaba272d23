package services

import (
	"testing"

	"sales_demarcation_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTargetTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.Agency{}, &models.CategoryType{}, &models.SalesTarget{},
	)
	assert.NoError(t, err)

	db.Create(&models.Agency{AgencyCode: "AG001", AgencyName: "Colombo Central"})
	return db
}

func buildTargetWorkbook(t *testing.T, rows [][]interface{}) *excelize.File {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "Targets")

	headers := []string{"Agency Code*", "Category Type", "Year*", "Month*", "Target Qty", "Target Value"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		assert.NoError(t, err)
		f.SetCellValue("Targets", cell, h)
	}

	for r, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			assert.NoError(t, err)
			f.SetCellValue("Targets", cell, value)
		}
	}
	return f
}

func TestGenerateTargetTemplate(t *testing.T) {
	db := setupTargetTestDB(t)

	buf, err := GenerateTargetTemplate(db)
	assert.NoError(t, err)
	assert.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(buf)
	assert.NoError(t, err)
	defer f.Close()

	idx, err := f.GetSheetIndex("Targets")
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, idx, 0)

	// Example row suggests an existing agency code
	example, err := f.GetCellValue("Targets", "A2")
	assert.NoError(t, err)
	assert.Equal(t, "AG001", example)
}

func TestImportTargetsFromExcel(t *testing.T) {
	db := setupTargetTestDB(t)

	f := buildTargetWorkbook(t, [][]interface{}{
		{"AG001", "", 2026, 8, 1000, 250000},
		{"AG001", "", 2026, 9, 1200, 275000},
	})
	buf, err := f.WriteToBuffer()
	assert.NoError(t, err)

	result, err := ImportTargetsFromExcel(db, buf)
	assert.NoError(t, err)
	assert.Equal(t, 2, result.TotalProcessed)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 0, result.FailedCount)

	var count int64
	db.Model(&models.SalesTarget{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestImportTargetsBadRowDoesNotAbortBatch(t *testing.T) {
	db := setupTargetTestDB(t)

	f := buildTargetWorkbook(t, [][]interface{}{
		{"AG001", "", 2026, 8, 1000, 250000},
		{"NOPE", "", 2026, 8, 500, 100000},   // unknown agency
		{"AG001", "", 2026, 14, 500, 100000}, // invalid month
	})
	buf, err := f.WriteToBuffer()
	assert.NoError(t, err)

	result, err := ImportTargetsFromExcel(db, buf)
	assert.NoError(t, err)
	assert.Equal(t, 3, result.TotalProcessed)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 2, result.FailedCount)
	assert.Len(t, result.Errors, 2)

	var count int64
	db.Model(&models.SalesTarget{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestImportTargetsUpsertsExistingPeriod(t *testing.T) {
	db := setupTargetTestDB(t)

	first := buildTargetWorkbook(t, [][]interface{}{
		{"AG001", "", 2026, 8, 1000, 250000},
	})
	buf, err := first.WriteToBuffer()
	assert.NoError(t, err)
	_, err = ImportTargetsFromExcel(db, buf)
	assert.NoError(t, err)

	second := buildTargetWorkbook(t, [][]interface{}{
		{"AG001", "", 2026, 8, 1500, 300000},
	})
	buf, err = second.WriteToBuffer()
	assert.NoError(t, err)
	result, err := ImportTargetsFromExcel(db, buf)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)

	var targets []models.SalesTarget
	db.Find(&targets)
	assert.Len(t, targets, 1)
	assert.Equal(t, 1500.0, targets[0].TargetQty)
	assert.Equal(t, 300000.0, targets[0].TargetValue)
}
