package services

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"sales_demarcation_go/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const targetSheetName = "Targets"

// ImportResult contains the summary of a sales-target import
type ImportResult struct {
	TotalProcessed int      `json:"totalProcessed"`
	SuccessCount   int      `json:"successCount"`
	FailedCount    int      `json:"failedCount"`
	Errors         []string `json:"errors"`
}

// GenerateTargetTemplate generates the Excel workbook used for bulk target entry
func GenerateTargetTemplate(db *gorm.DB) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Rename Sheet1 to Instructions
	const sheetInstructions = "Instructions"
	f.SetSheetName("Sheet1", sheetInstructions)

	f.SetCellValue(sheetInstructions, "A1", "Sales Target Import")
	f.SetCellValue(sheetInstructions, "A3", "Considerations:")
	f.SetCellValue(sheetInstructions, "A4", "- One row per agency, category type, year and month.")
	f.SetCellValue(sheetInstructions, "A5", "- Agency Code must match an existing active agency.")
	f.SetCellValue(sheetInstructions, "A6", "- Category Type is optional; leave empty for an agency-wide target.")
	f.SetCellValue(sheetInstructions, "A7", "- Month is numeric (1-12). Existing targets for the same period are overwritten.")

	// List valid agency codes so back-office users do not have to look them up
	var agencies []models.Agency
	if err := db.Where("is_active = ?", true).Find(&agencies).Error; err == nil {
		f.SetCellValue(sheetInstructions, "A9", "Valid agency codes:")
		titleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
		f.SetCellStyle(sheetInstructions, "A9", "A9", titleStyle)
		row := 10
		for _, a := range agencies {
			f.SetCellValue(sheetInstructions, fmt.Sprintf("A%d", row), fmt.Sprintf("%s - %s", a.AgencyCode, a.AgencyName))
			row++
		}
	}

	mainTitleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	f.SetCellStyle(sheetInstructions, "A1", "A1", mainTitleStyle)
	f.SetColWidth(sheetInstructions, "A", "A", 70)

	// --- Targets sheet ---
	f.NewSheet(targetSheetName)
	headers := []string{
		"Agency Code*",   // A
		"Category Type",  // B
		"Year*",          // C
		"Month*",         // D
		"Target Qty",     // E
		"Target Value",   // F
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(targetSheetName, cell, header)
	}
	f.SetColWidth(targetSheetName, "A", "F", 18)

	// Example row
	exampleAgency := "AG001"
	if len(agencies) > 0 {
		exampleAgency = agencies[0].AgencyCode
	}
	now := time.Now()
	f.SetCellValue(targetSheetName, "A2", exampleAgency)
	f.SetCellValue(targetSheetName, "B2", "")
	f.SetCellValue(targetSheetName, "C2", now.Year())
	f.SetCellValue(targetSheetName, "D2", int(now.Month()))
	f.SetCellValue(targetSheetName, "E2", 1000)
	f.SetCellValue(targetSheetName, "F2", 250000)

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(targetSheetName, "A1", "F1", headerStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write excel buffer: %w", err)
	}

	return buf, nil
}

// ImportTargetsFromExcel parses an uploaded workbook and upserts target rows.
// A bad row is recorded in the result and does not abort the batch.
func ImportTargetsFromExcel(db *gorm.DB, file io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheet := targetSheetName
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		// Fall back to the last sheet for hand-made workbooks
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("invalid excel format: no sheets")
		}
		sheet = sheets[len(sheets)-1]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read targets sheet: %w", err)
	}

	result := &ImportResult{Errors: []string{}}

	for i, row := range rows {
		if i == 0 {
			continue // Header
		}
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		result.TotalProcessed++

		if err := importTargetRow(db, row); err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		result.SuccessCount++
	}

	return result, nil
}

func importTargetRow(db *gorm.DB, row []string) error {
	cell := func(idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	agencyCode := cell(0)
	var agency models.Agency
	if err := db.Where("agency_code = ? AND is_active = ?", agencyCode, true).First(&agency).Error; err != nil {
		return fmt.Errorf("unknown agency code %q", agencyCode)
	}

	var categoryTypeID *uint
	if name := cell(1); name != "" {
		var ct models.CategoryType
		if err := db.Where("name = ? AND is_active = ?", name, true).First(&ct).Error; err != nil {
			return fmt.Errorf("unknown category type %q", name)
		}
		categoryTypeID = &ct.ID
	}

	year, err := strconv.Atoi(cell(2))
	if err != nil || year < 2000 || year > 2100 {
		return fmt.Errorf("invalid year %q", cell(2))
	}

	month, err := strconv.Atoi(cell(3))
	if err != nil || month < 1 || month > 12 {
		return fmt.Errorf("invalid month %q", cell(3))
	}

	qty, err := parseOptionalFloat(cell(4))
	if err != nil {
		return fmt.Errorf("invalid target qty %q", cell(4))
	}
	value, err := parseOptionalFloat(cell(5))
	if err != nil {
		return fmt.Errorf("invalid target value %q", cell(5))
	}

	// Overwrite an existing target for the same period
	var target models.SalesTarget
	query := db.Where("agency_id = ? AND target_year = ? AND target_month = ?", agency.ID, year, month)
	if categoryTypeID != nil {
		query = query.Where("category_type_id = ?", *categoryTypeID)
	} else {
		query = query.Where("category_type_id IS NULL")
	}

	if err := query.First(&target).Error; err == nil {
		target.TargetQty = qty
		target.TargetValue = value
		target.IsActive = true
		return db.Save(&target).Error
	}

	target = models.SalesTarget{
		AgencyID:       agency.ID,
		CategoryTypeID: categoryTypeID,
		TargetYear:     year,
		TargetMonth:    month,
		TargetQty:      qty,
		TargetValue:    value,
	}
	target.IsActive = true
	return db.Create(&target).Error
}

func parseOptionalFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
