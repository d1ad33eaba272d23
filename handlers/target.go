package handlers

import (
	"net/http"

	"sales_demarcation_go/db"
	"sales_demarcation_go/middleware"
	"sales_demarcation_go/services"

	"github.com/labstack/echo/v4"
)

// DownloadTargetTemplateHandler streams the pre-filled import workbook
// GET /api/v1/sales/target/template
func DownloadTargetTemplateHandler(c echo.Context) error {
	buf, err := services.GenerateTargetTemplate(db.DB)
	if err != nil {
		return respondMessage(c, http.StatusInternalServerError, "Could not generate template.")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="sales_target_template.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// ImportTargetsHandler ingests an uploaded workbook. Row failures are
// collected in the result, never aborting the remainder of the batch.
// POST /api/v1/sales/target/import
func ImportTargetsHandler(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondFieldErrors(c, http.StatusBadRequest, map[string]string{
			"file": "a workbook file is required",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return respondMessage(c, http.StatusBadRequest, "Could not read uploaded file.")
	}
	defer src.Close()

	result, err := services.ImportTargetsFromExcel(db.DB, src)
	if err != nil {
		return respondMessage(c, http.StatusBadRequest, "The uploaded file is not a valid workbook.")
	}

	// Archive the original upload when object storage is available.
	if services.Storage != nil && services.Storage.IsConfigured() {
		if _, seekErr := src.Seek(0, 0); seekErr == nil {
			key := services.GenerateTargetImportKey(fileHeader.Filename)
			if _, upErr := services.Storage.UploadReader(c.Request().Context(), src, key, fileHeader.Header.Get("Content-Type"), fileHeader.Size); upErr != nil {
				services.LogSecurityEvent("TARGET_IMPORT_ARCHIVE_FAILED", 0, upErr.Error())
			}
		}
	}

	services.RecordAudit(db.DB, middleware.GetAuditContext(c), "salesTarget", 0, "import")

	return respondPayload(c, http.StatusOK, result)
}
