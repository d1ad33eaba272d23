package handlers

import (
	"io"
	"net/http/httptest"
	"testing"

	"sales_demarcation_go/config"
	"sales_demarcation_go/db"
	"sales_demarcation_go/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests while allowing shared cache for async tasks
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	err = testDB.AutoMigrate(
		&models.Country{},
		&models.Channel{},
		&models.SubChannel{},
		&models.Region{},
		&models.Area{},
		&models.AreaRegion{},
		&models.Territory{},
		&models.Route{},
		&models.Agency{},
		&models.Distributor{},
		&models.AgencyDistributor{},
		&models.Warehouse{},
		&models.CategoryType{},
		&models.MainCategory{},
		&models.SubCategory{},
		&models.SubSubCategory{},
		&models.SalesTarget{},
		&models.Invoice{},
		&models.InvoiceLine{},
		&models.User{},
		&models.Session{},
		&models.AuditLog{},
	)
	assert.NoError(t, err)

	// Set global DB
	db.DB = testDB

	return testDB
}

// setupRouter builds an Echo instance with every administration route group
// registered, minus the auth middleware, so tests exercise the real routing.
func setupRouter() *echo.Echo {
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", &config.Config{Environment: "test", EmailTestMode: true})
			return next(c)
		}
	})

	api := e.Group("/api/v1")

	demarcation := api.Group("/userDemarcation")
	RegisterDemarcationCRUD(demarcation)
	RegisterDemarcationQueries(demarcation)

	hierarchy := api.Group("/productHierarchy")
	RegisterCategoryCRUD(hierarchy)
	RegisterCategoryQueries(hierarchy)

	sales := api.Group("/sales")
	RegisterSalesTargetCRUD(sales)
	sales.GET("/target/template", DownloadTargetTemplateHandler)
	sales.POST("/target/import", ImportTargetsHandler)
	sales.GET("/invoice", GetInvoicesHandler)
	sales.GET("/invoice/findById/:id", GetInvoiceByIDHandler)
	sales.GET("/invoice/byAgencyId/:parentId", GetInvoicesByAgencyHandler)

	return e
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", &config.Config{
		Environment:      "test",
		EmailTestMode:    true,
		TokenSecret:      "test-secret-for-handler-tests-0123456789",
		AccessTokenHours: 24,
	})

	return e, c, rec
}

func seedChannel(t *testing.T, database *gorm.DB) *models.Channel {
	country := &models.Country{CountryCode: "LKA", CountryName: "Sri Lanka"}
	assert.NoError(t, database.Create(country).Error)

	channel := &models.Channel{ChannelCode: "CH01", ChannelName: "Retail", CountryID: country.ID}
	channel.IsActive = true
	assert.NoError(t, database.Create(channel).Error)
	return channel
}
