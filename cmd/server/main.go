package main

import (
	"log"
	"time"

	"sales_demarcation_go/config"
	"sales_demarcation_go/db"
	"sales_demarcation_go/handlers"
	"sales_demarcation_go/middleware"
	"sales_demarcation_go/models"
	"sales_demarcation_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.TursoDatabaseURL, cfg.TursoAuthToken, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.Country{}, &models.Channel{}, &models.SubChannel{},
		&models.Region{}, &models.Area{}, &models.AreaRegion{},
		&models.Territory{}, &models.Route{},
		&models.Agency{}, &models.Distributor{}, &models.AgencyDistributor{},
		&models.Warehouse{},
		&models.CategoryType{}, &models.MainCategory{}, &models.SubCategory{}, &models.SubSubCategory{},
		&models.SalesTarget{}, &models.Invoice{}, &models.InvoiceLine{},
		&models.User{}, &models.Session{}, &models.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize document storage (R2 with local fallback)
	services.InitializeStorage(cfg)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	api := e.Group("/api/v1")

	// Public auth routes
	loginLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Requests: 5,
		Window:   time.Minute,
		Message:  "Too many login attempts. Please try again later.",
	})
	signupLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Requests: 3,
		Window:   time.Minute,
		Message:  "Too many sign-up attempts. Please try again later.",
	})
	auth := api.Group("/auth")
	auth.POST("/signup", handlers.SignupHandler, signupLimiter.Middleware())
	auth.POST("/login", handlers.LoginHandler, loginLimiter.Middleware())

	// Authenticated auth routes
	authProtected := api.Group("/auth")
	authProtected.Use(middleware.RequireAuth())
	authProtected.POST("/logout", handlers.LogoutHandler)
	authProtected.GET("/me", handlers.GetCurrentUserHandler)

	// Demarcation administration (reads for all roles, writes for admin/manager)
	demarcation := api.Group("/userDemarcation")
	demarcation.Use(middleware.RequireAuth())
	demarcation.Use(middleware.AuditContext())
	demarcation.Use(middleware.RequireWriteRole("admin", "manager"))
	handlers.RegisterDemarcationCRUD(demarcation)
	handlers.RegisterDemarcationQueries(demarcation)

	// Product category hierarchy
	hierarchy := api.Group("/productHierarchy")
	hierarchy.Use(middleware.RequireAuth())
	hierarchy.Use(middleware.AuditContext())
	hierarchy.Use(middleware.RequireWriteRole("admin", "manager"))
	handlers.RegisterCategoryCRUD(hierarchy)
	handlers.RegisterCategoryQueries(hierarchy)

	// Sales targets and invoices
	sales := api.Group("/sales")
	sales.Use(middleware.RequireAuth())
	sales.Use(middleware.AuditContext())
	sales.Use(middleware.RequireWriteRole("admin", "manager"))
	handlers.RegisterSalesTargetCRUD(sales)
	sales.GET("/target/template", handlers.DownloadTargetTemplateHandler)
	sales.POST("/target/import", handlers.ImportTargetsHandler)
	sales.GET("/invoice", handlers.GetInvoicesHandler)
	sales.GET("/invoice/findById/:id", handlers.GetInvoiceByIDHandler)
	sales.GET("/invoice/byAgencyId/:parentId", handlers.GetInvoicesByAgencyHandler)
	sales.GET("/invoice/:id/document", handlers.DownloadInvoiceDocumentHandler)
	sales.GET("/invoice/:id/pdf", handlers.DownloadInvoicePDFHandler)

	// User administration (admin only)
	users := api.Group("/user")
	users.Use(middleware.RequireAuth())
	users.Use(middleware.RequireRole("admin"))
	users.GET("", handlers.GetUsersHandler)
	users.PUT("/activate/:id", handlers.ActivateUserHandler)
	users.PUT("/role/:id", handlers.UpdateUserRoleHandler)

	// Audit trail (admin only)
	audit := api.Group("/audit")
	audit.Use(middleware.RequireAuth())
	audit.Use(middleware.RequireRole("admin"))
	audit.GET("", handlers.GetAuditLogsHandler)

	// Periodically clean up expired sessions
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := services.CleanupExpiredSessions(db.DB); err != nil {
				log.Printf("Failed to cleanup expired sessions: %v", err)
			}
		}
	}()

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
