package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"invoice-preview-backend/internal/config"
	"invoice-preview-backend/internal/handlers"
	"invoice-preview-backend/internal/render"
	"invoice-preview-backend/internal/repository"
	"invoice-preview-backend/internal/services/invoices"
	"invoice-preview-backend/internal/services/preview"
	"invoice-preview-backend/internal/services/rates"
	"invoice-preview-backend/internal/services/valuation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) error {
	invoiceRepo := repository.NewInvoiceRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	valuationLogRepo := repository.NewValuationLogRepository(db)

	refresher := valuation.NewService(
		rates.New(cfg.RatesBaseURL),
		invoiceRepo,
		valuation.WithLog(valuationLogRepo),
		valuation.WithDedupe(cfg.ValuationDedupe),
	)
	previewService := preview.NewService(
		preview.NewLoader(profileRepo, invoiceRepo),
		refresher,
		preview.Options{Title: cfg.AppTitle, Icon: cfg.AppIcon},
	)
	invoiceService := invoices.NewService(invoiceRepo, profileRepo, valuationLogRepo)

	renderer, err := render.New()
	if err != nil {
		return err
	}

	previewHandler := handlers.NewPreviewHandler(previewService, renderer)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)

	r.Use(handlers.Session())

	// Customer-facing page
	r.GET("/preview/:domain/:id", previewHandler.Preview)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Owner routes, scoped to the session user
	inv := api.Group("/invoices")
	{
		inv.GET("", invoiceHandler.ListInvoices)
		inv.GET("/:id", invoiceHandler.GetInvoice)
		inv.PUT("/:id", invoiceHandler.SaveInvoice)
		inv.GET("/:id/valuations", invoiceHandler.GetValuations)
	}
	api.GET("/profile", invoiceHandler.GetProfile)
	api.PUT("/profile", invoiceHandler.SaveProfile)

	return nil
}
