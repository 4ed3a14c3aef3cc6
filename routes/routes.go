package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"timberbill-backend/controllers"
	"timberbill-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Public auth endpoints
	api.Post("/register", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticated())

	// Idempotency guard FIRST (not tied to the request TX)
	protected.Use(middlewares.Idempotency())

	// Then the per-request transaction for mutating methods
	protected.Use(middlewares.Tx())

	// Bills
	protected.Get("/bills/next-invoice", controllers.NextInvoiceNo)
	protected.Get("/bills/price-history/:productName", controllers.GetPriceHistory)
	protected.Post("/bills", controllers.CreateBill)
	protected.Get("/bills", controllers.GetBills)
	protected.Get("/bills/:id", controllers.GetBill)
	protected.Put("/bills/:id", controllers.UpdateBill)
	protected.Delete("/bills/:id", controllers.DeleteBill)

	// Drafts
	protected.Post("/drafts", controllers.CreateDraft)
	protected.Get("/drafts", controllers.GetDrafts)
	protected.Get("/drafts/:id", controllers.GetDraft)
	protected.Put("/drafts/:id", controllers.UpdateDraft)
	protected.Delete("/drafts/:id", controllers.DeleteDraft)
	protected.Post("/drafts/:id/promote", controllers.PromoteDraft)
	protected.Put("/drafts/:id/apply-percent", controllers.ApplyPercentToDraft)

	// Customers
	protected.Post("/customers", controllers.CreateCustomer)
	protected.Get("/customers", controllers.GetCustomers)
	protected.Get("/customers/:id", controllers.GetCustomer)
	protected.Put("/customers/:id", controllers.UpdateCustomer)
	protected.Delete("/customers/:id", controllers.DeleteCustomer)

	// Catalog reads
	protected.Get("/catalog", controllers.GetCatalogTree)
	protected.Get("/catalog/categories", controllers.GetCategories)
	protected.Get("/catalog/categories/:id/materials", controllers.GetMaterialsByCategory)
	protected.Get("/catalog/materials/:id/sizes", controllers.GetSizesByMaterial)
	protected.Get("/catalog/materials/:id/fittings", controllers.GetFittingsByMaterial)

	// Catalog writes
	protected.Post("/catalog/categories", controllers.CreateCategory)
	protected.Post("/catalog/materials", controllers.CreateMaterial)
	protected.Post("/catalog/sizes", controllers.CreateSize)
	protected.Post("/catalog/fittings", controllers.CreateFitting)

	// Catalog deactivation cascades; admin only
	admin := protected.Group("", middlewares.RequireAdmin())
	admin.Delete("/catalog/categories/:id", controllers.DeleteCategory)
	admin.Delete("/catalog/materials/:id", controllers.DeleteMaterial)
	admin.Delete("/catalog/sizes/:id", controllers.DeleteSize)
	admin.Delete("/catalog/fittings/:id", controllers.DeleteFitting)

	// Reports
	protected.Get("/reports/summary", controllers.GetSummary)
	protected.Get("/reports/revenue-trend", controllers.GetRevenueTrend)
	protected.Get("/reports/top-customers", controllers.GetTopCustomers)
	protected.Get("/reports/top-products", controllers.GetTopProducts)
	protected.Get("/reports/payment-status", controllers.GetPaymentStatus)
	protected.Get("/reports/recent-bills", controllers.GetRecentBills)
}
