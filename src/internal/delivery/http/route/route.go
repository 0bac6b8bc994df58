package route

import (
	"github.com/gofiber/fiber/v2"

	"storefront-service/src/internal/delivery/http"
)

type RouteConfig struct {
	App               *fiber.App
	WalletController  *http.WalletController
	POSController     *http.POSController
	PaymentController *http.PaymentController
	VisitorController *http.VisitorController
	ProductController *http.ProductController
	AuthMiddleware    fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.SetupPublicRoute()
	c.SetupAuthRoute()
}

// SetupPublicRoute registers everything reachable without a session. The
// invoice lookup is public on purpose so customers can regenerate an
// invoice; the funding callback is hit by the payment provider's browser
// redirect.
func (c *RouteConfig) SetupPublicRoute() {
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.App.Get("/products/v1", c.ProductController.ListProducts)
	c.App.Get("/products/v1/:id", c.ProductController.GetProduct)
	c.App.Get("/pos/v1/transactions/:id/invoice", c.POSController.GetInvoice)
	c.App.Post("/visitors/v1/track", c.VisitorController.Track)
	c.App.Get("/wallet/v1/funding/callback", c.PaymentController.FundingCallback)
}

func (c *RouteConfig) SetupAuthRoute() {
	c.App.Use(c.AuthMiddleware)
	c.App.Get("/wallet/v1/balance", c.WalletController.GetBalance)
	c.App.Get("/wallet/v1/transactions", c.WalletController.ListTransactions)
	c.App.Post("/wallet/v1/credit", c.WalletController.Credit)
	c.App.Post("/wallet/v1/debit", c.WalletController.Debit)
	c.App.Get("/payments/v1/banks/:country", c.PaymentController.ListBanks)
	c.App.Post("/pos/v1/transactions", c.POSController.CreateSale)
	c.App.Post("/pos/v1/transactions/:id/pay", c.POSController.ConfirmPayment)
	c.App.Post("/pos/v1/transactions/:id/cancel", c.POSController.CancelSale)
	c.App.Get("/visitors/v1/active", c.VisitorController.ActiveCount)
	c.App.Post("/products/v1", c.ProductController.CreateProduct)
	c.App.Put("/products/v1/:id", c.ProductController.UpdateProduct)
}
