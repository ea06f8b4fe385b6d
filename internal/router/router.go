package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	QuoteBooking(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ListCourtOccurrences(c *ginext.Context)
	ListPricingRules(c *ginext.Context)
	ReplacePricingRules(c *ginext.Context)
	CheckIn(c *ginext.Context)
	NoShow(c *ginext.Context)
	CancelOccurrence(c *ginext.Context)
	CompleteOccurrence(c *ginext.Context)
	GetPayment(c *ginext.Context)
	PaymentQR(c *ginext.Context)
	ConfirmPayment(c *ginext.Context)
	CancelPayment(c *ginext.Context)
	ValidateVoucher(c *ginext.Context)
	CreateVoucher(c *ginext.Context)
	Stream(c *ginext.Context)
}

// InitRouter mounts the API. limit guards the mutating endpoints; mw runs on every request.
func InitRouter(mode string, h Handler, limit ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Reads
		api.GET("/bookings/:id", h.GetBooking)
		api.GET("/courts/:id/occurrences", h.ListCourtOccurrences)
		api.GET("/courts/:id/pricing-rules", h.ListPricingRules)
		api.GET("/payments/:id", h.GetPayment)
		api.GET("/payments/:id/qr", h.PaymentQR)
	}

	writes := api.Group("", limit)
	{
		// Bookings
		writes.POST("/bookings", h.CreateBooking)
		writes.POST("/bookings/quote", h.QuoteBooking)
		writes.POST("/bookings/:id/cancel", h.CancelBooking)

		// Pricing
		writes.PUT("/courts/:id/pricing-rules", h.ReplacePricingRules)

		// Occurrences
		writes.POST("/occurrences/:id/check-in", h.CheckIn)
		writes.POST("/occurrences/:id/no-show", h.NoShow)
		writes.POST("/occurrences/:id/cancel", h.CancelOccurrence)
		writes.POST("/occurrences/:id/complete", h.CompleteOccurrence)

		// Payments
		writes.POST("/payments/:id/confirm", h.ConfirmPayment)
		writes.POST("/payments/:id/cancel", h.CancelPayment)

		// Vouchers
		writes.POST("/vouchers", h.CreateVoucher)
		writes.POST("/vouchers/validate", h.ValidateVoucher)
	}

	router.GET("/ws", h.Stream)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
