package routes

import (
	"arena_payments/internal/adapter/http/handlers"
	"arena_payments/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathPayment  = "/payment"
	PathWebhook  = "/webhook"
	PathPayouts  = "/payouts"
	PathPayments = "/payments"
)

type paymentHandlers struct {
	checkout *handlers.CheckoutHandler
	webhook  *handlers.WebhookHandler
	payout   *handlers.PayoutHandler
}

func addPaymentRoutes(rg *gin.RouterGroup, h paymentHandlers, jwtSecret string) {
	// Public: providers authenticate with signatures, not tokens.
	rg.POST(PathWebhook+"/:provider", h.webhook.HandleWebhook)

	auth := middleware.AuthRequired(jwtSecret)

	booking := rg.Group("", auth)
	{
		booking.POST(PathCheckout, h.checkout.CreateCheckout)
		booking.GET(PathPayment+"/:id/status", h.checkout.GetPaymentStatus)
	}

	admin := rg.Group("", auth, middleware.RoleRequired(middleware.RoleAdmin))
	{
		admin.GET(PathPayouts, h.payout.ListPayouts)
		admin.GET(PathPayouts+"/:id", h.payout.GetPayout)
		admin.POST(PathPayouts+"/:id/retry", h.payout.RetryPayout)
		admin.GET(PathPayments+"/:id/payouts", h.payout.ListPaymentPayouts)
	}
}
