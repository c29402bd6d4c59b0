package handlers

import (
	"net/http"

	request "arena_payments/internal/adapter/http/dto/request"
	response "arena_payments/internal/adapter/http/dto/response"
	"arena_payments/internal/adapter/http/middleware"
	"arena_payments/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler serves the authenticated booking endpoints.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateCheckout godoc
// @Summary      Open a checkout session
// @Description  Computes the commission split and returns the provider's hosted checkout URL.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.CheckoutRequest  true  "Reservation to pay"
// @Success      201   {object}  response.CheckoutResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /checkout [post]
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	reservationID := payload.ResolveReservationID()
	if reservationID == "" {
		c.JSON(errMissingReservationID.HTTPStatus, errMissingReservationID.ToHTTPError())
		return
	}

	session, err := h.usecase.CreateCheckout(c.Request.Context(), reservationID, middleware.UserID(c))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCheckoutSession(session))
}

// GetPaymentStatus godoc
// @Summary      Payment status
// @Tags         checkout
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  response.PaymentStatusResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payment/{id}/status [get]
func (h *CheckoutHandler) GetPaymentStatus(c *gin.Context) {
	payment, err := h.usecase.GetPaymentStatus(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}
