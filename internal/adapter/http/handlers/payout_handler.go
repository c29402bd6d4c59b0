package handlers

import (
	"net/http"
	"strconv"

	response "arena_payments/internal/adapter/http/dto/response"
	"arena_payments/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PayoutHandler exposes payouts to operators. Every route requires the admin role.
type PayoutHandler struct {
	usecase usecase.IPayoutUseCase
}

func NewPayoutHandler(uc usecase.IPayoutUseCase) *PayoutHandler {
	return &PayoutHandler{usecase: uc}
}

// ListPayouts godoc
// @Summary      List payouts by status
// @Tags         payouts
// @Produce      json
// @Security     Bearer
// @Param        status  query     string  true   "processing, completed or failed"
// @Param        limit   query     int     false  "Max rows (default 50, max 200)"
// @Success      200     {array}   response.PayoutResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /payouts [get]
func (h *PayoutHandler) ListPayouts(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(errInvalidLimit.HTTPStatus, errInvalidLimit.ToHTTPError())
			return
		}
		limit = n
	}

	payouts, err := h.usecase.ListByStatus(c.Request.Context(), c.Query("status"), limit)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayouts(payouts))
}

// GetPayout godoc
// @Summary      Get a payout
// @Description  With live=true the channel is asked for the current status of a submitted payout.
// @Tags         payouts
// @Produce      json
// @Security     Bearer
// @Param        id    path      string  true   "Payout ID"
// @Param        live  query     bool    false  "Fetch live provider status"
// @Success      200   {object}  response.PayoutResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /payouts/{id} [get]
func (h *PayoutHandler) GetPayout(c *gin.Context) {
	ctx := c.Request.Context()
	payout, err := h.usecase.GetByID(ctx, c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.FromPayout(payout)
	if live, _ := strconv.ParseBool(c.Query("live")); live && payout.ProviderID != "" {
		// A failing provider must not hide the stored record.
		status, err := h.usecase.ProviderStatus(ctx, payout.ID)
		if err != nil {
			res.Live = &response.LiveStatusResponse{Error: mapDomainError(err).Message}
		} else {
			res.Live = response.FromLiveStatus(status)
		}
	}

	c.JSON(http.StatusOK, res)
}

// RetryPayout godoc
// @Summary      Retry a failed payout
// @Tags         payouts
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Payout ID"
// @Success      200  {object}  response.DispatchResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payouts/{id}/retry [post]
func (h *PayoutHandler) RetryPayout(c *gin.Context) {
	result, err := h.usecase.RetryPayout(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDispatchResult(result))
}

// ListPaymentPayouts godoc
// @Summary      Payout attempts of a payment
// @Tags         payouts
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {array}   response.PayoutResponse
// @Router       /payments/{id}/payouts [get]
func (h *PayoutHandler) ListPaymentPayouts(c *gin.Context) {
	payouts, err := h.usecase.ListByPaymentID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayouts(payouts))
}
