package handlers

import (
	"errors"
	"io"
	"net/http"

	response "arena_payments/internal/adapter/http/dto/response"
	"arena_payments/internal/domain/entities"
	"arena_payments/internal/usecase"
	"arena_payments/pkg"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 1 << 20

// WebhookHandler receives provider notifications. The route is public; authenticity
// is established by the gateway signature check and the status re-confirmation.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleWebhook godoc
// @Summary      Provider webhook
// @Description  Well-formed notifications that cannot be matched are acknowledged with 200 so providers stop retrying.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        provider  path      string  true  "Provider (hosted_checkout, mercadopago)"
// @Success      200       {object}  response.WebhookAckResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      401       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Failure      503       {object}  pkg.HTTPError
// @Router       /webhook/{provider} [post]
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(errUnreadableBody.HTTPStatus, errUnreadableBody.ToHTTPError())
		return
	}

	ack, err := h.usecase.HandleWebhook(c.Request.Context(), c.Param("provider"), payload, c.Request.Header)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingProviderToken) {
			c.JSON(http.StatusOK, response.WebhookAckResponse{Received: true, Outcome: "ignored"})
			return
		}
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWebhookAck(ack))
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUnknownProvider):
		return pkg.NewDomainErrorSimple("UNKNOWN_PROVIDER", "Unknown webhook provider", http.StatusNotFound)
	default:
		return mapDomainError(err)
	}
}
