package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/eshop-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/errors"
	service "github.com/aaravmahajanofficial/eshop-checkout/internal/services"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/utils/response"
)

// Stripe caps webhook payloads well below this.
const maxWebhookBodyBytes = 64 << 10

type WebhookHandler struct {
	checkoutService service.CheckoutService
}

func NewWebhookHandler(checkoutService service.CheckoutService) *WebhookHandler {
	return &WebhookHandler{checkoutService: checkoutService}
}

// HandleCheckoutWebhook godoc
//	@Summary		Payment provider webhook
//	@Description	Receives signed payment events. A completed checkout session turns its cart into a paid card order; other event types are acknowledged and ignored.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			Stripe-Signature	header		string					true	"Webhook signature"
//	@Success		200					{object}	map[string]bool			"Event received"
//	@Failure		400					{object}	response.ErrorResponse	"Invalid signature or payload"
//	@Failure		500					{object}	response.ErrorResponse	"Order could not be created, the provider will retry"
//	@Router			/webhook-checkout [post]
func (h *WebhookHandler) HandleCheckoutWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes))
		if err != nil {
			logger.Error("Error reading webhook body", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Failed to read request body").WithError(err))
			return
		}

		signature := r.Header.Get("Stripe-Signature")
		if signature == "" {
			logger.Warn("Missing Stripe signature")
			response.Error(w, errors.InvalidSignatureError("Stripe-Signature header is required"))
			return
		}

		if err := h.checkoutService.HandleWebhook(r.Context(), payload, signature); err != nil {
			logger.Error("Failed to process checkout webhook", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]bool{"received": true})
	}
}
