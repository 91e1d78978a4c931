package httpapi

import (
	"encoding/json"
	"math"
	"net/http"
)

// createPaymentIntent asks the payment processor for an intent and returns
// its opaque client secret. The processor is optional: without a configured
// key the endpoint reports a 500, matching a misconfigured deployment rather
// than a client mistake.
func (h *Handler) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	if h.Payments == nil {
		writeMessage(w, http.StatusInternalServerError,
			"Stripe is not configured. Please add STRIPE_SECRET_KEY to your environment variables.")
		return
	}

	var req struct {
		Amount     float64 `json:"amount"`
		CustomerID string  `json:"customerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Amount <= 0 {
		writeMessage(w, http.StatusBadRequest, "amount must be a positive number")
		return
	}

	secret, err := h.Payments.CreatePaymentIntent(r.Context(), int64(math.Round(req.Amount)), req.CustomerID)
	if err != nil {
		h.Log.WithError(err).Error("payment intent creation failed")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": secret})
}
