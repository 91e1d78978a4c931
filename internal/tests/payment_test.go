package tests

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crave/internal/mocks"
)

func TestCreatePaymentIntent(t *testing.T) {
	provider := new(mocks.PaymentProvider)
	provider.On("CreatePaymentIntent", mock.Anything, int64(1999), "cus_123").
		Return("pi_secret_abc", nil)
	e := newEnv(t, provider)

	w := e.do("POST", "/api/create-payment-intent", `{"amount":1999,"customerId":"cus_123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pi_secret_abc", decodeMap(t, w)["clientSecret"])
	provider.AssertExpectations(t)
}

func TestCreatePaymentIntentRoundsAmount(t *testing.T) {
	provider := new(mocks.PaymentProvider)
	provider.On("CreatePaymentIntent", mock.Anything, int64(2000), "").
		Return("pi_secret", nil)
	e := newEnv(t, provider)

	w := e.do("POST", "/api/create-payment-intent", `{"amount":1999.5}`)
	assert.Equal(t, http.StatusOK, w.Code)
	provider.AssertExpectations(t)
}

func TestCreatePaymentIntentRejectsBadAmount(t *testing.T) {
	provider := new(mocks.PaymentProvider)
	e := newEnv(t, provider)

	for _, body := range []string{`{"amount":0}`, `{"amount":-5}`, `{}`} {
		w := e.do("POST", "/api/create-payment-intent", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "amount must be a positive number", decodeMap(t, w)["message"])
	}
	provider.AssertNotCalled(t, "CreatePaymentIntent")
}

func TestCreatePaymentIntentProviderError(t *testing.T) {
	provider := new(mocks.PaymentProvider)
	provider.On("CreatePaymentIntent", mock.Anything, int64(500), "").
		Return("", errors.New("card declined"))
	e := newEnv(t, provider)

	w := e.do("POST", "/api/create-payment-intent", `{"amount":500}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decodeMap(t, w)["message"])
}

func TestCreatePaymentIntentWithoutProvider(t *testing.T) {
	e := newEnv(t, nil)

	w := e.do("POST", "/api/create-payment-intent", `{"amount":1000}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t,
		"Stripe is not configured. Please add STRIPE_SECRET_KEY to your environment variables.",
		decodeMap(t, w)["message"])
}
