package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	httpapi "crave/internal/api/http"
	"crave/internal/service"
	"crave/internal/storage"
)

type env struct {
	router *mux.Router
	store  *storage.MemStore
}

func newEnv(t *testing.T, provider service.PaymentProvider) *env {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	store := storage.NewMemStore()
	handler := httpapi.NewHandler(
		store,
		service.NewAuthService(store),
		provider,
		service.DefaultQRGenerator{},
		"http://localhost:5000",
		log,
	)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return &env{router: router, store: store}
}

func (e *env) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var l []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &l))
	return l
}

func registerPayload(username, email string) string {
	return fmt.Sprintf(`{"username":%q,"password":"secret123","email":%q,"name":"Test User"}`, username, email)
}

func restaurantPayload(name string, lat, lon float64) string {
	return fmt.Sprintf(`{
		"name": %q,
		"ownerId": 1,
		"description": "a place",
		"cuisine": "Test",
		"address": "1 Test St",
		"city": "Testville",
		"latitude": %f,
		"longitude": %f,
		"phone": "555-0100",
		"openingTime": "09:00 AM",
		"closingTime": "10:00 PM",
		"priceRange": "$$",
		"features": ["Dine-in"],
		"images": []
	}`, name, lat, lon)
}
