package tests

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantLocationQuery(t *testing.T) {
	e := newEnv(t, nil)
	require.Equal(t, http.StatusCreated,
		e.do("POST", "/api/restaurants", restaurantPayload("near", 40.0, -74.0)).Code)
	require.Equal(t, http.StatusCreated,
		e.do("POST", "/api/restaurants", restaurantPayload("far", 41.0, -74.0)).Code)

	// Without coordinates: everything, no distance attached.
	w := e.do("GET", "/api/restaurants", "")
	require.Equal(t, http.StatusOK, w.Code)
	all := decodeList(t, w)
	require.Len(t, all, 2)
	assert.NotContains(t, all[0], "distance")

	// Radius query: only the nearby one, with its distance.
	w = e.do("GET", "/api/restaurants?latitude=40.0&longitude=-74.0&radius=10", "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeList(t, w)
	require.Len(t, got, 1)
	assert.Equal(t, "near", got[0]["name"])
	assert.InDelta(t, 0, got[0]["distance"].(float64), 0.001)

	// Default radius is 10 km.
	got = decodeList(t, e.do("GET", "/api/restaurants?latitude=40.0&longitude=-74.0", ""))
	assert.Len(t, got, 1)

	assert.Equal(t, http.StatusBadRequest,
		e.do("GET", "/api/restaurants?latitude=abc&longitude=-74.0", "").Code)
}

func TestGetRestaurant(t *testing.T) {
	e := newEnv(t, nil)
	require.Equal(t, http.StatusCreated,
		e.do("POST", "/api/restaurants", restaurantPayload("solo", 40.0, -74.0)).Code)

	w := e.do("GET", "/api/restaurants/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "solo", decodeMap(t, w)["name"])

	w = e.do("GET", "/api/restaurants/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Restaurant not found", decodeMap(t, w)["message"])
}

func TestCreateRestaurantValidation(t *testing.T) {
	e := newEnv(t, nil)

	w := e.do("POST", "/api/restaurants", `{"name":"x","ownerId":1,"latitude":120}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	msg, _ := decodeMap(t, w)["message"].(string)
	assert.Contains(t, msg, "latitude must be between -90 and 90")
	assert.Contains(t, msg, "cuisine is required")
}

func TestPopularDishes(t *testing.T) {
	e := newEnv(t, nil)
	for i, pop := range []float64{50, 95, 70, 10, 85} {
		body := fmt.Sprintf(`{"restaurantId":1,"name":"dish-%d","price":9.99,"category":"Main","popularity":%f}`, i, pop)
		require.Equal(t, http.StatusCreated, e.do("POST", "/api/menu-items", body).Code)
	}

	// Default limit is 4.
	got := decodeList(t, e.do("GET", "/api/restaurants/1/popular-dishes", ""))
	require.Len(t, got, 4)
	assert.Equal(t, 95.0, got[0]["popularity"])
	assert.Equal(t, 85.0, got[1]["popularity"])

	got = decodeList(t, e.do("GET", "/api/restaurants/1/popular-dishes?limit=2", ""))
	assert.Len(t, got, 2)

	// Full menu is unsorted and unbounded.
	assert.Len(t, decodeList(t, e.do("GET", "/api/restaurants/1/menu", "")), 5)
}

func TestMusicFlow(t *testing.T) {
	e := newEnv(t, nil)

	w := e.do("POST", "/api/music", `{"restaurantId":1,"title":"A","artist":"B","requestedBy":1}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 0.0, decodeMap(t, w)["upvotes"])

	for i := 1; i <= 3; i++ {
		w = e.do("POST", "/api/music/1/upvote", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(i), decodeMap(t, w)["upvotes"])
	}

	w = e.do("POST", "/api/music/999/upvote", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Music not found", decodeMap(t, w)["message"])

	// Nothing playing yet.
	assert.Equal(t, http.StatusNotFound, e.do("GET", "/api/restaurants/1/currently-playing", "").Code)

	require.Equal(t, http.StatusOK, e.do("PATCH", "/api/music/1", `{"isPlaying":true}`).Code)
	w = e.do("GET", "/api/restaurants/1/currently-playing", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "A", decodeMap(t, w)["title"])
}

func TestServiceRequestLifecycle(t *testing.T) {
	e := newEnv(t, nil)

	w := e.do("POST", "/api/service-requests", `{"userId":1,"restaurantId":1,"tableId":1,"type":"waiter"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "pending", decodeMap(t, w)["status"])

	w = e.do("PATCH", "/api/service-requests/1", `{"status":"eaten"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Completing twice is allowed: there is no terminal-state lock.
	for i := 0; i < 2; i++ {
		w = e.do("PATCH", "/api/service-requests/1", `{"status":"completed"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "completed", decodeMap(t, w)["status"])
	}

	w = e.do("PATCH", "/api/service-requests/42", `{"status":"completed"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Service request not found", decodeMap(t, w)["message"])
}

func TestReservationFlow(t *testing.T) {
	e := newEnv(t, nil)

	w := e.do("POST", "/api/reservations",
		`{"userId":1,"restaurantId":1,"date":"2025-06-01T00:00:00Z","time":"7:00 PM","guests":2}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "pending", decodeMap(t, w)["status"])

	w = e.do("PATCH", "/api/reservations/1", `{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "confirmed", decodeMap(t, w)["status"])

	assert.Equal(t, http.StatusBadRequest, e.do("PATCH", "/api/reservations/1", `{"status":"noshow"}`).Code)

	got := decodeList(t, e.do("GET", "/api/users/1/reservations", ""))
	assert.Len(t, got, 1)
	assert.Len(t, decodeList(t, e.do("GET", "/api/restaurants/1/reservations", "")), 1)
}

func TestOrderWithItems(t *testing.T) {
	e := newEnv(t, nil)

	w := e.do("POST", "/api/orders", `{"userId":1,"restaurantId":1,"tableId":1,"total":30.50}`)
	require.Equal(t, http.StatusCreated, w.Code)
	order := decodeMap(t, w)
	assert.Equal(t, "pending", order["status"])

	require.Equal(t, http.StatusCreated,
		e.do("POST", "/api/order-items", `{"orderId":1,"menuItemId":1,"quantity":2,"subtotal":20.50}`).Code)
	require.Equal(t, http.StatusCreated,
		e.do("POST", "/api/order-items", `{"orderId":1,"menuItemId":2,"quantity":1,"subtotal":10}`).Code)

	items := decodeList(t, e.do("GET", "/api/orders/1/items", ""))
	require.Len(t, items, 2)

	w = e.do("PATCH", "/api/orders/1", `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "completed", decodeMap(t, w)["status"])

	assert.Equal(t, http.StatusBadRequest,
		e.do("POST", "/api/order-items", `{"orderId":1,"menuItemId":2,"quantity":0,"subtotal":1}`).Code)
}

func TestTableQRCode(t *testing.T) {
	e := newEnv(t, nil)
	require.Equal(t, http.StatusCreated,
		e.do("POST", "/api/tables", `{"restaurantId":1,"tableNumber":"12","capacity":4}`).Code)

	w := e.do("GET", "/api/tables/1/qrcode", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())

	assert.Equal(t, http.StatusNotFound, e.do("GET", "/api/tables/9/qrcode", "").Code)
}

func TestReviews(t *testing.T) {
	e := newEnv(t, nil)

	w := e.do("POST", "/api/reviews", `{"restaurantId":1,"userId":1,"rating":4.5,"comment":"great"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, http.StatusBadRequest,
		e.do("POST", "/api/reviews", `{"restaurantId":1,"userId":1,"rating":5.5}`).Code)

	got := decodeList(t, e.do("GET", "/api/restaurants/1/reviews", ""))
	require.Len(t, got, 1)
	assert.Equal(t, 4.5, got[0]["rating"])
	assert.Len(t, decodeList(t, e.do("GET", "/api/users/1/reviews", "")), 1)
}

func TestHealth(t *testing.T) {
	e := newEnv(t, nil)
	w := e.do("GET", "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decodeMap(t, w)["status"])
}
