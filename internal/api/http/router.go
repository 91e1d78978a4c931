// Package httpapi exposes the storage layer over REST. Handlers validate
// payload shape, delegate to the store and translate outcomes to HTTP
// statuses; they hold no state of their own.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"crave/internal/service"
)

type Handler struct {
	Store    service.Store
	Auth     *service.AuthService
	Payments service.PaymentProvider
	QR       service.QRGenerator
	BaseURL  string
	Log      *logrus.Logger
}

func NewHandler(store service.Store, auth *service.AuthService, payments service.PaymentProvider, qr service.QRGenerator, baseURL string, log *logrus.Logger) *Handler {
	if log == nil {
		log = logrus.New()
	}
	return &Handler{
		Store:    store,
		Auth:     auth,
		Payments: payments,
		QR:       qr,
		BaseURL:  baseURL,
		Log:      log,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.Use(requestLogger(h.Log))

	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/wallet", h.walletLogin).Methods("POST")

	r.HandleFunc("/api/users/{id}", h.getUser).Methods("GET")
	r.HandleFunc("/api/users/{id}", h.updateUser).Methods("PATCH")
	r.HandleFunc("/api/users/{id}/password", h.changePassword).Methods("POST")
	r.HandleFunc("/api/users/{id}/restaurants", h.getRestaurantsByOwner).Methods("GET")
	r.HandleFunc("/api/users/{id}/reviews", h.getReviewsByUser).Methods("GET")
	r.HandleFunc("/api/users/{id}/reservations", h.getReservationsByUser).Methods("GET")
	r.HandleFunc("/api/users/{id}/orders", h.getOrdersByUser).Methods("GET")

	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.updateRestaurant).Methods("PATCH")
	r.HandleFunc("/api/restaurants/{id}/reviews", h.getReviewsByRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/popular-dishes", h.getPopularDishes).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/tables", h.getTablesByRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/reservations", h.getReservationsByRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/orders", h.getOrdersByRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/music", h.getMusicByRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/currently-playing", h.getCurrentlyPlaying).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/service-requests", h.getServiceRequests).Methods("GET")

	r.HandleFunc("/api/reviews", h.createReview).Methods("POST")

	r.HandleFunc("/api/menu-items", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/menu-items/{id}", h.updateMenuItem).Methods("PATCH")

	r.HandleFunc("/api/tables", h.createTable).Methods("POST")
	r.HandleFunc("/api/tables/{id}", h.updateTable).Methods("PATCH")
	r.HandleFunc("/api/tables/{id}/qrcode", h.getTableQRCode).Methods("GET")

	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}", h.updateReservation).Methods("PATCH")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.updateOrder).Methods("PATCH")
	r.HandleFunc("/api/orders/{id}/items", h.getOrderItems).Methods("GET")
	r.HandleFunc("/api/order-items", h.createOrderItem).Methods("POST")

	r.HandleFunc("/api/music", h.createMusic).Methods("POST")
	r.HandleFunc("/api/music/{id}", h.updateMusic).Methods("PATCH")
	r.HandleFunc("/api/music/{id}/upvote", h.upvoteMusic).Methods("POST")

	r.HandleFunc("/api/service-requests", h.createServiceRequest).Methods("POST")
	r.HandleFunc("/api/service-requests/{id}", h.updateServiceRequest).Methods("PATCH")

	r.HandleFunc("/api/create-payment-intent", h.createPaymentIntent).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "crave",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
