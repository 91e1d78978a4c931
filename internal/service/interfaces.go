package service

import (
	"context"

	"crave/internal/domain"
)

// Store is the full surface the HTTP layer and services depend on. The
// in-memory store implements it; tests may substitute their own. Lookups
// report absence with a bool, never an error: storage cannot fail.
type Store interface {
	GetUser(id int) (domain.User, bool)
	GetUserByUsername(username string) (domain.User, bool)
	GetUserByEmail(email string) (domain.User, bool)
	GetUserByWalletAddress(addr string) (domain.User, bool)
	CreateUser(in domain.CreateUser) domain.User
	UpdateUser(id int, p domain.PatchUser) (domain.User, bool)
	SetUserPassword(id int, hashed string) bool

	GetRestaurant(id int) (domain.Restaurant, bool)
	GetRestaurantsByOwner(ownerID int) []domain.Restaurant
	GetRestaurantsByLocation(lat, lon, radiusKm float64) []domain.RestaurantWithDistance
	GetAllRestaurants() []domain.Restaurant
	CreateRestaurant(in domain.CreateRestaurant) domain.Restaurant
	UpdateRestaurant(id int, p domain.PatchRestaurant) (domain.Restaurant, bool)

	GetReview(id int) (domain.Review, bool)
	GetReviewsByRestaurant(restaurantID int) []domain.Review
	GetReviewsByUser(userID int) []domain.Review
	CreateReview(in domain.CreateReview) domain.Review

	GetMenuItem(id int) (domain.MenuItem, bool)
	GetMenuItemsByRestaurant(restaurantID int) []domain.MenuItem
	GetPopularMenuItems(restaurantID, limit int) []domain.MenuItem
	CreateMenuItem(in domain.CreateMenuItem) domain.MenuItem
	UpdateMenuItem(id int, p domain.PatchMenuItem) (domain.MenuItem, bool)

	GetTable(id int) (domain.Table, bool)
	GetTablesByRestaurant(restaurantID int) []domain.Table
	CreateTable(in domain.CreateTable) domain.Table
	UpdateTable(id int, p domain.PatchTable) (domain.Table, bool)

	GetReservation(id int) (domain.Reservation, bool)
	GetReservationsByUser(userID int) []domain.Reservation
	GetReservationsByRestaurant(restaurantID int) []domain.Reservation
	CreateReservation(in domain.CreateReservation) domain.Reservation
	UpdateReservation(id int, p domain.PatchReservation) (domain.Reservation, bool)

	GetOrder(id int) (domain.Order, bool)
	GetOrdersByUser(userID int) []domain.Order
	GetOrdersByRestaurant(restaurantID int) []domain.Order
	CreateOrder(in domain.CreateOrder) domain.Order
	UpdateOrder(id int, p domain.PatchOrder) (domain.Order, bool)

	GetOrderItem(id int) (domain.OrderItem, bool)
	GetOrderItemsByOrder(orderID int) []domain.OrderItem
	CreateOrderItem(in domain.CreateOrderItem) domain.OrderItem

	GetMusic(id int) (domain.Music, bool)
	GetMusicByRestaurant(restaurantID int) []domain.Music
	GetCurrentlyPlayingMusic(restaurantID int) (domain.Music, bool)
	CreateMusic(in domain.CreateMusic) domain.Music
	UpdateMusic(id int, p domain.PatchMusic) (domain.Music, bool)
	UpvoteMusic(id int) (domain.Music, bool)

	GetServiceRequest(id int) (domain.ServiceRequest, bool)
	GetServiceRequestsByRestaurant(restaurantID int) []domain.ServiceRequest
	CreateServiceRequest(in domain.CreateServiceRequest) domain.ServiceRequest
	UpdateServiceRequest(id int, p domain.PatchServiceRequest) (domain.ServiceRequest, bool)
}

// PaymentProvider creates a payment intent with the processor and returns its
// opaque client secret. Amount is in minor currency units.
type PaymentProvider interface {
	CreatePaymentIntent(ctx context.Context, amount int64, customerID string) (string, error)
}

// QRGenerator renders a PNG QR code for the given payload.
type QRGenerator interface {
	Generate(data string) ([]byte, error)
}
