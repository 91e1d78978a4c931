package domain

import "time"

// Role values a user account can hold.
const (
	RoleCustomer        = "customer"
	RoleRestaurantOwner = "restaurant_owner"
)

// Reservation statuses. Owners move reservations out of pending.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Order statuses.
const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// Service request statuses and types.
const (
	ServiceRequestPending   = "pending"
	ServiceRequestCompleted = "completed"
	ServiceRequestRejected  = "rejected"

	ServiceTypeWaiter  = "waiter"
	ServiceTypeSpecial = "special"
)

type User struct {
	ID            int       `json:"id"`
	Username      string    `json:"username"`
	Password      string    `json:"-"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	WalletAddress string    `json:"walletAddress"`
	ProfileImg    string    `json:"profileImg"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Restaurant struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	OwnerID     int       `json:"ownerId"`
	Description string    `json:"description"`
	Cuisine     string    `json:"cuisine"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Phone       string    `json:"phone"`
	OpeningTime string    `json:"openingTime"`
	ClosingTime string    `json:"closingTime"`
	PriceRange  string    `json:"priceRange"`
	Features    []string  `json:"features"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RestaurantWithDistance is what location queries return: the restaurant
// plus its haversine distance in km from the query point.
type RestaurantWithDistance struct {
	Restaurant
	Distance float64 `json:"distance"`
}

type Review struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurantId"`
	UserID       int       `json:"userId"`
	Rating       float64   `json:"rating"`
	Comment      string    `json:"comment"`
	Date         time.Time `json:"date"`
}

type MenuItem struct {
	ID           int     `json:"id"`
	RestaurantID int     `json:"restaurantId"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	Image        string  `json:"image"`
	Popularity   float64 `json:"popularity"`
	IsAvailable  bool    `json:"isAvailable"`
}

type Table struct {
	ID           int    `json:"id"`
	RestaurantID int    `json:"restaurantId"`
	TableNumber  string `json:"tableNumber"`
	Capacity     int    `json:"capacity"`
	IsAvailable  bool   `json:"isAvailable"`
	QRCode       string `json:"qrCode"`
}

type Reservation struct {
	ID              int       `json:"id"`
	UserID          int       `json:"userId"`
	RestaurantID    int       `json:"restaurantId"`
	TableID         int       `json:"tableId,omitempty"`
	Date            time.Time `json:"date"`
	Time            string    `json:"time"`
	Guests          int       `json:"guests"`
	Status          string    `json:"status"`
	SpecialRequests string    `json:"specialRequests"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Order struct {
	ID           int       `json:"id"`
	UserID       int       `json:"userId"`
	RestaurantID int       `json:"restaurantId"`
	TableID      int       `json:"tableId,omitempty"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"createdAt"`
}

type OrderItem struct {
	ID                  int     `json:"id"`
	OrderID             int     `json:"orderId"`
	MenuItemID          int     `json:"menuItemId"`
	Quantity            int     `json:"quantity"`
	Subtotal            float64 `json:"subtotal"`
	SpecialInstructions string  `json:"specialInstructions,omitempty"`
}

type Music struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurantId"`
	Title        string    `json:"title"`
	Artist       string    `json:"artist"`
	RequestedBy  int       `json:"requestedBy"`
	Upvotes      int       `json:"upvotes"`
	IsPlaying    bool      `json:"isPlaying"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ServiceRequest struct {
	ID           int       `json:"id"`
	UserID       int       `json:"userId"`
	RestaurantID int       `json:"restaurantId"`
	TableID      int       `json:"tableId"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
