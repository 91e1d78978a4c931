package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Creation inputs mirror the API's insert payloads: exactly the fields a
// client may set. Server-owned fields (id, createdAt) never appear here.
// Validate aggregates every violation so a 400 can report all of them at once.

type CreateUser struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	WalletAddress string `json:"walletAddress"`
	ProfileImg    string `json:"profileImg"`
}

func (in *CreateUser) Validate() error {
	var errs *multierror.Error
	if in.Username == "" {
		errs = multierror.Append(errs, fmt.Errorf("username is required"))
	}
	if len(in.Password) < 6 {
		errs = multierror.Append(errs, fmt.Errorf("password must be at least 6 characters"))
	}
	if in.Email == "" {
		errs = multierror.Append(errs, fmt.Errorf("email is required"))
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("email is not a valid address"))
	}
	if in.Name == "" {
		errs = multierror.Append(errs, fmt.Errorf("name is required"))
	}
	if in.Role == "" {
		in.Role = RoleCustomer
	} else if in.Role != RoleCustomer && in.Role != RoleRestaurantOwner {
		errs = multierror.Append(errs, fmt.Errorf("role must be %q or %q", RoleCustomer, RoleRestaurantOwner))
	}
	return errs.ErrorOrNil()
}

type PatchUser struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	WalletAddress *string `json:"walletAddress"`
	ProfileImg    *string `json:"profileImg"`
}

func (p *PatchUser) Validate() error {
	var errs *multierror.Error
	if p.Name != nil && *p.Name == "" {
		errs = multierror.Append(errs, fmt.Errorf("name cannot be empty"))
	}
	if p.Email != nil {
		if _, err := mail.ParseAddress(*p.Email); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("email is not a valid address"))
		}
	}
	return errs.ErrorOrNil()
}

type CreateRestaurant struct {
	Name        string   `json:"name"`
	OwnerID     int      `json:"ownerId"`
	Description string   `json:"description"`
	Cuisine     string   `json:"cuisine"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Phone       string   `json:"phone"`
	OpeningTime string   `json:"openingTime"`
	ClosingTime string   `json:"closingTime"`
	PriceRange  string   `json:"priceRange"`
	Features    []string `json:"features"`
	Images      []string `json:"images"`
}

func (in *CreateRestaurant) Validate() error {
	var errs *multierror.Error
	for field, val := range map[string]string{
		"name":        in.Name,
		"description": in.Description,
		"cuisine":     in.Cuisine,
		"address":     in.Address,
		"city":        in.City,
		"phone":       in.Phone,
		"openingTime": in.OpeningTime,
		"closingTime": in.ClosingTime,
		"priceRange":  in.PriceRange,
	} {
		if val == "" {
			errs = multierror.Append(errs, fmt.Errorf("%s is required", field))
		}
	}
	if in.OwnerID <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("ownerId is required"))
	}
	if in.Latitude < -90 || in.Latitude > 90 {
		errs = multierror.Append(errs, fmt.Errorf("latitude must be between -90 and 90"))
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		errs = multierror.Append(errs, fmt.Errorf("longitude must be between -180 and 180"))
	}
	if in.Features == nil {
		errs = multierror.Append(errs, fmt.Errorf("features is required"))
	}
	if in.Images == nil {
		errs = multierror.Append(errs, fmt.Errorf("images is required"))
	}
	return errs.ErrorOrNil()
}

type PatchRestaurant struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Cuisine     *string   `json:"cuisine"`
	Address     *string   `json:"address"`
	City        *string   `json:"city"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Phone       *string   `json:"phone"`
	OpeningTime *string   `json:"openingTime"`
	ClosingTime *string   `json:"closingTime"`
	PriceRange  *string   `json:"priceRange"`
	Features    *[]string `json:"features"`
	Images      *[]string `json:"images"`
}

func (p *PatchRestaurant) Validate() error {
	var errs *multierror.Error
	if p.Latitude != nil && (*p.Latitude < -90 || *p.Latitude > 90) {
		errs = multierror.Append(errs, fmt.Errorf("latitude must be between -90 and 90"))
	}
	if p.Longitude != nil && (*p.Longitude < -180 || *p.Longitude > 180) {
		errs = multierror.Append(errs, fmt.Errorf("longitude must be between -180 and 180"))
	}
	return errs.ErrorOrNil()
}

type CreateReview struct {
	RestaurantID int     `json:"restaurantId"`
	UserID       int     `json:"userId"`
	Rating       float64 `json:"rating"`
	Comment      string  `json:"comment"`
}

func (in *CreateReview) Validate() error {
	var errs *multierror.Error
	if in.RestaurantID <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("restaurantId is required"))
	}
	if in.UserID <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("userId is required"))
	}
	if in.Rating < 0 || in.Rating > 5 {
		errs = multierror.Append(errs, fmt.Errorf("rating must be between 0 and 5"))
	}
	return errs.ErrorOrNil()
}

type CreateMenuItem struct {
	RestaurantID int     `json:"restaurantId"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	Image        string  `json:"image"`
	Popularity   float64 `json:"popularity"`
	IsAvailable  *bool   `json:"isAvailable"`
}

func (in *CreateMenuItem) Validate() error {
	var errs *multierror.Error
	if in.RestaurantID <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("restaurantId is required"))
	}
	if in.Name == "" {
		errs = multierror.Append(errs, fmt.Errorf("name is required"))
	}
	if in.Price < 0 {
		errs = multierror.Append(errs, fmt.Errorf("price cannot be negative"))
	}
	if in.Category == "" {
		errs = multierror.Append(errs, fmt.Errorf("category is required"))
	}
	return errs.ErrorOrNil()
}

type PatchMenuItem struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	Popularity  *float64 `json:"popularity"`
	IsAvailable *bool    `json:"isAvailable"`
}

func (p *PatchMenuItem) Validate() error {
	var errs *multierror.Error
	if p.Price != nil && *p.Price < 0 {
		errs = multierror.Append(errs, fmt.Errorf("price cannot be negative"))
	}
	return errs.ErrorOrNil()
}

type CreateTable struct {
	RestaurantID int    `json:"restaurantId"`
	TableNumber  string `json:"tableNumber"`
	Capacity     int    `json:"capacity"`
	IsAvailable  *bool  `json:"isAvailable"`
	QRCode       string `json:"qrCode"`
}

func (in *CreateTable) Validate() error {
	var errs *multierror.Error
	if in.RestaurantID <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("restaurantId is required"))
	}
	if in.TableNumber == "" {
		errs = multierror.Append(errs, fmt.Errorf("tableNumber is required"))
	}
	if in.Capacity <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("capacity must be positive"))
	}
	return errs.ErrorOrNil()
}

type PatchTable struct {
	TableNumber *string `json:"tableNumber"`
	Capacity    *int    `json:"capacity"`
	IsAvailable *bool   `json:"isAvailable"`
	QRCode      *string `json:"qrCode"`
}

func (p *PatchTable) Validate() error {
	var errs *multierror.Error
	if p.Capacity != nil && *p.Capacity <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("capacity must be positive"))
	}
	return errs.ErrorOrNil()
}

type CreateReservation struct {
	UserID          int       `json:"userId"`
	RestaurantID    int       `json:"restaurantId"`
	TableID         int       `json:"tableId"`
	Date            time.Time `json:"date"`
	Time            string    `json:"time"`
	Guests          int       `json:"guests"`
	Status          string    `json:"status"`
	SpecialRequests string    `json:"specialRequests"`
}

func (in *CreateReservation) Validate() error {
	var errs *multierror.Error
	if in.UserID <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("userId is required"))
	}
	if in.RestaurantID <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("restaurantId is required"))
	}
	if in.Date.IsZero() {
		errs = multierror.Append(errs, fmt.Errorf("date is required"))
	}
	if in.Time == "" {
		errs = multierror.Append(errs, fmt.Errorf("time is required"))
	}
	if in.Guests <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("guests must be positive"))
	}
	if in.Status == "" {
		in.Status = ReservationPending
	} else if !validReservationStatus(in.Status) {
		errs = multierror.Append(errs, fmt.Errorf("status must be one of pending, confirmed, cancelled"))
	}
	return errs.ErrorOrNil()
}

type PatchReservation struct {
	TableID         *int       `json:"tableId"`
	Date            *time.Time `json:"date"`
	Time            *string    `json:"time"`
	Guests          *int       `json:"guests"`
	Status          *string    `json:"status"`
	SpecialRequests *string    `json:"specialRequests"`
}

func (p *PatchReservation) Validate() error {
	var errs *multierror.Error
	if p.Guests != nil && *p.Guests <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("guests must be positive"))
	}
	if p.Status != nil && !validReservationStatus(*p.Status) {
		errs = multierror.Append(errs, fmt.Errorf("status must be one of pending, confirmed, cancelled"))
	}
	return errs.ErrorOrNil()
}

func validReservationStatus(s string) bool {
	return s == ReservationPending || s == ReservationConfirmed || s == ReservationCancelled
}

type CreateOrder struct {
	UserID       int     `json:"userId"`
	RestaurantID int     `json:"restaurantId"`
	TableID      int     `json:"tableId"`
	Status       string  `json:"status"`
	Total        float64 `json:"total"`
}

func (in *CreateOrder) Validate() error {
	var errs *multierror.Error
	if in.UserID <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("userId is required"))
	}
	if in.RestaurantID <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("restaurantId is required"))
	}
	if in.Total < 0 {
		errs = multierror.Append(errs, fmt.Errorf("total cannot be negative"))
	}
	if in.Status == "" {
		in.Status = OrderPending
	} else if !validOrderStatus(in.Status) {
		errs = multierror.Append(errs, fmt.Errorf("status must be one of pending, completed, cancelled"))
	}
	return errs.ErrorOrNil()
}

type PatchOrder struct {
	TableID *int     `json:"tableId"`
	Status  *string  `json:"status"`
	Total   *float64 `json:"total"`
}

func (p *PatchOrder) Validate() error {
	var errs *multierror.Error
	if p.Status != nil && !validOrderStatus(*p.Status) {
		errs = multierror.Append(errs, fmt.Errorf("status must be one of pending, completed, cancelled"))
	}
	if p.Total != nil && *p.Total < 0 {
		errs = multierror.Append(errs, fmt.Errorf("total cannot be negative"))
	}
	return errs.ErrorOrNil()
}

func validOrderStatus(s string) bool {
	return s == OrderPending || s == OrderCompleted || s == OrderCancelled
}

type CreateOrderItem struct {
	OrderID             int     `json:"orderId"`
	MenuItemID          int     `json:"menuItemId"`
	Quantity            int     `json:"quantity"`
	Subtotal            float64 `json:"subtotal"`
	SpecialInstructions string  `json:"specialInstructions"`
}

func (in *CreateOrderItem) Validate() error {
	var errs *multierror.Error
	if in.OrderID <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("orderId is required"))
	}
	if in.MenuItemID <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("menuItemId is required"))
	}
	if in.Quantity <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("quantity must be positive"))
	}
	if in.Subtotal < 0 {
		errs = multierror.Append(errs, fmt.Errorf("subtotal cannot be negative"))
	}
	return errs.ErrorOrNil()
}

type CreateMusic struct {
	RestaurantID int    `json:"restaurantId"`
	Title        string `json:"title"`
	Artist       string `json:"artist"`
	RequestedBy  int    `json:"requestedBy"`
	Upvotes      int    `json:"upvotes"`
	IsPlaying    bool   `json:"isPlaying"`
}

func (in *CreateMusic) Validate() error {
	var errs *multierror.Error
	if in.RestaurantID <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("restaurantId is required"))
	}
	if in.Title == "" {
		errs = multierror.Append(errs, fmt.Errorf("title is required"))
	}
	if in.Artist == "" {
		errs = multierror.Append(errs, fmt.Errorf("artist is required"))
	}
	if in.RequestedBy <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("requestedBy is required"))
	}
	if in.Upvotes < 0 {
		errs = multierror.Append(errs, fmt.Errorf("upvotes cannot be negative"))
	}
	return errs.ErrorOrNil()
}

type PatchMusic struct {
	IsPlaying *bool `json:"isPlaying"`
}

func (p *PatchMusic) Validate() error { return nil }

type CreateServiceRequest struct {
	UserID       int    `json:"userId"`
	RestaurantID int    `json:"restaurantId"`
	TableID      int    `json:"tableId"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	Status       string `json:"status"`
}

func (in *CreateServiceRequest) Validate() error {
	var errs *multierror.Error
	if in.UserID <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("userId is required"))
	}
	if in.RestaurantID <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("restaurantId is required"))
	}
	if in.TableID <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("tableId is required"))
	}
	if in.Type != ServiceTypeWaiter && in.Type != ServiceTypeSpecial {
		errs = multierror.Append(errs, fmt.Errorf("type must be %q or %q", ServiceTypeWaiter, ServiceTypeSpecial))
	}
	if in.Status == "" {
		in.Status = ServiceRequestPending
	} else if !ValidServiceRequestStatus(in.Status) {
		errs = multierror.Append(errs, fmt.Errorf("status must be one of pending, completed, rejected"))
	}
	return errs.ErrorOrNil()
}

type PatchServiceRequest struct {
	Status      *string `json:"status"`
	Description *string `json:"description"`
}

func (p *PatchServiceRequest) Validate() error {
	var errs *multierror.Error
	if p.Status != nil && !ValidServiceRequestStatus(*p.Status) {
		errs = multierror.Append(errs, fmt.Errorf("status must be one of pending, completed, rejected"))
	}
	return errs.ErrorOrNil()
}

// ValidServiceRequestStatus reports whether s is a member of the service
// request status enum.
func ValidServiceRequestStatus(s string) bool {
	return s == ServiceRequestPending || s == ServiceRequestCompleted || s == ServiceRequestRejected
}
