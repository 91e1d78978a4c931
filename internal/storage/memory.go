// Package storage owns all entity state for the application. It is a plain
// in-memory collection-of-maps store: one map and one auto-increment counter
// per entity. Ids are never reused and nothing is ever deleted.
package storage

import (
	"sort"
	"strings"
	"sync"
	"time"

	"crave/internal/domain"
)

// MemStore is the single source of truth for every entity collection. One
// RWMutex serializes access; the request handlers share a single instance.
type MemStore struct {
	mu sync.RWMutex

	users           map[int]domain.User
	restaurants     map[int]domain.Restaurant
	reviews         map[int]domain.Review
	menuItems       map[int]domain.MenuItem
	tables          map[int]domain.Table
	reservations    map[int]domain.Reservation
	orders          map[int]domain.Order
	orderItems      map[int]domain.OrderItem
	music           map[int]domain.Music
	serviceRequests map[int]domain.ServiceRequest

	nextUserID           int
	nextRestaurantID     int
	nextReviewID         int
	nextMenuItemID       int
	nextTableID          int
	nextReservationID    int
	nextOrderID          int
	nextOrderItemID      int
	nextMusicID          int
	nextServiceRequestID int
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:           make(map[int]domain.User),
		restaurants:     make(map[int]domain.Restaurant),
		reviews:         make(map[int]domain.Review),
		menuItems:       make(map[int]domain.MenuItem),
		tables:          make(map[int]domain.Table),
		reservations:    make(map[int]domain.Reservation),
		orders:          make(map[int]domain.Order),
		orderItems:      make(map[int]domain.OrderItem),
		music:           make(map[int]domain.Music),
		serviceRequests: make(map[int]domain.ServiceRequest),

		nextUserID:           1,
		nextRestaurantID:     1,
		nextReviewID:         1,
		nextMenuItemID:       1,
		nextTableID:          1,
		nextReservationID:    1,
		nextOrderID:          1,
		nextOrderItemID:      1,
		nextMusicID:          1,
		nextServiceRequestID: 1,
	}
}

// User operations

func (s *MemStore) GetUser(id int) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *MemStore) GetUserByUsername(username string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range sortedKeys(s.users) {
		if strings.EqualFold(s.users[id].Username, username) {
			return s.users[id], true
		}
	}
	return domain.User{}, false
}

func (s *MemStore) GetUserByEmail(email string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range sortedKeys(s.users) {
		if strings.EqualFold(s.users[id].Email, email) {
			return s.users[id], true
		}
	}
	return domain.User{}, false
}

func (s *MemStore) GetUserByWalletAddress(addr string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range sortedKeys(s.users) {
		if s.users[id].WalletAddress == addr && addr != "" {
			return s.users[id], true
		}
	}
	return domain.User{}, false
}

func (s *MemStore) CreateUser(in domain.CreateUser) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	role := in.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	u := domain.User{
		ID:            s.nextUserID,
		Username:      in.Username,
		Password:      in.Password,
		Email:         in.Email,
		Name:          in.Name,
		Role:          role,
		WalletAddress: in.WalletAddress,
		ProfileImg:    in.ProfileImg,
		CreatedAt:     time.Now(),
	}
	s.nextUserID++
	s.users[u.ID] = u
	return u
}

func (s *MemStore) UpdateUser(id int, p domain.PatchUser) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return domain.User{}, false
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.WalletAddress != nil {
		u.WalletAddress = *p.WalletAddress
	}
	if p.ProfileImg != nil {
		u.ProfileImg = *p.ProfileImg
	}
	s.users[id] = u
	return u, true
}

// SetUserPassword stores an already-hashed password. Kept separate from
// PatchUser so a profile patch can never touch credentials.
func (s *MemStore) SetUserPassword(id int, hashed string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return false
	}
	u.Password = hashed
	s.users[id] = u
	return true
}

// Restaurant operations

func (s *MemStore) GetRestaurant(id int) (domain.Restaurant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.restaurants[id]
	return r, ok
}

func (s *MemStore) GetRestaurantsByOwner(ownerID int) []domain.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Restaurant{}
	for _, id := range sortedKeys(s.restaurants) {
		if s.restaurants[id].OwnerID == ownerID {
			out = append(out, s.restaurants[id])
		}
	}
	return out
}

func (s *MemStore) GetAllRestaurants() []domain.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Restaurant{}
	for _, id := range sortedKeys(s.restaurants) {
		out = append(out, s.restaurants[id])
	}
	return out
}

// GetRestaurantsByLocation computes the haversine distance from the query
// point to every restaurant, keeps those within radiusKm and returns them
// ascending by distance, with the computed distance attached.
func (s *MemStore) GetRestaurantsByLocation(lat, lon, radiusKm float64) []domain.RestaurantWithDistance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.RestaurantWithDistance{}
	for _, id := range sortedKeys(s.restaurants) {
		r := s.restaurants[id]
		d := haversineKm(lat, lon, r.Latitude, r.Longitude)
		if d <= radiusKm {
			out = append(out, domain.RestaurantWithDistance{Restaurant: r, Distance: d})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out
}

func (s *MemStore) CreateRestaurant(in domain.CreateRestaurant) domain.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := domain.Restaurant{
		ID:          s.nextRestaurantID,
		Name:        in.Name,
		OwnerID:     in.OwnerID,
		Description: in.Description,
		Cuisine:     in.Cuisine,
		Address:     in.Address,
		City:        in.City,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Phone:       in.Phone,
		OpeningTime: in.OpeningTime,
		ClosingTime: in.ClosingTime,
		PriceRange:  in.PriceRange,
		Features:    in.Features,
		Images:      in.Images,
		CreatedAt:   time.Now(),
	}
	s.nextRestaurantID++
	s.restaurants[r.ID] = r
	return r
}

func (s *MemStore) UpdateRestaurant(id int, p domain.PatchRestaurant) (domain.Restaurant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.restaurants[id]
	if !ok {
		return domain.Restaurant{}, false
	}
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Cuisine != nil {
		r.Cuisine = *p.Cuisine
	}
	if p.Address != nil {
		r.Address = *p.Address
	}
	if p.City != nil {
		r.City = *p.City
	}
	if p.Latitude != nil {
		r.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		r.Longitude = *p.Longitude
	}
	if p.Phone != nil {
		r.Phone = *p.Phone
	}
	if p.OpeningTime != nil {
		r.OpeningTime = *p.OpeningTime
	}
	if p.ClosingTime != nil {
		r.ClosingTime = *p.ClosingTime
	}
	if p.PriceRange != nil {
		r.PriceRange = *p.PriceRange
	}
	if p.Features != nil {
		r.Features = *p.Features
	}
	if p.Images != nil {
		r.Images = *p.Images
	}
	s.restaurants[id] = r
	return r, true
}

// Review operations

func (s *MemStore) GetReview(id int) (domain.Review, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reviews[id]
	return r, ok
}

func (s *MemStore) GetReviewsByRestaurant(restaurantID int) []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Review{}
	for _, id := range sortedKeys(s.reviews) {
		if s.reviews[id].RestaurantID == restaurantID {
			out = append(out, s.reviews[id])
		}
	}
	return out
}

func (s *MemStore) GetReviewsByUser(userID int) []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Review{}
	for _, id := range sortedKeys(s.reviews) {
		if s.reviews[id].UserID == userID {
			out = append(out, s.reviews[id])
		}
	}
	return out
}

func (s *MemStore) CreateReview(in domain.CreateReview) domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := domain.Review{
		ID:           s.nextReviewID,
		RestaurantID: in.RestaurantID,
		UserID:       in.UserID,
		Rating:       in.Rating,
		Comment:      in.Comment,
		Date:         time.Now(),
	}
	s.nextReviewID++
	s.reviews[r.ID] = r
	return r
}

// MenuItem operations

func (s *MemStore) GetMenuItem(id int) (domain.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.menuItems[id]
	return m, ok
}

func (s *MemStore) GetMenuItemsByRestaurant(restaurantID int) []domain.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.MenuItem{}
	for _, id := range sortedKeys(s.menuItems) {
		if s.menuItems[id].RestaurantID == restaurantID {
			out = append(out, s.menuItems[id])
		}
	}
	return out
}

// GetPopularMenuItems returns at most limit items for the restaurant,
// descending by popularity.
func (s *MemStore) GetPopularMenuItems(restaurantID, limit int) []domain.MenuItem {
	items := s.GetMenuItemsByRestaurant(restaurantID)
	sort.Slice(items, func(i, j int) bool { return items[i].Popularity > items[j].Popularity })
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func (s *MemStore) CreateMenuItem(in domain.CreateMenuItem) domain.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	m := domain.MenuItem{
		ID:           s.nextMenuItemID,
		RestaurantID: in.RestaurantID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Category:     in.Category,
		Image:        in.Image,
		Popularity:   in.Popularity,
		IsAvailable:  available,
	}
	s.nextMenuItemID++
	s.menuItems[m.ID] = m
	return m
}

func (s *MemStore) UpdateMenuItem(id int, p domain.PatchMenuItem) (domain.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.menuItems[id]
	if !ok {
		return domain.MenuItem{}, false
	}
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.Image != nil {
		m.Image = *p.Image
	}
	if p.Popularity != nil {
		m.Popularity = *p.Popularity
	}
	if p.IsAvailable != nil {
		m.IsAvailable = *p.IsAvailable
	}
	s.menuItems[id] = m
	return m, true
}

// Table operations

func (s *MemStore) GetTable(id int) (domain.Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tables[id]
	return t, ok
}

func (s *MemStore) GetTablesByRestaurant(restaurantID int) []domain.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Table{}
	for _, id := range sortedKeys(s.tables) {
		if s.tables[id].RestaurantID == restaurantID {
			out = append(out, s.tables[id])
		}
	}
	return out
}

func (s *MemStore) CreateTable(in domain.CreateTable) domain.Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	t := domain.Table{
		ID:           s.nextTableID,
		RestaurantID: in.RestaurantID,
		TableNumber:  in.TableNumber,
		Capacity:     in.Capacity,
		IsAvailable:  available,
		QRCode:       in.QRCode,
	}
	s.nextTableID++
	s.tables[t.ID] = t
	return t
}

func (s *MemStore) UpdateTable(id int, p domain.PatchTable) (domain.Table, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[id]
	if !ok {
		return domain.Table{}, false
	}
	if p.TableNumber != nil {
		t.TableNumber = *p.TableNumber
	}
	if p.Capacity != nil {
		t.Capacity = *p.Capacity
	}
	if p.IsAvailable != nil {
		t.IsAvailable = *p.IsAvailable
	}
	if p.QRCode != nil {
		t.QRCode = *p.QRCode
	}
	s.tables[id] = t
	return t, true
}

// Reservation operations

func (s *MemStore) GetReservation(id int) (domain.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reservations[id]
	return r, ok
}

func (s *MemStore) GetReservationsByUser(userID int) []domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Reservation{}
	for _, id := range sortedKeys(s.reservations) {
		if s.reservations[id].UserID == userID {
			out = append(out, s.reservations[id])
		}
	}
	return out
}

func (s *MemStore) GetReservationsByRestaurant(restaurantID int) []domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Reservation{}
	for _, id := range sortedKeys(s.reservations) {
		if s.reservations[id].RestaurantID == restaurantID {
			out = append(out, s.reservations[id])
		}
	}
	return out
}

func (s *MemStore) CreateReservation(in domain.CreateReservation) domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = domain.ReservationPending
	}
	r := domain.Reservation{
		ID:              s.nextReservationID,
		UserID:          in.UserID,
		RestaurantID:    in.RestaurantID,
		TableID:         in.TableID,
		Date:            in.Date,
		Time:            in.Time,
		Guests:          in.Guests,
		Status:          status,
		SpecialRequests: in.SpecialRequests,
		CreatedAt:       time.Now(),
	}
	s.nextReservationID++
	s.reservations[r.ID] = r
	return r
}

func (s *MemStore) UpdateReservation(id int, p domain.PatchReservation) (domain.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[id]
	if !ok {
		return domain.Reservation{}, false
	}
	if p.TableID != nil {
		r.TableID = *p.TableID
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.Time != nil {
		r.Time = *p.Time
	}
	if p.Guests != nil {
		r.Guests = *p.Guests
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.SpecialRequests != nil {
		r.SpecialRequests = *p.SpecialRequests
	}
	s.reservations[id] = r
	return r, true
}

// Order operations

func (s *MemStore) GetOrder(id int) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	return o, ok
}

func (s *MemStore) GetOrdersByUser(userID int) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Order{}
	for _, id := range sortedKeys(s.orders) {
		if s.orders[id].UserID == userID {
			out = append(out, s.orders[id])
		}
	}
	return out
}

func (s *MemStore) GetOrdersByRestaurant(restaurantID int) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Order{}
	for _, id := range sortedKeys(s.orders) {
		if s.orders[id].RestaurantID == restaurantID {
			out = append(out, s.orders[id])
		}
	}
	return out
}

func (s *MemStore) CreateOrder(in domain.CreateOrder) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = domain.OrderPending
	}
	o := domain.Order{
		ID:           s.nextOrderID,
		UserID:       in.UserID,
		RestaurantID: in.RestaurantID,
		TableID:      in.TableID,
		Status:       status,
		Total:        in.Total,
		CreatedAt:    time.Now(),
	}
	s.nextOrderID++
	s.orders[o.ID] = o
	return o
}

func (s *MemStore) UpdateOrder(id int, p domain.PatchOrder) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return domain.Order{}, false
	}
	if p.TableID != nil {
		o.TableID = *p.TableID
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Total != nil {
		o.Total = *p.Total
	}
	s.orders[id] = o
	return o, true
}

// OrderItem operations

func (s *MemStore) GetOrderItem(id int) (domain.OrderItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	oi, ok := s.orderItems[id]
	return oi, ok
}

func (s *MemStore) GetOrderItemsByOrder(orderID int) []domain.OrderItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.OrderItem{}
	for _, id := range sortedKeys(s.orderItems) {
		if s.orderItems[id].OrderID == orderID {
			out = append(out, s.orderItems[id])
		}
	}
	return out
}

func (s *MemStore) CreateOrderItem(in domain.CreateOrderItem) domain.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	oi := domain.OrderItem{
		ID:                  s.nextOrderItemID,
		OrderID:             in.OrderID,
		MenuItemID:          in.MenuItemID,
		Quantity:            in.Quantity,
		Subtotal:            in.Subtotal,
		SpecialInstructions: in.SpecialInstructions,
	}
	s.nextOrderItemID++
	s.orderItems[oi.ID] = oi
	return oi
}

// Music operations

func (s *MemStore) GetMusic(id int) (domain.Music, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.music[id]
	return m, ok
}

// GetMusicByRestaurant returns the restaurant's request queue, most upvoted
// first.
func (s *MemStore) GetMusicByRestaurant(restaurantID int) []domain.Music {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Music{}
	for _, id := range sortedKeys(s.music) {
		if s.music[id].RestaurantID == restaurantID {
			out = append(out, s.music[id])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Upvotes > out[j].Upvotes })
	return out
}

// GetCurrentlyPlayingMusic returns the first entry flagged isPlaying. At most
// one per restaurant is expected; nothing enforces that at write time.
func (s *MemStore) GetCurrentlyPlayingMusic(restaurantID int) (domain.Music, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range sortedKeys(s.music) {
		m := s.music[id]
		if m.RestaurantID == restaurantID && m.IsPlaying {
			return m, true
		}
	}
	return domain.Music{}, false
}

func (s *MemStore) CreateMusic(in domain.CreateMusic) domain.Music {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := domain.Music{
		ID:           s.nextMusicID,
		RestaurantID: in.RestaurantID,
		Title:        in.Title,
		Artist:       in.Artist,
		RequestedBy:  in.RequestedBy,
		Upvotes:      in.Upvotes,
		IsPlaying:    in.IsPlaying,
		CreatedAt:    time.Now(),
	}
	s.nextMusicID++
	s.music[m.ID] = m
	return m
}

func (s *MemStore) UpdateMusic(id int, p domain.PatchMusic) (domain.Music, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.music[id]
	if !ok {
		return domain.Music{}, false
	}
	if p.IsPlaying != nil {
		m.IsPlaying = *p.IsPlaying
	}
	s.music[id] = m
	return m, true
}

// UpvoteMusic increments the entry's upvote count by exactly one.
func (s *MemStore) UpvoteMusic(id int) (domain.Music, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.music[id]
	if !ok {
		return domain.Music{}, false
	}
	m.Upvotes++
	s.music[id] = m
	return m, true
}

// ServiceRequest operations

func (s *MemStore) GetServiceRequest(id int) (domain.ServiceRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sr, ok := s.serviceRequests[id]
	return sr, ok
}

func (s *MemStore) GetServiceRequestsByRestaurant(restaurantID int) []domain.ServiceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.ServiceRequest{}
	for _, id := range sortedKeys(s.serviceRequests) {
		if s.serviceRequests[id].RestaurantID == restaurantID {
			out = append(out, s.serviceRequests[id])
		}
	}
	return out
}

func (s *MemStore) CreateServiceRequest(in domain.CreateServiceRequest) domain.ServiceRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = domain.ServiceRequestPending
	}
	sr := domain.ServiceRequest{
		ID:           s.nextServiceRequestID,
		UserID:       in.UserID,
		RestaurantID: in.RestaurantID,
		TableID:      in.TableID,
		Type:         in.Type,
		Description:  in.Description,
		Status:       status,
		CreatedAt:    time.Now(),
	}
	s.nextServiceRequestID++
	s.serviceRequests[sr.ID] = sr
	return sr
}

func (s *MemStore) UpdateServiceRequest(id int, p domain.PatchServiceRequest) (domain.ServiceRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sr, ok := s.serviceRequests[id]
	if !ok {
		return domain.ServiceRequest{}, false
	}
	if p.Status != nil {
		sr.Status = *p.Status
	}
	if p.Description != nil {
		sr.Description = *p.Description
	}
	s.serviceRequests[id] = sr
	return sr, true
}

// sortedKeys gives deterministic iteration order (insertion order, since ids
// only grow) for the linear scans above.
func sortedKeys[T any](m map[int]T) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
