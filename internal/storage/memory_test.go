package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crave/internal/domain"
)

func restaurantInput(name string, lat, lon float64) domain.CreateRestaurant {
	return domain.CreateRestaurant{
		Name:        name,
		OwnerID:     1,
		Description: "desc",
		Cuisine:     "Test",
		Address:     "1 Test St",
		City:        "Testville",
		Latitude:    lat,
		Longitude:   lon,
		Phone:       "555-0100",
		OpeningTime: "09:00 AM",
		ClosingTime: "10:00 PM",
		PriceRange:  "$$",
		Features:    []string{"Dine-in"},
		Images:      []string{},
	}
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	s := NewMemStore()

	var last int
	for i := 0; i < 5; i++ {
		r := s.CreateRestaurant(restaurantInput("r", 0, 0))
		assert.Greater(t, r.ID, last)
		last = r.ID
	}
	assert.Equal(t, 5, last)

	u1 := s.CreateUser(domain.CreateUser{Username: "a", Password: "x", Email: "a@b.c", Name: "A"})
	u2 := s.CreateUser(domain.CreateUser{Username: "b", Password: "x", Email: "b@b.c", Name: "B"})
	assert.Equal(t, 1, u1.ID)
	assert.Equal(t, 2, u2.ID)
}

func TestUserLookupsAreCaseInsensitive(t *testing.T) {
	s := NewMemStore()
	s.CreateUser(domain.CreateUser{Username: "JohnDoe", Password: "x", Email: "John@Example.com", Name: "John"})

	_, ok := s.GetUserByUsername("johndoe")
	assert.True(t, ok)
	_, ok = s.GetUserByEmail("john@example.com")
	assert.True(t, ok)
	_, ok = s.GetUserByUsername("nobody")
	assert.False(t, ok)
}

func TestUpdateUserPreservesServerFields(t *testing.T) {
	s := NewMemStore()
	u := s.CreateUser(domain.CreateUser{Username: "a", Password: "hash", Email: "a@b.c", Name: "A"})

	name := "Renamed"
	updated, ok := s.UpdateUser(u.ID, domain.PatchUser{Name: &name})
	require.True(t, ok)
	assert.Equal(t, u.ID, updated.ID)
	assert.Equal(t, u.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "hash", updated.Password)
	assert.Equal(t, "Renamed", updated.Name)

	_, ok = s.UpdateUser(999, domain.PatchUser{Name: &name})
	assert.False(t, ok)
}

func TestGetRestaurantsByLocation(t *testing.T) {
	s := NewMemStore()
	near := s.CreateRestaurant(restaurantInput("near", 40.0, -74.0))
	s.CreateRestaurant(restaurantInput("far", 41.0, -74.0)) // ~111 km north

	got := s.GetRestaurantsByLocation(40.0, -74.0, 10)
	require.Len(t, got, 1)
	assert.Equal(t, near.ID, got[0].ID)
	assert.InDelta(t, 0, got[0].Distance, 0.001)

	// A big enough radius returns both, nearest first.
	got = s.GetRestaurantsByLocation(40.0, -74.0, 200)
	require.Len(t, got, 2)
	assert.Equal(t, "near", got[0].Name)
	assert.Equal(t, "far", got[1].Name)
	assert.InDelta(t, 111.19, got[1].Distance, 0.5)
	assert.Less(t, got[0].Distance, got[1].Distance)
}

func TestGetPopularMenuItems(t *testing.T) {
	s := NewMemStore()
	for _, pop := range []float64{50, 95, 70, 10, 85} {
		s.CreateMenuItem(domain.CreateMenuItem{
			RestaurantID: 1, Name: "dish", Price: 9.99, Category: "Main", Popularity: pop,
		})
	}
	s.CreateMenuItem(domain.CreateMenuItem{
		RestaurantID: 2, Name: "other", Price: 9.99, Category: "Main", Popularity: 100,
	})

	got := s.GetPopularMenuItems(1, 3)
	require.Len(t, got, 3)
	assert.Equal(t, []float64{95, 85, 70}, []float64{got[0].Popularity, got[1].Popularity, got[2].Popularity})

	// Limit larger than the collection returns everything for the restaurant.
	assert.Len(t, s.GetPopularMenuItems(1, 10), 5)
	assert.Empty(t, s.GetPopularMenuItems(3, 4))
}

func TestMenuItemDefaults(t *testing.T) {
	s := NewMemStore()
	m := s.CreateMenuItem(domain.CreateMenuItem{RestaurantID: 1, Name: "dish", Price: 1, Category: "Main"})
	assert.True(t, m.IsAvailable)
	assert.Zero(t, m.Popularity)

	off := false
	m2 := s.CreateMenuItem(domain.CreateMenuItem{RestaurantID: 1, Name: "dish", Price: 1, Category: "Main", IsAvailable: &off})
	assert.False(t, m2.IsAvailable)
}

func TestUpvoteMusic(t *testing.T) {
	s := NewMemStore()
	m := s.CreateMusic(domain.CreateMusic{RestaurantID: 1, Title: "A", Artist: "B", RequestedBy: 1})
	require.Zero(t, m.Upvotes)

	for i := 1; i <= 3; i++ {
		got, ok := s.UpvoteMusic(m.ID)
		require.True(t, ok)
		assert.Equal(t, i, got.Upvotes)
	}

	_, ok := s.UpvoteMusic(999)
	assert.False(t, ok)
}

func TestGetMusicByRestaurantSortsByUpvotes(t *testing.T) {
	s := NewMemStore()
	s.CreateMusic(domain.CreateMusic{RestaurantID: 1, Title: "low", Artist: "x", RequestedBy: 1, Upvotes: 2})
	s.CreateMusic(domain.CreateMusic{RestaurantID: 1, Title: "high", Artist: "x", RequestedBy: 1, Upvotes: 9})
	s.CreateMusic(domain.CreateMusic{RestaurantID: 1, Title: "mid", Artist: "x", RequestedBy: 1, Upvotes: 5})
	s.CreateMusic(domain.CreateMusic{RestaurantID: 2, Title: "elsewhere", Artist: "x", RequestedBy: 1, Upvotes: 99})

	got := s.GetMusicByRestaurant(1)
	require.Len(t, got, 3)
	assert.Equal(t, "high", got[0].Title)
	assert.Equal(t, "mid", got[1].Title)
	assert.Equal(t, "low", got[2].Title)
}

func TestGetCurrentlyPlayingMusic(t *testing.T) {
	s := NewMemStore()
	_, ok := s.GetCurrentlyPlayingMusic(1)
	assert.False(t, ok)

	s.CreateMusic(domain.CreateMusic{RestaurantID: 1, Title: "queued", Artist: "x", RequestedBy: 1})
	playing := s.CreateMusic(domain.CreateMusic{RestaurantID: 1, Title: "on air", Artist: "x", RequestedBy: 1, IsPlaying: true})

	got, ok := s.GetCurrentlyPlayingMusic(1)
	require.True(t, ok)
	assert.Equal(t, playing.ID, got.ID)
}

func TestServiceRequestStatusPatchIsRepeatable(t *testing.T) {
	s := NewMemStore()
	sr := s.CreateServiceRequest(domain.CreateServiceRequest{
		UserID: 1, RestaurantID: 1, TableID: 1, Type: domain.ServiceTypeWaiter,
	})
	assert.Equal(t, domain.ServiceRequestPending, sr.Status)

	completed := domain.ServiceRequestCompleted
	for i := 0; i < 2; i++ {
		got, ok := s.UpdateServiceRequest(sr.ID, domain.PatchServiceRequest{Status: &completed})
		require.True(t, ok)
		assert.Equal(t, domain.ServiceRequestCompleted, got.Status)
	}
}

func TestReservationDefaultsAndPatch(t *testing.T) {
	s := NewMemStore()
	res := s.CreateReservation(domain.CreateReservation{
		UserID: 1, RestaurantID: 1, Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Time: "7:00 PM", Guests: 2,
	})
	assert.Equal(t, domain.ReservationPending, res.Status)

	confirmed := domain.ReservationConfirmed
	got, ok := s.UpdateReservation(res.ID, domain.PatchReservation{Status: &confirmed})
	require.True(t, ok)
	assert.Equal(t, domain.ReservationConfirmed, got.Status)
	assert.Equal(t, res.CreatedAt, got.CreatedAt)
}

func TestOrderItemsByOrder(t *testing.T) {
	s := NewMemStore()
	o := s.CreateOrder(domain.CreateOrder{UserID: 1, RestaurantID: 1, Total: 30})
	assert.Equal(t, domain.OrderPending, o.Status)

	s.CreateOrderItem(domain.CreateOrderItem{OrderID: o.ID, MenuItemID: 1, Quantity: 2, Subtotal: 20})
	s.CreateOrderItem(domain.CreateOrderItem{OrderID: o.ID, MenuItemID: 2, Quantity: 1, Subtotal: 10})
	s.CreateOrderItem(domain.CreateOrderItem{OrderID: 999, MenuItemID: 3, Quantity: 1, Subtotal: 5})

	items := s.GetOrderItemsByOrder(o.ID)
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
}
