package storage

import (
	"golang.org/x/crypto/bcrypt"

	"crave/internal/domain"
)

// Seed loads the demo dataset: two users, three restaurants near lower
// Manhattan, a menu, reviews, tables and a music queue for the Seaside Grill.
func Seed(s *MemStore) error {
	pw, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.CreateUser(domain.CreateUser{
		Username:   "johndoe",
		Password:   string(pw),
		Email:      "john@example.com",
		Name:       "John Doe",
		Role:       domain.RoleCustomer,
		ProfileImg: "https://i.pravatar.cc/150?img=1",
	})
	s.CreateUser(domain.CreateUser{
		Username:   "janesmith",
		Password:   string(pw),
		Email:      "jane@example.com",
		Name:       "Jane Smith",
		Role:       domain.RoleRestaurantOwner,
		ProfileImg: "https://i.pravatar.cc/150?img=5",
	})

	s.CreateRestaurant(domain.CreateRestaurant{
		Name:        "The Brasserie",
		OwnerID:     2,
		Description: "A cozy restaurant serving Italian and Continental cuisine.",
		Cuisine:     "Italian, Continental, Beverages",
		Address:     "123 Main St",
		City:        "New York",
		Latitude:    40.7128,
		Longitude:   -74.0060,
		Phone:       "123-456-7890",
		OpeningTime: "10:00 AM",
		ClosingTime: "11:00 PM",
		PriceRange:  "$$",
		Features:    []string{"Dine-in", "Serves Alcohol", "Free Wi-Fi", "Outdoor seating"},
		Images: []string{
			"https://images.unsplash.com/photo-1517248135467-4c7edcad34c4",
			"https://images.unsplash.com/photo-1544148103-0773bf10d330",
		},
	})
	s.CreateRestaurant(domain.CreateRestaurant{
		Name:        "Café Latte",
		OwnerID:     2,
		Description: "Trendy cafe offering coffee, desserts and light meals.",
		Cuisine:     "Cafe, Desserts, Coffee",
		Address:     "456 Oak St",
		City:        "New York",
		Latitude:    40.7200,
		Longitude:   -74.0100,
		Phone:       "123-456-7891",
		OpeningTime: "08:00 AM",
		ClosingTime: "09:00 PM",
		PriceRange:  "$",
		Features:    []string{"Dine-in", "Pure Veg", "Free Wi-Fi"},
		Images: []string{
			"https://images.unsplash.com/photo-1554118811-1e0d58224f24",
			"https://images.unsplash.com/photo-1495474472287-4d71bcdd2085",
		},
	})
	s.CreateRestaurant(domain.CreateRestaurant{
		Name:        "Seaside Grill",
		OwnerID:     2,
		Description: "Seafood restaurant with panoramic ocean views.",
		Cuisine:     "Seafood, Grill, Asian",
		Address:     "789 Shore Dr",
		City:        "New York",
		Latitude:    40.7300,
		Longitude:   -74.0200,
		Phone:       "123-456-7892",
		OpeningTime: "11:00 AM",
		ClosingTime: "11:00 PM",
		PriceRange:  "$$$",
		Features:    []string{"Dine-in", "Serves Alcohol", "Outdoor seating", "Live music"},
		Images: []string{
			"https://images.unsplash.com/photo-1514933651103-005eec06c04b",
			"https://images.unsplash.com/photo-1523371683773-affcb5eb1c31",
		},
	})

	for _, item := range []domain.CreateMenuItem{
		{
			RestaurantID: 3,
			Name:         "Grilled Salmon",
			Description:  "Fresh Atlantic salmon with lemon butter sauce and seasonal vegetables",
			Price:        24.99,
			Category:     "Main Course",
			Image:        "https://images.unsplash.com/photo-1504674900247-0877df9cc836",
			Popularity:   95,
		},
		{
			RestaurantID: 3,
			Name:         "Seafood Platter",
			Description:  "Selection of fresh seafood including prawns, calamari, fish and mussels",
			Price:        42.99,
			Category:     "Main Course",
			Image:        "https://images.unsplash.com/photo-1559847844-5315695dadae",
			Popularity:   92,
		},
		{
			RestaurantID: 3,
			Name:         "Asian Salad",
			Description:  "Fresh greens with Asian dressing and seared tuna",
			Price:        18.99,
			Category:     "Starters",
			Image:        "https://images.unsplash.com/photo-1546069901-ba9599a7e63c",
			Popularity:   89,
		},
		{
			RestaurantID: 3,
			Name:         "Sushi Rolls",
			Description:  "Assortment of fresh sushi rolls with wasabi and soy sauce",
			Price:        22.99,
			Category:     "Starters",
			Image:        "https://images.unsplash.com/photo-1563379926898-05f4575a45d8",
			Popularity:   86,
		},
	} {
		s.CreateMenuItem(item)
	}

	s.CreateReview(domain.CreateReview{
		RestaurantID: 3,
		UserID:       1,
		Rating:       4.8,
		Comment:      "The seafood platter was absolutely incredible! Service was attentive and the ocean view made the experience even better.",
	})
	s.CreateReview(domain.CreateReview{
		RestaurantID: 3,
		UserID:       1,
		Rating:       4.5,
		Comment:      "The grilled salmon was cooked to perfection and the staff was very accommodating. The music selection was on point too.",
	})

	s.CreateTable(domain.CreateTable{RestaurantID: 3, TableNumber: "12", Capacity: 4})
	s.CreateTable(domain.CreateTable{RestaurantID: 3, TableNumber: "13", Capacity: 2})

	s.CreateMusic(domain.CreateMusic{
		RestaurantID: 3, Title: "Fly Me To The Moon", Artist: "Frank Sinatra",
		RequestedBy: 1, Upvotes: 10, IsPlaying: true,
	})
	s.CreateMusic(domain.CreateMusic{
		RestaurantID: 3, Title: "Summertime", Artist: "Ella Fitzgerald",
		RequestedBy: 1, Upvotes: 8,
	})
	s.CreateMusic(domain.CreateMusic{
		RestaurantID: 3, Title: "La Vie En Rose", Artist: "Louis Armstrong",
		RequestedBy: 1, Upvotes: 5,
	})

	return nil
}
