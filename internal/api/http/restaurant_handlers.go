package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"crave/internal/domain"
)

const defaultRadiusKm = 10

// listRestaurants returns all restaurants, or a distance-sorted radius search
// when both latitude and longitude query parameters are present.
func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	latStr, lonStr := q.Get("latitude"), q.Get("longitude")
	if latStr == "" || lonStr == "" {
		writeJSON(w, http.StatusOK, h.Store.GetAllRestaurants())
		return
	}

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lon, lonErr := strconv.ParseFloat(lonStr, 64)
	if latErr != nil || lonErr != nil {
		writeMessage(w, http.StatusBadRequest, "latitude and longitude must be numbers")
		return
	}

	radius := float64(defaultRadiusKm)
	if rs := q.Get("radius"); rs != "" {
		parsed, err := strconv.ParseFloat(rs, 64)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "radius must be a number")
			return
		}
		radius = parsed
	}

	writeJSON(w, http.StatusOK, h.Store.GetRestaurantsByLocation(lat, lon, radius))
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}
	restaurant, ok := h.Store.GetRestaurant(id)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Restaurant not found")
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateRestaurant
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, h.Store.CreateRestaurant(in))
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}
	var patch domain.PatchRestaurant
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := patch.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	restaurant, ok := h.Store.UpdateRestaurant(id, patch)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Restaurant not found")
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) getRestaurantsByOwner(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}
	writeJSON(w, http.StatusOK, h.Store.GetRestaurantsByOwner(id))
}

// Reviews

func (h *Handler) getReviewsByRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}
	writeJSON(w, http.StatusOK, h.Store.GetReviewsByRestaurant(id))
}

func (h *Handler) getReviewsByUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}
	writeJSON(w, http.StatusOK, h.Store.GetReviewsByUser(id))
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateReview
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, h.Store.CreateReview(in))
}

// Menu

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}
	writeJSON(w, http.StatusOK, h.Store.GetMenuItemsByRestaurant(id))
}

func (h *Handler) getPopularDishes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	limit := 4
	if ls := r.URL.Query().Get("limit"); ls != "" {
		parsed, err := strconv.Atoi(ls)
		if err != nil || parsed < 0 {
			writeMessage(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	writeJSON(w, http.StatusOK, h.Store.GetPopularMenuItems(id, limit))
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateMenuItem
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, h.Store.CreateMenuItem(in))
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid menu item id")
		return
	}
	var patch domain.PatchMenuItem
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := patch.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	item, ok := h.Store.UpdateMenuItem(id, patch)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}
