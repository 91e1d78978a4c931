package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"crave/internal/domain"
)

// Tables

func (h *Handler) getTablesByRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}
	writeJSON(w, http.StatusOK, h.Store.GetTablesByRestaurant(id))
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateTable
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, h.Store.CreateTable(in))
}

func (h *Handler) updateTable(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid table id")
		return
	}
	var patch domain.PatchTable
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := patch.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	table, ok := h.Store.UpdateTable(id, patch)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Table not found")
		return
	}
	writeJSON(w, http.StatusOK, table)
}

// getTableQRCode renders the table's dine-in QR code as a PNG. The payload is
// the public table URL the client app opens after scanning.
func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid table id")
		return
	}
	table, ok := h.Store.GetTable(id)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Table not found")
		return
	}

	png, err := h.QR.Generate(fmt.Sprintf("%s/table/%s", h.BaseURL, table.TableNumber))
	if err != nil {
		h.Log.WithError(err).Error("qr code generation failed")
		writeMessage(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// Reservations

func (h *Handler) getReservationsByUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}
	writeJSON(w, http.StatusOK, h.Store.GetReservationsByUser(id))
}

func (h *Handler) getReservationsByRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}
	writeJSON(w, http.StatusOK, h.Store.GetReservationsByRestaurant(id))
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateReservation
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, h.Store.CreateReservation(in))
}

func (h *Handler) updateReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid reservation id")
		return
	}
	var patch domain.PatchReservation
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := patch.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	reservation, ok := h.Store.UpdateReservation(id, patch)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Reservation not found")
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

// Orders

func (h *Handler) getOrdersByUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}
	writeJSON(w, http.StatusOK, h.Store.GetOrdersByUser(id))
}

func (h *Handler) getOrdersByRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}
	writeJSON(w, http.StatusOK, h.Store.GetOrdersByRestaurant(id))
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateOrder
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, h.Store.CreateOrder(in))
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid order id")
		return
	}
	var patch domain.PatchOrder
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := patch.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	order, ok := h.Store.UpdateOrder(id, patch)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// Order items are created after their order; there is no rollback linking
// the two.
func (h *Handler) createOrderItem(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateOrderItem
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, h.Store.CreateOrderItem(in))
}

func (h *Handler) getOrderItems(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid order id")
		return
	}
	writeJSON(w, http.StatusOK, h.Store.GetOrderItemsByOrder(id))
}

// Service requests

func (h *Handler) getServiceRequests(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}
	writeJSON(w, http.StatusOK, h.Store.GetServiceRequestsByRestaurant(id))
}

func (h *Handler) createServiceRequest(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, h.Store.CreateServiceRequest(in))
}

func (h *Handler) updateServiceRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid service request id")
		return
	}
	var patch domain.PatchServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := patch.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	sr, ok := h.Store.UpdateServiceRequest(id, patch)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Service request not found")
		return
	}
	writeJSON(w, http.StatusOK, sr)
}
