package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"crave/internal/domain"
	"crave/internal/service"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateUser
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Auth.Register(in)
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		writeMessage(w, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, service.ErrEmailTaken):
		writeMessage(w, http.StatusBadRequest, "Email already exists")
	case err != nil:
		h.Log.WithError(err).Error("register failed")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	default:
		writeJSON(w, http.StatusCreated, user)
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" {
		writeMessage(w, http.StatusBadRequest, "Username is required")
		return
	}
	if req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Password is required")
		return
	}

	// The username field accepts either a username or an email.
	user, err := h.Auth.Login(req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeMessage(w, http.StatusUnauthorized, "User not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Invalid password")
	case err != nil:
		h.Log.WithError(err).Error("login failed")
		writeMessage(w, http.StatusInternalServerError, "Login failed")
	default:
		writeJSON(w, http.StatusOK, user)
	}
}

func (h *Handler) walletLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WalletAddress string `json:"walletAddress"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.WalletAddress == "" {
		writeMessage(w, http.StatusBadRequest, "walletAddress is required")
		return
	}

	user, err := h.Auth.WalletLogin(req.WalletAddress)
	if err != nil {
		h.Log.WithError(err).Error("wallet login failed")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Password) < 6 {
		writeMessage(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	switch err := h.Auth.ChangePassword(id, req.Password); {
	case errors.Is(err, service.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
	case err != nil:
		h.Log.WithError(err).Error("password change failed")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	default:
		writeMessage(w, http.StatusOK, "Password updated")
	}
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}
	user, ok := h.Store.GetUser(id)
	if !ok {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var patch domain.PatchUser
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := patch.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	user, ok := h.Store.UpdateUser(id, patch)
	if !ok {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
