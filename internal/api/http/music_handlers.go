package httpapi

import (
	"encoding/json"
	"net/http"

	"crave/internal/domain"
)

func (h *Handler) getMusicByRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}
	writeJSON(w, http.StatusOK, h.Store.GetMusicByRestaurant(id))
}

func (h *Handler) getCurrentlyPlaying(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}
	music, ok := h.Store.GetCurrentlyPlayingMusic(id)
	if !ok {
		writeMessage(w, http.StatusNotFound, "No music is currently playing")
		return
	}
	writeJSON(w, http.StatusOK, music)
}

func (h *Handler) createMusic(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateMusic
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, h.Store.CreateMusic(in))
}

func (h *Handler) updateMusic(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid music id")
		return
	}
	var patch domain.PatchMusic
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	music, ok := h.Store.UpdateMusic(id, patch)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Music not found")
		return
	}
	writeJSON(w, http.StatusOK, music)
}

func (h *Handler) upvoteMusic(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid music id")
		return
	}
	music, ok := h.Store.UpvoteMusic(id)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Music not found")
		return
	}
	writeJSON(w, http.StatusOK, music)
}
