package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"roomdesk-backend-go/internal/store"
)

type RoomRequest struct {
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Equipment   string `json:"equipment"`
}

func (req RoomRequest) params() (store.RoomParams, string) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return store.RoomParams{}, "Room name is required"
	}
	if req.Capacity <= 0 {
		return store.RoomParams{}, "Capacity must be a positive number"
	}
	return store.RoomParams{
		Name:        name,
		Capacity:    req.Capacity,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Equipment:   req.Equipment,
	}, ""
}

func (s *Server) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := s.Store.ListRooms()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rooms)
}

func (s *Server) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "roomID")
	if !ok {
		return
	}
	room, err := s.Store.GetRoom(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, room)
}

func (s *Server) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req RoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	params, problem := req.params()
	if problem != "" {
		WriteError(w, http.StatusBadRequest, problem)
		return
	}
	room, err := s.Store.CreateRoom(params)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, room)
}

func (s *Server) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "roomID")
	if !ok {
		return
	}
	var req RoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	params, problem := req.params()
	if problem != "" {
		WriteError(w, http.StatusBadRequest, problem)
		return
	}
	room, err := s.Store.UpdateRoom(id, params)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, room)
}

func (s *Server) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "roomID")
	if !ok {
		return
	}
	if err := s.Store.DeleteRoom(id); err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w)
}

// pathID parses a numeric chi URL parameter, answering 400 itself when the
// segment is not a valid id.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
