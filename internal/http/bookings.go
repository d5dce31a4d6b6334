package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"roomdesk-backend-go/internal/models"
	"roomdesk-backend-go/internal/store"
)

type BookingRequest struct {
	RoomID      int64     `json:"roomId"`
	UserName    string    `json:"userName"`
	Title       string    `json:"title"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Attendees   int       `json:"attendees"`
	Applicant   string    `json:"applicant"`
	Contact     string    `json:"contact"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
}

// validate checks field presence only. Temporal sanity (start before end) is
// deliberately not enforced here; see the API compatibility notes.
func (req BookingRequest) validate() string {
	missing := []string{}
	if req.RoomID == 0 {
		missing = append(missing, "roomId")
	}
	if strings.TrimSpace(req.UserName) == "" {
		missing = append(missing, "userName")
	}
	if strings.TrimSpace(req.Title) == "" {
		missing = append(missing, "title")
	}
	if req.StartTime.IsZero() {
		missing = append(missing, "startTime")
	}
	if req.EndTime.IsZero() {
		missing = append(missing, "endTime")
	}
	if len(missing) > 0 {
		return "Missing required fields: " + strings.Join(missing, ", ")
	}
	return ""
}

func (req BookingRequest) params(status models.BookingStatus) store.BookingParams {
	return store.BookingParams{
		RoomID:      req.RoomID,
		UserName:    strings.TrimSpace(req.UserName),
		Title:       strings.TrimSpace(req.Title),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Attendees:   req.Attendees,
		Applicant:   req.Applicant,
		Contact:     req.Contact,
		Description: req.Description,
		Status:      status,
	}
}

func (s *Server) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.Store.ListBookings()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, bookings)
}

func (s *Server) ListActiveBookings(w http.ResponseWriter, r *http.Request) {
	horizon := time.Duration(s.Config.ActiveWindowDays) * 24 * time.Hour
	bookings, err := s.Store.ListActiveBookings(time.Now().UTC(), horizon)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, bookings)
}

func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if problem := req.validate(); problem != "" {
		WriteError(w, http.StatusBadRequest, problem)
		return
	}
	if _, err := s.Store.GetRoom(req.RoomID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Room not found")
			return
		}
		writeStoreError(w, err)
		return
	}
	booking, err := s.Store.CreateBooking(req.params(models.StatusPending))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, booking)
}

func (s *Server) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "bookingID")
	if !ok {
		return
	}
	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if problem := req.validate(); problem != "" {
		WriteError(w, http.StatusBadRequest, problem)
		return
	}
	existing, err := s.Store.GetBooking(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	status := existing.Status
	if req.Status != "" {
		parsed, valid := models.ParseBookingStatus(req.Status)
		if !valid {
			WriteError(w, http.StatusBadRequest, "Status must be one of pending, approved, rejected")
			return
		}
		status = parsed
	}
	if _, err := s.Store.GetRoom(req.RoomID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Room not found")
			return
		}
		writeStoreError(w, err)
		return
	}
	booking, err := s.Store.UpdateBooking(id, req.params(status))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, booking)
}

type BookingStatusRequest struct {
	Status string `json:"status"`
}

// UpdateBookingStatus patches only the lifecycle tag. This path has never run
// the conflict check, so reopening a rejected slot can coexist with a later
// overlapping approval.
func (s *Server) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "bookingID")
	if !ok {
		return
	}
	var req BookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	status, valid := models.ParseBookingStatus(req.Status)
	if !valid {
		WriteError(w, http.StatusBadRequest, "Status must be one of pending, approved, rejected")
		return
	}
	if err := s.Store.UpdateBookingStatus(id, status); err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w)
}
