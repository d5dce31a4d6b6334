package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"roomdesk-backend-go/internal/models"
	"roomdesk-backend-go/internal/store"
)

type AdRequest struct {
	Type            string `json:"type"`
	URL             string `json:"url"`
	DurationSeconds int    `json:"durationSeconds"`
	Active          *bool  `json:"active"`
}

func (s *Server) ListAds(w http.ResponseWriter, r *http.Request) {
	ads, err := s.Store.ListActiveAds()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, ads)
}

func (s *Server) CreateAd(w http.ResponseWriter, r *http.Request) {
	var req AdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	adType, valid := models.ParseAdType(req.Type)
	if !valid {
		WriteError(w, http.StatusBadRequest, "Type must be one of image, video")
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		WriteError(w, http.StatusBadRequest, "URL is required")
		return
	}
	duration := req.DurationSeconds
	if duration <= 0 {
		duration = 10
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	ad, err := s.Store.CreateAd(store.AdParams{
		Type:            adType,
		URL:             strings.TrimSpace(req.URL),
		DurationSeconds: duration,
		Active:          active,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, ad)
}

func (s *Server) DeleteAd(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "adID")
	if !ok {
		return
	}
	if err := s.Store.DeleteAd(id); err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w)
}
