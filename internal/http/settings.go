package httpapi

import (
	"encoding/json"
	"net/http"

	"roomdesk-backend-go/internal/models"
)

type RunningTextPayload struct {
	Text string `json:"text"`
}

func (s *Server) GetRunningText(w http.ResponseWriter, r *http.Request) {
	text, err := s.Store.GetSetting(models.SettingKeyRunningText)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, RunningTextPayload{Text: text})
}

func (s *Server) SetRunningText(w http.ResponseWriter, r *http.Request) {
	var req RunningTextPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := s.Store.SetSetting(models.SettingKeyRunningText, req.Text); err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w)
}
