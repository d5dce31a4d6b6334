package httpapi

import (
	"net/http"
	"time"
)

func (s *Server) Reports(w http.ResponseWriter, r *http.Request) {
	report, err := s.Store.BookingReport(time.Now().UTC())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, report)
}
