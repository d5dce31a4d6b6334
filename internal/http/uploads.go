package httpapi

import (
	"net/http"

	"roomdesk-backend-go/internal/services"
)

type UploadResponse struct {
	URL string `json:"url"`
}

func (s *Server) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid multipart payload")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "A file field is required")
		return
	}
	defer file.Close()
	url, err := services.SaveUpload(s.Config.UploadStoragePath, header.Filename, file)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, UploadResponse{URL: url})
}
