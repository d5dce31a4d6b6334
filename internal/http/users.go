package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"roomdesk-backend-go/internal/models"
	"roomdesk-backend-go/internal/store"
)

type UserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.Store.ListUsers()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, users)
}

func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		WriteError(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	role := models.RoleUser
	if req.Role != "" {
		parsed, valid := models.ParseRole(req.Role)
		if !valid {
			WriteError(w, http.StatusBadRequest, "Role must be one of super_admin, admin, user, viewer")
			return
		}
		role = parsed
	}
	hash, err := s.Tokens.HashPassword(req.Password)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	user, err := s.Store.CreateUser(store.UserParams{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, user)
}

// protectedUsernames cannot be deleted. The check is by name, not role; the
// seeded accounts keep working even if someone downgrades their role.
var protectedUsernames = map[string]bool{
	"admin":      true,
	"superadmin": true,
}

func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	user, err := s.Store.GetUser(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if protectedUsernames[user.Username] {
		WriteError(w, http.StatusForbidden, "This account cannot be deleted")
		return
	}
	if err := s.Store.DeleteUser(id); err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w)
}
