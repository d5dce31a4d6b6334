package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"roomdesk-backend-go/internal/models"
	"roomdesk-backend-go/internal/store"
)

func TestCreateUser_Validation(t *testing.T) {
	tcases := []struct {
		name string
		body UserRequest
	}{
		{"missing username", UserRequest{Password: "secret"}},
		{"missing password", UserRequest{Username: "bob"}},
		{"unknown role", UserRequest{Username: "bob", Password: "secret", Role: "root"}},
	}
	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockStore := &store.MockStore{}
			defer mockStore.AssertExpectations(t)
			s := newTestServer(mockStore)

			rr := doJSON(t, s, http.MethodPost, "/api/users", tc.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	mockStore := &store.MockStore{}
	defer mockStore.AssertExpectations(t)
	mockStore.On("CreateUser", mock.MatchedBy(func(p store.UserParams) bool {
		return p.Username == "bob"
	})).Return(models.User{}, store.ErrDuplicateUsername).Once()
	s := newTestServer(mockStore)

	rr := doJSON(t, s, http.MethodPost, "/api/users", UserRequest{Username: "bob", Password: "secret"})

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestCreateUser_HashesPasswordAndDefaultsRole(t *testing.T) {
	created := models.User{ID: 4, Username: "bob", Role: models.RoleUser}
	mockStore := &store.MockStore{}
	defer mockStore.AssertExpectations(t)
	mockStore.On("CreateUser", mock.MatchedBy(func(p store.UserParams) bool {
		return p.Username == "bob" && p.Role == models.RoleUser &&
			p.PasswordHash != "" && p.PasswordHash != "secret"
	})).Return(created, nil).Once()
	s := newTestServer(mockStore)

	rr := doJSON(t, s, http.MethodPost, "/api/users", UserRequest{Username: "bob", Password: "secret"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	// The hash must never appear in the response body.
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestDeleteUser_Protected(t *testing.T) {
	for _, username := range []string{"admin", "superadmin"} {
		t.Run(username, func(t *testing.T) {
			mockStore := &store.MockStore{}
			defer mockStore.AssertExpectations(t)
			mockStore.On("GetUser", int64(1)).
				Return(models.User{ID: 1, Username: username, Role: models.RoleViewer}, nil).Once()
			s := newTestServer(mockStore)

			rr := doJSON(t, s, http.MethodDelete, "/api/users/1", nil)

			assert.Equal(t, http.StatusForbidden, rr.Code)
		})
	}
}

func TestDeleteUser_Success(t *testing.T) {
	mockStore := &store.MockStore{}
	defer mockStore.AssertExpectations(t)
	mockStore.On("GetUser", int64(5)).
		Return(models.User{ID: 5, Username: "carol", Role: models.RoleUser}, nil).Once()
	mockStore.On("DeleteUser", int64(5)).Return(nil).Once()
	s := newTestServer(mockStore)

	rr := doJSON(t, s, http.MethodDelete, "/api/users/5", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDeleteUser_NotFound(t *testing.T) {
	mockStore := &store.MockStore{}
	defer mockStore.AssertExpectations(t)
	mockStore.On("GetUser", int64(99)).Return(models.User{}, store.ErrNotFound).Once()
	s := newTestServer(mockStore)

	rr := doJSON(t, s, http.MethodDelete, "/api/users/99", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListUsers_OmitsHashes(t *testing.T) {
	users := []models.User{
		{ID: 1, Username: "admin", PasswordHash: "$argon2id$v=19$...", Role: models.RoleAdmin},
	}
	mockStore := &store.MockStore{}
	defer mockStore.AssertExpectations(t)
	mockStore.On("ListUsers").Return(users, nil).Once()
	s := newTestServer(mockStore)

	rr := doJSON(t, s, http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "argon2id")
}
