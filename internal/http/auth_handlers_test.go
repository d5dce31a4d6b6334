package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomdesk-backend-go/internal/models"
	"roomdesk-backend-go/internal/store"
)

func TestLogin_UnknownUser(t *testing.T) {
	mockStore := &store.MockStore{}
	defer mockStore.AssertExpectations(t)
	mockStore.On("GetUserByUsername", "ghost").Return(models.User{}, store.ErrNotFound).Once()
	s := newTestServer(mockStore)

	rr := doJSON(t, s, http.MethodPost, "/api/login", LoginRequest{Username: "ghost", Password: "pw"})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockStore := &store.MockStore{}
	defer mockStore.AssertExpectations(t)
	s := newTestServer(mockStore)

	hash, err := s.Tokens.HashPassword("right")
	require.NoError(t, err)
	mockStore.On("GetUserByUsername", "alice").
		Return(models.User{ID: 1, Username: "alice", PasswordHash: hash, Role: models.RoleUser}, nil).Once()

	rr := doJSON(t, s, http.MethodPost, "/api/login", LoginRequest{Username: "alice", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	mockStore := &store.MockStore{}
	defer mockStore.AssertExpectations(t)
	s := newTestServer(mockStore)

	rr := doJSON(t, s, http.MethodPost, "/api/login", LoginRequest{Username: "alice"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin_Success(t *testing.T) {
	mockStore := &store.MockStore{}
	defer mockStore.AssertExpectations(t)
	s := newTestServer(mockStore)

	hash, err := s.Tokens.HashPassword("secret")
	require.NoError(t, err)
	mockStore.On("GetUserByUsername", "alice").
		Return(models.User{ID: 1, Username: "alice", PasswordHash: hash, Role: models.RoleAdmin}, nil).Once()

	rr := doJSON(t, s, http.MethodPost, "/api/login", LoginRequest{Username: "alice", Password: "secret"})

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp LoginResponse
	decodeBody(t, rr, &resp)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "admin", resp.Role)
	require.NotEmpty(t, resp.Token)

	token, claims, err := s.Tokens.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "admin", claims["role"])
}

func TestMetricsHistory_RequiresAdminToken(t *testing.T) {
	mockStore := &store.MockStore{}
	defer mockStore.AssertExpectations(t)
	s := newTestServer(mockStore)

	// No token at all.
	rr := doJSON(t, s, http.MethodGet, "/api/metrics/history", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Valid token, insufficient role.
	token, _, err := s.Tokens.CreateAccessToken(2, "carol", "viewer")
	require.NoError(t, err)
	req := newAuthedRequest(t, http.MethodGet, "/api/metrics/history", token)
	rr = serve(s, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	// Admin token passes through to the store.
	mockStore.On("MetricsHistory", 120).Return([]models.ServerMetricSample{}, nil).Once()
	token, _, err = s.Tokens.CreateAccessToken(1, "admin", "admin")
	require.NoError(t, err)
	req = newAuthedRequest(t, http.MethodGet, "/api/metrics/history", token)
	rr = serve(s, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
