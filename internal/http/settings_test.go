package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"roomdesk-backend-go/internal/models"
	"roomdesk-backend-go/internal/store"
)

func TestGetRunningText(t *testing.T) {
	mockStore := &store.MockStore{}
	defer mockStore.AssertExpectations(t)
	mockStore.On("GetSetting", models.SettingKeyRunningText).Return("Welcome!", nil).Once()
	s := newTestServer(mockStore)

	rr := doJSON(t, s, http.MethodGet, "/api/settings/running-text", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp RunningTextPayload
	decodeBody(t, rr, &resp)
	assert.Equal(t, "Welcome!", resp.Text)
}

func TestGetRunningText_Unset(t *testing.T) {
	mockStore := &store.MockStore{}
	defer mockStore.AssertExpectations(t)
	mockStore.On("GetSetting", models.SettingKeyRunningText).Return("", nil).Once()
	s := newTestServer(mockStore)

	rr := doJSON(t, s, http.MethodGet, "/api/settings/running-text", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp RunningTextPayload
	decodeBody(t, rr, &resp)
	assert.Equal(t, "", resp.Text)
}

func TestSetRunningText(t *testing.T) {
	mockStore := &store.MockStore{}
	defer mockStore.AssertExpectations(t)
	mockStore.On("SetSetting", models.SettingKeyRunningText, "Fire drill at noon").Return(nil).Once()
	s := newTestServer(mockStore)

	rr := doJSON(t, s, http.MethodPost, "/api/settings/running-text", RunningTextPayload{Text: "Fire drill at noon"})

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp SuccessResponse
	decodeBody(t, rr, &resp)
	assert.True(t, resp.Success)
}
