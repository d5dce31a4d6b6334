package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"roomdesk-backend-go/internal/models"
	"roomdesk-backend-go/internal/store"
)

func TestCreateRoom_Validation(t *testing.T) {
	tcases := []struct {
		name string
		body RoomRequest
	}{
		{"missing name", RoomRequest{Capacity: 8}},
		{"zero capacity", RoomRequest{Name: "Aurora"}},
		{"negative capacity", RoomRequest{Name: "Aurora", Capacity: -2}},
	}
	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockStore := &store.MockStore{}
			defer mockStore.AssertExpectations(t)
			s := newTestServer(mockStore)

			rr := doJSON(t, s, http.MethodPost, "/api/rooms", tc.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestCreateRoom_Success(t *testing.T) {
	created := models.Room{ID: 3, Name: "Aurora", Capacity: 8}
	mockStore := &store.MockStore{}
	defer mockStore.AssertExpectations(t)
	mockStore.On("CreateRoom", store.RoomParams{Name: "Aurora", Capacity: 8, Equipment: "projector"}).
		Return(created, nil).Once()
	s := newTestServer(mockStore)

	rr := doJSON(t, s, http.MethodPost, "/api/rooms", RoomRequest{Name: "Aurora", Capacity: 8, Equipment: "projector"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	var got models.Room
	decodeBody(t, rr, &got)
	assert.Equal(t, int64(3), got.ID)
}

func TestGetRoom_NotFound(t *testing.T) {
	mockStore := &store.MockStore{}
	defer mockStore.AssertExpectations(t)
	mockStore.On("GetRoom", int64(12)).Return(models.Room{}, store.ErrNotFound).Once()
	s := newTestServer(mockStore)

	rr := doJSON(t, s, http.MethodGet, "/api/rooms/12", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetRoom_InvalidID(t *testing.T) {
	mockStore := &store.MockStore{}
	defer mockStore.AssertExpectations(t)
	s := newTestServer(mockStore)

	rr := doJSON(t, s, http.MethodGet, "/api/rooms/abc", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateRoom_Success(t *testing.T) {
	updated := models.Room{ID: 3, Name: "Boreal", Capacity: 12}
	mockStore := &store.MockStore{}
	defer mockStore.AssertExpectations(t)
	mockStore.On("UpdateRoom", int64(3), store.RoomParams{Name: "Boreal", Capacity: 12}).
		Return(updated, nil).Once()
	s := newTestServer(mockStore)

	rr := doJSON(t, s, http.MethodPut, "/api/rooms/3", RoomRequest{Name: "Boreal", Capacity: 12})

	assert.Equal(t, http.StatusOK, rr.Code)
	var got models.Room
	decodeBody(t, rr, &got)
	assert.Equal(t, "Boreal", got.Name)
}

func TestDeleteRoom_WithBookings(t *testing.T) {
	mockStore := &store.MockStore{}
	defer mockStore.AssertExpectations(t)
	mockStore.On("DeleteRoom", int64(3)).Return(store.ErrRoomInUse).Once()
	s := newTestServer(mockStore)

	rr := doJSON(t, s, http.MethodDelete, "/api/rooms/3", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, errorMessage(t, rr), "bookings")
}

func TestDeleteRoom_Success(t *testing.T) {
	mockStore := &store.MockStore{}
	defer mockStore.AssertExpectations(t)
	mockStore.On("DeleteRoom", int64(3)).Return(nil).Once()
	s := newTestServer(mockStore)

	rr := doJSON(t, s, http.MethodDelete, "/api/rooms/3", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp SuccessResponse
	decodeBody(t, rr, &resp)
	assert.True(t, resp.Success)
}
