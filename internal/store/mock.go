package store

import (
	"time"

	"github.com/stretchr/testify/mock"

	"roomdesk-backend-go/internal/models"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Ping() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockStore) ListRooms() ([]models.Room, error) {
	args := m.Called()
	return args.Get(0).([]models.Room), args.Error(1)
}

func (m *MockStore) GetRoom(id int64) (models.Room, error) {
	args := m.Called(id)
	return args.Get(0).(models.Room), args.Error(1)
}

func (m *MockStore) CreateRoom(params RoomParams) (models.Room, error) {
	args := m.Called(params)
	return args.Get(0).(models.Room), args.Error(1)
}

func (m *MockStore) UpdateRoom(id int64, params RoomParams) (models.Room, error) {
	args := m.Called(id, params)
	return args.Get(0).(models.Room), args.Error(1)
}

func (m *MockStore) DeleteRoom(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStore) ListBookings() ([]models.BookingWithRoom, error) {
	args := m.Called()
	return args.Get(0).([]models.BookingWithRoom), args.Error(1)
}

func (m *MockStore) ListActiveBookings(now time.Time, horizon time.Duration) ([]models.BookingWithRoom, error) {
	args := m.Called(now, horizon)
	return args.Get(0).([]models.BookingWithRoom), args.Error(1)
}

func (m *MockStore) GetBooking(id int64) (models.Booking, error) {
	args := m.Called(id)
	return args.Get(0).(models.Booking), args.Error(1)
}

func (m *MockStore) CreateBooking(params BookingParams) (models.Booking, error) {
	args := m.Called(params)
	return args.Get(0).(models.Booking), args.Error(1)
}

func (m *MockStore) UpdateBooking(id int64, params BookingParams) (models.Booking, error) {
	args := m.Called(id, params)
	return args.Get(0).(models.Booking), args.Error(1)
}

func (m *MockStore) UpdateBookingStatus(id int64, status models.BookingStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockStore) HasConflict(roomID int64, start, end time.Time, excludeID int64) (bool, error) {
	args := m.Called(roomID, start, end, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) ListUsers() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockStore) GetUser(id int64) (models.User, error) {
	args := m.Called(id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockStore) GetUserByUsername(username string) (models.User, error) {
	args := m.Called(username)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockStore) CreateUser(params UserParams) (models.User, error) {
	args := m.Called(params)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockStore) DeleteUser(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStore) ListActiveAds() ([]models.Ad, error) {
	args := m.Called()
	return args.Get(0).([]models.Ad), args.Error(1)
}

func (m *MockStore) CreateAd(params AdParams) (models.Ad, error) {
	args := m.Called(params)
	return args.Get(0).(models.Ad), args.Error(1)
}

func (m *MockStore) DeleteAd(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStore) GetSetting(key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func (m *MockStore) SetSetting(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *MockStore) BookingReport(now time.Time) (models.Report, error) {
	args := m.Called(now)
	return args.Get(0).(models.Report), args.Error(1)
}

func (m *MockStore) InsertMetricSample(sample models.ServerMetricSample) error {
	args := m.Called(sample)
	return args.Error(0)
}

func (m *MockStore) MetricsHistory(limit int) ([]models.ServerMetricSample, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.ServerMetricSample), args.Error(1)
}
