package store

import (
	"errors"
	"time"

	"roomdesk-backend-go/internal/models"
)

// Classified storage failures. Anything else that bubbles out of the store is
// an unclassified error the handlers report as a plain 500.
var (
	ErrNotFound          = errors.New("record not found")
	ErrRoomInUse         = errors.New("room has bookings")
	ErrBookingConflict   = errors.New("booking conflicts with an existing booking")
	ErrDuplicateUsername = errors.New("username already exists")
)

type RoomParams struct {
	Name        string
	Capacity    int
	Description string
	ImageURL    string
	Equipment   string
}

type BookingParams struct {
	RoomID      int64
	UserName    string
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	Attendees   int
	Applicant   string
	Contact     string
	Description string
	Status      models.BookingStatus
}

type UserParams struct {
	Username     string
	PasswordHash string
	Role         models.Role
}

type AdParams struct {
	Type            models.AdType
	URL             string
	DurationSeconds int
	Active          bool
}

// Store is the persistence boundary the HTTP layer talks to. The Postgres
// implementation lives in this package; tests use MockStore.
type Store interface {
	Ping() error

	ListRooms() ([]models.Room, error)
	GetRoom(id int64) (models.Room, error)
	CreateRoom(params RoomParams) (models.Room, error)
	UpdateRoom(id int64, params RoomParams) (models.Room, error)
	DeleteRoom(id int64) error

	ListBookings() ([]models.BookingWithRoom, error)
	ListActiveBookings(now time.Time, horizon time.Duration) ([]models.BookingWithRoom, error)
	GetBooking(id int64) (models.Booking, error)
	// CreateBooking and UpdateBooking run the conflict check and the write in
	// one serializable transaction, so two overlapping requests cannot both
	// pass the check.
	CreateBooking(params BookingParams) (models.Booking, error)
	UpdateBooking(id int64, params BookingParams) (models.Booking, error)
	// UpdateBookingStatus deliberately skips the conflict check; the partial
	// status patch has always been exempt from it.
	UpdateBookingStatus(id int64, status models.BookingStatus) error
	HasConflict(roomID int64, start, end time.Time, excludeID int64) (bool, error)

	ListUsers() ([]models.User, error)
	GetUser(id int64) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
	CreateUser(params UserParams) (models.User, error)
	DeleteUser(id int64) error

	ListActiveAds() ([]models.Ad, error)
	CreateAd(params AdParams) (models.Ad, error)
	DeleteAd(id int64) error

	GetSetting(key string) (string, error)
	SetSetting(key, value string) error

	BookingReport(now time.Time) (models.Report, error)

	InsertMetricSample(sample models.ServerMetricSample) error
	MetricsHistory(limit int) ([]models.ServerMetricSample, error)
}
