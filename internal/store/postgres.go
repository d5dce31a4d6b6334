package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"roomdesk-backend-go/internal/models"
)

type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping() error {
	return s.db.Ping()
}

func (s *PostgresStore) ListRooms() ([]models.Room, error) {
	rooms := []models.Room{}
	err := s.db.Select(&rooms, `
SELECT id, name, capacity, description, image_url, equipment, created_at, updated_at
FROM rooms
ORDER BY name
`)
	return rooms, err
}

func (s *PostgresStore) GetRoom(id int64) (models.Room, error) {
	var room models.Room
	err := s.db.Get(&room, `
SELECT id, name, capacity, description, image_url, equipment, created_at, updated_at
FROM rooms
WHERE id = $1
`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Room{}, ErrNotFound
	}
	return room, err
}

func (s *PostgresStore) CreateRoom(params RoomParams) (models.Room, error) {
	var room models.Room
	err := s.db.Get(&room, `
INSERT INTO rooms (name, capacity, description, image_url, equipment, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$6)
RETURNING id, name, capacity, description, image_url, equipment, created_at, updated_at
`, params.Name, params.Capacity, params.Description, params.ImageURL, params.Equipment, time.Now().UTC())
	return room, err
}

func (s *PostgresStore) UpdateRoom(id int64, params RoomParams) (models.Room, error) {
	var room models.Room
	err := s.db.Get(&room, `
UPDATE rooms
SET name = $2, capacity = $3, description = $4, image_url = $5, equipment = $6, updated_at = $7
WHERE id = $1
RETURNING id, name, capacity, description, image_url, equipment, created_at, updated_at
`, id, params.Name, params.Capacity, params.Description, params.ImageURL, params.Equipment, time.Now().UTC())
	if errors.Is(err, sql.ErrNoRows) {
		return models.Room{}, ErrNotFound
	}
	return room, err
}

func (s *PostgresStore) DeleteRoom(id int64) error {
	var inUse bool
	if err := s.db.Get(&inUse, `SELECT EXISTS(SELECT 1 FROM bookings WHERE room_id = $1)`, id); err != nil {
		return err
	}
	if inUse {
		return ErrRoomInUse
	}
	result, err := s.db.Exec(`DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

const bookingColumns = `b.id, b.room_id, b.user_name, b.title, b.start_time, b.end_time,
       b.attendees, b.applicant, b.contact, b.description, b.status, b.created_at, b.updated_at`

func (s *PostgresStore) ListBookings() ([]models.BookingWithRoom, error) {
	bookings := []models.BookingWithRoom{}
	err := s.db.Select(&bookings, `
SELECT `+bookingColumns+`, r.name AS room_name
FROM bookings b
JOIN rooms r ON r.id = b.room_id
ORDER BY b.created_at DESC
`)
	return bookings, err
}

func (s *PostgresStore) ListActiveBookings(now time.Time, horizon time.Duration) ([]models.BookingWithRoom, error) {
	bookings := []models.BookingWithRoom{}
	err := s.db.Select(&bookings, `
SELECT `+bookingColumns+`, r.name AS room_name
FROM bookings b
JOIN rooms r ON r.id = b.room_id
WHERE b.status = 'approved' AND b.end_time >= $1 AND b.start_time <= $2
ORDER BY b.start_time
`, now, now.Add(horizon))
	return bookings, err
}

func (s *PostgresStore) GetBooking(id int64) (models.Booking, error) {
	var booking models.Booking
	err := s.db.Get(&booking, `
SELECT id, room_id, user_name, title, start_time, end_time, attendees, applicant,
       contact, description, status, created_at, updated_at
FROM bookings
WHERE id = $1
`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, ErrNotFound
	}
	return booking, err
}

func (s *PostgresStore) HasConflict(roomID int64, start, end time.Time, excludeID int64) (bool, error) {
	return hasConflict(s.db, roomID, start, end, excludeID)
}

type queryer interface {
	Get(dest interface{}, query string, args ...interface{}) error
}

// hasConflict is the overlap check: any non-rejected booking on the room whose
// half-open interval intersects [start, end). excludeID = 0 means no
// exclusion; a booking never conflicts with itself on update.
func hasConflict(q queryer, roomID int64, start, end time.Time, excludeID int64) (bool, error) {
	var exists bool
	err := q.Get(&exists, `
SELECT EXISTS(
  SELECT 1 FROM bookings
  WHERE room_id = $1
    AND status <> 'rejected'
    AND ($4::bigint = 0 OR id <> $4)
    AND start_time < $3
    AND end_time > $2
)
`, roomID, start, end, excludeID)
	return exists, err
}

func (s *PostgresStore) CreateBooking(params BookingParams) (models.Booking, error) {
	tx, err := s.db.BeginTxx(context.Background(), &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return models.Booking{}, err
	}
	defer tx.Rollback()

	conflict, err := hasConflict(tx, params.RoomID, params.StartTime, params.EndTime, 0)
	if err != nil {
		return models.Booking{}, err
	}
	if conflict {
		return models.Booking{}, ErrBookingConflict
	}

	var booking models.Booking
	err = tx.Get(&booking, `
INSERT INTO bookings (room_id, user_name, title, start_time, end_time, attendees,
                      applicant, contact, description, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$11)
RETURNING id, room_id, user_name, title, start_time, end_time, attendees, applicant,
          contact, description, status, created_at, updated_at
`, params.RoomID, params.UserName, params.Title, params.StartTime, params.EndTime,
		params.Attendees, params.Applicant, params.Contact, params.Description, params.Status,
		time.Now().UTC())
	if err != nil {
		return models.Booking{}, err
	}
	return booking, tx.Commit()
}

func (s *PostgresStore) UpdateBooking(id int64, params BookingParams) (models.Booking, error) {
	tx, err := s.db.BeginTxx(context.Background(), &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return models.Booking{}, err
	}
	defer tx.Rollback()

	var existingID int64
	if err := tx.Get(&existingID, `SELECT id FROM bookings WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, ErrNotFound
		}
		return models.Booking{}, err
	}

	conflict, err := hasConflict(tx, params.RoomID, params.StartTime, params.EndTime, id)
	if err != nil {
		return models.Booking{}, err
	}
	if conflict {
		return models.Booking{}, ErrBookingConflict
	}

	var booking models.Booking
	err = tx.Get(&booking, `
UPDATE bookings
SET room_id = $2, user_name = $3, title = $4, start_time = $5, end_time = $6,
    attendees = $7, applicant = $8, contact = $9, description = $10, status = $11,
    updated_at = $12
WHERE id = $1
RETURNING id, room_id, user_name, title, start_time, end_time, attendees, applicant,
          contact, description, status, created_at, updated_at
`, id, params.RoomID, params.UserName, params.Title, params.StartTime, params.EndTime,
		params.Attendees, params.Applicant, params.Contact, params.Description, params.Status,
		time.Now().UTC())
	if err != nil {
		return models.Booking{}, err
	}
	return booking, tx.Commit()
}

func (s *PostgresStore) UpdateBookingStatus(id int64, status models.BookingStatus) error {
	result, err := s.db.Exec(`UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now().UTC())
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListUsers() ([]models.User, error) {
	users := []models.User{}
	err := s.db.Select(&users, `
SELECT id, username, password_hash, role, created_at
FROM users
ORDER BY username
`)
	return users, err
}

func (s *PostgresStore) GetUser(id int64) (models.User, error) {
	var user models.User
	err := s.db.Get(&user, `
SELECT id, username, password_hash, role, created_at FROM users WHERE id = $1
`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func (s *PostgresStore) GetUserByUsername(username string) (models.User, error) {
	var user models.User
	err := s.db.Get(&user, `
SELECT id, username, password_hash, role, created_at FROM users WHERE username = $1
`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func (s *PostgresStore) CreateUser(params UserParams) (models.User, error) {
	var exists bool
	if err := s.db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, params.Username); err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrDuplicateUsername
	}
	var user models.User
	err := s.db.Get(&user, `
INSERT INTO users (username, password_hash, role, created_at)
VALUES ($1,$2,$3,$4)
RETURNING id, username, password_hash, role, created_at
`, params.Username, params.PasswordHash, params.Role, time.Now().UTC())
	return user, err
}

func (s *PostgresStore) DeleteUser(id int64) error {
	result, err := s.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListActiveAds() ([]models.Ad, error) {
	ads := []models.Ad{}
	err := s.db.Select(&ads, `
SELECT id, type, url, duration_seconds, active, created_at
FROM ads
WHERE active
ORDER BY created_at
`)
	return ads, err
}

func (s *PostgresStore) CreateAd(params AdParams) (models.Ad, error) {
	var ad models.Ad
	err := s.db.Get(&ad, `
INSERT INTO ads (type, url, duration_seconds, active, created_at)
VALUES ($1,$2,$3,$4,$5)
RETURNING id, type, url, duration_seconds, active, created_at
`, params.Type, params.URL, params.DurationSeconds, params.Active, time.Now().UTC())
	return ad, err
}

func (s *PostgresStore) DeleteAd(id int64) error {
	result, err := s.db.Exec(`DELETE FROM ads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) GetSetting(key string) (string, error) {
	var value string
	err := s.db.Get(&value, `SELECT value FROM settings WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

func (s *PostgresStore) SetSetting(key, value string) error {
	_, err := s.db.Exec(`
INSERT INTO settings (key, value) VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
`, key, value)
	return err
}

func (s *PostgresStore) BookingReport(now time.Time) (models.Report, error) {
	var report models.Report
	err := s.db.Get(&report.Totals, `
SELECT count(*) FILTER (WHERE created_at >= date_trunc('day', $1::timestamptz))   AS today,
       count(*) FILTER (WHERE created_at >= date_trunc('week', $1::timestamptz))  AS week,
       count(*) FILTER (WHERE created_at >= date_trunc('month', $1::timestamptz)) AS month,
       count(*) FILTER (WHERE created_at >= date_trunc('year', $1::timestamptz))  AS year
FROM bookings
`, now)
	if err != nil {
		return models.Report{}, err
	}

	report.ByRoom = []models.RoomCount{}
	if err := s.db.Select(&report.ByRoom, `
SELECT r.id AS room_id, r.name AS room_name, count(b.id) AS count
FROM rooms r
LEFT JOIN bookings b ON b.room_id = r.id
GROUP BY r.id, r.name
ORDER BY r.name
`); err != nil {
		return models.Report{}, err
	}

	report.ByStatus = []models.StatusCount{}
	if err := s.db.Select(&report.ByStatus, `
SELECT status, count(*) AS count
FROM bookings
GROUP BY status
ORDER BY status
`); err != nil {
		return models.Report{}, err
	}

	history, err := s.ListBookings()
	if err != nil {
		return models.Report{}, err
	}
	report.History = history
	return report, nil
}

func (s *PostgresStore) InsertMetricSample(sample models.ServerMetricSample) error {
	_, err := s.db.Exec(`
INSERT INTO server_metric_samples (
  id, captured_at, process_rss_bytes, system_memory_total_bytes, system_memory_used_bytes,
  disk_total_bytes, disk_used_bytes, process_cpu_load, system_cpu_load
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`, sample.ID, sample.CapturedAt, sample.ProcessRSSBytes, sample.SystemMemoryTotal,
		sample.SystemMemoryUsed, sample.DiskTotalBytes, sample.DiskUsedBytes,
		sample.ProcessCpuLoad, sample.SystemCpuLoad)
	return err
}

func (s *PostgresStore) MetricsHistory(limit int) ([]models.ServerMetricSample, error) {
	samples := []models.ServerMetricSample{}
	err := s.db.Select(&samples, `
SELECT id, captured_at, process_rss_bytes, system_memory_total_bytes, system_memory_used_bytes,
       disk_total_bytes, disk_used_bytes, process_cpu_load, system_cpu_load
FROM server_metric_samples
ORDER BY captured_at DESC
LIMIT $1
`, limit)
	return samples, err
}
